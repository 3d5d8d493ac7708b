// Copyright (c) 2026 The asyncaws authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/nealio82/async-aws/internal/fetch"
	"github.com/nealio82/async-aws/internal/generate"
	"github.com/nealio82/async-aws/internal/meta"
)

// GenerateCommandAction is the action handler for "generate". It loads the
// manifest, resolves each selected service's definition, and renders the
// generated packages. In --check mode nothing is written; a non-empty drift
// set fails the run so CI can gate on stale output.
func GenerateCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	mf, err := loadManifest(cmd)
	if err != nil {
		return err
	}

	services, err := selectServices(mf, cmd)
	if err != nil {
		return err
	}

	root := cmd.String("output")
	if root == "" {
		root = mf.Output
	}
	if root == "" {
		root = "."
	}

	writer := &generate.Writer{
		Root:  root,
		Check: cmd.Bool("check"),
	}

	fetcher := fetch.FromConfig()
	for _, svc := range services {
		def, err := loadDefinition(ctx, &fetcher, mf, svc)
		if err != nil {
			return err
		}
		if err := generate.Service(def, svc, writer); err != nil {
			return err
		}
	}

	fmt.Println(writer.Summary())

	if drift := writer.Drifted(); len(drift) > 0 {
		return fmt.Errorf("generated code is out of date:\n  %s",
			strings.Join(drift, "\n  "))
	}
	return nil
}

// GenerateCommandBuilder constructs the cli.Command for "generate", wiring
// metadata, flags, and the action handler.
func GenerateCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Usage:     "generate service clients from the manifest",
		UsageText: `awsgen generate [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "check",
				Usage: "report drift instead of writing files",
				Value: false,
			},
			NewManifestFlag("generate"),
			NewOutputFlag("generate"),
			NewServiceFlag(),
		},
		Action: GenerateCommandAction,
	}
}
