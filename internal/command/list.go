// Copyright (c) 2026 The asyncaws authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/nealio82/async-aws/internal/fetch"
	"github.com/nealio82/async-aws/internal/meta"
	"github.com/nealio82/async-aws/internal/output"
)

// ListCommandAction is the action handler for "list". Without --service it
// tabulates the manifest entries. With --service it resolves that service's
// definition and tabulates its operations instead.
func ListCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	mf, err := loadManifest(cmd)
	if err != nil {
		return err
	}

	if name := cmd.String("service"); name != "" {
		services, err := selectServices(mf, cmd)
		if err != nil {
			return err
		}
		svc := services[0]

		fetcher := fetch.FromConfig()
		def, err := loadDefinition(ctx, &fetcher, mf, svc)
		if err != nil {
			return err
		}

		rows := [][]string{}
		for _, opName := range def.OperationNames() {
			if !svc.WantsOperation(opName) {
				continue
			}
			op := def.Operation(opName)
			paginated := ""
			if op.Paginated() {
				paginated = "yes"
			}
			rows = append(rows, []string{op.Name, op.HTTP.Method, paginated})
		}
		output.Table(os.Stdout, []string{"OPERATION", "METHOD", "PAGINATED"}, rows)
		return nil
	}

	rows := [][]string{}
	for _, svc := range mf.Services {
		rows = append(rows, []string{svc.Name, svc.PackageName(), svc.Source})
	}
	output.Table(os.Stdout, []string{"SERVICE", "PACKAGE", "SOURCE"}, rows)
	return nil
}

// ListCommandBuilder constructs the cli.Command for "list".
func ListCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "list manifest services or one service's operations",
		UsageText: `awsgen list [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			NewManifestFlag("list"),
			NewServiceFlag(),
		},
		Action: ListCommandAction,
	}
}
