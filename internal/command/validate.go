// Copyright (c) 2026 The asyncaws authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/nealio82/async-aws/internal/fetch"
	"github.com/nealio82/async-aws/internal/meta"
	"github.com/nealio82/async-aws/internal/model"
)

// ValidateCommandAction is the action handler for "validate". It loads one
// definition document, optionally attaches a paginators document, and runs
// the full reference walk.
func ValidateCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	args := cmd.Args().Slice()
	if len(args) != 1 {
		return fmt.Errorf("validate takes exactly one definition file, got %d", len(args))
	}

	fetcher := fetch.FromConfig()
	data, err := fetcher.Resolve(ctx, args[0])
	if err != nil {
		return err
	}

	def, err := model.Load(data)
	if err != nil {
		return err
	}

	if pagPath := cmd.String("paginators"); pagPath != "" {
		pag, err := fetcher.Resolve(ctx, pagPath)
		if err != nil {
			return err
		}
		if err := def.AttachPaginators(pag); err != nil {
			return err
		}
	}

	if err := def.Validate(); err != nil {
		return err
	}

	fmt.Printf("%s: %d shapes, %d operations, ok\n",
		def.Metadata.ServiceID, len(def.ShapeNames()), len(def.OperationNames()))
	return nil
}

// ValidateCommandBuilder constructs the cli.Command for "validate".
func ValidateCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "load a definition and check every shape reference",
		UsageText: `awsgen validate [options] <definition.json>`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "paginators",
				Aliases: []string{"p"},
				Usage:   "paginators document to attach before validating",
			},
		},
		Action: ValidateCommandAction,
	}
}
