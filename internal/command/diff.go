// Copyright (c) 2026 The asyncaws authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/nealio82/async-aws/internal/diff"
	"github.com/nealio82/async-aws/internal/fetch"
	"github.com/nealio82/async-aws/internal/meta"
)

// DiffCommandAction is the action handler for "diff". It compares two
// definition documents and reports the operations and shapes a regeneration
// would add, remove, or change.
func DiffCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	args := cmd.Args().Slice()
	if len(args) != 2 {
		return fmt.Errorf("diff takes exactly two definition files, got %d", len(args))
	}

	fetcher := fetch.FromConfig()
	oldData, err := fetcher.Resolve(ctx, args[0])
	if err != nil {
		return err
	}
	newData, err := fetcher.Resolve(ctx, args[1])
	if err != nil {
		return err
	}

	if cmd.Bool("raw") {
		delta, err := diff.RawDelta(oldData, newData)
		if err != nil {
			return err
		}
		fmt.Print(delta)
		return nil
	}

	report, err := diff.Compare(oldData, newData)
	if err != nil {
		return err
	}
	fmt.Println(report)
	return nil
}

// DiffCommandBuilder constructs the cli.Command for "diff".
func DiffCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "compare two definition documents",
		UsageText: `awsgen diff [options] <old.json> <new.json>`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "emit the full structural delta instead of a summary",
				Value: false,
			},
		},
		Action: DiffCommandAction,
	}
}
