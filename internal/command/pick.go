// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/textdiff/internal/config"
	"github.com/tfctl/textdiff/internal/differ"
	"github.com/tfctl/textdiff/internal/log"
	"github.com/tfctl/textdiff/internal/meta"
	"github.com/tfctl/textdiff/internal/source"
)

// selectFiles is swapped out in tests.
var selectFiles = differ.SelectFiles

// pickCommandAction lets the user choose two files from a directory and then
// line diffs them with the same flags as "lines".
func pickCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "pick"

	dir := "."
	if cmd.Args().Len() > 0 {
		dir = cmd.Args().First()
	}

	items, err := differ.ListFiles(dir)
	if err != nil {
		return err
	}
	if len(items) < 2 {
		return fmt.Errorf("%s needs at least two files to pick from, found %d", dir, len(items))
	}

	picked, err := selectFiles(items)
	if err != nil {
		return err
	}
	if len(picked) != 2 {
		log.Debug("pick aborted")
		return nil
	}

	a, b, err := source.NewPair(picked[0].Path, picked[1].Path)
	if err != nil {
		return err
	}

	return diffLines(ctx, cmd, a, b)
}

// pickCommandBuilder constructs the cli.Command for "pick".
func pickCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "pick",
		Usage:     "pick two files interactively and diff them",
		UsageText: "textdiff pick [DIR] [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  NewLinesFlags("pick", meta.ConfigFile),
		Action: pickCommandAction,
	}
}
