// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/textdiff/internal/config"
	"github.com/tfctl/textdiff/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	// Save the CWD at startup and then defer restoring it so we're tidy.
	sd, _ := os.Getwd()
	defer func() {
		if err := os.Chdir(sd); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to restore directory: %v\n", err)
		}
	}()

	m := meta.Meta{
		Args:        args,
		Context:     ctx,
		StartingDir: sd,
	}

	// The arg[1] immediately following the binary (arg[0]) is the textdiff
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. A missing config file is not an error.
	ns := m.Namespace()
	m.Config, _ = config.Load(ns) //nolint
	m.ConfigFile = m.Config.Source

	app := &cli.Command{
		Name:  "textdiff",
		Usage: "compare two texts",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "textdiff version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		linesCommandBuilder(m),
		jsonCommandBuilder(m),
		pickCommandBuilder(m),
		completionCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
