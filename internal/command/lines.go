// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/textdiff/internal/config"
	"github.com/tfctl/textdiff/internal/differ"
	"github.com/tfctl/textdiff/internal/log"
	"github.com/tfctl/textdiff/internal/meta"
	"github.com/tfctl/textdiff/internal/output"
	"github.com/tfctl/textdiff/internal/source"
	"github.com/tfctl/textdiff/internal/watch"
)

// linesCommandAction is the action handler for the "lines" subcommand. It
// resolves both sources, diffs them line by line and renders the script. With
// --watch it keeps re-running the diff whenever either file changes.
func linesCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "lines"

	args := cmd.Args().Slice()
	if len(args) != 2 {
		return fmt.Errorf("expected ORIGINAL and MODIFIED, got %d argument(s)", len(args))
	}

	a, b, err := source.NewPair(args[0], args[1], sourceOptions(cmd)...)
	if err != nil {
		return err
	}

	if cmd.Bool("watch") {
		return watchPair(ctx, cmd, a, b)
	}

	return diffLines(ctx, cmd, a, b)
}

// diffLines loads a and b, diffs them and renders the result.
func diffLines(ctx context.Context, cmd *cli.Command, a, b source.Source) error {
	original, modified, err := source.LoadPair(ctx, a, b)
	if err != nil {
		return err
	}

	script, err := differ.Lines(cmd.String("algorithm"), string(original), string(modified),
		differ.LineOptions{StripCR: cmd.Bool("strip-cr")})
	if err != nil {
		return err
	}
	log.Debugf("script: ops=%d changes=%t", len(script), script.HasChanges())

	if err := output.Render(writer(cmd), script, renderOptions(cmd, a, b)); err != nil {
		return err
	}

	return exitStatus(cmd, script.HasChanges())
}

// watchPair re-runs diffLines until interrupted. Only local files can be
// watched.
func watchPair(ctx context.Context, cmd *cli.Command, a, b source.Source) error {
	var paths []string
	for _, s := range []source.Source{a, b} {
		p, ok := source.Path(s)
		if !ok {
			return fmt.Errorf("--watch requires local files, not %s", s)
		}
		paths = append(paths, p)
	}

	debounce, _ := config.GetInt("watch.debounce", 0)
	w, err := watch.New(paths, time.Duration(debounce)*time.Millisecond)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := writer(cmd)
	return w.Run(ctx, func() error {
		fmt.Fprintf(out, "--- %s\n", time.Now().Format(time.TimeOnly))
		// Differences are the expected state while watching.
		if err := diffLines(ctx, cmd, a, b); err != nil && !errors.Is(err, ErrDifferencesFound) {
			return err
		}
		return nil
	})
}

func renderOptions(cmd *cli.Command, a, b source.Source) output.Options {
	return output.Options{
		Format:   cmd.String("output"),
		Color:    cmd.Bool("color"),
		Numbers:  cmd.Bool("numbers"),
		Titles:   cmd.Bool("titles"),
		Context:  cmd.Int("context"),
		Filter:   cmd.String("filter"),
		Padding:  cmd.Int("padding"),
		FromName: a.String(),
		ToName:   b.String(),
	}
}

// linesCommandBuilder constructs the cli.Command for "lines", wiring metadata,
// flags, and action handler.
func linesCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "lines",
		Usage:     "line diff of two texts",
		UsageText: "textdiff lines ORIGINAL MODIFIED [options]",
		Description: "ORIGINAL and MODIFIED may each be a file, - for stdin, " +
			"s3://bucket/key[?versionId=v], an http(s) URL or git:REV:path.",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append(append([]cli.Flag{
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "re-run the diff whenever either file changes",
				Value:   false,
			},
		}, NewLinesFlags("lines", meta.ConfigFile)...), NewAWSFlags()...),
		Action: linesCommandAction,
	}
}
