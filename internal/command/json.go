// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/textdiff/internal/config"
	"github.com/tfctl/textdiff/internal/differ"
	"github.com/tfctl/textdiff/internal/driller"
	"github.com/tfctl/textdiff/internal/hcldoc"
	"github.com/tfctl/textdiff/internal/log"
	"github.com/tfctl/textdiff/internal/meta"
	"github.com/tfctl/textdiff/internal/source"
)

// jsonCommandAction is the action handler for the "json" subcommand. HCL
// inputs are normalized to JSON, both documents are optionally narrowed with
// --path, and the structural difference is printed.
func jsonCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "json"

	args := cmd.Args().Slice()
	if len(args) != 2 {
		return fmt.Errorf("expected ORIGINAL and MODIFIED, got %d argument(s)", len(args))
	}

	a, b, err := source.NewPair(args[0], args[1], sourceOptions(cmd)...)
	if err != nil {
		return err
	}

	left, right, err := source.LoadPair(ctx, a, b)
	if err != nil {
		return err
	}

	if left, err = prepareDocument(left, args[0], cmd.String("path")); err != nil {
		return err
	}
	if right, err = prepareDocument(right, args[1], cmd.String("path")); err != nil {
		return err
	}

	result, err := differ.JSON(left, right, differ.JSONOptions{
		FilterKeys: ignoreKeys(cmd),
		Color:      cmd.Bool("color"),
	})
	if err != nil {
		return err
	}

	w := writer(cmd)
	if !result.Modified {
		fmt.Fprintln(w, "The documents are identical.")
		return nil
	}
	fmt.Fprint(w, result.Text)

	return exitStatus(cmd, true)
}

// prepareDocument converts an HCL document to JSON and drills into path.
func prepareDocument(doc []byte, spec, path string) ([]byte, error) {
	name := specName(spec)
	if hcldoc.IsHCL(name) {
		var err error
		if doc, err = hcldoc.ToJSON(doc, name); err != nil {
			return nil, err
		}
	}

	doc, err := driller.Drill(doc, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", spec, err)
	}
	return doc, nil
}

// specName strips any URL query and git revision from spec so the file
// extension can be checked.
func specName(spec string) string {
	if i := strings.IndexByte(spec, '?'); i >= 0 && source.KindOf(spec) != source.KindFile {
		spec = spec[:i]
	}
	if source.KindOf(spec) == source.KindGit {
		if _, path, found := strings.Cut(strings.TrimPrefix(spec, "git:"), ":"); found {
			spec = path
		}
	}
	return spec
}

// ignoreKeys returns --ignore split on commas, or the json.ignore config list.
func ignoreKeys(cmd *cli.Command) []string {
	if v := cmd.String("ignore"); v != "" {
		var keys []string
		for _, k := range strings.Split(v, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		return keys
	}

	keys, _ := config.GetStringSlice("json.ignore", []string{})
	return keys
}

// jsonCommandBuilder constructs the cli.Command for "json".
func jsonCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "json",
		Usage:     "structural diff of two JSON or HCL documents",
		UsageText: "textdiff json ORIGINAL MODIFIED [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  append(NewJSONFlags("json", meta.ConfigFile), NewAWSFlags()...),
		Action: jsonCommandAction,
	}
}
