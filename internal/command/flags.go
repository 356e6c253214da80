// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/textdiff/internal/differ"
	"github.com/tfctl/textdiff/internal/output"
)

// NewLinesFlags returns the flags shared by the line diffing commands (lines
// and pick). params[0] is the config namespace and params[1] the config file.
// When both are given, each flag also falls back to "<ns>.<flag>" and then
// "<flag>" in the config file.
func NewLinesFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "algorithm",
			Aliases: []string{"a"},
			Usage:   "diff algorithm",
			Value:   differ.DefaultAlgorithm,
			Sources: cli.NewValueSourceChain(cli.EnvVar("TEXTDIFF_ALGORITHM")),
			Validator: func(value string) error {
				return FlagValidators(value, AlgorithmValidator)
			},
		},
		colorFlag(),
		&cli.IntFlag{
			Name:    "context",
			Aliases: []string{"C"},
			Usage:   "unchanged lines to keep around each change, -1 for all",
			Value:   -1,
			Sources: cli.NewValueSourceChain(cli.EnvVar("TEXTDIFF_CONTEXT")),
		},
		exitCodeFlag(),
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		&cli.BoolFlag{
			Name:    "numbers",
			Aliases: []string{"n"},
			Usage:   "show line numbers with text output",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   output.FormatText,
			Sources: cli.NewValueSourceChain(cli.EnvVar("TEXTDIFF_OUTPUT")),
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.IntFlag{
			Name:   "padding",
			Usage:  "space between table columns",
			Value:  2,
			Hidden: true,
			Validator: func(value int) error {
				return FlagValidators(value, NonNegativeValidator)
			},
		},
		&cli.BoolFlag{
			Name:  "strip-cr",
			Usage: "ignore trailing carriage returns when comparing lines",
			Value: false,
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with table output",
			Value:   false,
		},
	}

	if len(params) == 2 {
		WithConfigFileSources(params[0], params[1], flags...)
	}

	return
}

// NewJSONFlags returns the flags of the json command, namespaced like
// NewLinesFlags.
func NewJSONFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		colorFlag(),
		exitCodeFlag(),
		&cli.StringFlag{
			Name:  "ignore",
			Usage: "comma-separated list of top-level keys to ignore",
		},
		&cli.StringFlag{
			Name:    "path",
			Aliases: []string{"p"},
			Usage:   "dot path of the sub-document to compare, e.g. spec.items[0]",
		},
	}

	if len(params) == 2 {
		WithConfigFileSources(params[0], params[1], flags...)
	}

	return
}

// NewAWSFlags returns the flags used to reach s3:// sources.
func NewAWSFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "profile",
			Usage:   "AWS profile for s3:// sources",
			Sources: cli.NewValueSourceChain(cli.EnvVar("TEXTDIFF_AWS_PROFILE")),
		},
		&cli.StringFlag{
			Name:    "region",
			Usage:   "AWS region for s3:// sources",
			Sources: cli.NewValueSourceChain(cli.EnvVar("TEXTDIFF_AWS_REGION")),
		},
	}
}

func colorFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "enable colored text output",
		Value:   false,
		Sources: cli.NewValueSourceChain(cli.EnvVar("TEXTDIFF_COLOR")),
	}
}

func exitCodeFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:  "exit-code",
		Usage: "exit with status 1 when differences are found",
		Value: false,
	}
}

// WithConfigFileSources adds namespaced and global config file sources to the
// Sources chain of each flag. Flag types without a Sources chain are left
// alone.
func WithConfigFileSources(ns string, path string, flags ...cli.Flag) {
	if path == "" {
		return
	}
	for _, f := range flags {
		switch flag := f.(type) {
		case *cli.StringFlag:
			NameSpacedValueChainFlagFromConfigFile(ns, path, flag)
		case *cli.BoolFlag:
			appendConfigSources(&flag.Sources, ns, path, flag.Name)
		case *cli.IntFlag:
			appendConfigSources(&flag.Sources, ns, path, flag.Name)
		}
	}
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	appendConfigSources(&flag.Sources, ns, path, flag.Name)
	return flag
}

func appendConfigSources(chain *cli.ValueSourceChain, ns, path, name string) {
	if ns != "" {
		chain.Chain = append(chain.Chain, yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)))
	}
	chain.Chain = append(chain.Chain, yaml.YAML(name, altsrc.StringSourcer(path)))
}
