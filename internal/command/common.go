// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/textdiff/internal/aws"
	"github.com/tfctl/textdiff/internal/meta"
	"github.com/tfctl/textdiff/internal/source"
)

// ErrDifferencesFound is returned by an action run with --exit-code when the
// inputs differ. main maps it to exit status 1.
var ErrDifferencesFound = errors.New("differences found")

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// writer returns the root command's writer, defaulting to os.Stdout.
func writer(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}

// sourceOptions builds the source options for cmd: stdin comes from the root
// command's reader and s3:// sources use the --profile and --region flags.
func sourceOptions(cmd *cli.Command) []source.Option {
	opts := []source.Option{}
	if root := cmd.Root(); root != nil && root.Reader != nil {
		opts = append(opts, source.WithStdin(root.Reader))
	}

	var awsOpts []aws.Option
	if p := cmd.String("profile"); p != "" {
		awsOpts = append(awsOpts, aws.WithProfile(p))
	}
	if r := cmd.String("region"); r != "" {
		awsOpts = append(awsOpts, aws.WithRegion(r))
	}
	if len(awsOpts) > 0 {
		opts = append(opts, source.WithAWSOptions(awsOpts...))
	}

	return opts
}

// exitStatus turns a "modified" result into ErrDifferencesFound when
// --exit-code is set.
func exitStatus(cmd *cli.Command, modified bool) error {
	if modified && cmd.Bool("exit-code") {
		return ErrDifferencesFound
	}
	return nil
}
