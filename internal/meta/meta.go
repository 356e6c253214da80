// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/tfctl/textdiff/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded configuration, context, the config file path used for flag sources,
// and the starting working directory.
type Meta struct {
	Args        []string
	Config      config.Type
	ConfigFile  string
	Context     context.Context
	StartingDir string
}

// Namespace returns the subcommand name, which is also the config namespace,
// or "" when there is none.
func (m Meta) Namespace() string {
	if len(m.Args) > 1 && len(m.Args[1]) > 0 && m.Args[1][0] != '-' {
		return m.Args[1]
	}
	return ""
}
