// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ selects and runs the diff algorithms behind the textdiff
// commands. Line diffs come from a small registry (greedy, myers) producing
// linediff edit scripts. JSON documents are compared structurally with
// gojsondiff. The package also hosts the unified renderer and the two-file
// picker used by the pick command.
package differ
