// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders edit scripts as text, tables, JSON, YAML, summary
// statistics or unified diffs. Rows are filtered before rendering and never
// reordered.
package output
