// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package linediff

import (
	"strings"
)

// Op tags a single line of an EditScript.
type Op int

const (
	Same Op = iota
	Add
	Remove
)

// String returns the lowercase name used in structured output.
func (o Op) String() string {
	switch o {
	case Add:
		return "add"
	case Remove:
		return "remove"
	default:
		return "same"
	}
}

// Marker returns the one character prefix used by text renderers.
func (o Op) Marker() string {
	switch o {
	case Add:
		return "+"
	case Remove:
		return "-"
	default:
		return " "
	}
}

// ParseOp is the inverse of Op.String. The boolean is false for unknown names.
func ParseOp(s string) (Op, bool) {
	switch strings.ToLower(s) {
	case "same":
		return Same, true
	case "add":
		return Add, true
	case "remove":
		return Remove, true
	}
	return Same, false
}

// EditOp is one tagged line.
type EditOp struct {
	Op   Op
	Line string
}

// EditScript is the ordered result of one diff computation.
type EditScript []EditOp

// SplitLines splits text on "\n" only. A "\r" preceding the newline stays on
// the line, and the empty string yields a single empty line.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// Compute diffs original against modified at line granularity.
func Compute(original, modified string) EditScript {
	return ComputeLines(SplitLines(original), SplitLines(modified))
}

// ComputeLines runs the greedy walk over already split lines.
func ComputeLines(original, modified []string) EditScript {
	script := make(EditScript, 0, max(len(original), len(modified)))

	i, j := 0, 0
	for i < len(original) || j < len(modified) {
		switch {
		case i >= len(original):
			script = append(script, EditOp{Op: Add, Line: modified[j]})
			j++
		case j >= len(modified):
			script = append(script, EditOp{Op: Remove, Line: original[i]})
			i++
		case original[i] == modified[j]:
			script = append(script, EditOp{Op: Same, Line: original[i]})
			i++
			j++
		default:
			distAdd := indexFrom(original, i+1, modified[j])
			distRemove := indexFrom(modified, j+1, original[i])

			if distRemove >= 0 && (distAdd < 0 || distRemove < distAdd) {
				script = append(script, EditOp{Op: Add, Line: modified[j]})
				j++
			} else {
				script = append(script, EditOp{Op: Remove, Line: original[i]})
				i++
			}
		}
	}

	return script
}

// indexFrom returns the distance from start to the first occurrence of target
// in lines, or -1. A start past the end is simply not found.
func indexFrom(lines []string, start int, target string) int {
	for k := start; k < len(lines); k++ {
		if lines[k] == target {
			return k - start
		}
	}
	return -1
}
