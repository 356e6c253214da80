// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package linediff

import "strings"

// Stats counts the ops of a script by tag.
type Stats struct {
	Same    int `json:"same" yaml:"same"`
	Added   int `json:"added" yaml:"added"`
	Removed int `json:"removed" yaml:"removed"`
}

// OriginalLines is the number of lines in the original text.
func (s Stats) OriginalLines() int { return s.Same + s.Removed }

// ModifiedLines is the number of lines in the modified text.
func (s Stats) ModifiedLines() int { return s.Same + s.Added }

// Stats tallies the script.
func (es EditScript) Stats() (s Stats) {
	for _, op := range es {
		switch op.Op {
		case Add:
			s.Added++
		case Remove:
			s.Removed++
		default:
			s.Same++
		}
	}
	return
}

// HasChanges reports whether any line was added or removed.
func (es EditScript) HasChanges() bool {
	for _, op := range es {
		if op.Op != Same {
			return true
		}
	}
	return false
}

// Original rebuilds the original text from the script.
func (es EditScript) Original() string {
	return es.join(Add)
}

// Modified rebuilds the modified text from the script.
func (es EditScript) Modified() string {
	return es.join(Remove)
}

func (es EditScript) join(skip Op) string {
	lines := make([]string, 0, len(es))
	for _, op := range es {
		if op.Op != skip {
			lines = append(lines, op.Line)
		}
	}
	return strings.Join(lines, "\n")
}

// NumberedOp is an EditOp annotated with 1-based line numbers. Old is zero
// for added lines and New is zero for removed lines.
type NumberedOp struct {
	EditOp
	Old int
	New int
}

// Numbered annotates every op with its position in each text.
func (es EditScript) Numbered() []NumberedOp {
	out := make([]NumberedOp, 0, len(es))
	oldN, newN := 0, 0
	for _, op := range es {
		n := NumberedOp{EditOp: op}
		if op.Op != Add {
			oldN++
			n.Old = oldN
		}
		if op.Op != Remove {
			newN++
			n.New = newN
		}
		out = append(out, n)
	}
	return out
}
