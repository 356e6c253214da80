// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/tfctl/textdiff/internal/linediff"
	"github.com/tfctl/textdiff/internal/log"
)

// surrogateLo..surrogateHi cannot round trip through a Go string.
const (
	surrogateLo = 0xD800
	surrogateHi = 0xDFFF
)

// maxDistinctLines is how many distinct lines fit in the valid rune space.
var maxDistinctLines = 0x10FFFF + 1 - (surrogateHi - surrogateLo + 1)

// Myers computes a minimal line diff with diffmatchpatch. Inside each change
// block removals are emitted before additions. Inputs with more distinct lines
// than there are runes to encode them fall back to the greedy walk.
func Myers(original, modified []string) linediff.EditScript {
	if n := distinctLines(original, modified); n > maxDistinctLines {
		log.Debugf("myers: %d distinct lines exceeds %d, using greedy", n, maxDistinctLines)
		return linediff.ComputeLines(original, modified)
	}

	index := map[string]rune{}
	var lines []string

	encode := func(in []string) []rune {
		out := make([]rune, len(in))
		for i, l := range in {
			r, ok := index[l]
			if !ok {
				r = lineRune(len(lines))
				index[l] = r
				lines = append(lines, l)
			}
			out[i] = r
		}
		return out
	}

	ra := encode(original)
	rb := encode(modified)

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	diffs := dmp.DiffMainRunes(ra, rb, false)

	decode := func(s string) []string {
		var out []string
		for _, r := range s {
			out = append(out, lines[runeLine(r)])
		}
		return out
	}

	script := make(linediff.EditScript, 0, len(original)+len(modified))
	var dels, ins []string

	flush := func() {
		for _, l := range dels {
			script = append(script, linediff.EditOp{Op: linediff.Remove, Line: l})
		}
		for _, l := range ins {
			script = append(script, linediff.EditOp{Op: linediff.Add, Line: l})
		}
		dels, ins = nil, nil
	}

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			for _, l := range decode(d.Text) {
				script = append(script, linediff.EditOp{Op: linediff.Same, Line: l})
			}
		case diffmatchpatch.DiffDelete:
			dels = append(dels, decode(d.Text)...)
		case diffmatchpatch.DiffInsert:
			ins = append(ins, decode(d.Text)...)
		}
	}
	flush()

	return script
}

func distinctLines(original, modified []string) int {
	seen := make(map[string]struct{}, len(original))
	for _, l := range original {
		seen[l] = struct{}{}
	}
	for _, l := range modified {
		seen[l] = struct{}{}
	}
	return len(seen)
}

// lineRune maps a line index to a rune, skipping the surrogate range.
func lineRune(i int) rune {
	r := rune(i)
	if r >= surrogateLo {
		r += surrogateHi - surrogateLo + 1
	}
	return r
}

func runeLine(r rune) int {
	if r > surrogateHi {
		r -= surrogateHi - surrogateLo + 1
	}
	return int(r)
}
