// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import "github.com/tfctl/textdiff/internal/linediff"

// item is either one op or, when gap > 0, a run of elided unchanged lines.
type item struct {
	op  linediff.NumberedOp
	gap int
}

// collapse keeps unchanged rows within context rows of a change and replaces
// every other run of unchanged rows with a single gap item. A negative context
// keeps everything.
func collapse(ops []linediff.NumberedOp, context int) []item {
	items := make([]item, 0, len(ops))

	if context < 0 {
		for _, op := range ops {
			items = append(items, item{op: op})
		}
		return items
	}

	keep := make([]bool, len(ops))
	for i, op := range ops {
		if op.Op == linediff.Same {
			continue
		}
		lo := max(0, i-context)
		hi := min(len(ops)-1, i+context)
		for k := lo; k <= hi; k++ {
			keep[k] = true
		}
	}

	gap := 0
	for i, op := range ops {
		if keep[i] {
			if gap > 0 {
				items = append(items, item{gap: gap})
				gap = 0
			}
			items = append(items, item{op: op})
			continue
		}
		gap++
	}
	if gap > 0 {
		items = append(items, item{gap: gap})
	}

	return items
}
