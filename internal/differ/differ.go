// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/tfctl/textdiff/internal/linediff"
	"github.com/tfctl/textdiff/internal/log"
)

// ErrUnknownAlgorithm is returned by Lines for an unregistered algorithm name.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm diffs two pre-split texts.
type Algorithm func(original, modified []string) linediff.EditScript

// DefaultAlgorithm is used when no algorithm is named.
const DefaultAlgorithm = "greedy"

var algorithms = map[string]Algorithm{
	"greedy": linediff.ComputeLines,
	"myers":  Myers,
}

// Algorithms returns the registered algorithm names, sorted.
func Algorithms() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LineOptions tune Lines.
type LineOptions struct {
	// StripCR drops one trailing carriage return from every line before
	// comparing, so CRLF and LF texts compare equal.
	StripCR bool
}

// Lines splits both texts and diffs them with the named algorithm. An empty
// name selects DefaultAlgorithm.
func Lines(algorithm, original, modified string, opts LineOptions) (linediff.EditScript, error) {
	if algorithm == "" {
		algorithm = DefaultAlgorithm
	}

	fn, ok := algorithms[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %s (valid: %s)", ErrUnknownAlgorithm, algorithm,
			strings.Join(Algorithms(), ", "))
	}

	a := linediff.SplitLines(original)
	b := linediff.SplitLines(modified)
	if opts.StripCR {
		a = stripCR(a)
		b = stripCR(b)
	}

	log.Debugf("lines: algorithm=%s original=%d modified=%d", algorithm, len(a), len(b))
	return fn(a, b), nil
}

func stripCR(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimSuffix(l, "\r")
	}
	return out
}
