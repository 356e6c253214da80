// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/tfctl/textdiff/internal/log"
)

// JSONOptions tune JSON.
type JSONOptions struct {
	// FilterKeys are top-level keys removed from both documents before
	// comparing.
	FilterKeys []string
	// Color enables ANSI coloring of the rendered delta.
	Color bool
	// ShowArrayIndex prefixes array elements with their index.
	ShowArrayIndex bool
}

// JSONResult is the outcome of a structural comparison.
type JSONResult struct {
	Modified bool
	// Text is the rendered delta. Empty when Modified is false.
	Text string
}

// JSON compares two JSON documents structurally. FilterKeys only apply when
// both documents are objects.
func JSON(a, b []byte, opts JSONOptions) (JSONResult, error) {
	log.Debugf("json: len(a)=%d len(b)=%d", len(a), len(b))

	var left, right interface{}
	if err := json.Unmarshal(a, &left); err != nil {
		return JSONResult{}, fmt.Errorf("failed to unmarshal original: %w", err)
	}
	if err := json.Unmarshal(b, &right); err != nil {
		return JSONResult{}, fmt.Errorf("failed to unmarshal modified: %w", err)
	}

	differ := gojsondiff.New()
	var delta gojsondiff.Diff

	lo, lok := left.(map[string]interface{})
	ro, rok := right.(map[string]interface{})

	if lok && rok {
		for _, key := range opts.FilterKeys {
			if key != "" {
				delete(lo, key)
				delete(ro, key)
			}
		}
		delta = differ.CompareObjects(lo, ro)
	} else {
		// Arrays, scalars and mismatched kinds are compared as a single wrapped
		// value.
		wl := map[string]interface{}{"value": left}
		wr := map[string]interface{}{"value": right}
		left = wl
		delta = differ.CompareObjects(wl, wr)
	}

	if !delta.Modified() {
		return JSONResult{}, nil
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: opts.ShowArrayIndex,
		Coloring:       opts.Color,
	}

	text, err := formatter.NewAsciiFormatter(left, config).Format(delta)
	if err != nil {
		return JSONResult{}, fmt.Errorf("failed to format delta: %w", err)
	}

	return JSONResult{Modified: true, Text: text}, nil
}
