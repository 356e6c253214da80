// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"

	"github.com/dustin/go-humanize"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/textdiff/internal/differ"
	"github.com/tfctl/textdiff/internal/filters"
	"github.com/tfctl/textdiff/internal/linediff"
	"github.com/tfctl/textdiff/internal/log"
)

// Output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatStats = "stats"
	FormatRaw   = "raw"
)

// Formats lists every supported format, default first.
var Formats = []string{FormatText, FormatTable, FormatJSON, FormatYAML, FormatStats, FormatRaw}

// defaultRawContext is the unified context used when Context is negative.
const defaultRawContext = 3

// Options control Render.
type Options struct {
	Format string
	// Color styles add, remove and same lines.
	Color bool
	// Numbers adds original and modified line number columns to text output.
	Numbers bool
	// Titles adds a header row to table output.
	Titles bool
	// Context is the number of unchanged lines kept around each change in text
	// and table output. Negative keeps everything.
	Context int
	// Filter is a filters spec applied before rendering.
	Filter string
	// Padding is the space between table columns.
	Padding int
	// FromName and ToName label the raw unified output.
	FromName string
	ToName   string
}

// Row is the structured form of one edit operation. Old and New are 1-based
// line numbers, omitted when the line does not exist on that side.
type Row struct {
	Op   string `json:"op" yaml:"op"`
	Line string `json:"line" yaml:"line"`
	Old  int    `json:"old,omitempty" yaml:"old,omitempty"`
	New  int    `json:"new,omitempty" yaml:"new,omitempty"`
}

// Render writes script to w in the requested format. If w is nil, os.Stdout is
// used.
func Render(w io.Writer, script linediff.EditScript, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}
	log.Debugf("render: format=%s ops=%d", format, len(script))

	// Stats and raw describe the whole script, so they skip filtering.
	switch format {
	case FormatStats:
		return writeStats(w, script.Stats())
	case FormatRaw:
		context := opts.Context
		if context < 0 {
			context = defaultRawContext
		}
		text, err := differ.Unified(script.Original(), script.Modified(), opts.FromName, opts.ToName, context)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, text)
		return err
	}

	numbered, err := filters.Apply(script.Numbered(), opts.Filter)
	if err != nil {
		return err
	}

	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(toRows(numbered), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case FormatYAML:
		out, err := yaml.Marshal(toRows(numbered))
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	case FormatTable:
		TableWriter(collapse(numbered, opts.Context), opts, w)
		return nil
	case FormatText:
		return writeText(w, collapse(numbered, opts.Context), opts)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func toRows(ops []linediff.NumberedOp) []Row {
	rows := make([]Row, 0, len(ops))
	for _, op := range ops {
		rows = append(rows, Row{Op: op.Op.String(), Line: op.Line, Old: op.Old, New: op.New})
	}
	return rows
}

func writeText(w io.Writer, items []item, opts Options) error {
	styles := newStyles(opts.Color)

	for _, it := range items {
		var line string
		if it.gap > 0 {
			line = styles.gap.Render(gapText(it.gap))
		} else {
			line = styles.forOp(it.op.Op).Render(it.op.Op.Marker() + it.op.Line)
		}

		if opts.Numbers {
			if it.gap > 0 {
				line = fmt.Sprintf("%5s %5s %s", "", "", line)
			} else {
				line = fmt.Sprintf("%5s %5s %s", InterfaceToString(it.op.Old), InterfaceToString(it.op.New), line)
			}
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeStats(w io.Writer, stats linediff.Stats) error {
	_, err := fmt.Fprintf(w, "+%s -%s =%s\n",
		humanize.Comma(int64(stats.Added)),
		humanize.Comma(int64(stats.Removed)),
		humanize.Comma(int64(stats.Same)))
	return err
}

func gapText(n int) string {
	if n == 1 {
		return "... 1 unchanged line"
	}
	return fmt.Sprintf("... %s unchanged lines", humanize.Comma(int64(n)))
}

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}
