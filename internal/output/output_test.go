// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/textdiff/internal/linediff"
)

// replaceScript is " a", "-b", "+x", " c".
func replaceScript() linediff.EditScript {
	return linediff.Compute("a\nb\nc", "a\nx\nc")
}

// middleScript changes line 5 of 9.
func middleScript() linediff.EditScript {
	return linediff.Compute("1\n2\n3\n4\n5\n6\n7\n8\n9", "1\n2\n3\n4\nX\n6\n7\n8\n9")
}

func render(t *testing.T, script linediff.EditScript, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, script, opts))
	return buf.String()
}

func TestRenderText(t *testing.T) {
	tests := []struct {
		name   string
		script linediff.EditScript
		opts   Options
		want   string
	}{
		{
			name:   "default format",
			script: replaceScript(),
			opts:   Options{Context: -1},
			want:   " a\n-b\n+x\n c\n",
		},
		{
			name:   "numbers",
			script: replaceScript(),
			opts:   Options{Format: FormatText, Numbers: true, Context: -1},
			want: "    1     1  a\n" +
				"    2       -b\n" +
				"          2 +x\n" +
				"    3     3  c\n",
		},
		{
			name:   "context",
			script: middleScript(),
			opts:   Options{Context: 1},
			want:   "... 3 unchanged lines\n 4\n-5\n+X\n 6\n... 3 unchanged lines\n",
		},
		{
			name:   "context zero",
			script: middleScript(),
			opts:   Options{Context: 0},
			want:   "... 4 unchanged lines\n-5\n+X\n... 4 unchanged lines\n",
		},
		{
			name:   "context larger than text",
			script: replaceScript(),
			opts:   Options{Context: 10},
			want:   " a\n-b\n+x\n c\n",
		},
		{
			name:   "no changes collapse",
			script: linediff.Compute("a\nb", "a\nb"),
			opts:   Options{Context: 3},
			want:   "... 2 unchanged lines\n",
		},
		{
			name:   "single unchanged line",
			script: linediff.Compute("a", "a"),
			opts:   Options{Context: 0},
			want:   "... 1 unchanged line\n",
		},
		{
			name:   "filter",
			script: replaceScript(),
			opts:   Options{Context: -1, Filter: "op!=same"},
			want:   "-b\n+x\n",
		},
		{
			name:   "carriage return preserved",
			script: linediff.Compute("a\r", "a"),
			opts:   Options{Context: -1},
			want:   "-a\r\n+a\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.script, tt.opts))
		})
	}
}

func TestRenderTextColor(t *testing.T) {
	plain := render(t, replaceScript(), Options{Context: -1})
	colored := render(t, replaceScript(), Options{Context: -1, Color: true})

	assert.NotEqual(t, plain, colored)
	assert.Contains(t, colored, "\x1b[")
	assert.Contains(t, colored, "+x")
}

func TestRenderJSON(t *testing.T) {
	out := render(t, replaceScript(), Options{Format: FormatJSON, Context: 0})

	var rows []Row
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Equal(t, []Row{
		{Op: "same", Line: "a", Old: 1, New: 1},
		{Op: "remove", Line: "b", Old: 2},
		{Op: "add", Line: "x", New: 2},
		{Op: "same", Line: "c", Old: 3, New: 3},
	}, rows)
	assert.NotContains(t, out, `"new": 0`)
}

func TestRenderYAML(t *testing.T) {
	out := render(t, replaceScript(), Options{Format: FormatYAML, Filter: "op=add"})

	var rows []Row
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	assert.Equal(t, []Row{{Op: "add", Line: "x", New: 2}}, rows)
}

func TestRenderStats(t *testing.T) {
	assert.Equal(t, "+1 -1 =2\n", render(t, replaceScript(), Options{Format: FormatStats}))

	var buf bytes.Buffer
	require.NoError(t, writeStats(&buf, linediff.Stats{Same: 1234567, Added: 1000, Removed: 0}))
	assert.Equal(t, "+1,000 -0 =1,234,567\n", buf.String())
}

func TestRenderRaw(t *testing.T) {
	out := render(t, replaceScript(), Options{Format: FormatRaw, Context: -1, FromName: "a.txt", ToName: "b.txt"})
	assert.True(t, strings.HasPrefix(out, "--- a.txt\n+++ b.txt\n"))
	assert.Contains(t, out, "-b\n+x\n")

	out = render(t, linediff.Compute("a", "a"), Options{Format: FormatRaw})
	assert.Empty(t, out)
}

func TestRenderTable(t *testing.T) {
	out := render(t, middleScript(), Options{Format: FormatTable, Context: 1, Titles: true, Padding: 2})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "op")
	assert.Contains(t, lines[0], "line")
	assert.Contains(t, out, "3 unchanged lines")
	assert.Contains(t, out, "remove")
	assert.Contains(t, out, "X")

	empty := render(t, replaceScript(), Options{Format: FormatTable, Filter: "line=zzz"})
	assert.Empty(t, empty)
}

func TestRenderErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorContains(t, Render(&buf, replaceScript(), Options{Format: "html"}), "unknown output format")
	assert.ErrorContains(t, Render(&buf, replaceScript(), Options{Filter: "colour=red"}), "unknown key")
}

func TestCollapse(t *testing.T) {
	ops := middleScript().Numbered()

	all := collapse(ops, -1)
	assert.Len(t, all, len(ops))

	items := collapse(ops, 2)
	require.Len(t, items, 8)
	assert.Equal(t, 2, items[0].gap)
	assert.Equal(t, "3", items[1].op.Line)
	assert.Equal(t, 2, items[7].gap)

	assert.Empty(t, collapse(nil, 3))
}

func TestGetColors(t *testing.T) {
	add, remove, same, title := getColors("colors")

	assert.NotNil(t, add)
	assert.NotNil(t, remove)
	assert.NotNil(t, same)
	assert.NotNil(t, title)
}

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		emptyVal string
		want     string
	}{
		{name: "string", value: "hello", want: "hello"},
		{name: "int", value: 42, want: "42"},
		{name: "float64", value: 42.5, want: "42.5"},
		{name: "whole float64", value: -42.0, want: "-42"},
		{name: "bool true", value: true, want: "true"},
		{name: "bool false is zero value", value: false, want: ""},
		{name: "nil default", value: nil, want: ""},
		{name: "nil custom", value: nil, emptyVal: "-", want: "-"},
		{name: "slice", value: []string{"a", "b"}, want: `["a","b"]`},
		{name: "map", value: map[string]int{"x": 1}, want: `{"x":1}`},
		{name: "zero value int", value: 0, want: ""},
		{name: "zero value with custom empty", value: 0, emptyVal: "-", want: "-"},
		{name: "empty string with custom empty", value: "", emptyVal: "N/A", want: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if tt.emptyVal != "" {
				got = InterfaceToString(tt.value, tt.emptyVal)
			} else {
				got = InterfaceToString(tt.value)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func BenchmarkRenderText(b *testing.B) {
	script := middleScript()
	opts := Options{Context: 3, Numbers: true}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Render(&bytes.Buffer{}, script, opts)
	}
}
