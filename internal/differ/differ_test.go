// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/textdiff/internal/linediff"
)

func same(l string) linediff.EditOp   { return linediff.EditOp{Op: linediff.Same, Line: l} }
func add(l string) linediff.EditOp    { return linediff.EditOp{Op: linediff.Add, Line: l} }
func remove(l string) linediff.EditOp { return linediff.EditOp{Op: linediff.Remove, Line: l} }

func TestAlgorithms(t *testing.T) {
	assert.Equal(t, []string{"greedy", "myers"}, Algorithms())
}

func TestLines(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		original  string
		modified  string
		opts      LineOptions
		want      linediff.EditScript
	}{
		{
			name:     "default is greedy",
			original: "a\nb",
			modified: "b\na",
			want:     linediff.EditScript{remove("a"), same("b"), add("a")},
		},
		{
			name:      "greedy keeps carriage returns",
			algorithm: "greedy",
			original:  "a\r\nb",
			modified:  "a\nb",
			want:      linediff.EditScript{remove("a\r"), add("a"), same("b")},
		},
		{
			name:      "strip cr",
			algorithm: "greedy",
			original:  "a\r\nb\r\n",
			modified:  "a\nb\n",
			opts:      LineOptions{StripCR: true},
			want:      linediff.EditScript{same("a"), same("b"), same("")},
		},
		{
			name:      "myers replace in middle",
			algorithm: "myers",
			original:  "a\nb\nc",
			modified:  "a\nx\nc",
			want:      linediff.EditScript{same("a"), remove("b"), add("x"), same("c")},
		},
		{
			name:      "myers empty",
			algorithm: "myers",
			original:  "",
			modified:  "",
			want:      linediff.EditScript{same("")},
		},
		{
			name:      "myers full replacement",
			algorithm: "myers",
			original:  "x\ny",
			modified:  "p\nq",
			want:      linediff.EditScript{remove("x"), remove("y"), add("p"), add("q")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lines(tt.algorithm, tt.original, tt.modified, tt.opts)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLinesUnknownAlgorithm(t *testing.T) {
	_, err := Lines("patience", "a", "b", LineOptions{})
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.ErrorContains(t, err, "greedy, myers")
}

func TestAlgorithmsCoverAllLines(t *testing.T) {
	pairs := [][2]string{
		{"", "a\nb"},
		{"a\nb", ""},
		{"a\nb\nc\nd", "d\nc\nb\na"},
		{"a\nz\nb", "b\na"},
		{"x\na\nb\nc\ny", "a\nq\nc\nb"},
		{"same\nsame\nsame", "same"},
		{"αβ\n퟿\n✓", "✓\nαβ"},
	}

	for _, name := range Algorithms() {
		for i, p := range pairs {
			t.Run(fmt.Sprintf("%s/%d", name, i), func(t *testing.T) {
				script, err := Lines(name, p[0], p[1], LineOptions{})
				require.NoError(t, err)
				assert.Equal(t, p[0], script.Original())
				assert.Equal(t, p[1], script.Modified())
			})
		}
	}
}

func TestMyersIsMinimal(t *testing.T) {
	// Greedy removes "a" then has to add it back; myers keeps the longest
	// common run.
	original := "a\nb\nc\nd"
	modified := "b\nc\nd\na"

	script, err := Lines("myers", original, modified, LineOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, script.Stats().Same)
	assert.Equal(t, 1, script.Stats().Added)
	assert.Equal(t, 1, script.Stats().Removed)
}

func TestMyersManyDistinctLines(t *testing.T) {
	// Enough unique lines to push the rune mapping past the surrogate range.
	var a, b []string
	for i := range 0xE000 {
		a = append(a, fmt.Sprint(i))
		if i%1000 != 0 {
			b = append(b, fmt.Sprint(i))
		}
	}

	original := strings.Join(a, "\n")
	modified := strings.Join(b, "\n")
	script := Myers(a, b)
	assert.Equal(t, original, script.Original())
	assert.Equal(t, modified, script.Modified())
	assert.Equal(t, 58, script.Stats().Removed)
	assert.Zero(t, script.Stats().Added)
}

func TestMyersFallsBackToGreedy(t *testing.T) {
	saved := maxDistinctLines
	t.Cleanup(func() { maxDistinctLines = saved })

	// The greedy walk emits an add ahead of a remove here; myers never does.
	a := []string{"a", "b"}
	b := []string{"c", "b", "a"}
	greedy := linediff.EditScript{add("c"), remove("a"), same("b"), add("a")}
	require.Equal(t, greedy, linediff.ComputeLines(a, b))

	maxDistinctLines = 3
	assert.NotEqual(t, greedy, Myers(a, b))

	maxDistinctLines = 2
	assert.Equal(t, greedy, Myers(a, b))
}

func TestMaxDistinctLines(t *testing.T) {
	assert.Equal(t, 1112064, maxDistinctLines)
	r := lineRune(maxDistinctLines - 1)
	assert.Equal(t, rune(0x10FFFF), r)
	assert.Equal(t, maxDistinctLines-1, runeLine(r))
}

func TestDistinctLines(t *testing.T) {
	assert.Equal(t, 0, distinctLines(nil, nil))
	assert.Equal(t, 3, distinctLines([]string{"a", "b", "a"}, []string{"b", "c"}))
	assert.Equal(t, 4, distinctLines([]string{"a", "b"}, []string{"", "c"}))
}

func TestLineRune(t *testing.T) {
	for _, i := range []int{0, 1, surrogateLo - 1, surrogateLo, surrogateLo + 1, 0x10000} {
		r := lineRune(i)
		assert.False(t, r >= surrogateLo && r <= surrogateHi, "rune %x is a surrogate", r)
		assert.Equal(t, i, runeLine(r))
	}
}

func TestUnified(t *testing.T) {
	text, err := Unified("a\nb\n", "a\nc\n", "old.txt", "new.txt", 3)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "--- old.txt\n+++ new.txt\n"))
	assert.Contains(t, text, "@@ -1,2 +1,2 @@")
	assert.Contains(t, text, "\n a\n-b\n+c\n")

	text, err = Unified("same\n", "same\n", "a", "b", 3)
	require.NoError(t, err)
	assert.Empty(t, text)

	text, err = Unified("a\nb\nc\n", "a\nx\nc\n", "a", "b", -1)
	require.NoError(t, err)
	assert.Contains(t, text, "@@ -2 +2 @@")
}
