// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"

	"github.com/tfctl/textdiff/internal/config"
	"github.com/tfctl/textdiff/internal/linediff"
)

var tableHeaders = []string{"op", "old", "new", "line"}

// TableWriter renders the items in a tabular form honoring color, titles and
// padding options. Output is written to w. If w is nil, os.Stdout is used.
func TableWriter(items []item, opts Options, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	// We return early if there are no results to display.
	if len(items) == 0 {
		return
	}

	styles := newStyles(opts.Color)
	cellStyle := lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
	headerStyle := cellStyle.Bold(true)
	if opts.Color {
		headerStyle = headerStyle.Foreground(styles.titleColor)
	}

	// We build the table rows and remember each row's style.
	rows := make([][]string, 0, len(items))
	rowStyles := make([]lipgloss.Style, 0, len(items))
	for _, it := range items {
		if it.gap > 0 {
			rows = append(rows, []string{"...", "", "", gapText(it.gap)})
			rowStyles = append(rowStyles, styles.gap.Inherit(cellStyle))
			continue
		}
		rows = append(rows, []string{
			it.op.Op.String(),
			InterfaceToString(it.op.Old, "-"),
			InterfaceToString(it.op.New, "-"),
			it.op.Line,
		})
		rowStyles = append(rowStyles, styles.forOp(it.op.Op).Inherit(cellStyle))
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row >= 0 && row < len(rowStyles):
				style = rowStyles[row]
			default:
				style = cellStyle
			}

			if col > 0 {
				style = style.PaddingLeft(opts.Padding)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	// We add column headers if titles are enabled.
	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(tableHeaders...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// styles holds the lipgloss styles for each kind of line.
type styles struct {
	add, remove, same, gap lipgloss.Style
	titleColor             color.Color
}

func newStyles(colored bool) styles {
	plain := lipgloss.NewStyle()
	s := styles{add: plain, remove: plain, same: plain, gap: plain}
	if !colored {
		return s
	}

	add, remove, same, title := getColors("colors")
	s.add = plain.Foreground(add)
	s.remove = plain.Foreground(remove)
	s.same = plain.Foreground(same)
	s.gap = plain.Foreground(same).Faint(true)
	s.titleColor = title
	return s
}

func (s styles) forOp(op linediff.Op) lipgloss.Style {
	switch op {
	case linediff.Add:
		return s.add
	case linediff.Remove:
		return s.remove
	default:
		return s.same
	}
}

// getColors returns configured color values for rendering. Each color is
// selected based on terminal background color and brightness so that we can
// make sure output is reasonably visible for all(?) terminal themes.
func getColors(key string) (add, remove, same, title color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	// Use the explicit color if found in the config and leave it up to the user
	// to choose appropriate colors for their theme. If not found, pick a
	// reasonable default based on terminal background.
	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	add = resolveColor(key+".add", "#1a7f37", "#3fb950")
	remove = resolveColor(key+".remove", "#cf222e", "#f85149")
	same = resolveColor(key+".same", "#57606a", "#8b949e")
	title = resolveColor(key+".title", "#b08800", "#f6be00")

	return
}
