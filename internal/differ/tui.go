// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"
)

// FileItem is a candidate for the picker.
type FileItem struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// ListFiles returns the regular files directly inside dir, sorted by name.
func ListFiles(dir string) ([]FileItem, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var items []FileItem
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		items = append(items, FileItem{
			Path:    filepath.Join(dir, e.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return items, nil
}

// ErrNotTerminal is returned by SelectFiles when stdin is not a terminal.
var ErrNotTerminal = errors.New("interactive selection needs a terminal")

// SelectFiles lets the user pick two files, in selection order. Returns nil
// if the user quits.
func SelectFiles(items []FileItem) ([]FileItem, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNotTerminal
	}

	p := tea.NewProgram(newModel(items))
	m, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("picker failed: %w", err)
	}
	return m.(model).selected, nil
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Go     key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Go, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, k.ShortHelp()}
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
	Go:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "diff")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
}

type model struct {
	items    []FileItem
	cursor   int
	selected []FileItem
	help     help.Model
}

func newModel(items []FileItem) model {
	return model{items: items, help: help.New()}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msgKey, keys.Quit):
		m.selected = nil
		return m, tea.Quit
	case key.Matches(msgKey, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msgKey, keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msgKey, keys.Toggle):
		if len(m.items) == 0 {
			break
		}
		current := m.items[m.cursor]
		if i := m.indexOf(current); i >= 0 {
			m.selected = slices.Delete(slices.Clone(m.selected), i, i+1)
		} else if len(m.selected) < 2 {
			m.selected = append(slices.Clone(m.selected), current)
		}
	case key.Matches(msgKey, keys.Go):
		if len(m.selected) == 2 {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString("Select two files:\n\n")
	for i, item := range m.items {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		mark := " "
		if m.indexOf(item) >= 0 {
			mark = "x"
		}

		fmt.Fprintf(&b, "%s [%s] %-40s %8s %s\n", cursor, mark, filepath.Base(item.Path),
			humanize.IBytes(uint64(item.Size)), humanize.Time(item.ModTime)) //nolint:gosec
	}
	b.WriteString("\n" + m.help.View(keys) + "\n")
	return b.String()
}

func (m model) indexOf(item FileItem) int {
	return slices.IndexFunc(m.selected, func(s FileItem) bool { return s.Path == item.Path })
}
