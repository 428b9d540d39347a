// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package cliui

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth = 20
	listHeight   = 20
)

// ErrCancelled is returned when the user quits the menu instead of confirming.
var ErrCancelled = errors.New("user cancelled")

var (
	titleStyle      = lipgloss.NewStyle().MarginLeft(2)
	paginationStyle = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle       = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
)

// MultiSelect displays an interactive command-line menu with a given title
// and a list of options, allowing the user to tick any number of them.
//
// Parameters:
//   - out: Where the menu is drawn. Nil means the terminal's stdout.
//   - title: A string that will be displayed as the heading for the menu.
//   - options: A slice of strings representing the selectable options in the menu.
//
// Returns:
//   - []int: The zero-based indexes of the ticked options, in ascending order.
//     Confirming without ticking anything returns an empty slice.
//   - error: ErrCancelled if the user quits, or the error that stopped the program.
//
// Example usage:
//
//	options := []string{"A: DEVICE phone", " 1: 2025-06-30 nightly"}
//	idx, err := cliui.MultiSelect(os.Stderr, "Select snapshots:", options)
//	if errors.Is(err, cliui.ErrCancelled) {
//	    return
//	}
func MultiSelect(out io.Writer, title string, options []string) ([]int, error) {
	if len(options) == 0 {
		return nil, errors.New("no options provided")
	}

	m := newModel(title, options)
	if _, err := tea.NewProgram(m, programOptions(out)...).Run(); err != nil {
		return nil, fmt.Errorf("error selecting from CLI menu: %w", err)
	}

	if m.quitting || !m.confirmed {
		return nil, ErrCancelled
	}

	return m.selection(), nil
}

func programOptions(out io.Writer) []tea.ProgramOption {
	if out == nil {
		return nil
	}
	return []tea.ProgramOption{tea.WithOutput(out)}
}

func newModel(title string, options []string) *model {
	items := make([]list.Item, 0, len(options))
	for _, option := range options {
		items = append(items, item(option))
	}

	checked := make(map[int]bool)
	l := list.New(items, itemDelegate{checked: checked}, defaultWidth, listHeight)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return keys.ShortHelp()
	}

	return &model{
		list:    l,
		checked: checked,
	}
}
