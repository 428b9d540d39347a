// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package cliui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var quitTextStyle = lipgloss.NewStyle().Margin(1, 0, 2, 4)

type model struct {
	list      list.Model
	checked   map[int]bool
	confirmed bool
	quitting  bool
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Confirm):
			m.confirmed = true
			return m, tea.Quit
		case key.Matches(msg, keys.Toggle):
			idx := m.list.Index()
			if m.checked[idx] {
				delete(m.checked, idx)
			} else {
				m.checked[idx] = true
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	if m.quitting {
		return quitTextStyle.Render("Selection cancelled.")
	}
	if m.confirmed {
		if len(m.checked) == 0 {
			return quitTextStyle.Render("Selected all.")
		}
		return quitTextStyle.Render(fmt.Sprintf("Selected %d item(s).", len(m.checked)))
	}

	return "\n" + m.list.View()
}

// selection returns the checked indexes in ascending order.
func (m *model) selection() []int {
	indexes := make([]int, 0, len(m.checked))
	for idx := range m.checked {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)
	return indexes
}
