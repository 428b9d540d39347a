// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmware/snapshot-selector/pkg/cliui"
	"github.com/vmware/snapshot-selector/pkg/prompt"
	"github.com/vmware/snapshot-selector/pkg/selector"
)

const (
	uiPrompt = "prompt"
	uiTUI    = "tui"
)

var validUIModes = []string{uiPrompt, uiTUI}

var cliuiMultiSelect = cliui.MultiSelect

// tuiPrompter collects the selection with the bubbletea menu instead of a
// typed line.
type tuiPrompter struct {
	out         io.Writer
	title       string
	multiSelect func(out io.Writer, title string, options []string) ([]int, error)
}

func (p *tuiPrompter) Prompt(menu selector.Menu) (selector.Selection, error) {
	options := make([]string, 0, len(menu.Items))
	for _, it := range menu.Items {
		options = append(options, fmt.Sprintf("%2s: %s", it.Token, it.Label))
	}

	indexes, err := p.multiSelect(p.out, p.title, options)
	if errors.Is(err, cliui.ErrCancelled) {
		return selector.Selection{Outcome: selector.OutcomeQuit}, nil
	}
	if err != nil {
		return selector.Selection{}, err
	}
	if len(indexes) == 0 {
		return selector.Selection{Outcome: selector.OutcomeAll}, nil
	}

	sel := selector.Selection{Outcome: selector.OutcomeChosen}
	for _, idx := range indexes {
		sel.Chosen = append(sel.Chosen, menu.Choices[menu.Items[idx].Token])
	}
	return sel, nil
}

// newPrompter returns the prompter for mode and the writer the textual menu
// goes to. The TUI draws its own menu on out, so the textual one is discarded.
func newPrompter(mode string, in io.Reader, out io.Writer) (selector.Prompter, io.Writer, error) {
	switch mode {
	case uiPrompt:
		return prompt.NewLinePrompter(in, out), out, nil
	case uiTUI:
		return &tuiPrompter{
			out:         out,
			title:       "Select devices and snapshots (none selected = all):",
			multiSelect: cliuiMultiSelect,
		}, io.Discard, nil
	default:
		return nil, nil, fmt.Errorf("invalid ui mode: %s, valid modes are %v", mode, validUIModes)
	}
}
