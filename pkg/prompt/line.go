// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vmware/snapshot-selector/pkg/backup"
	"github.com/vmware/snapshot-selector/pkg/selector"
)

const quitToken = "q"

// ErrTooManyAttempts is returned when the user keeps entering invalid
// selections past MaxAttempts.
var ErrTooManyAttempts = errors.New("too many invalid selections")

// LinePrompter reads a selection from a line of text. Tokens are separated by
// whitespace or commas and matched case-insensitively.
type LinePrompter struct {
	reader *bufio.Reader
	out    io.Writer

	// MaxAttempts bounds the number of invalid lines before giving up.
	// Zero means keep asking.
	MaxAttempts int
}

// NewLinePrompter returns a prompter reading from in. Re-prompt messages are
// written to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	if out == nil {
		out = io.Discard
	}
	return &LinePrompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Prompt implements selector.Prompter. Running out of input counts as quit.
func (p *LinePrompter) Prompt(menu selector.Menu) (selector.Selection, error) {
	lookup := make(map[string]string, len(menu.Choices))
	for token := range menu.Choices {
		lookup[strings.ToLower(token)] = token
	}

	for attempt := 1; ; attempt++ {
		line, err := p.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return selector.Selection{}, fmt.Errorf("failed to read user input: %w", err)
		}
		if errors.Is(err, io.EOF) && line == "" {
			return selector.Selection{Outcome: selector.OutcomeQuit}, nil
		}

		sel, invalid := parse(line, lookup, menu.Choices)
		if len(invalid) == 0 {
			return sel, nil
		}

		fmt.Fprintf(p.out, "Invalid selection: %s\n", strings.Join(invalid, ", "))
		if p.MaxAttempts > 0 && attempt >= p.MaxAttempts {
			return selector.Selection{}, ErrTooManyAttempts
		}
		if errors.Is(err, io.EOF) {
			return selector.Selection{Outcome: selector.OutcomeQuit}, nil
		}
	}
}

func parse(line string, lookup map[string]string, choices selector.ChoiceTable) (selector.Selection, []string) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\r' || r == '\n'
	})
	if len(fields) == 0 {
		return selector.Selection{Outcome: selector.OutcomeAll}, nil
	}

	var (
		chosen  []backup.DeviceSnapshots
		invalid []string
		seen    = make(map[string]bool)
	)
	for _, f := range fields {
		key := strings.ToLower(f)
		if key == quitToken {
			return selector.Selection{Outcome: selector.OutcomeQuit}, nil
		}
		token, ok := lookup[key]
		if !ok {
			invalid = append(invalid, f)
			continue
		}
		if seen[token] {
			continue
		}
		seen[token] = true
		chosen = append(chosen, choices[token])
	}
	if len(invalid) > 0 {
		return selector.Selection{}, invalid
	}
	return selector.Selection{Outcome: selector.OutcomeChosen, Chosen: chosen}, nil
}
