// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package selector

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmware/snapshot-selector/pkg/backup"
)

const promptText = "\nEnter selection (multiple values accepted, leave blank to select all, q to quit):"

// quitShadowedToken is the device token that reads as quit at the prompt.
const quitShadowedToken = "Q"

const quitShadowedHint = "Note: device Q can't be selected by letter because q quits; select it with its snapshot numbers."

// Outcome is how the user finished the prompt.
type Outcome int

const (
	// OutcomeAll means the user left the selection blank.
	OutcomeAll Outcome = iota
	// OutcomeQuit means the user asked to quit, so nothing is selected.
	OutcomeQuit
	// OutcomeChosen means the user picked one or more tokens.
	OutcomeChosen
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAll:
		return "all"
	case OutcomeQuit:
		return "quit"
	case OutcomeChosen:
		return "chosen"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Selection is what a Prompter hands back. Chosen is only meaningful for
// OutcomeChosen.
type Selection struct {
	Outcome Outcome
	Chosen  []backup.DeviceSnapshots
}

// Prompter collects the user's choice for a printed menu.
type Prompter interface {
	Prompt(menu Menu) (Selection, error)
}

// Result is the filtered mapping together with the devices that could not be
// given a token.
type Result struct {
	Outcome   Outcome
	Snapshots backup.DeviceSnapshots
	Omitted   []backup.Device
}

// Selector prints the menu to Out and asks Prompter for a selection.
type Selector struct {
	Out      io.Writer
	Prompter Prompter
}

// Select lets the user filter ds down to a subset of devices and snapshots.
//
// An empty ds returns an empty result without printing or prompting. A blank
// selection returns ds unchanged and quitting returns an empty mapping.
// Chosen tokens are merged, falling back to ds when nothing resolves.
func (s *Selector) Select(ds backup.DeviceSnapshots) (Result, error) {
	if ds.IsEmpty() {
		return Result{Outcome: OutcomeAll, Snapshots: backup.DeviceSnapshots{}}, nil
	}

	if s.Prompter == nil {
		return Result{}, errors.New("no prompter configured")
	}

	out := s.Out
	if out == nil {
		out = io.Discard
	}

	fmt.Fprintln(out)
	menu := NewBuilder(out).Add(ds).Menu()
	if _, ok := menu.Choices[quitShadowedToken]; ok {
		fmt.Fprintln(out, quitShadowedHint)
	}
	fmt.Fprintln(out, promptText)

	sel, err := s.Prompter.Prompt(menu)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read selection: %w", err)
	}

	return Result{
		Outcome:   sel.Outcome,
		Snapshots: Resolve(ds, sel),
		Omitted:   menu.Omitted,
	}, nil
}

// Resolve turns a selection into the filtered mapping. The result never
// shares snapshot slices with ds.
func Resolve(ds backup.DeviceSnapshots, sel Selection) backup.DeviceSnapshots {
	switch sel.Outcome {
	case OutcomeQuit:
		return backup.DeviceSnapshots{}
	case OutcomeChosen:
		merged := backup.Merge(sel.Chosen...)
		if merged.IsEmpty() {
			return ds.Clone()
		}
		return merged
	default:
		return ds.Clone()
	}
}
