// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package selector

import (
	"fmt"
	"io"
	"strconv"

	"github.com/vmware/snapshot-selector/pkg/backup"
)

const tokenWidth = 2

// DeviceTokens is the token alphabet for devices. Devices beyond the last
// letter get no token.
var DeviceTokens = func() []string {
	tokens := make([]string, 0, 26)
	for c := 'A'; c <= 'Z'; c++ {
		tokens = append(tokens, string(c))
	}
	return tokens
}()

// ChoiceTable maps a token to the device and snapshots it selects.
type ChoiceTable map[string]backup.DeviceSnapshots

// MenuItem is one printed menu line.
type MenuItem struct {
	Token string
	Label string
}

// Menu is the result of building: the choice table plus the printed items in
// order and the devices that ran out of tokens.
type Menu struct {
	Choices ChoiceTable
	Items   []MenuItem
	Omitted []backup.Device
}

// Tokens returns the tokens in the order they were printed.
func (m Menu) Tokens() []string {
	tokens := make([]string, 0, len(m.Items))
	for _, item := range m.Items {
		tokens = append(tokens, item.Token)
	}
	return tokens
}

// Builder assigns tokens to devices and snapshots and prints the menu as it
// goes. A Builder is single use and must not be shared between goroutines.
type Builder struct {
	out           io.Writer
	deviceTokens  []string
	snapshotIndex int
	choices       ChoiceTable
	items         []MenuItem
	omitted       []backup.Device
}

// NewBuilder returns a Builder that prints the menu to out.
func NewBuilder(out io.Writer) *Builder {
	return newBuilderWithTokens(out, DeviceTokens)
}

func newBuilderWithTokens(out io.Writer, deviceTokens []string) *Builder {
	if out == nil {
		out = io.Discard
	}
	return &Builder{
		out:           out,
		deviceTokens:  deviceTokens,
		snapshotIndex: 1,
		choices:       ChoiceTable{},
	}
}

// Add registers every device and its snapshots in input order.
func (b *Builder) Add(ds backup.DeviceSnapshots) *Builder {
	for _, e := range ds {
		b.device(e.Device, e.Snapshots)
		b.snapshots(e.Device, e.Snapshots)
	}
	return b
}

func (b *Builder) device(device backup.Device, snapshots []backup.Snapshot) {
	if len(b.deviceTokens) == 0 {
		b.omitted = append(b.omitted, device)
		return
	}
	token := b.deviceTokens[0]
	b.deviceTokens = b.deviceTokens[1:]

	label := "DEVICE " + device.Info()
	fmt.Fprintf(b.out, "%*s: %s\n", tokenWidth, token, label)
	b.putChoice(token, label, device, append([]backup.Snapshot(nil), snapshots...))
}

// snapshots runs for omitted devices too, so their snapshots stay selectable
// by number.
func (b *Builder) snapshots(device backup.Device, snapshots []backup.Snapshot) {
	if len(snapshots) == 0 {
		fmt.Fprintln(b.out, "\tNo snapshots.")
		return
	}
	for _, s := range snapshots {
		b.snapshot(device, s)
	}
}

func (b *Builder) snapshot(device backup.Device, snapshot backup.Snapshot) {
	token := strconv.Itoa(b.snapshotIndex)
	b.snapshotIndex++

	label := snapshot.Info()
	fmt.Fprintf(b.out, "%*s:\t%s\n", tokenWidth, token, label)
	b.putChoice(token, label, device, []backup.Snapshot{snapshot})
}

func (b *Builder) putChoice(token, label string, device backup.Device, snapshots []backup.Snapshot) {
	b.choices[token] = backup.DeviceSnapshots{{Device: device, Snapshots: snapshots}}
	b.items = append(b.items, MenuItem{Token: token, Label: label})
}

// Build returns the choice table.
func (b *Builder) Build() ChoiceTable {
	return b.choices
}

// Menu returns the choice table along with the printed items.
func (b *Builder) Menu() Menu {
	return Menu{
		Choices: b.choices,
		Items:   append([]MenuItem(nil), b.items...),
		Omitted: append([]backup.Device(nil), b.omitted...),
	}
}
