// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package commands

import (
	"fmt"
	"io"
	"log"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vmware/snapshot-selector/pkg/catalog"
	"github.com/vmware/snapshot-selector/pkg/selector"
)

var outFile string

// NewCommandSelect lets the user pick devices and snapshots from the
// catalog and writes the filtered catalog. The menu and prompt go to stderr
// so that stdout only carries the result.
func NewCommandSelect() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select devices and snapshots to keep from a backup catalog",
		Long: `Select devices and snapshots to keep from a backup catalog.
Devices are listed with a letter and snapshots with a number. Enter any
number of tokens separated by spaces or commas:
  - a device letter keeps the device with all of its snapshots
  - a snapshot number keeps that single snapshot
  - a blank line keeps everything
  - q keeps nothing
`,
		Args: cobra.NoArgs,
		Run:  selectCommandFunc,
	}
	cmd.Flags().StringVar(&outFile, "out", "", "write the filtered catalog to this file instead of stdout")
	return cmd
}

func selectCommandFunc(cmd *cobra.Command, args []string) {
	if err := runSelect(cmd.InOrStdin(), cmd.ErrOrStderr(), cmd.OutOrStdout()); err != nil {
		log.Fatalf("Failed to select snapshots: %v", err)
	}
}

func runSelect(in io.Reader, menuOut, out io.Writer) error {
	if !slices.Contains(catalog.ValidFormats, outputFormat) {
		return fmt.Errorf("invalid output format: %s, valid formats are %v", outputFormat, catalog.ValidFormats)
	}

	ds, err := catalog.ParseFromFile(catalogFile)
	if err != nil {
		return fmt.Errorf("failed to parse catalog file: %w", err)
	}
	printLog("Loaded %d device(s) from %s", ds.Len(), catalogFile)

	prompter, menuOut, err := newPrompter(uiMode, in, menuOut)
	if err != nil {
		return err
	}

	s := &selector.Selector{Out: menuOut, Prompter: prompter}
	res, err := s.Select(ds)
	if err != nil {
		return err
	}
	warnOmitted(res.Omitted)

	switch {
	case res.Outcome == selector.OutcomeQuit:
		printLog("Nothing selected")
	case res.Snapshots.IsEmpty():
		printLog("Catalog is empty, nothing to select")
	default:
		printLog("Selected %d device(s)", res.Snapshots.Len())
		for _, d := range res.Snapshots.Devices() {
			snapshots, _ := res.Snapshots.Get(d)
			printLog("  %s: %d snapshot(s)", d.Info(), len(snapshots))
		}
	}

	if outFile != "" {
		if err := catalog.WriteToFile(outFile, res.Snapshots, outputFormat); err != nil {
			return err
		}
		printLog("Filtered catalog written to %s", outFile)
		return nil
	}
	return catalog.Write(out, res.Snapshots, outputFormat)
}
