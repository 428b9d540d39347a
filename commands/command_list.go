// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package commands

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/vmware/snapshot-selector/pkg/catalog"
	"github.com/vmware/snapshot-selector/pkg/selector"
)

// NewCommandList prints the selection menu for the catalog without asking
// for input, so tokens can be looked up ahead of time.
func NewCommandList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the devices and snapshots in a backup catalog with their tokens",
		Args:  cobra.NoArgs,
		Run:   listCommandFunc,
	}
}

func listCommandFunc(cmd *cobra.Command, args []string) {
	if err := runList(cmd.OutOrStdout()); err != nil {
		log.Fatalf("Failed to list catalog: %v", err)
	}
}

func runList(out io.Writer) error {
	ds, err := catalog.ParseFromFile(catalogFile)
	if err != nil {
		return fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if ds.IsEmpty() {
		printLog("Catalog %s has no devices", catalogFile)
		return nil
	}

	menu := selector.NewBuilder(out).Add(ds).Menu()
	warnOmitted(menu.Omitted)
	return nil
}
