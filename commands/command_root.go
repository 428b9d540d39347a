// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmware/snapshot-selector/pkg/catalog"
)

const (
	cliName        = "snapshot-selector"
	cliDescription = "A tool to interactively pick devices and snapshots out of a backup catalog"
)

var (
	catalogFile  string
	verbose      bool
	outputFormat string
	uiMode       string

	rootCmd = &cobra.Command{
		Use:   cliName,
		Short: cliDescription,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&catalogFile, "catalog", "c", catalog.DefaultCatalogFilename, "path to the backup catalog file (YAML or JSON)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", catalog.FormatYAML, fmt.Sprintf("output format of the filtered catalog, valid formats are: %v", catalog.ValidFormats))
	rootCmd.PersistentFlags().StringVar(&uiMode, "ui", uiPrompt, fmt.Sprintf("how to collect the selection, valid modes are: %v", validUIModes))

	rootCmd.AddCommand(
		NewCommandVersion(),
		NewCommandSelect(),
		NewCommandList(),
	)
}

func RootCmd() *cobra.Command {
	return rootCmd
}
