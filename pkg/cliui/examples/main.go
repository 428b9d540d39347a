// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/vmware/snapshot-selector/pkg/cliui"
)

func main() {
	indexes, err := cliui.MultiSelect(os.Stderr, "Please select snapshots:", []string{
		" A: DEVICE phone (iPhone9,3) 4227fecd",
		" 1: 2025-06-30 12:00:05 1.2 GiB nightly",
		" 2: 2025-07-01 12:00:05 1.3 GiB nightly",
	})
	if errors.Is(err, cliui.ErrCancelled) {
		fmt.Println("Nothing selected")
		return
	}
	if err != nil {
		log.Fatalf("Error occurred during selection: %v", err)
	}

	fmt.Printf("Indexes: %v\n", indexes)
}
