// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package commands

import (
	"log"

	"github.com/vmware/snapshot-selector/pkg/backup"
	"github.com/vmware/snapshot-selector/pkg/selector"
)

func printLog(format string, v ...any) {
	if verbose {
		log.Printf(format, v...)
	}
}

// warnOmitted reports devices that got no menu token. They are only kept
// when the user selects everything.
func warnOmitted(omitted []backup.Device) {
	if len(omitted) == 0 {
		return
	}
	last := selector.DeviceTokens[len(selector.DeviceTokens)-1]
	log.Printf("Warning: %d device(s) after token %s have no token and can only be kept by selecting all", len(omitted), last)
	for _, d := range omitted {
		printLog("No token for device %s", d.Info())
	}
}
