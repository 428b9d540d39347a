// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package backup

import (
	"fmt"
	"strings"
	"time"
)

const snapshotTimeLayout = "2006-01-02 15:04:05"

// Device is a backup source, e.g. a phone or a VM. It is compared by value
// and used as a map key.
type Device struct {
	ID           string
	Name         string
	Model        string
	SerialNumber string
}

// Info returns the human readable description of the device.
func (d Device) Info() string {
	var parts []string
	if d.Name != "" {
		parts = append(parts, d.Name)
	}
	if d.Model != "" {
		parts = append(parts, "("+d.Model+")")
	}
	parts = append(parts, d.ID)
	return strings.Join(parts, " ")
}

// Snapshot is one point-in-time backup of a device.
type Snapshot struct {
	ID          string
	Created     time.Time
	Size        int64
	Description string
}

// Info returns the human readable description of the snapshot.
func (s Snapshot) Info() string {
	label := s.Description
	if label == "" {
		label = s.ID
	}
	if s.Created.IsZero() {
		return fmt.Sprintf("%s %s", formatSize(s.Size), label)
	}
	return fmt.Sprintf("%s %s %s", s.Created.UTC().Format(snapshotTimeLayout), formatSize(s.Size), label)
}

func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}

// Entry pairs a device with its snapshots.
type Entry struct {
	Device    Device
	Snapshots []Snapshot
}

// DeviceSnapshots maps devices to their snapshots. Devices are unique and
// keep their insertion order, which drives the menu layout.
type DeviceSnapshots []Entry

// Get returns the snapshots registered for the device.
func (ds DeviceSnapshots) Get(device Device) ([]Snapshot, bool) {
	for _, e := range ds {
		if e.Device == device {
			return e.Snapshots, true
		}
	}
	return nil, false
}

// Devices returns the devices in order.
func (ds DeviceSnapshots) Devices() []Device {
	devices := make([]Device, 0, len(ds))
	for _, e := range ds {
		devices = append(devices, e.Device)
	}
	return devices
}

func (ds DeviceSnapshots) Len() int {
	return len(ds)
}

func (ds DeviceSnapshots) IsEmpty() bool {
	return len(ds) == 0
}

// Clone returns a deep copy so that callers can't alias snapshot slices.
func (ds DeviceSnapshots) Clone() DeviceSnapshots {
	if ds == nil {
		return nil
	}
	out := make(DeviceSnapshots, 0, len(ds))
	for _, e := range ds {
		out = append(out, Entry{Device: e.Device, Snapshots: append([]Snapshot(nil), e.Snapshots...)})
	}
	return out
}
