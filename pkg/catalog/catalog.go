// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"sigs.k8s.io/yaml"

	"github.com/vmware/snapshot-selector/pkg/backup"
)

const DefaultCatalogFilename = "catalog.yaml"

// Supported output formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

var ValidFormats = []string{FormatYAML, FormatJSON}

type Catalog struct {
	Devices []Device `json:"devices"`
}

type Device struct {
	ID           string     `json:"id"`
	Name         string     `json:"name,omitempty"`
	Model        string     `json:"model,omitempty"`
	SerialNumber string     `json:"serial_number,omitempty"`
	Snapshots    []Snapshot `json:"snapshots"`
}

type Snapshot struct {
	ID          string     `json:"id"`
	Created     *time.Time `json:"created,omitempty"`
	Size        int64      `json:"size,omitempty"`
	Description string     `json:"description,omitempty"`
}

// ParseFromFile reads a YAML or JSON catalog file.
func ParseFromFile(path string) (backup.DeviceSnapshots, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file failed: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML or JSON catalog and validates it.
func Parse(data []byte) (backup.DeviceSnapshots, error) {
	var c Catalog
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal catalog failed: %w", err)
	}

	return c.toDeviceSnapshots()
}

func (c *Catalog) toDeviceSnapshots() (backup.DeviceSnapshots, error) {
	ds := make(backup.DeviceSnapshots, 0, len(c.Devices))
	seenDevices := make(map[string]bool, len(c.Devices))
	for i, d := range c.Devices {
		if d.ID == "" {
			return nil, fmt.Errorf("device #%d has no id", i+1)
		}
		if seenDevices[d.ID] {
			return nil, fmt.Errorf("duplicate device id %q", d.ID)
		}
		seenDevices[d.ID] = true

		snapshots := make([]backup.Snapshot, 0, len(d.Snapshots))
		seenSnapshots := make(map[string]bool, len(d.Snapshots))
		for _, s := range d.Snapshots {
			if s.ID == "" {
				return nil, fmt.Errorf("device %q has a snapshot with no id", d.ID)
			}
			if seenSnapshots[s.ID] {
				return nil, fmt.Errorf("duplicate snapshot id %q on device %q", s.ID, d.ID)
			}
			seenSnapshots[s.ID] = true
			var created time.Time
			if s.Created != nil {
				created = s.Created.UTC()
			}
			snapshots = append(snapshots, backup.Snapshot{
				ID:          s.ID,
				Created:     created,
				Size:        s.Size,
				Description: s.Description,
			})
		}

		ds = append(ds, backup.Entry{
			Device: backup.Device{
				ID:           d.ID,
				Name:         d.Name,
				Model:        d.Model,
				SerialNumber: d.SerialNumber,
			},
			Snapshots: snapshots,
		})
	}
	return ds, nil
}

// FromDeviceSnapshots converts a mapping back to its file representation.
func FromDeviceSnapshots(ds backup.DeviceSnapshots) *Catalog {
	c := &Catalog{Devices: make([]Device, 0, len(ds))}
	for _, e := range ds {
		snapshots := make([]Snapshot, 0, len(e.Snapshots))
		for _, s := range e.Snapshots {
			var created *time.Time
			if !s.Created.IsZero() {
				t := s.Created
				created = &t
			}
			snapshots = append(snapshots, Snapshot{
				ID:          s.ID,
				Created:     created,
				Size:        s.Size,
				Description: s.Description,
			})
		}
		c.Devices = append(c.Devices, Device{
			ID:           e.Device.ID,
			Name:         e.Device.Name,
			Model:        e.Device.Model,
			SerialNumber: e.Device.SerialNumber,
			Snapshots:    snapshots,
		})
	}
	return c
}

// Write encodes ds in the given format.
func Write(w io.Writer, ds backup.DeviceSnapshots, format string) error {
	c := FromDeviceSnapshots(ds)

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(c)
	case FormatJSON:
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	default:
		return fmt.Errorf("unsupported output format %q, valid formats are %v", format, ValidFormats)
	}
	if err != nil {
		return fmt.Errorf("marshal catalog failed: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write catalog failed: %w", err)
	}
	return nil
}

// WriteToFile writes ds to path, replacing any existing file.
func WriteToFile(path string, ds backup.DeviceSnapshots, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file failed: %w", err)
	}
	defer f.Close()

	if err := Write(f, ds, format); err != nil {
		return err
	}
	return f.Close()
}
