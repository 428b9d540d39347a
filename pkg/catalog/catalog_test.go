// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vmware/snapshot-selector/pkg/backup"
)

func TestParseFromFile(t *testing.T) {
	content := `devices:
  - id: 4227fecd97945f54
    name: Ann's iPhone
    model: iPhone9,3
    serial_number: F17SX0ABCDEF
    snapshots:
      - id: "1"
        created: "2025-06-30T12:00:05Z"
        size: 1536
        description: nightly
      - id: "2"
        created: "2025-07-01T14:00:00+02:00"
  - id: 5338fecd97945f54
    name: iPad
    snapshots: []
`

	tmpFile := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(tmpFile, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	got, err := ParseFromFile(tmpFile)
	if err != nil {
		t.Fatalf("ParseFromFile returned error: %v", err)
	}

	want := backup.DeviceSnapshots{
		{
			Device: backup.Device{
				ID:           "4227fecd97945f54",
				Name:         "Ann's iPhone",
				Model:        "iPhone9,3",
				SerialNumber: "F17SX0ABCDEF",
			},
			Snapshots: []backup.Snapshot{
				{
					ID:          "1",
					Created:     time.Date(2025, 6, 30, 12, 0, 5, 0, time.UTC),
					Size:        1536,
					Description: "nightly",
				},
				{
					ID:      "2",
					Created: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
				},
			},
		},
		{
			Device:    backup.Device{ID: "5338fecd97945f54", Name: "iPad"},
			Snapshots: []backup.Snapshot{},
		},
	}

	require.Equal(t, want, got)
}

func TestParse_JSON(t *testing.T) {
	got, err := Parse([]byte(`{"devices":[{"id":"d1","snapshots":[{"id":"s1"}]}]}`))
	require.NoError(t, err)
	require.Equal(t, backup.DeviceSnapshots{
		{Device: backup.Device{ID: "d1"}, Snapshots: []backup.Snapshot{{ID: "s1"}}},
	}, got)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "missing device id", content: "devices:\n  - name: x\n", errMsg: "device #1 has no id"},
		{name: "duplicate device", content: "devices:\n  - id: a\n  - id: a\n", errMsg: `duplicate device id "a"`},
		{name: "missing snapshot id", content: "devices:\n  - id: a\n    snapshots:\n      - size: 1\n", errMsg: "snapshot with no id"},
		{name: "duplicate snapshot", content: "devices:\n  - id: a\n    snapshots:\n      - id: s\n      - id: s\n", errMsg: `duplicate snapshot id "s"`},
		{name: "unknown field", content: "devices:\n  - id: a\n    colour: red\n", errMsg: "unmarshal catalog failed"},
		{name: "not yaml", content: "devices: [", errMsg: "unmarshal catalog failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			require.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestParseFromFile_Missing(t *testing.T) {
	_, err := ParseFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorContains(t, err, "read file failed")
}

func TestWrite_RoundTrip(t *testing.T) {
	ds := backup.DeviceSnapshots{
		{
			Device: backup.Device{ID: "d1", Name: "phone"},
			Snapshots: []backup.Snapshot{
				{ID: "s1", Created: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), Size: 42},
				{ID: "s2"},
			},
		},
		{Device: backup.Device{ID: "d2"}, Snapshots: []backup.Snapshot{}},
	}

	for _, format := range ValidFormats {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, ds, format))

			got, err := Parse(buf.Bytes())
			require.NoError(t, err)
			require.Equal(t, ds, got)
		})
	}
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, backup.DeviceSnapshots{}, FormatYAML))
	require.Equal(t, "devices: []\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, nil, FormatJSON))
	require.JSONEq(t, `{"devices": []}`, buf.String())
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, nil, "xml")
	require.ErrorContains(t, err, `unsupported output format "xml"`)
}

func TestWriteToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	ds := backup.DeviceSnapshots{{Device: backup.Device{ID: "d1"}, Snapshots: []backup.Snapshot{{ID: "s1"}}}}

	require.NoError(t, WriteToFile(path, ds, FormatYAML))

	got, err := ParseFromFile(path)
	require.NoError(t, err)
	require.Equal(t, ds, got)
}
