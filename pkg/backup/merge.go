// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package backup

// Merge combines the given mappings into one. Devices keep the order in which
// they are first seen across all inputs. When a device appears more than once
// its snapshot lists are unioned, dropping duplicates and keeping the order in
// which each snapshot was first seen.
func Merge(maps ...DeviceSnapshots) DeviceSnapshots {
	merged := DeviceSnapshots{}
	index := make(map[Device]int)
	for _, m := range maps {
		for _, e := range m {
			i, ok := index[e.Device]
			if !ok {
				index[e.Device] = len(merged)
				merged = append(merged, Entry{Device: e.Device, Snapshots: append([]Snapshot(nil), e.Snapshots...)})
				continue
			}
			merged[i].Snapshots = mergeSnapshots(merged[i].Snapshots, e.Snapshots)
		}
	}
	return merged
}

func mergeSnapshots(a, b []Snapshot) []Snapshot {
	seen := make(map[Snapshot]struct{}, len(a)+len(b))
	out := make([]Snapshot, 0, len(a)+len(b))
	for _, list := range [][]Snapshot{a, b} {
		for _, s := range list {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
