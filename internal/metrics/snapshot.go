// Package metrics samples host-level system metrics (CPU, memory, disk,
// load, network, host identity) into immutable snapshots for rendering.
package metrics

import "time"

// NetworkCounters holds cumulative traffic totals for one interface,
// counted since boot.
type NetworkCounters struct {
	Interface string
	RxBytes   uint64
	TxBytes   uint64
}

// Snapshot is a point-in-time view of the host. Fields that could not be
// probed keep their zero values; Network is nil when the machine has no
// identifiable default route.
type Snapshot struct {
	Timestamp     time.Time
	Hostname      string
	OS            string
	KernelVersion string
	Uptime        time.Duration
	CPUPercent    float64
	MemoryPercent int
	DiskPercent   int
	Load          [3]float64
	Network       *NetworkCounters
}

// clampPercent bounds v to the displayable [0,100] range.
func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// clampInt bounds v to the displayable [0,100] range.
func clampInt(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
