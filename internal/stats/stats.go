// Package stats turns cumulative interface byte counters into smoothed rates.
package stats

import "time"

// Snapshot is a single reading of an interface's cumulative byte counters.
type Snapshot struct {
	// RxBytes is the total bytes received on the interface.
	RxBytes uint64
	// TxBytes is the total bytes transmitted on the interface.
	TxBytes uint64
	// Up is the interface status at the time of the reading.
	Up bool
	// Time is when the counters were read.
	Time time.Time
}

// Sample is a smoothed rate estimate for one interface.
type Sample struct {
	// Iface is the network interface name (e.g., "eth0", "wlan0").
	Iface string `json:"iface"`
	// RxKiBs is the smoothed receive rate in KiB per second.
	RxKiBs float64 `json:"rx_kib_s"`
	// TxKiBs is the smoothed transmit rate in KiB per second.
	TxKiBs float64 `json:"tx_kib_s"`
	// Up is the interface status of the latest reading.
	Up bool `json:"up"`
}

// State is the smoothing state of the currently monitored interface.
// The zero value is an empty state; it must be reset whenever the monitored
// interface changes.
type State struct {
	prev  *Snapshot
	EMARx float64
	EMATx float64
}

// Reset discards the previous reading and both averages.
func (s *State) Reset() {
	*s = State{}
}

// Seeded reports whether a previous reading is available.
func (s *State) Seeded() bool {
	return s.prev != nil
}
