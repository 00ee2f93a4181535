package stats

import (
	"fmt"
)

const (
	// Binary unit multipliers (1024-based).
	kib = 1024
	mib = kib * 1024
	gib = mib * 1024
	tib = gib * 1024
)

// FormatBytes formats a byte count using binary units (KiB, MiB, GiB, TiB).
func FormatBytes(bytes uint64) string {
	switch {
	case bytes >= tib:
		return fmt.Sprintf("%.1f TiB", float64(bytes)/float64(tib))
	case bytes >= gib:
		return fmt.Sprintf("%.1f GiB", float64(bytes)/float64(gib))
	case bytes >= mib:
		return fmt.Sprintf("%.1f MiB", float64(bytes)/float64(mib))
	case bytes >= kib:
		return fmt.Sprintf("%.1f KiB", float64(bytes)/float64(kib))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatRate formats a KiB-per-second rate, scaling up to MiB/s and GiB/s.
func FormatRate(kibPerSec float64) string {
	switch {
	case kibPerSec >= float64(mib):
		return fmt.Sprintf("%.1f GiB/s", kibPerSec/float64(mib))
	case kibPerSec >= float64(kib):
		return fmt.Sprintf("%.1f MiB/s", kibPerSec/float64(kib))
	default:
		return fmt.Sprintf("%.1f KiB/s", kibPerSec)
	}
}

// String renders the sample for log output.
func (s Sample) String() string {
	state := "down"
	if s.Up {
		state = "up"
	}
	return fmt.Sprintf("%s %s rx %s tx %s", s.Iface, state, FormatRate(s.RxKiBs), FormatRate(s.TxKiBs))
}
