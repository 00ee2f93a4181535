package stats

import (
	"math"
	"time"
)

const (
	// DefaultAlpha is the weight of the newest rate in the moving average.
	DefaultAlpha = 0.35

	// MinElapsed is the smallest time step used to compute a rate.
	MinElapsed = time.Millisecond
)

// Update feeds a new reading into state. The first reading after a reset only
// seeds the state and produces no sample; every later reading produces one.
func Update(state *State, iface string, snap Snapshot, alpha float64) (Sample, bool) {
	if state.prev == nil {
		state.prev = &snap
		return Sample{}, false
	}

	dt := Elapsed(state.prev.Time, snap.Time)
	rxRate := float64(SaturatingDelta(state.prev.RxBytes, snap.RxBytes)) / kib / dt
	txRate := float64(SaturatingDelta(state.prev.TxBytes, snap.TxBytes)) / kib / dt

	state.EMARx = EMA(alpha, rxRate, state.EMARx)
	state.EMATx = EMA(alpha, txRate, state.EMATx)
	state.prev = &snap

	return Sample{
		Iface:  iface,
		RxKiBs: math.Max(state.EMARx, 0),
		TxKiBs: math.Max(state.EMATx, 0),
		Up:     snap.Up,
	}, true
}

// SaturatingDelta returns cur-prev, or 0 when the counter went backwards
// (driver reload, interface re-created).
func SaturatingDelta(prev, cur uint64) uint64 {
	if cur < prev {
		return 0
	}
	return cur - prev
}

// Elapsed returns the seconds between two readings, floored at MinElapsed.
func Elapsed(prev, cur time.Time) float64 {
	d := cur.Sub(prev)
	if d < MinElapsed {
		d = MinElapsed
	}
	return d.Seconds()
}

// EMA returns the next exponential moving average value.
func EMA(alpha, sample, prev float64) float64 {
	return alpha*sample + (1-alpha)*prev
}
