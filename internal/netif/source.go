// Package netif reads network interface state from the host and decides which
// interface should be monitored.
package netif

import (
	"errors"
	"fmt"
)

const (
	// BackendSysfs reads interface state and counters directly from sysfs files.
	BackendSysfs = "sysfs"
	// BackendProcfs reads interface state through prometheus/procfs parsers.
	BackendProcfs = "procfs"

	// loopbackName is never selected for monitoring.
	loopbackName = "lo"
)

var (
	// ErrInterfaceNotFound is returned when counters are requested for an interface
	// that does not exist (or no longer exists).
	ErrInterfaceNotFound = errors.New("interface not found")

	// ErrInvalidPath is returned when an interface name would resolve outside
	// the network class directory.
	ErrInvalidPath = errors.New("invalid interface path")
)

// Interface describes a network interface as enumerated by a Source.
type Interface struct {
	// Name is the kernel interface name (e.g., "eth0", "wlan0").
	Name string
	// OperState is the raw operational state string ("up", "down", "unknown", ...).
	// Empty when it could not be read.
	OperState string
	// Carrier is the raw carrier indicator ("1" or "0"). Empty when it could not be read.
	Carrier string
}

// Up reports whether the interface is considered active.
func (i Interface) Up() bool {
	return IsUp(i.OperState, i.Carrier)
}

// Counters holds cumulative byte counters of a single interface.
type Counters struct {
	RxBytes uint64
	TxBytes uint64
	Up      bool
}

// Source provides the host's interface state.
// Implementations degrade unreadable state to absent values instead of failing.
type Source interface {
	// ListInterfaces enumerates all interfaces, loopback included.
	ListInterfaces() []Interface
	// ReadCounters returns the cumulative byte counters for the named interface.
	ReadCounters(name string) (Counters, error)
	// DefaultRouteInterface returns the interface bound to the default route.
	DefaultRouteInterface() (string, bool)
}

// IsUp derives interface status from the operational state and carrier strings.
// Some drivers (tun, wireguard) never report "up" and stay "unknown"; for those
// the carrier decides.
func IsUp(operState, carrier string) bool {
	return operState == "up" || (operState == "unknown" && carrier == "1")
}

// NewSource creates the Source for the given backend name.
func NewSource(backend, sysRoot, procRoot string) (Source, error) {
	switch backend {
	case BackendSysfs, "":
		return NewSysfsSource(sysRoot, procRoot), nil
	case BackendProcfs:
		return NewProcfsSource(sysRoot, procRoot)
	default:
		return nil, fmt.Errorf("unknown source backend %q", backend)
	}
}
