package netif

import (
	"fmt"
	"sync"
)

// MemorySource is an in-memory Source backed by a fixture table.
// It is used to simulate interface churn, counter resets and missing files.
// It is safe for concurrent use.
type MemorySource struct {
	mu           sync.Mutex
	order        []string
	ifaces       map[string]*memoryIface
	defaultRoute string
}

type memoryIface struct {
	operState string
	carrier   string
	counters  *Counters
}

// NewMemorySource creates an empty MemorySource.
func NewMemorySource() *MemorySource {
	return &MemorySource{ifaces: make(map[string]*memoryIface)}
}

// SetInterface adds or updates an interface. New interfaces are enumerated
// after existing ones.
func (m *MemorySource) SetInterface(name, operState, carrier string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	iface, ok := m.ifaces[name]
	if !ok {
		iface = &memoryIface{}
		m.ifaces[name] = iface
		m.order = append(m.order, name)
	}
	iface.operState = operState
	iface.carrier = carrier
}

// SetCounters sets the cumulative byte counters of an existing interface.
// Counters of an interface without a SetCounters call are unreadable.
func (m *MemorySource) SetCounters(name string, rx, tx uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if iface, ok := m.ifaces[name]; ok {
		iface.counters = &Counters{RxBytes: rx, TxBytes: tx}
	}
}

// Remove deletes an interface, as if it had been unplugged.
func (m *MemorySource) Remove(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.ifaces, name)
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// SetDefaultRoute sets the interface of the default route. Empty means no default route.
func (m *MemorySource) SetDefaultRoute(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultRoute = name
}

// ListInterfaces returns interfaces in insertion order.
func (m *MemorySource) ListInterfaces() []Interface {
	m.mu.Lock()
	defer m.mu.Unlock()

	ifaces := make([]Interface, 0, len(m.order))
	for _, name := range m.order {
		iface := m.ifaces[name]
		ifaces = append(ifaces, Interface{Name: name, OperState: iface.operState, Carrier: iface.carrier})
	}
	return ifaces
}

// ReadCounters returns the counters set for the interface.
func (m *MemorySource) ReadCounters(name string) (Counters, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	iface, ok := m.ifaces[name]
	if !ok || iface.counters == nil {
		return Counters{}, fmt.Errorf("%w: %s", ErrInterfaceNotFound, name)
	}

	c := *iface.counters
	c.Up = IsUp(iface.operState, iface.carrier)
	return c, nil
}

// DefaultRouteInterface returns the configured default route interface.
func (m *MemorySource) DefaultRouteInterface() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.defaultRoute, m.defaultRoute != ""
}
