package netif

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/prometheus/procfs"
	"github.com/prometheus/procfs/sysfs"
)

// ProcfsSource reads interface state through the prometheus/procfs parsers:
// operstate and carrier from sysfs, byte counters from /proc/net/dev.
type ProcfsSource struct {
	sys       sysfs.FS
	proc      procfs.FS
	routePath string
}

// NewProcfsSource creates a ProcfsSource rooted at the given sysfs and procfs
// mount points. Both must exist.
func NewProcfsSource(sysRoot, procRoot string) (*ProcfsSource, error) {
	sfs, err := sysfs.NewFS(sysRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to open sysfs: %w", err)
	}
	pfs, err := procfs.NewFS(procRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to open procfs: %w", err)
	}

	return &ProcfsSource{
		sys:       sfs,
		proc:      pfs,
		routePath: filepath.Join(procRoot, "net", "route"),
	}, nil
}

// ListInterfaces enumerates the network class devices.
func (s *ProcfsSource) ListInterfaces() []Interface {
	names, err := s.sys.NetClassDevices()
	if err != nil {
		slog.Debug("Failed to list interfaces", "error", err)
		return nil
	}

	ifaces := make([]Interface, 0, len(names))
	for _, name := range names {
		ifaces = append(ifaces, s.describe(name))
	}
	return ifaces
}

// ReadCounters looks the interface up in /proc/net/dev.
func (s *ProcfsSource) ReadCounters(name string) (Counters, error) {
	dev, err := s.proc.NetDev()
	if err != nil {
		return Counters{}, fmt.Errorf("failed to read net dev: %w", err)
	}

	line, ok := dev[name]
	if !ok {
		return Counters{}, fmt.Errorf("%w: %s", ErrInterfaceNotFound, name)
	}

	return Counters{
		RxBytes: line.RxBytes,
		TxBytes: line.TxBytes,
		Up:      s.describe(name).Up(),
	}, nil
}

// DefaultRouteInterface returns the interface bound to the default route.
// procfs rejects the whole table on a single malformed line, in which case
// the line-tolerant parser is used instead.
func (s *ProcfsSource) DefaultRouteInterface() (string, bool) {
	routes, err := s.proc.NetRoute()
	if err != nil {
		slog.Debug("Failed to parse routing table, falling back", "error", err)
		return defaultRouteFromFile(s.routePath)
	}

	for _, r := range routes {
		if r.Destination == 0 {
			return r.Iface, true
		}
	}
	return "", false
}

func (s *ProcfsSource) describe(name string) Interface {
	iface := Interface{Name: name}

	nc, err := s.sys.NetClassByIface(name)
	if err != nil {
		slog.Debug("Failed to read interface class", "interface", name, "error", err)
		return iface
	}

	iface.OperState = nc.OperState
	if nc.Carrier != nil {
		iface.Carrier = strconv.FormatInt(*nc.Carrier, 10)
	}
	return iface
}
