package netif

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// SysfsSource reads interface state from /sys/class/net and the routing table
// from /proc/net/route.
type SysfsSource struct {
	classNet  string
	routePath string
}

// NewSysfsSource creates a SysfsSource rooted at the given sysfs and procfs mount points.
func NewSysfsSource(sysRoot, procRoot string) *SysfsSource {
	return &SysfsSource{
		classNet:  filepath.Join(sysRoot, "class", "net"),
		routePath: filepath.Join(procRoot, "net", "route"),
	}
}

// ListInterfaces enumerates every entry of the network class directory.
func (s *SysfsSource) ListInterfaces() []Interface {
	entries, err := os.ReadDir(s.classNet)
	if err != nil {
		slog.Debug("Failed to list interfaces", "path", s.classNet, "error", err)
		return nil
	}

	ifaces := make([]Interface, 0, len(entries))
	for _, e := range entries {
		ifaces = append(ifaces, s.describe(e.Name()))
	}
	return ifaces
}

// ReadCounters reads rx_bytes and tx_bytes for the given interface.
func (s *SysfsSource) ReadCounters(name string) (Counters, error) {
	dir, err := s.ifaceDir(name)
	if err != nil {
		return Counters{}, err
	}

	statsDir := filepath.Join(dir, "statistics")

	rx, err := s.readStatFile(filepath.Join(statsDir, "rx_bytes"))
	if err != nil {
		return Counters{}, err
	}

	tx, err := s.readStatFile(filepath.Join(statsDir, "tx_bytes"))
	if err != nil {
		return Counters{}, err
	}

	return Counters{
		RxBytes: rx,
		TxBytes: tx,
		Up:      s.describe(name).Up(),
	}, nil
}

// DefaultRouteInterface returns the interface bound to the default route.
func (s *SysfsSource) DefaultRouteInterface() (string, bool) {
	return defaultRouteFromFile(s.routePath)
}

// describe reads operstate and carrier. Unreadable attributes stay empty:
// reading carrier of an administratively down interface fails with EINVAL.
func (s *SysfsSource) describe(name string) Interface {
	iface := Interface{Name: name}
	dir, err := s.ifaceDir(name)
	if err != nil {
		return iface
	}
	iface.OperState = readAttr(filepath.Join(dir, "operstate"))
	iface.Carrier = readAttr(filepath.Join(dir, "carrier"))
	return iface
}

// ifaceDir resolves the class directory of an interface, refusing names that
// would escape it.
func (s *SysfsSource) ifaceDir(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsRune(name, filepath.Separator) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, name)
	}
	return filepath.Join(s.classNet, name), nil
}

// readStatFile reads a single counter file and parses it as uint64.
// The path is validated to ensure it's within the network class directory.
func (s *SysfsSource) readStatFile(path string) (uint64, error) {
	cleanPath := filepath.Clean(path)
	if !strings.HasPrefix(cleanPath, s.classNet+string(filepath.Separator)) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path validated above
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, fmt.Errorf("%w: %s", ErrInterfaceNotFound, cleanPath)
		}
		return 0, err
	}
	return strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
}

// readAttr reads a sysfs attribute, returning "" on any failure.
func readAttr(path string) string {
	data, err := os.ReadFile(path) // #nosec G304 -- path built by ifaceDir
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
