package netif

import (
	"log/slog"
	"regexp"
)

// Select picks the interface to monitor, in priority order:
//  1. the first up interface whose name matches pattern (when pattern is set),
//  2. the interface of the default route,
//  3. the first up interface.
//
// The loopback interface is never returned.
func Select(src Source, pattern *regexp.Regexp) (string, bool) {
	if pattern != nil {
		for _, name := range upInterfaces(src) {
			if pattern.MatchString(name) {
				slog.Debug("Selected interface", "interface", name, "rule", "pattern")
				return name, true
			}
		}
	}

	if name, ok := src.DefaultRouteInterface(); ok && name != loopbackName {
		slog.Debug("Selected interface", "interface", name, "rule", "default-route")
		return name, true
	}

	if ups := upInterfaces(src); len(ups) > 0 {
		slog.Debug("Selected interface", "interface", ups[0], "rule", "first-up")
		return ups[0], true
	}

	return "", false
}

// upInterfaces returns the names of all up, non-loopback interfaces in enumeration order.
func upInterfaces(src Source) []string {
	var names []string
	for _, iface := range src.ListInterfaces() {
		if iface.Name == loopbackName || !iface.Up() {
			continue
		}
		names = append(names, iface.Name)
	}
	return names
}
