package netif

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strings"
)

// defaultDestination is the hex-encoded all-zero destination of the default route.
const defaultDestination = "00000000"

// defaultRouteFromFile returns the interface of the default route listed in a
// /proc/net/route style file.
func defaultRouteFromFile(path string) (string, bool) {
	f, err := os.Open(path) // #nosec G304 -- path is built from the configured procfs root
	if err != nil {
		slog.Debug("Failed to read routing table", "path", path, "error", err)
		return "", false
	}
	defer func() { _ = f.Close() }()

	return parseDefaultRoute(f)
}

// parseDefaultRoute scans a routing table (header line first) for the entry whose
// destination is the zero address.
func parseDefaultRoute(r io.Reader) (string, bool) {
	scanner := bufio.NewScanner(r)
	header := true
	for scanner.Scan() {
		if header {
			header = false
			continue
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}
		if fields[1] == defaultDestination {
			return fields[0], true
		}
	}
	return "", false
}
