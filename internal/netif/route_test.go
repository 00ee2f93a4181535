package netif

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const routeTable = `Iface	Destination	Gateway 	Flags	RefCnt	Use	Metric	Mask		MTU	Window	IRTT
wlan0	0000A8C0	00000000	0001	0	0	600	00FFFFFF	0	0	0
wlan0	00000000	0100A8C0	0003	0	0	600	00000000	0	0	0
eth0	00000000	0101A8C0	0003	0	0	100	00000000	0	0	0
`

func TestParseDefaultRoute(t *testing.T) {
	tests := []struct {
		name       string
		table      string
		expected   string
		expectedOK bool
	}{
		{"first default route wins", routeTable, "wlan0", true},
		{"header only", "Iface\tDestination\tGateway\n", "", false},
		{"empty", "", "", false},
		{"short lines are skipped", "Iface\tDestination\tGateway\nbad\t00000000\neth1\t00000000\t00000000\n", "eth1", true},
		{"header is never a route", "eth9 00000000 00000000\n", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, ok := parseDefaultRoute(strings.NewReader(tt.table))
			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestDefaultRouteFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "route")
	require.NoError(t, os.WriteFile(path, []byte(routeTable), 0600))

	name, ok := defaultRouteFromFile(path)
	assert.True(t, ok)
	assert.Equal(t, "wlan0", name)

	_, ok = defaultRouteFromFile(filepath.Join(t.TempDir(), "missing"))
	assert.False(t, ok)
}
