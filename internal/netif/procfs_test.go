package netif

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const netDev = `Inter-|   Receive                                                |  Transmit
 face |bytes    packets errs drop fifo frame compressed multicast|bytes    packets errs colls carrier compressed
    lo:    4096      10    0    0    0     0          0         0     4096      10    0    0    0     0       0          0
  eth0:    2024      20    0    0    0     0          0         0     1012      12    0    0    0     0       0          0
`

func TestProcfsSource(t *testing.T) {
	h := newFakeHost(t)
	h.addInterface(t, "lo", "unknown", "1", nil)
	h.addInterface(t, "eth0", "up", "1", nil)
	h.addInterface(t, "wlan0", "down", "0", nil)
	writeFile(t, filepath.Join(h.procRoot, "net", "dev"), netDev)
	h.setRoutes(t, routeTable)

	src, err := NewProcfsSource(h.sysRoot, h.procRoot)
	require.NoError(t, err)

	t.Run("lists interfaces with status", func(t *testing.T) {
		ifaces := src.ListInterfaces()
		assert.Equal(t, []string{"eth0", "lo", "wlan0"}, names(ifaces))
		for _, iface := range ifaces {
			if iface.Name == "eth0" {
				assert.Equal(t, "up", iface.OperState)
				assert.Equal(t, "1", iface.Carrier)
				assert.True(t, iface.Up())
			}
			if iface.Name == "wlan0" {
				assert.False(t, iface.Up())
			}
		}
	})

	t.Run("reads counters from net dev", func(t *testing.T) {
		c, err := src.ReadCounters("eth0")
		require.NoError(t, err)
		assert.Equal(t, Counters{RxBytes: 2024, TxBytes: 1012, Up: true}, c)
	})

	t.Run("unknown interface", func(t *testing.T) {
		_, err := src.ReadCounters("eth9")
		assert.ErrorIs(t, err, ErrInterfaceNotFound)
	})

	t.Run("default route", func(t *testing.T) {
		name, ok := src.DefaultRouteInterface()
		assert.True(t, ok)
		assert.Equal(t, "wlan0", name)
	})
}

func TestNewProcfsSource_MissingRoot(t *testing.T) {
	_, err := NewProcfsSource(filepath.Join(t.TempDir(), "missing"), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open sysfs")
}

func TestProcfsSource_DefaultRouteInterface(t *testing.T) {
	tests := []struct {
		name       string
		table      string
		expected   string
		expectedOK bool
	}{
		{"well-formed table", routeTable, "wlan0", true},
		{"no default route", "Iface\tDestination\tGateway\tFlags\tRefCnt\tUse\tMetric\tMask\tMTU\tWindow\tIRTT\n" +
			"wlan0\t0000A8C0\t00000000\t0001\t0\t0\t600\t00FFFFFF\t0\t0\t0\n", "", false},
		{"malformed line falls back to tolerant parser", "Iface\tDestination\tGateway\n" +
			"bad\t00000000\n" +
			"eth1\t00000000\t00000000\n", "eth1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newFakeHost(t)
			h.setRoutes(t, tt.table)

			src, err := NewProcfsSource(h.sysRoot, h.procRoot)
			require.NoError(t, err)

			name, ok := src.DefaultRouteInterface()
			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expected, name)
		})
	}

	t.Run("missing table", func(t *testing.T) {
		h := newFakeHost(t)
		src, err := NewProcfsSource(h.sysRoot, h.procRoot)
		require.NoError(t, err)

		_, ok := src.DefaultRouteInterface()
		assert.False(t, ok)
	})
}
