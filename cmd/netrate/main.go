// Package main provides the entry point for netrate.
//
// netrate samples the byte counters of the active network interface once per
// second and prints smoothed receive/transmit rates to stdout as one JSON
// object per line, for status bars and log shippers. Logs go to stderr.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/shini4i/netrate/internal/config"
	"github.com/shini4i/netrate/internal/logging"
	"github.com/shini4i/netrate/internal/monitor"
	"github.com/shini4i/netrate/internal/netif"
	"github.com/shini4i/netrate/internal/output"
)

var (
	version = "dev"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := config.DefaultConfig()
	var showVersion bool

	cmd := &cobra.Command{
		Use:   config.AppName + " [pattern]",
		Short: "Print smoothed network interface throughput as JSON lines",
		Long: `netrate picks an active network interface, reads its byte counters every
second and prints {"iface","rx_kib_s","tx_kib_s","up"} records to stdout.

The optional pattern is a regular expression over interface names. The first
active interface matching it is monitored; otherwise the default route
interface, otherwise the first active interface. An invalid pattern is ignored,
as are any arguments after the first. Put "--" before a pattern starting with "-".`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", config.AppName, version)
				return err
			}
			applyArgs(cfg, args)
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Source, "source", cfg.Source, `Counter source backend: "sysfs" or "procfs"`)
	flags.StringVar(&cfg.SysRoot, "sysfs", cfg.SysRoot, "sysfs mount point")
	flags.StringVar(&cfg.ProcRoot, "procfs", cfg.ProcRoot, "procfs mount point")
	flags.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging on stderr")
	flags.BoolVarP(&showVersion, "version", "v", false, "Show version and exit")

	return cmd
}

// applyArgs takes the pattern from the first positional argument, even when it
// is empty. Further arguments are ignored.
func applyArgs(cfg *config.Config, args []string) {
	if len(args) > 0 {
		cfg.SetPattern(args[0])
	}
}

// run samples until ctx is cancelled or SIGINT/SIGTERM arrives.
func run(ctx context.Context, cfg *config.Config) error {
	logging.Setup(logging.LevelFor(cfg.Debug))

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	src, err := netif.NewSource(cfg.Source, cfg.SysRoot, cfg.ProcRoot)
	if err != nil {
		return fmt.Errorf("failed to open counter source: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("Starting netrate", "version", version, "source", cfg.Source)

	m := monitor.New(monitor.Options{
		Source:           src,
		Emitter:          output.NewWriter(os.Stdout),
		Pattern:          cfg.CompilePattern(),
		Clock:            clockwork.NewRealClock(),
		TickInterval:     cfg.TickInterval,
		ReselectInterval: cfg.ReselectInterval,
		Alpha:            cfg.Alpha,
	})

	if err := m.Run(ctx); err != nil {
		return err
	}

	slog.Info("Shutdown complete")
	return nil
}
