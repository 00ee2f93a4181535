// Package config holds the runtime settings of netrate.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/shini4i/netrate/internal/monitor"
	"github.com/shini4i/netrate/internal/netif"
	"github.com/shini4i/netrate/internal/stats"
)

const (
	// AppName is the application identifier.
	AppName = "netrate"

	// DefaultSysRoot is the sysfs mount point.
	DefaultSysRoot = "/sys"
	// DefaultProcRoot is the procfs mount point.
	DefaultProcRoot = "/proc"
)

// Config represents the runtime configuration. Loop timing and smoothing are
// fixed; only the data source and logging verbosity are adjustable.
type Config struct {
	// Pattern is the interface name pattern; it applies only when PatternSet
	// is true, so an explicitly empty pattern still matches every name.
	Pattern          string
	PatternSet       bool
	Source           string        `flag:"source" validate:"oneof=sysfs procfs"`
	SysRoot          string        `flag:"sysfs" validate:"required"`
	ProcRoot         string        `flag:"procfs" validate:"required"`
	Debug            bool          `flag:"debug"`
	TickInterval     time.Duration `validate:"gt=0"`
	ReselectInterval time.Duration `validate:"gtefield=TickInterval"`
	Alpha            float64       `validate:"gt=0,lte=1"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Source:           netif.BackendSysfs,
		SysRoot:          DefaultSysRoot,
		ProcRoot:         DefaultProcRoot,
		TickInterval:     monitor.DefaultTickInterval,
		ReselectInterval: monitor.DefaultReselectInterval,
		Alpha:            stats.DefaultAlpha,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their command-line name; fixed settings keep the field name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("flag")
	})
	return v
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Param() != "" {
			return fmt.Errorf("invalid %s %v: must satisfy %s=%s", fe.Field(), fe.Value(), fe.Tag(), fe.Param())
		}
		return fmt.Errorf("invalid %s: %s", fe.Field(), fe.Tag())
	}
	return fmt.Errorf("failed to validate config: %w", err)
}

// SetPattern records a pattern given on the command line.
func (c *Config) SetPattern(pattern string) {
	c.Pattern = pattern
	c.PatternSet = true
}

// CompilePattern compiles the interface name pattern. An absent or invalid
// pattern yields nil, meaning no constraint.
func (c *Config) CompilePattern() *regexp.Regexp {
	if !c.PatternSet {
		return nil
	}

	re, err := regexp.Compile(c.Pattern)
	if err != nil {
		slog.Debug("Ignoring invalid interface pattern", "pattern", c.Pattern, "error", err)
		return nil
	}
	return re
}
