package dialogkit

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gobeaver/beaver-kit/config"
)

// Global instance
var (
	defaultDisplay Display
	defaultOnce    sync.Once
	defaultErr     error
)

// Builder provides a way to create Display instances with custom env
// prefixes
type Builder struct {
	prefix string
}

// WithPrefix creates a new Builder with the specified prefix
func WithPrefix(prefix string) *Builder {
	return &Builder{prefix: prefix}
}

// Init initializes the global Display instance using the builder's prefix
func (b *Builder) Init() error {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return err
	}
	return Init(cfg)
}

// New creates a new Display instance using the builder's prefix
func (b *Builder) New() (Display, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return nil, err
	}
	return New(cfg)
}

// Init initializes the global display instance
func Init(configs ...*Config) error {
	defaultOnce.Do(func() {
		var cfg *Config
		if len(configs) > 0 {
			cfg = configs[0]
		} else {
			cfg, defaultErr = GetConfig()
			if defaultErr != nil {
				return
			}
		}

		defaultDisplay, defaultErr = New(cfg)
	})

	return defaultErr
}

// InitFromEnv initializes the global display instance from environment
// variables
func InitFromEnv() error {
	return Init()
}

// Default returns the global display instance, or nil when it was never
// initialized or the environment has no display capability. A nil result
// is valid input everywhere in this package: controllers built on it are
// degraded no-op controllers.
func Default() Display {
	return defaultDisplay
}

// New creates a display instance with the given config. The result may be
// a nil Display with a nil error: the driver is known but the capability
// is absent in this environment, and callers get no-op controllers.
func New(cfg *Config) (Display, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	d, err := CreateDriver(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}

	return d, nil
}

// validateConfig checks configuration validity
func validateConfig(cfg *Config) error {
	if cfg.Driver == "" {
		return errors.New("driver is required")
	}

	switch cfg.Driver {
	case "dropdir":
		if cfg.DropDirPath == "" {
			return errors.New("drop directory path is required for dropdir driver")
		}
		if cfg.DropDirDebounceMS < 0 {
			return errors.New("drop directory debounce must not be negative")
		}
	default:
		// Driver names are open-ended; unknown ones fail at CreateDriver
		// where the registry is consulted.
	}

	return nil
}

// DefaultOptions derives per-call-site option defaults from a config.
// Call sites still override them through [NewOptions] options.
func DefaultOptions(cfg *Config) []Option {
	if cfg == nil {
		return nil
	}
	return []Option{
		WithAccept(cfg.DefaultAccept),
		WithMultiple(cfg.DefaultMultiple),
	}
}
