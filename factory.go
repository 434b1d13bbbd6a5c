package dialogkit

import (
	"fmt"
	"sync"
)

// DriverFactory is a function that creates a Display from a config.
// Returning (nil, nil) means the driver exists but the capability is
// absent in this environment (e.g. no native dialog tool installed);
// consumers get a degraded, no-op controller rather than an error.
type DriverFactory func(cfg *Config) (Display, error)

var (
	driverFactories = make(map[string]DriverFactory)
	factoryMutex    sync.RWMutex
)

// RegisterDriver registers a display driver factory function
func RegisterDriver(name string, factory DriverFactory) {
	factoryMutex.Lock()
	defer factoryMutex.Unlock()
	driverFactories[name] = factory
}

// CreateDriver creates a display instance from config
func CreateDriver(cfg *Config) (Display, error) {
	factoryMutex.RLock()
	factory, exists := driverFactories[cfg.Driver]
	factoryMutex.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, cfg.Driver)
	}

	return factory(cfg)
}
