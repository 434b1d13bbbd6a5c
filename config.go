package dialogkit

import (
	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Default display driver to use (zenity, sqweek, dropdir, memory)
	Driver string `env:"DIALOGKIT_DRIVER,default:zenity"`

	// Dialog presentation
	Title       string `env:"DIALOGKIT_TITLE,default:Open File"`
	InitialPath string `env:"DIALOGKIT_INITIAL_PATH"`

	// Default trigger options applied when a call site does not override
	DefaultAccept   string `env:"DIALOGKIT_DEFAULT_ACCEPT,default:*"`
	DefaultMultiple bool   `env:"DIALOGKIT_DEFAULT_MULTIPLE,default:true"`

	// Drop-directory driver configuration
	DropDirPath       string `env:"DIALOGKIT_DROPDIR_PATH"`
	DropDirDebounceMS int    `env:"DIALOGKIT_DROPDIR_DEBOUNCE_MS,default:500"`
	DropDirPattern    string `env:"DIALOGKIT_DROPDIR_PATTERN,default:*"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
