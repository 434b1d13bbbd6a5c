package dropdir

import (
	"time"

	"github.com/gobeaver/dialogkit"
)

func init() {
	dialogkit.RegisterDriver("dropdir", func(cfg *dialogkit.Config) (dialogkit.Display, error) {
		d := New(cfg.DropDirPath)
		if cfg.DropDirDebounceMS > 0 {
			d.Debounce = time.Duration(cfg.DropDirDebounceMS) * time.Millisecond
		}
		d.Pattern = cfg.DropDirPattern
		return d, nil
	})
}
