package zenity

import "github.com/gobeaver/dialogkit"

func init() {
	dialogkit.RegisterDriver("zenity", func(cfg *dialogkit.Config) (dialogkit.Display, error) {
		d := New()
		if d == nil {
			// Capability absent: degraded no-op display, not an error.
			return nil, nil
		}
		d.Title = cfg.Title
		d.InitialPath = cfg.InitialPath
		return d, nil
	})
}
