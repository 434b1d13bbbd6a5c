package sqweek

import "github.com/gobeaver/dialogkit"

func init() {
	dialogkit.RegisterDriver("sqweek", func(cfg *dialogkit.Config) (dialogkit.Display, error) {
		d := New()
		d.Title = cfg.Title
		d.InitialPath = cfg.InitialPath
		return d, nil
	})
}
