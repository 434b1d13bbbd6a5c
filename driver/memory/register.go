package memory

import "github.com/gobeaver/dialogkit"

func init() {
	dialogkit.RegisterDriver("memory", func(cfg *dialogkit.Config) (dialogkit.Display, error) {
		return New(), nil
	})
}
