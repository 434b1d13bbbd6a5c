package dialogkit

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "empty driver",
			config:  Config{},
			wantErr: true,
			errMsg:  "driver is required",
		},
		{
			name:    "dropdir driver without path",
			config:  Config{Driver: "dropdir"},
			wantErr: true,
			errMsg:  "drop directory path is required",
		},
		{
			name:    "dropdir driver with negative debounce",
			config:  Config{Driver: "dropdir", DropDirPath: "/drop", DropDirDebounceMS: -1},
			wantErr: true,
			errMsg:  "debounce must not be negative",
		},
		{
			name:    "dropdir driver with path",
			config:  Config{Driver: "dropdir", DropDirPath: "/drop"},
			wantErr: false,
		},
		{
			name:    "registered driver",
			config:  Config{Driver: "fake"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfig(&tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfig() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil && tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("validateConfig() error = %v, want error containing %v", err, tt.errMsg)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("registered driver", func(t *testing.T) {
		d, err := New(&Config{Driver: "fake"})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if d == nil {
			t.Fatal("New() returned nil display for a present driver")
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := New(&Config{Driver: "does-not-exist"})
		if err == nil {
			t.Fatal("New() should fail for an unregistered driver")
		}
		if !errors.Is(err, ErrUnknownDriver) {
			t.Errorf("error = %v, want ErrUnknownDriver", err)
		}
	})

	t.Run("absent capability degrades to nil display", func(t *testing.T) {
		d, err := New(&Config{Driver: "absent"})
		if err != nil {
			t.Fatalf("New() error = %v, want nil (absence is not an error)", err)
		}
		if d != nil {
			t.Fatal("New() should return a nil display for an absent capability")
		}

		// The nil display is a usable degraded environment.
		c := NewController(d)
		c.Mount()
		c.Open()
		c.Reset()
		c.Unmount()
		if c.Selection() != nil {
			t.Error("degraded controller should hold no selection")
		}
	})
}

func TestDefaultOptions(t *testing.T) {
	cfg := &Config{DefaultAccept: "image/*", DefaultMultiple: false}
	o := NewOptions(DefaultOptions(cfg)...)

	if o.Accept != "image/*" {
		t.Errorf("Accept = %q, want image/*", o.Accept)
	}
	if o.Multiple {
		t.Error("Multiple should follow the config default")
	}

	if got := DefaultOptions(nil); got != nil {
		t.Errorf("DefaultOptions(nil) = %v, want nil", got)
	}
}

func TestOpError(t *testing.T) {
	inner := ErrNoDisplay
	err := &OpError{Op: "watch", Driver: "dropdir", Err: inner}

	if !errors.Is(err, ErrNoDisplay) {
		t.Error("OpError must unwrap to its inner error")
	}
	if !strings.Contains(err.Error(), "dropdir") || !strings.Contains(err.Error(), "watch") {
		t.Errorf("Error() = %q, want driver and op mentioned", err.Error())
	}
}
