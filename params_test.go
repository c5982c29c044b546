package tabstrip

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultParamsValid(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("DefaultParams().Validate() = %v", err)
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"min width above max", func(p *Params) { p.MinTabWidth = 300 }},
		{"zero min width", func(p *Params) { p.MinTabWidth = 0 }},
		{"overlap wider than a tab", func(p *Params) { p.TabOverlapWidth = 200 }},
		{"negative overlap", func(p *Params) { p.TabOverlapWidth = -1 }},
		{"zero stack depth", func(p *Params) { p.MaxTabsToStack = 0 }},
		{"swap fraction above one", func(p *Params) { p.ReorderSwapFraction = 1.5 }},
		{"zero swap fraction", func(p *Params) { p.ReorderSwapFraction = 0 }},
		{"zero fling deceleration", func(p *Params) { p.FlingDeceleration = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestLoadParams(t *testing.T) {
	dir := t.TempDir()

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(dir, "partial.yaml")
		data := "min_tab_width: 120\nreorder_swap_fraction: 0.6\n"
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}

		p, err := LoadParams(path)
		if err != nil {
			t.Fatalf("LoadParams() error = %v", err)
		}
		if p.MinTabWidth != 120 {
			t.Errorf("MinTabWidth = %v, want 120", p.MinTabWidth)
		}
		if p.ReorderSwapFraction != 0.6 {
			t.Errorf("ReorderSwapFraction = %v, want 0.6", p.ReorderSwapFraction)
		}
		if p.MaxTabWidth != 265 {
			t.Errorf("MaxTabWidth = %v, want default 265", p.MaxTabWidth)
		}
		if p.ResizeDelay != 1500 {
			t.Errorf("ResizeDelay = %v, want default 1500", p.ResizeDelay)
		}
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		if err := os.WriteFile(path, []byte("min_tab_width: -5\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadParams(path); err == nil {
			t.Error("LoadParams() = nil error for invalid values")
		}
	})

	t.Run("malformed yaml rejected", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		if err := os.WriteFile(path, []byte("min_tab_width: [\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadParams(path); err == nil {
			t.Error("LoadParams() = nil error for malformed yaml")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadParams(filepath.Join(dir, "absent.yaml")); err == nil {
			t.Error("LoadParams() = nil error for a missing file")
		}
	})
}
