package tabstrip

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Params holds the tuning constants of the layout engine.
//
// Most of these values are empirical: they were tuned against real
// touch ergonomics rather than derived, so they are preserved as
// configuration instead of being recomputed. Load a modified set
// from YAML with [LoadParams] or start from [DefaultParams].
//
// Distances are in density-independent units, durations in
// milliseconds, speeds in units per second.
type Params struct {
	// MinTabWidth and MaxTabWidth bound the uniform tab width the
	// strip computes from its own width and the live tab count.
	MinTabWidth float64 `yaml:"min_tab_width"`
	MaxTabWidth float64 `yaml:"max_tab_width"`

	// TabOverlapWidth is the intentional horizontal overlap between
	// adjacent tabs (the curved-corner region).
	TabOverlapWidth float64 `yaml:"tab_overlap_width"`

	// TabStackWidth is the horizontal spacing between tabs collapsed
	// into an edge stack under the cascading strategy.
	TabStackWidth float64 `yaml:"tab_stack_width"`

	// MaxTabsToStack caps how many tabs may stack visibly on either
	// side of the selected tab before the rest coincide.
	MaxTabsToStack int `yaml:"max_tabs_to_stack"`

	NewTabButtonWidth  float64 `yaml:"new_tab_button_width"`
	NewTabButtonHeight float64 `yaml:"new_tab_button_height"`

	CloseButtonWidth float64 `yaml:"close_button_width"`
	// CloseButtonSlop enlarges the close hit-region on every side.
	CloseButtonSlop float64 `yaml:"close_button_slop"`

	// ReorderStartThreshold is the vertical drag distance that arms
	// reorder mode; the horizontal distance must stay below twice
	// this value and below the vertical distance (a 45 degree gate).
	ReorderStartThreshold float64 `yaml:"reorder_start_threshold"`

	// ReorderSwapFraction is the fraction of the effective tab width
	// a dragged tab must travel before it swaps with its neighbor.
	ReorderSwapFraction float64 `yaml:"reorder_swap_fraction"`

	// ReorderEdgeScrollGutter is the width of the edge region that
	// triggers auto-scroll while reordering; ReorderEdgeScrollSpeed
	// is the scroll speed applied at full gutter depth.
	ReorderEdgeScrollGutter float64 `yaml:"reorder_edge_scroll_gutter"`
	ReorderEdgeScrollSpeed  float64 `yaml:"reorder_edge_scroll_speed"`

	// ResizeDelay debounces the tab-width recompute after a close so
	// a burst of closes does not churn the layout.
	ResizeDelay int64 `yaml:"resize_delay"`

	AnimTabCreated int64 `yaml:"anim_tab_created"`
	AnimTabClosed  int64 `yaml:"anim_tab_closed"`
	AnimTabResize  int64 `yaml:"anim_tab_resize"`
	AnimTabMove    int64 `yaml:"anim_tab_move"`

	// FastExpandDuration is the length of the scroll-to-reveal
	// animation used before free dragging and on reorder entry.
	FastExpandDuration int64 `yaml:"fast_expand_duration"`

	// FlingDeceleration slows a fling, in units per second squared.
	FlingDeceleration float64 `yaml:"fling_deceleration"`

	// SpinnerSpeed rotates the loading spinner, in degrees per second.
	SpinnerSpeed float64 `yaml:"spinner_speed"`
}

// DefaultParams returns the stock tuning constants.
func DefaultParams() Params {
	return Params{
		MinTabWidth:             190,
		MaxTabWidth:             265,
		TabOverlapWidth:         24,
		TabStackWidth:           4,
		MaxTabsToStack:          4,
		NewTabButtonWidth:       58,
		NewTabButtonHeight:      32,
		CloseButtonWidth:        36,
		CloseButtonSlop:         8,
		ReorderStartThreshold:   50,
		ReorderSwapFraction:     0.53,
		ReorderEdgeScrollGutter: 48,
		ReorderEdgeScrollSpeed:  1000,
		ResizeDelay:             1500,
		AnimTabCreated:          150,
		AnimTabClosed:           150,
		AnimTabResize:           250,
		AnimTabMove:             125,
		FastExpandDuration:      250,
		FlingDeceleration:       1680,
		SpinnerSpeed:            270,
	}
}

// Validate reports the first nonsensical value, if any.
func (p Params) Validate() error {
	switch {
	case p.MinTabWidth <= 0 || p.MaxTabWidth < p.MinTabWidth:
		return fmt.Errorf("tabstrip: invalid tab width bounds [%v, %v]", p.MinTabWidth, p.MaxTabWidth)
	case p.TabOverlapWidth < 0 || p.TabOverlapWidth >= p.MinTabWidth:
		return fmt.Errorf("tabstrip: invalid tab overlap width %v", p.TabOverlapWidth)
	case p.MaxTabsToStack < 1:
		return fmt.Errorf("tabstrip: max tabs to stack must be at least 1, got %d", p.MaxTabsToStack)
	case p.ReorderSwapFraction <= 0 || p.ReorderSwapFraction > 1:
		return fmt.Errorf("tabstrip: reorder swap fraction %v outside (0, 1]", p.ReorderSwapFraction)
	case p.FlingDeceleration <= 0:
		return fmt.Errorf("tabstrip: fling deceleration must be positive, got %v", p.FlingDeceleration)
	}
	return nil
}

// LoadParams reads tuning constants from a YAML file. Fields absent
// from the file keep their DefaultParams values.
func LoadParams(path string) (Params, error) {
	p := DefaultParams()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("tabstrip: read params: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("tabstrip: parse params: %w", err)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}
