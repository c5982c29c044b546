package tabstrip

// Geometry is the strip-level layout state shared by every tab. It is
// owned by the Strip and handed read-only to the stacking strategy
// each frame.
type Geometry struct {
	// Width and Height are the strip viewport dimensions.
	Width  float64
	Height float64

	// LeftMargin and RightMargin reserve space at the strip edges
	// (for the new-tab button, direction-dependent).
	LeftMargin  float64
	RightMargin float64

	// TabWidth is the cached uniform tab width, recomputed whenever
	// the tab count or strip width changes.
	TabWidth float64

	// ScrollOffset is bounded to [MinScrollOffset, 0].
	// MinScrollOffset derives from the total logical tab-row width
	// against the available strip width; it is never positive.
	ScrollOffset    float64
	MinScrollOffset float64

	OverlapWidth float64
	StackWidth   float64
	MaxStacked   int

	// RTL mirrors the whole layout when set.
	RTL bool
}

// Stacker is the pluggable stacking strategy: given the ordered tab
// records and the strip geometry it decides the final draw position,
// visibility percentage, occlusion, and content offset of every tab,
// plus where the new-tab button anchors.
//
// Two implementations exist. [CascadingStacker] collapses tabs into
// edge stacks around the selected tab and suits wide strips, where
// there is room to keep every tab at least partially discoverable.
// [ScrollingStacker] lays tabs out contiguously and scrolls, which is
// the only workable policy on narrow strips where stacking would hide
// too much.
type Stacker interface {
	// ComputeLayout mutates each tab's drawX/drawY, visiblePercentage,
	// and contentOffsetX from its idealX, offsets, and the geometry.
	ComputeLayout(selectedIndex int, tabs []*StripTab, g *Geometry, inReorder bool)

	// ComputeOcclusion mutates each tab's visible flag, pruning tabs
	// that would draw fully hidden.
	ComputeOcclusion(selectedIndex int, tabs []*StripTab, g *Geometry)

	// NewTabButtonOffset returns the X anchor for the new-tab button.
	NewTabButtonOffset(tabs []*StripTab, g *Geometry, buttonWidth float64) float64

	// CanShowCloseButton reports whether tabs may ever show a close
	// button under this strategy.
	CanShowCloseButton() bool

	// CanSlideTitle reports whether title content may slide to stay
	// legible under overlap.
	CanSlideTitle() bool
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func clamp01(x float64) float64 { return clamp(x, 0, 1) }

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// sameDrawPosition reports whether two tabs land on a pixel-identical
// draw position after integer truncation.
func sameDrawPosition(a, b *StripTab) bool {
	return int(a.drawX) == int(b.drawX) && int(a.drawY) == int(b.drawY)
}
