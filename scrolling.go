package tabstrip

// ScrollingStacker lays every tab out at its ideal position with no
// stacking or clamping; tabs that do not fit scroll out of the
// viewport instead. This is the strategy for narrow strips, where
// stacking would hide too much of every tab to be useful.
//
// Tabs under this strategy are always fully visible (never covered
// beyond the intentional overlap), so close buttons are allowed and
// titles never need to slide.
type ScrollingStacker struct{}

// NewScrollingStacker creates the scrolling stacking strategy.
func NewScrollingStacker() *ScrollingStacker { return &ScrollingStacker{} }

// CanShowCloseButton implements Stacker.
func (ss *ScrollingStacker) CanShowCloseButton() bool { return true }

// CanSlideTitle implements Stacker.
func (ss *ScrollingStacker) CanSlideTitle() bool { return false }

// ComputeLayout implements Stacker. Every tab takes its ideal
// position verbatim, shifted only by its own animation offsets.
func (ss *ScrollingStacker) ComputeLayout(selectedIndex int, tabs []*StripTab, g *Geometry, inReorder bool) {
	for _, t := range tabs {
		t.drawX = t.idealX + t.offsetX
		t.drawY = t.offsetY
		t.visiblePercentage = 1
		t.contentOffsetX = 0
	}
}

// ComputeOcclusion implements Stacker. A tab is visible iff its draw
// rectangle intersects the strip viewport [0, Width).
func (ss *ScrollingStacker) ComputeOcclusion(selectedIndex int, tabs []*StripTab, g *Geometry) {
	for _, t := range tabs {
		t.visible = t.drawX+t.width > 0 && t.drawX < g.Width
	}
}

// NewTabButtonOffset implements Stacker. The button anchors at the
// trailing edge of the logical tab row rather than at the outermost
// drawn edge, weighting each tab by its in-flight create/close width
// weight so the button does not jump mid-transition.
func (ss *ScrollingStacker) NewTabButtonOffset(tabs []*StripTab, g *Geometry, buttonWidth float64) float64 {
	if len(tabs) == 0 {
		if g.RTL {
			return g.Width - g.RightMargin - buttonWidth
		}
		return g.LeftMargin
	}

	row := g.OverlapWidth
	for _, t := range tabs {
		w := t.width - g.OverlapWidth
		if w < 0 {
			w = 0
		}
		row += w * t.widthWeight
	}

	if g.RTL {
		start := tabs[0].idealX + tabs[0].width // right edge of the row
		return start - row - buttonWidth + g.OverlapWidth/2
	}
	start := tabs[0].idealX
	return start + row - g.OverlapWidth/2
}
