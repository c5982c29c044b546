package tabstrip

// CascadingStacker collapses tabs into fixed-depth stacks at the
// strip edges on both sides of the selected tab, which keeps the
// selected tab fully visible while every neighbor stays at least a
// sliver discoverable. Used when the strip is wide enough for the
// stacks not to swallow the row.
//
// Tabs under this strategy never show close buttons (they are mostly
// covered), but their titles slide so the leading edge of each title
// peeks out from under the tab stacked on top of it.
type CascadingStacker struct{}

// NewCascadingStacker creates the cascading stacking strategy.
func NewCascadingStacker() *CascadingStacker { return &CascadingStacker{} }

// CanShowCloseButton implements Stacker. Cascaded tabs are mostly
// covered, so close buttons are never shown.
func (cs *CascadingStacker) CanShowCloseButton() bool { return false }

// CanSlideTitle implements Stacker.
func (cs *CascadingStacker) CanSlideTitle() bool { return true }

// ComputeLayout implements Stacker. For a tab at index i with
// selection s, the stack bounds derive from min(i-or-s, MaxStacked)
// terms: tabs before the selection pin into the leading-edge stack,
// tabs after it pin into the trailing-edge stack, and the selected
// tab clamps freely between the two stacks. Mirrored under RTL.
func (cs *CascadingStacker) ComputeLayout(selectedIndex int, tabs []*StripTab, g *Geometry, inReorder bool) {
	n := len(tabs)
	if n == 0 {
		return
	}
	sel := selectedIndex
	if sel < 0 || sel >= n {
		sel = n - 1
	}

	for i, t := range tabs {
		minX, maxX := cs.stackBounds(i, sel, n, t.width, g)
		t.drawX = clamp(t.idealX+t.offsetX, minX, maxX-t.width)
		t.drawY = t.offsetY
		t.visiblePercentage = cs.visiblePercentage(i, sel, tabs, g)
	}

	cs.computeContentOffsets(tabs, g)
}

// stackBounds returns the [min, max) X range tab i may occupy.
func (cs *CascadingStacker) stackBounds(i, sel, n int, width float64, g *Geometry) (minX, maxX float64) {
	maxStack := g.MaxStacked
	before := i < sel // earlier in model order than the selection
	after := i > sel

	if g.RTL {
		// Model order runs right to left: earlier tabs pin into the
		// right-edge stack, later tabs into the left-edge stack.
		switch {
		case before:
			pin := g.Width - g.RightMargin - float64(minInt(i, maxStack))*g.StackWidth - width
			return pin, pin + width
		case after:
			pin := g.LeftMargin + float64(minInt(n-1-i, maxStack))*g.StackWidth
			return pin, pin + width
		default:
			minX = g.LeftMargin + float64(minInt(n-1-sel, maxStack))*g.StackWidth
			maxX = g.Width - g.RightMargin - float64(minInt(sel, maxStack))*g.StackWidth
			return minX, maxX
		}
	}

	switch {
	case before:
		pin := g.LeftMargin + float64(minInt(i, maxStack))*g.StackWidth
		return pin, pin + width
	case after:
		pin := g.Width - g.RightMargin - float64(minInt(n-1-i, maxStack))*g.StackWidth - width
		return pin, pin + width
	default:
		minX = g.LeftMargin + float64(minInt(sel, maxStack))*g.StackWidth
		maxX = g.Width - g.RightMargin - float64(minInt(n-1-sel, maxStack))*g.StackWidth
		return minX, maxX
	}
}

// visiblePercentage returns how much of tab i escapes the selected
// tab's visible footprint. The selected tab is always fully visible;
// everyone else exposes only what the footprint does not cover.
func (cs *CascadingStacker) visiblePercentage(i, sel int, tabs []*StripTab, g *Geometry) float64 {
	if i == sel {
		return 1
	}
	t := tabs[i]
	if t.width <= 0 {
		return 0
	}
	footprint := tabs[sel].width - g.StackWidth - g.OverlapWidth
	return clamp01((t.width - footprint) / t.width)
}

// computeContentOffsets pushes each tab's title content past the
// portion covered by its predecessor, beyond the intentional overlap.
func (cs *CascadingStacker) computeContentOffsets(tabs []*StripTab, g *Geometry) {
	for i, t := range tabs {
		if i == 0 {
			t.contentOffsetX = 0
			continue
		}
		prev := tabs[i-1]
		var covered float64
		if g.RTL {
			// The predecessor sits to the right and covers this
			// tab's trailing edge.
			covered = t.drawX + t.width - prev.drawX
		} else {
			covered = prev.drawX + prev.width - t.drawX
		}
		t.contentOffsetX = clamp(covered-g.OverlapWidth, 0, t.width)
	}
}

// ComputeOcclusion implements Stacker. Two adjacent tabs at a
// pixel-identical draw position are fully overlapping: the one
// further from the selection (in index distance) is hidden. Tabs
// whose draw position differs from their predecessor stay visible.
func (cs *CascadingStacker) ComputeOcclusion(selectedIndex int, tabs []*StripTab, g *Geometry) {
	n := len(tabs)
	sel := selectedIndex
	if sel < 0 || sel >= n {
		sel = n - 1
	}
	for _, t := range tabs {
		t.visible = true
	}
	for i := 1; i < n; i++ {
		if !sameDrawPosition(tabs[i], tabs[i-1]) {
			continue
		}
		if absInt(i-sel) >= absInt(i-1-sel) {
			tabs[i].visible = false
		} else {
			tabs[i-1].visible = false
		}
	}
}

// NewTabButtonOffset implements Stacker. The button anchors just past
// the outermost occupied tab edge, pulled back by half the overlap so
// it tucks into the last tab's curve.
func (cs *CascadingStacker) NewTabButtonOffset(tabs []*StripTab, g *Geometry, buttonWidth float64) float64 {
	if len(tabs) == 0 {
		if g.RTL {
			return g.Width - g.RightMargin - buttonWidth
		}
		return g.LeftMargin
	}
	if g.RTL {
		minEdge := tabs[0].drawX
		for _, t := range tabs[1:] {
			if t.drawX < minEdge {
				minEdge = t.drawX
			}
		}
		return minEdge - buttonWidth + g.OverlapWidth/2
	}
	maxEdge := tabs[0].drawX + tabs[0].width
	for _, t := range tabs[1:] {
		if edge := t.drawX + t.width; edge > maxEdge {
			maxEdge = edge
		}
	}
	return maxEdge - g.OverlapWidth/2
}
