package tabstrip

// StripTab is the per-tab layout record. It carries the mutable state
// the engine recomputes every frame plus the animatable transition
// offsets. Records are created and destroyed only by the Strip; hosts
// read them back through [Strip.TabsToRender] and draw from the
// accessor values.
//
// A record's identity is its id, which matches the stable id of the
// corresponding tab in the host [TabModel]. The record order inside
// the Strip always matches the model's index order.
type StripTab struct {
	id int

	// width is the full tab width; it animates during create, close,
	// and resize transitions.
	width  float64
	height float64

	// idealX is the unstacked position computed each frame from the
	// cumulative layout walk. Never animated directly.
	idealX float64

	// offsetX and offsetY are animatable drag/transition offsets
	// applied on top of idealX.
	offsetX float64
	offsetY float64

	// drawX and drawY are the final draw position after the stacking
	// strategy has run.
	drawX float64
	drawY float64

	// visiblePercentage is the fraction of the tab not covered by the
	// selected tab's footprint, in [0, 1].
	visiblePercentage float64

	// contentOffsetX pushes the title content trailing-ward so it
	// stays legible under partial overlap. Never negative.
	contentOffsetX float64

	// widthWeight scales the tab's footprint in the cumulative layout
	// walk. 1 for settled tabs; shrinks toward 0 while the tab is
	// entering or dying so neighbors slide over smoothly.
	widthWeight float64

	// dying marks a tab whose close animation is running. The record
	// is removed, and the host model told to close the tab, only once
	// that animation finishes.
	dying bool

	// entering marks a tab whose entrance animation is running.
	entering bool

	// visible is the occlusion-pass result.
	visible bool

	// canShowCloseButton mirrors the active stacking strategy's
	// capability flag; pushed by the Strip on every strategy swap.
	canShowCloseButton bool
	closePressed       bool

	loading         bool
	spinnerRotation float64
}

func newStripTab(id int, width, height float64) *StripTab {
	return &StripTab{
		id:                id,
		width:             width,
		height:            height,
		visiblePercentage: 1,
		widthWeight:       1,
		visible:           true,
	}
}

// ID returns the stable tab id shared with the host model.
func (t *StripTab) ID() int { return t.id }

// Width returns the current (possibly animating) tab width.
func (t *StripTab) Width() float64 { return t.width }

// Height returns the tab height (the strip height).
func (t *StripTab) Height() float64 { return t.height }

// DrawX returns the final X draw position for this frame.
func (t *StripTab) DrawX() float64 { return t.drawX }

// DrawY returns the final Y draw position for this frame.
func (t *StripTab) DrawY() float64 { return t.drawY }

// IdealX returns the unstacked position from the cumulative layout walk.
func (t *StripTab) IdealX() float64 { return t.idealX }

// OffsetX returns the current drag/transition X offset.
func (t *StripTab) OffsetX() float64 { return t.offsetX }

// OffsetY returns the current drag/transition Y offset.
func (t *StripTab) OffsetY() float64 { return t.offsetY }

// VisiblePercentage returns how much of the tab is uncovered, in [0, 1].
func (t *StripTab) VisiblePercentage() float64 { return t.visiblePercentage }

// ContentOffsetX returns the title push distance for this frame.
func (t *StripTab) ContentOffsetX() float64 { return t.contentOffsetX }

// WidthWeight returns the footprint scale used by the layout walk.
func (t *StripTab) WidthWeight() float64 { return t.widthWeight }

// IsDying reports whether the tab is running its close animation.
func (t *StripTab) IsDying() bool { return t.dying }

// IsVisible reports the occlusion-pass result for this frame.
func (t *StripTab) IsVisible() bool { return t.visible }

// CanShowCloseButton reports whether the active stacking strategy
// permits a close button on this tab at all.
func (t *StripTab) CanShowCloseButton() bool { return t.canShowCloseButton }

// IsClosePressed reports whether the close button is held down.
func (t *StripTab) IsClosePressed() bool { return t.closePressed }

// SetLoading marks the tab as loading; the engine advances the
// spinner while set. Purely decorative, independent of layout.
func (t *StripTab) SetLoading(loading bool) { t.loading = loading }

// IsLoading reports whether the loading spinner is active.
func (t *StripTab) IsLoading() bool { return t.loading }

// LoadingSpinnerRotation returns the spinner angle in degrees, [0, 360).
func (t *StripTab) LoadingSpinnerRotation() float64 { return t.spinnerRotation }

// contains reports whether the point lies inside the tab's draw rect.
func (t *StripTab) contains(x, y float64) bool {
	return x >= t.drawX && x < t.drawX+t.width &&
		y >= t.drawY && y < t.drawY+t.height
}

// closeButtonHit reports whether the point lies inside the enlarged
// close hit-region. The close button sits at the trailing edge of the
// tab: the right side in LTR, the left side under RTL. Tabs that are
// mostly covered, dying, or whose strategy forbids close buttons have
// no hit-region.
func (t *StripTab) closeButtonHit(x, y float64, closeWidth, slop float64, rtl bool) bool {
	if !t.canShowCloseButton || t.dying || t.visiblePercentage < 1 {
		return false
	}
	if t.width < 2*closeWidth {
		return false
	}
	var left float64
	if rtl {
		left = t.drawX
	} else {
		left = t.drawX + t.width - closeWidth
	}
	return x >= left-slop && x < left+closeWidth+slop &&
		y >= t.drawY-slop && y < t.drawY+t.height+slop
}
