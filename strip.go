package tabstrip

import "math"

// Mouse button bits for OnDown and Click.
const (
	ButtonPrimary = 1 << iota
	ButtonSecondary
	ButtonTertiary
)

// gestureState is the closed set of input states. Reorder-session
// data lives alongside it and is non-nil exactly while reordering, so
// illegal combinations (auto-scroll flags while idle, an interacting
// tab without a gesture) are unrepresentable.
type gestureState int

const (
	gestureIdle gestureState = iota
	gestureDragging
	gestureReordering
)

func (g gestureState) String() string {
	switch g {
	case gestureIdle:
		return "idle"
	case gestureDragging:
		return "dragging"
	case gestureReordering:
		return "reordering"
	}
	return "unknown"
}

// reorderSession is the ephemeral drag-reorder state. It exists only
// while the gesture state is gestureReordering.
type reorderSession struct {
	tab   *StripTab
	lastX float64

	// scrolledLeft/scrolledRight record whether the user has dragged
	// in that screen direction during this gesture; edge auto-scroll
	// only engages toward directions already dragged. Both reset when
	// a new session starts.
	scrolledLeft  bool
	scrolledRight bool
}

// resizeMode selects how a record rebuild refreshes tab widths.
type resizeMode int

const (
	resizeNow resizeMode = iota
	resizeDelayed
	resizeNone
)

// Strip is the tab-strip layout engine. It owns the canonical
// per-tab records, the scroll offset and its physics, the gesture
// state machine, and the animation queue, and delegates visual
// positioning to the active stacking strategy.
//
// All methods must run on the host's frame thread; see the package
// documentation for the concurrency model.
type Strip struct {
	model TabModel
	host  Host

	params  Params
	geom    Geometry
	stacker Stacker

	// tabs is the canonical record array, always in model index
	// order. byID is the arena keyed by stable id; index lookups are
	// re-derived from ids rather than cached across frames.
	tabs []*StripTab
	byID map[int]*StripTab

	// visuallyOrdered is the render list rebuilt each frame: visible
	// tabs in back-to-front paint order, selected tab last.
	visuallyOrdered []*StripTab

	anims        animator
	scr          scroller
	scrollOffset float64

	state        gestureState
	reorder      *reorderSession
	interacting  *StripTab
	downX, downY float64
	dragX, dragY float64

	// fastExpandTarget is the id of the tab an in-flight
	// scroll-to-reveal is revealing, or -1.
	fastExpandTarget int

	ntb NewTabButton

	// resizeDeadline is the time at which a debounced tab-width
	// recompute fires, or 0 when none is pending.
	resizeDeadline int64
}

// New creates a Strip over the given host model. The strip starts
// with zero size; call OnSizeChanged before the first UpdateLayout.
func New(model TabModel, host Host, opts ...Option) *Strip {
	o := defaultStripOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &Strip{
		model:            model,
		host:             host,
		params:           o.params,
		stacker:          o.stacker,
		byID:             make(map[int]*StripTab),
		fastExpandTarget: -1,
	}
	s.geom.OverlapWidth = o.params.TabOverlapWidth
	s.geom.StackWidth = o.params.TabStackWidth
	s.geom.MaxStacked = o.params.MaxTabsToStack
	s.geom.TabWidth = o.params.MaxTabWidth
	s.geom.RTL = o.rtl
	s.applyMargins()
	s.anims.onFinished = s.animationsFinished
	s.rebuildOrders(0, resizeNone)
	s.resizeStrip(false, 0)
	return s
}

// Geometry returns a copy of the current strip geometry.
func (s *Strip) Geometry() Geometry { return s.geom }

// ScrollOffset returns the current scroll offset, in [min, 0].
func (s *Strip) ScrollOffset() float64 { return s.scrollOffset }

// SetScrollOffset sets the scroll offset; it is clamped to the
// current bounds on the next layout pass.
func (s *Strip) SetScrollOffset(offset float64) { s.scrollOffset = offset }

// InReorderMode reports whether a drag-reorder gesture is active.
func (s *Strip) InReorderMode() bool { return s.state == gestureReordering }

// TabCount returns the number of records, dying tabs included.
func (s *Strip) TabCount() int { return len(s.tabs) }

// FindTab returns the record with the given id, or nil.
func (s *Strip) FindTab(id int) *StripTab { return s.byID[id] }

// TabsToRender returns the render list from the last UpdateLayout:
// visible tabs in back-to-front paint order with the selected tab
// last. The returned records stay live; do not retain them across
// model mutations.
func (s *Strip) TabsToRender() []*StripTab { return s.visuallyOrdered }

// NewTabButton returns the strip's new-tab button state for drawing.
func (s *Strip) NewTabButton() *NewTabButton { return &s.ntb }

// applyMargins reserves new-tab-button space on the trailing edge.
func (s *Strip) applyMargins() {
	if s.geom.RTL {
		s.geom.LeftMargin = s.params.NewTabButtonWidth
		s.geom.RightMargin = 0
	} else {
		s.geom.LeftMargin = 0
		s.geom.RightMargin = s.params.NewTabButtonWidth
	}
}

// SetRTL changes the layout direction and re-lays the strip out.
func (s *Strip) SetRTL(rtl bool) {
	if s.geom.RTL == rtl {
		return
	}
	s.geom.RTL = rtl
	s.applyMargins()
	s.host.RequestUpdate()
}

// SetStacker swaps the stacking strategy and pushes the
// strategy-derived capability flags to every record.
func (s *Strip) SetStacker(st Stacker) {
	if st == nil {
		return
	}
	s.stacker = st
	for _, t := range s.tabs {
		t.canShowCloseButton = st.CanShowCloseButton()
	}
	Logger().Info("tabstrip: stacker swapped",
		"canShowCloseButton", st.CanShowCloseButton(),
		"canSlideTitle", st.CanSlideTitle())
	s.host.RequestRender()
}

// OnSizeChanged updates the strip viewport. A width change recomputes
// the uniform tab width with an animated resize.
func (s *Strip) OnSizeChanged(width, height float64, now int64) {
	widthChanged := s.geom.Width != width
	s.geom.Width = width
	s.geom.Height = height
	for _, t := range s.tabs {
		t.height = height
	}
	if widthChanged {
		s.resizeStrip(true, now)
	}
	s.host.RequestUpdate()
}

// --- model sync ---------------------------------------------------

// TabSelected tells the strip the host selection changed. The layout
// emphasis follows the model directly; the strip only needs a frame,
// plus a scroll-to-reveal if the new selection is off-screen.
func (s *Strip) TabSelected(now int64, id int) {
	t := s.byID[id]
	if t == nil {
		return
	}
	if !s.isFullyVisible(t) {
		s.fastExpand(t, now)
	}
	s.host.RequestUpdate()
}

// TabMoved re-sorts the local records after a host-side move.
func (s *Strip) TabMoved(now int64, id, newIndex int) {
	cur := s.indexOf(id)
	if cur < 0 || newIndex < 0 || newIndex >= len(s.tabs) {
		s.rebuildOrders(now, resizeNone)
		return
	}
	t := s.tabs[cur]
	s.tabs = append(s.tabs[:cur], s.tabs[cur+1:]...)
	s.tabs = append(s.tabs[:newIndex], append([]*StripTab{t}, s.tabs[newIndex:]...)...)
	s.host.RequestUpdate()
}

// TabClosed rebuilds the records after a host-side close. Closing any
// tab but the last defers the width recompute (debounced) so a burst
// of closes, or repeated clicks on a stationary close button, do not
// churn the layout; closing the trailing tab resizes immediately.
func (s *Strip) TabClosed(now int64, id int) {
	wasLast := len(s.tabs) > 0 && s.tabs[len(s.tabs)-1].id == id
	if wasLast {
		s.rebuildOrders(now, resizeNow)
	} else {
		s.rebuildOrders(now, resizeDelayed)
	}
}

// TabClosureCancelled restores a tab whose closure was undone. The
// dying flag must clear before the next animation batch completes or
// the strip would still commit the close.
func (s *Strip) TabClosureCancelled(now int64, id int) {
	if t := s.byID[id]; t != nil && t.dying {
		t.dying = false
		s.anims.cancel(t, AnimWidth)
	}
	s.rebuildOrders(now, resizeNow)
}

// TabCreated syncs a newly created tab, runs its entrance animation
// from full collapse, and scrolls to keep the relevant tab visible:
// the new tab itself when it was selected on creation, otherwise the
// source tab that spawned it.
func (s *Strip) TabCreated(now int64, id, sourceID int, selected bool) {
	s.rebuildOrders(now, resizeNone)
	t := s.byID[id]
	if t == nil {
		return
	}
	t.width = 0
	t.entering = true
	s.resizeStrip(true, now)

	reveal := t
	if !selected {
		if src := s.byID[sourceID]; src != nil {
			reveal = src
		}
	}
	if !s.isFullyVisible(reveal) {
		s.fastExpand(reveal, now)
	}
	s.host.RequestUpdate()
}

// rebuildOrders rebuilds the record array from the host model,
// reusing records by id. Idempotent when nothing changed.
func (s *Strip) rebuildOrders(now int64, mode resizeMode) {
	count := s.model.Count()
	rebuilt := make([]*StripTab, 0, count)
	for i := 0; i < count; i++ {
		id := s.model.IDAt(i)
		t := s.byID[id]
		if t == nil {
			t = newStripTab(id, s.geom.TabWidth, s.geom.Height)
			t.canShowCloseButton = s.stacker.CanShowCloseButton()
			s.byID[id] = t
		}
		rebuilt = append(rebuilt, t)
	}
	// Drop records the model no longer knows about.
	for id, t := range s.byID {
		if s.model.IndexOf(id) < 0 {
			if s.reorder != nil && s.reorder.tab == t {
				s.stopReorder(now)
			}
			if s.interacting == t {
				s.interacting = nil
			}
			s.anims.cancelTab(t)
			delete(s.byID, id)
		}
	}
	s.tabs = rebuilt

	switch mode {
	case resizeNow:
		s.resizeDeadline = 0
		s.resizeStrip(true, now)
	case resizeDelayed:
		s.resizeDeadline = now + s.params.ResizeDelay
	}
	s.host.RequestUpdate()
}

// computeUniformTabWidth spreads the available strip width over the
// live (non-dying) tabs, clamped to the configured bounds.
func (s *Strip) computeUniformTabWidth() float64 {
	n := 0
	for _, t := range s.tabs {
		if !t.dying {
			n++
		}
	}
	if n < 1 {
		n = 1
	}
	avail := s.geom.Width - s.geom.LeftMargin - s.geom.RightMargin
	w := (avail + float64(n-1)*s.geom.OverlapWidth) / float64(n)
	return clamp(w, s.params.MinTabWidth, s.params.MaxTabWidth)
}

// resizeStrip recomputes the cached uniform width and drives every
// live tab toward it, animated or immediate.
func (s *Strip) resizeStrip(animate bool, now int64) {
	w := s.computeUniformTabWidth()
	s.geom.TabWidth = w
	for _, t := range s.tabs {
		if t.dying {
			continue
		}
		if animate {
			s.anims.start(t, AnimWidth, t.width, w, now, 0, s.params.AnimTabResize, EaseOut)
		} else {
			s.anims.cancel(t, AnimWidth)
			t.width = w
		}
	}
	s.host.RequestUpdate()
}

// --- per-frame tick -----------------------------------------------

// UpdateLayout advances the strip one frame and reports whether every
// animation has completed, so the host can stop requesting frames.
//
// The steps run strictly in order, each seeing the state the previous
// one wrote: scroll physics, reorder auto-scroll, the animation
// queue, spinners, scroll bounds, ideal positions, the stacking
// strategy, the render list, and the new-tab button.
func (s *Strip) UpdateLayout(now, dt int64) bool {
	if s.scr.update(now) {
		s.scrollOffset = s.scr.offset()
	}
	if !s.scr.active() {
		s.fastExpandTarget = -1
	}

	s.reorderAutoScroll(now, dt)

	if s.anims.active() && s.anims.update(now) {
		s.anims.finishAll()
	}

	if s.resizeDeadline != 0 && now >= s.resizeDeadline {
		s.resizeDeadline = 0
		s.resizeStrip(true, now)
	}

	s.advanceSpinners(dt)
	s.updateScrollBounds()
	s.computeIdealPositions()

	sel := s.clampedSelectedIndex()
	s.stacker.ComputeLayout(sel, s.tabs, &s.geom, s.state == gestureReordering)
	s.stacker.ComputeOcclusion(sel, s.tabs, &s.geom)
	s.buildRenderList(sel)
	s.positionNewTabButton()

	return !s.scr.active() && !s.anims.active() &&
		s.resizeDeadline == 0 && !s.anyLoading()
}

// clampedSelectedIndex guards against a host model that diverged by
// an event: an out-of-range selection degrades to the trailing tab.
func (s *Strip) clampedSelectedIndex() int {
	sel := s.model.SelectedIndex()
	if sel < 0 || sel >= len(s.tabs) {
		sel = len(s.tabs) - 1
	}
	return sel
}

func (s *Strip) anyLoading() bool {
	for _, t := range s.tabs {
		if t.loading {
			return true
		}
	}
	return false
}

func (s *Strip) advanceSpinners(dt int64) {
	if dt <= 0 {
		return
	}
	step := s.params.SpinnerSpeed * float64(dt) / 1000
	for _, t := range s.tabs {
		if !t.loading {
			continue
		}
		t.spinnerRotation = math.Mod(t.spinnerRotation+step, 360)
	}
}

// updateScrollBounds rederives minScrollOffset from the logical
// tab-row width against the available strip width, then clamps the
// offset into [min, 0].
func (s *Strip) updateScrollBounds() {
	row := 0.0
	if len(s.tabs) > 0 {
		row = s.geom.OverlapWidth
		for _, t := range s.tabs {
			w := t.width - s.geom.OverlapWidth
			if w < 0 {
				w = 0
			}
			row += w * t.widthWeight
		}
	}
	avail := s.geom.Width - s.geom.LeftMargin - s.geom.RightMargin
	s.geom.MinScrollOffset = math.Min(0, avail-row)
	s.scrollOffset = clamp(s.scrollOffset, s.geom.MinScrollOffset, 0)
	s.geom.ScrollOffset = s.scrollOffset
}

// computeIdealPositions walks the record array accumulating
// (width - overlap) * widthWeight footprints, direction-aware. Width
// weights shrink with the width only for tabs in a create/close
// transition; settled tabs always weigh 1 so the row stays contiguous
// whatever their width.
func (s *Strip) computeIdealPositions() {
	for _, t := range s.tabs {
		if t.dying || t.entering {
			ref := math.Max(s.geom.TabWidth, 1)
			t.widthWeight = clamp01(t.width / ref)
		} else {
			t.widthWeight = 1
		}
	}

	if s.geom.RTL {
		x := s.geom.Width - s.geom.RightMargin - s.scrollOffset
		for _, t := range s.tabs {
			t.idealX = x - t.width
			w := t.width - s.geom.OverlapWidth
			if w < 0 {
				w = 0
			}
			x -= w * t.widthWeight
		}
		return
	}
	x := s.geom.LeftMargin + s.scrollOffset
	for _, t := range s.tabs {
		t.idealX = x
		w := t.width - s.geom.OverlapWidth
		if w < 0 {
			w = 0
		}
		x += w * t.widthWeight
	}
}

// buildRenderList collects the visible tabs in back-to-front paint
// order: leading side ascending, trailing side descending, selected
// tab last so it draws on top.
func (s *Strip) buildRenderList(sel int) {
	s.visuallyOrdered = s.visuallyOrdered[:0]
	n := len(s.tabs)
	if n == 0 {
		return
	}
	for i := 0; i < sel; i++ {
		if s.tabs[i].visible {
			s.visuallyOrdered = append(s.visuallyOrdered, s.tabs[i])
		}
	}
	for i := n - 1; i > sel; i-- {
		if s.tabs[i].visible {
			s.visuallyOrdered = append(s.visuallyOrdered, s.tabs[i])
		}
	}
	if sel >= 0 && s.tabs[sel].visible {
		s.visuallyOrdered = append(s.visuallyOrdered, s.tabs[sel])
	}
}

func (s *Strip) positionNewTabButton() {
	off := s.stacker.NewTabButtonOffset(s.tabs, &s.geom, s.params.NewTabButtonWidth)
	s.ntb.x = clamp(off, 0, math.Max(0, s.geom.Width-s.params.NewTabButtonWidth))
	s.ntb.y = math.Max(0, (s.geom.Height-s.params.NewTabButtonHeight)/2)
	s.ntb.width = s.params.NewTabButtonWidth
	s.ntb.height = s.params.NewTabButtonHeight
	s.ntb.visible = true
}

// animationsFinished is the animator's completion signal. Dying tabs
// whose close animation just finished are removed here and only then
// is the host model told to close them: the visual transition always
// precedes the model mutation.
func (s *Strip) animationsFinished() {
	var closed []int
	for _, t := range s.tabs {
		if t.dying {
			closed = append(closed, t.id)
		}
		t.entering = false
	}
	if len(closed) == 0 {
		return
	}
	kept := s.tabs[:0]
	for _, t := range s.tabs {
		if t.dying {
			delete(s.byID, t.id)
			continue
		}
		kept = append(kept, t)
	}
	s.tabs = kept
	for _, id := range closed {
		s.model.CloseTab(id)
	}
	s.host.RequestUpdate()
}

// --- input --------------------------------------------------------

// OnDown begins a pointer gesture. A mouse primary press over a fully
// visible tab enters reorder mode immediately; touch gestures wait
// for the long-press or the vertical-drag threshold.
func (s *Strip) OnDown(now int64, x, y float64, fromMouse bool, buttons int) {
	s.scr.stop()
	s.fastExpandTarget = -1
	s.downX, s.downY = x, y
	s.dragX, s.dragY = 0, 0
	s.state = gestureDragging

	if s.ntb.contains(x, y) {
		s.ntb.pressed = true
		s.interacting = nil
		s.host.RequestRender()
		return
	}

	t := s.tabAt(x, y)
	s.interacting = t
	if t == nil {
		return
	}
	if t.closeButtonHit(x, y, s.params.CloseButtonWidth, s.params.CloseButtonSlop, s.geom.RTL) {
		t.closePressed = true
		s.host.RequestRender()
		return
	}
	if fromMouse && buttons&ButtonPrimary != 0 && s.isFullyVisible(t) {
		s.startReorder(now, t, x)
	}
}

// Drag feeds a pointer movement delta into the gesture state machine.
func (s *Strip) Drag(now int64, x, y, dx, dy float64) {
	s.dragX += dx
	s.dragY += dy

	switch s.state {
	case gestureReordering:
		if dx < 0 {
			s.reorder.scrolledLeft = true
		} else if dx > 0 {
			s.reorder.scrolledRight = true
		}
		s.updateReorderPosition(now, x)

	case gestureDragging:
		if s.interacting != nil && s.reorderThresholdReached() {
			s.startReorder(now, s.interacting, x)
			return
		}
		// Fast-expand: a drag on a partially hidden tab first scrolls
		// it into view instead of fighting the free scroll.
		if s.interacting != nil && !s.isFullyVisible(s.interacting) {
			s.fastExpand(s.interacting, now)
			return
		}
		s.scr.stop()
		if s.geom.RTL {
			s.scrollOffset -= dx
		} else {
			s.scrollOffset += dx
		}
	default:
		return
	}
	s.host.RequestUpdate()
}

// reorderThresholdReached gates touch-drag reorder entry: enough
// vertical travel, bounded horizontal travel, and a drag angle past
// 45 degrees from horizontal.
func (s *Strip) reorderThresholdReached() bool {
	thr := s.params.ReorderStartThreshold
	ax, ay := math.Abs(s.dragX), math.Abs(s.dragY)
	return ay > thr && ax < 2*thr && ay > ax
}

// Fling starts scroll deceleration physics. Ignored while reordering.
func (s *Strip) Fling(now int64, x, y, velocityX, velocityY float64) {
	if s.state == gestureReordering {
		return
	}
	v := velocityX
	if s.geom.RTL {
		v = -v
	}
	s.scr.fling(s.scrollOffset, v, s.geom.MinScrollOffset, 0, now, s.params.FlingDeceleration)
	s.host.RequestUpdate()
}

// OnLongPress enters reorder mode on the pressed tab.
func (s *Strip) OnLongPress(now int64, x, y float64) {
	t := s.tabAt(x, y)
	if t == nil {
		return
	}
	s.interacting = t
	s.startReorder(now, t, x)
}

// Click resolves a tap: the new-tab button requests creation, a close
// hit-region (or middle-click) starts the close transition, anywhere
// else on a tab selects it.
func (s *Strip) Click(now int64, x, y float64, fromMouse bool, buttons int) {
	defer s.clearPressedStates()

	if s.ntb.contains(x, y) {
		id := s.model.CreateTab()
		src := -1
		if s.interacting != nil {
			src = s.interacting.id
		}
		s.TabCreated(now, id, src, true)
		return
	}

	t := s.tabAt(x, y)
	if t == nil || t.dying {
		return
	}
	middle := fromMouse && buttons&ButtonTertiary != 0
	if middle || t.closeButtonHit(x, y, s.params.CloseButtonWidth, s.params.CloseButtonSlop, s.geom.RTL) {
		s.startTabClose(now, t)
		return
	}
	s.model.Select(s.indexOf(t.id))
	s.host.RequestUpdate()
}

// OnUpOrCancel ends the gesture: reorder sessions unwind with the
// interacting tab animating back to its slot.
func (s *Strip) OnUpOrCancel(now int64) {
	if s.state == gestureReordering {
		s.stopReorder(now)
	}
	s.state = gestureIdle
	s.interacting = nil
	s.clearPressedStates()
	s.host.RequestUpdate()
}

func (s *Strip) clearPressedStates() {
	changed := s.ntb.pressed
	s.ntb.pressed = false
	for _, t := range s.tabs {
		if t.closePressed {
			t.closePressed = false
			changed = true
		}
	}
	if changed {
		s.host.RequestRender()
	}
}

// startTabClose marks the tab dying and runs the collapse animation.
// The model keeps the tab until the animation finishes; the selection
// pre-emptively moves to the model's next-if-closed tab so the strip
// renders the post-close emphasis immediately.
func (s *Strip) startTabClose(now int64, t *StripTab) {
	if t.dying {
		return
	}
	t.dying = true
	s.anims.cancelTab(t)
	s.anims.start(t, AnimWidth, t.width, 0, now, 0, s.params.AnimTabClosed, EaseOut)
	if next, ok := s.model.NextTabIfClosed(t.id); ok {
		if idx := s.model.IndexOf(next); idx >= 0 {
			s.model.Select(idx)
		}
	}
	s.resizeDeadline = now + s.params.ResizeDelay
	s.host.RequestUpdate()
}

// --- reorder ------------------------------------------------------

// startReorder enters reorder mode on the given tab: it becomes the
// interacting tab, is selected in the model so it paints in front,
// and the strip fast-scrolls it fully into view.
func (s *Strip) startReorder(now int64, t *StripTab, x float64) {
	if s.state == gestureReordering {
		return
	}
	s.state = gestureReordering
	s.reorder = &reorderSession{tab: t, lastX: x}
	s.interacting = t

	if idx := s.indexOf(t.id); idx >= 0 {
		s.model.Select(idx)
	}
	s.anims.cancel(t, AnimXOffset)
	s.anims.cancel(t, AnimYOffset)
	t.offsetX = 0
	if !s.isFullyVisible(t) {
		s.fastExpand(t, now)
	}
	Logger().Debug("tabstrip: reorder start", "tab", t.id)
	s.host.RequestUpdate()
}

// stopReorder leaves reorder mode, animating the interacting tab's
// offset back to zero.
func (s *Strip) stopReorder(now int64) {
	if s.state != gestureReordering || s.reorder == nil {
		s.reorder = nil
		return
	}
	t := s.reorder.tab
	s.anims.start(t, AnimXOffset, t.offsetX, 0, now, 0, s.params.AnimTabMove, EaseOut)
	Logger().Debug("tabstrip: reorder stop", "tab", t.id)
	s.reorder = nil
	s.state = gestureDragging
	s.host.RequestUpdate()
}

// updateReorderPosition accumulates horizontal travel into the
// interacting tab's offset and performs slot swaps once the offset
// crosses the swap threshold, keeping the dragged tab visually
// continuous and sliding the displaced neighbor into its new slot.
func (s *Strip) updateReorderPosition(now int64, x float64) {
	r := s.reorder
	t := r.tab
	offset := t.offsetX + (x - r.lastX)
	r.lastX = x

	// Positive "toward the end of the model order" regardless of
	// layout direction.
	dir := 1.0
	if s.geom.RTL {
		dir = -1
	}
	step := s.geom.TabWidth - s.geom.OverlapWidth
	if step <= 0 {
		step = 1
	}
	threshold := s.params.ReorderSwapFraction * step

	for {
		idx := s.indexOf(t.id) // re-lookup, never trust a cached index
		if idx < 0 {
			Logger().Warn("tabstrip: reordering a tab the model dropped", "tab", t.id)
			s.stopReorder(now)
			return
		}
		toward := offset * dir
		var dest int
		switch {
		case toward > threshold && idx < len(s.tabs)-1:
			dest = idx + 1
		case toward < -threshold && idx > 0:
			dest = idx - 1
		default:
			idx = s.clampBoundaryOffset(idx, dir, &offset)
			t.offsetX = offset
			return
		}

		displaced := s.tabs[dest]
		s.tabs[idx], s.tabs[dest] = s.tabs[dest], s.tabs[idx]
		s.model.MoveTab(t.id, dest)

		sign := 1.0
		if dest < idx {
			sign = -1
		}
		offset -= dir * sign * step
		displaced.offsetX = dir * sign * step
		s.anims.start(displaced, AnimXOffset, displaced.offsetX, 0, now, 0, s.params.AnimTabMove, EaseOut)
		Logger().Debug("tabstrip: reorder swap", "tab", t.id, "to", dest)
	}
}

// clampBoundaryOffset keeps the first tab from offsetting past the
// start of the strip and the last from offsetting past the end.
func (s *Strip) clampBoundaryOffset(idx int, dir float64, offset *float64) int {
	if idx == 0 && *offset*dir < 0 {
		*offset = 0
	}
	if idx == len(s.tabs)-1 && *offset*dir > 0 {
		*offset = 0
	}
	return idx
}

// reorderAutoScroll nudges the scroll offset while the dragged tab
// sits in a gutter near either strip edge, proportionally to gutter
// depth, but only toward directions the user has already dragged
// during this session.
func (s *Strip) reorderAutoScroll(now, dt int64) {
	if s.state != gestureReordering || s.reorder == nil || dt <= 0 {
		return
	}
	t := s.reorder.tab
	gutter := s.params.ReorderEdgeScrollGutter
	if gutter <= 0 {
		return
	}
	leftEdge := s.geom.LeftMargin
	rightEdge := s.geom.Width - s.geom.RightMargin
	lx := t.idealX + t.offsetX
	rx := lx + t.width

	// A positive scroll-offset delta shifts content toward the
	// trailing screen edge in LTR; mirrored under RTL.
	d := 1.0
	if s.geom.RTL {
		d = -1
	}
	maxStep := s.params.ReorderEdgeScrollSpeed * float64(dt) / 1000

	switch {
	case lx < leftEdge+gutter && s.reorder.scrolledLeft:
		depth := clamp01((leftEdge + gutter - lx) / gutter)
		s.scrollOffset += d * depth * maxStep
	case rx > rightEdge-gutter && s.reorder.scrolledRight:
		depth := clamp01((rx - (rightEdge - gutter)) / gutter)
		s.scrollOffset -= d * depth * maxStep
	}
}

// --- helpers ------------------------------------------------------

// indexOf returns the record index for id, or -1.
func (s *Strip) indexOf(id int) int {
	for i, t := range s.tabs {
		if t.id == id {
			return i
		}
	}
	return -1
}

// tabAt returns the top-most tab under the point, walking the render
// list front to back. Before the first layout pass it falls back to
// the canonical order.
func (s *Strip) tabAt(x, y float64) *StripTab {
	list := s.visuallyOrdered
	if len(list) == 0 {
		list = s.tabs
	}
	for i := len(list) - 1; i >= 0; i-- {
		if list[i].visible && list[i].contains(x, y) {
			return list[i]
		}
	}
	return nil
}

const visibleEpsilon = 0.5

// isFullyVisible reports whether the tab sits entirely inside the
// usable strip area and is not covered by stacking.
func (s *Strip) isFullyVisible(t *StripTab) bool {
	return t.visiblePercentage >= 1 &&
		t.drawX >= s.geom.LeftMargin-visibleEpsilon &&
		t.drawX+t.width <= s.geom.Width-s.geom.RightMargin+visibleEpsilon
}

// fastExpand starts a scroll-to-reveal animation bringing the tab
// fully into the usable strip area. No-op when a reveal for the same
// tab is already in flight.
func (s *Strip) fastExpand(t *StripTab, now int64) {
	if s.fastExpandTarget == t.id && s.scr.active() {
		return
	}
	left := s.geom.LeftMargin
	right := s.geom.Width - s.geom.RightMargin
	var delta float64
	switch {
	case t.idealX < left:
		delta = left - t.idealX
	case t.idealX+t.width > right:
		delta = right - (t.idealX + t.width)
	default:
		return
	}
	s.fastExpandTarget = t.id
	s.scr.startScroll(s.scrollOffset, delta, now, s.params.FastExpandDuration)
	s.host.RequestUpdate()
}
