package tabstrip

import (
	"math"
	"testing"
)

type recordingHost struct {
	updates int
	renders int
}

func (h *recordingHost) RequestUpdate() { h.updates++ }
func (h *recordingHost) RequestRender() { h.renders++ }

// newTestStrip builds a strip over a fresh model with n tabs and a
// 1000x40 viewport.
func newTestStrip(n int, opts ...Option) (*Strip, *SimpleTabModel, *recordingHost) {
	m := NewSimpleTabModel(n)
	h := &recordingHost{}
	s := New(m, h, opts...)
	s.OnSizeChanged(1000, 40, 0)
	return s, m, h
}

// settle ticks the strip at 16ms frames from start until UpdateLayout
// reports every animation done, returning the final frame time.
func settle(t *testing.T, s *Strip, start int64) int64 {
	t.Helper()
	now := start
	for i := 0; i < 1000; i++ {
		if s.UpdateLayout(now, 16) {
			return now
		}
		now += 16
	}
	t.Fatal("strip did not settle within 1000 frames")
	return now
}

// uniformWidth is the expected uniform tab width for n live tabs in
// the 1000-wide test viewport with the stock params (58 reserved for
// the new-tab button, 24 overlap, clamped to [190, 265]).
func uniformWidth(n int) float64 {
	w := (942.0 + float64(n-1)*24) / float64(n)
	return clamp(w, 190, 265)
}

func TestStripInitialLayout(t *testing.T) {
	s, _, _ := newTestStrip(5)
	settle(t, s, 0)

	want := uniformWidth(5) // 207.6
	if got := s.Geometry().TabWidth; math.Abs(got-want) > 1e-9 {
		t.Fatalf("TabWidth = %v, want %v", got, want)
	}
	step := want - 24
	for i := 0; i < 5; i++ {
		tab := s.FindTab(i + 1)
		if tab == nil {
			t.Fatalf("FindTab(%d) = nil", i+1)
		}
		if got := tab.Width(); math.Abs(got-want) > 1e-9 {
			t.Errorf("tab %d width = %v, want %v", i+1, got, want)
		}
		if got, wantX := tab.IdealX(), float64(i)*step; math.Abs(got-wantX) > 1e-9 {
			t.Errorf("tab %d idealX = %v, want %v", i+1, got, wantX)
		}
	}

	// The new-tab button trails the row, tucked back half an overlap.
	ntb := s.NewTabButton()
	if !ntb.IsVisible() {
		t.Error("new tab button not visible")
	}
	if got, want := ntb.X(), 24+5*step-12; math.Abs(got-want) > 1e-9 {
		t.Errorf("new tab button X = %v, want %v", got, want)
	}
}

func TestStripScrollBounds(t *testing.T) {
	// 10 tabs at the minimum width overflow the viewport; the offset
	// clamps so the row's trailing edge never detaches from the
	// trailing strip edge and the leading edge never detaches from the
	// leading one.
	s, _, _ := newTestStrip(10)
	now := settle(t, s, 0)

	wantMin := 942.0 - (24 + 10*166) // -742
	if got := s.Geometry().MinScrollOffset; math.Abs(got-wantMin) > 1e-9 {
		t.Fatalf("MinScrollOffset = %v, want %v", got, wantMin)
	}

	s.SetScrollOffset(-1e6)
	s.UpdateLayout(now+16, 16)
	if got := s.ScrollOffset(); math.Abs(got-wantMin) > 1e-9 {
		t.Errorf("overscrolled offset = %v, want clamped to %v", got, wantMin)
	}
	last := s.FindTab(10)
	if got := last.IdealX() + last.Width(); math.Abs(got-942) > 1e-9 {
		t.Errorf("last tab trailing edge = %v, want 942 at min offset", got)
	}

	s.SetScrollOffset(50)
	s.UpdateLayout(now+32, 16)
	if got := s.ScrollOffset(); got != 0 {
		t.Errorf("positive offset = %v, want clamped to 0", got)
	}
	if got := s.FindTab(1).IdealX(); got != 0 {
		t.Errorf("first tab idealX = %v, want 0 at zero offset", got)
	}
}

func TestStripReorderRoundTrip(t *testing.T) {
	// Dragging a tab one swap forward and then back restores the model
	// order, and the residual visual offset equals the net drag.
	s, m, _ := newTestStrip(5)
	now := settle(t, s, 0)

	// Tab 2 spans [183.6, 391.2]; a mouse press enters reorder.
	s.OnDown(now, 250, 20, true, ButtonPrimary)
	if !s.InReorderMode() {
		t.Fatal("mouse press on a fully visible tab did not enter reorder")
	}
	if got := m.SelectedIndex(); got != 1 {
		t.Fatalf("SelectedIndex after reorder start = %d, want 1", got)
	}

	// Step = 207.6 - 24 = 183.6; swap threshold = 0.53 * 183.6 = 97.3.
	s.Drag(now, 350, 20, 100, 0)
	wantIDs := []int{1, 3, 2, 4, 5}
	for i, want := range wantIDs {
		if got := m.IDAt(i); got != want {
			t.Fatalf("after forward swap, IDAt(%d) = %d, want %d", i, got, want)
		}
	}

	s.Drag(now, 330, 20, -20, 0)
	for i := 0; i < 5; i++ {
		if got := m.IDAt(i); got != i+1 {
			t.Fatalf("after swap back, IDAt(%d) = %d, want %d", i, got, i+1)
		}
	}
	if got := s.FindTab(2).OffsetX(); math.Abs(got-80) > 1e-6 {
		t.Errorf("dragged tab offsetX = %v, want 80 (the net drag)", got)
	}

	s.OnUpOrCancel(now)
	if s.InReorderMode() {
		t.Error("still in reorder mode after release")
	}
	settle(t, s, now+16)
	if got := s.FindTab(2).OffsetX(); got != 0 {
		t.Errorf("offsetX after release settles = %v, want 0", got)
	}
}

func TestStripReorderEntryThreshold(t *testing.T) {
	tests := []struct {
		name        string
		dx, dy      float64
		wantReorder bool
	}{
		{"steep drag arms reorder", 10, 60, true},
		{"shallow drag stays a scroll", 70, 60, false},
		{"short drag does nothing", 10, 40, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newTestStrip(5)
			now := settle(t, s, 0)

			s.OnDown(now, 250, 20, false, 0)
			if s.InReorderMode() {
				t.Fatal("touch press entered reorder without a drag")
			}
			s.Drag(now, 250+tt.dx, 20+tt.dy, tt.dx, tt.dy)
			if got := s.InReorderMode(); got != tt.wantReorder {
				t.Errorf("InReorderMode = %v, want %v", got, tt.wantReorder)
			}
		})
	}
}

func TestStripReorderEdgeAutoScroll(t *testing.T) {
	// Holding a dragged tab in the trailing gutter scrolls the strip,
	// but only because the gesture already moved that way.
	s, _, _ := newTestStrip(10)
	now := settle(t, s, 0)

	// Tab 5 spans [664, 854]; the trailing gutter starts at 942-48.
	s.OnDown(now, 700, 20, true, ButtonPrimary)
	if !s.InReorderMode() {
		t.Fatal("reorder did not start")
	}
	s.Drag(now, 750, 20, 50, 0)
	if !s.reorder.scrolledRight || s.reorder.scrolledLeft {
		t.Fatalf("direction flags = left:%v right:%v, want right only",
			s.reorder.scrolledLeft, s.reorder.scrolledRight)
	}

	s.UpdateLayout(now+16, 16)
	if got := s.ScrollOffset(); got >= 0 {
		t.Errorf("scroll offset = %v, want < 0 (auto-scroll engaged)", got)
	}
}

func TestStripCloseDefersResize(t *testing.T) {
	// Closing any tab but the trailing one leaves the widths alone
	// until the debounce elapses, so close buttons stay put under
	// repeated clicks.
	s, m, _ := newTestStrip(5)
	now := settle(t, s, 0)

	m.CloseTab(2)
	s.TabClosed(now, 2)

	if s.FindTab(2) != nil {
		t.Error("closed tab record still present")
	}
	if got := s.TabCount(); got != 4 {
		t.Errorf("TabCount = %d, want 4", got)
	}
	if s.resizeDeadline == 0 {
		t.Fatal("no resize deadline pending after a non-trailing close")
	}
	if got, want := s.Geometry().TabWidth, uniformWidth(5); math.Abs(got-want) > 1e-9 {
		t.Errorf("TabWidth right after close = %v, want unchanged %v", got, want)
	}

	settle(t, s, now+16)
	if got, want := s.Geometry().TabWidth, uniformWidth(4); math.Abs(got-want) > 1e-9 {
		t.Errorf("TabWidth after debounce = %v, want %v", got, want)
	}
	for _, id := range []int{1, 3, 4, 5} {
		if got := s.FindTab(id).Width(); math.Abs(got-uniformWidth(4)) > 1e-9 {
			t.Errorf("tab %d width = %v, want %v", id, got, uniformWidth(4))
		}
	}
}

func TestStripCloseTrailingResizesNow(t *testing.T) {
	s, m, _ := newTestStrip(5)
	now := settle(t, s, 0)

	m.CloseTab(5)
	s.TabClosed(now, 5)

	if s.resizeDeadline != 0 {
		t.Error("resize deadline pending after closing the trailing tab")
	}
	if got, want := s.Geometry().TabWidth, uniformWidth(4); math.Abs(got-want) > 1e-9 {
		t.Errorf("TabWidth = %v, want recomputed %v immediately", got, want)
	}
}

func TestStripCloseAnimatesBeforeModelMutation(t *testing.T) {
	// A close started from the strip runs the collapse animation first;
	// the model loses the tab only when the animation completes.
	s, m, _ := newTestStrip(3)
	now := settle(t, s, 0)

	// Middle-click anywhere on a tab closes it.
	s.Click(now, 300, 20, true, ButtonTertiary)

	tab := s.FindTab(2)
	if tab == nil || !tab.IsDying() {
		t.Fatal("clicked tab is not dying")
	}
	if got := m.Count(); got != 3 {
		t.Fatalf("model count = %d, want 3 while the close animates", got)
	}
	// Selection pre-emptively moves to the next-if-closed tab.
	if got := m.IDAt(m.SelectedIndex()); got != 3 {
		t.Errorf("selected id during close = %d, want 3", got)
	}

	settle(t, s, now+16)
	if got := m.Count(); got != 2 {
		t.Errorf("model count after animation = %d, want 2", got)
	}
	if s.FindTab(2) != nil {
		t.Error("dying tab record survived the animation")
	}
}

func TestStripCloseCancelRestoresTab(t *testing.T) {
	s, m, _ := newTestStrip(3)
	now := settle(t, s, 0)

	s.Click(now, 300, 20, true, ButtonTertiary)
	s.UpdateLayout(now+16, 16)
	if !s.FindTab(2).IsDying() {
		t.Fatal("close did not start")
	}

	s.TabClosureCancelled(now+16, 2)
	if s.FindTab(2).IsDying() {
		t.Fatal("cancelled tab still dying")
	}
	settle(t, s, now+32)

	if got := m.Count(); got != 3 {
		t.Errorf("model count = %d, want 3 (close never committed)", got)
	}
	if got, want := s.FindTab(2).Width(), uniformWidth(3); math.Abs(got-want) > 1e-9 {
		t.Errorf("restored tab width = %v, want %v", got, want)
	}
}

func TestStripCloseButtonClick(t *testing.T) {
	s, _, _ := newTestStrip(3)
	now := settle(t, s, 0)

	// Tab 3 spans [482, 747]; its close region trails at [703, 755].
	s.Click(now, 720, 20, false, 0)
	tab := s.FindTab(3)
	if tab == nil || !tab.IsDying() {
		t.Error("close-region tap did not start the close")
	}
}

func TestStripClickSelects(t *testing.T) {
	s, m, _ := newTestStrip(5)
	now := settle(t, s, 0)

	// x=400 lands on tab 3 ([367.2, 574.8]); the earlier tab's span
	// ends at 391.2.
	s.Click(now, 400, 20, false, 0)
	if got := m.SelectedIndex(); got != 2 {
		t.Errorf("SelectedIndex = %d, want 2", got)
	}
}

func TestStripLongPressStartsReorder(t *testing.T) {
	s, m, _ := newTestStrip(5)
	now := settle(t, s, 0)

	s.OnLongPress(now, 400, 20)
	if !s.InReorderMode() {
		t.Error("long press did not enter reorder mode")
	}
	if got := m.SelectedIndex(); got != 2 {
		t.Errorf("SelectedIndex = %d, want 2 (pressed tab)", got)
	}
}

func TestStripNewTabButtonCreates(t *testing.T) {
	s, m, _ := newTestStrip(3)
	now := settle(t, s, 0)

	// Button sits at x=735 (row end 747 minus half the overlap).
	s.Click(now, 740, 20, false, 0)
	if got := m.Count(); got != 4 {
		t.Fatalf("model count = %d, want 4 after new-tab click", got)
	}
	tab := s.FindTab(4)
	if tab == nil {
		t.Fatal("no record for the created tab")
	}
	if got := tab.Width(); got != 0 {
		t.Errorf("created tab width = %v, want 0 before the entrance animation", got)
	}

	settle(t, s, now+16)
	want := uniformWidth(4)
	for id := 1; id <= 4; id++ {
		if got := s.FindTab(id).Width(); math.Abs(got-want) > 1e-9 {
			t.Errorf("tab %d width = %v, want %v after entrance", id, got, want)
		}
	}
}

func TestStripSelectRevealsOffscreenTab(t *testing.T) {
	s, m, _ := newTestStrip(10)
	now := settle(t, s, 0)

	// Tab 10 starts at idealX 1494, past the 942 usable edge.
	m.Select(9)
	s.TabSelected(now, 10)
	settle(t, s, now+16)

	if got, want := s.ScrollOffset(), -742.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("scroll offset after reveal = %v, want %v", got, want)
	}
	tab := s.FindTab(10)
	if got := tab.DrawX() + tab.Width(); got > 942+visibleEpsilon {
		t.Errorf("revealed tab trailing edge = %v, want inside 942", got)
	}
}

func TestStripRenderOrder(t *testing.T) {
	// Back-to-front paint order: leading side ascending, trailing side
	// descending, selected last.
	s, m, _ := newTestStrip(5)
	m.Select(2)
	settle(t, s, 0)

	list := s.TabsToRender()
	want := []int{1, 2, 5, 4, 3}
	if len(list) != len(want) {
		t.Fatalf("render list length = %d, want %d", len(list), len(want))
	}
	for i, tab := range list {
		if tab.ID() != want[i] {
			t.Errorf("render list[%d] = tab %d, want %d", i, tab.ID(), want[i])
		}
	}
}

func TestStripEmpty(t *testing.T) {
	s, m, _ := newTestStrip(0)
	now := settle(t, s, 0)

	if got := s.TabCount(); got != 0 {
		t.Fatalf("TabCount = %d, want 0", got)
	}
	if got := len(s.TabsToRender()); got != 0 {
		t.Errorf("render list length = %d, want 0", got)
	}
	if !s.NewTabButton().IsVisible() {
		t.Error("new tab button hidden on an empty strip")
	}

	// The button still works with no tabs.
	s.Click(now, s.NewTabButton().X()+5, 20, false, 0)
	if got := m.Count(); got != 1 {
		t.Errorf("model count = %d, want 1 after new-tab click", got)
	}
}

func TestStripSpinnerAdvances(t *testing.T) {
	s, _, _ := newTestStrip(2)
	now := settle(t, s, 0)

	tab := s.FindTab(1)
	tab.SetLoading(true)
	if done := s.UpdateLayout(now+16, 2000); done {
		t.Error("UpdateLayout reported done while a tab is loading")
	}
	// 270 deg/s over 2s wraps to 180.
	if got := tab.LoadingSpinnerRotation(); math.Abs(got-180) > 1e-9 {
		t.Errorf("spinner rotation = %v, want 180", got)
	}

	tab.SetLoading(false)
	settle(t, s, now+32)
}

func TestStripRTLMirrorsLayout(t *testing.T) {
	s, _, _ := newTestStrip(5, WithRTL(true))
	settle(t, s, 0)

	// Under RTL the first tab hugs the right edge and the button
	// margin moves to the left side.
	g := s.Geometry()
	if g.LeftMargin != 58 || g.RightMargin != 0 {
		t.Fatalf("margins = %v/%v, want 58/0 under RTL", g.LeftMargin, g.RightMargin)
	}
	first := s.FindTab(1)
	if got := first.IdealX() + first.Width(); math.Abs(got-1000) > 1e-9 {
		t.Errorf("first tab trailing edge = %v, want 1000", got)
	}
	step := uniformWidth(5) - 24
	second := s.FindTab(2)
	if got, want := second.IdealX(), first.IdealX()-step; math.Abs(got-want) > 1e-9 {
		t.Errorf("second tab idealX = %v, want %v", got, want)
	}
}

func TestStripFlingIgnoredWhileReordering(t *testing.T) {
	s, _, _ := newTestStrip(10)
	now := settle(t, s, 0)

	s.OnDown(now, 700, 20, true, ButtonPrimary)
	if !s.InReorderMode() {
		t.Fatal("reorder did not start")
	}
	s.Fling(now, 700, 20, -2000, 0)
	if s.scr.active() {
		t.Error("fling started during reorder")
	}
}

func TestStripSwapStrategyPushesCapabilities(t *testing.T) {
	s, _, _ := newTestStrip(3)
	settle(t, s, 0)

	if !s.FindTab(1).CanShowCloseButton() {
		t.Fatal("scrolling strategy should allow close buttons")
	}
	s.SetStacker(NewCascadingStacker())
	for id := 1; id <= 3; id++ {
		if s.FindTab(id).CanShowCloseButton() {
			t.Errorf("tab %d still allows a close button under cascading", id)
		}
	}
}
