// Package tabstrip implements the layout and reorder engine for a
// horizontal strip of browser-style tab headers.
//
// # Overview
//
// tabstrip computes, once per frame, the on-screen position, width,
// visibility, and stacking of an ordered collection of tabs inside a
// finite-width strip. It owns scroll and fling physics, drag-based
// reordering with hysteresis thresholds, edge auto-scrolling, and the
// animated insert/close/resize transitions between layouts. It does
// not draw anything: the host reads back a render list of per-tab
// draw transforms and paints them however it likes.
//
// # Quick Start
//
//	import "github.com/gogpu/tabstrip"
//
//	model := tabstrip.NewSimpleTabModel(3)
//	strip := tabstrip.New(model, host)
//	strip.OnSizeChanged(800, 40, now)
//
//	// Once per frame:
//	done := strip.UpdateLayout(now, dt)
//	for _, tab := range strip.TabsToRender() {
//		draw(tab.ID(), tab.DrawX(), tab.DrawY(), tab.Width(), tab.Height())
//	}
//
// # Architecture
//
// The library is organized into:
//   - Strip: the engine owning the canonical tab records, scroll
//     offset, gesture state machine, and animation scheduling
//   - Stacker: pluggable stacking strategy (CascadingStacker for wide
//     strips, ScrollingStacker for narrow ones)
//   - animator/scroller: frame-driven scalar interpolation and
//     scroll/fling physics
//   - TabModel/Host: the narrow interface to the embedding browser
//
// # Coordinate System
//
// All geometry is in density-independent units with the origin at the
// top-left of the strip; X increases toward the trailing edge in LTR
// layouts and is mirrored under RTL. Timestamps are milliseconds from
// an arbitrary monotonic epoch supplied by the host.
//
// # Concurrency
//
// The engine is single-threaded and frame-driven. All methods must be
// called from the same goroutine that calls UpdateLayout; there is no
// internal locking.
package tabstrip
