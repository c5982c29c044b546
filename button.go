package tabstrip

// NewTabButton is the strip-owned button that requests tab creation.
// The engine positions it each frame just past the outermost occupied
// tab edge; the host reads it back for drawing and the engine handles
// its hit-testing and pressed state internally.
type NewTabButton struct {
	x, y          float64
	width, height float64
	visible       bool
	pressed       bool
}

// X returns the button's left edge.
func (b *NewTabButton) X() float64 { return b.x }

// Y returns the button's top edge.
func (b *NewTabButton) Y() float64 { return b.y }

// Width returns the button width.
func (b *NewTabButton) Width() float64 { return b.width }

// Height returns the button height.
func (b *NewTabButton) Height() float64 { return b.height }

// IsVisible reports whether the button should be drawn.
func (b *NewTabButton) IsVisible() bool { return b.visible }

// IsPressed reports whether the button is held down.
func (b *NewTabButton) IsPressed() bool { return b.pressed }

// contains reports whether the point lies inside the button.
func (b *NewTabButton) contains(x, y float64) bool {
	return b.visible &&
		x >= b.x && x < b.x+b.width &&
		y >= b.y && y < b.y+b.height
}
