// Command stripdemo renders tab-strip layout snapshots to a PNG.
//
// It drives a strip through a small timeline (settle, create a tab,
// close a tab) and draws one row per snapshot, so the transition
// states of the layout engine can be inspected visually.
package main

import (
	"flag"
	"log"

	"github.com/gogpu/gg"

	"github.com/gogpu/tabstrip"
)

const (
	stripHeight = 40.0
	rowPadding  = 24.0
	frameMillis = 16
)

// nopHost discards frame requests; the demo drives frames itself.
type nopHost struct{}

func (nopHost) RequestUpdate() {}
func (nopHost) RequestRender() {}

type snapshot struct {
	label string
	tabs  []tabState
	ntb   buttonState
}

type tabState struct {
	x, y, w, h float64
	selected   bool
	dying      bool
	closeable  bool
	content    float64
}

type buttonState struct {
	x, y, w, h float64
}

func main() {
	var (
		width      = flag.Int("width", 1000, "strip width")
		tabCount   = flag.Int("tabs", 6, "initial tab count")
		stacker    = flag.String("stacker", "scrolling", "stacking strategy: scrolling or cascading")
		paramsPath = flag.String("params", "", "optional YAML tuning file")
		output     = flag.String("output", "stripdemo.png", "output file")
	)
	flag.Parse()

	params := tabstrip.DefaultParams()
	if *paramsPath != "" {
		p, err := tabstrip.LoadParams(*paramsPath)
		if err != nil {
			log.Fatalf("Failed to load params: %v", err)
		}
		params = p
	}

	var st tabstrip.Stacker
	switch *stacker {
	case "scrolling":
		st = tabstrip.NewScrollingStacker()
	case "cascading":
		st = tabstrip.NewCascadingStacker()
	default:
		log.Fatalf("Unknown stacker %q", *stacker)
	}

	model := tabstrip.NewSimpleTabModel(*tabCount)
	strip := tabstrip.New(model, nopHost{},
		tabstrip.WithStacker(st),
		tabstrip.WithParams(params))
	strip.OnSizeChanged(float64(*width), stripHeight, 0)

	var shots []snapshot
	now := settle(strip, 0)
	shots = append(shots, capture(strip, model, "settled"))

	// Create a tab and catch the entrance animation mid-flight.
	id := model.CreateTab()
	strip.TabCreated(now, id, model.IDAt(0), true)
	now = advance(strip, now, 4)
	shots = append(shots, capture(strip, model, "create: entering"))
	now = settle(strip, now)
	shots = append(shots, capture(strip, model, "create: settled"))

	// Close a middle tab and catch the collapse mid-flight.
	if model.Count() > 2 {
		if t := strip.FindTab(model.IDAt(model.Count()/2)); t != nil {
			strip.Click(now, t.DrawX()+t.Width()/2, stripHeight/2, true, tabstrip.ButtonTertiary)
		}
	}
	now = advance(strip, now, 4)
	shots = append(shots, capture(strip, model, "close: collapsing"))
	now = settle(strip, now)
	shots = append(shots, capture(strip, model, "close: resized"))

	imgHeight := int(float64(len(shots))*(stripHeight+rowPadding) + rowPadding)
	dc := gg.NewContext(*width, imgHeight)
	dc.SetRGB(0.12, 0.12, 0.14)
	dc.DrawRectangle(0, 0, float64(*width), float64(imgHeight))
	dc.Fill()

	for i, shot := range shots {
		y := rowPadding + float64(i)*(stripHeight+rowPadding)
		drawSnapshot(dc, shot, y)
	}

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	for i, shot := range shots {
		log.Printf("  row %d: %s (%d tabs drawn)", i+1, shot.label, len(shot.tabs))
	}
	log.Printf("Strip demo saved to %s (%d snapshots)\n", *output, len(shots))
}

// settle ticks the strip until every animation completes.
func settle(s *tabstrip.Strip, start int64) int64 {
	now := start
	for i := 0; i < 1000; i++ {
		if s.UpdateLayout(now, frameMillis) {
			return now
		}
		now += frameMillis
	}
	return now
}

// advance ticks a fixed number of frames.
func advance(s *tabstrip.Strip, start int64, frames int) int64 {
	now := start
	for i := 0; i < frames; i++ {
		now += frameMillis
		s.UpdateLayout(now, frameMillis)
	}
	return now
}

// capture freezes the strip's draw state into a snapshot.
func capture(s *tabstrip.Strip, m *tabstrip.SimpleTabModel, label string) snapshot {
	shot := snapshot{label: label}
	for _, t := range s.TabsToRender() {
		shot.tabs = append(shot.tabs, tabState{
			x:         t.DrawX(),
			y:         t.DrawY(),
			w:         t.Width(),
			h:         t.Height(),
			selected:  t.ID() == m.SelectedID(),
			dying:     t.IsDying(),
			closeable: t.CanShowCloseButton() && t.VisiblePercentage() >= 1,
			content:   t.ContentOffsetX(),
		})
	}
	b := s.NewTabButton()
	shot.ntb = buttonState{x: b.X(), y: b.Y(), w: b.Width(), h: b.Height()}
	return shot
}

func drawSnapshot(dc *gg.Context, shot snapshot, rowY float64) {
	for _, t := range shot.tabs {
		if t.w < 2 {
			continue
		}
		switch {
		case t.selected:
			dc.SetRGB(0.92, 0.92, 0.95)
		case t.dying:
			dc.SetRGBA(0.5, 0.3, 0.3, 0.9)
		default:
			dc.SetRGB(0.35, 0.37, 0.42)
		}
		dc.DrawRoundedRectangle(t.x, rowY+t.y, t.w, t.h, 8)
		dc.Fill()

		dc.SetRGBA(0, 0, 0, 0.5)
		dc.SetLineWidth(1)
		dc.DrawRoundedRectangle(t.x, rowY+t.y, t.w, t.h, 8)
		dc.Stroke()

		// Title block, pushed by the content offset under overlap.
		if t.w > t.content+40 {
			if t.selected {
				dc.SetRGB(0.2, 0.2, 0.25)
			} else {
				dc.SetRGB(0.75, 0.77, 0.8)
			}
			dc.DrawRoundedRectangle(t.x+t.content+10, rowY+t.y+t.h/2-4, t.w-t.content-44, 8, 4)
			dc.Fill()
		}

		if t.closeable && !t.dying {
			dc.SetRGBA(0.1, 0.1, 0.1, 0.6)
			dc.DrawCircle(t.x+t.w-18, rowY+t.y+t.h/2, 7)
			dc.Fill()
		}
	}

	// New-tab button.
	dc.SetRGB(0.25, 0.5, 0.35)
	dc.DrawRoundedRectangle(shot.ntb.x, rowY+shot.ntb.y, shot.ntb.w, shot.ntb.h, shot.ntb.h/2)
	dc.Fill()
	dc.SetRGB(0.9, 0.95, 0.9)
	cx := shot.ntb.x + shot.ntb.w/2
	cy := rowY + shot.ntb.y + shot.ntb.h/2
	dc.DrawRectangle(cx-7, cy-1.5, 14, 3)
	dc.Fill()
	dc.DrawRectangle(cx-1.5, cy-7, 3, 14)
	dc.Fill()
}
