// Command striptui is an interactive playground for the tab-strip
// layout engine. It drives the strip with keyboard events, ticks the
// layout at ~30fps, and renders the draw state as a character canvas
// so animations, stacking, and reorder behavior can be explored
// without a graphical host.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/tabstrip"
)

// unitsPerCell maps layout units to terminal columns.
const unitsPerCell = 12.0

const tickInterval = 33 * time.Millisecond

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	stripStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

type tickMsg time.Time

// nopHost discards frame requests; the tick loop drives frames.
type nopHost struct{}

func (nopHost) RequestUpdate() {}
func (nopHost) RequestRender() {}

type appModel struct {
	strip *tabstrip.Strip
	model *tabstrip.SimpleTabModel

	cols      int
	cascading bool
	rtl       bool
	lastTick  int64
	settled   bool
}

func newAppModel() appModel {
	m := tabstrip.NewSimpleTabModel(5)
	s := tabstrip.New(m, nopHost{})
	return appModel{strip: s, model: m, cols: 80}
}

func (a appModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func nowMillis() int64 { return time.Now().UnixMilli() }

func (a appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.cols = msg.Width
		a.strip.OnSizeChanged(float64(msg.Width)*unitsPerCell, 40, nowMillis())
		return a, nil

	case tickMsg:
		now := time.Time(msg).UnixMilli()
		dt := now - a.lastTick
		if a.lastTick == 0 || dt < 0 {
			dt = int64(tickInterval / time.Millisecond)
		}
		a.lastTick = now
		a.settled = a.strip.UpdateLayout(now, dt)
		return a, tick()

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := nowMillis()
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "n":
		id := a.model.CreateTab()
		a.strip.TabCreated(now, id, a.model.SelectedID(), true)

	case "x":
		if t := a.strip.FindTab(a.model.SelectedID()); t != nil {
			a.strip.Click(now, t.DrawX()+t.Width()/2, 20, true, tabstrip.ButtonTertiary)
		}

	case "left", "h":
		if i := a.model.SelectedIndex(); i > 0 {
			a.model.Select(i - 1)
			a.strip.TabSelected(now, a.model.SelectedID())
		}

	case "right", "l":
		if i := a.model.SelectedIndex(); i >= 0 && i < a.model.Count()-1 {
			a.model.Select(i + 1)
			a.strip.TabSelected(now, a.model.SelectedID())
		}

	case "shift+left", "H":
		if i := a.model.SelectedIndex(); i > 0 {
			id := a.model.SelectedID()
			a.model.MoveTab(id, i-1)
			a.strip.TabMoved(now, id, i-1)
		}

	case "shift+right", "L":
		if i := a.model.SelectedIndex(); i >= 0 && i < a.model.Count()-1 {
			id := a.model.SelectedID()
			a.model.MoveTab(id, i+1)
			a.strip.TabMoved(now, id, i+1)
		}

	case "[":
		a.strip.SetScrollOffset(a.strip.ScrollOffset() + 4*unitsPerCell)

	case "]":
		a.strip.SetScrollOffset(a.strip.ScrollOffset() - 4*unitsPerCell)

	case "s":
		a.cascading = !a.cascading
		if a.cascading {
			a.strip.SetStacker(tabstrip.NewCascadingStacker())
		} else {
			a.strip.SetStacker(tabstrip.NewScrollingStacker())
		}

	case "r":
		a.rtl = !a.rtl
		a.strip.SetRTL(a.rtl)

	case "p":
		if t := a.strip.FindTab(a.model.SelectedID()); t != nil {
			t.SetLoading(!t.IsLoading())
		}
	}
	return a, nil
}

func (a appModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("tabstrip playground"))
	b.WriteString("\n\n")
	b.WriteString(stripStyle.Render(a.renderStrip()))
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render(a.statusLine()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(
		"n new  x close  h/l select  H/L move  [/] scroll  s stacker  r rtl  p spinner  q quit"))
	b.WriteString("\n")
	return b.String()
}

// renderStrip paints the draw state onto a character canvas, walking
// the render list back to front so overlap resolves the same way it
// would on screen.
func (a appModel) renderStrip() string {
	canvas := make([]rune, a.cols)
	for i := range canvas {
		canvas[i] = '·'
	}
	paint := func(from, to int, r rune) {
		for i := from; i < to && i < len(canvas); i++ {
			if i >= 0 {
				canvas[i] = r
			}
		}
	}

	selID := a.model.SelectedID()
	for _, t := range a.strip.TabsToRender() {
		from := int(t.DrawX() / unitsPerCell)
		to := int((t.DrawX() + t.Width()) / unitsPerCell)
		body := '▒'
		switch {
		case t.IsDying():
			body = '░'
		case t.ID() == selID:
			body = '█'
		}
		paint(from, to, body)

		// Tab label at the content offset, spinner first if loading.
		label := fmt.Sprintf("%d", t.ID())
		if t.IsLoading() {
			label = string(spinnerRune(t.LoadingSpinnerRotation())) + label
		}
		at := from + int(t.ContentOffsetX()/unitsPerCell) + 1
		for i, r := range label {
			if at+i >= 0 && at+i < len(canvas) && at+i < to {
				canvas[at+i] = r
			}
		}
	}

	ntb := a.strip.NewTabButton()
	if ntb.IsVisible() {
		at := int(ntb.X() / unitsPerCell)
		paint(at, at+int(ntb.Width()/unitsPerCell), ' ')
		if at+1 < len(canvas) {
			canvas[at+1] = '+'
		}
	}
	return string(canvas)
}

func spinnerRune(deg float64) rune {
	frames := []rune{'|', '/', '-', '\\'}
	return frames[int(deg/90)%len(frames)]
}

func (a appModel) statusLine() string {
	stacker := "scrolling"
	if a.cascading {
		stacker = "cascading"
	}
	state := "settled"
	if !a.settled {
		state = "animating"
	}
	return fmt.Sprintf("tabs %d  selected %d  scroll %.0f  stacker %s  rtl %v  %s",
		a.model.Count(), a.model.SelectedIndex(), a.strip.ScrollOffset(), stacker, a.rtl, state)
}

func main() {
	p := tea.NewProgram(newAppModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "striptui: %v\n", err)
		os.Exit(1)
	}
}
