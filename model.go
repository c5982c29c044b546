package tabstrip

// TabModel is the host's canonical ordered tab collection. The engine
// treats it as the source of truth: records are rebuilt from it on
// every sync event, and all order/selection/closure mutations flow
// through it rather than through the engine's own records.
//
// Ids are stable integers unique among live tabs. Indices are only
// valid until the next mutation; the engine re-derives them from ids
// rather than caching them across frames.
type TabModel interface {
	// Count returns the number of live tabs.
	Count() int
	// IDAt returns the id of the tab at index, which must be in range.
	IDAt(index int) int
	// IndexOf returns the index of the tab with the given id, or -1.
	IndexOf(id int) int
	// SelectedIndex returns the index of the selected tab, or -1 when
	// the model is empty.
	SelectedIndex() int

	// Select makes the tab at index the selected tab. Out-of-range
	// indices are ignored.
	Select(index int)
	// MoveTab moves the tab with the given id to newIndex.
	MoveTab(id, newIndex int)
	// CloseTab removes the tab with the given id.
	CloseTab(id int)
	// CreateTab appends a new tab, selects it, and returns its id.
	CreateTab() int
	// NextTabIfClosed returns the id of the tab that would become
	// selected if the given tab were closed, and whether one exists.
	NextTabIfClosed(id int) (int, bool)
}

// Host receives the engine's re-render requests. RequestUpdate
// schedules another layout frame; RequestRender asks for a repaint
// without relayout (pressed-state changes and the like).
type Host interface {
	RequestUpdate()
	RequestRender()
}

// SimpleTabModel is an in-memory TabModel. It backs the demos and
// tests and serves embedders that have no tab model of their own.
type SimpleTabModel struct {
	ids      []int
	selected int
	nextID   int
}

var _ TabModel = (*SimpleTabModel)(nil)

// NewSimpleTabModel creates a model with count tabs, ids 1..count,
// with the first tab selected.
func NewSimpleTabModel(count int) *SimpleTabModel {
	m := &SimpleTabModel{nextID: 1, selected: -1}
	for i := 0; i < count; i++ {
		m.CreateTab()
	}
	if count > 0 {
		m.selected = 0
	}
	return m
}

// Count implements TabModel.
func (m *SimpleTabModel) Count() int { return len(m.ids) }

// IDAt implements TabModel.
func (m *SimpleTabModel) IDAt(index int) int { return m.ids[index] }

// IndexOf implements TabModel.
func (m *SimpleTabModel) IndexOf(id int) int {
	for i, v := range m.ids {
		if v == id {
			return i
		}
	}
	return -1
}

// SelectedIndex implements TabModel.
func (m *SimpleTabModel) SelectedIndex() int {
	if len(m.ids) == 0 {
		return -1
	}
	return m.selected
}

// SelectedID returns the id of the selected tab, or -1 when empty.
func (m *SimpleTabModel) SelectedID() int {
	if m.selected < 0 || m.selected >= len(m.ids) {
		return -1
	}
	return m.ids[m.selected]
}

// Select implements TabModel.
func (m *SimpleTabModel) Select(index int) {
	if index < 0 || index >= len(m.ids) {
		return
	}
	m.selected = index
}

// MoveTab implements TabModel.
func (m *SimpleTabModel) MoveTab(id, newIndex int) {
	cur := m.IndexOf(id)
	if cur < 0 || newIndex < 0 || newIndex >= len(m.ids) {
		return
	}
	selID := m.SelectedID()
	m.ids = append(m.ids[:cur], m.ids[cur+1:]...)
	m.ids = append(m.ids[:newIndex], append([]int{id}, m.ids[newIndex:]...)...)
	if selID >= 0 {
		m.selected = m.IndexOf(selID)
	}
}

// CloseTab implements TabModel.
func (m *SimpleTabModel) CloseTab(id int) {
	cur := m.IndexOf(id)
	if cur < 0 {
		return
	}
	selID := m.SelectedID()
	m.ids = append(m.ids[:cur], m.ids[cur+1:]...)
	if len(m.ids) == 0 {
		m.selected = -1
		return
	}
	if selID == id || m.IndexOf(selID) < 0 {
		// The selected tab went away: fall back to the same index,
		// clamped to the new length.
		if cur >= len(m.ids) {
			cur = len(m.ids) - 1
		}
		m.selected = cur
	} else {
		m.selected = m.IndexOf(selID)
	}
}

// CreateTab implements TabModel.
func (m *SimpleTabModel) CreateTab() int {
	id := m.nextID
	m.nextID++
	m.ids = append(m.ids, id)
	m.selected = len(m.ids) - 1
	return id
}

// NextTabIfClosed implements TabModel: the trailing neighbor when one
// exists, otherwise the leading neighbor.
func (m *SimpleTabModel) NextTabIfClosed(id int) (int, bool) {
	cur := m.IndexOf(id)
	if cur < 0 || len(m.ids) < 2 {
		return 0, false
	}
	if cur+1 < len(m.ids) {
		return m.ids[cur+1], true
	}
	return m.ids[cur-1], true
}
