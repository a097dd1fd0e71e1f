package explorer

import "sync"

// Selection tracks the node IDs selected within the current folder.
type Selection struct {
	mu    sync.Mutex
	ids   map[string]struct{}
	order []string
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Toggle adds id when absent and removes it when present. It returns
// whether id is selected afterwards.
func (s *Selection) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return false
	}
	s.ids[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

// Has reports whether id is selected.
func (s *Selection) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = make(map[string]struct{})
	s.order = nil
}

// Count returns the number of selected IDs.
func (s *Selection) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// IDs returns the selected IDs in the order they were selected.
func (s *Selection) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// ViewMode is the rendering layout of a listing. It has no influence on
// selection or ordering.
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewGrid
)

// Toggle returns the other view mode.
func (m ViewMode) Toggle() ViewMode {
	if m == ViewGrid {
		return ViewList
	}
	return ViewGrid
}

func (m ViewMode) String() string {
	if m == ViewGrid {
		return "grid"
	}
	return "list"
}
