// Package timeline implements the temporal viewport behind the Gantt view:
// scroll/zoom/selection state, the date<->column transform, view-centering,
// and clipped bar layout. Everything here is day-granularity arithmetic; a
// quantity is columns only after the final division by Zoom.
package timeline

import "sweem/internal/model"

// Default zoom bounds in days per column.
const (
	DefaultMinZoom = 0.25
	DefaultMaxZoom = 14.0
)

// DefaultLookbackDays positions the epoch when no projects exist.
const DefaultLookbackDays = 30

// State is the viewport state, exclusively owned by the UI model and mutated
// only through its methods.
//
// ScrollOffset is the day offset of the visible window's left edge from the
// timeline epoch; it is clamped to >= 0 by every mutator. Zoom is days per
// column and stays within [minZoom, maxZoom]. Selected indexes the project
// list, -1 meaning no selection; it is deliberately NOT auto-corrected when
// the list shrinks — accessors bounds-check instead, so a later refresh that
// restores the list revalidates it for free.
type State struct {
	ScrollOffset int
	Zoom         float64
	Selected     int
	Frame        uint64

	minZoom, maxZoom float64
}

// NewState returns a viewport at the epoch with 1 day/column and no
// selection. Non-positive or inverted bounds fall back to the defaults.
func NewState(minZoom, maxZoom float64) State {
	if minZoom <= 0 || maxZoom < minZoom {
		minZoom, maxZoom = DefaultMinZoom, DefaultMaxZoom
	}
	return State{
		Zoom:     1.0,
		Selected: -1,
		minZoom:  minZoom,
		maxZoom:  maxZoom,
	}
}

// ScrollLeft moves the window n days earlier, saturating at the epoch.
func (s *State) ScrollLeft(n int) {
	s.ScrollOffset -= n
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}

// ScrollRight moves the window n days later. The right side is unbounded.
func (s *State) ScrollRight(n int) {
	s.ScrollOffset += n
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}

// Reset jumps back to the epoch ("show from the start").
func (s *State) Reset() {
	s.ScrollOffset = 0
}

// ZoomIn halves days-per-column (more detail); no-op at the minimum bound.
func (s *State) ZoomIn() {
	if s.Zoom <= s.minZoom {
		return
	}
	s.Zoom /= 2
	if s.Zoom < s.minZoom {
		s.Zoom = s.minZoom
	}
}

// ZoomOut doubles days-per-column (more time on screen); no-op at the max.
func (s *State) ZoomOut() {
	if s.Zoom >= s.maxZoom {
		return
	}
	s.Zoom *= 2
	if s.Zoom > s.maxZoom {
		s.Zoom = s.maxZoom
	}
}

// SelectNext advances the selection, wrapping past the end. With an empty
// list the selection is cleared; from no selection the first entry is chosen.
func (s *State) SelectNext(total int) {
	if total == 0 {
		s.Selected = -1
		return
	}
	switch {
	case s.Selected < 0:
		s.Selected = 0
	default:
		s.Selected = (s.Selected + 1) % total
	}
}

// SelectPrevious moves the selection back, wrapping from 0 to total-1.
func (s *State) SelectPrevious(total int) {
	if total == 0 {
		s.Selected = -1
		return
	}
	switch {
	case s.Selected < 0:
		s.Selected = 0
	case s.Selected == 0:
		s.Selected = total - 1
	default:
		s.Selected--
	}
}

// SelectedProject resolves the selection against the current list. A stale
// index (list shrank since it was set) reads as "no selection" for this
// frame without being cleared.
func (s *State) SelectedProject(projects []model.Project) (model.Project, bool) {
	if s.Selected < 0 || s.Selected >= len(projects) {
		return model.Project{}, false
	}
	return projects[s.Selected], true
}

// Tick advances the animation frame counter. Presentation only; wraps on
// overflow.
func (s *State) Tick() {
	s.Frame++
}
