package timeline

import (
	"testing"

	"pgregory.net/rapid"

	"sweem/internal/model"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState(0, 0)
	if s.Zoom != 1.0 {
		t.Errorf("Zoom = %v, want 1.0", s.Zoom)
	}
	if s.Selected != -1 {
		t.Errorf("Selected = %d, want -1", s.Selected)
	}
	if s.minZoom != DefaultMinZoom || s.maxZoom != DefaultMaxZoom {
		t.Errorf("bounds = [%v, %v], want defaults", s.minZoom, s.maxZoom)
	}

	s = NewState(0.5, 8)
	if s.minZoom != 0.5 || s.maxZoom != 8 {
		t.Errorf("bounds = [%v, %v], want [0.5, 8]", s.minZoom, s.maxZoom)
	}
}

func TestScrollSaturatesAtEpoch(t *testing.T) {
	s := NewState(0, 0)
	s.ScrollLeft(10)
	if s.ScrollOffset != 0 {
		t.Errorf("ScrollOffset = %d, want 0", s.ScrollOffset)
	}

	s.ScrollRight(15)
	s.ScrollLeft(7)
	if s.ScrollOffset != 8 {
		t.Errorf("ScrollOffset = %d, want 8", s.ScrollOffset)
	}
	s.ScrollLeft(100)
	if s.ScrollOffset != 0 {
		t.Errorf("ScrollOffset = %d, want 0 after over-scroll", s.ScrollOffset)
	}
}

func TestZoomHalvesAndDoubles(t *testing.T) {
	s := NewState(0.25, 14)
	s.ZoomIn()
	if s.Zoom != 0.5 {
		t.Errorf("Zoom = %v, want 0.5", s.Zoom)
	}
	s.ZoomIn()
	s.ZoomIn() // would be 0.125, must stop at the bound
	if s.Zoom != 0.25 {
		t.Errorf("Zoom = %v, want 0.25", s.Zoom)
	}
	s.ZoomIn() // no-op at the bound
	if s.Zoom != 0.25 {
		t.Errorf("Zoom = %v, want 0.25 after no-op", s.Zoom)
	}

	for i := 0; i < 10; i++ {
		s.ZoomOut()
	}
	if s.Zoom != 14 {
		t.Errorf("Zoom = %v, want 14", s.Zoom)
	}
}

func TestZoomStaysWithinBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := NewState(0.25, 14)
		ops := rapid.SliceOf(rapid.Bool()).Draw(t, "ops")
		for _, in := range ops {
			if in {
				s.ZoomIn()
			} else {
				s.ZoomOut()
			}
			if s.Zoom < s.minZoom || s.Zoom > s.maxZoom {
				t.Fatalf("Zoom = %v escaped [%v, %v]", s.Zoom, s.minZoom, s.maxZoom)
			}
		}
	})
}

func TestSelectionWrapsAround(t *testing.T) {
	s := NewState(0, 0)
	const total = 5

	// From no selection the first call lands on 0; total more calls walk
	// the whole list and come back to 0.
	s.SelectNext(total)
	if s.Selected != 0 {
		t.Fatalf("Selected = %d, want 0", s.Selected)
	}
	for i := 0; i < total; i++ {
		s.SelectNext(total)
	}
	if s.Selected != 0 {
		t.Errorf("Selected = %d after full cycle, want 0", s.Selected)
	}

	s.SelectPrevious(total)
	if s.Selected != total-1 {
		t.Errorf("Selected = %d, want %d after wrapping backwards", s.Selected, total-1)
	}
}

func TestSelectionEmptyList(t *testing.T) {
	s := NewState(0, 0)
	s.Selected = 3
	s.SelectNext(0)
	if s.Selected != -1 {
		t.Errorf("SelectNext(0): Selected = %d, want -1", s.Selected)
	}
	s.Selected = 3
	s.SelectPrevious(0)
	if s.Selected != -1 {
		t.Errorf("SelectPrevious(0): Selected = %d, want -1", s.Selected)
	}
}

func TestStaleSelectionReadsAsNone(t *testing.T) {
	s := NewState(0, 0)
	s.Selected = 4
	projects := []model.Project{{Name: "only"}}

	if _, ok := s.SelectedProject(projects); ok {
		t.Error("stale index resolved to a project")
	}
	if s.Selected != 4 {
		t.Errorf("Selected = %d, accessor must not clear it", s.Selected)
	}

	// A refresh that restores the list revalidates the index.
	longer := make([]model.Project, 6)
	if _, ok := s.SelectedProject(longer); !ok {
		t.Error("restored list did not revalidate the selection")
	}
}

func TestReset(t *testing.T) {
	s := NewState(0, 0)
	s.ScrollRight(42)
	s.Reset()
	if s.ScrollOffset != 0 {
		t.Errorf("ScrollOffset = %d, want 0", s.ScrollOffset)
	}
}
