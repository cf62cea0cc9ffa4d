package timeline

import (
	"testing"

	"sweem/internal/model"
)

func TestCenterOnToday(t *testing.T) {
	s := NewState(0, 0)
	today := day(100)

	s.CenterOnToday(testEpoch, today, 10)
	if s.ScrollOffset != 95 {
		t.Errorf("ScrollOffset = %d, want 95", s.ScrollOffset)
	}

	s.Zoom = 2
	s.CenterOnToday(testEpoch, today, 10)
	if s.ScrollOffset != 90 {
		t.Errorf("ScrollOffset = %d at zoom 2, want 90", s.ScrollOffset)
	}

	// Today near the epoch clamps rather than scrolling into negative days.
	s.CenterOnToday(testEpoch, day(3), 100)
	if s.ScrollOffset != 0 {
		t.Errorf("ScrollOffset = %d, want 0", s.ScrollOffset)
	}
}

func TestJumpToCentersMidpoint(t *testing.T) {
	s := NewState(0, 0)
	p := model.Project{StartDate: day(190), PlannedEnd: day(210)}

	// effective width 100-26=74, half-window 37 columns = 37 days at zoom 1.
	s.JumpTo(p, testEpoch, 100, 26)
	if s.ScrollOffset != 163 {
		t.Errorf("ScrollOffset = %d, want 163", s.ScrollOffset)
	}
}

// The half-window is columns and must become days via the zoom factor before
// it is subtracted from the midpoint's day offset. At zoom 2 the 37-column
// half-window spans 74 days.
func TestJumpToConvertsColumnsToDays(t *testing.T) {
	s := NewState(0, 0)
	s.Zoom = 2
	p := model.Project{StartDate: day(190), PlannedEnd: day(210)}

	s.JumpTo(p, testEpoch, 100, 26)
	if s.ScrollOffset != 126 {
		t.Errorf("ScrollOffset = %d, want 126 (200 - 37*2)", s.ScrollOffset)
	}
}

func TestJumpToClampsAtEpoch(t *testing.T) {
	s := NewState(0, 0)
	p := model.Project{StartDate: testEpoch, PlannedEnd: testEpoch}

	s.JumpTo(p, testEpoch, 100, 26)
	if s.ScrollOffset != 0 {
		t.Errorf("ScrollOffset = %d, want 0 for a project at the epoch", s.ScrollOffset)
	}
}

func TestJumpToIdempotent(t *testing.T) {
	s := NewState(0, 0)
	s.Zoom = 4
	p := model.Project{StartDate: day(300), PlannedEnd: day(330)}

	s.JumpTo(p, testEpoch, 120, 26)
	first := s.ScrollOffset
	s.JumpTo(p, testEpoch, 120, 26)
	if s.ScrollOffset != first {
		t.Errorf("second jump moved the window: %d -> %d", first, s.ScrollOffset)
	}
}

func TestJumpToDegenerateViewport(t *testing.T) {
	s := NewState(0, 0)
	p := model.Project{StartDate: day(50), PlannedEnd: day(60)}

	// Side panel wider than the terminal: effective width clamps to zero and
	// the midpoint lands on the left edge.
	s.JumpTo(p, testEpoch, 20, 26)
	if s.ScrollOffset != 55 {
		t.Errorf("ScrollOffset = %d, want 55", s.ScrollOffset)
	}
}
