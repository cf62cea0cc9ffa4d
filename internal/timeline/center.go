package timeline

import "sweem/internal/model"

// CenterOnToday scrolls so today sits at the middle column of a window that
// is width columns wide. The half-window is converted from columns to days
// before it is subtracted from today's day offset.
func (s *State) CenterOnToday(epoch, today model.Date, width int) {
	half := width / 2
	offsetDays := int(float64(half) * s.Zoom)
	s.ScrollOffset = clampOffset(epoch.DaysUntil(today) - offsetDays)
}

// JumpTo centers the viewport on the midpoint of a project's span. The side
// panel consumes screen columns but carries no date axis, so the centering
// window is the viewport minus the panel. The column-space half-window MUST
// be multiplied by Zoom to get days before subtracting; mixing the two units
// here once produced scroll offsets wrong by a factor of the zoom level.
// Pure in its inputs and therefore idempotent.
func (s *State) JumpTo(p model.Project, epoch model.Date, viewportWidth, sidePanelWidth int) {
	effective := viewportWidth - sidePanelWidth
	if effective < 0 {
		effective = 0
	}

	mid := p.StartDate
	if dur := p.DurationDays(); dur > 0 {
		mid = p.StartDate.AddDays(dur / 2)
	}

	offsetDays := int(float64(effective/2) * s.Zoom)
	s.ScrollOffset = clampOffset(epoch.DaysUntil(mid) - offsetDays)
}

func clampOffset(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
