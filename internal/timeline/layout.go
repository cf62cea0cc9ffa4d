package timeline

import "sweem/internal/model"

// Segment is the renderable slice of one project bar after clipping to the
// bar sub-area (the viewport minus the side panel).
type Segment struct {
	// Start and End are the clipped visible columns, inclusive, both within
	// [0, barWidth).
	Start, End int
	// RawStart and RawEnd are the unclipped endpoints; rendering uses them
	// to decide whether the true bar edge is on screen (left/right caps).
	RawStart, RawEnd int
	// TodayCol is today's column when it falls inside [Start, End], else -1.
	TodayCol int
	Status   model.Status
}

// Layout computes the visible segment of a project's bar. ok is false when
// nothing should be drawn: a degenerate viewport, an invalid span
// (effective end before start — skipped, never rendered as negative width),
// or a bar entirely outside the window.
func (s State) Layout(p model.Project, epoch, today model.Date, barWidth int) (Segment, bool) {
	if barWidth <= 0 {
		return Segment{}, false
	}

	end := p.EffectiveEnd()
	if end.Before(p.StartDate) {
		return Segment{}, false
	}

	startRaw := s.RawColumn(p.StartDate, epoch)
	endRaw := s.RawColumn(end, epoch)
	if endRaw < 0 || startRaw >= barWidth {
		return Segment{}, false
	}

	seg := Segment{
		Start:    clampCol(startRaw, barWidth),
		End:      clampCol(endRaw, barWidth),
		RawStart: startRaw,
		RawEnd:   endRaw,
		TodayCol: -1,
		Status:   model.ProjectStatus(p, today),
	}
	if seg.End < seg.Start {
		// Zero-width bar straddling the edge at sub-day zoom.
		return Segment{}, false
	}

	if col, ok := s.VisibleColumn(today, epoch, barWidth); ok && col >= seg.Start && col <= seg.End {
		seg.TodayCol = col
	}
	return seg, true
}

func clampCol(col, width int) int {
	if col < 0 {
		return 0
	}
	if col >= width {
		return width - 1
	}
	return col
}
