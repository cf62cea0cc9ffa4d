package timeline

import (
	"math"

	"sweem/internal/model"
)

// Epoch is the zero point of the day-offset coordinate system: the earliest
// project start date, or today minus lookbackDays when the list is empty. It
// is recomputed every layout pass rather than stored so it tracks list
// refreshes deterministically.
func Epoch(projects []model.Project, today model.Date, lookbackDays int) model.Date {
	if len(projects) == 0 {
		return today.AddDays(-lookbackDays)
	}
	earliest := projects[0].StartDate
	for _, p := range projects[1:] {
		earliest = model.MinDate(earliest, p.StartDate)
	}
	return earliest
}

// RawColumn maps a date to a column index relative to the window's left
// edge. The result may be negative or beyond the viewport width; callers
// decide visibility. Monotonically non-decreasing in the date for any
// positive zoom.
func (s State) RawColumn(d, epoch model.Date) int {
	days := epoch.DaysUntil(d)
	return int(math.Floor((float64(days) - float64(s.ScrollOffset)) / s.Zoom))
}

// VisibleColumn is RawColumn restricted to the viewport: ok is false for
// anything off-screen, so drawing code can skip the glyph entirely.
func (s State) VisibleColumn(d, epoch model.Date, width int) (int, bool) {
	col := s.RawColumn(d, epoch)
	if col < 0 || col >= width {
		return 0, false
	}
	return col, true
}

// DateForColumn inverts RawColumn to day granularity: the date whose day
// offset the column's left edge represents. Round-tripping through
// RawColumn lands within Zoom days of the original date.
func (s State) DateForColumn(col int, epoch model.Date) model.Date {
	days := float64(s.ScrollOffset) + float64(col)*s.Zoom
	return epoch.AddDays(int(math.Floor(days)))
}
