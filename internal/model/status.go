package model

// Status classifies a project for coloring, markers, and filtering. The
// variants are mutually exclusive; ProjectStatus is the single place the
// classification happens.
type Status int

const (
	StatusActive Status = iota
	StatusCompleted
	StatusOverdue
	StatusPending
)

func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusOverdue:
		return "overdue"
	case StatusPending:
		return "pending"
	default:
		return "active"
	}
}

// ProjectStatus classifies a project relative to today. Precedence matters:
// an actual end date always wins, so a finished project is never overdue no
// matter how late it finished.
func ProjectStatus(p Project, today Date) Status {
	switch {
	case p.ActualEnd != nil:
		return StatusCompleted
	case today.After(p.PlannedEnd):
		return StatusOverdue
	case p.StartDate.After(today):
		return StatusPending
	default:
		return StatusActive
	}
}
