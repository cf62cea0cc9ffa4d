package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"sweem/internal/model"
)

var sparkles = []string{"✦", "✧", "⋆", "★"}

func (m Model) viewTimeline() string {
	if len(m.projects) == 0 {
		return m.emptyState("no projects yet", m.cfg.Keys.Create)
	}

	side := m.cfg.Timeline.SidePanelWidth
	barWidth := m.barWidth()
	epoch := m.epoch()

	todayCol := -1
	if col, ok := m.vp.VisibleColumn(m.today, epoch, barWidth); ok {
		todayCol = col
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", side))
	b.WriteString(m.renderAxis(epoch, barWidth, todayCol))
	b.WriteString("\n")

	for i, p := range m.projects {
		b.WriteString(m.renderSidePanel(i, p, side))
		b.WriteString(m.renderBarRow(i, p, epoch, barWidth, todayCol))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderTimelineFooter())
	return b.String()
}

// renderAxis draws the date ruler over the bar area: month names where a
// month begins, day numbers every week, ▼ over today, ┄ on weekends.
func (m Model) renderAxis(epoch model.Date, width, todayCol int) string {
	if width <= 0 {
		return ""
	}
	cells := make([]string, width)
	styles := make([]lipgloss.Style, width)
	prevMonth := m.vp.DateForColumn(-1, epoch).Month()
	for col := 0; col < width; col++ {
		d := m.vp.DateForColumn(col, epoch)
		cells[col], styles[col] = "─", m.th.Border
		if wd := d.Weekday(); wd == 0 || wd == 6 {
			cells[col], styles[col] = "┄", m.th.Hint
		}
		if d.Month() != prevMonth {
			writeLabel(cells, styles, col, d.Month().String()[:3], m.th.Dim)
		} else if d.Day()%7 == 0 && cells[col] == "─" {
			writeLabel(cells, styles, col, fmt.Sprintf("%d", d.Day()), m.th.Hint)
		}
		prevMonth = d.Month()
	}
	if todayCol >= 0 {
		cells[todayCol], styles[todayCol] = "▼", m.th.Today
	}

	var b strings.Builder
	for col := 0; col < width; col++ {
		b.WriteString(styles[col].Render(cells[col]))
	}
	return b.String()
}

func writeLabel(cells []string, styles []lipgloss.Style, at int, label string, style lipgloss.Style) {
	for i, r := range label {
		if at+i >= len(cells) {
			return
		}
		cells[at+i], styles[at+i] = string(r), style
	}
}

func (m Model) renderSidePanel(index int, p model.Project, side int) string {
	if side <= 0 {
		return ""
	}
	base := projectColor(index)
	status := model.ProjectStatus(p, m.today)

	prefix := "│"
	prefixStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(base))
	if index == m.vp.Selected {
		prefix = sparkles[int(m.vp.Frame/4)%len(sparkles)]
		prefixStyle = prefixStyle.Bold(true)
	}

	glyph := lipgloss.NewStyle().
		Foreground(lipgloss.Color(statusColor(status, base))).
		Render(statusGlyph(status))

	name := truncPad(p.DisplayName(), max(side-5, 1))
	nameStyle := m.th.Text
	if index == m.vp.Selected {
		nameStyle = m.th.Selected
	}
	return prefixStyle.Render(prefix) + " " + glyph + " " + nameStyle.Render(name) + " "
}

func (m Model) renderBarRow(index int, p model.Project, epoch model.Date, barWidth, todayCol int) string {
	if barWidth <= 0 {
		return ""
	}
	cells := make([]string, barWidth)
	styles := make([]lipgloss.Style, barWidth)
	for col := range cells {
		cells[col], styles[col] = " ", m.th.Text
	}
	if todayCol >= 0 {
		cells[todayCol], styles[todayCol] = "│", m.th.Hint
	}

	seg, ok := m.vp.Layout(p, epoch, m.today, barWidth)
	if ok {
		barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.barColor(index, seg.Status)))
		selected := index == m.vp.Selected
		for col := seg.Start; col <= seg.End; col++ {
			body := "█"
			if selected && (col+int(m.vp.Frame/3))%8 == 0 {
				body = "▓"
			}
			cells[col], styles[col] = body, barStyle
		}
		if seg.RawStart >= 0 {
			cells[seg.Start] = "▌"
		}
		if seg.RawEnd < barWidth {
			cells[seg.End] = "▐"
		}
		if seg.TodayCol >= 0 {
			cells[seg.TodayCol], styles[seg.TodayCol] = "│", m.th.Today
		}
	}

	var b strings.Builder
	for col := 0; col < barWidth; col++ {
		b.WriteString(styles[col].Render(cells[col]))
	}
	return b.String()
}

// barColor picks the bar fill per status: completed bars get a green tint,
// overdue bars pulse toward red with the animation frame, pending bars are
// dimmed, active bars keep the project color.
func (m Model) barColor(index int, status model.Status) string {
	base := projectColor(index)
	switch status {
	case model.StatusCompleted:
		return blendHex(base, colGreen, 0.5)
	case model.StatusOverdue:
		pulse := math.Sin(float64(m.vp.Frame%20)/20*math.Pi) * 0.3
		return blendHex(base, colRed, 0.5+pulse)
	case model.StatusPending:
		return dimHex(base, 0.45)
	default:
		return base
	}
}

func (m Model) renderTimelineFooter() string {
	legend := strings.Join([]string{
		m.th.Text.Render("● active"),
		m.th.Success.Render("✓ completed"),
		m.th.Error.Render("! overdue"),
		m.th.Dim.Render("· pending"),
	}, "  ")

	info := fmt.Sprintf("zoom %.2gd/col  offset %dd", m.vp.Zoom, m.vp.ScrollOffset)
	if p, ok := m.vp.SelectedProject(m.projects); ok {
		info += fmt.Sprintf("  %d/%d %s", m.vp.Selected+1, len(m.projects),
			runewidth.Truncate(p.DisplayName(), 24, "…"))
	}
	if m.vp.ScrollOffset > 0 {
		info += "  ◂ earlier"
	}
	return " " + legend + "   " + m.th.Hint.Render(info)
}
