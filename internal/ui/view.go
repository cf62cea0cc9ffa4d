package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const logPaneRows = 5

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "starting..."
	}

	header := m.viewTabs()
	body := m.viewBody()
	logs := m.viewLogs()
	status := m.viewStatus()
	return lipgloss.JoinVertical(lipgloss.Left, header, body, logs, status)
}

func (m Model) contentHeight() int {
	h := m.height - 1 - logPaneRows - 1
	if h < 1 {
		return 1
	}
	return h
}

func (m Model) viewBody() string {
	var body string
	switch {
	case m.errMsg != "":
		body = m.centered(m.viewErrorPopup())
	case m.mode == modeForm:
		body = m.centered(m.viewForm())
	case m.mode == modeConfirm:
		body = m.centered(m.viewConfirm())
	case m.showHelp:
		body = m.centered(m.viewHelp())
	case m.activeTab == tabClients:
		body = m.viewClients()
	case m.activeTab == tabUsers:
		body = m.viewUsers()
	default:
		body = m.viewTimeline()
	}
	return lipgloss.NewStyle().Height(m.contentHeight()).MaxHeight(m.contentHeight()).Render(body)
}

func (m Model) centered(s string) string {
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, s)
}

func (m Model) viewTabs() string {
	var b strings.Builder
	b.WriteString(m.th.Title.Render(" sweem "))
	b.WriteString(" ")
	for t := tab(0); t < tabCount; t++ {
		if t == m.activeTab {
			b.WriteString(m.th.TabActive.Render(t.String()))
		} else {
			b.WriteString(m.th.Tab.Render(t.String()))
		}
	}
	return b.String()
}

func (m Model) viewClients() string {
	if len(m.clients) == 0 {
		return m.emptyState("no clients yet", m.cfg.Keys.Create)
	}
	var b strings.Builder
	for i, c := range m.clients {
		name := truncPad(c.DisplayName(), 30)
		counts := fmt.Sprintf("%d/%d done", c.ProjectsCompleted, c.ProjectsTotal)
		address := c.Address
		if address == "" {
			address = "-"
		}
		line := fmt.Sprintf(" %s  %s  %s", name, truncPad(counts, 12), truncPad(address, 36))
		if i == m.listCursor {
			b.WriteString(m.th.Selected.Render("▌" + line))
		} else {
			b.WriteString(m.th.Text.Render(" " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewUsers() string {
	if len(m.users) == 0 {
		return m.emptyState("no users yet", m.cfg.Keys.Create)
	}
	var b strings.Builder
	for i, u := range m.users {
		line := fmt.Sprintf(" %s  %s  %s",
			truncPad(u.DisplayName(), 30),
			truncPad(u.Login, 20),
			truncPad(u.Role.String(), 10))
		if i == m.listCursor {
			b.WriteString(m.th.Selected.Render("▌" + line))
		} else {
			b.WriteString(m.th.Text.Render(" " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) emptyState(what, createKey string) string {
	msg := fmt.Sprintf("%s - press %s to create one", what, createKey)
	return m.centered(m.th.Dim.Render(msg))
}

func (m Model) viewLogs() string {
	lines := make([]string, 0, logPaneRows)
	lines = append(lines, m.th.Border.Render(strings.Repeat("─", max(m.width, 1))))
	for _, e := range m.logs.tail(logPaneRows - 1) {
		stamp := m.th.Hint.Render(e.at.Format("15:04:05"))
		var msg string
		switch e.level {
		case logSuccess:
			msg = m.th.Success.Render(e.message)
		case logWarning:
			msg = m.th.Warning.Render(e.message)
		case logError:
			msg = m.th.Error.Render(e.message)
		default:
			msg = m.th.Dim.Render(e.message)
		}
		lines = append(lines, " "+stamp+" "+msg)
	}
	for len(lines) < logPaneRows {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewStatus() string {
	var left string
	switch {
	case m.loading:
		left = m.th.Warning.Render("● refreshing")
	case m.connected:
		left = m.th.Success.Render("● connected")
	default:
		left = m.th.Error.Render("● offline")
	}
	if !m.lastRefresh.IsZero() {
		left += m.th.Hint.Render("  updated " + fmtAgo(time.Since(m.lastRefresh)))
	}

	var hints string
	switch m.activeTab {
	case tabTimeline:
		hints = "h/l scroll  j/k select  +/- zoom  t today  c/e/d edit  ? help"
	default:
		hints = "j/k move  g/G first/last  c/e/d edit  r refresh  ? help"
	}
	right := m.th.Hint.Render(hints)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) viewForm() string {
	f := m.form
	var b strings.Builder
	b.WriteString(m.th.Title.Render(f.title))
	b.WriteString("\n\n")

	var buttonRow []string
	for i := range f.fields {
		field := &f.fields[i]
		focused := i == f.focused
		if field.kind == fieldButton {
			style := m.th.Button
			if focused {
				style = m.th.ButtonHot
			}
			buttonRow = append(buttonRow, style.Render(field.label))
			continue
		}

		label := m.th.FieldLabel
		if focused {
			label = m.th.FieldFocus
		}
		b.WriteString(label.Render(field.label))
		switch field.kind {
		case fieldText:
			b.WriteString(field.input.View())
		case fieldDate:
			b.WriteString(m.renderChooser(field.date.String(), focused))
		case fieldSelect:
			value := "-"
			if field.selected < len(field.options) {
				value = field.options[field.selected]
			}
			b.WriteString(m.renderChooser(value, focused))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(strings.Join(buttonRow, " "))
	if f.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(m.th.Error.Render(f.errMsg))
	}
	return m.th.Modal.Render(b.String())
}

// renderChooser draws a date or select value with cycle arrows when focused.
func (m Model) renderChooser(value string, focused bool) string {
	if focused {
		return m.th.Text.Render("◂ "+value+" ▸") + m.th.Hint.Render("  (↑/↓)")
	}
	return m.th.Dim.Render("  " + value)
}

func (m Model) viewConfirm() string {
	c := m.confirm
	var b strings.Builder
	b.WriteString(m.th.Title.Render(fmt.Sprintf("Delete %s?", c.entity)))
	b.WriteString("\n\n")
	b.WriteString(m.th.Text.Render(c.name))
	b.WriteString("\n")
	b.WriteString(m.th.Dim.Render("this cannot be undone"))
	b.WriteString("\n\n")
	yes, no := m.th.Button, m.th.ButtonHot
	if c.yesFocused {
		yes, no = m.th.ButtonHot, m.th.Button
	}
	b.WriteString(yes.Render("Yes") + " " + no.Render("No"))
	return m.th.Modal.Render(b.String())
}

func (m Model) viewErrorPopup() string {
	var b strings.Builder
	b.WriteString(m.th.Error.Render("Error"))
	b.WriteString("\n\n")
	b.WriteString(m.th.Text.Render(wrapText(m.errMsg, 60)))
	b.WriteString("\n\n")
	b.WriteString(m.th.Hint.Render("press any key to dismiss"))
	return m.th.Modal.BorderForeground(lipgloss.Color(colRed)).Render(b.String())
}

func (m Model) viewHelp() string {
	keys := m.cfg.Keys
	rows := [][2]string{
		{"tab / shift+tab", "switch tab"},
		{keys.Up + " / " + keys.Down, "move selection"},
		{keys.First + " / " + keys.Last, "first / last entry"},
		{keys.Left + " / " + keys.Right, "scroll a day (shift: a week)"},
		{keys.ZoomIn + " / " + keys.ZoomOut, "zoom in / out"},
		{keys.Today, "center on today"},
		{keys.Start, "jump to start"},
		{keys.Jump, "center selected project"},
		{keys.Create + " / " + keys.Edit + " / " + keys.Delete, "create / edit / delete"},
		{keys.Refresh, "refresh from backend"},
		{keys.Quit, "quit"},
	}
	var b strings.Builder
	b.WriteString(m.th.Title.Render("Keys"))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(m.th.Warning.Render(truncPad(row[0], 22)))
		b.WriteString(m.th.Text.Render(row[1]))
		b.WriteString("\n")
	}
	return m.th.Modal.Render(b.String())
}

// truncPad fits s into exactly w display cells.
func truncPad(s string, w int) string {
	return runewidth.FillRight(runewidth.Truncate(s, w, "…"), w)
}

func wrapText(s string, w int) string {
	words := strings.Fields(s)
	var lines []string
	line := ""
	for _, word := range words {
		if line != "" && runewidth.StringWidth(line)+1+runewidth.StringWidth(word) > w {
			lines = append(lines, line)
			line = word
			continue
		}
		if line == "" {
			line = word
		} else {
			line += " " + word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func fmtAgo(d time.Duration) string {
	switch {
	case d < 2*time.Second:
		return "just now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	default:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	}
}
