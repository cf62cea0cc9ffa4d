package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"sweem/internal/model"
)

// Kanagawa Dragon palette.
const (
	colBgDark    = "#181616"
	colBgMedium  = "#1D1C19"
	colFgPrimary = "#C5C9C5"
	colFgDim     = "#727169"
	colFgHint    = "#545454"
	colRed       = "#C4746E"
	colGreen     = "#8A9A7B"
	colYellow    = "#C4B28A"
	colBlue      = "#8BA4B0"
	colPurple    = "#957FB8"
	colBorderDim = "#3A3A3A"
)

// projectPalette cycles per project row so neighboring bars stay
// distinguishable.
var projectPalette = []string{
	"#7AA2F7", "#9ECE6A", "#E0AF68", "#BB9AF7", "#FF9E64", "#F7768E",
	"#73DACA", "#FF757F", "#C0CAF5", "#A9DC76", "#F2CDCD", "#89DDFF",
}

func projectColor(index int) string {
	return projectPalette[index%len(projectPalette)]
}

// theme bundles the styles built once at startup; rendering code never
// constructs lipgloss styles per frame.
type theme struct {
	Title      lipgloss.Style
	TabActive  lipgloss.Style
	Tab        lipgloss.Style
	Text       lipgloss.Style
	Dim        lipgloss.Style
	Hint       lipgloss.Style
	Selected   lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	Today      lipgloss.Style
	Border     lipgloss.Style
	Modal      lipgloss.Style
	FieldLabel lipgloss.Style
	FieldFocus lipgloss.Style
	Button     lipgloss.Style
	ButtonHot  lipgloss.Style
}

func newTheme() theme {
	return theme{
		Title:      lipgloss.NewStyle().Foreground(lipgloss.Color(colPurple)).Bold(true),
		TabActive:  lipgloss.NewStyle().Foreground(lipgloss.Color(colBgDark)).Background(lipgloss.Color(colBlue)).Bold(true).Padding(0, 1),
		Tab:        lipgloss.NewStyle().Foreground(lipgloss.Color(colFgDim)).Padding(0, 1),
		Text:       lipgloss.NewStyle().Foreground(lipgloss.Color(colFgPrimary)),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color(colFgDim)),
		Hint:       lipgloss.NewStyle().Foreground(lipgloss.Color(colFgHint)),
		Selected:   lipgloss.NewStyle().Foreground(lipgloss.Color(colBgDark)).Background(lipgloss.Color(colYellow)).Bold(true),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color(colRed)).Bold(true),
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color(colGreen)),
		Warning:    lipgloss.NewStyle().Foreground(lipgloss.Color(colYellow)),
		Today:      lipgloss.NewStyle().Foreground(lipgloss.Color(colYellow)).Bold(true),
		Border:     lipgloss.NewStyle().Foreground(lipgloss.Color(colBorderDim)),
		Modal:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(colBlue)).Padding(1, 2),
		FieldLabel: lipgloss.NewStyle().Foreground(lipgloss.Color(colFgDim)).Width(12),
		FieldFocus: lipgloss.NewStyle().Foreground(lipgloss.Color(colYellow)).Bold(true).Width(12),
		Button:     lipgloss.NewStyle().Foreground(lipgloss.Color(colFgDim)).Padding(0, 2),
		ButtonHot:  lipgloss.NewStyle().Foreground(lipgloss.Color(colBgDark)).Background(lipgloss.Color(colBlue)).Bold(true).Padding(0, 2),
	}
}

// statusColor maps the project classification to its display color.
func statusColor(s model.Status, base string) string {
	switch s {
	case model.StatusCompleted:
		return colGreen
	case model.StatusOverdue:
		return colRed
	case model.StatusPending:
		return colFgDim
	default:
		return base
	}
}

// blendHex mixes two hex colors in RGB space; ratio 0 is a, 1 is b. Used for
// the completion tint and the overdue pulse.
func blendHex(a, b string, ratio float64) string {
	ca, errA := colorful.Hex(a)
	cb, errB := colorful.Hex(b)
	if errA != nil || errB != nil {
		return a
	}
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	return ca.BlendRgb(cb, ratio).Hex()
}

// dimHex scales a hex color toward black by factor (0..1].
func dimHex(hex string, factor float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return colorful.Color{R: c.R * factor, G: c.G * factor, B: c.B * factor}.Clamped().Hex()
}

// statusGlyph is the side-panel indicator in front of each project name.
func statusGlyph(s model.Status) string {
	switch s {
	case model.StatusCompleted:
		return "✓"
	case model.StatusOverdue:
		return "!"
	case model.StatusPending:
		return "·"
	default:
		return "●"
	}
}

func fmtCount(n int, singular string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %ss", n, singular)
}
