package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/tenth-to-inch/internal/locale"
)

var (
	accent = lipgloss.Color("#5B8DEF")
	muted  = lipgloss.Color("#888888")
	border = lipgloss.Color("#444444")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))
	subheaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)
	hintStyle = lipgloss.NewStyle().
			Foreground(muted)
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF5F5F")).
			Padding(0, 1)
	metricValueStyle = lipgloss.NewStyle().
				Bold(true)
)

const (
	columnWidth  = 30
	sidebarWidth = 34
)

// View renders the current state to a string.
func (a *App) View() string {
	t := a.locale
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("📏 "+t.Text(locale.AppTitle)),
		hintStyle.Render("   "+t.Text(locale.LanguageSelector)+": "+t.Name()),
	)

	columns := make([]string, 0, fieldCount)
	for f := field(0); f < fieldCount; f++ {
		columns = append(columns, a.renderColumn(f))
	}
	main := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
		hintStyle.Render(strings.Repeat("─", columnWidth*int(fieldCount))),
		a.renderResults(),
	)

	body := main
	if a.width == 0 || a.width >= columnWidth*int(fieldCount)+sidebarWidth {
		body = lipgloss.JoinHorizontal(lipgloss.Top, main, a.renderSidebar())
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", a.help.View(a.keys)),
	)
}

func (a *App) renderColumn(f field) string {
	t := a.locale
	lines := []string{
		subheaderStyle.Render(t.Text(f.label())),
		hintStyle.Render(t.Text(f.prompt())),
		a.inputs[f].View(),
	}
	if f == fieldArch {
		lines = append(lines, hintStyle.Render(t.Text(locale.ArchHelp)))
	}

	button := "[ " + t.Textf(locale.ConvertFrom, f.label()) + " ]"
	buttonStyle := lipgloss.NewStyle().Foreground(muted)
	boxBorder := border
	if f == a.focus {
		buttonStyle = buttonStyle.Foreground(accent).Bold(true)
		boxBorder = accent
	}
	lines = append(lines, "", buttonStyle.Render(button))

	return lipgloss.NewStyle().
		Width(columnWidth-4).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(boxBorder).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (a *App) renderResults() string {
	t := a.locale
	lines := []string{subheaderStyle.Render(t.Text(locale.ConversionResults))}
	if !a.converted {
		lines = append(lines, hintStyle.Render(t.Text(locale.NoConversion)))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, t.Textf(locale.ConvertingFrom, a.source.label()))
	if a.result == nil {
		lines = append(lines, errorStyle.Width(columnWidth*int(fieldCount)-4).Render(t.Text(a.errKey)))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	metrics := []string{
		a.renderMetric(t.Text(locale.DecimalFeet), a.result.FeetText()),
		a.renderMetric(t.Text(locale.ArchNotation), a.result.Architectural),
		a.renderMetric(t.Text(locale.DecimalInches), a.result.InchesText()),
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, metrics...))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (a *App) renderMetric(label, value string) string {
	return lipgloss.NewStyle().
		Width(columnWidth).
		Padding(1, 1, 0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			hintStyle.Render(label),
			metricValueStyle.Render(value),
		))
}

func (a *App) renderSidebar() string {
	t := a.locale
	return lipgloss.NewStyle().
		Width(sidebarWidth-4).
		MarginLeft(2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			subheaderStyle.Render(t.Text(locale.LanguageSelector)),
			t.Name()+hintStyle.Render(" (ctrl+l)"),
			"",
			t.Text(locale.AppDescription),
			"",
			a.renderLogFooter(),
		))
}

// renderLogFooter tells the user where this session's activity is written.
func (a *App) renderLogFooter() string {
	t := a.locale
	if a.logbook == nil {
		return hintStyle.Render(t.Text(locale.LogUnavailable))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		subheaderStyle.Render(t.Text(locale.ActivityLog)),
		hintStyle.Render(t.Text(locale.LogSession)+" "+a.logbook.Session()),
		hintStyle.Render(a.logbook.Path()),
	)
}
