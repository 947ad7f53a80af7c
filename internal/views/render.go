package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header       string
	LeftPane     string
	RightPane    string
	StatusLine   string
	Footer       string
	Notification string
	Dark         bool
}

type palette struct {
	header lipgloss.Style
	status lipgloss.Style
	errTxt lipgloss.Style
	panel  lipgloss.Style
	footer lipgloss.Style
}

var (
	lightPalette = palette{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		errTxt: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		panel:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		footer: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
	darkPalette = palette{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		errTxt: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		panel:  lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1),
		footer: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	}
)

func RenderApp(data AppData) string {
	p := lightPalette
	if data.Dark {
		p = darkPalette
	}

	left := p.panel.Width(58).Render(data.LeftPane)
	right := p.panel.Width(58).Render(data.RightPane)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := p.status.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = p.errTxt.Render(data.StatusLine)
	}

	lines := []string{
		p.header.Render(data.Header),
		row,
		status,
	}
	if data.Notification != "" {
		lines = append(lines, p.panel.Render(data.Notification))
	}
	if data.Footer != "" {
		lines = append(lines, p.footer.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string, dark bool) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "light"
	if dark {
		style = "dark"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
