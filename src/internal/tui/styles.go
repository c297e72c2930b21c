// Package tui renders tables and boxes with lipgloss for the fnmdesk CLI.
package tui

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Lazy initialization to avoid cold start penalty from lipgloss terminal detection
var (
	initOnce sync.Once
	plain    bool

	colorAccent  lipgloss.Color
	colorNode    lipgloss.Color
	colorDefault lipgloss.Color
	colorError   lipgloss.Color
	colorMuted   lipgloss.Color

	styleTitle    lipgloss.Style
	styleVersion  lipgloss.Style
	styleCurrent  lipgloss.Style
	styleMuted    lipgloss.Style
	styleKey      lipgloss.Style
	styleHeader   lipgloss.Style
	styleCell     lipgloss.Style
	styleFrame    lipgloss.Style
	styleInfoBox  lipgloss.Style
	styleErrorBox lipgloss.Style
)

// SetPlain disables colors, for output that is piped or captured. It must
// be called before anything is rendered.
func SetPlain(p bool) {
	plain = p
}

func initStyles() {
	initOnce.Do(func() {
		// Fixed profiles skip slow terminal capability detection
		if plain {
			lipgloss.SetColorProfile(termenv.Ascii)
		} else {
			lipgloss.SetColorProfile(termenv.TrueColor)
		}

		colorAccent = lipgloss.Color("39")   // cyan
		colorNode = lipgloss.Color("76")     // Node.js green
		colorDefault = lipgloss.Color("213") // magenta
		colorError = lipgloss.Color("196")
		colorMuted = lipgloss.Color("245")

		styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
		styleVersion = lipgloss.NewStyle().Bold(true).Foreground(colorDefault)
		styleCurrent = lipgloss.NewStyle().Bold(true).Foreground(colorNode)
		styleMuted = lipgloss.NewStyle().Foreground(colorMuted)
		styleKey = lipgloss.NewStyle().Foreground(colorAccent)

		styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).PaddingRight(2)
		styleCell = lipgloss.NewStyle().PaddingRight(2)
		styleFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

		styleInfoBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)
		styleErrorBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorError).
			Padding(0, 1)
	})
}

// RenderTitle renders a styled title
func RenderTitle(text string) string {
	initStyles()
	return styleTitle.Render(text)
}

// RenderVersion renders a version string with styling
func RenderVersion(version string) string {
	initStyles()
	return styleVersion.Render(version)
}

// RenderCurrentVersion renders the version in use
func RenderCurrentVersion(version string) string {
	initStyles()
	return styleCurrent.Render(version)
}

// RenderMuted renders text in a muted/dim style
func RenderMuted(text string) string {
	initStyles()
	return styleMuted.Render(text)
}

// RenderInfoBox renders content in an info-styled box
func RenderInfoBox(content string) string {
	initStyles()
	return styleInfoBox.Render(content)
}

// RenderErrorBox renders content in an error-styled box
func RenderErrorBox(content string) string {
	initStyles()
	return styleErrorBox.Render(content)
}
