package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// PathEntry is one labelled location shown by RenderPaths.
type PathEntry struct {
	Label string
	Path  string
	Icon  string
}

// RenderPaths renders the files and directories bsptile reads and writes.
func (r *ConfigRenderer) RenderPaths(entries []PathEntry) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	labelStyle := r.theme.Normal.Bold(true)
	pathStyle := r.theme.Subtle

	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(e.Label))
	}

	var sb strings.Builder
	sb.WriteString("\n")
	for _, e := range entries {
		path := e.Path
		if path == "" {
			path = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("  %s %s  %s\n",
			iconStyle.Render(e.Icon),
			labelStyle.Width(width).Render(e.Label),
			pathStyle.Render(path),
		))
	}
	return sb.String()
}

// RenderSchemaWritten renders the success message after writing the JSON schema.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s JSON schema written to %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
	)
}

// RenderWatching renders the banner shown while watching the config file.
func (r *ConfigRenderer) RenderWatching(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("\n  %s Watching %s %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		r.theme.Subtle.Render("(ctrl+c to stop)"),
	)
}

// RenderReloaded renders one line per config reload.
func (r *ConfigRenderer) RenderReloaded(gap int, mode string, desktops int) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("  %s reloaded: gap=%s layout=%s desktops=%s",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(fmt.Sprintf("%d", gap)),
		r.theme.Highlight.Render(mode),
		r.theme.Highlight.Render(fmt.Sprintf("%d", desktops)),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
