// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    lipgloss.Color
	ColorSecondary  lipgloss.Color
	ColorForeground lipgloss.Color
	ColorMuted      lipgloss.Color
	ColorBackground lipgloss.Color
	ColorSurface    lipgloss.Color
	ColorSuccess    lipgloss.Color
	ColorWarning    lipgloss.Color
	ColorError      lipgloss.Color
)

// Style exports.
var (
	// CLI styles.
	HeaderStyle  lipgloss.Style
	DividerStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	InfoStyle    lipgloss.Style
	MutedStyle   lipgloss.Style

	// TUI shared styles.
	TitleStyle     lipgloss.Style
	SubtitleStyle  lipgloss.Style
	CountdownStyle lipgloss.Style
	HelpStyle      lipgloss.Style

	SelectedRowStyle lipgloss.Style
	ActiveRowStyle   lipgloss.Style
	CueFlashStyle    lipgloss.Style

	WorkStyle        lipgloss.Style
	BreakStyle       lipgloss.Style
	DoneStyle        lipgloss.Style
	PendingStyle     lipgloss.Style
	SkippedStyle     lipgloss.Style
	DistractionStyle lipgloss.Style

	OverlayStyle      lipgloss.Style
	OverlayTitleStyle lipgloss.Style
	OverlayHelpStyle  lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	HeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	InfoStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	SubtitleStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	CountdownStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	SelectedRowStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	ActiveRowStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)
	CueFlashStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorWarning).
		Bold(true)

	WorkStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	BreakStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	DoneStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	PendingStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	SkippedStyle = lipgloss.NewStyle().Foreground(ColorMuted).Strikethrough(true)
	DistractionStyle = lipgloss.NewStyle().Foreground(ColorWarning)

	OverlayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	OverlayTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	OverlayHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
}

// FormTheme returns a huh form theme derived from the active palette.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(ColorMuted)
	t.Focused.Base = t.Focused.Base.BorderForeground(ColorPrimary)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ColorError)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorError)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(ColorPrimary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ColorSecondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Background(ColorSurface).
		Foreground(ColorMuted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(ColorPrimary)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(ColorSecondary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(ColorMuted)

	t.Blurred.Title = t.Blurred.Title.Foreground(ColorMuted)
	t.Blurred.Description = t.Blurred.Description.Foreground(ColorMuted)

	t.Help.ShortKey = t.Help.ShortKey.Foreground(ColorMuted)
	t.Help.ShortDesc = t.Help.ShortDesc.Foreground(ColorSurface)

	return t
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
