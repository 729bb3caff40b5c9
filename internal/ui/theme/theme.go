// Package theme holds the color palettes and shared styles. Two palettes
// ship: a modern one and a fantasy one matching the printed sheet's look.
package theme

import (
	"image/color"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
)

// Mode names a palette.
type Mode string

const (
	ModeModern  Mode = "modern"
	ModeFantasy Mode = "fantasy"
)

// FromEnv reads the preferred mode from PATHBOUND_THEME, defaulting to modern.
func FromEnv() Mode {
	if strings.EqualFold(os.Getenv("PATHBOUND_THEME"), string(ModeFantasy)) {
		return ModeFantasy
	}
	return ModeModern
}

// Palette is one complete color set. lipgloss.Color is a constructor, not a
// type, so the fields hold the color.Color values it produces.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgDark    color.Color
	BgCard    color.Color
	Border    color.Color
}

// Modern is the default palette.
var Modern = Palette{
	Primary:   lipgloss.Color("#6366F1"), // Indigo
	Secondary: lipgloss.Color("#14B8A6"), // Teal
	Accent:    lipgloss.Color("#F59E0B"), // Amber
	Success:   lipgloss.Color("#22C55E"), // Green
	Error:     lipgloss.Color("#F43F5E"), // Rose
	Text:      lipgloss.Color("#F8FAFC"), // White
	TextDim:   lipgloss.Color("#94A3B8"), // Slate
	BgDark:    lipgloss.Color("#0F172A"), // Deep Navy
	BgCard:    lipgloss.Color("#1E293B"), // Dark Slate
	Border:    lipgloss.Color("#334155"), // Slate
}

// Fantasy is the parchment-and-ember palette.
var Fantasy = Palette{
	Primary:   lipgloss.Color("#C08A3E"), // Old Gold
	Secondary: lipgloss.Color("#7A9E7E"), // Moss
	Accent:    lipgloss.Color("#B33939"), // Ember Red
	Success:   lipgloss.Color("#7A9E7E"), // Moss
	Error:     lipgloss.Color("#B33939"), // Ember Red
	Text:      lipgloss.Color("#EADBC0"), // Parchment
	TextDim:   lipgloss.Color("#9C8B6C"), // Faded Ink
	BgDark:    lipgloss.Color("#1C1410"), // Soot
	BgCard:    lipgloss.Color("#2A2019"), // Dark Leather
	Border:    lipgloss.Color("#5A4632"), // Worn Bronze
}

// Active colors, set by Apply. Default to the modern palette.
var (
	Primary   = Modern.Primary
	Secondary = Modern.Secondary
	Accent    = Modern.Accent
	Success   = Modern.Success
	Error     = Modern.Error
	Text      = Modern.Text
	TextDim   = Modern.TextDim
	BgDark    = Modern.BgDark
	BgCard    = Modern.BgCard
	Border    = Modern.Border
)

// Typography and layout styles, rebuilt by Apply.
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style

	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style

	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Good       lipgloss.Style
	Bad        lipgloss.Style
)

func init() {
	Apply(ModeModern)
}

// Apply switches the active palette and rebuilds every shared style.
func Apply(mode Mode) {
	p := Modern
	if mode == ModeFantasy {
		p = Fantasy
	}

	Primary, Secondary, Accent = p.Primary, p.Secondary, p.Accent
	Success, Error = p.Success, p.Error
	Text, TextDim = p.Text, p.TextDim
	BgDark, BgCard, Border = p.BgDark, p.BgCard, p.Border

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Good = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Bad = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
}
