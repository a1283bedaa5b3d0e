package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mode controls the global color palette selection.
type Mode string

const (
	ModeAuto  Mode = "auto"
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// Options configure the active theme at runtime.
type Options struct {
	Override  string
	Preferred string
}

// Theme exposes reusable lipgloss styles. Success/Warning/Danger carry
// the color coding of outcome lines: applied, informational, failed.
type Theme struct {
	Mode    Mode
	Title   lipgloss.Style
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Body    lipgloss.Style
	Cursor  lipgloss.Style
	MenuKey lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
	Subtle  lipgloss.Style
}

// New constructs a theme based on the provided preferences. An explicit
// override wins over the persisted preference.
func New(opts Options) Theme {
	mode := selectMode(opts.Override, opts.Preferred)
	if mode == ModeLight {
		return buildLight()
	}
	return buildDark()
}

func selectMode(override, preferred string) Mode {
	if mode := parseMode(override); mode != "" {
		return applyAuto(mode)
	}
	if mode := parseMode(preferred); mode != "" {
		return applyAuto(mode)
	}
	return ModeDark
}

func parseMode(value string) Mode {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(ModeDark):
		return ModeDark
	case string(ModeLight):
		return ModeLight
	case string(ModeAuto):
		return ModeAuto
	default:
		return ""
	}
}

func applyAuto(mode Mode) Mode {
	if mode == ModeAuto {
		return ModeDark
	}
	return mode
}

func buildDark() Theme {
	fg := lipgloss.Color("#dcdfe4")
	primary := lipgloss.Color("#8bd5ca")
	subtle := lipgloss.Color("#6c7086")

	return Theme{
		Mode:    ModeDark,
		Title:   lipgloss.NewStyle().Foreground(primary).Bold(true).PaddingRight(1),
		Header:  lipgloss.NewStyle().Foreground(primary).Padding(0, 1),
		Footer:  lipgloss.NewStyle().Foreground(subtle).Padding(0, 1),
		Body:    lipgloss.NewStyle().Foreground(fg).Padding(1, 2),
		Cursor:  lipgloss.NewStyle().Foreground(primary).Bold(true),
		MenuKey: lipgloss.NewStyle().Foreground(primary).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af")).Bold(true),
		Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")).Bold(true),
		Subtle:  lipgloss.NewStyle().Foreground(subtle),
	}
}

func buildLight() Theme {
	fg := lipgloss.Color("#24292f")
	primary := lipgloss.Color("#0e7490")
	subtle := lipgloss.Color("#6e7781")

	return Theme{
		Mode:    ModeLight,
		Title:   lipgloss.NewStyle().Foreground(primary).Bold(true).PaddingRight(1),
		Header:  lipgloss.NewStyle().Foreground(primary).Padding(0, 1),
		Footer:  lipgloss.NewStyle().Foreground(subtle).Padding(0, 1),
		Body:    lipgloss.NewStyle().Foreground(fg).Padding(1, 2),
		Cursor:  lipgloss.NewStyle().Foreground(primary).Bold(true),
		MenuKey: lipgloss.NewStyle().Foreground(primary).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#1a7f37")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#9a6700")).Bold(true),
		Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("#cf222e")).Bold(true),
		Subtle:  lipgloss.NewStyle().Foreground(subtle),
	}
}
