package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// The viewer must stay readable on light and dark backgrounds, so colors are adaptive
// and faint text is only used on dark backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted      = ac("240", "243")
	colorSurfaceFg  = ac("235", "252")
	colorControlBg  = ac("252", "235")
	colorAccent     = ac("27", "62")
	colorAccentFg   = ac("255", "235")
	colorSelectedBg = ac("#e9e9e9", "#262626")
	colorSelectedFg = ac("235", "255")
	colorError      = ac("160", "203")
)

type styles struct {
	title       lipgloss.Style
	tab         lipgloss.Style
	tabActive   lipgloss.Style
	section     lipgloss.Style
	rowID       lipgloss.Style
	name        lipgloss.Style
	muted       lipgloss.Style
	selected    lipgloss.Style
	status      lipgloss.Style
	statusError lipgloss.Style
	help        lipgloss.Style
}

func newStyles(dark bool) styles {
	muted := lipgloss.NewStyle().Foreground(colorMuted)
	if dark {
		muted = muted.Faint(true)
	}
	return styles{
		title:       lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg),
		tab:         lipgloss.NewStyle().Padding(0, 1).Foreground(colorMuted),
		tabActive:   lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(colorAccentFg).Background(colorAccent),
		section:     lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		rowID:       lipgloss.NewStyle().Foreground(colorMuted),
		name:        lipgloss.NewStyle().Bold(true),
		muted:       muted,
		selected:    lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg),
		status:      lipgloss.NewStyle().Foreground(colorSurfaceFg).Background(colorControlBg),
		statusError: lipgloss.NewStyle().Bold(true).Foreground(colorError).Background(colorControlBg),
		help:        muted,
	}
}

// applyColorProfilePreference sets Lip Gloss's color profile. Only NO_COLOR is honored;
// CLICOLOR handling in termenv is aimed at piped output, not a full-screen program.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	profile := termenv.ColorProfile()
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	switch {
	case strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit"):
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	case strings.Contains(term, "256color"):
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}
	lipgloss.SetColorProfile(profile)
}

// resolveStyle turns the configured style (auto|dark|light|notty) into a concrete one.
// "auto" prefers the COLORFGBG hint over querying the terminal, which can block.
func resolveStyle(style string) string {
	switch s := strings.ToLower(strings.TrimSpace(style)); s {
	case "dark", "light", "notty":
		return s
	}
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			if bg < 7 {
				return "dark"
			}
			return "light"
		}
	}
	if termenv.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
