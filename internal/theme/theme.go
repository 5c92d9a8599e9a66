package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Base palette
var (
	ColorLavender = lipgloss.Color("#9f99d1")
	ColorSkyBlue  = lipgloss.Color("#86bada")
	ColorMauve    = lipgloss.Color("#dbaad7")
	ColorPeach    = lipgloss.Color("#f6bcb0")
	ColorGold     = lipgloss.Color("#ffe3b3")
)

// Background tones (dark theme)
var (
	ColorBaseBg     = lipgloss.Color("#1a1b2e")
	ColorCardBg     = lipgloss.Color("#232438")
	ColorElevatedBg = lipgloss.Color("#2a2b42")
	ColorBorder     = lipgloss.Color("#3a3b52")
	ColorMutedText  = lipgloss.Color("#6b6d8a")
	ColorBodyText   = lipgloss.Color("#c8cad8")
	ColorBrightText = lipgloss.Color("#ecedf5")
)

// Semantic colors
var (
	ColorOverlayBg = lipgloss.Color("#111122")
	ColorPositive  = lipgloss.Color("#8fd19e")
	ColorNegative  = lipgloss.Color("#f07070")
)

// MagnitudeGradient runs from small to large bucket totals.
var MagnitudeGradient = []string{
	"#86bada",
	"#9f99d1",
	"#dbaad7",
	"#f6bcb0",
	"#ffe3b3",
}

// LerpColor interpolates between two hex colors.
func LerpColor(from, to string, t float64) string {
	r1, g1, b1 := HexToRGB(from)
	r2, g2, b2 := HexToRGB(to)

	r := uint8(float64(r1) + t*(float64(r2)-float64(r1)))
	g := uint8(float64(g1) + t*(float64(g2)-float64(g1)))
	b := uint8(float64(b1) + t*(float64(b2)-float64(b1)))

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func HexToRGB(hex string) (uint8, uint8, uint8) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	var r, g, b uint8
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return r, g, b
}

// GradientText applies a gradient color across a string.
func GradientText(text, fromHex, toHex string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(text) * 20)
	style := lipgloss.NewStyle()
	for i, r := range runes {
		t := float64(i) / float64(max(len(runes)-1, 1))
		color := LerpColor(fromHex, toHex, t)
		sb.WriteString(style.Foreground(lipgloss.Color(color)).Render(string(r)))
	}
	return sb.String()
}

// TitleText renders a view or overlay title in the Lavender to Mauve gradient.
func TitleText(text string) string {
	return GradientText(text, string(ColorLavender), string(ColorMauve))
}

// MultiStopGradient interpolates through multiple color stops.
func MultiStopGradient(t float64, stops []string) string {
	if len(stops) < 2 {
		return stops[0]
	}
	if t <= 0 {
		return stops[0]
	}
	if t >= 1 {
		return stops[len(stops)-1]
	}

	segments := len(stops) - 1
	segment := int(t * float64(segments))
	if segment >= segments {
		segment = segments - 1
	}
	localT := t*float64(segments) - float64(segment)

	return LerpColor(stops[segment], stops[segment+1], localT)
}

// Common styles
var (
	CardStyle = lipgloss.NewStyle().
			Background(ColorCardBg).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorBrightText).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMutedText)

	BodyStyle = lipgloss.NewStyle().
			Foreground(ColorBodyText)

	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorMauve)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorPeach).
			Bold(true)
)

// Rail styles. One cell of the track is drawn with exactly one of these.
var (
	RailTrackStyle      = lipgloss.NewStyle().Foreground(ColorBorder)
	RailTickStyle       = lipgloss.NewStyle().Foreground(ColorMutedText)
	RailLabelStyle      = lipgloss.NewStyle().Foreground(ColorBodyText)
	RailYearLabelStyle  = lipgloss.NewStyle().Foreground(ColorGold).Bold(true)
	RailSelectionStyle  = lipgloss.NewStyle().Foreground(ColorSkyBlue)
	RailHandleStyle     = lipgloss.NewStyle().Foreground(ColorGold).Bold(true)
	RailComparisonStyle = lipgloss.NewStyle().Foreground(ColorMauve)
	RailPreviewStyle    = lipgloss.NewStyle().Foreground(ColorLavender)
	RailHoverStyle      = lipgloss.NewStyle().Foreground(ColorPeach)
	RailMarkerStyle     = lipgloss.NewStyle().Foreground(ColorPeach).Bold(true)
	RailRemoveStyle     = lipgloss.NewStyle().Foreground(ColorNegative).Bold(true)
)
