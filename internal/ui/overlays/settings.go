package overlays

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/anomredux/timerail/internal/config"
	"github.com/anomredux/timerail/internal/i18n"
	"github.com/anomredux/timerail/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfigChangedMsg signals that config has been updated.
type ConfigChangedMsg struct {
	Config config.Config
}

// settingsField is one row of the overlay. set writes the chosen option
// back into the config.
type settingsField struct {
	label   string
	options []string
	value   string
	set     func(*config.Config, string)
}

type SettingsOverlay struct {
	cfg     config.Config
	cfgPath string
	fields  []settingsField
	cursor  int
	dirty   bool
	err     error
}

func NewSettingsOverlay(cfg config.Config, cfgPath string) *SettingsOverlay {
	s := &SettingsOverlay{cfg: cfg, cfgPath: cfgPath}
	sel := cfg.Selector
	s.fields = []settingsField{
		{i18n.T("setting_scale"), []string{"month", "quarter", "year"}, sel.Scale,
			func(c *config.Config, v string) { c.Selector.Scale = v }},
		{i18n.T("setting_unit"), []string{"day", "week", "month", "quarter"}, sel.MinimumUnit,
			func(c *config.Config, v string) { c.Selector.MinimumUnit = v }},
		{i18n.T("setting_comparison"), []string{"off", "previous_period", "previous_year"}, sel.Comparison,
			func(c *config.Config, v string) { c.Selector.Comparison = v }},
		{i18n.T("setting_cadence"), []string{"auto", "day", "month", "quarter", "year"}, sel.Cadence,
			func(c *config.Config, v string) { c.Selector.Cadence = v }},
		{i18n.T("setting_marker"), []string{"on", "off"}, onOff(sel.ShowMarker),
			func(c *config.Config, v string) { c.Selector.ShowMarker = v == "on" }},
		{i18n.T("setting_timezone"), timezones, cfg.General.Timezone,
			func(c *config.Config, v string) { c.General.Timezone = v }},
		{i18n.T("setting_language"), []string{"en", "de"}, cfg.General.Language,
			func(c *config.Config, v string) { c.General.Language = v }},
	}
	return s
}

var timezones = []string{
	"UTC",
	"US/Eastern", "US/Central", "US/Mountain", "US/Pacific",
	"Europe/London", "Europe/Berlin", "Europe/Paris", "Europe/Vienna",
	"Asia/Tokyo", "Asia/Seoul", "Asia/Shanghai", "Asia/Singapore",
	"Australia/Sydney",
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Config returns the edited configuration.
func (s *SettingsOverlay) Config() config.Config { return s.cfg }

// Update handles a key. closed reports whether the overlay should close;
// closing with changes validates, saves and announces the new config.
func (s *SettingsOverlay) Update(msg tea.KeyMsg) (closed bool, cmd tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		s.cursor = min(s.cursor+1, len(s.fields)-1)
	case "k", "up":
		s.cursor = max(s.cursor-1, 0)
	case "enter", " ", "l", "right":
		s.step(1)
	case "h", "left":
		s.step(-1)
	case "esc", "s":
		if !s.dirty {
			return true, nil
		}
		return s.commit()
	}
	return false, nil
}

func (s *SettingsOverlay) commit() (bool, tea.Cmd) {
	if err := s.cfg.Validate(); err != nil {
		s.err = err
		return false, nil
	}
	if s.cfgPath != "" {
		if err := config.Save(s.cfg, s.cfgPath); err != nil {
			slog.Default().With("component", "settings").Error("save config", "path", s.cfgPath, "err", err)
			s.err = err
		}
	}
	cfg := s.cfg
	return true, func() tea.Msg { return ConfigChangedMsg{Config: cfg} }
}

// step moves the focused field to the neighbouring option, wrapping. An
// unknown current value counts as the first option.
func (s *SettingsOverlay) step(dir int) {
	f := &s.fields[s.cursor]
	n := len(f.options)
	idx := max(slices.Index(f.options, f.value), 0)
	f.value = f.options[(idx+dir+n)%n]
	f.set(&s.cfg, f.value)
	s.dirty = true
	s.err = nil
}

func (s *SettingsOverlay) Render(width, height int) string {
	bg := theme.ColorCardBg
	title := theme.TitleText(i18n.T("settings"))

	base := lipgloss.NewStyle().Background(bg)
	var rows []string
	for i, f := range s.fields {
		labelStyle := base.Foreground(theme.ColorBodyText)
		valueStyle := base.Foreground(theme.ColorSkyBlue)
		arrow := "  "
		if i == s.cursor {
			labelStyle = base.Foreground(theme.ColorGold).Bold(true)
			valueStyle = base.Foreground(theme.ColorBrightText).Bold(true)
			arrow = base.Foreground(theme.ColorGold).Render("> ")
		}
		rows = append(rows, "  "+arrow+
			labelStyle.Render(fmt.Sprintf("%-18s", f.label))+
			valueStyle.Render(" "+f.value))
	}

	content := title + "\n\n" + strings.Join(rows, "\n") + "\n\n" +
		base.Foreground(theme.ColorMutedText).Render(i18n.T("settings_help"))
	if s.err != nil {
		content += "\n" + theme.WarningStyle.Render(s.err.Error())
	}

	boxWidth := 56
	if width < 60 {
		boxWidth = width - 4
	}
	return theme.CardStyle.Width(boxWidth).Render(content)
}
