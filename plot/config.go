package plot

import (
	"encoding/json"

	"github.com/StudioSol/set"
)

// Toolbar buttons suppressed by default in the interactive display.
var defaultHiddenButtons = []string{
	"zoom2d", "pan2d", "select2d", "lasso2d", "zoomIn2d",
	"zoomOut2d", "autoScale2d", "resetScale2d", "zoom",
	"pan", "select", "zoomIn", "zoomOut", "autoScale",
	"resetScale", "toggleSpikelines", "hoverClosestCartesian",
	"hoverCompareCartesian", "toImage",
}

// Locale is a set of locale-specific display settings.
type Locale map[string]interface{}

// DisplayConfig holds the named toggles handed to the interactive
// display of the rendering backend.
type DisplayConfig struct {
	DisplayLogo   bool
	ModeBar       bool
	HiddenButtons *set.LinkedHashSetString
	Locales       map[string]Locale
}

// DisplayOverride carries caller overrides for the display config. Nil
// fields leave the default untouched.
type DisplayOverride struct {
	DisplayLogo   *bool
	ModeBar       *bool
	HiddenButtons []string
	Locales       map[string]Locale
}

// DefaultDisplayConfig returns a fresh default display configuration:
// logo hidden, toolbar visible with most buttons suppressed, and pound
// sterling as currency for the "en" locale.
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		DisplayLogo:   false,
		ModeBar:       true,
		HiddenButtons: set.NewLinkedHashSetString(defaultHiddenButtons...),
		Locales: map[string]Locale{
			"en": {
				"format": map[string]interface{}{
					"currency": []string{"£", ""},
				},
			},
		},
	}
}

// Merge returns a copy of the config with the override values taking
// precedence key by key. Neither input is mutated.
func (c DisplayConfig) Merge(override DisplayOverride) DisplayConfig {
	merged := DisplayConfig{
		DisplayLogo:   c.DisplayLogo,
		ModeBar:       c.ModeBar,
		HiddenButtons: set.NewLinkedHashSetString(),
		Locales:       make(map[string]Locale, len(c.Locales)),
	}

	for button := range c.HiddenButtons.Iter() {
		merged.HiddenButtons.Add(button)
	}
	for name, locale := range c.Locales {
		merged.Locales[name] = locale
	}

	if override.DisplayLogo != nil {
		merged.DisplayLogo = *override.DisplayLogo
	}
	if override.ModeBar != nil {
		merged.ModeBar = *override.ModeBar
	}
	if override.HiddenButtons != nil {
		merged.HiddenButtons = set.NewLinkedHashSetString(override.HiddenButtons...)
	}
	for name, locale := range override.Locales {
		merged.Locales[name] = locale
	}

	return merged
}

// MarshalJSON encodes the config with the key names the rendering
// backend expects.
func (c DisplayConfig) MarshalJSON() ([]byte, error) {
	buttons := make([]string, 0, c.HiddenButtons.Length())
	for button := range c.HiddenButtons.Iter() {
		buttons = append(buttons, button)
	}

	return json.Marshal(map[string]interface{}{
		"displaylogo":            c.DisplayLogo,
		"displayModeBar":         c.ModeBar,
		"modeBarButtonsToRemove": buttons,
		"locales":                c.Locales,
	})
}
