package plot

import (
	"encoding/json"
	"testing"

	"github.com/StudioSol/set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hasButton(buttons *set.LinkedHashSetString, name string) bool {
	for button := range buttons.Iter() {
		if button == name {
			return true
		}
	}
	return false
}

func TestDefaultDisplayConfig(t *testing.T) {
	config := DefaultDisplayConfig()

	assert.False(t, config.DisplayLogo)
	assert.True(t, config.ModeBar)
	assert.Equal(t, len(defaultHiddenButtons), config.HiddenButtons.Length())
	assert.True(t, hasButton(config.HiddenButtons, "zoom2d"))
	assert.True(t, hasButton(config.HiddenButtons, "toImage"))
	require.Contains(t, config.Locales, "en")
}

func TestDisplayConfigMerge(t *testing.T) {
	defaults := DefaultDisplayConfig()

	logo := true
	merged := defaults.Merge(DisplayOverride{
		DisplayLogo:   &logo,
		HiddenButtons: []string{"toImage"},
		Locales: map[string]Locale{
			"fr": {"format": map[string]interface{}{"decimal": ","}},
		},
	})

	// overrides win key by key
	assert.True(t, merged.DisplayLogo)
	assert.True(t, merged.ModeBar)
	assert.Equal(t, 1, merged.HiddenButtons.Length())
	assert.True(t, hasButton(merged.HiddenButtons, "toImage"))
	assert.Contains(t, merged.Locales, "en")
	assert.Contains(t, merged.Locales, "fr")

	// the defaults are left untouched
	assert.False(t, defaults.DisplayLogo)
	assert.Equal(t, len(defaultHiddenButtons), defaults.HiddenButtons.Length())
	assert.NotContains(t, defaults.Locales, "fr")
}

func TestDisplayConfigMergeEmptyOverride(t *testing.T) {
	defaults := DefaultDisplayConfig()
	merged := defaults.Merge(DisplayOverride{})

	assert.Equal(t, defaults.DisplayLogo, merged.DisplayLogo)
	assert.Equal(t, defaults.ModeBar, merged.ModeBar)
	assert.Equal(t, defaults.HiddenButtons.Length(), merged.HiddenButtons.Length())
}

func TestDisplayConfigJSON(t *testing.T) {
	data, err := json.Marshal(DefaultDisplayConfig())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, false, decoded["displaylogo"])
	assert.Equal(t, true, decoded["displayModeBar"])
	assert.Len(t, decoded["modeBarButtonsToRemove"], len(defaultHiddenButtons))
	assert.Contains(t, decoded, "locales")
}
