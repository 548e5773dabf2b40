package config

import (
	"sort"

	"github.com/san-kum/siqnastee/internal/sketch"
)

// Preset names the policy/touch combinations worth keeping around.
type Preset struct {
	Policy sketch.Policy
	Touch  sketch.TouchMode
	About  string
}

var Presets = map[string]Preset{
	"classic": {sketch.RandomUnlessPinned, sketch.TouchRandom, "flicker, random cells pinned black"},
	"paint":   {sketch.RandomUnlessPinned, sketch.TouchCursor, "flicker, cells under the cursor pinned black"},
	"glitch":  {sketch.BlackUntilTouched, sketch.TouchRandom, "dark grid, random cells start flickering"},
	"reveal":  {sketch.BlackUntilTouched, sketch.TouchCursor, "dark grid, the cursor uncovers flicker"},
}

// GetPreset returns a default config with the named preset applied, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	p.Apply(cfg)
	return cfg
}

// Apply overwrites the policy and touch mode of cfg.
func (p Preset) Apply(cfg *Config) {
	cfg.Policy = p.Policy.String()
	cfg.Touch = p.Touch.String()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
