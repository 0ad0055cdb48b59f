package config

var Presets = map[string]*Config{
	// Pokitto handheld: 220x176 display at 30 fps.
	"pokitto": {
		Display: DisplayConfig{Width: 220, Height: 176},
		FPS:     30,
		Stats:   true,
	},
	"gravity": {
		Display: DisplayConfig{Width: 220, Height: 176},
		FPS:     30,
		Gravity: GravityConfig{Enabled: true},
		Stats:   true,
	},
	"fountain": {
		Display: DisplayConfig{Width: 220, Height: 176},
		FPS:     30,
		Gravity: GravityConfig{Enabled: true, Inverted: true},
		Stats:   true,
	},
	"wide": {
		Display: DisplayConfig{Width: 320, Height: 120},
		FPS:     60,
		Stats:   false,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
