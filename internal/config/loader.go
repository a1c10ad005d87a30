package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "mazechase.yaml"

// LoadMazeChase loads the engine configuration.
// Search order: customPath -> ~/.mazechase/configs/mazechase.yaml ->
// ./configs/mazechase.yaml -> embedded default.
func LoadMazeChase(customPath string) (MazeChaseConfig, error) {
	var cfg MazeChaseConfig

	// An explicit path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, p := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		var found MazeChaseConfig
		if err := yaml.Unmarshal(data, &found); err == nil {
			return found, nil
		}
	}

	if err := yaml.Unmarshal(defaultMazeChaseYAML, &cfg); err != nil {
		return DefaultMazeChaseConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mazechase", "configs", filename)
}

// ApplyMazeChasePreset modifies the config based on a difficulty preset.
// The empty preset leaves it untouched.
func ApplyMazeChasePreset(cfg *MazeChaseConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Lives and pack size follow the preset
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.MaxPursuers = 4
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.MaxPursuers = 8
		cfg.Timers.Empower = 200
	}
}
