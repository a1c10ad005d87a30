// Package config provides YAML-based engine configuration loading and
// per-level difficulty scaling for mazechase.
package config

import (
	"fmt"

	"github.com/vovakirdan/mazechase/internal/games/mazechase/sim"
)

// MazeChaseConfig contains all configuration for the maze chase engine.
type MazeChaseConfig struct {
	Tiles      TilesConfig      `yaml:"tiles"`
	Speed      SpeedConfig      `yaml:"speed"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Timers     TimersConfig     `yaml:"timers"`
	Pursuers   []PursuerConfig  `yaml:"pursuers"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TilesConfig defines the tile geometry and maze decoding.
type TilesConfig struct {
	Size         float64 `yaml:"size"`          // pixels per tile
	UnknownCodes string  `yaml:"unknown_codes"` // "strict" or "lenient"
}

// SpeedConfig defines movement speeds in pixels per tick.
type SpeedConfig struct {
	Player  float64 `yaml:"player"`
	Powered float64 `yaml:"powered"`
	Pursuer float64 `yaml:"pursuer"`
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	Dot         int      `yaml:"dot"`
	SuperDot    int      `yaml:"super_dot"`
	Pursuer     int      `yaml:"pursuer"`
	BonusTable  []int    `yaml:"bonus_table"`
	BonusLabels []string `yaml:"bonus_labels"`
}

// GameplayConfig defines counts and distances.
type GameplayConfig struct {
	Lives            int `yaml:"lives"`
	MaxPursuers      int `yaml:"max_pursuers"`
	BonusCount       int `yaml:"bonus_count"`
	BonusMinDistance int `yaml:"bonus_min_distance"`
	ScatterDistance  int `yaml:"scatter_distance"`
	ScatterTries     int `yaml:"scatter_tries"`
}

// TimersConfig defines durations in ticks.
type TimersConfig struct {
	Empower           int `yaml:"empower"`
	PenTimeout        int `yaml:"pen_timeout"`
	SpawnInterval     int `yaml:"spawn_interval"`
	CollisionCooldown int `yaml:"collision_cooldown"`
	PortalCooldown    int `yaml:"portal_cooldown"`
	DeathThrottle     int `yaml:"death_throttle"`
	DeathMessage      int `yaml:"death_message"`
	BonusAnim         int `yaml:"bonus_anim"`
	Mouth             int `yaml:"mouth"`
}

// PursuerConfig defines one pursuer identity.
type PursuerConfig struct {
	Name   string `yaml:"name"`
	Color  string `yaml:"color"`
	Points int    `yaml:"points,omitempty"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases across levels.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at max difficulty.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // added to the pursuer speed factor
	SpawnReduction   int     `yaml:"spawn_reduction"`   // ticks taken off the spawn interval
	EmpowerReduction int     `yaml:"empower_reduction"` // ticks taken off empowerment
	ExtraPursuers    int     `yaml:"extra_pursuers"`
}

// Engine converts the YAML shape into engine tuning. Zero values keep the
// engine default for that field.
func (c MazeChaseConfig) Engine() sim.Config {
	e := sim.DefaultConfig()

	setF := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	setI := func(dst *int, v int) {
		if v != 0 {
			*dst = v
		}
	}

	setF(&e.TileSize, c.Tiles.Size)
	if c.Tiles.UnknownCodes != "" {
		e.Codes = sim.ParseCodePolicy(c.Tiles.UnknownCodes)
	}

	setF(&e.PlayerSpeed, c.Speed.Player)
	setF(&e.PoweredSpeed, c.Speed.Powered)
	setF(&e.PursuerSpeed, c.Speed.Pursuer)

	setI(&e.DotPoints, c.Scoring.Dot)
	setI(&e.SuperDotPoints, c.Scoring.SuperDot)
	setI(&e.PursuerPoints, c.Scoring.Pursuer)
	if len(c.Scoring.BonusTable) > 0 {
		e.BonusTable = append([]int(nil), c.Scoring.BonusTable...)
	}
	if len(c.Scoring.BonusLabels) > 0 {
		e.BonusLabels = append([]string(nil), c.Scoring.BonusLabels...)
	}

	setI(&e.Lives, c.Gameplay.Lives)
	setI(&e.MaxPursuers, c.Gameplay.MaxPursuers)
	setI(&e.BonusCount, c.Gameplay.BonusCount)
	setI(&e.BonusMinDistance, c.Gameplay.BonusMinDistance)
	setI(&e.ScatterDistance, c.Gameplay.ScatterDistance)
	setI(&e.ScatterTries, c.Gameplay.ScatterTries)

	setI(&e.EmpowerTicks, c.Timers.Empower)
	setI(&e.PenTimeoutTicks, c.Timers.PenTimeout)
	setI(&e.SpawnIntervalTicks, c.Timers.SpawnInterval)
	setI(&e.CollisionCooldownTicks, c.Timers.CollisionCooldown)
	setI(&e.PortalCooldownTicks, c.Timers.PortalCooldown)
	setI(&e.DeathThrottleTicks, c.Timers.DeathThrottle)
	setI(&e.DeathMessageTicks, c.Timers.DeathMessage)
	setI(&e.BonusAnimTicks, c.Timers.BonusAnim)
	setI(&e.MouthTicks, c.Timers.Mouth)

	if len(c.Pursuers) > 0 {
		e.Identities = make([]sim.Identity, len(c.Pursuers))
		for i, p := range c.Pursuers {
			e.Identities[i] = sim.Identity{Name: p.Name, Color: p.Color, Points: p.Points}
		}
	}
	return e
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
