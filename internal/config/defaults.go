package config

import (
	_ "embed"

	"github.com/vovakirdan/mazechase/internal/games/mazechase/sim"
)

//go:embed defaults/mazechase.yaml
var defaultMazeChaseYAML []byte

// DefaultMazeChaseConfig returns the default configuration. It matches
// defaults/mazechase.yaml and is used when the embedded file cannot be read.
func DefaultMazeChaseConfig() MazeChaseConfig {
	e := sim.DefaultConfig()

	pursuers := make([]PursuerConfig, len(e.Identities))
	for i, id := range e.Identities {
		pursuers[i] = PursuerConfig{Name: id.Name, Color: id.Color, Points: id.Points}
	}

	return MazeChaseConfig{
		Tiles: TilesConfig{
			Size:         e.TileSize,
			UnknownCodes: "strict",
		},
		Speed: SpeedConfig{
			Player:  e.PlayerSpeed,
			Powered: e.PoweredSpeed,
			Pursuer: e.PursuerSpeed,
		},
		Scoring: ScoringConfig{
			Dot:         e.DotPoints,
			SuperDot:    e.SuperDotPoints,
			Pursuer:     e.PursuerPoints,
			BonusTable:  e.BonusTable,
			BonusLabels: e.BonusLabels,
		},
		Gameplay: GameplayConfig{
			Lives:            e.Lives,
			MaxPursuers:      e.MaxPursuers,
			BonusCount:       e.BonusCount,
			BonusMinDistance: e.BonusMinDistance,
			ScatterDistance:  e.ScatterDistance,
			ScatterTries:     e.ScatterTries,
		},
		Timers: TimersConfig{
			Empower:           e.EmpowerTicks,
			PenTimeout:        e.PenTimeoutTicks,
			SpawnInterval:     e.SpawnIntervalTicks,
			CollisionCooldown: e.CollisionCooldownTicks,
			PortalCooldown:    e.PortalCooldownTicks,
			DeathThrottle:     e.DeathThrottleTicks,
			DeathMessage:      e.DeathMessageTicks,
			BonusAnim:         e.BonusAnimTicks,
			Mouth:             e.MouthTicks,
		},
		Pursuers: pursuers,
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.5,
				SpawnReduction:   120,
				EmpowerReduction: 180,
				ExtraPursuers:    3,
			},
		},
	}
}
