package config

import (
	"math"

	"github.com/vovakirdan/mazechase/internal/games/mazechase/sim"
)

// Floors keep scaled levels playable.
const (
	minSpawnInterval = 30
	minEmpowerTicks  = 60
)

// LevelScaler derives per-level engine tuning from a difficulty config.
type LevelScaler struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewLevelScaler creates a scaler.
func NewLevelScaler(cfg DifficultyConfig) *LevelScaler {
	return &LevelScaler{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (s *LevelScaler) IsEnabled() bool {
	return s.cfg.Enabled && s.cfg.Progression.Type != "none"
}

// Intensity returns the difficulty (0.0 to 1.0) for a 1-based level.
// It rises linearly from the initial level at level 1 to 1.0 at MaxAt.
func (s *LevelScaler) Intensity(level int) float64 {
	if !s.IsEnabled() || s.cfg.Progression.Type != "level" {
		return s.initialLevel
	}

	span := float64(s.cfg.Progression.MaxAt - 1)
	if span <= 0 {
		span = 1
	}
	progress := clampF(float64(level-1)/span, 0.0, 1.0)
	return s.initialLevel + progress*(1.0-s.initialLevel)
}

// Tune returns base adjusted for level. Its signature matches
// sim.WithLevelTuning.
func (s *LevelScaler) Tune(level int, base sim.Config) sim.Config {
	i := s.Intensity(level)
	if i == 0 {
		return base
	}
	sc := s.cfg.Scaling
	out := base

	out.PursuerSpeed = math.Min(base.TileSize, base.PursuerSpeed*(1.0+i*sc.SpeedMultiplier))
	out.SpawnIntervalTicks = max(min(minSpawnInterval, base.SpawnIntervalTicks), base.SpawnIntervalTicks-int(i*float64(sc.SpawnReduction)))
	out.EmpowerTicks = max(min(minEmpowerTicks, base.EmpowerTicks), base.EmpowerTicks-int(i*float64(sc.EmpowerReduction)))
	out.MaxPursuers = base.MaxPursuers + int(i*float64(sc.ExtraPursuers))
	return out
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
