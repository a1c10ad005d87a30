package sim

import (
	"errors"
	"fmt"
)

// ErrNoPath is matched by every NoPathError via errors.Is.
var ErrNoPath = errors.New("sim: no path")

// InvalidMapError reports a maze whose data cannot be loaded.
// Row and Col are raw (unbordered) indices and are -1 when not applicable.
type InvalidMapError struct {
	Maze   string
	Reason string
	Row    int
	Col    int
	Code   int
}

func (e *InvalidMapError) Error() string {
	if e.Row >= 0 && e.Col >= 0 {
		return fmt.Sprintf("sim: invalid maze %q: %s at row %d col %d (code %d)", e.Maze, e.Reason, e.Row, e.Col, e.Code)
	}
	if e.Row >= 0 {
		return fmt.Sprintf("sim: invalid maze %q: %s at row %d", e.Maze, e.Reason, e.Row)
	}
	return fmt.Sprintf("sim: invalid maze %q: %s", e.Maze, e.Reason)
}

// NoPathError is returned by path planning when no usable route exists.
// It is always recovered by the pursuer logic.
type NoPathError struct {
	From Coord
	To   Coord
}

func (e *NoPathError) Error() string {
	return fmt.Sprintf("sim: no path from %s to %s", e.From, e.To)
}

// Is makes errors.Is(err, ErrNoPath) true.
func (e *NoPathError) Is(target error) bool {
	return target == ErrNoPath
}

// NoValidSpawnError is returned when a maze has no legal tile to place an entity.
type NoValidSpawnError struct {
	Maze   string
	Entity string
}

func (e *NoValidSpawnError) Error() string {
	return fmt.Sprintf("sim: maze %q has no valid %s spawn tile", e.Maze, e.Entity)
}

// ConfigError reports an unusable engine configuration value.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("sim: invalid config %s: %s", e.Field, e.Reason)
}
