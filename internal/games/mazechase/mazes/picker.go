package mazes

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/vovakirdan/mazechase/internal/games/mazechase/sim"
)

// ErrNoMazes is returned when a picker has nothing active to choose from.
var ErrNoMazes = errors.New("mazes: no active mazes")

// Picker chooses the maze for each level. Level n draws from the active
// mazes of the highest difficulty tier not above n; below the lowest tier
// it uses the lowest. Ties within a tier are broken by a seeded source, so
// a session seed fixes the whole level sequence.
type Picker struct {
	defs []Definition
	rng  *rand.Rand
}

// NewPicker keeps the active definitions and validates that at least one
// remains.
func NewPicker(defs []Definition, seed int64) (*Picker, error) {
	var active []Definition
	for _, d := range defs {
		if d.Active {
			active = append(active, d)
		}
	}
	if len(active) == 0 {
		return nil, ErrNoMazes
	}
	slices.SortStableFunc(active, func(a, b Definition) int {
		return a.Difficulty - b.Difficulty
	})
	return &Picker{defs: active, rng: rand.New(rand.NewSource(seed))}, nil
}

// Maze implements sim.MazeSource.
func (p *Picker) Maze(level int) (sim.Maze, error) {
	tier := p.defs[0].Difficulty
	for _, d := range p.defs {
		if d.Difficulty <= level {
			tier = d.Difficulty
		}
	}

	var pool []Definition
	for _, d := range p.defs {
		if d.Difficulty == tier {
			pool = append(pool, d)
		}
	}
	d := pool[0]
	if len(pool) > 1 {
		d = pool[p.rng.Intn(len(pool))]
	}
	m, err := d.Maze()
	if err != nil {
		return m, fmt.Errorf("mazes: level %d: %w", level, err)
	}
	return m, nil
}

// Len returns how many mazes the picker draws from.
func (p *Picker) Len() int { return len(p.defs) }
