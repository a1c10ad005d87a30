// Package mazes holds maze definitions as the repository stores them: a
// name, a difficulty tier and a comma separated design in the legacy code
// encoding. It ships the builtin mazes and a level-aware picker that feeds
// them to the engine.
package mazes

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/mazechase/internal/games/mazechase/sim"
)

// Definition is one stored maze.
type Definition struct {
	ID          int64
	Name        string
	Description string
	Design      string
	Width       int
	Height      int
	Difficulty  int
	Active      bool
}

// New builds a definition from a design, inferring its dimensions.
func New(name, description, design string, difficulty int) (Definition, error) {
	rows, err := ParseDesign(design)
	if err != nil {
		return Definition{}, err
	}
	if difficulty < 1 {
		difficulty = 1
	}
	return Definition{
		Name:        name,
		Description: description,
		Design:      FormatDesign(rows),
		Width:       len(rows[0]),
		Height:      len(rows),
		Difficulty:  difficulty,
		Active:      true,
	}, nil
}

// Maze decodes the design into the engine's raw maze shape. Declared
// dimensions of zero are inferred.
func (d Definition) Maze() (sim.Maze, error) {
	rows, err := ParseDesign(d.Design)
	if err != nil {
		return sim.Maze{}, fmt.Errorf("mazes: %q: %w", d.Name, err)
	}
	w, h := d.Width, d.Height
	if w == 0 {
		w = len(rows[0])
	}
	if h == 0 {
		h = len(rows)
	}
	return sim.Maze{Name: d.Name, Width: w, Height: h, Rows: rows}, nil
}

// Validate loads the maze through the engine and checks that it has a pen.
func (d Definition) Validate(policy sim.CodePolicy) error {
	m, err := d.Maze()
	if err != nil {
		return err
	}
	g, err := sim.Load(m, policy)
	if err != nil {
		return err
	}
	if len(g.FindAll(sim.TileGhostSpawn)) == 0 {
		return &sim.NoValidSpawnError{Maze: d.Name, Entity: "pursuer"}
	}
	return nil
}

//go:embed builtin/*.yaml
var builtinFS embed.FS

type mazeFile struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Difficulty  int    `yaml:"difficulty"`
	Design      string `yaml:"design"`
}

// Builtin returns the embedded mazes ordered by file name, with their
// outer rings normalized.
func Builtin() ([]Definition, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("mazes: reading builtin: %w", err)
	}

	var defs []Definition
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		data, err := builtinFS.ReadFile(path.Join("builtin", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("mazes: reading %s: %w", e.Name(), err)
		}
		var f mazeFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("mazes: parsing %s: %w", e.Name(), err)
		}
		rows, err := ParseDesign(f.Design)
		if err != nil {
			return nil, fmt.Errorf("mazes: %s: %w", e.Name(), err)
		}
		d, err := New(f.Name, f.Description, FormatDesign(Normalize(rows)), f.Difficulty)
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return defs, nil
}

// ByName returns the definitions whose name matches, ignoring case.
func ByName(defs []Definition, name string) ([]Definition, error) {
	i := slices.IndexFunc(defs, func(d Definition) bool {
		return strings.EqualFold(d.Name, name)
	})
	if i < 0 {
		return nil, fmt.Errorf("mazes: no maze named %q", name)
	}
	return []Definition{defs[i]}, nil
}
