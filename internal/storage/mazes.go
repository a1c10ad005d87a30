package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/mazechase/internal/games/mazechase/mazes"
)

// ErrMazeNotFound is returned when no maze has the requested name.
var ErrMazeNotFound = errors.New("storage: maze not found")

const mazeColumns = "id, name, description, design, width, height, difficulty_level, is_active"

// SaveMaze inserts a maze or replaces the stored one with the same name.
// It returns the row ID.
func (s *Store) SaveMaze(d mazes.Definition) (int64, error) {
	_, err := s.db.Exec(
		`INSERT INTO mazes (name, description, design, width, height, difficulty_level, is_active)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			description = excluded.description,
			design = excluded.design,
			width = excluded.width,
			height = excluded.height,
			difficulty_level = excluded.difficulty_level,
			is_active = excluded.is_active,
			updated_at = CURRENT_TIMESTAMP`,
		d.Name, d.Description, d.Design, d.Width, d.Height, d.Difficulty, d.Active,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save maze %q: %w", d.Name, err)
	}

	var id int64
	if err := s.db.QueryRow("SELECT id FROM mazes WHERE name = ?", d.Name).Scan(&id); err != nil {
		return 0, fmt.Errorf("storage: cannot read maze id: %w", err)
	}
	return id, nil
}

// SeedBuiltinMazes inserts the given mazes unless a maze with the same
// name is already stored. It returns how many were inserted.
func (s *Store) SeedBuiltinMazes(defs []mazes.Definition) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin seed: %w", err)
	}
	defer tx.Rollback()

	inserted := 0
	for _, d := range defs {
		res, err := tx.Exec(
			`INSERT OR IGNORE INTO mazes (name, description, design, width, height, difficulty_level, is_active)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			d.Name, d.Description, d.Design, d.Width, d.Height, d.Difficulty, d.Active,
		)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot seed maze %q: %w", d.Name, err)
		}
		if n, _ := res.RowsAffected(); n == 1 {
			inserted++
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit seed: %w", err)
	}
	return inserted, nil
}

// Mazes lists stored mazes ordered by difficulty, then name.
func (s *Store) Mazes() ([]mazes.Definition, error) {
	return s.queryMazes("SELECT " + mazeColumns + " FROM mazes ORDER BY difficulty_level, name")
}

// ActiveMazes lists the mazes that may be picked for play.
func (s *Store) ActiveMazes() ([]mazes.Definition, error) {
	return s.queryMazes("SELECT " + mazeColumns + " FROM mazes WHERE is_active = 1 ORDER BY difficulty_level, name")
}

// MazeByName returns one stored maze.
func (s *Store) MazeByName(name string) (mazes.Definition, error) {
	list, err := s.queryMazes("SELECT "+mazeColumns+" FROM mazes WHERE name = ?", name)
	if err != nil {
		return mazes.Definition{}, err
	}
	if len(list) == 0 {
		return mazes.Definition{}, fmt.Errorf("%w: %q", ErrMazeNotFound, name)
	}
	return list[0], nil
}

// SetMazeActive switches a maze on or off.
func (s *Store) SetMazeActive(name string, active bool) error {
	res, err := s.db.Exec(
		"UPDATE mazes SET is_active = ?, updated_at = CURRENT_TIMESTAMP WHERE name = ?",
		active, name,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update maze %q: %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %q", ErrMazeNotFound, name)
	}
	return nil
}

func (s *Store) queryMazes(query string, args ...any) ([]mazes.Definition, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query mazes: %w", err)
	}
	defer rows.Close()

	var list []mazes.Definition
	for rows.Next() {
		var d mazes.Definition
		var desc sql.NullString
		if err := rows.Scan(&d.ID, &d.Name, &desc, &d.Design, &d.Width, &d.Height, &d.Difficulty, &d.Active); err != nil {
			return nil, fmt.Errorf("storage: cannot scan maze: %w", err)
		}
		d.Description = desc.String
		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return list, nil
}
