package main

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/mazes"
	"github.com/vovakirdan/mazechase/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestMazeRotation(t *testing.T) {
	store := openTestStore(t)
	d, err := mazes.New("Box", "", "1,1,1,1,1\n1,0,1,0,1\n1,1,3,1,1\n1,0,1,0,1\n1,1,1,1,1", 1)
	if err != nil {
		t.Fatalf("mazes.New() failed: %v", err)
	}
	if _, err := store.SaveMaze(d); err != nil {
		t.Fatalf("SaveMaze() failed: %v", err)
	}
	if err := store.SetMazeActive("Box", false); err != nil {
		t.Fatalf("SetMazeActive() failed: %v", err)
	}

	tests := []struct {
		name     string
		store    *storage.Store
		maze     string
		expected []string
		wantErr  bool
	}{
		{name: "no store", expected: nil},
		{name: "no active mazes", store: store, expected: nil},
		{name: "inactive stored maze", store: store, maze: "Box", expected: []string{"Box"}},
		{name: "built-in by name", store: store, maze: "demo maze 2", expected: []string{"Demo Maze 2"}},
		{name: "built-in without store", maze: "Demo Maze 3", expected: []string{"Demo Maze 3"}},
		{name: "unknown", store: store, maze: "Nowhere", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defs, err := mazeRotation(tc.store, tc.maze)
			if tc.wantErr {
				if err == nil {
					t.Errorf("mazeRotation(%q) error = nil, expected an error", tc.maze)
				}
				return
			}
			if err != nil {
				t.Fatalf("mazeRotation(%q) failed: %v", tc.maze, err)
			}
			if len(defs) != len(tc.expected) {
				t.Fatalf("mazeRotation(%q) = %d mazes, expected %d", tc.maze, len(defs), len(tc.expected))
			}
			for i, name := range tc.expected {
				if defs[i].Name != name {
					t.Errorf("defs[%d].Name = %q, expected %q", i, defs[i].Name, name)
				}
			}
		})
	}
}

func TestGameSetup(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	easy := mazechase.New()
	gameSetup(nil, config.DifficultyEasy)(easy, nil)
	easy.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	hard := mazechase.NewHard()
	gameSetup(nil, config.DifficultyEasy)(hard, nil)
	hard.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	if got := easy.State().Lives; got != 5 {
		t.Errorf("easy Lives = %d, expected 5", got)
	}
	if got := hard.State().Lives; got != 2 {
		t.Errorf("hard Lives = %d, expected 2", got)
	}
}
