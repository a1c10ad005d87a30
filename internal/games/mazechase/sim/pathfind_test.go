package sim

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/zyedidia/generic/heap"
)

func TestAStarMatchesBFS(t *testing.T) {
	g := mustLoad(t, testMaze())
	targets := newTerrain(g, rand.New(rand.NewSource(1))).targets
	if len(targets) < 20 {
		t.Fatalf("only %d targets in test maze", len(targets))
	}

	for i := 0; i < len(targets); i += 7 {
		for j := 3; j < len(targets); j += 11 {
			from, to := targets[i], targets[j]
			a := AStar(g, from, to, roamRule)
			b := BFS(g, from, to, roamRule)
			if len(a) != len(b) {
				t.Errorf("AStar(%v, %v) len = %d, BFS len = %d", from, to, len(a), len(b))
				continue
			}
			if a == nil {
				continue
			}
			if a[0] != from || a[len(a)-1] != to {
				t.Errorf("AStar(%v, %v) endpoints = %v..%v", from, to, a[0], a[len(a)-1])
			}
			for k := 1; k < len(a); k++ {
				if a[k-1].Manhattan(a[k]) != 1 {
					t.Errorf("AStar(%v, %v) step %d not adjacent: %v -> %v", from, to, k, a[k-1], a[k])
				}
			}
		}
	}
}

func TestPlanPathFailures(t *testing.T) {
	g := mustLoad(t, testMaze())

	tests := []struct {
		name     string
		from, to Coord
	}{
		{name: "into a wall", from: C(2, 2), to: C(0, 0)},
		{name: "same tile", from: C(2, 2), to: C(2, 2)},
		{name: "interior wall", from: C(2, 2), to: C(1, 1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path, err := PlanPath(g, tc.from, tc.to, roamRule)
			if path != nil {
				t.Errorf("PlanPath() path = %v, expected nil", path)
			}
			if !errors.Is(err, ErrNoPath) {
				t.Errorf("PlanPath() error = %v, expected ErrNoPath", err)
			}
		})
	}
}

func TestPlanPathThroughDoor(t *testing.T) {
	g := mustLoad(t, testMaze())
	path, err := PlanPath(g, C(10, 11), C(10, 9), roamRule)
	if err != nil {
		t.Fatalf("PlanPath() error = %v", err)
	}
	expected := []Coord{C(10, 11), C(10, 10), C(10, 9)}
	if len(path) != len(expected) {
		t.Fatalf("PlanPath() = %v, expected %v", path, expected)
	}
	for i := range expected {
		if path[i] != expected[i] {
			t.Errorf("path[%d] = %v, expected %v", i, path[i], expected[i])
		}
	}
}

func TestOpenSetOrder(t *testing.T) {
	open := heap.New[*openNode](lessOpen)
	nodes := []*openNode{
		{at: C(1, 1), f: 6, h: 2, seq: 1},
		{at: C(2, 1), f: 4, h: 3, seq: 2},
		{at: C(3, 1), f: 4, h: 1, seq: 3},
		{at: C(4, 1), f: 4, h: 1, seq: 4},
		{at: C(5, 1), f: 5, h: 0, seq: 5},
	}
	for _, n := range nodes {
		open.Push(n)
	}

	expected := []Coord{C(3, 1), C(4, 1), C(2, 1), C(5, 1), C(1, 1)}
	for i, want := range expected {
		got, ok := open.Pop()
		if !ok {
			t.Fatalf("Pop() %d reported empty", i)
		}
		if got.at != want {
			t.Errorf("Pop() %d = %v, expected %v", i, got.at, want)
		}
	}
	if open.Size() != 0 {
		t.Errorf("Size() = %d after draining, expected 0", open.Size())
	}
}
