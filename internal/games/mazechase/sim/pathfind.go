package sim

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/queue"
)

// AStar returns a shortest 4-connected path from from to to, both inclusive,
// over tiles permitted by rule. It returns nil when to is unreachable.
func AStar(g *Grid, from, to Coord, rule WalkRule) []Coord {
	if from == to {
		return []Coord{from}
	}
	open := heap.New[*openNode](lessOpen)
	cost := map[Coord]int{from: 0}
	parent := make(map[Coord]Coord)
	closed := make(map[Coord]bool)
	seq := 0
	open.Push(&openNode{at: from, f: from.Manhattan(to), h: from.Manhattan(to)})

	for open.Size() > 0 {
		cur, _ := open.Pop()
		if closed[cur.at] {
			continue
		}
		if cur.at == to {
			return walkBack(parent, from, to)
		}
		closed[cur.at] = true

		for _, d := range Dirs {
			next := cur.at.Step(d)
			if closed[next] || !rule(g, cur.at, next) {
				continue
			}
			ng := cost[cur.at] + 1
			if old, ok := cost[next]; ok && ng >= old {
				continue
			}
			cost[next] = ng
			parent[next] = cur.at
			seq++
			h := next.Manhattan(to)
			open.Push(&openNode{at: next, f: ng + h, h: h, seq: seq})
		}
	}
	return nil
}

// BFS returns a shortest path like AStar using an uninformed search.
func BFS(g *Grid, from, to Coord, rule WalkRule) []Coord {
	if from == to {
		return []Coord{from}
	}
	parent := make(map[Coord]Coord)
	seen := map[Coord]bool{from: true}
	frontier := queue.New[Coord]()
	frontier.Enqueue(from)
	for !frontier.Empty() {
		cur := frontier.Dequeue()
		for _, d := range Dirs {
			next := cur.Step(d)
			if seen[next] || !rule(g, cur, next) {
				continue
			}
			seen[next] = true
			parent[next] = cur
			if next == to {
				return walkBack(parent, from, to)
			}
			frontier.Enqueue(next)
		}
	}
	return nil
}

// PlanPath resolves a route with A*, falling back to BFS when A* yields
// nothing. A route shorter than two tiles is reported as a NoPathError.
func PlanPath(g *Grid, from, to Coord, rule WalkRule) ([]Coord, error) {
	path := AStar(g, from, to, rule)
	if path == nil {
		path = BFS(g, from, to, rule)
	}
	if len(path) < 2 {
		return nil, &NoPathError{From: from, To: to}
	}
	return path, nil
}

func walkBack(parent map[Coord]Coord, from, to Coord) []Coord {
	path := []Coord{to}
	for at := to; at != from; {
		at = parent[at]
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type openNode struct {
	at  Coord
	f   int
	h   int
	seq int
}

// lessOpen orders the open set on f, then h, then insertion order.
func lessOpen(a, b *openNode) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}
