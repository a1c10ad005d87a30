package mazes

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/mazechase/internal/games/mazechase/sim"
)

// ErrEmptyDesign is returned for a design with no rows.
var ErrEmptyDesign = errors.New("mazes: empty design")

// ParseDesign decodes a design: one maze row per line, codes separated by
// commas. Every row must have as many codes as the first one.
func ParseDesign(design string) ([][]int, error) {
	r := csv.NewReader(strings.NewReader(strings.TrimSpace(design)))
	r.TrimLeadingSpace = true
	r.ReuseRecord = true

	var rows [][]int
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("mazes: parse design: %w", err)
		}
		row := make([]int, len(rec))
		for c, field := range rec {
			code, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("mazes: row %d col %d: %q is not a tile code", len(rows), c, field)
			}
			row[c] = code
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyDesign
	}
	return rows, nil
}

// FormatDesign is the inverse of ParseDesign.
func FormatDesign(rows [][]int) string {
	var b strings.Builder
	for r, row := range rows {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, code := range row {
			if c > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(code))
		}
	}
	return b.String()
}

// Normalize returns a copy of rows with the outer ring cleaned up: portals
// in the four corners become plain paths, then path cells on the edge with
// at most one open neighbour are walled off until none remain.
func Normalize(rows [][]int) [][]int {
	out := make([][]int, len(rows))
	for i, row := range rows {
		out[i] = append([]int(nil), row...)
	}
	h := len(out)
	if h == 0 || len(out[0]) == 0 {
		return out
	}
	w := len(out[0])

	for _, c := range [][2]int{{0, 0}, {0, w - 1}, {h - 1, 0}, {h - 1, w - 1}} {
		if out[c[0]][c[1]] == sim.CodePortal {
			out[c[0]][c[1]] = sim.CodeEmpty
		}
	}

	isPath := func(code int) bool { return code == sim.CodeEmpty || code == sim.CodeSuperDot }
	isOpen := func(code int) bool { return code != sim.CodeWall }
	deadEnd := func(r, c int) bool {
		if !isPath(out[r][c]) {
			return false
		}
		open := 0
		for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			nr, nc := r+d[0], c+d[1]
			if nr >= 0 && nr < h && nc >= 0 && nc < w && isOpen(out[nr][nc]) {
				open++
			}
		}
		return open <= 1
	}

	for changed := true; changed; {
		changed = false
		for _, r := range []int{0, h - 1} {
			for c := 0; c < w; c++ {
				if deadEnd(r, c) {
					out[r][c] = sim.CodeWall
					changed = true
				}
			}
		}
		for _, c := range []int{0, w - 1} {
			for r := 0; r < h; r++ {
				if deadEnd(r, c) {
					out[r][c] = sim.CodeWall
					changed = true
				}
			}
		}
	}
	return out
}
