package astar_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/navpath/astar"
)

func benchRows(n int) []string {
	rows := make([]string, n)
	for y := range rows {
		row := []byte(strings.Repeat(".", n))
		// a wall every fourth column with a gap alternating top and bottom
		if y != 0 && y != n-1 {
			for x := 3; x < n; x += 4 {
				row[x] = '#'
			}
		}
		rows[y] = string(row)
	}
	return rows
}

func BenchmarkSearch(b *testing.B) {
	for _, n := range []int{16, 32} {
		g := asciiGraph(b, benchRows(n)...)
		goal := fmt.Sprintf("%d,%d", n-1, n-1)
		for _, h := range []struct {
			name string
			fn   astar.Heuristic
		}{{"Manhattan", astar.Manhattan}, {"Zero", astar.Zero}} {
			b.Run(fmt.Sprintf("%s/%dx%d", h.name, n, n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					astar.Search(g, "0,0", goal, astar.WithHeuristic(h.fn, true), astar.WithMaxIterations(n*n))
				}
			})
		}
	}
}
