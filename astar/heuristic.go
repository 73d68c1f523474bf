package astar

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Heuristic estimates the remaining cost between two positions.
// It must be pure and return a non-negative value.
type Heuristic func(from, to mgl64.Vec3) float64

// Manhattan returns the L1 distance over the three axes.
func Manhattan(from, to mgl64.Vec3) float64 {
	d := to.Sub(from)
	return math.Abs(d.X()) + math.Abs(d.Y()) + math.Abs(d.Z())
}

// Euclidean returns the straight-line distance.
func Euclidean(from, to mgl64.Vec3) float64 {
	return to.Sub(from).Len()
}

// Zero always returns 0.
func Zero(_, _ mgl64.Vec3) float64 { return 0 }

// Weighted scales h by w. With w > 1 the result is generally not admissible.
func Weighted(h Heuristic, w float64) Heuristic {
	return func(from, to mgl64.Vec3) float64 {
		return w * h(from, to)
	}
}

// HeuristicByName maps "manhattan", "euclidean" and "zero" (case-insensitive)
// to the corresponding heuristic.
func HeuristicByName(name string) (Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "manhattan", "l1":
		return Manhattan, nil
	case "euclidean", "l2":
		return Euclidean, nil
	case "zero", "none":
		return Zero, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
}
