package pathfinder

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/navpath/astar"
)

// Sentinel errors reported by option constructors (as panics).
var (
	// ErrBadTolerance indicates a non-positive resolution tolerance.
	ErrBadTolerance = errors.New("pathfinder: tolerance must be positive")

	// ErrBadConcurrency indicates a non-positive batch concurrency limit.
	ErrBadConcurrency = errors.New("pathfinder: max concurrency must be positive")
)

// Marker is a caller-side reference to a location.
//
// A non-empty ID that names a node of the graph wins; otherwise, if
// HasPosition is set, Position is resolved to the nearest node within the
// tolerance.
type Marker struct {
	ID          string
	Position    mgl64.Vec3
	HasPosition bool
}

// AtNode returns a Marker that refers to a node by ID only.
func AtNode(id string) Marker { return Marker{ID: id} }

// AtPosition returns a Marker that refers to a world position only.
func AtPosition(p mgl64.Vec3) Marker { return Marker{Position: p, HasPosition: true} }

// AtNodeOrPosition returns a Marker that tries id first and falls back to p.
func AtNodeOrPosition(id string, p mgl64.Vec3) Marker {
	return Marker{ID: id, Position: p, HasPosition: true}
}

// String renders the marker for logs.
func (m Marker) String() string {
	switch {
	case m.HasPosition && m.ID != "":
		return fmt.Sprintf("%s@(%g, %g, %g)", m.ID, m.Position.X(), m.Position.Y(), m.Position.Z())
	case m.HasPosition:
		return fmt.Sprintf("(%g, %g, %g)", m.Position.X(), m.Position.Y(), m.Position.Z())
	default:
		return m.ID
	}
}

// Request is one query of a batch.
type Request struct {
	Start, Goal Marker
}

// Options configures a Pathfinder.
//
// Heuristic/Admissible are passed to every search (default Manhattan, admissible).
// Tolerance 0 means "use the graph's cell size".
// MaxConcurrency bounds RouteBatch workers (default GOMAXPROCS).
// Search holds extra options appended after the ones derived above.
type Options struct {
	Heuristic      astar.Heuristic
	Admissible     bool
	MaxIterations  int
	Tolerance      float64
	MaxConcurrency int
	Logger         *slog.Logger
	Search         []astar.Option
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Heuristic:      astar.Manhattan,
		Admissible:     true,
		MaxIterations:  astar.DefaultMaxIterations,
		MaxConcurrency: runtime.GOMAXPROCS(0),
		Logger:         slog.Default(),
	}
}

// WithHeuristic sets the search heuristic and whether it is admissible.
// A nil heuristic means astar.Zero.
func WithHeuristic(h astar.Heuristic, admissible bool) Option {
	return func(o *Options) {
		if h == nil {
			h = astar.Zero
		}
		o.Heuristic = h
		o.Admissible = admissible
	}
}

// WithMaxIterations sets the per-search iteration cap.
// Panics with astar.ErrBadMaxIterations if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(astar.ErrBadMaxIterations.Error())
	}
	return func(o *Options) { o.MaxIterations = n }
}

// WithTolerance overrides the nearest-node tolerance.
// Panics with ErrBadTolerance if tol <= 0.
func WithTolerance(tol float64) Option {
	if tol <= 0 {
		panic(ErrBadTolerance.Error())
	}
	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxConcurrency bounds the number of concurrent searches in RouteBatch.
// Panics with ErrBadConcurrency if n <= 0.
func WithMaxConcurrency(n int) Option {
	if n <= 0 {
		panic(ErrBadConcurrency.Error())
	}
	return func(o *Options) { o.MaxConcurrency = n }
}

// WithLogger sets the logger used for lookup warnings and passed to searches.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSearchOptions appends raw astar options (hooks, edge costs) to every search.
func WithSearchOptions(opts ...astar.Option) Option {
	return func(o *Options) { o.Search = append(o.Search, opts...) }
}
