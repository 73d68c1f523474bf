package astar

import (
	"errors"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
)

// Sentinel errors.
var (
	// ErrBrokenPredecessorChain indicates that route reconstruction could not
	// walk back from the goal to the start. Search panics with it.
	ErrBrokenPredecessorChain = errors.New("astar: predecessor chain does not reach start")

	// ErrBadMaxIterations indicates a non-positive iteration cap.
	ErrBadMaxIterations = errors.New("astar: MaxIterations must be positive")

	// ErrUnknownHeuristic indicates an unrecognised heuristic name.
	ErrUnknownHeuristic = errors.New("astar: unknown heuristic")
)

// DefaultMaxIterations caps the number of frontier pops per search.
const DefaultMaxIterations = 1000

// Graph is the read-only view of a connectivity graph the search needs.
// *navgraph.Graph satisfies it.
//
// Neighbors may panic for IDs that are not in the graph; Search only asks
// for IDs it obtained from the graph itself.
type Graph interface {
	HasNode(id string) bool
	Neighbors(id string) []string
	Position(id string) mgl64.Vec3
	Len() int
}

// Status is the outcome of a search.
type Status int

const (
	// StatusRunning is the state of a search that has not terminated.
	StatusRunning Status = iota
	// StatusSucceeded means Route holds a start→goal route.
	StatusSucceeded
	// StatusExhausted means the frontier emptied or the iteration cap was hit.
	StatusExhausted
	// StatusUnresolved means an endpoint could not be mapped onto a node.
	StatusUnresolved
)

// String returns the lower-case status name used in logs and metric labels.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusSucceeded:
		return "succeeded"
	case StatusExhausted:
		return "exhausted"
	case StatusUnresolved:
		return "unresolved"
	default:
		return "unknown"
	}
}

// Result is what a search hands back.
//
// Route is ordered start→goal and empty unless Status == StatusSucceeded.
// Cost is the goal's g-score on success. Iterations counts frontier pops,
// repeat pops of a closed node included. Settled is the number of distinct
// closed nodes.
type Result struct {
	Route      []string
	Status     Status
	Cost       float64
	Iterations int
	Settled    int
}

// Found reports whether the result carries a route.
func (r Result) Found() bool { return r.Status == StatusSucceeded }

// EdgeCost returns the traversal cost of the edge from → to.
// Costs must be non-negative.
type EdgeCost func(from, to string) float64

// UnitCost charges 1 for every edge.
func UnitCost(_, _ string) float64 { return 1 }

// DistanceCost charges the straight-line distance between node positions.
func DistanceCost(g Graph) EdgeCost {
	return func(from, to string) float64 {
		return g.Position(to).Sub(g.Position(from)).Len()
	}
}

// Options configures a search.
//
// Heuristic     – remaining-cost estimate between positions (default Manhattan).
// Admissible    – whether Heuristic never overestimates; selects the termination rule.
// MaxIterations – cap on frontier pops (default DefaultMaxIterations).
// EdgeCost      – cost of a single edge (default UnitCost).
// OnDiscover    – called whenever a node is (re)inserted into the frontier.
// OnSettle      – called on every pop, repeat pops of a closed node included.
// Logger        – receives warning and debug records (default slog.Default()).
type Options struct {
	Heuristic     Heuristic
	Admissible    bool
	MaxIterations int
	EdgeCost      EdgeCost
	OnDiscover    func(id string, g, f float64)
	OnSettle      func(id string, g float64)
	Logger        *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the reference configuration: Manhattan heuristic
// treated as admissible, unit edge costs, a cap of DefaultMaxIterations pops
// and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Heuristic:     Manhattan,
		Admissible:    true,
		MaxIterations: DefaultMaxIterations,
		EdgeCost:      UnitCost,
		OnDiscover:    func(string, float64, float64) {},
		OnSettle:      func(string, float64) {},
		Logger:        slog.Default(),
	}
}

// WithHeuristic sets the heuristic and whether it is admissible.
// A nil heuristic means Zero.
func WithHeuristic(h Heuristic, admissible bool) Option {
	return func(o *Options) {
		if h == nil {
			h = Zero
		}
		o.Heuristic = h
		o.Admissible = admissible
	}
}

// WithMaxIterations sets the cap on frontier pops.
// Panics with ErrBadMaxIterations if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(ErrBadMaxIterations.Error())
	}
	return func(o *Options) { o.MaxIterations = n }
}

// WithEdgeCost replaces the unit edge cost. A nil fn restores UnitCost.
func WithEdgeCost(fn EdgeCost) Option {
	return func(o *Options) {
		if fn == nil {
			fn = UnitCost
		}
		o.EdgeCost = fn
	}
}

// WithOnDiscover registers a frontier insertion hook.
func WithOnDiscover(fn func(id string, g, f float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnSettle registers a closed-set hook.
func WithOnSettle(fn func(id string, g float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
