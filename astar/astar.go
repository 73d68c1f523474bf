package astar

import (
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Search finds a route from start to goal in g.
//
// It never returns an error: inspect Result.Status. StatusUnresolved is
// returned (with a warning log) if g is nil or either endpoint is not a node
// of g; StatusExhausted if no route was found within the iteration cap.
//
// Steps:
//  1. Apply options on top of DefaultOptions.
//  2. Validate endpoints.
//  3. Seed the frontier with start (g = 0, f = h(start, goal)).
//  4. Pop / settle / check termination / expand until success or exhaustion.
//  5. On success, rebuild the route from the predecessor links.
//
// Panics with ErrBrokenPredecessorChain if the route cannot be rebuilt.
func Search(g Graph, start, goal string, opts ...Option) Result {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	began := time.Now()
	if g == nil || !g.HasNode(start) || !g.HasNode(goal) {
		cfg.Logger.Warn("astar: endpoint is not a node of the graph",
			slog.String("start", start),
			slog.String("goal", goal),
		)
		res := Result{Status: StatusUnresolved}
		observe(res, time.Since(began))
		return res
	}

	r := newRunner(g, start, goal, cfg)
	res := r.run()
	observe(res, time.Since(began))

	return res
}

// runner holds the state of a single search. It is never shared.
type runner struct {
	g       Graph
	opts    Options
	start   string
	goal    string
	goalPos mgl64.Vec3

	gScore map[string]float64  // best-known cost from start; absent = unreached
	fScore map[string]float64  // gScore + heuristic, set together with gScore
	prev   map[string]string   // predecessor; start has no entry
	open   *frontier           // discovered; may hold stale and closed entries
	closed map[string]struct{} // settled

	iterations int
}

func newRunner(g Graph, start, goal string, opts Options) *runner {
	n := g.Len()
	fScore := make(map[string]float64, n)
	return &runner{
		g:       g,
		opts:    opts,
		start:   start,
		goal:    goal,
		goalPos: g.Position(goal),
		gScore:  make(map[string]float64, n),
		fScore:  fScore,
		prev:    make(map[string]string, n),
		open:    newFrontier(fScore, n),
		closed:  make(map[string]struct{}, n),
	}
}

// run executes the main loop and returns the terminal result.
func (r *runner) run() Result {
	r.gScore[r.start] = 0
	r.fScore[r.start] = r.opts.Heuristic(r.g.Position(r.start), r.goalPos)
	r.open.Push(r.start)

	for r.open.Len() > 0 && r.iterations < r.opts.MaxIterations {
		current := r.open.Pop()
		r.iterations++
		r.closed[current] = struct{}{}
		r.opts.OnSettle(current, r.gScore[current])

		// Early exit: only valid when the heuristic never overestimates.
		if r.opts.Admissible && current == r.goal {
			return r.succeed()
		}
		// Relaxed exit: goal settled and nothing queued can still beat it.
		if r.settled(r.goal) && !r.open.Any(r.cheaperThanGoal) {
			return r.succeed()
		}

		r.expand(current)
	}

	r.opts.Logger.Debug("astar: search exhausted",
		slog.String("start", r.start),
		slog.String("goal", r.goal),
		slog.Int("iterations", r.iterations),
		slog.Bool("capped", r.open.Len() > 0),
	)

	return Result{
		Status:     StatusExhausted,
		Iterations: r.iterations,
		Settled:    len(r.closed),
	}
}

// expand (re)discovers every unsettled neighbor of current. A node popped a
// second time through a stale entry is expanded again.
//
// Scores and predecessor are overwritten on every rediscovery, without
// comparing against the previously recorded cost.
func (r *runner) expand(current string) {
	base := r.gScore[current]
	for _, n := range r.g.Neighbors(current) {
		if r.settled(n) {
			continue
		}
		tentative := base + r.opts.EdgeCost(current, n)
		f := tentative + r.opts.Heuristic(r.g.Position(n), r.goalPos)

		r.gScore[n] = tentative
		r.fScore[n] = f
		r.prev[n] = current
		r.open.Push(n)
		r.opts.OnDiscover(n, tentative, f)
	}
}

func (r *runner) settled(id string) bool {
	_, ok := r.closed[id]
	return ok
}

func (r *runner) cheaperThanGoal(id string) bool {
	return r.gScore[id] < r.gScore[r.goal]
}

func (r *runner) succeed() Result {
	return Result{
		Route:      reconstruct(r.prev, r.start, r.goal, r.g.Len()),
		Status:     StatusSucceeded,
		Cost:       r.gScore[r.goal],
		Iterations: r.iterations,
		Settled:    len(r.closed),
	}
}
