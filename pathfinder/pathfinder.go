package pathfinder

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/navpath/astar"
	"github.com/katalvlaran/navpath/navgraph"
)

// Pathfinder resolves markers against a graph snapshot and searches routes.
// It is safe for concurrent use.
type Pathfinder struct {
	opts Options

	mu         sync.RWMutex // guards graph, index and generation
	graph      *navgraph.Graph
	index      *spatialIndex
	generation uint64

	flight singleflight.Group
}

// snapshot is the state one query runs against.
type snapshot struct {
	graph      *navgraph.Graph
	index      *spatialIndex
	generation uint64
}

// New creates a Pathfinder over g. g may be nil; every query is then
// unresolved until RebuildIndex supplies a graph.
func New(g *navgraph.Graph, opts ...Option) *Pathfinder {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	p := &Pathfinder{opts: cfg}
	p.RebuildIndex(g)

	return p
}

// RebuildIndex replaces the graph and rebuilds the position index. Call it
// whenever the graph has been regenerated or mutated.
func (p *Pathfinder) RebuildIndex(g *navgraph.Graph) {
	var idx *spatialIndex
	if g != nil {
		idx = newSpatialIndex(g, p.toleranceFor(g))
	}

	p.mu.Lock()
	p.graph = g
	p.index = idx
	p.generation++
	gen := p.generation
	p.mu.Unlock()

	p.opts.Logger.Debug("pathfinder: index rebuilt",
		slog.Uint64("generation", gen),
		slog.Int("nodes", idx.Len()),
	)
}

// Generation counts RebuildIndex calls, including the one made by New.
func (p *Pathfinder) Generation() uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.generation
}

// Tolerance returns the nearest-node tolerance in effect, or 0 without a graph.
func (p *Pathfinder) Tolerance() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.index == nil {
		return 0
	}
	return p.index.tol
}

func (p *Pathfinder) toleranceFor(g *navgraph.Graph) float64 {
	if p.opts.Tolerance > 0 {
		return p.opts.Tolerance
	}
	return g.CellSize()
}

func (p *Pathfinder) snapshot() snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return snapshot{graph: p.graph, index: p.index, generation: p.generation}
}

// Resolve maps m onto a node ID of the current graph.
func (p *Pathfinder) Resolve(m Marker) (string, bool) {
	return p.snapshot().resolve(m)
}

func (s snapshot) resolve(m Marker) (string, bool) {
	if s.graph == nil {
		return "", false
	}
	if m.ID != "" && s.graph.HasNode(m.ID) {
		return m.ID, true
	}
	if m.HasPosition {
		return s.index.Nearest(m.Position)
	}
	return "", false
}

// DefaultEndpoints returns markers for the first and last node of the graph,
// the pair a freshly generated level starts with. ok is false without nodes.
func (p *Pathfinder) DefaultEndpoints() (start, goal Marker, ok bool) {
	g := p.snapshot().graph
	if g == nil || g.Len() == 0 {
		return Marker{}, Marker{}, false
	}
	nodes := g.Nodes()
	first, last := nodes[0], nodes[len(nodes)-1]

	return AtNodeOrPosition(first.ID, first.Position), AtNodeOrPosition(last.ID, last.Position), true
}

// Route resolves start and goal and searches a route between them.
//
// Lookup failures are logged at warning level and returned as an empty
// route with astar.StatusUnresolved. ctx carries tracing and logging
// context only: a search runs to completion once started.
func (p *Pathfinder) Route(ctx context.Context, start, goal Marker) astar.Result {
	return p.routeWith(ctx, p.snapshot(), start, goal, p.opts.Logger)
}

func (p *Pathfinder) routeWith(ctx context.Context, s snapshot, start, goal Marker, logger *slog.Logger) astar.Result {
	ctx, span := startRouteSpan(ctx, start, goal, s.generation)
	defer span.End()
	began := time.Now()

	res := p.search(ctx, s, start, goal, logger)

	setRouteSpanResult(span, res)
	recordRouteMetrics(ctx, time.Since(began), res)

	return res
}

func (p *Pathfinder) search(ctx context.Context, s snapshot, start, goal Marker, logger *slog.Logger) astar.Result {
	from, okFrom := s.resolve(start)
	to, okTo := s.resolve(goal)
	if !okFrom || !okTo {
		logger.WarnContext(ctx, "pathfinder: endpoint could not be resolved to a node",
			slog.String("start", start.String()),
			slog.Bool("start_resolved", okFrom),
			slog.String("goal", goal.String()),
			slog.Bool("goal_resolved", okTo),
			slog.Uint64("generation", s.generation),
		)
		return astar.Result{Status: astar.StatusUnresolved}
	}

	return astar.Search(s.graph, from, to, p.searchOptions(logger)...)
}

func (p *Pathfinder) searchOptions(logger *slog.Logger) []astar.Option {
	opts := make([]astar.Option, 0, 3+len(p.opts.Search))
	opts = append(opts,
		astar.WithHeuristic(p.opts.Heuristic, p.opts.Admissible),
		astar.WithMaxIterations(p.opts.MaxIterations),
		astar.WithLogger(logger),
	)
	return append(opts, p.opts.Search...)
}
