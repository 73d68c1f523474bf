package follow

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/navpath/astar"
	"github.com/katalvlaran/navpath/pathfinder"
)

// Follower tracks an agent's progress along a route. It is safe for
// concurrent use, e.g. Watch in one goroutine and Advance in the game loop.
type Follower struct {
	router Router
	nodes  Locator
	opts   Options

	mu     sync.Mutex
	route  []string
	next   int
	status astar.Status
}

// New creates a Follower with no route.
func New(router Router, nodes Locator, opts ...Option) *Follower {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Follower{
		router: router,
		nodes:  nodes,
		opts:   cfg,
		status: astar.StatusRunning,
	}
}

// Retarget requests a route from `from` to goal and makes it the current
// route, heading for its first node. An unsuccessful result clears the route.
func (f *Follower) Retarget(ctx context.Context, from, goal pathfinder.Marker) astar.Result {
	res := f.router.Route(ctx, from, goal)

	f.mu.Lock()
	f.route = slices.Clone(res.Route)
	f.next = 0
	f.status = res.Status
	f.mu.Unlock()

	if !res.Found() {
		f.opts.Logger.InfoContext(ctx, "follow: no route to new target",
			slog.String("from", from.String()),
			slog.String("goal", goal.String()),
			slog.String("status", res.Status.String()),
		)
	}
	return res
}

// Advance reports the agent's position. If the agent is strictly within the
// arrival radius of its target and the target is not the last node, the
// target moves to the next node. It returns the (possibly new) target; ok
// is false when there is no route to follow.
func (f *Follower) Advance(pos mgl64.Vec3) (target string, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.route) == 0 {
		return "", false
	}
	if f.within(pos, f.route[f.next]) && f.next < len(f.route)-1 {
		f.next++
	}
	return f.route[f.next], true
}

// Target returns the node the agent is heading for and its position.
func (f *Follower) Target() (id string, pos mgl64.Vec3, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.route) == 0 {
		return "", mgl64.Vec3{}, false
	}
	id = f.route[f.next]
	if !f.nodes.HasNode(id) {
		return id, mgl64.Vec3{}, false
	}
	return id, f.nodes.Position(id), true
}

// Arrived reports whether the agent is heading for the last node of the
// route and is strictly within the arrival radius of it.
func (f *Follower) Arrived(pos mgl64.Vec3) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.route) > 0 && f.next == len(f.route)-1 && f.within(pos, f.route[f.next])
}

// Route returns a copy of the current route.
func (f *Follower) Route() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.route)
}

// Remaining returns the route from the current target to the end.
func (f *Follower) Remaining() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.route) == 0 {
		return nil
	}
	return slices.Clone(f.route[f.next:])
}

// Status returns the status of the last Retarget, or astar.StatusRunning
// before the first one.
func (f *Follower) Status() astar.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Watch retargets to every marker received on targets, starting from the
// position reported by position at that moment. It returns nil when targets
// is closed and ctx.Err() when ctx is done.
func (f *Follower) Watch(ctx context.Context, targets <-chan pathfinder.Marker, position func() mgl64.Vec3) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case goal, open := <-targets:
			if !open {
				return nil
			}
			f.Retarget(ctx, pathfinder.AtPosition(position()), goal)
		}
	}
}

// within must be called with f.mu held.
func (f *Follower) within(pos mgl64.Vec3, id string) bool {
	if !f.nodes.HasNode(id) {
		return false
	}
	return f.nodes.Position(id).Sub(pos).Len() < f.opts.ArrivalRadius
}
