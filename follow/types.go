package follow

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/navpath/astar"
	"github.com/katalvlaran/navpath/pathfinder"
)

// ErrBadRadius indicates a non-positive arrival radius.
var ErrBadRadius = errors.New("follow: arrival radius must be positive")

// DefaultArrivalRadius is the distance under which a route node counts as reached.
const DefaultArrivalRadius = 2.0

// Router produces routes between markers. *pathfinder.Pathfinder satisfies it.
type Router interface {
	Route(ctx context.Context, start, goal pathfinder.Marker) astar.Result
}

// Locator reports node positions. *navgraph.Graph satisfies it.
type Locator interface {
	HasNode(id string) bool
	Position(id string) mgl64.Vec3
}

// Options configures a Follower.
type Options struct {
	ArrivalRadius float64
	Logger        *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns an arrival radius of DefaultArrivalRadius and slog.Default().
func DefaultOptions() Options {
	return Options{
		ArrivalRadius: DefaultArrivalRadius,
		Logger:        slog.Default(),
	}
}

// WithArrivalRadius sets the arrival radius.
// Panics with ErrBadRadius if r <= 0.
func WithArrivalRadius(r float64) Option {
	if r <= 0 {
		panic(ErrBadRadius.Error())
	}
	return func(o *Options) { o.ArrivalRadius = r }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
