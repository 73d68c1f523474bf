package pathfinder

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/navpath/astar"
)

// RouteBatch runs reqs concurrently, at most MaxConcurrency at a time, and
// returns one result per request in request order.
//
// All requests run against the index generation current at the call.
// Identical requests in flight at the same time are searched once. The
// returned error is non-nil only if ctx is done before every request has
// started; the results are discarded in that case.
func (p *Pathfinder) RouteBatch(ctx context.Context, reqs []Request) ([]astar.Result, error) {
	s := p.snapshot()
	batchID := uuid.NewString()
	logger := p.opts.Logger.With(slog.String("batch_id", batchID))

	results := make([]astar.Result, len(reqs))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(p.opts.MaxConcurrency)

	for i, req := range reqs {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			reqLogger := logger.With(slog.Int("request", i))
			v, _, shared := p.flight.Do(flightKey(s.generation, req), func() (any, error) {
				return p.routeWith(egCtx, s, req.Start, req.Goal, reqLogger), nil
			})
			res := v.(astar.Result)
			if shared {
				res.Route = slices.Clone(res.Route)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		logger.Debug("pathfinder: batch abandoned", slog.Int("requests", len(reqs)), slog.Any("error", err))
		return nil, err
	}

	return results, nil
}

func flightKey(generation uint64, req Request) string {
	return fmt.Sprintf("%d|%s|%t|%v|%s|%t|%v",
		generation,
		req.Start.ID, req.Start.HasPosition, req.Start.Position,
		req.Goal.ID, req.Goal.HasPosition, req.Goal.Position,
	)
}
