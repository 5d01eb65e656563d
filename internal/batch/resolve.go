package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"codeberg.org/snonux/glossa/internal/translation"
)

// Resolver resolves a single query.
type Resolver interface {
	Resolve(ctx context.Context, text string, dir translation.Direction) translation.Result
}

// Item pairs a query with its result.
type Item struct {
	Query  Query
	Result translation.Result
}

// Resolve resolves queries with at most workers concurrent requests and
// returns the items in input order. It only fails when ctx is cancelled.
func Resolve(ctx context.Context, r Resolver, queries []Query, workers int) ([]Item, error) {
	if workers < 1 {
		workers = 1
	}

	items := make([]Item, len(queries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, q := range queries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			items[i] = Item{Query: q, Result: r.Resolve(ctx, q.Text, q.Direction)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}
