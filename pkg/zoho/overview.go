package zoho

import (
	"context"
	"investordash/internal/domain"

	"golang.org/x/sync/errgroup"
)

// FetchOverviewRaw fetches sales orders and items concurrently with a single
// shared access token. If either request fails the other is cancelled and the
// whole fetch fails. There are no retries.
func (c Client) FetchOverviewRaw(ctx context.Context) (*domain.OverviewRaw, error) {
	ts := c.tokenSource(ctx)
	g, gctx := errgroup.WithContext(ctx)

	var (
		orders []domain.Order
		items  []domain.Item
	)

	g.Go(func() error {
		out, err := c.listSalesOrders(gctx, ts)
		if err != nil {
			return err
		}
		if c.FetchLineItems {
			if err := c.hydrateLineItems(gctx, ts, out); err != nil {
				return err
			}
		}
		orders = out
		return nil
	})

	g.Go(func() error {
		out, err := c.listItems(gctx, ts)
		if err != nil {
			return err
		}
		items = out
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.OverviewRaw{
		SalesOrders: orders,
		Items:       items,
	}, nil
}
