package zoho

import (
	"context"
	"fmt"
	"investordash/internal/domain"
	"investordash/internal/logger"
	"net/url"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"
)

const perPage = 200

type salesOrdersResponse struct {
	envelope
	SalesOrders []domain.Order `json:"salesorders"`
}

type salesOrderResponse struct {
	envelope
	SalesOrder *domain.Order `json:"salesorder"`
}

// ListSalesOrders fetches company-wide sales orders, following pagination up
// to MaxPages. The list endpoint usually omits line items.
func (c Client) ListSalesOrders(ctx context.Context) ([]domain.Order, error) {
	return c.listSalesOrders(ctx, c.tokenSource(ctx))
}

// GetSalesOrder fetches one sales order with its line items.
func (c Client) GetSalesOrder(ctx context.Context, salesOrderID string) (*domain.Order, error) {
	return c.getSalesOrder(ctx, c.tokenSource(ctx), salesOrderID)
}

func (c Client) listSalesOrders(ctx context.Context, ts oauth2.TokenSource) ([]domain.Order, error) {
	log := logger.FromContext(ctx)
	out := []domain.Order{}

	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page))
		query.Set("per_page", strconv.Itoa(perPage))

		data := salesOrdersResponse{}
		if err := c.get(ctx, ts, "/salesorders", query, &data); err != nil {
			return nil, fmt.Errorf("failed to fetch sales orders: %w", err)
		}
		if data.Code != 0 || data.SalesOrders == nil {
			return nil, apiError(data.envelope, "failed to fetch sales orders")
		}
		out = append(out, data.SalesOrders...)

		if data.PageContext == nil || !data.PageContext.HasMorePage {
			break
		}
		if page >= c.MaxPages {
			log.Warnw("sales order listing truncated", "pages", page, "orders", len(out))
			break
		}
	}

	return out, nil
}

func (c Client) getSalesOrder(ctx context.Context, ts oauth2.TokenSource, salesOrderID string) (*domain.Order, error) {
	data := salesOrderResponse{}
	if err := c.get(ctx, ts, "/salesorders/"+url.PathEscape(salesOrderID), nil, &data); err != nil {
		return nil, fmt.Errorf("failed to fetch sales order %s: %w", salesOrderID, err)
	}
	if data.Code != 0 || data.SalesOrder == nil {
		return nil, apiError(data.envelope, fmt.Sprintf("failed to fetch sales order %s", salesOrderID))
	}
	return data.SalesOrder, nil
}

// hydrateLineItems fills in line items for orders the list endpoint returned
// without them. Any failed detail request fails the whole call.
func (c Client) hydrateLineItems(ctx context.Context, ts oauth2.TokenSource, orders []domain.Order) error {
	limit := c.DetailConcurrency
	if limit <= 0 {
		limit = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := range orders {
		if len(orders[i].LineItems) > 0 || orders[i].SalesOrderID == "" {
			continue
		}
		g.Go(func() error {
			detail, err := c.getSalesOrder(gctx, ts, orders[i].SalesOrderID.String())
			if err != nil {
				return err
			}
			orders[i].LineItems = detail.LineItems
			return nil
		})
	}

	return g.Wait()
}
