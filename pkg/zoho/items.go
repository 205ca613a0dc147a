package zoho

import (
	"context"
	"fmt"
	"investordash/internal/domain"
	"investordash/internal/logger"
	"net/url"
	"strconv"

	"golang.org/x/oauth2"
)

type itemsResponse struct {
	envelope
	Items []domain.Item `json:"items"`
}

// ListItems fetches the product catalog.
func (c Client) ListItems(ctx context.Context) ([]domain.Item, error) {
	return c.listItems(ctx, c.tokenSource(ctx))
}

func (c Client) listItems(ctx context.Context, ts oauth2.TokenSource) ([]domain.Item, error) {
	log := logger.FromContext(ctx)
	out := []domain.Item{}

	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page))
		query.Set("per_page", strconv.Itoa(perPage))

		data := itemsResponse{}
		if err := c.get(ctx, ts, "/items", query, &data); err != nil {
			return nil, fmt.Errorf("failed to fetch items: %w", err)
		}
		if data.Code != 0 || data.Items == nil {
			return nil, apiError(data.envelope, "failed to fetch items")
		}
		out = append(out, data.Items...)

		if data.PageContext == nil || !data.PageContext.HasMorePage {
			break
		}
		if page >= c.MaxPages {
			log.Warnw("item listing truncated", "pages", page, "items", len(out))
			break
		}
	}

	return out, nil
}
