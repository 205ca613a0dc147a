package repository

import (
	"context"
	"errors"
	"investordash/internal/domain"
	"investordash/internal/util"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	raw   *domain.OverviewRaw
	err   error
	calls int
}

func (s *stubFetcher) FetchOverviewRaw(ctx context.Context) (*domain.OverviewRaw, error) {
	s.calls++
	return s.raw, s.err
}

var configured = util.ZohoConfig{
	ClientID:       "id",
	ClientSecret:   "secret",
	RefreshToken:   "refresh",
	OrganizationID: "org",
}

func Test_inventoryRepositoryHandler_FetchOverviewRaw(t *testing.T) {
	t.Run("unconfigured does not call the client", func(t *testing.T) {
		fetcher := &stubFetcher{}
		h := inventoryRepositoryHandler{Client: fetcher}

		require.False(t, h.IsConfigured())
		_, err := h.FetchOverviewRaw(context.Background())
		require.Error(t, err)
		require.Equal(t, 0, fetcher.calls)
	})

	t.Run("wraps client errors", func(t *testing.T) {
		cause := errors.New("network down")
		h := inventoryRepositoryHandler{Config: configured, Client: &stubFetcher{err: cause}}

		_, err := h.FetchOverviewRaw(context.Background())
		require.ErrorIs(t, err, cause)
	})

	t.Run("nil response is an error", func(t *testing.T) {
		h := inventoryRepositoryHandler{Config: configured, Client: &stubFetcher{}}

		_, err := h.FetchOverviewRaw(context.Background())
		require.Error(t, err)
	})

	t.Run("passes through raw data", func(t *testing.T) {
		raw := &domain.OverviewRaw{Items: []domain.Item{{ItemID: "1"}}}
		fetcher := &stubFetcher{raw: raw}
		h := inventoryRepositoryHandler{Config: configured, Client: fetcher}

		out, err := h.FetchOverviewRaw(context.Background())
		require.NoError(t, err)
		require.Equal(t, raw, out)
		require.Equal(t, 1, fetcher.calls)
	})
}

func TestNewInventoryRepository(t *testing.T) {
	require.True(t, NewInventoryRepository(configured).IsConfigured())
	require.False(t, NewInventoryRepository(util.ZohoConfig{DataCenter: "eu"}).IsConfigured())
}
