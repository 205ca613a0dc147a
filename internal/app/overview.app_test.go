package app

import (
	"context"
	"errors"
	"investordash/internal/domain"
	"investordash/internal/fallback"
	"investordash/internal/logger"
	mock_repository "investordash/internal/repository/mocks"
	"investordash/internal/util"
	"regexp"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func newTestHandler(repo *mock_repository.MockInventoryRepository) *overviewAppHandler {
	return &overviewAppHandler{
		InventoryRepository: repo,
		Fallback:            fallback.Default(),
		Now: func() time.Time {
			return util.NewDate(2025, 6, 15)
		},
	}
}

func requireFallback(t *testing.T, result domain.OverviewResult) {
	t.Helper()
	expected := fallback.Default()
	require.Equal(t, domain.SourceMock, result.Source)
	require.Equal(t, "", cmp.Diff(expected.Metrics(), result.Metrics))
	require.Equal(t, "", cmp.Diff(expected.Products(), result.Products, decimalComparer))
}

func Test_overviewAppHandler_GetOverview(t *testing.T) {
	ctx := context.Background()

	t.Run("unconfigured source serves fallback without fetching", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockInventoryRepository(ctrl)
		repo.EXPECT().IsConfigured().Return(false)

		result := newTestHandler(repo).GetOverview(ctx)
		requireFallback(t, result)
	})

	t.Run("fetch failure serves fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockInventoryRepository(ctrl)
		repo.EXPECT().IsConfigured().Return(true)
		repo.EXPECT().FetchOverviewRaw(gomock.Any()).Return(nil, errors.New("failed to refresh token: 401"))

		result := newTestHandler(repo).GetOverview(ctx)
		requireFallback(t, result)
	})

	t.Run("fetch failure is logged for operators", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockInventoryRepository(ctrl)
		repo.EXPECT().IsConfigured().Return(true)
		repo.EXPECT().FetchOverviewRaw(gomock.Any()).Return(nil, errors.New("failed to fetch items: code 57: not authorized"))

		core, logs := observer.New(zap.ErrorLevel)
		logCtx := logger.WithLogger(ctx, zap.New(core).Sugar())

		result := newTestHandler(repo).GetOverview(logCtx)
		requireFallback(t, result)

		entries := logs.FilterMessage("inventory fetch failed").All()
		require.Len(t, entries, 1)
		require.Contains(t, entries[0].ContextMap()["error"], "not authorized")
	})

	t.Run("nil raw data serves fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockInventoryRepository(ctrl)
		repo.EXPECT().IsConfigured().Return(true)
		repo.EXPECT().FetchOverviewRaw(gomock.Any()).Return(nil, nil)

		result := newTestHandler(repo).GetOverview(ctx)
		requireFallback(t, result)
	})

	t.Run("panic in fetch serves fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockInventoryRepository(ctrl)
		repo.EXPECT().IsConfigured().Return(true)
		repo.EXPECT().FetchOverviewRaw(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.OverviewRaw, error) {
			panic("boom")
		})

		result := newTestHandler(repo).GetOverview(ctx)
		requireFallback(t, result)
	})

	t.Run("empty collections map to zero live metrics", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockInventoryRepository(ctrl)
		repo.EXPECT().IsConfigured().Return(true)
		repo.EXPECT().FetchOverviewRaw(gomock.Any()).Return(&domain.OverviewRaw{
			SalesOrders: []domain.Order{},
			Items:       []domain.Item{},
		}, nil)

		result := newTestHandler(repo).GetOverview(ctx)
		require.Equal(t, domain.SourceLive, result.Source)
		require.Len(t, result.Metrics, 4)
		require.Equal(t, "$0", result.Metrics[0].Value)
		require.Equal(t, "0", result.Metrics[1].Value)
		require.Equal(t, "$0", result.Metrics[2].Value)
		require.NotNil(t, result.Products)
		require.Empty(t, result.Products)
	})

	t.Run("order without line items leaves catalog items at zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockInventoryRepository(ctrl)
		repo.EXPECT().IsConfigured().Return(true)
		repo.EXPECT().FetchOverviewRaw(gomock.Any()).Return(&domain.OverviewRaw{
			SalesOrders: []domain.Order{
				{SalesOrderID: "1", Date: "2025-03-01", Total: domain.NewNumber(1000), Quantity: domain.NewNumber(10)},
			},
			Items: []domain.Item{
				{ItemID: "100", Name: "Gummy", Rate: domain.NewNumber(12.5)},
			},
		}, nil)

		result := newTestHandler(repo).GetOverview(ctx)
		require.Equal(t, domain.SourceLive, result.Source)
		require.Regexp(t, regexp.MustCompile(`\$[\d,]+`), result.Metrics[0].Value)
		require.Equal(t, "$1,000", result.Metrics[0].Value)

		require.Len(t, result.Products, 1)
		require.Equal(t, "100", result.Products[0].ID)
		require.True(t, result.Products[0].UnitsSold.IsZero())
		require.True(t, result.Products[0].Revenue.IsZero())
		require.True(t, result.Products[0].RevenueShare.IsZero())
		require.True(t, result.Products[0].AvgOrderValue.Equal(decimal.NewFromFloat(12.5)))
	})

	t.Run("line items drive revenue share and product aov", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockInventoryRepository(ctrl)
		repo.EXPECT().IsConfigured().Return(true)
		repo.EXPECT().FetchOverviewRaw(gomock.Any()).Return(&domain.OverviewRaw{
			SalesOrders: []domain.Order{
				{
					SalesOrderID: "1",
					Date:         "2025-04-01",
					Total:        domain.NewNumber(1000),
					Quantity:     domain.NewNumber(20),
					LineItems: []domain.LineItem{
						{ItemID: "a", Quantity: domain.NewNumber(10), ItemTotal: domain.NewNumber(600)},
						{ItemID: "b", Quantity: domain.NewNumber(10), ItemTotal: domain.NewNumber(400)},
					},
				},
			},
			Items: []domain.Item{
				{ItemID: "a", Name: "Gummy", SKU: "GUMMY-001"},
				{ItemID: "b", Name: "Bars"},
			},
		}, nil)

		result := newTestHandler(repo).GetOverview(ctx)
		require.Equal(t, domain.SourceLive, result.Source)

		expected := []domain.ProductPerformance{
			{
				ID:            "a",
				Name:          "Gummy",
				SKU:           "GUMMY-001",
				RevenueShare:  decimal.NewFromInt(60),
				UnitsSold:     decimal.NewFromInt(10),
				Revenue:       decimal.NewFromInt(600),
				AvgOrderValue: decimal.NewFromInt(60),
				ReturnRate:    decimal.Zero,
			},
			{
				ID:            "b",
				Name:          "Bars",
				SKU:           "ITEM-b",
				RevenueShare:  decimal.NewFromInt(40),
				UnitsSold:     decimal.NewFromInt(10),
				Revenue:       decimal.NewFromInt(400),
				AvgOrderValue: decimal.NewFromInt(40),
				ReturnRate:    decimal.Zero,
			},
		}
		require.Equal(t, "", cmp.Diff(expected, result.Products, decimalComparer))
	})

	t.Run("records spans on the request profile without ending it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockInventoryRepository(ctrl)
		repo.EXPECT().IsConfigured().Return(true)
		repo.EXPECT().FetchOverviewRaw(gomock.Any()).Return(&domain.OverviewRaw{}, nil)

		profile, endProfile := domain.NewProfile()
		profileCtx := context.WithValue(ctx, domain.ContextProfileKey, profile)

		result := newTestHandler(repo).GetOverview(profileCtx)
		require.Equal(t, domain.SourceLive, result.Source)
		require.Nil(t, profile.TotalMs)
		require.Len(t, profile.Spans, 2)
		require.Equal(t, "fetch inventory", profile.Spans[0].Name)
		require.Equal(t, "map overview", profile.Spans[1].Name)
		require.NotNil(t, profile.Spans[1].Elapsed)

		endProfile()
		require.NotNil(t, profile.TotalMs)
	})

	t.Run("orders from another year are excluded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockInventoryRepository(ctrl)
		repo.EXPECT().IsConfigured().Return(true)
		repo.EXPECT().FetchOverviewRaw(gomock.Any()).Return(&domain.OverviewRaw{
			SalesOrders: []domain.Order{
				{SalesOrderID: "1", Date: "2024-12-31", Total: domain.NewNumber(999), Quantity: domain.NewNumber(9)},
				{SalesOrderID: "2", Date: "2025-01-01", Total: domain.NewNumber(100), Quantity: domain.NewNumber(1)},
			},
		}, nil)

		result := newTestHandler(repo).GetOverview(ctx)
		require.Equal(t, "$100", result.Metrics[0].Value)
		require.Equal(t, "1", result.Metrics[1].Value)
	})
}

func Test_overviewAppHandler_neverFails(t *testing.T) {
	cases := []struct {
		name       string
		configured bool
		raw        *domain.OverviewRaw
		err        error
	}{
		{name: "unconfigured"},
		{name: "fetch error", configured: true, err: errors.New("network")},
		{name: "empty", configured: true, raw: &domain.OverviewRaw{}},
		{
			name:       "valid",
			configured: true,
			raw: &domain.OverviewRaw{
				SalesOrders: []domain.Order{{SalesOrderID: "1", Date: "2025-01-02", Total: domain.NewNumber(10)}},
				Items:       []domain.Item{{ItemID: "1"}},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_repository.NewMockInventoryRepository(ctrl)
			repo.EXPECT().IsConfigured().Return(tc.configured)
			if tc.configured {
				repo.EXPECT().FetchOverviewRaw(gomock.Any()).Return(tc.raw, tc.err)
			}

			result := newTestHandler(repo).GetOverview(context.Background())
			require.Contains(t, []domain.Source{domain.SourceLive, domain.SourceMock}, result.Source)
			require.GreaterOrEqual(t, len(result.Metrics), 3)
			require.NotNil(t, result.Products)
		})
	}
}

func TestNewOverviewApp(t *testing.T) {
	t.Run("empty fallback dataset is replaced with the default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockInventoryRepository(ctrl)
		repo.EXPECT().IsConfigured().Return(false)

		result := NewOverviewApp(repo, fallback.Dataset{}).GetOverview(context.Background())
		requireFallback(t, result)
	})

	t.Run("fallback results are independent copies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockInventoryRepository(ctrl)
		repo.EXPECT().IsConfigured().Return(false).Times(2)

		overviewApp := NewOverviewApp(repo, fallback.Default())
		first := overviewApp.GetOverview(context.Background())
		first.Metrics[0].Value = "changed"
		first.Products[0].Name = "changed"

		second := overviewApp.GetOverview(context.Background())
		requireFallback(t, second)
	})
}
