package repository

import (
	"context"
	"fmt"
	"investordash/internal/domain"
	"investordash/internal/util"
	"investordash/pkg/zoho"
)

//go:generate mockgen -source=inventory.repository.go -destination=mocks/mock_inventory.repository.go

// InventoryRepository is the live source of orders and catalog items.
type InventoryRepository interface {
	IsConfigured() bool
	FetchOverviewRaw(ctx context.Context) (*domain.OverviewRaw, error)
}

type inventoryFetcher interface {
	FetchOverviewRaw(ctx context.Context) (*domain.OverviewRaw, error)
}

func NewInventoryRepository(cfg util.ZohoConfig) InventoryRepository {
	client := zoho.NewClient(zoho.ClientOpts{
		ClientID:          cfg.ClientID,
		ClientSecret:      cfg.ClientSecret,
		RefreshToken:      cfg.RefreshToken,
		OrganizationID:    cfg.OrganizationID,
		DataCenter:        cfg.DataCenter,
		Timeout:           cfg.HttpTimeout,
		MaxPages:          cfg.MaxPages,
		FetchLineItems:    cfg.FetchLineItems,
		DetailConcurrency: cfg.DetailConcurrency,
	})

	return inventoryRepositoryHandler{
		Config: cfg,
		Client: client,
	}
}

type inventoryRepositoryHandler struct {
	Config util.ZohoConfig
	Client inventoryFetcher
}

func (h inventoryRepositoryHandler) IsConfigured() bool {
	return h.Config.IsConfigured()
}

func (h inventoryRepositoryHandler) FetchOverviewRaw(ctx context.Context) (*domain.OverviewRaw, error) {
	if !h.IsConfigured() {
		return nil, fmt.Errorf("inventory source not configured")
	}
	raw, err := h.Client.FetchOverviewRaw(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch overview data: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("failed to fetch overview data: empty response")
	}
	return raw, nil
}
