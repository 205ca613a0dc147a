package cmd

import (
	"fmt"
	"investordash/api"
	"investordash/internal/app"
	"investordash/internal/fallback"
	"investordash/internal/repository"
	"investordash/internal/util"
)

func InitializeDependencies() (*api.ApiHandler, *util.Config, error) {
	cfg, err := util.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	inventoryRepository := repository.NewInventoryRepository(cfg.Zoho)
	overviewApp := app.NewOverviewApp(
		inventoryRepository,
		fallback.Default(),
	)

	apiHandler := &api.ApiHandler{
		OverviewApp: overviewApp,
	}

	return apiHandler, cfg, nil
}
