package main

import (
	"investordash/cmd"
	"investordash/internal/logger"
	"log"
	"os"
)

func main() {
	lg := logger.New()
	lg.Infow("starting api", "commitHash", os.Getenv("commit_hash"))

	apiHandler, cfg, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	if !cfg.Zoho.IsConfigured() {
		lg.Warn("inventory source not configured, overview will serve fallback data")
	}

	err = apiHandler.StartApi(cfg.Port)
	if err != nil {
		log.Fatal(err)
	}
}
