package main

import (
	"investordash/cmd"
	"log"
	"os"
)

func main() {
	apiHandler, _, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}

	rootCmd := newRootCmd(apiHandler.OverviewApp, os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
