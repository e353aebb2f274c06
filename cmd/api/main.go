package main

import (
	"os"

	"github.com/swcatalog/starwars/internal/pkg/logger"
)

// @title Star Wars Catalog API
// @version 1.0
// @description CRUD API over Star Wars entities, lazily imported from SWAPI.

// @host localhost:5000
// @BasePath /
// @schemes http

func main() {
	if err := getRootCmd().Execute(); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
