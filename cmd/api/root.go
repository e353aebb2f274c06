package main

import (
	"github.com/spf13/cobra"
)

var cfgFile string

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "starwars",
		Short: "Star Wars catalog API",
		Long: `Serves CRUD endpoints for Star Wars characters, movies, planets,
starships, species, vehicles and favorites. Empty tables are filled from
SWAPI the first time they are listed.

Configuration precedence (highest to lowest):
  1. Environment variables (SERVER_PORT, DB_DRIVER, CATALOG_BASE_URL, ...)
  2. Config file (configs/config.yaml)
  3. Built-in defaults`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: configs/config.yaml)")

	rootCmd.AddCommand(getServeCmd())
	rootCmd.AddCommand(getImportCmd())

	return rootCmd
}
