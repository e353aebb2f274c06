package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/swcatalog/starwars/internal/bootstrap"
	"github.com/swcatalog/starwars/internal/swapi"
)

func getImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [resource...]",
		Short: "Imports catalog resources into the database",
		Long: `Walks every page of the given SWAPI resources and stores records whose
natural key is not yet present. Without arguments all resources are imported.

Resources: people, films, planets, starships, species, vehicles

Examples:
  starwars import
  starwars import planets starships`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resources, err := parseResources(args)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(cfgFile)
			if err != nil {
				return err
			}
			database, err := bootstrap.SetupDatabase(ctx, cfg, lgr)
			if err != nil {
				return err
			}
			defer database.Close()

			deps := bootstrap.BuildDependencies(database, bootstrap.NewCatalogClient(cfg), lgr)

			incomplete := 0
			for _, resource := range resources {
				summary, err := deps.Importer.Import(ctx, resource)
				if err != nil {
					return fmt.Errorf("importing %s: %w", resource, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s pages=%d imported=%d skipped=%d failed=%d\n",
					summary.Resource, summary.Pages, summary.Imported, summary.Skipped, summary.Failed)
				if !summary.Complete() {
					incomplete++
					fmt.Fprintf(cmd.ErrOrStderr(), "%-10s stopped early: %v\n", summary.Resource, summary.FetchError)
				}
			}

			if incomplete > 0 {
				return fmt.Errorf("%d resource(s) imported partially", incomplete)
			}
			return nil
		},
	}
}

func parseResources(args []string) ([]swapi.Resource, error) {
	if len(args) == 0 {
		return swapi.Resources, nil
	}
	resources := make([]swapi.Resource, 0, len(args))
	for _, arg := range args {
		r, err := swapi.ParseResource(arg)
		if err != nil {
			return nil, err
		}
		resources = append(resources, r)
	}
	return resources, nil
}
