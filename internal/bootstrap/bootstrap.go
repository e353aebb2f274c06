package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/swcatalog/starwars/internal/app/controllers"
	"github.com/swcatalog/starwars/internal/app/importer"
	"github.com/swcatalog/starwars/internal/app/models"
	appRepos "github.com/swcatalog/starwars/internal/app/repositories"
	appRoutes "github.com/swcatalog/starwars/internal/app/routes"
	"github.com/swcatalog/starwars/internal/app/schema"
	appServices "github.com/swcatalog/starwars/internal/app/services"
	"github.com/swcatalog/starwars/internal/config"
	"github.com/swcatalog/starwars/internal/db"
	appMiddleware "github.com/swcatalog/starwars/internal/middleware"
	"github.com/swcatalog/starwars/internal/pkg/helpers"
	"github.com/swcatalog/starwars/internal/pkg/logger"
	"github.com/swcatalog/starwars/internal/swapi"
)

// DefaultConfigPath is read when no --config flag is given
const DefaultConfigPath = "configs/config.yaml"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos            *appRepos.Repositories
	Importer         *importer.Importer
	CharacterService appServices.CharacterService
	MovieService     appServices.MovieService
	PlanetService    appServices.PlanetService
	StarshipService  appServices.StarshipService
	SpeciesService   appServices.SpeciesService
	VehicleService   appServices.VehicleService
	FavoriteService  appServices.FavoriteService
	Controllers      appRoutes.Controllers
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the store and applies the schema.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.Database, error) {
	lgr.Info().Str("driver", cfg.Database.Driver).Msg("Establishing database connection...")
	database, err := db.Open(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := database.Ping(pingCtx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}

	if err := schema.Apply(ctx, database, lgr); err != nil {
		lgr.Error().Err(err).Msg("Database schema error")
		database.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}
	lgr.Info().Msg("Database ready")

	return database, nil
}

// NewCatalogClient builds the SWAPI client from configuration
func NewCatalogClient(cfg *config.Config) *swapi.Client {
	return swapi.NewClient(swapi.Config{
		BaseURL:   cfg.Catalog.BaseURL,
		Timeout:   helpers.ParseDuration(cfg.Catalog.Timeout, 30*time.Second),
		UserAgent: cfg.Catalog.UserAgent,
	})
}

// BuildDependencies initializes repositories, the importer, services and
// controllers. Pages are read from fetcher.
func BuildDependencies(database *db.Database, fetcher importer.PageFetcher, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)
	deps.Importer = importer.New(fetcher, lgr.With().Str("component", "importer").Logger())

	deps.CharacterService = appServices.NewCharacterService(deps.Repos.CharacterRepository, deps.Importer)
	deps.MovieService = appServices.NewMovieService(deps.Repos.MovieRepository, deps.Importer)
	deps.PlanetService = appServices.NewPlanetService(deps.Repos.PlanetRepository, deps.Importer)
	deps.StarshipService = appServices.NewStarshipService(deps.Repos.StarshipRepository, deps.Importer)
	deps.SpeciesService = appServices.NewSpeciesService(deps.Repos.SpeciesRepository, deps.Importer)
	deps.VehicleService = appServices.NewVehicleService(deps.Repos.VehicleRepository, deps.Importer)
	deps.FavoriteService = appServices.NewFavoriteService(deps.Repos.FavoriteRepository)

	registerBindings(deps)

	deps.Controllers = appRoutes.Controllers{
		Character: appControllers.NewCharacterController(deps.CharacterService),
		Movie:     appControllers.NewMovieController(deps.MovieService),
		Planet:    appControllers.NewPlanetController(deps.PlanetService),
		Starship:  appControllers.NewStarshipController(deps.StarshipService),
		Species:   appControllers.NewSpeciesController(deps.SpeciesService),
		Vehicle:   appControllers.NewVehicleController(deps.VehicleService),
		Favorite:  appControllers.NewFavoriteController(deps.FavoriteService),
	}

	lgr.Info().Msg("Dependencies initialized")
	return deps
}

// registerBindings ties each catalog resource to its mapper, natural key
// lookup and service create.
func registerBindings(deps *Dependencies) {
	repos := deps.Repos

	importer.Register(deps.Importer, swapi.People, importer.Binding[models.Character]{
		Map: importer.MapCharacter,
		Exists: func(ctx context.Context, c *models.Character) (bool, error) {
			return repos.CharacterRepository.ExistsByName(ctx, c.Name)
		},
		Create: deps.CharacterService.CreateCharacter,
	})
	importer.Register(deps.Importer, swapi.Films, importer.Binding[models.Movie]{
		Map: importer.MapMovie,
		Exists: func(ctx context.Context, m *models.Movie) (bool, error) {
			return repos.MovieRepository.ExistsByTitle(ctx, m.Title)
		},
		Create: deps.MovieService.CreateMovie,
	})
	importer.Register(deps.Importer, swapi.Planets, importer.Binding[models.Planet]{
		Map: importer.MapPlanet,
		Exists: func(ctx context.Context, p *models.Planet) (bool, error) {
			return repos.PlanetRepository.ExistsByName(ctx, p.Name)
		},
		Create: deps.PlanetService.CreatePlanet,
	})
	importer.Register(deps.Importer, swapi.Starships, importer.Binding[models.Starship]{
		Map: importer.MapStarship,
		Exists: func(ctx context.Context, s *models.Starship) (bool, error) {
			return repos.StarshipRepository.ExistsByName(ctx, s.Name)
		},
		Create: deps.StarshipService.CreateStarship,
	})
	importer.Register(deps.Importer, swapi.Species, importer.Binding[models.Species]{
		Map: importer.MapSpecies,
		Exists: func(ctx context.Context, s *models.Species) (bool, error) {
			return repos.SpeciesRepository.ExistsByName(ctx, s.Name)
		},
		Create: deps.SpeciesService.CreateSpecies,
	})
	importer.Register(deps.Importer, swapi.Vehicles, importer.Binding[models.Vehicle]{
		Map: importer.MapVehicle,
		Exists: func(ctx context.Context, v *models.Vehicle) (bool, error) {
			return repos.VehicleRepository.ExistsByNameAndModel(ctx, v.Name, v.Model)
		},
		Create: deps.VehicleService.CreateVehicle,
	})
}

// SetupRouter creates the gin engine with middleware and all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, store appRoutes.Pinger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(deps.Logger))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, store)

	return router
}
