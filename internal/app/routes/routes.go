package routes

import (
	"context"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/swcatalog/starwars/internal/app/controllers"
	"github.com/swcatalog/starwars/internal/app/models/dto"
	"github.com/swcatalog/starwars/internal/middleware"
)

// Pinger reports whether the store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Character *controllers.CharacterController
	Movie     *controllers.MovieController
	Planet    *controllers.PlanetController
	Starship  *controllers.StarshipController
	Species   *controllers.SpeciesController
	Vehicle   *controllers.VehicleController
	Favorite  *controllers.FavoriteController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, store Pinger) {
	middleware.ConfigureValidator()

	characters := router.Group("/personagens")
	{
		characters.POST("", c.Character.CreateCharacter)
		characters.GET("", c.Character.GetAllCharacters)
		characters.GET("/:id", c.Character.GetCharacterByID)
		characters.DELETE("/:id", c.Character.DeleteCharacter)
	}

	movies := router.Group("/filmes")
	{
		movies.POST("", c.Movie.CreateMovie)
		movies.GET("", c.Movie.GetAllMovies)
		movies.GET("/:id", c.Movie.GetMovieByID)
		movies.DELETE("/:id", c.Movie.DeleteMovie)
	}

	planets := router.Group("/planetas")
	{
		planets.POST("", c.Planet.CreatePlanet)
		planets.GET("", c.Planet.GetAllPlanets)
		planets.GET("/:id", c.Planet.GetPlanetByID)
		planets.DELETE("/:id", c.Planet.DeletePlanet)
	}

	starships := router.Group("/naves")
	{
		starships.POST("", c.Starship.CreateStarship)
		starships.GET("", c.Starship.GetAllStarships)
		starships.GET("/:id", c.Starship.GetStarshipByID)
		starships.DELETE("/:id", c.Starship.DeleteStarship)
	}

	species := router.Group("/especies")
	{
		species.POST("", c.Species.CreateSpecies)
		species.GET("", c.Species.GetAllSpecies)
		species.GET("/:id", c.Species.GetSpeciesByID)
		species.DELETE("/:id", c.Species.DeleteSpecies)
	}

	vehicles := router.Group("/veiculos")
	{
		vehicles.POST("", c.Vehicle.CreateVehicle)
		vehicles.GET("", c.Vehicle.GetAllVehicles)
		vehicles.GET("/:id", c.Vehicle.GetVehicleByID)
		vehicles.DELETE("/:id", c.Vehicle.DeleteVehicle)
	}

	favorites := router.Group("/favoritos")
	{
		favorites.POST("", c.Favorite.CreateFavorite)
		favorites.GET("", c.Favorite.GetAllFavorites)
		favorites.GET("/:id", c.Favorite.GetFavoriteByID)
		favorites.DELETE("/:id", c.Favorite.DeleteFavorite)
	}

	// Legacy favorite paths
	legacy := router.Group("/favorito")
	{
		legacy.GET("", c.Favorite.GetAllFavorites)
		legacy.GET("/:id", c.Favorite.GetFavoriteByID)
		legacy.POST("/save", c.Favorite.CreateFavorite)
		legacy.DELETE("/delete/:id", c.Favorite.DeleteFavorite)
	}

	router.GET("/ping", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/health", healthHandler(store))
	router.GET("/endpoints", endpointsHandler(router))
}

// healthHandler reports whether the store answers a ping
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func healthHandler(store Pinger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if store != nil {
			if err := store.Ping(ctx.Request.Context()); err != nil {
				ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Database: err.Error()})
				return
			}
		}
		ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: "ok"})
	}
}

// endpointsHandler lists every registered route
// @Summary List endpoints
// @Tags system
// @Produce json
// @Success 200 {array} dto.EndpointInfo
// @Router /endpoints [get]
func endpointsHandler(router *gin.Engine) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		routes := router.Routes()
		endpoints := make([]dto.EndpointInfo, 0, len(routes))
		for _, r := range routes {
			endpoints = append(endpoints, dto.EndpointInfo{Method: r.Method, Path: r.Path})
		}
		sort.Slice(endpoints, func(i, j int) bool {
			if endpoints[i].Path == endpoints[j].Path {
				return endpoints[i].Method < endpoints[j].Method
			}
			return endpoints[i].Path < endpoints[j].Path
		})
		ctx.JSON(http.StatusOK, endpoints)
	}
}
