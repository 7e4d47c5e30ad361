package main

import (
	"net/http"
	"os"

	"github.com/gitdmnt/sim-core/internal/api"
	"github.com/gitdmnt/sim-core/internal/config"
	"github.com/gitdmnt/sim-core/internal/constants"
	"github.com/gitdmnt/sim-core/internal/logging"
	"github.com/gitdmnt/sim-core/internal/simulate"
	"github.com/gitdmnt/sim-core/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	// Path may be provided via SIMCORE_CONFIG env var or defaults to
	// ./simcore_config.json in the current working directory. A missing
	// file is fine; the defaults are enough to serve simulations.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "./simcore_config.json"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Fatal("Invalid configuration", err, logging.Fields{"config_path": configPath})
	}

	// Allow the DB path to be configured via SIMCORE_DB. Default to a
	// `data/` directory for local development.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = "./data/simcore.db"
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}

	repo := storage.NewSQLiteRepository(db)
	svc := simulate.NewService(repo, cfg.Workers, cfg.DefaultCount, cfg.MaxCount)
	handler := api.NewSimHandler(repo, svc)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.POST(constants.RouteSimulate, handler.Simulate)
		apiRoutes.GET(constants.RouteRuns, handler.ListRuns)
		apiRoutes.GET(constants.RouteRunByUUID, handler.GetRun)
		apiRoutes.GET(constants.RouteVersion, api.Version)
	}

	router.GET(constants.RouteHealthz, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "ok"})
	})

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
