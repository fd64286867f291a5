package main

import (
	"flag"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/SebastianignacioDS/camino-ahorro/internal/api"
	"github.com/SebastianignacioDS/camino-ahorro/internal/config"
	"github.com/SebastianignacioDS/camino-ahorro/internal/constants"
	"github.com/SebastianignacioDS/camino-ahorro/internal/logging"
	"github.com/SebastianignacioDS/camino-ahorro/internal/storage"
	"github.com/SebastianignacioDS/camino-ahorro/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (optional)")
	flag.Parse()

	// CAMINO_CONFIG keeps container deployments working without flags.
	path := *configPath
	if path == "" {
		path = os.Getenv("CAMINO_CONFIG")
	}

	cfg, err := config.Load(path)
	if err != nil {
		logging.Fatal("Missing or invalid configuration", err, logging.Fields{"config_path": path})
	}
	logging.Configure(cfg.Log.Level)
	defer logging.Sync()

	db, err := storage.OpenAndMigrate(cfg.Database.Path)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}

	repo := storage.NewSQLiteRepository(db, cfg.Session.RecentTTL)
	handler := api.NewSessionHandler(repo, cfg.Session.InactivityTimeout)

	workerID := uuid.NewString()
	startTimeoutScanner(repo, workerID)

	router := gin.Default()
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteRecentSessions, handler.ListRecentSessions)
		apiRoutes.GET(constants.RouteLeaderboard, handler.Leaderboard)

		apiRoutes.POST(constants.RouteSessions, handler.CreateSession)
		apiRoutes.GET(constants.RouteSessionByCode, handler.GetSession)
		apiRoutes.POST(constants.RouteSessionChoice, handler.ChooseInitial)
		apiRoutes.POST(constants.RouteSessionAck, handler.Acknowledge)
		apiRoutes.POST(constants.RouteSessionToggle, handler.ToggleOption)
		apiRoutes.POST(constants.RouteSessionInvest, handler.SetInvestmentAmount)
		apiRoutes.POST(constants.RouteSessionConfirm, handler.ConfirmSelections)
		apiRoutes.POST(constants.RouteSessionNextEvent, handler.AdvanceEvent)
		apiRoutes.POST(constants.RouteSessionNextRound, handler.AdvanceRound)
		apiRoutes.POST(constants.RouteSessionEnd, handler.EndSession)
	}

	logging.Info("Server started", logging.Fields{
		constants.LogFieldAddr:     cfg.Server.Address,
		constants.LogFieldWorkerID: workerID,
		"version":                  version.String(),
	})
	if err := router.Run(cfg.Server.Address); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
