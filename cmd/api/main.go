package main

import (
	"fmt"
	"os"

	"summit/internal/config"
	"summit/internal/database"
	"summit/internal/logger"
	"summit/internal/router"

	"github.com/gin-gonic/gin"
)

// @title           Summit API
// @version         1.0
// @description     Summit tracks annual, monthly and weekly goals with progress rolled up the hierarchy, plus habits, daily reflections and a quotes library.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	r := router.New(dbManager.DB(), appConfig)

	log.Infow("Starting Summit server",
		"port", appConfig.Port,
		"driver", appConfig.DBDriver,
		"goal_delete_policy", appConfig.GoalDeletePolicy,
	)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return r.Run(":" + appConfig.Port)
}
