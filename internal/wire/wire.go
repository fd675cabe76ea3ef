// Package wire provides dependency injection for the rush application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"os"
	"sync"

	"github.com/example/rush/internal/adapters/sqlite"
	"github.com/example/rush/internal/app"
	"github.com/example/rush/internal/config"
	"github.com/example/rush/internal/db"
	"github.com/example/rush/internal/ports/primary"
)

var (
	simulationService primary.SimulationService
	runService        primary.RunService
	cfg               *config.Config
	once              sync.Once
)

// SimulationService returns the singleton SimulationService instance.
func SimulationService() primary.SimulationService {
	once.Do(initServices)
	return simulationService
}

// RunService returns the singleton RunService instance.
func RunService() primary.RunService {
	once.Do(initServices)
	return runService
}

// Config returns the loaded game configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	cfg, err = config.LoadConfig(cwd)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	runRepo := sqlite.NewRunRepository(database)

	simulationService = app.NewSimulationService(runRepo, cfg)
	runService = app.NewRunService(runRepo)
}
