package main

import (
	"context"
	"log"

	"synapsex-be/internal/config"
	"synapsex-be/internal/pkg/logger"
	"synapsex-be/internal/repository/unitofwork"
	"synapsex-be/internal/service"
	"synapsex-be/pkg/database"
)

// One-shot sweep of long-expired stories, suitable for cron. The rest server
// runs the same sweep on an interval; this exists for deployments that
// prefer external scheduling.
func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	reaper := service.NewReaperService(uowFactory, nil, sysLogger, cfg.Story.Retention, cfg.Story.ReaperInterval)

	removed, err := reaper.SweepOnce(context.Background())
	if err != nil {
		log.Fatalf("Sweep failed: %v", err)
	}
	log.Printf("Sweep complete: %d stories removed", removed)
}
