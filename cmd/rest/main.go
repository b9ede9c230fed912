package main

import (
	"context"
	"log"

	"synapsex-be/internal/bootstrap"
	"synapsex-be/internal/config"
	"synapsex-be/internal/server"
	"synapsex-be/internal/tracer"
	"synapsex-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	// Background sweep of long-expired stories
	go container.ReaperService.Run(context.Background())

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
