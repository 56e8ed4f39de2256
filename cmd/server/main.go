// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-tic-tac-toe/internal/config"
	"github.com/MKhiriev/go-tic-tac-toe/internal/handler"
	"github.com/MKhiriev/go-tic-tac-toe/internal/logger"
	"github.com/MKhiriev/go-tic-tac-toe/internal/server"
	"github.com/MKhiriev/go-tic-tac-toe/internal/service"
	"github.com/MKhiriev/go-tic-tac-toe/internal/store"
	"github.com/MKhiriev/go-tic-tac-toe/internal/workers"
	"github.com/MKhiriev/go-tic-tac-toe/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("tic-tac-toe-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	// a linked build version replaces the default one
	if cfg.App.Version == "dev" && buildInfo.Linked() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Bool("journal", cfg.Storage.DB.DSN != "").
		Bool("cache", cfg.Storage.Redis.Address != "").
		Msg("received configs")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	engines, err := service.NewEngines(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating engines")
	}

	services, err := service.NewServices(storages, engines, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var wg sync.WaitGroup
	wg.Go(func() {
		workers.NewWorkers(services, cfg.Workers, log).Run(ctx)
	})

	if err := srv.Run(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
	stop()
	wg.Wait()
}
