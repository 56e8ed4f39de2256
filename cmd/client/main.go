// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-tic-tac-toe/internal/adapter"
	"github.com/MKhiriev/go-tic-tac-toe/internal/client"
	"github.com/MKhiriev/go-tic-tac-toe/internal/config"
	"github.com/MKhiriev/go-tic-tac-toe/internal/logger"
	"github.com/MKhiriev/go-tic-tac-toe/internal/tui"
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

	log := logger.NewClientLogger("tic-tac-toe-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	moveAdapter, err := adapter.NewHTTPMoveAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create move adapter")
	}

	ui := tui.New(moveAdapter, cfg.Game, buildInfo, log)

	app, err := client.NewApp(moveAdapter, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
