// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the operational gRPC surface of the move server: the
// standard health service and server reflection.
package grpc

import (
	"github.com/MKhiriev/go-tic-tac-toe/internal/logger"
	"github.com/MKhiriev/go-tic-tac-toe/internal/service"
	"github.com/MKhiriev/go-tic-tac-toe/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// MoveServiceName is the health service name of the move endpoints. Every
// engine is also reported under "<MoveServiceName>/<engine>".
const MoveServiceName = "tictactoe.MoveService"

// Handler is the root gRPC transport handler.
//
// A handler instance is created once at startup and shared by the gRPC
// server. Its health status starts as NOT_SERVING and follows the server
// lifecycle through [Handler.SetServing].
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.SetServing(false)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health and reflection services to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	reflection.Register(server)
}

// SetServing flips every reported service between SERVING and NOT_SERVING.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	for _, name := range serviceNames() {
		h.health.SetServingStatus(name, status)
	}
	h.logger.Info().Str("status", status.String()).Msg("gRPC health status changed")
}

// Shutdown marks every service NOT_SERVING permanently; later SetServing
// calls are ignored.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func serviceNames() []string {
	names := []string{"", MoveServiceName}
	for _, engine := range models.Engines {
		names = append(names, MoveServiceName+"/"+engine.String())
	}
	return names
}
