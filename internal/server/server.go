// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-tic-tac-toe/internal/config"
	"github.com/MKhiriev/go-tic-tac-toe/internal/handler"
	"github.com/MKhiriev/go-tic-tac-toe/internal/logger"
	"golang.org/x/sync/errgroup"
)

type server struct {
	cfg config.Server

	httpServer *httpServer
	gRPCServer *grpcServer

	shutdownOnce sync.Once
	stopped      chan struct{}
	logger       *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{cfg: cfg, stopped: make(chan struct{}), logger: logger}

	if cfg.HTTPAddress != "" {
		if handlers.HTTP == nil {
			return nil, fmt.Errorf("%w: HTTP", errMissingHandler)
		}
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		if handlers.GRPC == nil {
			return nil, fmt.Errorf("%w: gRPC", errMissingHandler)
		}
		servers.gRPCServer = newGRPCServer(handlers.GRPC, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Run(ctx context.Context) error {
	listeners, err := s.listen()
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	if lis, ok := listeners["http"]; ok {
		g.Go(func() error { return s.httpServer.serve(lis) })
	}
	if lis, ok := listeners["grpc"]; ok {
		g.Go(func() error { return s.gRPCServer.serve(lis) })
	}

	// a server failing early cancels gctx and stops the others
	g.Go(func() error {
		select {
		case <-gctx.Done():
			s.Shutdown()
		case <-s.stopped:
		}
		return nil
	})

	err = g.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")
	return err
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		defer close(s.stopped)

		// report NOT_SERVING before HTTP drains
		if s.gRPCServer != nil {
			s.gRPCServer.handler.Shutdown()
		}
		if s.httpServer != nil {
			s.httpServer.Shutdown()
		}
		if s.gRPCServer != nil {
			s.gRPCServer.Shutdown()
		}
	})
}

// listen opens every configured address up front, so that a busy port is
// reported before anything is served.
func (s *server) listen() (map[string]net.Listener, error) {
	listeners := make(map[string]net.Listener, 2)
	closeAll := func() {
		for _, lis := range listeners {
			lis.Close()
		}
	}

	if s.httpServer != nil {
		lis, err := net.Listen("tcp", s.cfg.HTTPAddress)
		if err != nil {
			return nil, fmt.Errorf("error listening HTTP address %s: %w", s.cfg.HTTPAddress, err)
		}
		listeners["http"] = lis
	}
	if s.gRPCServer != nil {
		lis, err := net.Listen("tcp", s.cfg.GRPCAddress)
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("error listening gRPC address %s: %w", s.cfg.GRPCAddress, err)
		}
		listeners["grpc"] = lis
	}

	return listeners, nil
}
