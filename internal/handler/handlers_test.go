// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/MKhiriev/go-tic-tac-toe/internal/config"
	"github.com/MKhiriev/go-tic-tac-toe/internal/logger"
	"github.com/MKhiriev/go-tic-tac-toe/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(httpAddress, grpcAddress string) *config.StructuredConfig {
	cfg := config.Defaults()
	cfg.Server.HTTPAddress = httpAddress
	cfg.Server.GRPCAddress = grpcAddress
	return cfg
}

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		http     string
		grpc     string
		wantHTTP bool
		wantGRPC bool
	}{
		{name: "both addresses", http: ":8080", grpc: ":9090", wantHTTP: true, wantGRPC: true},
		{name: "only HTTP", http: ":8080", wantHTTP: true},
		{name: "only gRPC", grpc: ":9090", wantGRPC: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(&service.Services{}, testConfig(tt.http, tt.grpc), logger.Nop())

			require.NoError(t, err)
			require.NotNil(t, h)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}

func TestNewHandlers_NoAddresses(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, testConfig("", ""), logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := testConfig(":8080", ":9090")

	h1, err1 := NewHandlers(&service.Services{}, cfg, logger.Nop())
	h2, err2 := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
	assert.NotSame(t, h1.GRPC, h2.GRPC)
}
