// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-tic-tac-toe/internal/config"
	"github.com/MKhiriev/go-tic-tac-toe/internal/logger"
	"github.com/MKhiriev/go-tic-tac-toe/internal/utils"
	"github.com/MKhiriev/go-tic-tac-toe/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPosition = models.Position{Grid: "100000000", GridSize: 3, MovingPlayer: models.PlayerO}

// newTestAdapter creates an httpMoveAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string, appCfg config.ClientApp) *httpMoveAdapter {
	t.Helper()
	a, err := NewHTTPMoveAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpMoveAdapter)
}

// ── NewHTTPMoveAdapter ──────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://example.com/ ", want: "https://example.com"},
		{raw: "http://127.0.0.1:9000/api/", want: "http://127.0.0.1:9000/api"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPMoveAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPMoveAdapter(config.ClientAdapter{}, config.ClientApp{}, logger.Nop())
	assert.Error(t, err)
}

// ── NextMove ────────────────────────────────────────────────────────────────

func TestNextMove_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/tic-tac-toe/min-max", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get(traceIDHeader))
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get(utils.HashHeader))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "100000000", body["grid"])
		assert.EqualValues(t, 3, body["grid_size"])
		assert.EqualValues(t, 2, body["moving_player"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"move":4}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.ClientApp{})
	move, err := a.NextMove(context.Background(), models.EngineMinMax, testPosition)

	require.NoError(t, err)
	assert.Equal(t, 4, move)
}

func TestNextMove_SignsAndHashes(t *testing.T) {
	const (
		signKey = "sign-key"
		issuer  = "go-tic-tac-toe"
		hashKey = "hash-key"
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		require.NoError(t, err)
		token, err := utils.ValidateAndParseJWTToken(raw, signKey, issuer)
		require.NoError(t, err)
		assert.Equal(t, clientID, token.ClientID)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.True(t, utils.NewHasher(hashKey).Verify(body, r.Header.Get(utils.HashHeader)))

		_, _ = w.Write([]byte(`{"move":0}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.ClientApp{TokenSignKey: signKey, TokenIssuer: issuer, HashKey: hashKey})
	_, err := a.NextMove(context.Background(), models.EngineNeuralNetwork, testPosition)
	require.NoError(t, err)
}

func TestNextMove_PropagatesTraceID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trace-42", r.Header.Get(traceIDHeader))
		_, _ = w.Write([]byte(`{"move":1}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.ClientApp{})
	_, err := a.NextMove(utils.WithTraceID(context.Background(), "trace-42"), models.EngineMinMax, testPosition)
	require.NoError(t, err)
}

func TestNextMove_HTTPErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "bad request text", status: http.StatusBadRequest, body: "integrity check failed", wantErr: ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, body: "token expired", wantErr: ErrUnauthorized},
		{name: "unknown engine", status: http.StatusNotFound, body: "unknown engine", wantErr: ErrNotFound},
		{name: "board full", status: http.StatusUnprocessableEntity, body: "board has no free cells", wantErr: ErrBoardFull},
		{name: "engine unavailable", status: http.StatusServiceUnavailable, wantErr: ErrEngineUnavailable},
		{name: "timeout", status: http.StatusGatewayTimeout, wantErr: ErrTimeout},
		{name: "internal", status: http.StatusInternalServerError, body: "Internal Server Error", wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, config.ClientApp{})
			_, err := a.NextMove(context.Background(), models.EngineMinMax, testPosition)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNextMove_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.ClientApp{})
	_, err := a.NextMove(context.Background(), models.EngineMinMax, testPosition)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestNextMove_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"grid":"Invalid grid","moving_player":"Invalid moving player"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.ClientApp{})
	_, err := a.NextMove(context.Background(), models.EngineMinMax, testPosition)

	var rejected *RequestRejectedError
	require.True(t, errors.As(err, &rejected))
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "Invalid grid", rejected.Errors["grid"])
	assert.Equal(t, "request rejected: grid: Invalid grid; moving_player: Invalid moving player", err.Error())
}

func TestNextMove_MoveOutsideBoard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"move":9}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.ClientApp{})
	_, err := a.NextMove(context.Background(), models.EngineMinMax, testPosition)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestNextMove_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url, config.ClientApp{})
	_, err := a.NextMove(context.Background(), models.EngineMinMax, testPosition)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "move request")
}

// ── ServerVersion ───────────────────────────────────────────────────────────

func TestServerVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/version/", r.URL.Path)
		_, _ = w.Write([]byte("1.4.0\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, config.ClientApp{})
	got, err := a.ServerVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.0", got)
}
