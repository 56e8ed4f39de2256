// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-tic-tac-toe/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInit_RegistersAllRoutes(t *testing.T) {
	h, m := newTestHandler(t, nil)
	router := h.Init()

	m.move.EXPECT().NextMove(gomock.Any(), models.EngineMinMax, gomock.Any()).Return(models.MoveResult{Move: 4}, nil)
	m.move.EXPECT().NextMove(gomock.Any(), models.EngineNeuralNetwork, gomock.Any()).Return(models.MoveResult{Move: 2}, nil)
	m.history.EXPECT().ListMoves(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/tic-tac-toe/min-max"},
		{http.MethodPost, "/tic-tac-toe/neural-network"},
		{http.MethodGet, "/api/moves/"},
		{http.MethodGet, "/api/version/"},
	}

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader("{}"))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tic-tac-toe/random", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h, _ := newTestHandler(t, nil)
	router := h.Init()

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/tic-tac-toe/min-max"},
		{http.MethodPut, "/tic-tac-toe/neural-network"},
		{http.MethodPost, "/api/version/"},
		{http.MethodDelete, "/api/moves/"},
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestInit_AuthGuardsMoveAndJournalRoutes(t *testing.T) {
	cfg := testConfig()
	cfg.App.TokenSignKey = "sign-key"
	h, m := newTestHandler(t, cfg)
	router := h.Init()

	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	for _, tc := range []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodPost, "/tic-tac-toe/min-max", http.StatusUnauthorized},
		{http.MethodPost, "/tic-tac-toe/neural-network", http.StatusUnauthorized},
		{http.MethodGet, "/api/moves/", http.StatusUnauthorized},
		{http.MethodGet, "/api/version/", http.StatusOK},
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

		assert.Equal(t, tc.want, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestInit_HashGuardsMoveRoutesOnly(t *testing.T) {
	cfg := testConfig()
	cfg.App.HashKey = "hash-key"
	h, m := newTestHandler(t, cfg)
	router := h.Init()

	m.history.EXPECT().ListMoves(gomock.Any(), gomock.Any()).Return(nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/tic-tac-toe/min-max", strings.NewReader("{}")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/moves/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestInit_CompressesResponses(t *testing.T) {
	h, m := newTestHandler(t, nil)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}
