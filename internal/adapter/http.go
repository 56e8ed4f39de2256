// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-tic-tac-toe/internal/config"
	"github.com/MKhiriev/go-tic-tac-toe/internal/logger"
	"github.com/MKhiriev/go-tic-tac-toe/internal/utils"
	"github.com/MKhiriev/go-tic-tac-toe/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	// clientID is the "sub" claim of the bearer tokens the client signs.
	clientID      = "terminal"
	tokenDuration = 5 * time.Minute

	traceIDHeader = "X-Trace-ID"
)

type httpMoveAdapter struct {
	client *utils.HTTPClient
	// hasher is nil when the integrity header is not sent.
	hasher *utils.Hasher

	tokenSignKey string
	tokenIssuer  string

	logger *logger.Logger
}

// NewHTTPMoveAdapter constructs an HTTP/REST implementation of [MoveAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the request timeout.
//
// A bearer token is signed for every request when appCfg.TokenSignKey is set,
// and the HashSHA256 header is attached when appCfg.HashKey is set.
func NewHTTPMoveAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (MoveAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpMoveAdapter{
		client:       utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		tokenSignKey: appCfg.TokenSignKey,
		tokenIssuer:  appCfg.TokenIssuer,
		logger:       logger,
	}
	if appCfg.HashKey != "" {
		a.hasher = utils.NewHasher(appCfg.HashKey)
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// NextMove implements [MoveAdapter]. It POSTs pos as JSON to
// POST /tic-tac-toe/<engine> and decodes the {"move": n} reply.
func (h *httpMoveAdapter) NextMove(ctx context.Context, engine models.Engine, pos models.Position) (int, error) {
	payload, err := json.Marshal(pos)
	if err != nil {
		return 0, fmt.Errorf("encode move request: %w", err)
	}

	req, err := h.request(ctx)
	if err != nil {
		return 0, err
	}
	if h.hasher != nil {
		req.SetHeader(utils.HashHeader, h.hasher.SumHex(payload))
	}

	var result models.MoveResponse
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&result).
		Post("/tic-tac-toe/" + url.PathEscape(engine.String()))
	if err != nil {
		return 0, fmt.Errorf("move request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	cells := pos.GridSize * pos.GridSize
	if result.Move < 0 || result.Move >= cells {
		return 0, fmt.Errorf("%w: move %d is outside of a %d-cell board", ErrInvalidResponse, result.Move, cells)
	}

	h.logger.Debug().
		Str("engine", engine.String()).
		Int("move", result.Move).
		Str("cached", resp.Header().Get("X-Move-Cached")).
		Dur("duration", resp.Time()).
		Msg("move received")

	return result.Move, nil
}

// ServerVersion implements [MoveAdapter]. It GETs /api/version/.
func (h *httpMoveAdapter) ServerVersion(ctx context.Context) (string, error) {
	req, err := h.request(ctx)
	if err != nil {
		return "", err
	}

	resp, err := req.Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// request prepares a request carrying the trace id of ctx (or a fresh one)
// and, when signing is enabled, a bearer token.
func (h *httpMoveAdapter) request(ctx context.Context) (*resty.Request, error) {
	traceID := utils.GetTraceIDFromContext(ctx)
	if traceID == "" {
		traceID = uuid.NewString()
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, traceID)

	if h.tokenSignKey != "" {
		token, err := utils.GenerateJWTToken(h.tokenIssuer, clientID, tokenDuration, h.tokenSignKey)
		if err != nil {
			return nil, fmt.Errorf("sign bearer token: %w", err)
		}
		req.SetAuthToken(token.SignedString)
	}

	return req, nil
}
