// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package model

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-tic-tac-toe/internal/utils"
)

const predictPath = "/v1/predict"

type predictRequest struct {
	Inputs [][]float64 `json:"inputs"`
}

type predictResponse struct {
	Outputs [][]float64 `json:"outputs"`
}

// RemotePredictor is a [Predictor] served by a model server over HTTP.
type RemotePredictor struct {
	client *utils.HTTPClient
}

// NewRemotePredictor returns a predictor posting to baseURL + /v1/predict.
func NewRemotePredictor(baseURL string, timeout time.Duration) *RemotePredictor {
	return &RemotePredictor{client: utils.NewHTTPClient(baseURL, timeout)}
}

// Predict implements [Predictor].
func (r *RemotePredictor) Predict(ctx context.Context, inputs [][]float64) ([][]float64, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(predictRequest{Inputs: inputs}).
		Post(predictPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemotePredictor, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrRemotePredictor, resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	var pr predictResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrRemotePredictor, err)
	}
	return pr.Outputs, nil
}
