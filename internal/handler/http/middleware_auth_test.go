// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-tic-tac-toe/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "go-tic-tac-toe"
)

func newAuthHandler(t *testing.T) *Handler {
	t.Helper()
	cfg := testConfig()
	cfg.App.TokenSignKey = testSignKey
	cfg.App.TokenIssuer = testIssuer
	h, _ := newTestHandler(t, cfg)
	return h
}

func signedToken(t *testing.T, issuer, key string, d time.Duration) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(issuer, "player-1", d, key)
	require.NoError(t, err)
	return token.SignedString
}

// expiredToken signs claims that expired a minute ago. GenerateJWTToken
// refuses non-positive durations, so the claims are built by hand.
func expiredToken(t *testing.T, issuer, key string) string {
	t.Helper()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   "player-1",
		IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
	})
	signed, err := token.SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

func TestAuth_Middleware_TableTest(t *testing.T) {
	h := newAuthHandler(t)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
		wantNext   bool
	}{
		{
			name:       "valid token",
			header:     "Bearer " + signedToken(t, testIssuer, testSignKey, time.Hour),
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "lower-case scheme",
			header:     "bearer " + signedToken(t, testIssuer, testSignKey, time.Hour),
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
			wantBody:   ErrEmptyAuthorizationHeader.Error(),
		},
		{
			name:       "no scheme",
			header:     signedToken(t, testIssuer, testSignKey, time.Hour),
			wantStatus: http.StatusUnauthorized,
			wantBody:   ErrInvalidAuthorizationHeader.Error(),
		},
		{
			name:       "basic scheme",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantBody:   ErrInvalidAuthorizationHeader.Error(),
		},
		{
			name:       "expired token",
			header:     "Bearer " + expiredToken(t, testIssuer, testSignKey),
			wantStatus: http.StatusUnauthorized,
			wantBody:   ErrTokenExpired.Error(),
		},
		{
			name:       "foreign key",
			header:     "Bearer " + signedToken(t, testIssuer, "other-key", time.Hour),
			wantStatus: http.StatusUnauthorized,
			wantBody:   ErrInvalidToken.Error(),
		},
		{
			name:       "foreign issuer",
			header:     "Bearer " + signedToken(t, "someone-else", testSignKey, time.Hour),
			wantStatus: http.StatusUnauthorized,
			wantBody:   ErrInvalidToken.Error(),
		},
		{
			name:       "garbage token",
			header:     "Bearer not.a.jwt",
			wantStatus: http.StatusUnauthorized,
			wantBody:   ErrInvalidToken.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				nextCalled bool
				clientID   string
			)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				clientID, _ = utils.GetClientIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/tic-tac-toe/min-max", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantNext {
				assert.Equal(t, "player-1", clientID)
			}
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody+"\n", rec.Body.String())
			}
		})
	}
}
