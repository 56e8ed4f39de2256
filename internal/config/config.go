// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// tic-tac-toe server and its terminal client. It aggregates all
// sub-configurations and is populated by merging values from environment
// variables, command-line flags, an optional JSON file and the defaults.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters, the
	// request integrity key and the application version.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds configuration for the move journal database and the
	// Redis move cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Engine holds the min-max search depth limits.
	Engine Engine `envPrefix:"ENGINE_"`

	// Model holds the location of the regression models.
	Model Model `envPrefix:"MODEL_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Adapter holds the server address used by the terminal client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Game holds the terminal client game settings.
	Game Game `envPrefix:"GAME_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Authentication is disabled when it is empty.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the HMAC key of the HashSHA256 request integrity header.
	// The check is disabled when it is empty.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server. The gRPC
	// server is not started when it is empty.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration of the persistence backends.
type Storage struct {
	// DB holds the move journal database settings.
	DB DB `envPrefix:"DB_"`

	// Redis holds the move cache settings.
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds connection settings for the move journal.
type DB struct {
	// DSN selects the driver by its form: "postgres://" and "postgresql://"
	// URLs and key=value strings open PostgreSQL, "sqlite://", "file:" and
	// paths ending in ".db" open SQLite. The journal is disabled when empty.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Redis holds the move cache connection settings.
type Redis struct {
	// Address is the Redis "host:port". The cache is disabled when empty.
	// Env: STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS"`

	// Password is the optional Redis AUTH password.
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`

	// DB is the Redis logical database number.
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`

	// TTL is how long a computed move stays cached.
	// Env: STORAGE_REDIS_TTL
	TTL time.Duration `env:"TTL"`
}

// Engine holds the min-max search depth limit for every board size.
type Engine struct {
	// Env: ENGINE_DEPTH_LIMIT_3X3
	DepthLimit3x3 int `env:"DEPTH_LIMIT_3X3"`
	// Env: ENGINE_DEPTH_LIMIT_4X4
	DepthLimit4x4 int `env:"DEPTH_LIMIT_4X4"`
	// Env: ENGINE_DEPTH_LIMIT_5X5
	DepthLimit5x5 int `env:"DEPTH_LIMIT_5X5"`
}

// Model holds the regression model settings.
type Model struct {
	// Dir is the directory holding network_NxN.json model files.
	// Env: MODEL_DIR
	Dir string `env:"DIR"`

	// RemoteAddress is the base URL of a model server. When set it replaces
	// the local model files.
	// Env: MODEL_REMOTE_ADDRESS
	RemoteAddress string `env:"REMOTE_ADDRESS"`

	// RemoteTimeout bounds a single prediction call to the model server.
	// Env: MODEL_REMOTE_TIMEOUT
	RemoteTimeout time.Duration `env:"REMOTE_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RetentionPeriod is how long journal entries are kept. Pruning is
	// disabled when it is zero.
	// Env: WORKERS_RETENTION_PERIOD
	RetentionPeriod time.Duration `env:"RETENTION_PERIOD"`

	// PruneInterval is how often the journal is pruned.
	// Env: WORKERS_PRUNE_INTERVAL
	PruneInterval time.Duration `env:"PRUNE_INTERVAL"`
}

// Adapter holds the terminal client transport settings.
type Adapter struct {
	// HTTPAddress is the base URL of the move server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of a single move request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Game holds the terminal client game settings.
type Game struct {
	// Engine is "min-max" or "neural-network".
	// Env: GAME_ENGINE
	Engine string `env:"ENGINE"`

	// GridSize is the board edge length (3, 4 or 5).
	// Env: GAME_GRID_SIZE
	GridSize int `env:"GRID_SIZE"`

	// HumanPlayer is 1 to play X and move first, 2 to play O.
	// Env: GAME_HUMAN_PLAYER
	HumanPlayer int `env:"HUMAN_PLAYER"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (the first source that sets a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
