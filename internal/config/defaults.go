// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults returns the values used for every field no other source sets.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-tic-tac-toe",
			TokenDuration: 24 * time.Hour,
			Version:       "dev",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			Redis: Redis{TTL: time.Hour},
		},
		Engine: Engine{
			DepthLimit3x3: 10,
			DepthLimit4x4: 5,
			DepthLimit5x5: 3,
		},
		Model: Model{
			Dir:           "./models",
			RemoteTimeout: 5 * time.Second,
		},
		Workers: Workers{
			PruneInterval: time.Hour,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Game: Game{
			Engine:      "min-max",
			GridSize:    3,
			HumanPlayer: 1,
		},
	}
}
