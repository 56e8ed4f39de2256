// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// inconsistent.
var (
	// ErrInvalidServerConfigs indicates invalid server transport settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid journal or cache settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidEngineConfigs indicates invalid min-max depth limits.
	ErrInvalidEngineConfigs = errors.New("invalid engine configuration")
	// ErrInvalidModelConfigs indicates invalid regression model settings.
	ErrInvalidModelConfigs = errors.New("invalid model configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a retention period without a prune interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidGameConfigs indicates an unknown engine, board size or
	// player in the client game settings.
	ErrInvalidGameConfigs = errors.New("invalid game configuration")
)
