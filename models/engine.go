// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Engine names the move generator a request is routed to. The value is the
// last segment of the HTTP route and is also stored in the move journal.
type Engine string

const (
	// EngineMinMax is the depth-limited tree search.
	EngineMinMax Engine = "min-max"
	// EngineNeuralNetwork is the trained regression scorer.
	EngineNeuralNetwork Engine = "neural-network"
)

// Engines lists every engine the server knows about, in route order.
var Engines = []Engine{EngineMinMax, EngineNeuralNetwork}

// IsValid reports whether e is one of [Engines].
func (e Engine) IsValid() bool {
	for _, known := range Engines {
		if e == known {
			return true
		}
	}
	return false
}

func (e Engine) String() string {
	return string(e)
}
