// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package model

import (
	"context"
	"fmt"
	"math"
)

// Output positions of a network prediction.
const (
	OutputDraw = iota
	OutputXWins
	OutputOWins

	outputSize
)

// Activation is the function applied to the output of a layer.
type Activation string

const (
	ActivationReLU     Activation = "relu"
	ActivationIdentity Activation = "identity"
	ActivationTanh     Activation = "tanh"
	ActivationLogistic Activation = "logistic"
)

func (a Activation) apply(v []float64) {
	switch a {
	case ActivationReLU:
		for i, x := range v {
			if x < 0 {
				v[i] = 0
			}
		}
	case ActivationTanh:
		for i, x := range v {
			v[i] = math.Tanh(x)
		}
	case ActivationLogistic:
		for i, x := range v {
			v[i] = 1 / (1 + math.Exp(-x))
		}
	}
}

type layer struct {
	weights    [][]float64 // [out][in]
	biases     []float64
	activation Activation
}

// Network is a trained multi-layer perceptron. It maps a board, one input
// per cell (0 free, 1 X, 2 O), to the expected outcome [draw, X wins,
// O wins]. A Network is read-only and safe for concurrent use.
type Network struct {
	gridSize int
	layers   []layer
}

// GridSize returns the edge length of the boards the network was trained on.
func (n *Network) GridSize() int {
	return n.gridSize
}

// Forward runs a single input vector through the network.
func (n *Network) Forward(input []float64) ([]float64, error) {
	if len(input) != n.gridSize*n.gridSize {
		return nil, fmt.Errorf("%w: got %d inputs, want %d", ErrShapeMismatch, len(input), n.gridSize*n.gridSize)
	}

	v := input
	for _, l := range n.layers {
		out := make([]float64, len(l.biases))
		for j, row := range l.weights {
			sum := l.biases[j]
			for k, w := range row {
				sum += w * v[k]
			}
			out[j] = sum
		}
		l.activation.apply(out)
		v = out
	}

	return v, nil
}

// Predict implements [Predictor].
func (n *Network) Predict(ctx context.Context, inputs [][]float64) ([][]float64, error) {
	outputs := make([][]float64, len(inputs))
	for i, in := range inputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out, err := n.Forward(in)
		if err != nil {
			return nil, err
		}
		outputs[i] = out
	}
	return outputs, nil
}
