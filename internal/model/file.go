// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	invopop "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// File is the on-disk form of a [Network].
type File struct {
	GridSize int         `json:"grid_size" jsonschema:"enum=3,enum=4,enum=5"`
	Layers   []LayerFile `json:"layers" jsonschema:"minItems=1"`
}

// LayerFile is one dense layer. Weights are indexed [output][input].
type LayerFile struct {
	Weights    [][]float64 `json:"weights" jsonschema:"minItems=1"`
	Biases     []float64   `json:"biases" jsonschema:"minItems=1"`
	Activation Activation  `json:"activation" jsonschema:"enum=relu,enum=identity,enum=tanh,enum=logistic"`
}

const fileSchemaURL = "model-file.schema.json"

var fileSchema = sync.OnceValues(compileFileSchema)

// FileSchema returns the JSON schema model files are validated against.
func FileSchema() ([]byte, error) {
	r := &invopop.Reflector{Anonymous: true, DoNotReference: true}
	return json.MarshalIndent(r.Reflect(&File{}), "", "  ")
}

func compileFileSchema() (*jsonschema.Schema, error) {
	raw, err := FileSchema()
	if err != nil {
		return nil, fmt.Errorf("reflect model file schema: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode model file schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err = c.AddResource(fileSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add model file schema: %w", err)
	}
	return c.Compile(fileSchemaURL)
}

// Decode reads a model file from r, validates it against [FileSchema] and
// builds the network.
func Decode(r io.Reader) (*Network, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read model file: %w", err)
	}

	schema, err := fileSchema()
	if err != nil {
		return nil, err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}
	if err = schema.Validate(inst); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}

	var f File
	if err = json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}
	return NewNetwork(f)
}

// Load decodes the model file at path.
func Load(path string) (*Network, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	n, err := Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return n, nil
}

// NewNetwork checks that the layers of f chain together, from one input
// per cell to the three outcome values, and builds the network.
func NewNetwork(f File) (*Network, error) {
	if f.GridSize < 3 || f.GridSize > 5 {
		return nil, fmt.Errorf("%w: grid size %d", ErrInvalidModel, f.GridSize)
	}
	if len(f.Layers) == 0 {
		return nil, fmt.Errorf("%w: no layers", ErrInvalidModel)
	}

	n := &Network{gridSize: f.GridSize, layers: make([]layer, len(f.Layers))}

	in := f.GridSize * f.GridSize
	for i, lf := range f.Layers {
		if len(lf.Weights) != len(lf.Biases) {
			return nil, fmt.Errorf("%w: layer %d has %d weight rows and %d biases",
				ErrInvalidModel, i, len(lf.Weights), len(lf.Biases))
		}
		for j, row := range lf.Weights {
			if len(row) != in {
				return nil, fmt.Errorf("%w: layer %d row %d has %d weights, want %d",
					ErrInvalidModel, i, j, len(row), in)
			}
		}

		activation := lf.Activation
		if activation == "" {
			activation = ActivationReLU
			if i == len(f.Layers)-1 {
				activation = ActivationIdentity
			}
		}

		n.layers[i] = layer{weights: lf.Weights, biases: lf.Biases, activation: activation}
		in = len(lf.Biases)
	}

	if in != outputSize {
		return nil, fmt.Errorf("%w: network has %d outputs, want %d", ErrInvalidModel, in, outputSize)
	}
	return n, nil
}
