// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the layout of the JSON configuration file.
// Durations are written as strings such as "30s" or "1h".
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		HashKey       string   `json:"hash_key"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string   `json:"address"`
			Password string   `json:"password"`
			DB       int      `json:"db"`
			TTL      Duration `json:"ttl"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Engine struct {
		DepthLimit3x3 int `json:"depth_limit_3x3"`
		DepthLimit4x4 int `json:"depth_limit_4x4"`
		DepthLimit5x5 int `json:"depth_limit_5x5"`
	} `json:"engine,omitempty"`

	Model struct {
		Dir           string   `json:"dir"`
		RemoteAddress string   `json:"remote_address"`
		RemoteTimeout Duration `json:"remote_timeout"`
	} `json:"model,omitempty"`

	Workers struct {
		RetentionPeriod Duration `json:"retention_period"`
		PruneInterval   Duration `json:"prune_interval"`
	} `json:"workers,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Game struct {
		Engine      string `json:"engine"`
		GridSize    int    `json:"grid_size"`
		HumanPlayer int    `json:"human_player"`
	} `json:"game,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			HashKey:       jsonCfg.App.HashKey,
			Version:       jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
				TTL:      time.Duration(jsonCfg.Storage.Redis.TTL),
			},
		},
		Engine: Engine{
			DepthLimit3x3: jsonCfg.Engine.DepthLimit3x3,
			DepthLimit4x4: jsonCfg.Engine.DepthLimit4x4,
			DepthLimit5x5: jsonCfg.Engine.DepthLimit5x5,
		},
		Model: Model{
			Dir:           jsonCfg.Model.Dir,
			RemoteAddress: jsonCfg.Model.RemoteAddress,
			RemoteTimeout: time.Duration(jsonCfg.Model.RemoteTimeout),
		},
		Workers: Workers{
			RetentionPeriod: time.Duration(jsonCfg.Workers.RetentionPeriod),
			PruneInterval:   time.Duration(jsonCfg.Workers.PruneInterval),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Game: Game{
			Engine:      jsonCfg.Game.Engine,
			GridSize:    jsonCfg.Game.GridSize,
			HumanPlayer: jsonCfg.Game.HumanPlayer,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
