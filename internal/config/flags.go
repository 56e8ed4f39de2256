// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the command-line flags of the running program.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-d journal database DSN
//	-redis-address redis address in format [host]:[port]
//	-redis-password redis password
//	-redis-db redis database number
//	-cache-ttl move cache TTL (e.g., "1h")
//	-depth-3x3, -depth-4x4, -depth-5x5 min-max depth limits
//	-model-dir directory with network_NxN.json files
//	-model-address remote model server URL
//	-model-timeout remote model request timeout
//	-retention journal retention period
//	-prune-interval journal prune interval
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-hash-key request integrity hash key
//	-server move server URL used by the client
//	-client-timeout client request timeout
//	-engine client engine ("min-max" or "neural-network")
//	-size client board size
//	-player client human player (1 or 2)
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[0], os.Args[1:])
}

func parseFlags(name string, args []string) (*StructuredConfig, error) {
	var (
		cfg                            StructuredConfig
		serverAddress, grpcAddress     NetAddress
		redisAddress                   NetAddress
		depth3, depth4, depth5         int
		tokenDuration, requestTimeout  time.Duration
		cacheTTL, modelTimeout         time.Duration
		retention, pruneInterval       time.Duration
		clientTimeout                  time.Duration
		gridSize, humanPlayer, redisDB int
	)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcAddress, "grpc-address", "Net grpc server address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Journal database DSN")
	fs.Var(&redisAddress, "redis-address", "Redis address host:port")
	fs.StringVar(&cfg.Storage.Redis.Password, "redis-password", "", "Redis password")
	fs.IntVar(&redisDB, "redis-db", 0, "Redis database number")
	fs.DurationVar(&cacheTTL, "cache-ttl", 0, "Move cache TTL (e.g., 1h)")

	fs.IntVar(&depth3, "depth-3x3", 0, "Min-max depth limit for 3x3 boards")
	fs.IntVar(&depth4, "depth-4x4", 0, "Min-max depth limit for 4x4 boards")
	fs.IntVar(&depth5, "depth-5x5", 0, "Min-max depth limit for 5x5 boards")

	fs.StringVar(&cfg.Model.Dir, "model-dir", "", "Directory with model files")
	fs.StringVar(&cfg.Model.RemoteAddress, "model-address", "", "Remote model server URL")
	fs.DurationVar(&modelTimeout, "model-timeout", 0, "Remote model request timeout")

	fs.DurationVar(&retention, "retention", 0, "Journal retention period")
	fs.DurationVar(&pruneInterval, "prune-interval", 0, "Journal prune interval")

	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "Request integrity hash key")

	fs.StringVar(&cfg.Adapter.HTTPAddress, "server", "", "Move server URL")
	fs.DurationVar(&clientTimeout, "client-timeout", 0, "Client request timeout")
	fs.StringVar(&cfg.Game.Engine, "engine", "", "Engine: min-max or neural-network")
	fs.IntVar(&gridSize, "size", 0, "Board size: 3, 4 or 5")
	fs.IntVar(&humanPlayer, "player", 0, "Human player: 1 (X) or 2 (O)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server = Server{
		HTTPAddress:    serverAddress.String(),
		GRPCAddress:    grpcAddress.String(),
		RequestTimeout: requestTimeout,
	}
	cfg.Storage.Redis.Address = redisAddress.String()
	cfg.Storage.Redis.DB = redisDB
	cfg.Storage.Redis.TTL = cacheTTL
	cfg.Engine = Engine{DepthLimit3x3: depth3, DepthLimit4x4: depth4, DepthLimit5x5: depth5}
	cfg.Model.RemoteTimeout = modelTimeout
	cfg.Workers = Workers{RetentionPeriod: retention, PruneInterval: pruneInterval}
	cfg.App.TokenDuration = tokenDuration
	cfg.Adapter.RequestTimeout = clientTimeout
	cfg.Game.GridSize = gridSize
	cfg.Game.HumanPlayer = humanPlayer

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address yields an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
