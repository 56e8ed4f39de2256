// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tic-tac-toe/internal/config"
	"github.com/MKhiriev/go-tic-tac-toe/internal/logger"
)

func TestParseDSN(t *testing.T) {
	tests := []struct {
		name        string
		dsn         string
		wantDialect Dialect
		wantDSN     string
		wantErr     bool
	}{
		{name: "postgres url", dsn: "postgres://u:p@localhost:5432/ttt", wantDialect: DialectPostgres, wantDSN: "postgres://u:p@localhost:5432/ttt"},
		{name: "postgresql url", dsn: "postgresql://localhost/ttt", wantDialect: DialectPostgres, wantDSN: "postgresql://localhost/ttt"},
		{name: "key value", dsn: "host=localhost dbname=ttt", wantDialect: DialectPostgres, wantDSN: "host=localhost dbname=ttt"},
		{name: "sqlite scheme", dsn: "sqlite:///var/lib/ttt/moves.db", wantDialect: DialectSQLite, wantDSN: "/var/lib/ttt/moves.db"},
		{name: "sqlite3 scheme", dsn: "sqlite3://moves.db", wantDialect: DialectSQLite, wantDSN: "moves.db"},
		{name: "file uri", dsn: "file:moves?mode=memory", wantDialect: DialectSQLite, wantDSN: "file:moves?mode=memory"},
		{name: "memory", dsn: ":memory:", wantDialect: DialectSQLite, wantDSN: ":memory:"},
		{name: "db path", dsn: " ./data/moves.db ", wantDialect: DialectSQLite, wantDSN: "./data/moves.db"},
		{name: "sqlite path", dsn: "moves.sqlite", wantDialect: DialectSQLite, wantDSN: "moves.sqlite"},
		{name: "mysql", dsn: "mysql://localhost/ttt", wantErr: true},
		{name: "empty", dsn: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialect, dsn, err := ParseDSN(tt.dsn)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedDSN)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantDialect, dialect)
			assert.Equal(t, tt.wantDSN, dsn)
		})
	}
}

func TestDB_Placeholder(t *testing.T) {
	assert.Equal(t, sq.Dollar, (&DB{dialect: DialectPostgres}).placeholder())
	assert.Equal(t, sq.Question, (&DB{dialect: DialectSQLite}).placeholder())
}

func TestNewConnect_UnsupportedDSN(t *testing.T) {
	db, err := NewConnect(context.Background(), config.DB{DSN: "mongodb://localhost"}, logger.Nop())
	assert.Nil(t, db)
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestCreateLocalDBFileIfNotExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moves.db")

	require.NoError(t, createLocalDBFileIfNotExists(path))
	_, err := os.Stat(path)
	require.NoError(t, err)

	// existing file is left alone
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	require.NoError(t, createLocalDBFileIfNotExists(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))

	// in-memory databases have no file
	require.NoError(t, createLocalDBFileIfNotExists(":memory:"))
	_, err = os.Stat(":memory:")
	assert.True(t, os.IsNotExist(err))
}

func TestCreateLocalDBFileIfNotExists_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "moves.db")
	assert.Error(t, createLocalDBFileIfNotExists(path))
}
