// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrMoveNotSaved is returned when an INSERT into the journal completes
	// without error but affects no rows.
	ErrMoveNotSaved = errors.New("move was not saved")

	// ErrJournalDisabled is returned by the journal when no database is
	// configured.
	ErrJournalDisabled = errors.New("move journal is disabled")

	// ErrUnsupportedDSN is returned when the database driver cannot be
	// derived from the DSN.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan move rows")

	// ErrCache is returned when the move cache backend fails.
	ErrCache = errors.New("move cache error")
)
