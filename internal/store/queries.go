// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "database/sql"

// Queries wraps a database handle and provides typed access to the
// page and components tables. Constructed once and passed down to
// handlers; never a package-level singleton.
type Queries struct {
	db *sql.DB
}

// New creates a Queries value backed by the given database handle.
func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}
