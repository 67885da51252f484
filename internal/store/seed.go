// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/olegiv/opage-go/internal/model"
)

// Seed creates the singleton page row if it does not exist yet. An
// existing row is never touched, so a customized page survives
// restarts. Any error is fatal to startup.
func Seed(ctx context.Context, db *sql.DB) error {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM page WHERE id = ?)`, model.PageID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking for page row: %w", err)
	}

	if exists {
		slog.Info("page row already exists, skipping seed")
		return nil
	}

	page := model.DefaultPage()

	elements, err := json.Marshal(page.Elements)
	if err != nil {
		return fmt.Errorf("encoding default elements: %w", err)
	}
	settings, err := json.Marshal(page.Settings)
	if err != nil {
		return fmt.Errorf("encoding default settings: %w", err)
	}

	if _, err := db.ExecContext(ctx,
		`INSERT INTO page (id, elements, settings) VALUES (?, ?, ?)`,
		model.PageID, elements, settings); err != nil {
		return fmt.Errorf("inserting default page: %w", err)
	}

	slog.Info("created default page",
		"id", model.PageID,
		"width", page.Settings.Width,
		"height", page.Settings.Height,
	)

	return nil
}
