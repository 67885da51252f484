// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/olegiv/opage-go/internal/model"
)

// GetPage reads the singleton page row and decodes it into the typed
// model. A row that no longer matches the current Page shape is an
// error: schema drift is surfaced, not repaired.
func (q *Queries) GetPage(ctx context.Context) (model.Page, error) {
	var (
		elements []byte
		settings []byte
	)

	row := q.db.QueryRowContext(ctx,
		`SELECT elements, settings FROM page WHERE id = ?`, model.PageID)
	if err := row.Scan(&elements, &settings); err != nil {
		return model.Page{}, fmt.Errorf("querying page: %w", err)
	}

	return decodePage(elements, settings)
}

// SavePage unconditionally replaces both columns of the singleton row
// and returns the stored value as read back by the same statement.
// Concurrent saves race with last-writer-wins semantics; there is no
// version check.
func (q *Queries) SavePage(ctx context.Context, page model.Page) (model.Page, error) {
	elements, err := json.Marshal(page.Elements)
	if err != nil {
		return model.Page{}, fmt.Errorf("encoding elements: %w", err)
	}
	settings, err := json.Marshal(page.Settings)
	if err != nil {
		return model.Page{}, fmt.Errorf("encoding settings: %w", err)
	}

	var (
		storedElements []byte
		storedSettings []byte
	)

	row := q.db.QueryRowContext(ctx,
		`UPDATE page SET elements = ?, settings = ? WHERE id = ?
		 RETURNING elements, settings`,
		elements, settings, model.PageID)
	if err := row.Scan(&storedElements, &storedSettings); err != nil {
		return model.Page{}, fmt.Errorf("updating page: %w", err)
	}

	return decodePage(storedElements, storedSettings)
}

// decodePage assembles a Page from its two JSON columns.
func decodePage(elements, settings []byte) (model.Page, error) {
	var page model.Page
	if err := json.Unmarshal(elements, &page.Elements); err != nil {
		return model.Page{}, fmt.Errorf("parsing elements: %w", err)
	}
	if err := json.Unmarshal(settings, &page.Settings); err != nil {
		return model.Page{}, fmt.Errorf("parsing settings: %w", err)
	}
	if page.Elements == nil {
		page.Elements = []model.Element{}
	}
	return page, nil
}
