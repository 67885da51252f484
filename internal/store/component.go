// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/opage-go/internal/model"
)

// componentRow mirrors the components table columns before JSON decoding.
type componentRow struct {
	ComponentID       int64
	Name              string
	Icon              string
	Category          string
	Description       sql.NullString
	Properties        []byte
	CanContainContent int64
	DefaultContent    []byte
	Tags              sql.NullString
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

const componentColumns = `component_id, name, icon, category, description,
	properties, can_contain_content, default_content, tags, created_at, updated_at`

// UpsertComponent inserts a component keyed by its external id, or
// replaces every field except created_at when the id already exists.
// This is a single atomic statement, not a read-then-write. The
// returned component is the submitted one with server timestamps
// filled in from the row.
func (q *Queries) UpsertComponent(ctx context.Context, c model.Component) (model.Component, error) {
	properties, err := json.Marshal(c.Properties)
	if err != nil {
		return model.Component{}, fmt.Errorf("encoding properties: %w", err)
	}
	if c.Properties == nil {
		properties = []byte(`[]`)
	}

	defaultContent := []byte(`null`)
	if c.DefaultContent != nil {
		defaultContent = c.DefaultContent
	}

	var tags any
	if c.Tags != nil {
		encoded, err := json.Marshal(c.Tags)
		if err != nil {
			return model.Component{}, fmt.Errorf("encoding tags: %w", err)
		}
		tags = string(encoded)
	}

	now := time.Now().UTC()

	row := q.db.QueryRowContext(ctx,
		`INSERT INTO components (component_id, name, icon, category, description,
			properties, can_contain_content, default_content, tags, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(component_id) DO UPDATE SET
			name = excluded.name,
			icon = excluded.icon,
			category = excluded.category,
			description = excluded.description,
			properties = excluded.properties,
			can_contain_content = excluded.can_contain_content,
			default_content = excluded.default_content,
			tags = excluded.tags,
			updated_at = excluded.updated_at
		 RETURNING created_at, updated_at`,
		c.ID, c.Name, c.Icon, c.Category, nullString(c.Description),
		string(properties), boolToInt(c.CanContainContent), string(defaultContent),
		tags, now, now)

	if err := row.Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		return model.Component{}, fmt.Errorf("upserting component %d: %w", c.ID, err)
	}

	return c, nil
}

// GetComponentByID returns a single component by its external id.
func (q *Queries) GetComponentByID(ctx context.Context, id int64) (model.Component, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+componentColumns+` FROM components WHERE component_id = ?`, id)

	var r componentRow
	if err := row.Scan(&r.ComponentID, &r.Name, &r.Icon, &r.Category, &r.Description,
		&r.Properties, &r.CanContainContent, &r.DefaultContent, &r.Tags,
		&r.CreatedAt, &r.UpdatedAt); err != nil {
		return model.Component{}, fmt.Errorf("querying component %d: %w", id, err)
	}

	return decodeComponent(r)
}

// skippedComponent records a catalog row dropped from a listing, for
// logging once the listing's cursor has been released.
type skippedComponent struct {
	componentID int64
	name        string
	err         error
}

// ListComponents returns all components ordered by name ascending
// (BINARY collation, so ordering is case-sensitive). Rows whose JSON
// columns no longer decode into the current Component shape are
// skipped rather than failing the whole listing; the skipped count is
// returned alongside the valid components and each skip is logged.
func (q *Queries) ListComponents(ctx context.Context) ([]model.Component, int, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+componentColumns+` FROM components ORDER BY name ASC`)
	if err != nil {
		return nil, 0, fmt.Errorf("querying components: %w", err)
	}
	defer func() { _ = rows.Close() }()

	components := []model.Component{}
	var skipped []skippedComponent

	for rows.Next() {
		var r componentRow
		if err := rows.Scan(&r.ComponentID, &r.Name, &r.Icon, &r.Category, &r.Description,
			&r.Properties, &r.CanContainContent, &r.DefaultContent, &r.Tags,
			&r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scanning component row: %w", err)
		}

		component, err := decodeComponent(r)
		if err != nil {
			skipped = append(skipped, skippedComponent{r.ComponentID, r.Name, err})
			continue
		}

		components = append(components, component)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating components: %w", err)
	}

	// Release the cursor's pool connection before logging. The default
	// logger may itself write to the database (EventLogHandler), and an
	// insert issued while this cursor still holds a connection can
	// starve a bounded pool.
	if err := rows.Close(); err != nil {
		return nil, 0, fmt.Errorf("closing component rows: %w", err)
	}

	for _, s := range skipped {
		slog.Warn("skipping malformed component row",
			"component_id", s.componentID,
			"name", s.name,
			"error", s.err,
		)
	}

	return components, len(skipped), nil
}

// DeleteComponent removes a component by its external id. Deleting an
// id with no matching row is a no-op, not an error.
func (q *Queries) DeleteComponent(ctx context.Context, id int64) error {
	if _, err := q.db.ExecContext(ctx,
		`DELETE FROM components WHERE component_id = ?`, id); err != nil {
		return fmt.Errorf("deleting component %d: %w", id, err)
	}
	return nil
}

// decodeComponent assembles a Component from a raw row.
func decodeComponent(r componentRow) (model.Component, error) {
	c := model.Component{
		ID:                r.ComponentID,
		Name:              r.Name,
		Icon:              r.Icon,
		Category:          r.Category,
		CanContainContent: r.CanContainContent != 0,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}

	if r.Description.Valid {
		c.Description = &r.Description.String
	}

	if err := json.Unmarshal(r.Properties, &c.Properties); err != nil {
		return model.Component{}, fmt.Errorf("parsing properties: %w", err)
	}
	if c.Properties == nil {
		c.Properties = []model.Property{}
	}

	if len(r.DefaultContent) > 0 && string(r.DefaultContent) != "null" {
		if !json.Valid(r.DefaultContent) {
			return model.Component{}, fmt.Errorf("parsing default content: invalid JSON")
		}
		c.DefaultContent = json.RawMessage(r.DefaultContent)
	}

	if r.Tags.Valid {
		if err := json.Unmarshal([]byte(r.Tags.String), &c.Tags); err != nil {
			return model.Component{}, fmt.Errorf("parsing tags: %w", err)
		}
	}

	return c, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
