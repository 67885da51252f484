// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"encoding/json"
	"time"
)

// Component categories. The set is open: the server stores whatever
// category string the frontend sends and does not enforce membership.
const (
	ComponentCategoryText      = "text"
	ComponentCategoryContainer = "container"
	ComponentCategoryMedia     = "media"
	ComponentCategoryInput     = "input"
	ComponentCategoryLayout    = "layout"
	ComponentCategoryCustom    = "custom"
)

// Property types
const (
	PropertyTypeString  = "string"
	PropertyTypeNumber  = "number"
	PropertyTypeBoolean = "boolean"
	PropertyTypeColor   = "color"
	PropertyTypeSelect  = "select"
	PropertyTypeText    = "text"
	PropertyTypeFile    = "file"
)

// Property categories, used by the frontend to group editable
// properties in the properties panel.
const (
	PropertyCategoryLayout     = "layout"
	PropertyCategoryTypography = "typography"
	PropertyCategoryDecoration = "decoration"
	PropertyCategoryBasic      = "basic"
	PropertyCategoryAdvanced   = "advanced"
)

// Component is a catalog entry describing a reusable building block.
// The id is assigned by the frontend and is the upsert key: saving an
// existing id replaces every field except created_at.
type Component struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Icon              string          `json:"icon"`
	Category          string          `json:"category"`
	Description       *string         `json:"description,omitempty"`
	Properties        []Property      `json:"properties"`
	CanContainContent bool            `json:"canContainContent"`
	DefaultContent    json.RawMessage `json:"defaultContent,omitempty"`
	Tags              []string        `json:"tags,omitempty"`
	CreatedAt         time.Time       `json:"created_at,omitzero"`
	UpdatedAt         time.Time       `json:"updated_at,omitzero"`
}

// Property describes one editable property of a component. Value is
// an opaque default carried through untouched.
type Property struct {
	Name        string          `json:"name"`
	Value       json.RawMessage `json:"value"`
	Label       string          `json:"label"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Options     []string        `json:"options,omitempty"`
	Required    *bool           `json:"required,omitempty"`
	Description *string         `json:"description,omitempty"`
}
