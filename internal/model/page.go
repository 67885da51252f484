// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the persisted types for the page builder:
// the singleton page document, its placed elements, and the
// reusable component catalog.
package model

import "encoding/json"

// PageID is the fixed row id of the singleton page document.
// There is exactly one page; it is created at startup and only
// ever updated in place.
const PageID = 1

// Default page settings used when seeding the singleton row.
const (
	DefaultPageWidth    = 1200
	DefaultPageHeight   = 800
	DefaultPageMaxWidth = "none"
	DefaultPageBgColor  = "#ffffff"
)

// Page is the persisted builder document: the ordered elements on
// the canvas plus the page-level settings.
type Page struct {
	Elements []Element    `json:"elements"`
	Settings PageSettings `json:"settings"`
}

// PageSettings holds canvas-level presentation settings.
type PageSettings struct {
	Responsive bool   `json:"responsive"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	MaxWidth   string `json:"maxWidth"`
	BgColor    string `json:"bgColor"`
}

// DefaultPageSettings returns the settings the singleton page is
// seeded with.
func DefaultPageSettings() PageSettings {
	return PageSettings{
		Responsive: true,
		Width:      DefaultPageWidth,
		Height:     DefaultPageHeight,
		MaxWidth:   DefaultPageMaxWidth,
		BgColor:    DefaultPageBgColor,
	}
}

// DefaultPage returns the page the singleton row is seeded with:
// no elements, default settings.
func DefaultPage() Page {
	return Page{
		Elements: []Element{},
		Settings: DefaultPageSettings(),
	}
}

// Element is one placed component instance on the page. The props
// blob carries all instance-specific overrides; its schema is owned
// by the frontend component catalog and is not validated here.
type Element struct {
	ID       int64           `json:"id"`
	Type     string          `json:"type"`
	Position Position        `json:"position"`
	Size     Size            `json:"size"`
	Props    json.RawMessage `json:"props,omitempty"`
}

// Position is an element's canvas position in pixels.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is an element's rendered size in pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
