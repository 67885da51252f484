// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/olegiv/opage-go/internal/model"
)

// GetPage handles GET /api/page - returns the singleton page document.
func (h *Handler) GetPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.queries.GetPage(r.Context())
	if err != nil {
		slog.Error("failed to load page", "error", err)
		WriteFailure(w, err.Error())
		return
	}

	WriteSuccess(w, page)
}

// SavePage handles POST /api/page - replaces the singleton page
// document in full. No merge, no version check: concurrent saves are
// last-writer-wins.
func (h *Handler) SavePage(w http.ResponseWriter, r *http.Request) {
	var page model.Page
	if err := json.NewDecoder(r.Body).Decode(&page); err != nil {
		WriteBadBody(w, err)
		return
	}

	saved, err := h.queries.SavePage(r.Context(), page)
	if err != nil {
		slog.Error("failed to save page", "error", err)
		WriteFailure(w, err.Error())
		return
	}

	WriteSuccess(w, saved)
}
