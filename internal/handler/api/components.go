// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/olegiv/opage-go/internal/model"
)

// ListComponents handles GET /api/components - returns all catalog
// components ordered by name. Rows that no longer decode into the
// current Component shape are omitted from the listing rather than
// failing the request.
func (h *Handler) ListComponents(w http.ResponseWriter, r *http.Request) {
	components, skipped, err := h.queries.ListComponents(r.Context())
	if err != nil {
		slog.Error("failed to list components", "error", err)
		WriteFailure(w, err.Error())
		return
	}

	if skipped > 0 {
		slog.Warn("components omitted from listing", "skipped", skipped)
	}

	WriteSuccess(w, components)
}

// SaveComponent handles POST /api/components - upserts a catalog
// component keyed by its external id and echoes it back with server
// timestamps filled in.
func (h *Handler) SaveComponent(w http.ResponseWriter, r *http.Request) {
	var component model.Component
	if err := json.NewDecoder(r.Body).Decode(&component); err != nil {
		WriteBadBody(w, err)
		return
	}

	saved, err := h.queries.UpsertComponent(r.Context(), component)
	if err != nil {
		slog.Error("failed to save component", "component_id", component.ID, "error", err)
		WriteFailure(w, err.Error())
		return
	}

	WriteSuccess(w, saved)
}

// DeleteComponent handles POST /api/components/delete - removes a
// component by id. The body is a bare integer. Deleting an id with no
// matching row is a no-op success.
func (h *Handler) DeleteComponent(w http.ResponseWriter, r *http.Request) {
	var id int64
	if err := json.NewDecoder(r.Body).Decode(&id); err != nil {
		WriteBadBody(w, err)
		return
	}

	if err := h.queries.DeleteComponent(r.Context(), id); err != nil {
		slog.Error("failed to delete component", "component_id", id, "error", err)
		WriteFailure(w, err.Error())
		return
	}

	WriteSuccess(w, struct{}{})
}
