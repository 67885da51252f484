// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api provides the REST handlers for the page builder:
// the singleton page document and the component catalog.
package api

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/opage-go/internal/store"
)

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	queries *store.Queries
}

// NewHandler creates a new API handler backed by the given database.
func NewHandler(db *sql.DB) *Handler {
	return &Handler{
		queries: store.New(db),
	}
}

// Routes returns the API router. All endpoints exchange the standard
// envelope; the builder frontend's API client only inspects success,
// data, and error.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/page", h.GetPage)
	r.Post("/page", h.SavePage)
	r.Get("/components", h.ListComponents)
	r.Post("/components", h.SaveComponent)
	r.Post("/components/delete", h.DeleteComponent)
	return r
}

// Response is the uniform API envelope: exactly one of Data/Error is
// meaningful depending on Success.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a success envelope with the given data.
func WriteSuccess(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

// WriteFailure writes a failure envelope. Handler-level failures keep
// HTTP 200: the frontend API client switches on the success flag, not
// the status code.
func WriteFailure(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, Response{Success: false, Error: message})
}

// WriteBadBody writes a 422 failure envelope for request bodies that
// don't decode into the expected shape.
func WriteBadBody(w http.ResponseWriter, err error) {
	WriteJSON(w, http.StatusUnprocessableEntity, Response{
		Success: false,
		Error:   "Invalid request body: " + err.Error(),
	})
}
