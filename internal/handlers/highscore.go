package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gamescores/apiserver/internal/services"
	"github.com/gamescores/apiserver/types"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	defaultPage    = 1
	defaultPerPage = 20
)

// HighscoreHandler provides HTTP handlers for highscores.
type HighscoreHandler struct {
	highscoreService *services.HighscoreService
	validate         *validator.Validate
}

// NewHighscoreHandler constructs a handler with the provided service.
func NewHighscoreHandler(highscoreService *services.HighscoreService) *HighscoreHandler {
	return &HighscoreHandler{
		highscoreService: highscoreService,
		validate:         validator.New(),
	}
}

// HighscoreRouter registers highscore routes on the given router.
// Submission requires authentication; retrieval is public.
func HighscoreRouter(
	r chi.Router,
	highscoreService *services.HighscoreService,
	authMiddleware func(http.Handler) http.Handler,
) {
	handler := NewHighscoreHandler(highscoreService)

	r.Get("/", handler.ListHighscores)
	if authMiddleware != nil {
		r.With(authMiddleware).Post("/", handler.SubmitHighscore)
	} else {
		r.Post("/", handler.SubmitHighscore)
	}
}

// SubmitHighscore appends a highscore record. The submitted handle is
// stored as-is and is not required to match the authenticated user:
// the leaderboard is shared, and retrieval is public anyway.
func (h *HighscoreHandler) SubmitHighscore(w http.ResponseWriter, r *http.Request) {
	var req SubmitHighscoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	// The required tag only rejects a nil timestamp; falsy-but-present
	// values (0, "") also count as missing.
	if !isTruthy(req.Timestamp) {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	highscore, err := h.highscoreService.Submit(r.Context(), types.Highscore{
		Level:      req.Level,
		UserHandle: req.UserHandle,
		Score:      *req.Score,
		Timestamp:  req.Timestamp,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create highscore")
		return
	}

	writeJSON(w, http.StatusCreated, SubmitHighscoreResponse{
		Message:   "Highscore created successfully",
		Highscore: highscore,
	})
}

// ListHighscores returns one page of the scores for a level, ranked
// by score descending. A level with no records yields 200 and an
// empty array, never 404.
func (h *HighscoreHandler) ListHighscores(w http.ResponseWriter, r *http.Request) {
	// The level filter matches the raw query value: a padded level is
	// a different level, and a whitespace-only one is accepted.
	level := r.URL.Query().Get("level")
	if level == "" {
		writeError(w, http.StatusBadRequest, "Level is required")
		return
	}

	offset, perPage, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, _, err := h.highscoreService.ListByLevel(r.Context(), level, offset, perPage)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list highscores")
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// SubmitHighscoreRequest is the submission payload. Score is a
// pointer so that a legitimate score of zero is distinguishable from
// a missing field; Timestamp accepts a string or a number and keeps
// the original truthiness rules (zero and empty count as missing).
type SubmitHighscoreRequest struct {
	Level      string   `json:"level" validate:"required"`
	UserHandle string   `json:"userHandle" validate:"required"`
	Score      *float64 `json:"score" validate:"required"`
	Timestamp  any      `json:"timestamp" validate:"required"`
}

// SubmitHighscoreResponse is the created-record payload.
type SubmitHighscoreResponse struct {
	Message   string          `json:"message"`
	Highscore types.Highscore `json:"highscore"`
}

// parsePagination reads page and perPage, rejecting non-numeric or
// sub-1 values explicitly. perPage deliberately has no upper bound.
func parsePagination(r *http.Request) (offset, perPage int, err error) {
	page := defaultPage
	perPage = defaultPerPage

	if raw := strings.TrimSpace(r.URL.Query().Get("page")); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			return 0, 0, errors.New("invalid page")
		}
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("perPage")); raw != "" {
		perPage, err = strconv.Atoi(raw)
		if err != nil || perPage < 1 {
			return 0, 0, errors.New("invalid perPage")
		}
	}

	return (page - 1) * perPage, perPage, nil
}
