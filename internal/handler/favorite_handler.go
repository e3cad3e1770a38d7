package handler

import (
	"encoding/json"
	"net/http"

	"gocart/internal/model"
	"gocart/internal/service"

	"github.com/rs/zerolog"
)

// FavoriteHandler handles favorite-related HTTP requests.
type FavoriteHandler struct {
	service service.FavoriteService
	logger  zerolog.Logger
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(service service.FavoriteService, logger zerolog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
		logger:  logger.With().Str("handler", "favorite").Logger(),
	}
}

// Create handles POST /favorites with an array body of (user, product) pairs.
func (h *FavoriteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var reqs []model.FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	for i := range reqs {
		if err := validate.Struct(&reqs[i]); err != nil {
			writeError(w, http.StatusBadRequest, "invalid favorite fields", h.logger)
			return
		}
	}

	favorites, err := h.service.CreateBatch(r.Context(), reqs)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, favorites)
}

// GetAllByUser handles POST /favorites/getall. The user id travels in the
// body, as the original API had it.
func (h *FavoriteHandler) GetAllByUser(w http.ResponseWriter, r *http.Request) {
	var req model.FavoritesByUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	favorites, err := h.service.GetAllByUser(r.Context(), req.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve favorites", h.logger)
		return
	}

	if favorites == nil {
		favorites = []model.Favorite{}
	}

	writeJSON(w, http.StatusOK, favorites)
}

// Toggle handles POST /favorites/createOrDelete: create-if-absent,
// delete-if-present for the given pair.
func (h *FavoriteHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req model.FavoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	favorite, removed, err := h.service.Toggle(r.Context(), req.UserID, req.ProductID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if removed {
		writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Favorite removed successfully"})
		return
	}

	writeJSON(w, http.StatusCreated, favorite)
}

// Delete handles DELETE /favorites with a (user, product) pair body.
func (h *FavoriteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req model.FavoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), req.UserID, req.ProductID); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Favorite deleted successfully"})
}

// Likes handles GET /favorites/likes: products ranked by favorite count.
func (h *FavoriteHandler) Likes(w http.ResponseWriter, r *http.Request) {
	likes, err := h.service.LikesByProduct(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve likes", h.logger)
		return
	}

	if likes == nil {
		likes = []model.ProductLikes{}
	}

	writeJSON(w, http.StatusOK, likes)
}
