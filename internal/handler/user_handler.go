package handler

import (
	"net/http"

	"gocart/internal/middleware"
	"gocart/internal/model"
	"gocart/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// UserHandler handles account-related HTTP requests.
type UserHandler struct {
	service service.UserService
	logger  zerolog.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(service service.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger.With().Str("handler", "user").Logger(),
	}
}

// GetAll handles GET /users.
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve users", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// GetByID handles GET /users/{id}. The route is bearer-guarded; the token
// subject must match the requested id.
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id", h.logger)
		return
	}

	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok || callerID != id {
		writeError(w, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// GetAllExcludingAdmin handles GET /users/exclude-admin.
func (h *UserHandler) GetAllExcludingAdmin(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAllExcludingAdmin(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// Search handles GET /users/search?name=.
func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "search term 'name' is required", h.logger)
		return
	}

	users, err := h.service.SearchByName(r.Context(), name)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// Update handles PUT /users/{id}. The body is multipart: profile fields plus
// an optional replacement avatar.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id", h.logger)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body", h.logger)
		return
	}

	req := &model.UpdateUserRequest{
		FirstName: r.FormValue("firstname"),
		LastName:  r.FormValue("lastname"),
		Password:  r.FormValue("password"),
	}

	avatar, file, err := formFile(r, "avatar")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid avatar upload", h.logger)
		return
	}
	if file != nil {
		defer file.Close()
	}

	user, err := h.service.Update(r.Context(), id, req, avatar)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Delete handles DELETE /users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.SuccessResponse{Success: "User deleted successfully"})
}
