package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"coursecatalog/internal/api/v1/dto"
	"coursecatalog/internal/middleware"
	"coursecatalog/internal/model"
	"coursecatalog/internal/service"

	"github.com/go-playground/validator/v10"
)

type ProfileHandler struct {
	profileService service.ProfileService
	validate       *validator.Validate
}

func NewProfileHandler(profileService service.ProfileService, v *validator.Validate) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, validate: v}
}

// RegisterRoutes mounts v1 profile routes
func (h *ProfileHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/profiles/me", authMw(http.HandlerFunc(h.handleProfile)))
}

func (h *ProfileHandler) handleProfile(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/profiles/me" {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		h.getProfile(w, r)
	case http.MethodPut:
		h.upsertProfile(w, r)
	default:
		http.NotFound(w, r)
	}
}

// getProfile godoc
// @Summary Get own profile
// @Description Retrieves the authenticated user's display-name profile.
// @Tags profiles
// @Produce json
// @Success 200 {object} dto.ProfileResponseDTO
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Profile not found"
// @Router /profiles/me [get]
func (h *ProfileHandler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserContextKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized: User ID not found in context", http.StatusUnauthorized)
		return
	}

	profile, err := h.profileService.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to retrieve profile: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profileResponse(profile))
}

// upsertProfile godoc
// @Summary Create or update own profile
// @Description Sets the authenticated user's display name.
// @Tags profiles
// @Accept json
// @Produce json
// @Param profile body dto.ProfileUpsertDTO true "Profile request"
// @Success 200 {object} dto.ProfileResponseDTO
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Failed to save profile"
// @Router /profiles/me [put]
func (h *ProfileHandler) upsertProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserContextKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized: User ID not found in context", http.StatusUnauthorized)
		return
	}

	var req dto.ProfileUpsertDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+validationMessage(err), http.StatusBadRequest)
		return
	}

	profile := &model.Profile{UserID: userID, Username: req.Username}
	saved, err := h.profileService.Upsert(r.Context(), profile)
	if err != nil {
		http.Error(w, "Failed to save profile: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profileResponse(saved))
}

func profileResponse(p *model.Profile) dto.ProfileResponseDTO {
	return dto.ProfileResponseDTO{
		UserID:    p.UserID,
		Username:  p.Username,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
