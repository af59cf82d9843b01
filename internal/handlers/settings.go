package handlers

import (
	"errors"
	"net/http"

	"github.com/Travelintrips/HRD/internal/auth"
	"github.com/Travelintrips/HRD/internal/httpx"
	"github.com/Travelintrips/HRD/internal/models"
	"github.com/Travelintrips/HRD/internal/policy/ownership"
	"github.com/Travelintrips/HRD/internal/realtime"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SettingsHandler serves the authenticated user's own profile. Reads and
// writes go through the ownership policy, so a user can never touch another
// user's row regardless of what id the payload carries.
type SettingsHandler struct {
	db        *gorm.DB
	ownership *ownership.OwnershipPolicy
	feed      *realtime.Feed
	log       *zap.Logger
}

func NewSettingsHandler(db *gorm.DB, ownership *ownership.OwnershipPolicy, feed *realtime.Feed, log *zap.Logger) *SettingsHandler {
	return &SettingsHandler{db: db, ownership: ownership, feed: feed, log: log}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var profile models.Profile
	if err := h.db.WithContext(r.Context()).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "profile_not_found", nil)
			return
		}
		h.log.Error("load profile", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_profile", nil)
		return
	}
	if !h.ownership.Can(userID, profile) {
		httpx.JSONError(w, http.StatusForbidden, "forbidden", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, profile)
}

type profileUpdateRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Alias        string `json:"alias"`
	PlaceOfBirth string `json:"place_of_birth"`
	DateOfBirth  string `json:"date_of_birth"`
	Religion     string `json:"religion"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	FamilyPhone  string `json:"family_phone"`
}

func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var req profileUpdateRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_body", nil)
		return
	}

	var profile models.Profile
	if err := h.db.WithContext(r.Context()).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "profile_not_found", nil)
			return
		}
		h.log.Error("load profile", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_profile", nil)
		return
	}
	if !h.ownership.Can(userID, profile) {
		httpx.JSONError(w, http.StatusForbidden, "forbidden", nil)
		return
	}

	profile.FirstName = req.FirstName
	profile.LastName = req.LastName
	profile.Alias = req.Alias
	profile.PlaceOfBirth = req.PlaceOfBirth
	profile.DateOfBirth = req.DateOfBirth
	profile.Religion = req.Religion
	profile.Address = req.Address
	profile.Phone = req.Phone
	profile.FamilyPhone = req.FamilyPhone

	if err := h.db.WithContext(r.Context()).Save(&profile).Error; err != nil {
		h.log.Error("update profile", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_profile", nil)
		return
	}
	if h.feed != nil {
		h.feed.Publish("profiles", realtime.ActionUpdate, profile)
	}
	httpx.JSON(w, http.StatusOK, profile)
}
