package handlers

import (
	"net/http"

	"github.com/Travelintrips/HRD/internal/auth"
	"github.com/Travelintrips/HRD/internal/httpx"
	"github.com/Travelintrips/HRD/internal/models"
	"github.com/Travelintrips/HRD/internal/realtime"
	"github.com/Travelintrips/HRD/internal/storage"
	"github.com/Travelintrips/HRD/internal/validation"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// maxRegisterBody caps the multipart registration payload (four documents).
const maxRegisterBody = 32 << 20

type AuthHandler struct {
	db    *gorm.DB
	store *storage.DocumentStore
	feed  *realtime.Feed
	log   *zap.Logger
}

func NewAuthHandler(db *gorm.DB, store *storage.DocumentStore, feed *realtime.Feed, log *zap.Logger) *AuthHandler {
	return &AuthHandler{db: db, store: store, feed: feed, log: log}
}

// Register creates an account from a multipart form carrying credentials,
// profile metadata, and up to four document files (selfie, ktp, kk, cv).
// Only files with content are stored. A profile write failing after the
// account exists is logged, not surfaced: the user still ends up signed in
// and can fill the profile in later.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxRegisterBody); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_body", nil)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	v := make(validation.Violations)
	validation.Required("email", email, v)
	validation.Required("password", password, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		h.log.Error("hash password", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}

	user := models.User{Email: email, Password: string(hashed)}
	if err := h.db.WithContext(r.Context()).Create(&user).Error; err != nil {
		httpx.JSONError(w, http.StatusConflict, "email_already_exists", nil)
		return
	}

	profile := models.Profile{
		UserID:       user.ID,
		FirstName:    r.FormValue("first_name"),
		LastName:     r.FormValue("last_name"),
		Alias:        r.FormValue("alias"),
		PlaceOfBirth: r.FormValue("place_of_birth"),
		DateOfBirth:  r.FormValue("date_of_birth"),
		Religion:     r.FormValue("religion"),
		Address:      r.FormValue("address"),
		Phone:        r.FormValue("phone"),
		FamilyPhone:  r.FormValue("family_phone"),
	}
	profile.SelfieURL = h.uploadDocument(r, user.ID, storage.DocSelfie)
	profile.KTPURL = h.uploadDocument(r, user.ID, storage.DocKTP)
	profile.KKURL = h.uploadDocument(r, user.ID, storage.DocKK)
	profile.CVURL = h.uploadDocument(r, user.ID, storage.DocCV)

	if err := h.db.WithContext(r.Context()).Create(&profile).Error; err != nil {
		// The account exists; registration still counts as succeeded.
		h.log.Error("profile write failed after sign-up", zap.Error(err), zap.Uint("user_id", user.ID))
	} else {
		user.Profile = &profile
		if h.feed != nil {
			h.feed.Publish("profiles", realtime.ActionInsert, profile)
		}
	}

	token, err := auth.CreateSession(w, user.ID)
	if err != nil {
		h.log.Error("issue token", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"token": token, "user": user})
}

// uploadDocument stores one named multipart file, skipping absent or empty
// parts. Upload failures degrade to a null URL column.
func (h *AuthHandler) uploadDocument(r *http.Request, userID uint, docType string) *string {
	file, header, err := r.FormFile(docType)
	if err != nil || header == nil || header.Size == 0 {
		return nil
	}
	defer file.Close()

	url, err := h.store.Save(userID, docType, header.Filename, file)
	if err != nil {
		h.log.Error("document upload failed", zap.Error(err),
			zap.Uint("user_id", userID), zap.String("doc_type", docType))
		return nil
	}
	return &url
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_body", nil)
		return
	}

	var user models.User
	if err := h.db.WithContext(r.Context()).Where("email = ?", req.Email).First(&user).Error; err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "invalid_credentials", nil)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "invalid_credentials", nil)
		return
	}

	token, err := auth.CreateSession(w, user.ID)
	if err != nil {
		h.log.Error("issue token", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"token": token, "user": user})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSession(w)
	httpx.JSON(w, http.StatusNoContent, nil)
}

// Session returns the authenticated user with their profile, for the SPA to
// restore state after a reload.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	var user models.User
	if err := h.db.WithContext(r.Context()).Preload("Profile").First(&user, userID).Error; err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"user": user})
}
