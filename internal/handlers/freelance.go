package handlers

import (
	"net/http"

	"github.com/Travelintrips/HRD/internal/httpx"
	"github.com/Travelintrips/HRD/internal/models"
	"github.com/Travelintrips/HRD/internal/validation"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type FreelanceHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewFreelanceHandler(db *gorm.DB, log *zap.Logger) *FreelanceHandler {
	return &FreelanceHandler{db: db, log: log}
}

func (h *FreelanceHandler) List(w http.ResponseWriter, r *http.Request) {
	db := h.db.WithContext(r.Context())
	if r.URL.Query().Get("active") == "true" {
		db = db.Where("active = ?", true)
	}
	var freelancers []models.Freelancer
	if err := db.Order("name").Find(&freelancers).Error; err != nil {
		h.log.Error("list freelancers", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_freelancers", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": freelancers})
}

func (h *FreelanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var f models.Freelancer
	if err := httpx.Decode(r, &f); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_body", nil)
		return
	}
	v := make(validation.Violations)
	validation.Required("name", f.Name, v)
	validation.PositiveFloat("daily_rate", f.DailyRate, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	f.ID = 0
	f.Active = true
	if err := h.db.WithContext(r.Context()).Create(&f).Error; err != nil {
		h.log.Error("create freelancer", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_freelancer", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, f)
}
