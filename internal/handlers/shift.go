package handlers

import (
	"net/http"

	"github.com/Travelintrips/HRD/internal/httpx"
	"github.com/Travelintrips/HRD/internal/models"
	"github.com/Travelintrips/HRD/internal/validation"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ShiftHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewShiftHandler(db *gorm.DB, log *zap.Logger) *ShiftHandler {
	return &ShiftHandler{db: db, log: log}
}

func (h *ShiftHandler) List(w http.ResponseWriter, r *http.Request) {
	db := h.db.WithContext(r.Context())
	if emp := r.URL.Query().Get("employee_id"); emp != "" {
		db = db.Where("employee_id = ?", emp)
	}
	if date := r.URL.Query().Get("date"); date != "" {
		db = db.Where("date = ?", date)
	}
	var shifts []models.Shift
	if err := db.Order("date DESC, start_time").Find(&shifts).Error; err != nil {
		h.log.Error("list shifts", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_shifts", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": shifts})
}

func (h *ShiftHandler) Create(w http.ResponseWriter, r *http.Request) {
	var shift models.Shift
	if err := httpx.Decode(r, &shift); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_body", nil)
		return
	}
	v := make(validation.Violations)
	validation.Required("date", shift.Date, v)
	validation.Required("start_time", shift.StartTime, v)
	validation.Required("end_time", shift.EndTime, v)
	if shift.EmployeeID == 0 {
		v["employee_id"] = "required"
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	shift.ID = 0
	if err := h.db.WithContext(r.Context()).Create(&shift).Error; err != nil {
		h.log.Error("create shift", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_shift", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, shift)
}

func (h *ShiftHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.db.WithContext(r.Context()).Delete(&models.Shift{}, id).Error; err != nil {
		h.log.Error("delete shift", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_delete_shift", nil)
		return
	}
	httpx.JSON(w, http.StatusNoContent, nil)
}
