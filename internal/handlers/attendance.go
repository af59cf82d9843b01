package handlers

import (
	"net/http"

	"github.com/Travelintrips/HRD/internal/httpx"
	"github.com/Travelintrips/HRD/internal/models"
	"github.com/Travelintrips/HRD/internal/services"
	"github.com/Travelintrips/HRD/internal/validation"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AttendanceHandler struct {
	db        *gorm.DB
	locations *services.LocationService
	log       *zap.Logger
}

func NewAttendanceHandler(db *gorm.DB, locations *services.LocationService, log *zap.Logger) *AttendanceHandler {
	return &AttendanceHandler{db: db, locations: locations, log: log}
}

type attendanceRequest struct {
	EmployeeID uint     `json:"employee_id"`
	LocationID uint     `json:"location_id"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

func (h *AttendanceHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	h.record(w, r, models.AttendanceCheckIn)
}

func (h *AttendanceHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	h.record(w, r, models.AttendanceCheckOut)
}

// record stores one attendance event after verifying the employee holds an
// assignment for the target location. The check is pure membership via the
// join table; the client is responsible for being inside the fence.
func (h *AttendanceHandler) record(w http.ResponseWriter, r *http.Request, typ models.AttendanceType) {
	var req attendanceRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_body", nil)
		return
	}
	v := make(validation.Violations)
	if req.EmployeeID == 0 {
		v["employee_id"] = "required"
	}
	if req.LocationID == 0 {
		v["location_id"] = "required"
	}
	if req.Latitude != nil {
		validation.Latitude("latitude", *req.Latitude, v)
	}
	if req.Longitude != nil {
		validation.Longitude("longitude", *req.Longitude, v)
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	assigned, err := h.locations.IsAssigned(r.Context(), req.EmployeeID, req.LocationID)
	if err != nil {
		h.log.Error("assignment check", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_record_attendance", nil)
		return
	}
	if !assigned {
		httpx.JSONError(w, http.StatusForbidden, "not_assigned_to_location", nil)
		return
	}

	row := models.Attendance{
		EmployeeID: req.EmployeeID,
		LocationID: req.LocationID,
		Type:       typ,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	}
	if err := h.db.WithContext(r.Context()).Create(&row).Error; err != nil {
		h.log.Error("record attendance", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_record_attendance", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, row)
}

func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	db := h.db.WithContext(r.Context())
	if emp := r.URL.Query().Get("employee_id"); emp != "" {
		db = db.Where("employee_id = ?", emp)
	}
	var rows []models.Attendance
	if err := db.Order("created_at DESC").Limit(100).Find(&rows).Error; err != nil {
		h.log.Error("list attendance", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_attendance", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": rows})
}
