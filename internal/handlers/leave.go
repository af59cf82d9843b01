package handlers

import (
	"errors"
	"net/http"

	"github.com/Travelintrips/HRD/internal/httpx"
	"github.com/Travelintrips/HRD/internal/models"
	"github.com/Travelintrips/HRD/internal/validation"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type LeaveHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewLeaveHandler(db *gorm.DB, log *zap.Logger) *LeaveHandler {
	return &LeaveHandler{db: db, log: log}
}

func (h *LeaveHandler) List(w http.ResponseWriter, r *http.Request) {
	db := h.db.WithContext(r.Context())
	if emp := r.URL.Query().Get("employee_id"); emp != "" {
		db = db.Where("employee_id = ?", emp)
	}
	if status := r.URL.Query().Get("status"); status != "" {
		db = db.Where("status = ?", status)
	}
	var leaves []models.LeaveRequest
	if err := db.Order("created_at DESC").Find(&leaves).Error; err != nil {
		h.log.Error("list leave requests", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_leaves", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": leaves})
}

func (h *LeaveHandler) Create(w http.ResponseWriter, r *http.Request) {
	var leave models.LeaveRequest
	if err := httpx.Decode(r, &leave); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_body", nil)
		return
	}
	v := make(validation.Violations)
	validation.Required("type", leave.Type, v)
	validation.Required("start_date", leave.StartDate, v)
	validation.Required("end_date", leave.EndDate, v)
	if leave.EmployeeID == 0 {
		v["employee_id"] = "required"
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	leave.ID = 0
	leave.Status = models.LeaveStatusPending
	if err := h.db.WithContext(r.Context()).Create(&leave).Error; err != nil {
		h.log.Error("create leave request", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_leave", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, leave)
}

type leaveReviewRequest struct {
	Status models.LeaveStatus `json:"status"`
}

// Review approves or rejects a pending request. Already-reviewed requests
// are immutable.
func (h *LeaveHandler) Review(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req leaveReviewRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_body", nil)
		return
	}
	if req.Status != models.LeaveStatusApproved && req.Status != models.LeaveStatusRejected {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed",
			validation.Violations{"status": "must_be_approved_or_rejected"})
		return
	}

	var leave models.LeaveRequest
	if err := h.db.WithContext(r.Context()).First(&leave, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "leave_not_found", nil)
			return
		}
		h.log.Error("load leave request", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_leave", nil)
		return
	}
	if !leave.CanReview() {
		httpx.JSONError(w, http.StatusConflict, "leave_already_reviewed", nil)
		return
	}

	leave.Status = req.Status
	if err := h.db.WithContext(r.Context()).Save(&leave).Error; err != nil {
		h.log.Error("review leave request", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_leave", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, leave)
}
