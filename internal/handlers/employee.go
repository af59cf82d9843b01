package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Travelintrips/HRD/internal/httpx"
	"github.com/Travelintrips/HRD/internal/models"
	"github.com/Travelintrips/HRD/internal/realtime"
	"github.com/Travelintrips/HRD/internal/validation"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type EmployeeHandler struct {
	db   *gorm.DB
	feed *realtime.Feed
	log  *zap.Logger
}

func NewEmployeeHandler(db *gorm.DB, feed *realtime.Feed, log *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{db: db, feed: feed, log: log}
}

// List returns employees, optionally filtered by ?q= over name or code and
// paginated with ?page=. The geofence dialog's multi-select loads from here.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit := 50
	offset := (page - 1) * limit

	db := h.db.WithContext(r.Context()).Model(&models.Employee{})
	if query != "" {
		like := "%" + query + "%"
		db = db.Where("LOWER(name) LIKE LOWER(?) OR LOWER(employee_id) LIKE LOWER(?)", like, like)
	}

	var total int64
	db.Count(&total)

	var employees []models.Employee
	if err := db.Preload("Branch").Order("name").Limit(limit).Offset(offset).Find(&employees).Error; err != nil {
		h.log.Error("list employees", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_employees", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"items": employees,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

type employeeInput struct {
	Name     string `json:"name"`
	Code     string `json:"employee_id"`
	BranchID *uint  `json:"branch_id"`
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in employeeInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_body", nil)
		return
	}
	v := make(validation.Violations)
	validation.Required("name", in.Name, v)
	validation.Required("employee_id", in.Code, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	employee := models.Employee{Name: in.Name, Code: strings.ToUpper(in.Code), BranchID: in.BranchID}
	if err := h.db.WithContext(r.Context()).Create(&employee).Error; err != nil {
		if strings.Contains(err.Error(), "UNIQUE") || strings.Contains(err.Error(), "duplicate") {
			httpx.JSONError(w, http.StatusConflict, "employee_id_already_exists", nil)
			return
		}
		h.log.Error("create employee", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_employee", nil)
		return
	}
	if h.feed != nil {
		h.feed.Publish("employees", realtime.ActionInsert, employee)
	}
	httpx.JSON(w, http.StatusCreated, employee)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	err := h.db.WithContext(r.Context()).Transaction(func(tx *gorm.DB) error {
		// Assignments go first so no orphan rows survive on dialects
		// without FK enforcement.
		if err := tx.Where("employee_id = ?", id).
			Delete(&models.EmployeeLocationAssignment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Employee{}, id).Error
	})
	if err != nil {
		h.log.Error("delete employee", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_delete_employee", nil)
		return
	}
	if h.feed != nil {
		h.feed.Publish("employees", realtime.ActionDelete, map[string]uint{"id": id})
	}
	httpx.JSON(w, http.StatusNoContent, nil)
}
