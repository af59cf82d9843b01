package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Travelintrips/HRD/internal/models"
	"github.com/Travelintrips/HRD/internal/services"
	"go.uber.org/zap"
)

func TestAttendanceCheckIn(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewLocationService(db, nil, zap.NewNop())
	h := NewAttendanceHandler(db, svc, zap.NewNop())

	assigned := seedEmployee(t, db, "Assigned", "EMP-001")
	outsider := seedEmployee(t, db, "Outsider", "EMP-002")
	loc := models.GeofenceLocation{Name: "HQ", Address: "1 Main St", Radius: 100}
	if err := db.Create(&loc).Error; err != nil {
		t.Fatalf("seed location: %v", err)
	}
	if err := db.Create(&models.EmployeeLocationAssignment{EmployeeID: assigned.ID, LocationID: loc.ID}).Error; err != nil {
		t.Fatalf("seed assignment: %v", err)
	}

	// Assigned employee can check in.
	body := fmt.Sprintf(`{"employee_id":%d,"location_id":%d,"latitude":-6.2,"longitude":106.8}`, assigned.ID, loc.ID)
	w := httptest.NewRecorder()
	h.CheckIn(w, httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-in", strings.NewReader(body)))
	if w.Code != http.StatusCreated {
		t.Fatalf("assigned check-in: expected 201 got %d body=%s", w.Code, w.Body.String())
	}

	// Unassigned employee is refused.
	body = fmt.Sprintf(`{"employee_id":%d,"location_id":%d}`, outsider.ID, loc.ID)
	w = httptest.NewRecorder()
	h.CheckIn(w, httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-in", strings.NewReader(body)))
	if w.Code != http.StatusForbidden {
		t.Fatalf("outsider check-in: expected 403 got %d", w.Code)
	}

	var count int64
	db.Model(&models.Attendance{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 attendance row, got %d", count)
	}
}

func TestAttendanceCheckIn_RejectsBadCoordinates(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewLocationService(db, nil, zap.NewNop())
	h := NewAttendanceHandler(db, svc, zap.NewNop())

	body := `{"employee_id":1,"location_id":1,"latitude":95,"longitude":0}`
	w := httptest.NewRecorder()
	h.CheckIn(w, httptest.NewRequest(http.MethodPost, "/api/v1/attendance/check-in", strings.NewReader(body)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}
