package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Travelintrips/HRD/internal/models"
	"go.uber.org/zap"
)

func TestLeaveReview(t *testing.T) {
	db := setupTestDB(t)
	h := NewLeaveHandler(db, zap.NewNop())
	emp := seedEmployee(t, db, "E", "EMP-001")

	leave := models.LeaveRequest{
		EmployeeID: emp.ID, Type: "annual",
		StartDate: "2026-09-01", EndDate: "2026-09-05",
		Status: models.LeaveStatusPending,
	}
	if err := db.Create(&leave).Error; err != nil {
		t.Fatalf("seed leave: %v", err)
	}

	review := func(status string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost,
			fmt.Sprintf("/api/v1/leaves/%d/review", leave.ID),
			strings.NewReader(`{"status":"`+status+`"}`))
		req.SetPathValue("id", fmt.Sprint(leave.ID))
		w := httptest.NewRecorder()
		h.Review(w, req)
		return w
	}

	if w := review("approved"); w.Code != http.StatusOK {
		t.Fatalf("approve: expected 200 got %d body=%s", w.Code, w.Body.String())
	}

	// A reviewed request is immutable.
	if w := review("rejected"); w.Code != http.StatusConflict {
		t.Fatalf("second review: expected 409 got %d", w.Code)
	}

	var got models.LeaveRequest
	db.First(&got, leave.ID)
	if got.Status != models.LeaveStatusApproved {
		t.Errorf("status = %s, want approved", got.Status)
	}
}

func TestLeaveCreate_Validation(t *testing.T) {
	db := setupTestDB(t)
	h := NewLeaveHandler(db, zap.NewNop())

	w := httptest.NewRecorder()
	h.Create(w, httptest.NewRequest(http.MethodPost, "/api/v1/leaves",
		strings.NewReader(`{"type":"annual"}`)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}
