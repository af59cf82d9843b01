package models

import (
	"testing"
)

func TestGeofenceLocation_MatchesQuery(t *testing.T) {
	loc := GeofenceLocation{Name: "Main Office", Address: "12 Office Park"}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"empty query matches", "", true},
		{"lowercase against name", "office", true},
		{"uppercase against name", "MAIN", true},
		{"substring of address", "office park", true},
		{"mixed case", "oFfIcE", true},
		{"no match", "warehouse", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := loc.MatchesQuery(tt.query); got != tt.want {
				t.Errorf("MatchesQuery(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestGeofenceLocation_MatchesQuery_AddressOnly(t *testing.T) {
	loc := GeofenceLocation{Name: "HQ", Address: "1 Main St"}
	if !loc.MatchesQuery("main st") {
		t.Error("expected address substring to match")
	}
	if loc.MatchesQuery("office") {
		t.Error("expected no match for unrelated query")
	}
}

func TestProfile_FullName(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    string
	}{
		{"both names", Profile{FirstName: "Budi", LastName: "Santoso"}, "Budi Santoso"},
		{"first only", Profile{FirstName: "Budi"}, "Budi"},
		{"last only", Profile{LastName: "Santoso"}, "Santoso"},
		{"empty", Profile{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.profile.FullName(); got != tt.want {
				t.Errorf("FullName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLeaveRequest_Status(t *testing.T) {
	tests := []struct {
		name      string
		status    LeaveStatus
		isPending bool
		canReview bool
	}{
		{"pending", LeaveStatusPending, true, true},
		{"approved", LeaveStatusApproved, false, false},
		{"rejected", LeaveStatusRejected, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lr := LeaveRequest{Status: tt.status}
			if got := lr.IsPending(); got != tt.isPending {
				t.Errorf("IsPending() = %v, want %v", got, tt.isPending)
			}
			if got := lr.CanReview(); got != tt.canReview {
				t.Errorf("CanReview() = %v, want %v", got, tt.canReview)
			}
		})
	}
}
