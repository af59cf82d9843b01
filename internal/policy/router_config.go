package policy

import (
	"github.com/Travelintrips/HRD/internal/handlers"
	"github.com/Travelintrips/HRD/internal/realtime"
	"github.com/Travelintrips/HRD/internal/services"
	"github.com/Travelintrips/HRD/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RouterConfig holds the configured handlers and services for the
// application. Everything is constructed here, once, with its dependencies
// passed in explicitly — there is no import-time global client.
type RouterConfig struct {
	// Auth handler
	AuthHandler *handlers.AuthHandler

	// Business handlers
	LocationHandler   *handlers.LocationHandler
	EmployeeHandler   *handlers.EmployeeHandler
	BranchHandler     *handlers.BranchHandler
	ShiftHandler      *handlers.ShiftHandler
	LeaveHandler      *handlers.LeaveHandler
	FreelanceHandler  *handlers.FreelanceHandler
	AttendanceHandler *handlers.AttendanceHandler
	ReportHandler     *handlers.ReportHandler
	SettingsHandler   *handlers.SettingsHandler

	// Services
	LocationService *services.LocationService
	ReportService   *services.ReportService
}

// NewRouterConfig wires services and handlers together.
func NewRouterConfig(db *gorm.DB, store *storage.DocumentStore, feed *realtime.Feed, log *zap.Logger) *RouterConfig {
	// Access policies: profiles are owner-only; geofence data is shared
	// operator data and stays open (see internal/db access policies).
	ownership := NewOwnershipPolicy()

	locationService := services.NewLocationService(db, feed, log)
	reportService := services.NewReportService(db)

	return &RouterConfig{
		AuthHandler:       handlers.NewAuthHandler(db, store, feed, log),
		LocationHandler:   handlers.NewLocationHandler(locationService, log),
		EmployeeHandler:   handlers.NewEmployeeHandler(db, feed, log),
		BranchHandler:     handlers.NewBranchHandler(db, log),
		ShiftHandler:      handlers.NewShiftHandler(db, log),
		LeaveHandler:      handlers.NewLeaveHandler(db, log),
		FreelanceHandler:  handlers.NewFreelanceHandler(db, log),
		AttendanceHandler: handlers.NewAttendanceHandler(db, locationService, log),
		ReportHandler:     handlers.NewReportHandler(reportService, log),
		SettingsHandler:   handlers.NewSettingsHandler(db, ownership, feed, log),

		LocationService: locationService,
		ReportService:   reportService,
	}
}
