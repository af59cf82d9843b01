package db

import (
	"fmt"
	"time"

	"github.com/Travelintrips/HRD/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection, retrying a few times so the server
// survives the database starting up alongside it.
func Connect(dsn string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error
	for i := 0; i < 5; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			return db, nil
		}
		time.Sleep(2 * time.Second)
	}
	return nil, fmt.Errorf("database connection failed: %w", err)
}

// Migrate applies schema migrations and, on Postgres, the access-control and
// realtime publication statements.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Branch{},
		&models.Employee{},
		&models.GeofenceLocation{},
		&models.EmployeeLocationAssignment{},
		&models.Shift{},
		&models.LeaveRequest{},
		&models.Freelancer{},
		&models.Attendance{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	if db.Dialector.Name() == "postgres" {
		if err := applyAccessPolicies(db); err != nil {
			return err
		}
		if err := applyRealtimePublication(db); err != nil {
			return err
		}
	}
	return nil
}

// applyAccessPolicies declares row-level security. Profiles are owner-only;
// geofence locations and assignments are deliberately open (USING true) —
// that posture is inherited from the product and kept as an explicit,
// reviewed decision rather than a silent default.
func applyAccessPolicies(db *gorm.DB) error {
	stmts := []string{
		`ALTER TABLE profiles ENABLE ROW LEVEL SECURITY`,
		`DROP POLICY IF EXISTS profiles_owner ON profiles`,
		`CREATE POLICY profiles_owner ON profiles
			USING (user_id = NULLIF(current_setting('app.user_id', true), '')::bigint)
			WITH CHECK (user_id = NULLIF(current_setting('app.user_id', true), '')::bigint)`,

		`ALTER TABLE geofence_locations ENABLE ROW LEVEL SECURITY`,
		`DROP POLICY IF EXISTS geofence_locations_open ON geofence_locations`,
		`CREATE POLICY geofence_locations_open ON geofence_locations
			USING (true) WITH CHECK (true)`,

		`ALTER TABLE employee_location_assignments ENABLE ROW LEVEL SECURITY`,
		`DROP POLICY IF EXISTS employee_location_assignments_open ON employee_location_assignments`,
		`CREATE POLICY employee_location_assignments_open ON employee_location_assignments
			USING (true) WITH CHECK (true)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("apply access policy: %w", err)
		}
	}
	return nil
}

// applyRealtimePublication adds the four change-fed tables to a logical
// replication publication, mirroring what internal/realtime broadcasts.
func applyRealtimePublication(db *gorm.DB) error {
	stmt := `DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_publication WHERE pubname = 'hrd_realtime') THEN
			CREATE PUBLICATION hrd_realtime
				FOR TABLE profiles, employees, geofence_locations, employee_location_assignments;
		END IF;
	END $$`
	if err := db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("apply realtime publication: %w", err)
	}
	return nil
}
