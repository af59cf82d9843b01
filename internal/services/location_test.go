package services

import (
	"context"
	"testing"

	"github.com/Travelintrips/HRD/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open db")
	require.NoError(t, db.AutoMigrate(
		&models.Branch{}, &models.Employee{},
		&models.GeofenceLocation{}, &models.EmployeeLocationAssignment{},
	), "migrate")
	return db
}

func newTestService(t *testing.T) (*LocationService, *gorm.DB) {
	db := setupTestDB(t)
	return NewLocationService(db, nil, zap.NewNop()), db
}

func seedEmployees(t *testing.T, db *gorm.DB, n int) []uint {
	t.Helper()
	ids := make([]uint, 0, n)
	for i := 0; i < n; i++ {
		e := models.Employee{Name: "Employee", Code: "EMP-" + string(rune('A'+i))}
		require.NoError(t, db.Create(&e).Error)
		ids = append(ids, e.ID)
	}
	return ids
}

func TestLocationInput_Validate(t *testing.T) {
	valid := LocationInput{Name: "HQ", Address: "1 Main St", Latitude: -6.2, Longitude: 106.8, Radius: 100}
	assert.True(t, valid.Validate().Empty())

	tests := []struct {
		name  string
		mut   func(*LocationInput)
		field string
	}{
		{"empty name", func(in *LocationInput) { in.Name = " " }, "name"},
		{"empty address", func(in *LocationInput) { in.Address = "" }, "address"},
		{"zero radius", func(in *LocationInput) { in.Radius = 0 }, "radius"},
		{"negative radius", func(in *LocationInput) { in.Radius = -10 }, "radius"},
		{"latitude too high", func(in *LocationInput) { in.Latitude = 91 }, "latitude"},
		{"latitude too low", func(in *LocationInput) { in.Latitude = -90.5 }, "latitude"},
		{"longitude too high", func(in *LocationInput) { in.Longitude = 181 }, "longitude"},
		{"longitude too low", func(in *LocationInput) { in.Longitude = -180.1 }, "longitude"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mut(&in)
			v := in.Validate()
			assert.Contains(t, v, tt.field)
		})
	}
}

func TestLocationService_CreateAndList(t *testing.T) {
	svc, db := newTestService(t)
	emp := seedEmployees(t, db, 2)

	loc, err := svc.Create(context.Background(), LocationInput{
		Name: "HQ", Address: "1 Main St",
		Latitude: -6.2, Longitude: 106.8, Radius: 100,
		AssignedEmployees: emp,
	})
	require.NoError(t, err)
	assert.Len(t, loc.AssignedEmployees, 2)

	list, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "HQ", list[0].Name)
	assert.ElementsMatch(t, emp, list[0].AssignedEmployees)
}

func TestLocationService_List_NewestFirst(t *testing.T) {
	svc, db := newTestService(t)
	// Insert directly with explicit timestamps so ordering is deterministic.
	require.NoError(t, db.Exec(
		`INSERT INTO geofence_locations (name, address, latitude, longitude, radius, created_at, updated_at)
		 VALUES ('Old', 'A', 0, 0, 10, '2024-01-01 00:00:00', '2024-01-01 00:00:00'),
		        ('New', 'B', 0, 0, 10, '2025-01-01 00:00:00', '2025-01-01 00:00:00')`).Error)

	list, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "New", list[0].Name)
	assert.Equal(t, "Old", list[1].Name)
}

func TestLocationService_Search(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.Create(ctx, LocationInput{Name: "Main Office", Address: "Jl. Sudirman 1", Latitude: 1, Longitude: 1, Radius: 50})
	require.NoError(t, err)
	_, err = svc.Create(ctx, LocationInput{Name: "Warehouse", Address: "12 Office Park", Latitude: 1, Longitude: 1, Radius: 50})
	require.NoError(t, err)
	_, err = svc.Create(ctx, LocationInput{Name: "Garage", Address: "Jl. Merdeka 9", Latitude: 1, Longitude: 1, Radius: 50})
	require.NoError(t, err)

	// Case-insensitive substring against name OR address.
	list, err := svc.List(ctx, "office")
	require.NoError(t, err)
	names := []string{}
	for _, l := range list {
		names = append(names, l.Name)
	}
	assert.ElementsMatch(t, []string{"Main Office", "Warehouse"}, names)

	list, err = svc.List(ctx, "MERDEKA")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Garage", list[0].Name)
}

func TestLocationService_Update_ReplacesAssignments(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	emp := seedEmployees(t, db, 2)

	loc, err := svc.Create(ctx, LocationInput{
		Name: "HQ", Address: "1 Main St",
		Latitude: -6.2, Longitude: 106.8, Radius: 100,
		AssignedEmployees: emp,
	})
	require.NoError(t, err)

	// Edit down to a single employee.
	updated, err := svc.Update(ctx, loc.ID, LocationInput{
		Name: "HQ", Address: "1 Main St",
		Latitude: -6.2, Longitude: 106.8, Radius: 100,
		AssignedEmployees: []uint{emp[0]},
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{emp[0]}, updated.AssignedEmployees)

	var rows []models.EmployeeLocationAssignment
	require.NoError(t, db.Where("location_id = ?", loc.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, emp[0], rows[0].EmployeeID)
}

func TestLocationService_Update_Idempotent(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	emp := seedEmployees(t, db, 2)

	in := LocationInput{
		Name: "HQ", Address: "1 Main St",
		Latitude: -6.2, Longitude: 106.8, Radius: 100,
		AssignedEmployees: emp,
	}
	loc, err := svc.Create(ctx, in)
	require.NoError(t, err)

	// Saving the same selection twice yields the same final rows.
	_, err = svc.Update(ctx, loc.ID, in)
	require.NoError(t, err)
	_, err = svc.Update(ctx, loc.ID, in)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.EmployeeLocationAssignment{}).
		Where("location_id = ?", loc.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestLocationService_Create_DedupesSelection(t *testing.T) {
	svc, db := newTestService(t)
	emp := seedEmployees(t, db, 1)

	loc, err := svc.Create(context.Background(), LocationInput{
		Name: "HQ", Address: "1 Main St",
		Latitude: 0, Longitude: 0, Radius: 10,
		AssignedEmployees: []uint{emp[0], emp[0], emp[0]},
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{emp[0]}, loc.AssignedEmployees)
}

func TestLocationService_Delete_NoOrphans(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	emp := seedEmployees(t, db, 2)

	loc, err := svc.Create(ctx, LocationInput{
		Name: "HQ", Address: "1 Main St",
		Latitude: 0, Longitude: 0, Radius: 10,
		AssignedEmployees: emp,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, loc.ID))

	var count int64
	require.NoError(t, db.Model(&models.EmployeeLocationAssignment{}).
		Where("location_id = ?", loc.ID).Count(&count).Error)
	assert.Zero(t, count, "deleting a location must leave no assignment rows behind")
}

func TestLocationService_NotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, 999)
	assert.ErrorIs(t, err, ErrLocationNotFound)
	_, err = svc.Update(ctx, 999, LocationInput{Name: "X", Address: "Y", Radius: 1})
	assert.ErrorIs(t, err, ErrLocationNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 999), ErrLocationNotFound)
}

func TestLocationService_IsAssigned(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	emp := seedEmployees(t, db, 2)

	loc, err := svc.Create(ctx, LocationInput{
		Name: "HQ", Address: "1 Main St",
		Latitude: 0, Longitude: 0, Radius: 10,
		AssignedEmployees: []uint{emp[0]},
	})
	require.NoError(t, err)

	ok, err := svc.IsAssigned(ctx, emp[0], loc.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsAssigned(ctx, emp[1], loc.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
