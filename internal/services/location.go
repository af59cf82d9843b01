package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Travelintrips/HRD/internal/models"
	"github.com/Travelintrips/HRD/internal/realtime"
	"github.com/Travelintrips/HRD/internal/validation"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrLocationNotFound = errors.New("location_not_found")

// LocationInput carries the geofence form fields plus the employee selection.
type LocationInput struct {
	Name              string  `json:"name"`
	Address           string  `json:"address"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	Radius            int     `json:"radius"`
	AssignedEmployees []uint  `json:"assigned_employees"`
}

// Validate runs the field checks that must pass before any write.
func (in LocationInput) Validate() validation.Violations {
	v := make(validation.Violations)
	validation.Required("name", in.Name, v)
	validation.Required("address", in.Address, v)
	validation.PositiveInt("radius", in.Radius, v)
	validation.Latitude("latitude", in.Latitude, v)
	validation.Longitude("longitude", in.Longitude, v)
	return v
}

// LocationService owns geofence locations and their employee assignments.
type LocationService struct {
	db   *gorm.DB
	feed *realtime.Feed
	log  *zap.Logger
}

func NewLocationService(db *gorm.DB, feed *realtime.Feed, log *zap.Logger) *LocationService {
	return &LocationService{db: db, feed: feed, log: log}
}

// List returns all locations newest-first, each with its assigned employee
// ids attached. The assignment lookup is one batched query over every
// returned location id. When that batch fails, the locations are still
// returned with empty assignment lists.
func (s *LocationService) List(ctx context.Context, query string) ([]models.GeofenceLocation, error) {
	db := s.db.WithContext(ctx)
	if query != "" {
		like := "%" + query + "%"
		db = db.Where("LOWER(name) LIKE LOWER(?) OR LOWER(address) LIKE LOWER(?)", like, like)
	}

	var locations []models.GeofenceLocation
	if err := db.Order("created_at DESC").Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	for i := range locations {
		locations[i].AssignedEmployees = []uint{}
	}
	if len(locations) == 0 {
		return locations, nil
	}

	ids := make([]uint, len(locations))
	for i, l := range locations {
		ids[i] = l.ID
	}
	var assignments []models.EmployeeLocationAssignment
	if err := s.db.WithContext(ctx).Where("location_id IN ?", ids).Find(&assignments).Error; err != nil {
		// Degrade to locations without assignment lists rather than failing
		// the whole page.
		s.log.Warn("assignment lookup failed, returning bare locations", zap.Error(err))
		return locations, nil
	}

	byLocation := make(map[uint][]uint, len(locations))
	for _, a := range assignments {
		byLocation[a.LocationID] = append(byLocation[a.LocationID], a.EmployeeID)
	}
	for i := range locations {
		if emp, ok := byLocation[locations[i].ID]; ok {
			locations[i].AssignedEmployees = emp
		}
	}
	return locations, nil
}

// Get returns one location with its assigned employee ids.
func (s *LocationService) Get(ctx context.Context, id uint) (*models.GeofenceLocation, error) {
	var loc models.GeofenceLocation
	if err := s.db.WithContext(ctx).First(&loc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	loc.AssignedEmployees = []uint{}
	var assignments []models.EmployeeLocationAssignment
	if err := s.db.WithContext(ctx).Where("location_id = ?", loc.ID).Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("get location assignments: %w", err)
	}
	for _, a := range assignments {
		loc.AssignedEmployees = append(loc.AssignedEmployees, a.EmployeeID)
	}
	return &loc, nil
}

// Create inserts a location and one assignment row per selected employee in
// a single transaction.
func (s *LocationService) Create(ctx context.Context, in LocationInput) (*models.GeofenceLocation, error) {
	loc := models.GeofenceLocation{
		Name:      in.Name,
		Address:   in.Address,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Radius:    in.Radius,
	}
	employees := dedupe(in.AssignedEmployees)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&loc).Error; err != nil {
			return err
		}
		return insertAssignments(tx, loc.ID, employees)
	})
	if err != nil {
		return nil, fmt.Errorf("create location: %w", err)
	}

	loc.AssignedEmployees = employees
	if s.feed != nil {
		s.feed.Publish("geofence_locations", realtime.ActionInsert, loc)
	}
	return &loc, nil
}

// Update rewrites the location row and replaces its assignment set with the
// new selection: delete all rows for the location, insert the selection.
// Both run in one transaction, so readers never observe the empty window
// between the delete and the insert.
func (s *LocationService) Update(ctx context.Context, id uint, in LocationInput) (*models.GeofenceLocation, error) {
	var loc models.GeofenceLocation
	employees := dedupe(in.AssignedEmployees)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&loc, id).Error; err != nil {
			return err
		}
		loc.Name = in.Name
		loc.Address = in.Address
		loc.Latitude = in.Latitude
		loc.Longitude = in.Longitude
		loc.Radius = in.Radius
		if err := tx.Save(&loc).Error; err != nil {
			return err
		}
		if err := tx.Where("location_id = ?", loc.ID).
			Delete(&models.EmployeeLocationAssignment{}).Error; err != nil {
			return err
		}
		return insertAssignments(tx, loc.ID, employees)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, fmt.Errorf("update location: %w", err)
	}

	loc.AssignedEmployees = employees
	if s.feed != nil {
		s.feed.Publish("geofence_locations", realtime.ActionUpdate, loc)
	}
	return &loc, nil
}

// Delete removes a location and its assignments. The FK cascade covers
// Postgres; the assignments are also deleted explicitly so no orphan rows
// survive on dialects that don't enforce foreign keys.
func (s *LocationService) Delete(ctx context.Context, id uint) error {
	var loc models.GeofenceLocation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&loc, id).Error; err != nil {
			return err
		}
		if err := tx.Where("location_id = ?", id).
			Delete(&models.EmployeeLocationAssignment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.GeofenceLocation{}, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLocationNotFound
		}
		return fmt.Errorf("delete location: %w", err)
	}

	if s.feed != nil {
		s.feed.Publish("geofence_locations", realtime.ActionDelete, map[string]uint{"id": id})
	}
	return nil
}

// IsAssigned reports whether the employee holds an assignment for the
// location. Membership only; no distance evaluation happens server-side.
func (s *LocationService) IsAssigned(ctx context.Context, employeeID, locationID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.EmployeeLocationAssignment{}).
		Where("employee_id = ? AND location_id = ?", employeeID, locationID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("assignment check: %w", err)
	}
	return count > 0, nil
}

func insertAssignments(tx *gorm.DB, locationID uint, employeeIDs []uint) error {
	if len(employeeIDs) == 0 {
		return nil
	}
	rows := make([]models.EmployeeLocationAssignment, len(employeeIDs))
	for i, empID := range employeeIDs {
		rows[i] = models.EmployeeLocationAssignment{EmployeeID: empID, LocationID: locationID}
	}
	return tx.Create(&rows).Error
}

// dedupe preserves order while dropping repeated ids, so a doubled selection
// in the payload can't trip the unique pair constraint.
func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
