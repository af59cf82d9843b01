package services

import (
	"context"
	"fmt"

	"github.com/Travelintrips/HRD/internal/models"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ReportService exports attendance data for the reports page.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

const attendanceSheet = "Attendance"

// AttendanceXLSX builds a spreadsheet of attendance rows between from and to
// (inclusive, YYYY-MM-DD; empty bounds are unbounded). Employee and location
// names are resolved with one batched lookup each.
func (s *ReportService) AttendanceXLSX(ctx context.Context, from, to string) (*excelize.File, error) {
	db := s.db.WithContext(ctx).Model(&models.Attendance{})
	if from != "" {
		db = db.Where("created_at >= ?", from+" 00:00:00")
	}
	if to != "" {
		db = db.Where("created_at <= ?", to+" 23:59:59")
	}

	var rows []models.Attendance
	if err := db.Order("created_at").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load attendance: %w", err)
	}

	employeeNames, err := s.employeeNames(ctx, rows)
	if err != nil {
		return nil, err
	}
	locationNames, err := s.locationNames(ctx, rows)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", attendanceSheet); err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}
	headers := []string{"Time", "Employee", "Location", "Type", "Latitude", "Longitude"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(attendanceSheet, cell, h); err != nil {
			return nil, fmt.Errorf("build report: %w", err)
		}
	}

	for i, row := range rows {
		values := []any{
			row.CreatedAt.Format("2006-01-02 15:04:05"),
			employeeNames[row.EmployeeID],
			locationNames[row.LocationID],
			string(row.Type),
			floatOrEmpty(row.Latitude),
			floatOrEmpty(row.Longitude),
		}
		for j, val := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(attendanceSheet, cell, val); err != nil {
				return nil, fmt.Errorf("build report: %w", err)
			}
		}
	}
	return f, nil
}

func (s *ReportService) employeeNames(ctx context.Context, rows []models.Attendance) (map[uint]string, error) {
	ids := make([]uint, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.EmployeeID)
	}
	names := make(map[uint]string)
	if len(ids) == 0 {
		return names, nil
	}
	var employees []models.Employee
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("resolve employees: %w", err)
	}
	for _, e := range employees {
		names[e.ID] = e.Name
	}
	return names, nil
}

func (s *ReportService) locationNames(ctx context.Context, rows []models.Attendance) (map[uint]string, error) {
	ids := make([]uint, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.LocationID)
	}
	names := make(map[uint]string)
	if len(ids) == 0 {
		return names, nil
	}
	var locations []models.GeofenceLocation
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("resolve locations: %w", err)
	}
	for _, l := range locations {
		names[l.ID] = l.Name
	}
	return names, nil
}

func floatOrEmpty(f *float64) any {
	if f == nil {
		return ""
	}
	return *f
}
