package validation

import "strings"

// Violations maps a field name to a machine-readable violation code.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func PositiveInt(field string, val int, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

func PositiveFloat(field string, val float64, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

func RangeFloat(field string, val, minVal, maxVal float64, v Violations) {
	if val < minVal || val > maxVal {
		v[field] = "out_of_range"
	}
}

// Latitude checks the WGS84 latitude range.
func Latitude(field string, val float64, v Violations) {
	RangeFloat(field, val, -90, 90, v)
}

// Longitude checks the WGS84 longitude range.
func Longitude(field string, val float64, v Violations) {
	RangeFloat(field, val, -180, 180, v)
}
