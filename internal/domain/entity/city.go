package entity

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrUnsupportedCity is returned when a city filter names a city outside SupportedCities.
var ErrUnsupportedCity = errors.New("unsupported city")

// SupportedCities is the fixed set of cities users and campaigns may reference.
//
//nolint:gochecknoglobals
var SupportedCities = []string{
	"Ahmedabad", "Aurangabad", "Bangalore", "Bhopal", "Bhubaneswar",
	"Chandigarh", "Chennai", "Coimbatore", "Delhi", "Ghaziabad",
	"Gwalior", "Hyderabad", "Indore", "Jaipur", "Kanpur",
	"Khandwa", "Kochi", "Kolkata", "Lucknow", "Mumbai",
	"Nagpur", "Nashik", "Patna", "Pune", "Surat",
	"Vadodara", "Visakhapatnam",
}

// IsSupportedCity reports whether city matches a supported city, ignoring case and surrounding space.
func IsSupportedCity(city string) bool {
	city = strings.TrimSpace(city)
	if city == "" {
		return false
	}

	for _, supported := range SupportedCities {
		if strings.EqualFold(supported, city) {
			return true
		}
	}

	return false
}

// NormalizeCityFilters trims entries, drops blanks, removes case-insensitive
// duplicates keeping the first spelling and rejects unsupported cities.
// An empty result is returned as nil, meaning all cities.
func NormalizeCityFilters(raw []string) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(raw))
	normalized := make([]string, 0, len(raw))
	for _, city := range raw {
		city = strings.TrimSpace(city)
		if city == "" {
			continue
		}

		if !IsSupportedCity(city) {
			return nil, errors.Wrapf(ErrUnsupportedCity, "%q", city)
		}

		key := strings.ToLower(city)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		normalized = append(normalized, city)
	}

	if len(normalized) == 0 {
		return nil, nil
	}

	return normalized, nil
}
