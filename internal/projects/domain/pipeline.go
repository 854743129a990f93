package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	authdomain "github.com/birqadam/volunteer-backend/internal/auth/domain"
)

// Authorize rejects callers that are not approved organizers.
func Authorize(o authdomain.Organizer) error {
	if !o.CanCreateProjects() {
		return ErrNotAuthorized
	}
	return nil
}

// Normalize trims every field in place.
func (in *CreateInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.City = strings.TrimSpace(in.City)
	in.StartDate = strings.TrimSpace(in.StartDate)
	in.EndDate = strings.TrimSpace(in.EndDate)
	in.VolunteerType = strings.TrimSpace(in.VolunteerType)
	in.Latitude = strings.TrimSpace(in.Latitude)
	in.Longitude = strings.TrimSpace(in.Longitude)
}

// Validate checks the mandatory fields. Dates and coordinates are optional.
func (in CreateInput) Validate() error {
	if in.Title == "" || in.Description == "" || in.City == "" {
		return ErrMissingFields
	}
	return nil
}

// ParseVolunteerType maps raw to a known category; empty means any.
func ParseVolunteerType(raw string) (VolunteerType, error) {
	switch vt := VolunteerType(strings.ToLower(raw)); vt {
	case "":
		return VolunteerTypeAny, nil
	case VolunteerTypeAny, VolunteerTypeSocial, VolunteerTypeEnvironmental, VolunteerTypeCultural:
		return vt, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidVolunteerType, raw)
	}
}

// ResolveDates fills in an omitted start (today) and end (today + 30 days)
// from now. Supplied values are returned untouched.
func ResolveDates(start, end string, now time.Time) (string, string) {
	if start == "" {
		start = now.Format(DateLayout)
	}
	if end == "" {
		end = now.AddDate(0, 0, DefaultDurationDays).Format(DateLayout)
	}
	return start, end
}

// ResolveLocation returns a location only when both coordinates are given.
// A lone coordinate yields (nil, true, nil) so callers can log the drop.
func ResolveLocation(lat, lon string) (loc *Location, partial bool, err error) {
	if lat == "" || lon == "" {
		return nil, lat != "" || lon != "", nil
	}

	latitude, err := parseCoordinate(lat)
	if err != nil {
		return nil, false, err
	}
	longitude, err := parseCoordinate(lon)
	if err != nil {
		return nil, false, err
	}
	return &Location{Latitude: latitude, Longitude: longitude}, false, nil
}

func parseCoordinate(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCoordinate, raw)
	}
	return v, nil
}
