package domain

import "time"

const (
	StatusPending = "pending"

	// DateLayout is the calendar-date form stored in start_date/end_date.
	DateLayout = "2006-01-02"

	// DefaultDurationDays is how many calendar days past today an omitted
	// end_date lands.
	DefaultDurationDays = 30
)

type VolunteerType string

const (
	VolunteerTypeAny           VolunteerType = "any"
	VolunteerTypeSocial        VolunteerType = "social"
	VolunteerTypeEnvironmental VolunteerType = "environmental"
	VolunteerTypeCultural      VolunteerType = "cultural"
)

// Location is a latitude/longitude pair. It is only ever set as a pair.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Project is a volunteer activity record owned by one organizer.
type Project struct {
	ID            int64         `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	City          string        `json:"city"`
	StartDate     string        `json:"start_date"`
	EndDate       string        `json:"end_date"`
	VolunteerType VolunteerType `json:"volunteer_type"`
	Location      *Location     `json:"location,omitempty"`
	Status        string        `json:"status"`
	CreatorID     int64         `json:"creator_id"`
	CreatedAt     time.Time     `json:"created_at"`
}

// NewProject carries fully-resolved fields into the repository.
type NewProject struct {
	Title         string
	Description   string
	City          string
	StartDate     string
	EndDate       string
	VolunteerType VolunteerType
	Location      *Location
	CreatorID     int64
}

// CreateInput is the raw field map of a create request. Empty strings mean
// the field was absent.
type CreateInput struct {
	Title         string
	Description   string
	City          string
	StartDate     string
	EndDate       string
	VolunteerType string
	Latitude      string
	Longitude     string
}
