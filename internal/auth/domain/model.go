package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")

// Organizer is the caller identity as far as project creation cares:
// the account row behind the token subject plus its two privilege flags.
type Organizer struct {
	ID          int64   `json:"id"`
	UID         string  `json:"uid"`
	Email       string  `json:"email,omitempty"`
	DisplayName *string `json:"display_name,omitempty"`
	IsOrganizer bool    `json:"is_organizer"`
	IsApproved  bool    `json:"is_approved"`
}

// CanCreateProjects reports whether both privilege flags are set.
func (o Organizer) CanCreateProjects() bool {
	return o.IsOrganizer && o.IsApproved
}

// Identity is what a token verifier extracts from a bearer token.
type Identity struct {
	UID   string
	Email string
}
