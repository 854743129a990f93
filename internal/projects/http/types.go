package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	authdomain "github.com/birqadam/volunteer-backend/internal/auth/domain"
	"github.com/birqadam/volunteer-backend/internal/projects/domain"
)

// ProjectCreator is the slice of the project service the handlers use.
type ProjectCreator interface {
	Authorize(caller authdomain.Organizer) error
	Create(ctx context.Context, caller authdomain.Organizer, in domain.CreateInput) (*domain.Project, error)
}

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc ProjectCreator
}

func New(svc ProjectCreator) *Handler {
	return &Handler{svc: svc}
}

// looseText accepts a JSON string or number and keeps its text form.
// null decodes to "".
type looseText string

func (t *looseText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*t = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = looseText(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("expected string or number, got %s", b)
		}
		*t = looseText(n.String())
		return nil
	}
}

type createReq struct {
	Title         looseText `json:"title"`
	Description   looseText `json:"description"`
	City          looseText `json:"city"`
	StartDate     looseText `json:"start_date"`
	EndDate       looseText `json:"end_date"`
	VolunteerType string    `json:"volunteer_type"`
	Latitude      looseText `json:"latitude"`
	Longitude     looseText `json:"longitude"`
}

func (r createReq) toInput() domain.CreateInput {
	return domain.CreateInput{
		Title:         string(r.Title),
		Description:   string(r.Description),
		City:          string(r.City),
		StartDate:     string(r.StartDate),
		EndDate:       string(r.EndDate),
		VolunteerType: r.VolunteerType,
		Latitude:      string(r.Latitude),
		Longitude:     string(r.Longitude),
	}
}

// createResp is the creation payload. Location and dates are left out.
type createResp struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	City           string `json:"city"`
	Status         string `json:"status"`
	VolunteerCount int    `json:"volunteer_count"`
	TaskCount      int    `json:"task_count"`
	CreatedAt      string `json:"created_at"`
}

func toCreateResponse(p *domain.Project) createResp {
	return createResp{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		City:           p.City,
		Status:         p.Status,
		VolunteerCount: 0,
		TaskCount:      0,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339Nano),
	}
}
