package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/birqadam/volunteer-backend/internal/projects/domain"
)

// ProjectRepository provides persistence operations for projects
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts one project in state pending. Every call produces a new row.
func (r *ProjectRepository) Create(ctx context.Context, in domain.NewProject) (*domain.Project, error) {
	if in.CreatorID == 0 {
		return nil, fmt.Errorf("creator id required")
	}

	var lat, lon sql.NullFloat64
	if in.Location != nil {
		lat = sql.NullFloat64{Float64: in.Location.Latitude, Valid: true}
		lon = sql.NullFloat64{Float64: in.Location.Longitude, Valid: true}
	}

	const q = `
INSERT INTO projects (
  title, description, city,
  start_date, end_date, volunteer_type,
  latitude, longitude,
  status, creator_id
)
VALUES ($1, $2, $3, $4::date, $5::date, $6, $7, $8, $9, $10)
RETURNING id, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'), created_at;
`
	p := domain.Project{
		Title:         in.Title,
		Description:   in.Description,
		City:          in.City,
		VolunteerType: in.VolunteerType,
		Location:      in.Location,
		Status:        domain.StatusPending,
		CreatorID:     in.CreatorID,
	}

	err := r.db.QueryRowContext(ctx, q,
		in.Title, in.Description, in.City,
		in.StartDate, in.EndDate, string(in.VolunteerType),
		lat, lon,
		domain.StatusPending, in.CreatorID,
	).Scan(&p.ID, &p.StartDate, &p.EndDate, &p.CreatedAt)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "insert project", Err: describe(err)}
	}

	return &p, nil
}

// describe keeps the postgres error text but adds the constraint or column
// when the driver reports one.
func describe(err error) error {
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) {
		return err
	}
	switch {
	case pgErr.Constraint != "":
		return fmt.Errorf("%w (constraint %s)", err, pgErr.Constraint)
	case pgErr.Column != "":
		return fmt.Errorf("%w (column %s)", err, pgErr.Column)
	default:
		return err
	}
}
