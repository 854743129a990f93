package service

import (
	"context"
	"time"

	authdomain "github.com/birqadam/volunteer-backend/internal/auth/domain"
	"github.com/birqadam/volunteer-backend/internal/logutils"
	"github.com/birqadam/volunteer-backend/internal/projects/domain"
)

// ProjectStore is the persistence the service needs.
type ProjectStore interface {
	Create(ctx context.Context, in domain.NewProject) (*domain.Project, error)
}

// ProjectService handles project-related business logic
type ProjectService struct {
	repo    ProjectStore
	metrics *Metrics
	now     func() time.Time
}

type Option func(*ProjectService)

// WithClock overrides the server clock used for default dates.
func WithClock(now func() time.Time) Option {
	return func(s *ProjectService) { s.now = now }
}

func WithMetrics(m *Metrics) Option {
	return func(s *ProjectService) { s.metrics = m }
}

// NewProjectService creates a new project service
func NewProjectService(repo ProjectStore, opts ...Option) *ProjectService {
	s := &ProjectService{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Authorize is the gate on its own, for callers that must reject before
// they even decode a request body.
func (s *ProjectService) Authorize(caller authdomain.Organizer) error {
	if err := domain.Authorize(caller); err != nil {
		s.metrics.recordFailure(err)
		return err
	}
	return nil
}

// Create runs gate, validation, date defaulting and location parsing, then
// persists the project in a single insert.
func (s *ProjectService) Create(ctx context.Context, caller authdomain.Organizer, in domain.CreateInput) (*domain.Project, error) {
	p, err := s.create(ctx, caller, in)
	if err != nil {
		s.metrics.recordFailure(err)
		return nil, err
	}
	s.metrics.recordCreated(p.VolunteerType)
	return p, nil
}

func (s *ProjectService) create(ctx context.Context, caller authdomain.Organizer, in domain.CreateInput) (*domain.Project, error) {
	if err := domain.Authorize(caller); err != nil {
		return nil, err
	}

	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	vt, err := domain.ParseVolunteerType(in.VolunteerType)
	if err != nil {
		return nil, err
	}

	loc, partial, err := domain.ResolveLocation(in.Latitude, in.Longitude)
	if err != nil {
		return nil, err
	}
	if partial {
		logutils.FromContext(ctx).WithFields(logutils.Fields{
			"organizer_id": caller.ID,
			"latitude":     in.Latitude,
			"longitude":    in.Longitude,
		}).Debug("partial coordinates ignored")
	}

	start, end := domain.ResolveDates(in.StartDate, in.EndDate, s.now())

	return s.repo.Create(ctx, domain.NewProject{
		Title:         in.Title,
		Description:   in.Description,
		City:          in.City,
		StartDate:     start,
		EndDate:       end,
		VolunteerType: vt,
		Location:      loc,
		CreatorID:     caller.ID,
	})
}
