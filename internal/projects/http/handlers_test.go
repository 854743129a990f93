package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birqadam/volunteer-backend/internal/auth"
	authdomain "github.com/birqadam/volunteer-backend/internal/auth/domain"
	"github.com/birqadam/volunteer-backend/internal/projects/domain"
	"github.com/birqadam/volunteer-backend/internal/projects/service"
)

var (
	approved   = authdomain.Organizer{ID: 7, UID: "org-7", IsOrganizer: true, IsApproved: true}
	unapproved = authdomain.Organizer{ID: 8, UID: "org-8", IsOrganizer: true}
	createdAt  = time.Date(2026, time.October, 17, 9, 30, 0, 0, time.UTC)
	today      = time.Date(2026, time.October, 17, 15, 0, 0, 0, time.UTC)
)

type memStore struct {
	mu      sync.Mutex
	created []domain.NewProject
	err     error
}

func (m *memStore) Create(_ context.Context, in domain.NewProject) (*domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.created = append(m.created, in)
	return &domain.Project{
		ID:            int64(len(m.created)),
		Title:         in.Title,
		Description:   in.Description,
		City:          in.City,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		VolunteerType: in.VolunteerType,
		Location:      in.Location,
		Status:        domain.StatusPending,
		CreatorID:     in.CreatorID,
		CreatedAt:     createdAt,
	}, nil
}

func setupRouter(t *testing.T, caller *authdomain.Organizer, creator ProjectCreator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	g := router.Group("/api/v1/organizer/projects", func(c *gin.Context) {
		if caller != nil {
			c.Set(auth.CtxOrganizer, *caller)
		}
		c.Next()
	})
	New(creator).Register(g)
	return router
}

func setupWithStore(t *testing.T, caller *authdomain.Organizer) (*gin.Engine, *memStore) {
	t.Helper()
	store := &memStore{}
	svc := service.NewProjectService(store,
		service.WithClock(func() time.Time { return today }),
		service.WithMetrics(service.NewMetricsWithRegistry(prometheus.NewRegistry())),
	)
	return setupRouter(t, caller, svc), store
}

func post(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "/api/v1/organizer/projects", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestCreate_DefaultsDates(t *testing.T) {
	router, store := setupWithStore(t, &approved)

	rr := post(t, router, `{"title":"Clean the park","description":"Bring gloves","city":"Metropolis"}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{
		"id": 1,
		"title": "Clean the park",
		"description": "Bring gloves",
		"city": "Metropolis",
		"status": "pending",
		"volunteer_count": 0,
		"task_count": 0,
		"created_at": "2026-10-17T09:30:00Z"
	}`, rr.Body.String())

	require.Len(t, store.created, 1)
	assert.Equal(t, "2026-10-17", store.created[0].StartDate)
	assert.Equal(t, "2026-11-16", store.created[0].EndDate)
	assert.Equal(t, approved.ID, store.created[0].CreatorID)
	assert.Equal(t, domain.VolunteerTypeAny, store.created[0].VolunteerType)
}

func TestCreate_LocationIsStoredButNotReturned(t *testing.T) {
	router, store := setupWithStore(t, &approved)

	rr := post(t, router, `{"title":"Clean the park","description":"Bring gloves","city":"Metropolis",
		"latitude":"10.5","longitude":"20.25"}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Len(t, store.created, 1)
	require.NotNil(t, store.created[0].Location)
	assert.Equal(t, 10.5, store.created[0].Location.Latitude)
	assert.Equal(t, 20.25, store.created[0].Location.Longitude)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.NotContains(t, body, "latitude")
	assert.NotContains(t, body, "longitude")
	assert.NotContains(t, body, "start_date")
}

func TestCreate_NumericCoordinates(t *testing.T) {
	router, store := setupWithStore(t, &approved)

	rr := post(t, router, `{"title":"t","description":"d","city":"c","latitude":43.238949,"longitude":76.889709}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, store.created[0].Location)
	assert.Equal(t, 43.238949, store.created[0].Location.Latitude)
	assert.Equal(t, 76.889709, store.created[0].Location.Longitude)
}

func TestCreate_NumericTextFields(t *testing.T) {
	router, store := setupWithStore(t, &approved)

	rr := post(t, router, `{"title":"Clean the park","description":"Bring gloves","city":12}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Len(t, store.created, 1)
	assert.Equal(t, "12", store.created[0].City)
	assert.Contains(t, rr.Body.String(), `"city":"12"`)
}

func TestCreate_PartialLocationIsIgnored(t *testing.T) {
	router, store := setupWithStore(t, &approved)

	rr := post(t, router, `{"title":"t","description":"d","city":"c","latitude":10.5,"longitude":null}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Nil(t, store.created[0].Location)
}

func TestCreate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing city", `{"title":"Clean the park","description":"Bring gloves"}`, "Missing required fields"},
		{"blank title", `{"title":"   ","description":"d","city":"c"}`, "Missing required fields"},
		{"empty object", `{}`, "Missing required fields"},
		{"empty body", ``, "Missing required fields"},
		{"bad latitude", `{"title":"t","description":"d","city":"c","latitude":"north","longitude":"20"}`, "Invalid latitude/longitude"},
		{"unknown volunteer type", `{"title":"t","description":"d","city":"c","volunteer_type":"sports"}`, "Invalid volunteer_type"},
		{"malformed json", `{"title":`, "Invalid request body"},
		{"coordinate object", `{"title":"t","description":"d","city":"c","latitude":{"x":1}}`, "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, store := setupWithStore(t, &approved)

			rr := post(t, router, tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, `{"error":"`+tt.want+`"}`, rr.Body.String())
			assert.Empty(t, store.created)
		})
	}
}

func TestCreate_NotAuthorized(t *testing.T) {
	tests := []struct {
		name   string
		caller *authdomain.Organizer
		body   string
	}{
		{"unapproved organizer", &unapproved, `{"title":"Clean the park","description":"Bring gloves","city":"Metropolis"}`},
		{"no organizer on context", nil, `{"title":"t","description":"d","city":"c"}`},
		{"gate runs before body parsing", &unapproved, `{"title":`},
		{"gate runs before validation", &unapproved, `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, store := setupWithStore(t, tt.caller)

			rr := post(t, router, tt.body)

			assert.Equal(t, http.StatusForbidden, rr.Code)
			assert.JSONEq(t, `{"error":"Not authorized"}`, rr.Body.String())
			assert.Empty(t, store.created)
		})
	}
}

func TestCreate_NotIdempotent(t *testing.T) {
	router, store := setupWithStore(t, &approved)
	body := `{"title":"t","description":"d","city":"c"}`

	first := post(t, router, body)
	second := post(t, router, body)

	require.Equal(t, http.StatusCreated, first.Code)
	require.Equal(t, http.StatusCreated, second.Code)
	assert.Len(t, store.created, 2)
	assert.NotEqual(t, first.Body.String(), second.Body.String())
}

func TestCreate_PersistenceFailureIsOpaque(t *testing.T) {
	store := &memStore{err: &domain.PersistenceError{Op: "insert project", Err: errors.New("pq: relation \"projects\" does not exist")}}
	svc := service.NewProjectService(store, service.WithMetrics(service.NewMetricsWithRegistry(prometheus.NewRegistry())))
	router := setupRouter(t, &approved, svc)

	rr := post(t, router, `{"title":"t","description":"d","city":"c"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Failed to create project"}`, rr.Body.String())
}

type failingCreator struct{ err error }

func (f failingCreator) Authorize(authdomain.Organizer) error { return nil }

func (f failingCreator) Create(context.Context, authdomain.Organizer, domain.CreateInput) (*domain.Project, error) {
	return nil, f.err
}

func TestCreate_UnclassifiedFailureCarriesText(t *testing.T) {
	router := setupRouter(t, &approved, failingCreator{err: errors.New("clock skew detected")})

	rr := post(t, router, `{"title":"t","description":"d","city":"c"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"clock skew detected"}`, rr.Body.String())
}

func TestMapError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{domain.ErrNotAuthorized, http.StatusForbidden, "Not authorized"},
		{domain.ErrMissingFields, http.StatusBadRequest, "Missing required fields"},
		{errors.Join(domain.ErrInvalidCoordinate, errors.New("strconv.ParseFloat: invalid syntax")), http.StatusBadRequest, "Invalid latitude/longitude"},
		{&domain.PersistenceError{Op: "insert project", Err: errors.New("deadlock")}, http.StatusInternalServerError, "Failed to create project"},
		{errors.New("boom"), http.StatusInternalServerError, "boom"},
	}

	for _, tt := range tests {
		status, msg := mapError(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
		assert.Equal(t, tt.msg, msg, tt.err.Error())
	}
}
