package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayplan/backend/internal/auth"
	"github.com/wayplan/backend/internal/domain"
	"github.com/wayplan/backend/internal/handler"
	"github.com/wayplan/backend/internal/handler/gen"
)

// mockItineraryServicer is a test double for handler.ItineraryServicer.
// Set only the method fields your test needs.
type mockItineraryServicer struct {
	create       func(ctx context.Context, ownerID uuid.UUID, trip domain.Trip) (domain.Trip, error)
	listByOwner  func(ctx context.Context, ownerID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)
	get          func(ctx context.Context, tripID, requesterID uuid.UUID) (domain.TripView, error)
	delete       func(ctx context.Context, tripID, requesterID uuid.UUID) error
	replaceStops func(ctx context.Context, tripID, requesterID uuid.UUID, stops []domain.Stop, expectedVersion *int) (domain.Trip, error)
	updateBudget func(ctx context.Context, tripID, requesterID uuid.UUID, patch domain.BudgetPatch, expectedVersion *int) (domain.Trip, error)
	copyTrip     func(ctx context.Context, sourceTripID, requesterID uuid.UUID) (domain.Trip, error)
}

func (m *mockItineraryServicer) Create(ctx context.Context, ownerID uuid.UUID, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, ownerID, trip)
}
func (m *mockItineraryServicer) ListByOwner(ctx context.Context, ownerID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listByOwner(ctx, ownerID, p)
}
func (m *mockItineraryServicer) Get(ctx context.Context, tripID, requesterID uuid.UUID) (domain.TripView, error) {
	return m.get(ctx, tripID, requesterID)
}
func (m *mockItineraryServicer) Delete(ctx context.Context, tripID, requesterID uuid.UUID) error {
	return m.delete(ctx, tripID, requesterID)
}
func (m *mockItineraryServicer) ReplaceStops(ctx context.Context, tripID, requesterID uuid.UUID, stops []domain.Stop, expectedVersion *int) (domain.Trip, error) {
	return m.replaceStops(ctx, tripID, requesterID, stops, expectedVersion)
}
func (m *mockItineraryServicer) UpdateBudget(ctx context.Context, tripID, requesterID uuid.UUID, patch domain.BudgetPatch, expectedVersion *int) (domain.Trip, error) {
	return m.updateBudget(ctx, tripID, requesterID, patch, expectedVersion)
}
func (m *mockItineraryServicer) Copy(ctx context.Context, sourceTripID, requesterID uuid.UUID) (domain.Trip, error) {
	return m.copyTrip(ctx, sourceTripID, requesterID)
}

// compile-time check: mockItineraryServicer must satisfy handler.ItineraryServicer.
var _ handler.ItineraryServicer = (*mockItineraryServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newTripHandler wires a Server with the given mock into the generated chi
// router. This mirrors exactly how main.go wires it in production, minus the
// auth middleware — tests inject the requester directly into the context.
func newTripHandler(svc handler.ItineraryServicer) http.Handler {
	srv := handler.NewServer(svc, nil, nil)
	return gen.Handler(gen.NewStrictHandler(srv, nil))
}

var requester = uuid.MustParse("11111111-1111-1111-1111-111111111111")

// authedRequest builds a request carrying requester in its context, the way
// the auth middleware would after validating a bearer token.
func authedRequest(method, target string, body *bytes.Buffer) *http.Request {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, body)
	}
	return req.WithContext(auth.WithUserID(req.Context(), requester))
}

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:        uuid.New(),
		OwnerID:   requester,
		Name:      "Japan 2024",
		StartDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
		Stops:     []domain.Stop{},
		Version:   1,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// ---- POST /trips -----------------------------------------------------------

func TestCreateTrip_201(t *testing.T) {
	fixture := tripFixture()
	svc := &mockItineraryServicer{
		create: func(_ context.Context, ownerID uuid.UUID, _ domain.Trip) (domain.Trip, error) {
			assert.Equal(t, requester, ownerID)
			return fixture, nil
		},
	}
	h := newTripHandler(svc)

	body := jsonBody(t, map[string]any{
		"name":       "Japan 2024",
		"start_date": "2024-04-01",
		"end_date":   "2024-04-15",
	})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(http.MethodPost, "/trips", body))

	require.Equal(t, http.StatusCreated, rec.Code)

	var got gen.Trip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Japan 2024", got.Name)
	assert.Equal(t, fixture.ID, got.Id)
	assert.Empty(t, got.Stops)
}

func TestCreateTrip_422_Validation(t *testing.T) {
	svc := &mockItineraryServicer{
		create: func(_ context.Context, _ uuid.UUID, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrValidation
		},
	}
	h := newTripHandler(svc)

	body := jsonBody(t, map[string]any{
		"name":       "",
		"start_date": "2024-04-01",
		"end_date":   "2024-04-15",
	})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(http.MethodPost, "/trips", body))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var errResp gen.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "validation_error", errResp.Error.Code)
}

// ---- GET /trips ------------------------------------------------------------

func TestListTrips_200_PassesPagination(t *testing.T) {
	svc := &mockItineraryServicer{
		listByOwner: func(_ context.Context, ownerID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
			assert.Equal(t, requester, ownerID)
			assert.Equal(t, 2, p.Page)
			assert.Equal(t, 5, p.Limit)
			return []domain.Trip{tripFixture()}, 11, nil
		},
	}
	h := newTripHandler(svc)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(http.MethodGet, "/trips?page=2&limit=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got gen.TripList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got.Data, 1)
	assert.Equal(t, 11, got.Pagination.Total)
	assert.Equal(t, 2, got.Pagination.Page)
}

// ---- GET /trips/{id} -------------------------------------------------------

func TestGetTrip_200_ExpandedView(t *testing.T) {
	trip := tripFixture()
	city := domain.City{ID: uuid.New(), Name: "Kyoto", Country: "Japan"}
	trip.Stops = []domain.Stop{{
		CityID:    city.ID,
		StartDate: time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC),
	}}
	view := domain.TripView{
		Trip:  trip,
		Stops: []domain.StopView{{Stop: trip.Stops[0], City: &city, Activities: []domain.ActivityRefView{}}},
	}
	svc := &mockItineraryServicer{
		get: func(_ context.Context, tripID, requesterID uuid.UUID) (domain.TripView, error) {
			assert.Equal(t, trip.ID, tripID)
			assert.Equal(t, requester, requesterID)
			return view, nil
		},
	}
	h := newTripHandler(svc)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(http.MethodGet, "/trips/"+trip.ID.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got gen.TripDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Stops, 1)
	require.NotNil(t, got.Stops[0].City)
	assert.Equal(t, "Kyoto", got.Stops[0].City.Name)
}

func TestGetTrip_403_Private(t *testing.T) {
	svc := &mockItineraryServicer{
		get: func(_ context.Context, _, _ uuid.UUID) (domain.TripView, error) {
			return domain.TripView{}, domain.ErrForbidden
		},
	}
	h := newTripHandler(svc)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(http.MethodGet, "/trips/"+uuid.NewString(), nil))

	require.Equal(t, http.StatusForbidden, rec.Code)

	var errResp gen.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "forbidden", errResp.Error.Code)
}

func TestGetTrip_404(t *testing.T) {
	svc := &mockItineraryServicer{
		get: func(_ context.Context, _, _ uuid.UUID) (domain.TripView, error) {
			return domain.TripView{}, domain.ErrNotFound
		},
	}
	h := newTripHandler(svc)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(http.MethodGet, "/trips/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- DELETE /trips/{id} ----------------------------------------------------

func TestDeleteTrip_204(t *testing.T) {
	svc := &mockItineraryServicer{
		delete: func(_ context.Context, _, requesterID uuid.UUID) error {
			assert.Equal(t, requester, requesterID)
			return nil
		},
	}
	h := newTripHandler(svc)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(http.MethodDelete, "/trips/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteTrip_403_NotOwner(t *testing.T) {
	svc := &mockItineraryServicer{
		delete: func(_ context.Context, _, _ uuid.UUID) error {
			return domain.ErrForbidden
		},
	}
	h := newTripHandler(svc)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(http.MethodDelete, "/trips/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// ---- PUT /trips/{id}/stops -------------------------------------------------

func TestReplaceTripStops_200(t *testing.T) {
	updated := tripFixture()
	updated.Budget = domain.Budget{Total: 130, Activities: 130}
	updated.Version = 2

	var gotStops []domain.Stop
	svc := &mockItineraryServicer{
		replaceStops: func(_ context.Context, _, _ uuid.UUID, stops []domain.Stop, expectedVersion *int) (domain.Trip, error) {
			gotStops = stops
			assert.Nil(t, expectedVersion)
			return updated, nil
		},
	}
	h := newTripHandler(svc)

	cityID := uuid.New()
	activityID := uuid.New()
	body := jsonBody(t, map[string]any{
		"stops": []map[string]any{{
			"city_id":    cityID,
			"start_date": "2024-04-02",
			"end_date":   "2024-04-06",
			"activities": []map[string]any{
				{"activity_id": activityID, "cost_override": 130},
			},
		}},
	})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(http.MethodPut, "/trips/"+updated.ID.String()+"/stops", body))

	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, gotStops, 1)
	assert.Equal(t, cityID, gotStops[0].CityID)
	require.Len(t, gotStops[0].Activities, 1)
	require.NotNil(t, gotStops[0].Activities[0].CostOverride)
	assert.Equal(t, 130.0, *gotStops[0].Activities[0].CostOverride)

	var got gen.Trip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 130.0, got.Budget.Total)
	assert.Equal(t, 2, got.Version)
}

func TestReplaceTripStops_409_StaleVersion(t *testing.T) {
	svc := &mockItineraryServicer{
		replaceStops: func(_ context.Context, _, _ uuid.UUID, _ []domain.Stop, expectedVersion *int) (domain.Trip, error) {
			require.NotNil(t, expectedVersion)
			assert.Equal(t, 1, *expectedVersion)
			return domain.Trip{}, domain.ErrConflict
		},
	}
	h := newTripHandler(svc)

	body := jsonBody(t, map[string]any{"stops": []any{}, "version": 1})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(http.MethodPut, "/trips/"+uuid.NewString()+"/stops", body))

	require.Equal(t, http.StatusConflict, rec.Code)

	var errResp gen.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "conflict", errResp.Error.Code)
}

func TestReplaceTripStops_422_Validation(t *testing.T) {
	svc := &mockItineraryServicer{
		replaceStops: func(_ context.Context, _, _ uuid.UUID, _ []domain.Stop, _ *int) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrValidation
		},
	}
	h := newTripHandler(svc)

	body := jsonBody(t, map[string]any{"stops": []any{}})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(http.MethodPut, "/trips/"+uuid.NewString()+"/stops", body))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- PUT /trips/{id}/budget ------------------------------------------------

func TestUpdateTripBudget_200_PartialPatch(t *testing.T) {
	updated := tripFixture()
	updated.Budget = domain.Budget{Total: 130, Transport: 500, Activities: 130}

	var gotPatch domain.BudgetPatch
	svc := &mockItineraryServicer{
		updateBudget: func(_ context.Context, _, _ uuid.UUID, patch domain.BudgetPatch, _ *int) (domain.Trip, error) {
			gotPatch = patch
			return updated, nil
		},
	}
	h := newTripHandler(svc)

	body := jsonBody(t, map[string]any{"budget": map[string]any{"transport": 500}})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(http.MethodPut, "/trips/"+updated.ID.String()+"/budget", body))

	require.Equal(t, http.StatusOK, rec.Code)

	// Only the supplied field reaches the service; everything else is nil.
	require.NotNil(t, gotPatch.Transport)
	assert.Equal(t, 500.0, *gotPatch.Transport)
	assert.Nil(t, gotPatch.Total)
	assert.Nil(t, gotPatch.Meals)

	var got gen.Trip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 130.0, got.Budget.Total, "total comes back unchanged")
}

func TestUpdateTripBudget_422_EmptyPatch(t *testing.T) {
	svc := &mockItineraryServicer{
		updateBudget: func(_ context.Context, _, _ uuid.UUID, _ domain.BudgetPatch, _ *int) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrValidation
		},
	}
	h := newTripHandler(svc)

	body := jsonBody(t, map[string]any{"budget": map[string]any{}})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(http.MethodPut, "/trips/"+uuid.NewString()+"/budget", body))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- POST /trips/{id}/copy -------------------------------------------------

func TestCopyTrip_201(t *testing.T) {
	copied := tripFixture()
	copied.Name = "Copy of Japan 2024"
	svc := &mockItineraryServicer{
		copyTrip: func(_ context.Context, _, requesterID uuid.UUID) (domain.Trip, error) {
			assert.Equal(t, requester, requesterID)
			return copied, nil
		},
	}
	h := newTripHandler(svc)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(http.MethodPost, "/trips/"+uuid.NewString()+"/copy", nil))

	require.Equal(t, http.StatusCreated, rec.Code)

	var got gen.Trip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Copy of Japan 2024", got.Name)
}

func TestCopyTrip_403_PrivateSource(t *testing.T) {
	svc := &mockItineraryServicer{
		copyTrip: func(_ context.Context, _, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrForbidden
		},
	}
	h := newTripHandler(svc)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(http.MethodPost, "/trips/"+uuid.NewString()+"/copy", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
