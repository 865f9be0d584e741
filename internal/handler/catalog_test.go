package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayplan/backend/internal/domain"
	"github.com/wayplan/backend/internal/handler"
	"github.com/wayplan/backend/internal/handler/gen"
)

// mockCatalogServicer is a test double for handler.CatalogServicer.
type mockCatalogServicer struct {
	searchCities   func(ctx context.Context, query string, p domain.PaginationParams) ([]domain.City, int64, error)
	getCity        func(ctx context.Context, id uuid.UUID) (domain.City, error)
	listActivities func(ctx context.Context, cityID uuid.UUID) ([]domain.Activity, error)
}

func (m *mockCatalogServicer) SearchCities(ctx context.Context, query string, p domain.PaginationParams) ([]domain.City, int64, error) {
	return m.searchCities(ctx, query, p)
}
func (m *mockCatalogServicer) GetCity(ctx context.Context, id uuid.UUID) (domain.City, error) {
	return m.getCity(ctx, id)
}
func (m *mockCatalogServicer) ListActivities(ctx context.Context, cityID uuid.UUID) ([]domain.Activity, error) {
	return m.listActivities(ctx, cityID)
}

var _ handler.CatalogServicer = (*mockCatalogServicer)(nil)

func newCatalogHandler(svc handler.CatalogServicer) http.Handler {
	srv := handler.NewServer(nil, nil, svc)
	return gen.Handler(gen.NewStrictHandler(srv, nil))
}

func cityFixture() domain.City {
	return domain.City{
		ID:         uuid.New(),
		Name:       "Kyoto",
		Country:    "Japan",
		CostIndex:  3,
		Popularity: 95,
	}
}

// ---- GET /cities -----------------------------------------------------------

func TestListCities_200_WithQuery(t *testing.T) {
	fixture := cityFixture()
	svc := &mockCatalogServicer{
		searchCities: func(_ context.Context, query string, p domain.PaginationParams) ([]domain.City, int64, error) {
			assert.Equal(t, "kyo", query)
			assert.Equal(t, 1, p.Page)
			return []domain.City{fixture}, 1, nil
		},
	}
	h := newCatalogHandler(svc)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cities?q=kyo", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got gen.CityList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Data, 1)
	assert.Equal(t, "Kyoto", got.Data[0].Name)
	assert.Equal(t, 3, got.Data[0].CostIndex)
}

func TestListCities_200_EmptyResult(t *testing.T) {
	svc := &mockCatalogServicer{
		searchCities: func(_ context.Context, _ string, _ domain.PaginationParams) ([]domain.City, int64, error) {
			return []domain.City{}, 0, nil
		},
	}
	h := newCatalogHandler(svc)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cities?q=nowhere", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	// Empty pages serialize as [], never null.
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

// ---- GET /cities/{cityId} --------------------------------------------------

func TestGetCity_200(t *testing.T) {
	fixture := cityFixture()
	svc := &mockCatalogServicer{
		getCity: func(_ context.Context, id uuid.UUID) (domain.City, error) {
			assert.Equal(t, fixture.ID, id)
			return fixture, nil
		},
	}
	h := newCatalogHandler(svc)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cities/"+fixture.ID.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got gen.City
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, fixture.ID, got.Id)
}

func TestGetCity_404(t *testing.T) {
	svc := &mockCatalogServicer{
		getCity: func(_ context.Context, _ uuid.UUID) (domain.City, error) {
			return domain.City{}, domain.ErrNotFound
		},
	}
	h := newCatalogHandler(svc)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cities/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- GET /cities/{cityId}/activities ---------------------------------------

func TestListCityActivities_200(t *testing.T) {
	city := cityFixture()
	svc := &mockCatalogServicer{
		listActivities: func(_ context.Context, cityID uuid.UUID) ([]domain.Activity, error) {
			assert.Equal(t, city.ID, cityID)
			return []domain.Activity{
				{ID: uuid.New(), CityID: city.ID, Name: "Fushimi Inari", Cost: 0},
			}, nil
		},
	}
	h := newCatalogHandler(svc)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cities/"+city.ID.String()+"/activities", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got []gen.Activity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Fushimi Inari", got[0].Name)
}

func TestListCityActivities_404_UnknownCity(t *testing.T) {
	svc := &mockCatalogServicer{
		listActivities: func(_ context.Context, _ uuid.UUID) ([]domain.Activity, error) {
			return nil, domain.ErrNotFound
		},
	}
	h := newCatalogHandler(svc)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cities/"+uuid.NewString()+"/activities", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
