package handler

import (
	"context"
	"errors"

	"github.com/wayplan/backend/internal/domain"
	"github.com/wayplan/backend/internal/handler/gen"
)

// ListCities handles GET /cities. The optional ?q= parameter filters by
// case-insensitive substring match on the city name; results are ordered
// most popular first.
func (s *Server) ListCities(ctx context.Context, req gen.ListCitiesRequestObject) (gen.ListCitiesResponseObject, error) {
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)

	query := ""
	if req.Params.Q != nil {
		query = *req.Params.Q
	}

	cities, total, err := s.catalog.SearchCities(ctx, query, params)
	if err != nil {
		return nil, err
	}

	data := make([]gen.City, len(cities))
	for i, c := range cities {
		data[i] = cityToResponse(c)
	}
	return gen.ListCities200JSONResponse{
		Data: data,
		Pagination: gen.Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	}, nil
}

// GetCity handles GET /cities/{cityId}.
func (s *Server) GetCity(ctx context.Context, req gen.GetCityRequestObject) (gen.GetCityResponseObject, error) {
	city, err := s.catalog.GetCity(ctx, req.CityId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetCity404JSONResponse(notFoundBody("city not found")), nil
		}
		return nil, err
	}

	return gen.GetCity200JSONResponse(cityToResponse(city)), nil
}

// ListCityActivities handles GET /cities/{cityId}/activities.
// An unknown city yields 404; a known city with no activities yields an
// empty array.
func (s *Server) ListCityActivities(ctx context.Context, req gen.ListCityActivitiesRequestObject) (gen.ListCityActivitiesResponseObject, error) {
	activities, err := s.catalog.ListActivities(ctx, req.CityId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ListCityActivities404JSONResponse(notFoundBody("city not found")), nil
		}
		return nil, err
	}

	data := make([]gen.Activity, len(activities))
	for i, a := range activities {
		data[i] = activityToResponse(a)
	}
	return gen.ListCityActivities200JSONResponse(data), nil
}

// --- mapping helpers --------------------------------------------------------

func cityToResponse(c domain.City) gen.City {
	out := gen.City{
		Id:          c.ID,
		Name:        c.Name,
		Country:     c.Country,
		Region:      optStr(c.Region),
		CostIndex:   c.CostIndex,
		Popularity:  c.Popularity,
		Description: optStr(c.Description),
	}
	if len(c.ImageURLs) > 0 {
		urls := c.ImageURLs
		out.ImageUrls = &urls
	}
	return out
}

func activityToResponse(a domain.Activity) gen.Activity {
	out := gen.Activity{
		Id:          a.ID,
		CityId:      a.CityID,
		Name:        a.Name,
		Description: optStr(a.Description),
		Cost:        a.Cost,
		Duration:    optStr(a.Duration),
		Category:    optStr(a.Category),
	}
	if len(a.ImageURLs) > 0 {
		urls := a.ImageURLs
		out.ImageUrls = &urls
	}
	return out
}
