package handler

import (
	"context"
	"errors"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/wayplan/backend/internal/domain"
	"github.com/wayplan/backend/internal/handler/gen"
)

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(ctx context.Context, req gen.CreateTripRequestObject) (gen.CreateTripResponseObject, error) {
	owner, err := requesterID(ctx)
	if err != nil {
		return nil, err
	}

	trip, err := requestToTrip(req.Body)
	if err != nil {
		return gen.CreateTrip422JSONResponse(requestBody(err.Error())), nil
	}

	created, err := s.trips.Create(ctx, owner, trip)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateTrip422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreateTrip201JSONResponse(tripToResponse(created)), nil
}

// ListTrips handles GET /trips. It only ever returns the caller's own
// trips; public trips of other users are reachable by ID, not by listing.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(ctx context.Context, req gen.ListTripsRequestObject) (gen.ListTripsResponseObject, error) {
	owner, err := requesterID(ctx)
	if err != nil {
		return nil, err
	}

	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	trips, total, err := s.trips.ListByOwner(ctx, owner, params)
	if err != nil {
		return nil, err
	}

	data := make([]gen.Trip, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	return gen.ListTrips200JSONResponse{
		Data: data,
		Pagination: gen.Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	}, nil
}

// GetTrip handles GET /trips/{id}. The response carries the trip with its
// city and activity references expanded; references to deleted catalog rows
// come back with the raw IDs but no embedded object.
func (s *Server) GetTrip(ctx context.Context, req gen.GetTripRequestObject) (gen.GetTripResponseObject, error) {
	requester, err := requesterID(ctx)
	if err != nil {
		return nil, err
	}

	view, err := s.trips.Get(ctx, req.Id, requester)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetTrip404JSONResponse(notFoundBody("trip not found")), nil
		}
		if errors.Is(err, domain.ErrForbidden) {
			return gen.GetTrip403JSONResponse(forbiddenBody("trip is private")), nil
		}
		return nil, err
	}

	return gen.GetTrip200JSONResponse(viewToResponse(view)), nil
}

// DeleteTrip handles DELETE /trips/{id}.
func (s *Server) DeleteTrip(ctx context.Context, req gen.DeleteTripRequestObject) (gen.DeleteTripResponseObject, error) {
	requester, err := requesterID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.trips.Delete(ctx, req.Id, requester); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteTrip404JSONResponse(notFoundBody("trip not found")), nil
		}
		if errors.Is(err, domain.ErrForbidden) {
			return gen.DeleteTrip403JSONResponse(forbiddenBody("only the owner can delete a trip")), nil
		}
		return nil, err
	}

	return gen.DeleteTrip204Response{}, nil
}

// ReplaceTripStops handles PUT /trips/{id}/stops. The submitted array
// wholesale-replaces the stored stop list and the budget is recomputed in
// the same write. An optional version token in the body turns the write
// into a compare-and-set; a stale token yields 409.
func (s *Server) ReplaceTripStops(ctx context.Context, req gen.ReplaceTripStopsRequestObject) (gen.ReplaceTripStopsResponseObject, error) {
	requester, err := requesterID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Body == nil {
		return gen.ReplaceTripStops422JSONResponse(requestBody("request body is required")), nil
	}

	updated, err := s.trips.ReplaceStops(ctx, req.Id, requester, stopsFromRequest(req.Body.Stops), req.Body.Version)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.ReplaceTripStops422JSONResponse(validationBody(err)), nil
		}
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ReplaceTripStops404JSONResponse(notFoundBody("trip not found")), nil
		}
		if errors.Is(err, domain.ErrForbidden) {
			return gen.ReplaceTripStops403JSONResponse(forbiddenBody("only the owner can edit a trip")), nil
		}
		if errors.Is(err, domain.ErrConflict) {
			return gen.ReplaceTripStops409JSONResponse(conflictBody("trip was modified concurrently")), nil
		}
		return nil, err
	}

	return gen.ReplaceTripStops200JSONResponse(tripToResponse(updated)), nil
}

// UpdateTripBudget handles PUT /trips/{id}/budget. Supplied fields are
// merged over the stored budget; omitted fields, including the total, are
// left untouched.
func (s *Server) UpdateTripBudget(ctx context.Context, req gen.UpdateTripBudgetRequestObject) (gen.UpdateTripBudgetResponseObject, error) {
	requester, err := requesterID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Body == nil {
		return gen.UpdateTripBudget422JSONResponse(requestBody("request body is required")), nil
	}

	updated, err := s.trips.UpdateBudget(ctx, req.Id, requester, budgetPatchFromRequest(req.Body.Budget), req.Body.Version)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.UpdateTripBudget422JSONResponse(validationBody(err)), nil
		}
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateTripBudget404JSONResponse(notFoundBody("trip not found")), nil
		}
		if errors.Is(err, domain.ErrForbidden) {
			return gen.UpdateTripBudget403JSONResponse(forbiddenBody("only the owner can edit a trip")), nil
		}
		if errors.Is(err, domain.ErrConflict) {
			return gen.UpdateTripBudget409JSONResponse(conflictBody("trip was modified concurrently")), nil
		}
		return nil, err
	}

	return gen.UpdateTripBudget200JSONResponse(tripToResponse(updated)), nil
}

// CopyTrip handles POST /trips/{id}/copy. The copy is owned by the caller,
// always private, and fully independent of the source.
func (s *Server) CopyTrip(ctx context.Context, req gen.CopyTripRequestObject) (gen.CopyTripResponseObject, error) {
	requester, err := requesterID(ctx)
	if err != nil {
		return nil, err
	}

	copied, err := s.trips.Copy(ctx, req.Id, requester)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.CopyTrip404JSONResponse(notFoundBody("trip not found")), nil
		}
		if errors.Is(err, domain.ErrForbidden) {
			return gen.CopyTrip403JSONResponse(forbiddenBody("trip is private")), nil
		}
		return nil, err
	}

	return gen.CopyTrip201JSONResponse(tripToResponse(copied)), nil
}

// --- mapping helpers --------------------------------------------------------

// requestToTrip converts a CreateTripRequest body into a domain.Trip.
// Returns an error if the body is missing; field-level validation belongs
// to the service.
func requestToTrip(body *gen.CreateTripRequest) (domain.Trip, error) {
	if body == nil {
		return domain.Trip{}, errors.New("request body is required")
	}
	t := domain.Trip{
		Name:        body.Name,
		Description: strVal(body.Description),
		StartDate:   body.StartDate.Time,
		EndDate:     body.EndDate.Time,
		CoverPhoto:  strVal(body.CoverPhoto),
	}
	if body.IsPublic != nil {
		t.IsPublic = *body.IsPublic
	}
	return t, nil
}

// tripToResponse converts a domain.Trip into the API representation with
// raw (unexpanded) stops.
func tripToResponse(t domain.Trip) gen.Trip {
	return gen.Trip{
		Id:          t.ID,
		OwnerId:     t.OwnerID,
		Name:        t.Name,
		Description: optStr(t.Description),
		StartDate:   openapi_types.Date{Time: t.StartDate},
		EndDate:     openapi_types.Date{Time: t.EndDate},
		CoverPhoto:  optStr(t.CoverPhoto),
		Budget:      budgetToResponse(t.Budget),
		IsPublic:    t.IsPublic,
		Stops:       stopsToResponse(t.Stops),
		Version:     t.Version,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// viewToResponse converts an expanded trip view into the API detail shape.
func viewToResponse(v domain.TripView) gen.TripDetail {
	t := v.Trip
	stops := make([]gen.ExpandedStop, len(v.Stops))
	for i, sv := range v.Stops {
		es := gen.ExpandedStop{
			CityId:     sv.Stop.CityID,
			StartDate:  openapi_types.Date{Time: sv.Stop.StartDate},
			EndDate:    openapi_types.Date{Time: sv.Stop.EndDate},
			Activities: make([]gen.ExpandedActivityRef, len(sv.Activities)),
		}
		if sv.City != nil {
			city := cityToResponse(*sv.City)
			es.City = &city
		}
		for j, av := range sv.Activities {
			ear := gen.ExpandedActivityRef{
				ActivityId:   av.Ref.ActivityID,
				Time:         optStr(av.Ref.Time),
				Notes:        optStr(av.Ref.Notes),
				CostOverride: av.Ref.CostOverride,
			}
			if av.Activity != nil {
				act := activityToResponse(*av.Activity)
				ear.Activity = &act
			}
			es.Activities[j] = ear
		}
		stops[i] = es
	}
	return gen.TripDetail{
		Id:          t.ID,
		OwnerId:     t.OwnerID,
		Name:        t.Name,
		Description: optStr(t.Description),
		StartDate:   openapi_types.Date{Time: t.StartDate},
		EndDate:     openapi_types.Date{Time: t.EndDate},
		CoverPhoto:  optStr(t.CoverPhoto),
		Budget:      budgetToResponse(t.Budget),
		IsPublic:    t.IsPublic,
		Stops:       stops,
		Version:     t.Version,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func stopsToResponse(stops []domain.Stop) []gen.Stop {
	out := make([]gen.Stop, len(stops))
	for i, s := range stops {
		refs := make([]gen.ActivityRef, len(s.Activities))
		for j, a := range s.Activities {
			refs[j] = gen.ActivityRef{
				ActivityId:   a.ActivityID,
				Time:         optStr(a.Time),
				Notes:        optStr(a.Notes),
				CostOverride: a.CostOverride,
			}
		}
		out[i] = gen.Stop{
			CityId:     s.CityID,
			StartDate:  openapi_types.Date{Time: s.StartDate},
			EndDate:    openapi_types.Date{Time: s.EndDate},
			Activities: refs,
		}
	}
	return out
}

func stopsFromRequest(stops []gen.Stop) []domain.Stop {
	if stops == nil {
		return nil
	}
	out := make([]domain.Stop, len(stops))
	for i, s := range stops {
		refs := make([]domain.ActivityRef, len(s.Activities))
		for j, a := range s.Activities {
			refs[j] = domain.ActivityRef{
				ActivityID:   a.ActivityId,
				Time:         strVal(a.Time),
				Notes:        strVal(a.Notes),
				CostOverride: a.CostOverride,
			}
		}
		out[i] = domain.Stop{
			CityID:     s.CityId,
			StartDate:  s.StartDate.Time,
			EndDate:    s.EndDate.Time,
			Activities: refs,
		}
	}
	return out
}

func budgetToResponse(b domain.Budget) gen.Budget {
	return gen.Budget{
		Total:         b.Total,
		Transport:     b.Transport,
		Accommodation: b.Accommodation,
		Activities:    b.Activities,
		Meals:         b.Meals,
	}
}

func budgetPatchFromRequest(p gen.BudgetPatch) domain.BudgetPatch {
	return domain.BudgetPatch{
		Total:         p.Total,
		Transport:     p.Transport,
		Accommodation: p.Accommodation,
		Activities:    p.Activities,
		Meals:         p.Meals,
	}
}

// optStr maps the domain's empty-string-means-absent convention onto the
// API's optional pointer fields.
func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
