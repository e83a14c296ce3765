package httpapi

import (
	"github.com/oapi-codegen/nullable"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/ontravel-app/travel-journal-api/internal/app/trips"
	"github.com/ontravel-app/travel-journal-api/internal/domain"
	"github.com/ontravel-app/travel-journal-api/internal/ports/out/tripstore"
)

type signUpRequest struct {
	Name     string              `json:"name"`
	Email    openapi_types.Email `json:"email"`
	Password string              `json:"password"`
}

type logInRequest struct {
	Email    openapi_types.Email `json:"email"`
	Password string              `json:"password"`
}

// accountResponse never echoes the password.
type accountResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type createTripRequest struct {
	OwnerName   string `json:"ownerName"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	ImageRef    string `json:"imageRef"`
}

// updateTripRequest is a merge patch. Nullable distinguishes an omitted
// field from an explicit null; nulls are rejected by the service.
type updateTripRequest struct {
	Description nullable.Nullable[string] `json:"description,omitempty"`
	Date        nullable.Nullable[string] `json:"date,omitempty"`
	Location    nullable.Nullable[string] `json:"location,omitempty"`
	ImageRef    nullable.Nullable[string] `json:"imageRef,omitempty"`
}

func (req updateTripRequest) toInput() trips.UpdateTripInput {
	return trips.UpdateTripInput{
		Description: fromNullable(req.Description),
		Date:        fromNullable(req.Date),
		Location:    fromNullable(req.Location),
		ImageRef:    fromNullable(req.ImageRef),
	}
}

func fromNullable(n nullable.Nullable[string]) trips.Optional[string] {
	if !n.IsSpecified() {
		return trips.Unspecified[string]()
	}
	if n.IsNull() {
		return trips.Null[string]()
	}
	return trips.Some(n.MustGet())
}

type tripResponse struct {
	ID          string `json:"id"`
	OwnerName   string `json:"ownerName"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	ImageRef    string `json:"imageRef"`
}

type tripListResponse struct {
	Trips []tripResponse `json:"trips"`
}

type locationResponse struct {
	Location string `json:"location"`
}

func toTripResponse(id domain.TripID, t domain.Trip) tripResponse {
	return tripResponse{
		ID:          string(id),
		OwnerName:   t.OwnerName,
		Description: t.Description,
		Date:        t.Date,
		Location:    t.Location,
		ImageRef:    t.ImageRef,
	}
}

func toTripListResponse(rs []tripstore.Record) tripListResponse {
	out := tripListResponse{Trips: make([]tripResponse, 0, len(rs))}
	for _, r := range rs {
		out.Trips = append(out.Trips, toTripResponse(r.ID, r.Trip))
	}
	return out
}
