package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/ontravel-app/travel-journal-api/internal/app/accounts"
	"github.com/ontravel-app/travel-journal-api/internal/app/trips"
	"github.com/ontravel-app/travel-journal-api/internal/domain"
)

// Server holds the app services behind the HTTP handlers.
type Server struct {
	Accounts *accounts.Service
	Trips    *trips.Service

	log zerolog.Logger
}

func NewServer(accountsSvc *accounts.Service, tripsSvc *trips.Service, log zerolog.Logger) *Server {
	return &Server{
		Accounts: accountsSvc,
		Trips:    tripsSvc,
		log:      log,
	}
}

func (s *Server) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if !decodeBody(w, r, &req) {
		return
	}
	a, err := s.Accounts.SignUp(r.Context(), accounts.SignUpInput{
		Name:     req.Name,
		Email:    string(req.Email),
		Password: req.Password,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, accountResponse{Name: a.Name, Email: a.Email})
}

func (s *Server) LogIn(w http.ResponseWriter, r *http.Request) {
	var req logInRequest
	if !decodeBody(w, r, &req) {
		return
	}
	a, err := s.Accounts.LogIn(r.Context(), accounts.LogInInput{
		Email:    string(req.Email),
		Password: req.Password,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, accountResponse{Name: a.Name, Email: a.Email})
}

func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if !decodeBody(w, r, &req) {
		return
	}
	id, t, err := s.Trips.CreateTrip(r.Context(), trips.CreateTripInput{
		OwnerName:   req.OwnerName,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		ImageRef:    req.ImageRef,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTripResponse(id, t))
}

// ListTrips returns every trip, or only one owner's trips when the owner
// query parameter is present.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	if owner := r.URL.Query().Get("owner"); owner != "" {
		records, err := s.Trips.ListTripsByOwner(r.Context(), owner)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toTripListResponse(records))
		return
	}
	records, err := s.Trips.ListTrips(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTripListResponse(records))
}

func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id := domain.TripID(chi.URLParam(r, "tripID"))
	t, err := s.Trips.GetTrip(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTripResponse(id, t))
}

func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id := domain.TripID(chi.URLParam(r, "tripID"))
	var req updateTripRequest
	if !decodeBody(w, r, &req) {
		return
	}
	t, err := s.Trips.UpdateTrip(r.Context(), id, req.toInput())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTripResponse(id, t))
}

func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id := domain.TripID(chi.URLParam(r, "tripID"))
	if err := s.Trips.DeleteTrip(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) ReverseLocation(w http.ResponseWriter, r *http.Request) {
	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR",
			"lat and lon must be decimal coordinates", nil)
		return
	}
	loc, err := s.Trips.ResolveLocation(r.Context(), lat, lon)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, locationResponse{Location: loc})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "invalid request body", nil)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
