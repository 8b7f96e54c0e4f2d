package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Pritish2005/Event-Hub/internal/common"
	"github.com/Pritish2005/Event-Hub/internal/server/models"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type createEventRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
}

// updateEventRequest uses pointer fields so an absent key and a key present
// with a zero value stay distinguishable after decoding.
type updateEventRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Location    *string    `json:"location"`
	Capacity    *int       `json:"capacity"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(r.Context(), w, common.ErrorValidation)
		return
	}

	user, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.logger.Info(r.Context(), "user registered", "email", user.Email)
	s.writeJSON(r.Context(), w, http.StatusOK, toUserResponse(user))
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(r.Context(), w, common.ErrorValidation)
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeJSON(r.Context(), w, http.StatusOK, tokenResponse{Token: token})
}

func (s *Server) listEvents(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	items, totalPages, err := s.events.ListAll(r.Context(), page, limit)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeJSON(r.Context(), w, http.StatusOK, eventListResponse{
		Events:      toEventResponses(items),
		CurrentPage: page,
		TotalPages:  totalPages,
	})
}

func (s *Server) listFiltered(w http.ResponseWriter, r *http.Request) {
	user, ok := principalFromContext(r.Context())
	if !ok {
		s.writeError(r.Context(), w, common.ErrorUnauthorized)
		return
	}

	page, limit, err := parsePagination(r)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	items, totalPages, err := s.events.ListOthers(r.Context(), user.ID, page, limit)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeJSON(r.Context(), w, http.StatusOK, eventListResponse{
		Events:      toEventResponses(items),
		CurrentPage: page,
		TotalPages:  totalPages,
	})
}

func (s *Server) listMine(w http.ResponseWriter, r *http.Request) {
	user, ok := principalFromContext(r.Context())
	if !ok {
		s.writeError(r.Context(), w, common.ErrorUnauthorized)
		return
	}

	items, err := s.events.ListOwned(r.Context(), user.ID)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeJSON(r.Context(), w, http.StatusOK, toEventResponses(items))
}

func (s *Server) createEvent(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	user, ok := principalFromContext(r.Context())
	if !ok {
		s.writeError(r.Context(), w, common.ErrorUnauthorized)
		return
	}

	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(r.Context(), w, common.ErrorValidation)
		return
	}

	event, err := s.events.Create(r.Context(), user.ID, req.Name, req.Description, req.Location, req.Date, req.Capacity)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.logger.Info(r.Context(), "event created", "event_id", event.ID, "owner", user.ID)
	s.writeJSON(r.Context(), w, http.StatusOK, toEventResponse(event))
}

func (s *Server) updateEvent(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	user, ok := principalFromContext(r.Context())
	if !ok {
		s.writeError(r.Context(), w, common.ErrorUnauthorized)
		return
	}

	var req updateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(r.Context(), w, common.ErrorValidation)
		return
	}

	patch := &models.EventPatch{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Capacity:    req.Capacity,
	}

	event, err := s.events.Update(r.Context(), r.PathValue("id"), user.ID, patch)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.writeJSON(r.Context(), w, http.StatusOK, toEventResponse(event))
}

func (s *Server) deleteEvent(w http.ResponseWriter, r *http.Request) {
	user, ok := principalFromContext(r.Context())
	if !ok {
		s.writeError(r.Context(), w, common.ErrorUnauthorized)
		return
	}

	if err := s.events.Delete(r.Context(), r.PathValue("id"), user.ID); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.logger.Info(r.Context(), "event deleted", "event_id", r.PathValue("id"), "owner", user.ID)
	s.writeJSON(r.Context(), w, http.StatusOK, map[string]string{"msg": "event deleted successfully"})
}

// parsePagination reads page/limit query parameters, applying the defaults
// when a parameter is absent. Present-but-invalid values are a caller error.
func parsePagination(r *http.Request) (page, limit int, err error) {
	page, err = positiveQueryInt(r, "page", defaultPage)
	if err != nil {
		return 0, 0, err
	}
	limit, err = positiveQueryInt(r, "limit", defaultLimit)
	if err != nil {
		return 0, 0, err
	}
	return page, limit, nil
}

func positiveQueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, common.ErrorValidation
	}
	return n, nil
}
