package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Pritish2005/Event-Hub/internal/common"
	"github.com/Pritish2005/Event-Hub/internal/server/models"
)

type errorResponse struct {
	Msg string `json:"msg"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type eventResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
	Owner       string    `json:"owner"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type eventListResponse struct {
	Events      []eventResponse `json:"events"`
	CurrentPage int             `json:"currentPage"`
	TotalPages  int             `json:"totalPages"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

func toEventResponse(e *models.Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Date:        e.Date,
		Location:    e.Location,
		Capacity:    e.Capacity,
		Owner:       e.OwnerID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toEventResponses(items []*models.Event) []eventResponse {
	out := make([]eventResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toEventResponse(e))
	}
	return out
}

func (s *Server) writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error(ctx, "error writing response", "error", err.Error())
	}
}

// writeError translates a service error into one HTTP status plus message.
// Login failures collapse into a generic 401; ownership mismatches and
// missing events collapse into a single 404. Anything unrecognized is a
// server fault: logged here, generic message to the caller.
func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var status int
	var msg string

	switch {
	case errors.Is(err, common.ErrorValidation):
		status, msg = http.StatusBadRequest, "all fields are required"
	case errors.Is(err, common.ErrorEmailTaken):
		status, msg = http.StatusConflict, "email already registered"
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		status, msg = http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, common.ErrorNotFound):
		status, msg = http.StatusNotFound, "event not found"
	default:
		status, msg = http.StatusInternalServerError, "internal server error"
		s.logger.Error(ctx, "request failed", "error", err.Error())
	}

	s.writeJSON(ctx, w, status, errorResponse{Msg: msg})
}
