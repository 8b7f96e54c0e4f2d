// Package httpapi exposes the JSON API: public registration, login, and event
// browsing, plus authenticated event mutations behind the bearer-token
// middleware.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Pritish2005/Event-Hub/internal/logging"
	"github.com/Pritish2005/Event-Hub/internal/server/models"
)

// userClient is the slice of the user service the API needs.
type userClient interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// eventClient is the slice of the event service the API needs.
type eventClient interface {
	Create(ctx context.Context, ownerID, name, description, location string, date time.Time, capacity int) (*models.Event, error)
	ListAll(ctx context.Context, page, limit int) ([]*models.Event, int, error)
	ListOthers(ctx context.Context, ownerID string, page, limit int) ([]*models.Event, int, error)
	ListOwned(ctx context.Context, ownerID string) ([]*models.Event, error)
	Update(ctx context.Context, id, ownerID string, patch *models.EventPatch) (*models.Event, error)
	Delete(ctx context.Context, id, ownerID string) error
}

type Server struct {
	address string
	logger  logging.Logger
	users   userClient
	events  eventClient
}

func NewServer(address string, l logging.Logger, users userClient, events eventClient) *Server {
	return &Server{
		address: address,
		logger:  l.With("module", "httpapi"),
		users:   users,
		events:  events,
	}
}

// Handler builds the route table. Mutating event routes and the caller-scoped
// listings sit behind the auth middleware; everything else is public.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", s.register)
	mux.HandleFunc("POST /api/auth/login", s.login)

	mux.HandleFunc("GET /api/event", s.listEvents)
	mux.Handle("GET /api/event/filtered", s.requireAuth(http.HandlerFunc(s.listFiltered)))
	mux.Handle("GET /api/event/my-events", s.requireAuth(http.HandlerFunc(s.listMine)))
	mux.Handle("POST /api/event", s.requireAuth(http.HandlerFunc(s.createEvent)))
	mux.Handle("PUT /api/event/{id}", s.requireAuth(http.HandlerFunc(s.updateEvent)))
	mux.Handle("DELETE /api/event/{id}", s.requireAuth(http.HandlerFunc(s.deleteEvent)))

	return mux
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
