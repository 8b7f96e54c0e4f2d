// Package api implements the HTTP client for the Event-Hub JSON API.
// It mirrors the server's request and response shapes and maps error
// responses back to the shared sentinel errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Pritish2005/Event-Hub/internal/common"
)

// User is the account representation returned by the server.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Event is a single event as returned by the server.
type Event struct {
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

// EventList is a paginated page of events.
type EventList struct {
	Events      []Event `json:"events"`
	CurrentPage int     `json:"currentPage"`
	TotalPages  int     `json:"totalPages"`
}

// EventInput carries the fields required to create an event.
type EventInput struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
}

// EventPatch carries a partial update. Nil fields are omitted from the
// request body, so the server leaves the corresponding columns untouched.
type EventPatch struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Capacity    *int       `json:"capacity,omitempty"`
}

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

type errorResponse struct {
	Msg string `json:"msg"`
}

// Client talks to the Event-Hub server. It keeps the session token issued
// by Login and attaches it as a bearer token to subsequent requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetToken replaces the session token used for authenticated calls.
// An empty token clears the session.
func (c *Client) SetToken(token string) {
	c.token = token
}

// IsAuthenticated reports whether a session token is currently held.
// The token may still be expired; the server is the authority.
func (c *Client) IsAuthenticated() bool {
	return c.token != ""
}

// do issues one JSON request and decodes the response into out (when out is
// non-nil). Non-2xx responses become sentinel errors via responseError.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("request encoding error: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("server unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("response decoding error: %w", err)
		}
	}
	return nil
}

// responseError turns an error response into the matching sentinel error,
// wrapped with the server's message when one was provided.
func responseError(resp *http.Response) error {
	var er errorResponse
	_ = json.NewDecoder(resp.Body).Decode(&er)
	if er.Msg == "" {
		er.Msg = http.StatusText(resp.StatusCode)
	}

	var sentinel error
	switch resp.StatusCode {
	case http.StatusBadRequest:
		sentinel = common.ErrorValidation
	case http.StatusUnauthorized:
		sentinel = common.ErrorUnauthorized
	case http.StatusNotFound:
		sentinel = common.ErrorNotFound
	case http.StatusConflict:
		sentinel = common.ErrorEmailTaken
	default:
		sentinel = common.ErrorInternal
	}
	return fmt.Errorf("%w: %s", sentinel, er.Msg)
}

// Register creates a new account. It does not log the user in.
func (c *Client) Register(ctx context.Context, name, email, password string) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", registerRequest{Name: name, Email: email, Password: password}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login exchanges credentials for a session token and stores it on the client.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var tr tokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", loginRequest{Email: email, Password: password}, &tr); err != nil {
		return "", err
	}
	c.token = tr.Token
	return tr.Token, nil
}

// Events fetches one page of the public event listing.
func (c *Client) Events(ctx context.Context, page, limit int) (*EventList, error) {
	var list EventList
	path := fmt.Sprintf("/api/event?page=%d&limit=%d", page, limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// FilteredEvents fetches one page of events excluding the caller's own.
func (c *Client) FilteredEvents(ctx context.Context, page, limit int) (*EventList, error) {
	var list EventList
	path := fmt.Sprintf("/api/event/filtered?page=%d&limit=%d", page, limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// MyEvents fetches every event owned by the caller.
func (c *Client) MyEvents(ctx context.Context) ([]Event, error) {
	var items []Event
	if err := c.do(ctx, http.MethodGet, "/api/event/my-events", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateEvent creates an event owned by the caller.
func (c *Client) CreateEvent(ctx context.Context, in *EventInput) (*Event, error) {
	var e Event
	if err := c.do(ctx, http.MethodPost, "/api/event", in, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// UpdateEvent applies a partial update to an event the caller owns.
func (c *Client) UpdateEvent(ctx context.Context, id string, patch *EventPatch) (*Event, error) {
	var e Event
	if err := c.do(ctx, http.MethodPut, "/api/event/"+id, patch, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteEvent removes an event the caller owns.
func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/event/"+id, nil, nil)
}
