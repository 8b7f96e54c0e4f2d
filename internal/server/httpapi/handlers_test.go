package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pritish2005/Event-Hub/internal/common"
	"github.com/Pritish2005/Event-Hub/internal/server/models"
)

func doJSON(t *testing.T, srv *Server, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestRegister_Success(t *testing.T) {
	users := &stubUsers{registerOut: &models.User{ID: "u1", Name: "Ann", Email: "a@x.com"}}
	srv := newTestServer(users, &stubEvents{})

	rec := doJSON(t, srv, http.MethodPost, "/api/auth/register", "",
		`{"name":"Ann","email":"a@x.com","password":"pw1"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var got userResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, "a@x.com", got.Email)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := &stubUsers{registerErr: common.ErrorEmailTaken}
	srv := newTestServer(users, &stubEvents{})

	rec := doJSON(t, srv, http.MethodPost, "/api/auth/register", "",
		`{"name":"Ann","email":"a@x.com","password":"pw1"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_BadBody(t *testing.T) {
	srv := newTestServer(&stubUsers{}, &stubEvents{})

	rec := doJSON(t, srv, http.MethodPost, "/api/auth/register", "", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_Success(t *testing.T) {
	users := &stubUsers{loginOut: "tok-123"}
	srv := newTestServer(users, &stubEvents{})

	rec := doJSON(t, srv, http.MethodPost, "/api/auth/login", "",
		`{"email":"a@x.com","password":"pw1"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var got tokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "tok-123", got.Token)
}

func TestLogin_BadCredentials(t *testing.T) {
	users := &stubUsers{loginErr: common.ErrorUnauthorized}
	srv := newTestServer(users, &stubEvents{})

	rec := doJSON(t, srv, http.MethodPost, "/api/auth/login", "",
		`{"email":"a@x.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var got errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "unauthorized", got.Msg, "login errors must stay generic")
}

func TestListEvents_Pagination(t *testing.T) {
	now := time.Now().UTC()
	events := &stubEvents{
		listOut: []*models.Event{
			{ID: "e1", Name: "a", Date: now, OwnerID: "u1"},
			{ID: "e2", Name: "b", Date: now, OwnerID: "u2"},
		},
		listPages: 3,
	}
	srv := newTestServer(&stubUsers{}, events)

	rec := doJSON(t, srv, http.MethodGet, "/api/event?page=2&limit=2", "", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got eventListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got.Events, 2)
	assert.Equal(t, 2, got.CurrentPage)
	assert.Equal(t, 3, got.TotalPages)
}

func TestListEvents_EmptyPageStillHasEventsArray(t *testing.T) {
	srv := newTestServer(&stubUsers{}, &stubEvents{})

	rec := doJSON(t, srv, http.MethodGet, "/api/event", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"events":[]`)
}

func TestListEvents_InvalidPageParam(t *testing.T) {
	srv := newTestServer(&stubUsers{}, &stubEvents{})

	for _, target := range []string{"/api/event?page=abc", "/api/event?page=0", "/api/event?limit=-1"} {
		rec := doJSON(t, srv, http.MethodGet, target, "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestListFiltered_UsesPrincipal(t *testing.T) {
	users := &stubUsers{authOut: &models.User{ID: "u1"}}
	events := &stubEvents{listPages: 1}
	srv := newTestServer(users, events)

	rec := doJSON(t, srv, http.MethodGet, "/api/event/filtered", "tok", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", events.othersOwnerID)
}

func TestCreateEvent_StampsOwnerFromPrincipal(t *testing.T) {
	date := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)
	users := &stubUsers{authOut: &models.User{ID: "u1"}}
	events := &stubEvents{createOut: &models.Event{ID: "e1", Name: "GopherCon", Date: date, OwnerID: "u1"}}
	srv := newTestServer(users, events)

	body := `{"name":"GopherCon","description":"talks","date":"2026-09-12T18:00:00Z","location":"Berlin","capacity":200}`
	rec := doJSON(t, srv, http.MethodPost, "/api/event", "tok", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", events.createOwnerID)

	var got eventResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "u1", got.Owner)
}

func TestCreateEvent_Unauthenticated(t *testing.T) {
	srv := newTestServer(&stubUsers{}, &stubEvents{})

	rec := doJSON(t, srv, http.MethodPost, "/api/event", "", `{"name":"x"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateEvent_PartialBodyKeepsAbsentFieldsNil(t *testing.T) {
	users := &stubUsers{authOut: &models.User{ID: "u1"}}
	events := &stubEvents{updateOut: &models.Event{ID: "e1", Name: "New name", OwnerID: "u1"}}
	srv := newTestServer(users, events)

	rec := doJSON(t, srv, http.MethodPut, "/api/event/e1", "tok", `{"name":"New name"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "e1", events.updateID)
	assert.Equal(t, "u1", events.updateOwner)
	require.NotNil(t, events.updatePatch.Name)
	assert.Equal(t, "New name", *events.updatePatch.Name)
	assert.Nil(t, events.updatePatch.Description, "absent keys must stay nil")
	assert.Nil(t, events.updatePatch.Capacity, "absent keys must stay nil")
}

func TestUpdateEvent_NotOwner(t *testing.T) {
	users := &stubUsers{authOut: &models.User{ID: "intruder"}}
	events := &stubEvents{updateErr: common.ErrorNotFound}
	srv := newTestServer(users, events)

	rec := doJSON(t, srv, http.MethodPut, "/api/event/e1", "tok", `{"name":"hijack"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteEvent_Success(t *testing.T) {
	users := &stubUsers{authOut: &models.User{ID: "u1"}}
	events := &stubEvents{}
	srv := newTestServer(users, events)

	rec := doJSON(t, srv, http.MethodDelete, "/api/event/e1", "tok", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "e1", events.deleteID)
	assert.Equal(t, "u1", events.deleteOwner)
}

func TestDeleteEvent_NotOwner(t *testing.T) {
	users := &stubUsers{authOut: &models.User{ID: "intruder"}}
	events := &stubEvents{deleteErr: common.ErrorNotFound}
	srv := newTestServer(users, events)

	rec := doJSON(t, srv, http.MethodDelete, "/api/event/e1", "tok", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWriteError_InternalHidesDetails(t *testing.T) {
	users := &stubUsers{loginErr: assertableInternalError{}}
	srv := newTestServer(users, &stubEvents{})

	rec := doJSON(t, srv, http.MethodPost, "/api/auth/login", "", `{"email":"a@x.com","password":"p"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection string with secrets")
}

type assertableInternalError struct{}

func (assertableInternalError) Error() string { return "connection string with secrets" }
