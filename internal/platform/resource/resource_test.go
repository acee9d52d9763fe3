package resource

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/healthplan/healthplan/internal/platform/errs"
	"github.com/healthplan/healthplan/internal/platform/repository/repotest"
	"github.com/healthplan/healthplan/internal/platform/validation"
)

type state struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

type stateRequest struct {
	Nome *string `json:"nome" validate:"required,max=20"`
}

func (r stateRequest) Model() *state {
	return &state{Nome: *r.Nome}
}

func newTestHandler() (*Handler[state, stateRequest], *repotest.Store[state], *echo.Echo) {
	store := repotest.New[state]("estado", func(s *state) *int64 { return &s.ID })
	h := NewHandler[state, stateRequest](store, "Estado deletado com sucesso")
	e := echo.New()
	e.Validator = validation.New()
	return h, store, e
}

func newContext(e *echo.Echo, method, body string, id string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/", nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T (%v)", err, err)
	}
	return httpErr.Status
}

func TestHandler_Create(t *testing.T) {
	h, store, e := newTestHandler()
	c, rec := newContext(e, http.MethodPost, `{"nome":"SP"}`, "")

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var got state
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != 1 || got.Nome != "SP" {
		t.Errorf("unexpected body: %+v", got)
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 stored row, got %d", store.Len())
	}
}

func TestHandler_Create_ValidationError(t *testing.T) {
	h, store, e := newTestHandler()
	c, _ := newContext(e, http.MethodPost, `{}`, "")

	err := h.Create(c)
	if status := httpStatus(t, err); status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
	if store.Len() != 0 {
		t.Error("nothing should be stored on validation failure")
	}
}

func TestHandler_Create_EmptyString(t *testing.T) {
	h, store, e := newTestHandler()
	c, rec := newContext(e, http.MethodPost, `{"nome":""}`, "")

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 stored row, got %d", store.Len())
	}
}

func TestHandler_Create_MalformedJSON(t *testing.T) {
	h, _, e := newTestHandler()
	c, _ := newContext(e, http.MethodPost, `{"nome":`, "")

	if status := httpStatus(t, h.Create(c)); status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
}

func TestHandler_Get(t *testing.T) {
	h, store, e := newTestHandler()
	store.Seed(state{Nome: "SP"})

	c, rec := newContext(e, http.MethodGet, "", "1")
	if err := h.Get(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"nome":"SP"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestHandler_Get_NotFound(t *testing.T) {
	h, _, e := newTestHandler()
	c, rec := newContext(e, http.MethodGet, "", "42")

	err := h.Get(c)
	if status := httpStatus(t, err); status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", status)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected no body written, got %s", rec.Body.String())
	}
}

func TestHandler_Get_InvalidID(t *testing.T) {
	h, _, e := newTestHandler()

	for _, id := range []string{"abc", "0", "-1", "1.5"} {
		c, _ := newContext(e, http.MethodGet, "", id)
		if status := httpStatus(t, h.Get(c)); status != http.StatusBadRequest {
			t.Errorf("id %q: expected 400, got %d", id, status)
		}
	}
}

func TestHandler_List_Empty(t *testing.T) {
	h, _, e := newTestHandler()
	c, rec := newContext(e, http.MethodGet, "", "")

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("expected empty array, got %s", rec.Body.String())
	}
}

func TestHandler_List_Paged(t *testing.T) {
	h, store, e := newTestHandler()
	store.Seed(state{Nome: "SP"}, state{Nome: "RJ"}, state{Nome: "MG"})

	req := httptest.NewRequest(http.MethodGet, "/?limit=2&offset=1", nil)
	rec := httptest.NewRecorder()
	if err := h.List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []state
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0].Nome != "RJ" || got[1].Nome != "MG" {
		t.Errorf("unexpected page: %+v", got)
	}
}

func TestHandler_Update_WritesIncomingValues(t *testing.T) {
	h, store, e := newTestHandler()
	store.Seed(state{Nome: "SP"})

	c, rec := newContext(e, http.MethodPut, `{"nome":"São Paulo"}`, "1")
	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	stored, err := store.Get(c.Request().Context(), 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Nome != "São Paulo" {
		t.Errorf("expected incoming value to be stored, got %q", stored.Nome)
	}
}

func TestHandler_Update_NotFound(t *testing.T) {
	h, store, e := newTestHandler()
	c, _ := newContext(e, http.MethodPut, `{"nome":"RJ"}`, "7")

	if status := httpStatus(t, h.Update(c)); status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", status)
	}
	if store.Len() != 0 {
		t.Error("update must not create a row")
	}
}

func TestHandler_Delete(t *testing.T) {
	h, store, e := newTestHandler()
	store.Seed(state{Nome: "SP"})

	c, rec := newContext(e, http.MethodDelete, "", "1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var msg Message
	if err := json.Unmarshal(rec.Body.Bytes(), &msg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg.Message != "Estado deletado com sucesso" {
		t.Errorf("unexpected message: %q", msg.Message)
	}

	c, _ = newContext(e, http.MethodGet, "", "1")
	if status := httpStatus(t, h.Get(c)); status != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", status)
	}
}

func TestHandler_Delete_NotFound(t *testing.T) {
	h, _, e := newTestHandler()
	c, _ := newContext(e, http.MethodDelete, "", "3")

	if status := httpStatus(t, h.Delete(c)); status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", status)
	}
}

func TestHandler_StoreUnavailable(t *testing.T) {
	h, store, e := newTestHandler()
	store.Err = errors.New("boom")

	c, _ := newContext(e, http.MethodGet, "", "")
	err := h.List(c)
	if err == nil || err.Error() != "boom" {
		t.Errorf("expected store error to propagate, got %v", err)
	}
}

func TestHandler_Register(t *testing.T) {
	h, _, e := newTestHandler()
	h.Register(e.Group(""), "/estados")

	want := map[string]bool{
		"GET /estados":        false,
		"POST /estados":       false,
		"GET /estados/:id":    false,
		"PUT /estados/:id":    false,
		"DELETE /estados/:id": false,
	}
	for _, r := range e.Routes() {
		key := r.Method + " " + r.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for route, found := range want {
		if !found {
			t.Errorf("route %s not registered", route)
		}
	}
}
