package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/platform/apperr"
	"library-backend/internal/platform/config"
	"library-backend/internal/platform/db/dbtest"
	"library-backend/internal/platform/middleware"
)

func newTestEngine(t *testing.T, yaml string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg, err := config.Parse([]byte(yaml))
	require.NoError(t, err)
	return New(cfg, dbtest.Open(t))
}

func serve(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	r := newTestEngine(t, "mode: dev")

	w := serve(r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
}

func TestNoRoute(t *testing.T) {
	r := newTestEngine(t, "mode: dev")

	w := serve(r, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	var eb apperr.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &eb))
	assert.Equal(t, apperr.MsgEndpointNotFound, eb.Error.Message)
}

func TestDocs(t *testing.T) {
	r := newTestEngine(t, "server:\n  docs: true")
	w := serve(r, http.MethodGet, "/api-docs/doc.json", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/borrow")

	r = newTestEngine(t, "server:\n  docs: false")
	w = serve(r, http.MethodGet, "/api-docs/doc.json", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEndToEnd(t *testing.T) {
	r := newTestEngine(t, "mode: dev\nlending:\n  timezone: UTC")

	w := serve(r, http.MethodPost, "/books",
		`{"isbn": 978316148420, "title": "History of hairbrushes", "author": "Afro B. Rusher", "quantity": 1, "shelfLocation": "A12"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = serve(r, http.MethodPost, "/borrowers", `{"name": "One", "email": "one@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = serve(r, http.MethodPost, "/borrowers", `{"name": "Two", "email": "two@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = serve(r, http.MethodPost, "/borrow", `{"borrowerId": 1, "bookISBN": 978316148420, "borrowDuration": 7}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = serve(r, http.MethodPost, "/borrow", `{"borrowerId": 2, "bookISBN": 978316148420, "borrowDuration": 7}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), apperr.MsgOutOfStock)

	w = serve(r, http.MethodDelete, "/books", `{"isbn": 978316148420}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), apperr.MsgBookHasLoans)

	w = serve(r, http.MethodPost, "/return", `{"borrowerId": 1, "bookISBN": 978316148420}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodPost, "/borrow", `{"borrowerId": 2, "bookISBN": 978316148420, "borrowDuration": 1}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodGet, "/overdue", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}
