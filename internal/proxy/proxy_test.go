package proxy

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsers_ForwardsUserRoutes(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"message":"successfully login"}}`))
	}))
	defer backend.Close()

	mw, err := Users(backend.URL)
	require.NoError(t, err)

	e := echo.New()
	e.Use(mw)
	e.GET("/login", func(c echo.Context) error { return c.String(http.StatusOK, "page") })

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", strings.NewReader(`{"email":"a","password":"b"}`))
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "successfully login")
}

func TestUsers_SkipsOtherRoutes(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected proxied request to %s", r.URL.Path)
	}))
	defer backend.Close()

	mw, err := Users(backend.URL)
	require.NoError(t, err)

	e := echo.New()
	e.Use(mw)
	e.GET("/login", func(c echo.Context) error { return c.String(http.StatusOK, "page") })

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "page", rec.Body.String())
}

func TestUsers_RejectsRelativeTarget(t *testing.T) {
	_, err := Users("localhost:10001")
	assert.Error(t, err)
}
