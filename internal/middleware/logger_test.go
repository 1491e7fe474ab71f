package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/storefront/internal/apiclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_ForwardsRequestID(t *testing.T) {
	var backendReqID string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendReqID = r.Header.Get(apiclient.HeaderRequestID)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer backend.Close()

	e := echo.New()
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return "req-42" },
	}))
	e.Use(Logger)
	e.GET("/", func(c echo.Context) error {
		assert.NotNil(t, FromContext(c.Request().Context()))
		_, err := apiclient.New(backend.URL).PostJSON(c.Request().Context(), "/x", struct{}{})
		require.NoError(t, err)
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "req-42", backendReqID)
}
