package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/storefront/internal/view"
)

// HomeGet renders the landing page (GET /).
func HomeGet(c echo.Context) error {
	lang := view.PreferredLanguage(c.Request().Header.Get("Accept-Language"))
	header := view.HeaderData{Language: view.LanguageName(lang)}
	return c.Render(http.StatusOK, "", view.Base("Home", lang.String(), view.HomePage(header)...))
}

// HealthGet reports liveness (GET /health).
func HealthGet(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
