package proxy

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// UsersPrefix is the path prefix forwarded to the backend.
const UsersPrefix = "/api/v1/users/"

// Users returns a middleware that forwards every request under UsersPrefix to
// target and lets all other requests through.
func Users(target string) (echo.MiddlewareFunc, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("proxy: parse target: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("proxy: target %q must be an absolute URL", target)
	}

	return middleware.ProxyWithConfig(middleware.ProxyConfig{
		Skipper: func(c echo.Context) bool {
			return !strings.HasPrefix(c.Request().URL.Path, UsersPrefix)
		},
		Balancer: middleware.NewRoundRobinBalancer([]*middleware.ProxyTarget{
			{Name: "backend", URL: u},
		}),
		Rewrite: map[string]string{
			UsersPrefix + "*": UsersPrefix + "$1",
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusBadGateway, "backend unavailable").SetInternal(err)
		},
	}), nil
}
