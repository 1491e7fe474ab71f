package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/storefront/internal/app"
	"github.com/nfrund/storefront/internal/config"
	"github.com/nfrund/storefront/internal/handlers"
	"github.com/nfrund/storefront/internal/login"
	"github.com/nfrund/storefront/internal/middleware"
	"github.com/nfrund/storefront/internal/proxy"
	"github.com/nfrund/storefront/internal/pubsub"
	"github.com/nfrund/storefront/internal/rendering"
	"github.com/nfrund/storefront/internal/static"
	"github.com/nfrund/storefront/web"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E            *echo.Echo
	Cfg          config.Provider
	Container    do.Injector
	loginHandler *handlers.LoginHandler
	bridge       *pubsub.WatermillBridge
	staticFs     afero.Fs
}

// New creates a new Server instance from cfg.
func New(cfg config.Provider) (*Server, error) {
	container := app.NewContainer(cfg)

	loginHandler, err := do.Invoke[*handlers.LoginHandler](container)
	if err != nil {
		return nil, fmt.Errorf("server: resolve login handler: %w", err)
	}
	bridge := do.MustInvoke[*pubsub.WatermillBridge](container)

	if err := login.SubscribeAudit(context.Background(), bridge, slog.Default().With("component", "login-audit")); err != nil {
		_ = bridge.Close()
		return nil, err
	}

	usersProxy, err := proxy.Users(cfg.GetAPIBaseURL())
	if err != nil {
		_ = bridge.Close()
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())
	e.Use(usersProxy)

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	return &Server{
		E:            e,
		Cfg:          cfg,
		Container:    container,
		loginHandler: loginHandler,
		bridge:       bridge,
		staticFs:     static.NewFs(cfg.GetStaticDir(), web.FS, "static"),
	}, nil
}

// errorEnvelope mirrors the backend's error body so JSON clients see a single
// error shape whether a request was proxied or handled here.
type errorEnvelope struct {
	Data   any             `json:"data"`
	Errors []errorResponse `json:"errors"`
}

type errorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// setupErrorHandling installs the HTTP error handler. Unhandled errors are
// logged with a stack trace and answered with a generic 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			}
			if code >= http.StatusInternalServerError {
				middleware.FromContext(c.Request().Context()).Error("Server error",
					"status", code, "error", he.Internal, "path", c.Request().URL.Path)
			}
		} else {
			middleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
				"error", err.Error(),
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}

		var writeErr error
		switch {
		case c.Request().Method == http.MethodHead:
			writeErr = c.NoContent(code)
		case wantsJSON(c):
			writeErr = c.JSON(code, errorEnvelope{
				Errors: []errorResponse{{Field: string(login.FieldMessage), Message: message}},
			})
		default:
			writeErr = c.String(code, message)
		}
		if writeErr != nil {
			slog.Error("Failed to write error response", "error", writeErr)
		}
	}
}

func wantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON) ||
		strings.HasPrefix(c.Request().URL.Path, "/api/")
}
