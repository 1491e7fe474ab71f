package server

import (
	"github.com/nfrund/storefront/internal/handlers"
	"github.com/nfrund/storefront/internal/middleware"
	"github.com/nfrund/storefront/internal/static"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter(s.Cfg.GetLoginRateLimit())

	s.E.GET("/", handlers.HomeGet)

	s.E.GET("/login", s.loginHandler.LoginGet)
	s.E.POST("/login", s.loginHandler.LoginPost, rateLimiter)
	s.E.POST("/login/fields/:field", s.loginHandler.LoginField)

	s.E.GET(static.Prefix+"/*", static.Handler(s.staticFs))

	s.E.GET("/health", handlers.HealthGet)
}
