package main

import (
	"log/slog"
	"os"

	"github.com/nfrund/storefront/internal/config"
	"github.com/nfrund/storefront/internal/logging"
	"github.com/nfrund/storefront/internal/server"
)

func main() {
	cfg := config.New()
	logging.New() // Initialize the structured logger

	// Create a new server instance.
	s, err := server.New(cfg)
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	// Register all application routes.
	s.RegisterRoutes()

	// Start the server.
	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
