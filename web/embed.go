package web

import "embed"

// FS contains the embedded static assets served under /static when no
// STATIC_DIR exists on disk.
// The patterns are relative to this file's directory (the 'web' directory).
//
//go:embed static/*
var FS embed.FS
