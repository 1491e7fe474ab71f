package static

import (
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
)

// Prefix is the URL path under which assets are served.
const Prefix = "/static"

// NewFs returns a read-only filesystem rooted at dir when it exists on disk,
// and otherwise falls back to embeddedDir inside the embedded assets.
func NewFs(dir string, embedded fs.FS, embeddedDir string) afero.Fs {
	osFs := afero.NewOsFs()
	if ok, err := afero.DirExists(osFs, dir); err == nil && ok {
		return afero.NewReadOnlyFs(afero.NewBasePathFs(osFs, dir))
	}
	slog.Info("Static directory not found, serving embedded assets", "dir", dir)
	return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.FromIOFS{FS: embedded}, embeddedDir))
}

// Handler serves files from fsys under Prefix. Directory listings are not served.
func Handler(fsys afero.Fs) echo.HandlerFunc {
	fileServer := http.StripPrefix(Prefix, http.FileServer(afero.NewHttpFs(fsys)))
	return func(c echo.Context) error {
		name := strings.TrimPrefix(c.Request().URL.Path, Prefix)
		if name == "" || strings.HasSuffix(name, "/") {
			return echo.ErrNotFound
		}
		if isDir, err := afero.IsDir(fsys, name); err != nil || isDir {
			return echo.ErrNotFound
		}
		fileServer.ServeHTTP(c.Response(), c.Request())
		return nil
	}
}
