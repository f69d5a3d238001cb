package handlers

import (
	"net/http"
	"net/url"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/secureshop/backend/internal/safepath"
)

type FileHandler struct {
	UploadDir string
}

// GetFile serves a file from the upload directory. The name is decoded
// before resolution so an encoded separator cannot smuggle a traversal past
// the basename check.
func (h *FileHandler) GetFile(c echo.Context) error {
	name := c.Param("filename")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	path, err := safepath.Resolve(h.UploadDir, name)
	if err != nil {
		return echo.NewHTTPError(http.StatusForbidden, "access denied")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "file not found")
	}

	return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, content)
}
