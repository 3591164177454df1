package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

const indexFile = "index.html"

// StaticHandler serves the prebuilt frontend. Unknown GET paths get index.html so the
// single-page app can route them itself.
type StaticHandler struct {
	dir string
}

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir}
}

func (h *StaticHandler) Serve(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}

	// Cleaning against "/" keeps the result inside dir.
	name := path.Clean("/" + c.Request.URL.Path)
	if h.serveFile(c, filepath.Join(h.dir, filepath.FromSlash(name))) {
		return
	}
	if h.serveFile(c, filepath.Join(h.dir, indexFile)) {
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
}

func (h *StaticHandler) serveFile(c *gin.Context, name string) bool {
	f, err := os.Open(name)
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	c.Status(http.StatusOK)
	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
	return true
}
