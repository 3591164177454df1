package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// BaseURL is the origin that served r: <scheme>://<host>.
// X-Forwarded-Proto is only honoured when trustProxyHeaders is set.
func BaseURL(r *http.Request, trustProxyHeaders bool) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	if trustProxyHeaders {
		proto := r.Header.Get("X-Forwarded-Proto")
		if i := strings.IndexByte(proto, ','); i >= 0 {
			proto = proto[:i]
		}
		proto = strings.ToLower(strings.TrimSpace(proto))
		if proto == "http" || proto == "https" {
			scheme = proto
		}
	}

	return scheme + "://" + r.Host
}

// readBody returns whatever could be read. A broken or oversized body is treated as empty.
func readBody(c *gin.Context) []byte {
	if c.Request.Body == nil {
		return nil
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		slog.WarnContext(c.Request.Context(), "Failed to read request body", "error", err)
		return nil
	}
	return body
}
