package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"MotoYaCheckout/pkg/correlation"

	"github.com/gin-gonic/gin"
)

const maxBody = 8 * 1024 // 8KB

// Limit truncates b to the size the request logger keeps.
func Limit(b []byte) []byte {
	if len(b) > maxBody {
		return b[:maxBody]
	}
	return b
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *responseBodyWriter) Write(b []byte) (int, error) {
	if r.body.Len() < maxBody {
		r.body.Write(b)
	}
	return r.ResponseWriter.Write(b)
}

// failedReader replays a read error to the next reader of the request body.
type failedReader struct {
	err error
}

func (r failedReader) Read([]byte) (int, error) {
	return 0, r.err
}

// CorrelationMiddleware extracts X-Correlation-ID from request header or generates a new one.
// It stores the ID in the request context and adds it to the response header.
func CorrelationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		corrID := c.GetHeader(correlation.HeaderName)
		if corrID == "" {
			corrID = correlation.NewID()
		}

		ctx := correlation.WithID(c.Request.Context(), corrID)
		c.Request = c.Request.WithContext(ctx)

		c.Header(correlation.HeaderName, corrID)

		c.Next()
	}
}

// RequestLogger logs one line per API request. Bodies are logged at debug level only,
// static file responses never.
func RequestLogger(l *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		debug := l.Enabled(c.Request.Context(), slog.LevelDebug)

		var requestBody []byte
		responseBuffer := &bytes.Buffer{}
		if debug {
			if c.Request.Body != nil {
				var err error
				requestBody, err = io.ReadAll(c.Request.Body)
				if err != nil {
					// Handlers must see the same failure, not the truncated bytes.
					c.Request.Body = io.NopCloser(failedReader{err: err})
				} else {
					c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
				}
			}
			c.Writer = &responseBodyWriter{
				body:           responseBuffer,
				ResponseWriter: c.Writer,
			}
		}

		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		}

		if debug && c.FullPath() != "" {
			attrs = append(attrs,
				"request_body", maybeJSON(Limit(requestBody)),
				"response_body", maybeJSON(Limit(responseBuffer.Bytes())),
			)
		}

		l.InfoContext(c.Request.Context(), "HTTP Request", attrs...)
	}
}

func maybeJSON(b []byte) any {
	bb := bytes.TrimSpace(b)

	if len(bb) == 0 {
		return nil
	}

	if json.Valid(bb) {
		return json.RawMessage(bb)
	}

	return string(bb)
}
