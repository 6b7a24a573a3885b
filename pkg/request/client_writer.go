package request

import (
	"net/http"
)

// ClientWriter is a response writer that remembers the status code that was written.
type ClientWriter struct {
	http.ResponseWriter

	statusCode int
}

// NewClientWriter wraps w.
func NewClientWriter(w http.ResponseWriter) *ClientWriter {
	return &ClientWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (c *ClientWriter) WriteHeader(code int) {
	c.statusCode = code
	c.ResponseWriter.WriteHeader(code)
}

// StatusCode returns the status code written to the client. It is 200 when no status was written.
func (c *ClientWriter) StatusCode() int {
	return c.statusCode
}
