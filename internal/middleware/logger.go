// Package middleware provides reusable HTTP middleware for the API server.
package middleware

import (
	"log"
	"net/http"
	"time"
)

// wrappedWriter captures the status code and body size written by downstream
// handlers.
type wrappedWriter struct {
	http.ResponseWriter
	statusCode int
	bytes      int64
}

func (rw *wrappedWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *wrappedWriter) Write(p []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(p)
	rw.bytes += int64(n)
	return n, err
}

// Logger logs method, path, status code, response size, and duration for
// every request.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &wrappedWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(ww, r)
		log.Printf("%s %s %d %dB %s", r.Method, r.URL.Path, ww.statusCode, ww.bytes, time.Since(start))
	})
}
