package httpserver

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/negroni"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

type ctxKey int

const requestIDKey ctxKey = 0

// RequestID returns the id assigned to the request, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// requestID reuses a client-supplied X-Request-ID or assigns a new UUID.
func requestID(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	id := r.Header.Get(HeaderRequestID)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	w.Header().Set(HeaderRequestID, id)
	next(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
}

func responseWriter(w http.ResponseWriter) negroni.ResponseWriter {
	if nw, ok := w.(negroni.ResponseWriter); ok {
		return nw
	}
	return negroni.NewResponseWriter(w)
}

// logRequest writes one access-log line per request.
func (s *Server) logRequest(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	start := time.Now()
	nw := responseWriter(w)
	next(nw, r)
	s.logger.Info("request",
		"method", r.Method,
		"path", r.URL.Path,
		"status", nw.Status(),
		"bytes", nw.Size(),
		"duration", time.Since(start),
		"request_id", RequestID(r.Context()))
}

// instrument records request count and latency for a named route.
func (s *Server) instrument(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		nw := responseWriter(w)
		h(nw, r)
		status := nw.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.metrics.RecordRequest(route, strconv.Itoa(status), time.Since(start))
	}
}
