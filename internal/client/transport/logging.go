package transport

import (
	"net/http"
	"time"

	"github.com/tamakara/booth/internal/logging"
)

// Logging records one line per HTTP exchange: method, URL, status and latency.
// Transport failures are logged at warn level and returned unchanged.
type Logging struct {
	Base   http.RoundTripper
	Logger logging.Logger
}

func (l *Logging) RoundTrip(req *http.Request) (*http.Response, error) {
	base := l.Base
	if base == nil {
		base = http.DefaultTransport
	}

	start := time.Now()
	resp, err := base.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		l.Logger.Warn(req.Context(), "http request failed",
			"method", req.Method, "url", req.URL.Redacted(), "elapsed", elapsed, "error", err)
		return nil, err
	}

	l.Logger.Debug(req.Context(), "http request",
		"method", req.Method, "url", req.URL.Redacted(), "status", resp.StatusCode, "elapsed", elapsed)
	return resp, nil
}
