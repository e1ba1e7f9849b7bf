// package whttp provides the outbound HTTP client used to talk to the
// what3words API: a plain http.Client with a timeout and a round tripper
// that logs every request with the API key redacted.
package whttp

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

type LoggingRoundTripper struct {
	Proxied http.RoundTripper
}

func (lrt LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	t0 := time.Now()

	res, err := lrt.Proxied.RoundTrip(req)
	if err != nil {
		slog.ErrorContext(ctx, "outbound request failed",
			"http.request.method", req.Method,
			"http.request.url", RedactURL(req.URL.String()),
			"error", err.Error())
		return res, err
	}

	slog.InfoContext(ctx, "outbound request",
		"http.request.method", req.Method,
		"http.request.url", RedactURL(req.URL.String()),
		"http.request.duration_ms", time.Since(t0).Milliseconds(),
		"http.response.status_code", res.StatusCode)

	return res, nil
}

func NewLoggingClient() *http.Client {
	return &http.Client{
		Transport: LoggingRoundTripper{Proxied: http.DefaultTransport},
		Timeout:   10 * time.Second,
	}
}

// RedactURL obfuscates the key query parameter so API keys never reach the
// logs or error messages.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	q := u.Query()
	if q.Has("key") {
		q.Set("key", "*****")
		u.RawQuery = q.Encode()
	}

	return u.String()
}
