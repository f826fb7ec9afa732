// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// StatusError reports a response whose status code is 400 or above.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

// Error renders the status the way most HTTP clients do, e.g.
// "404 Client Error: Not Found for url: https://...".
func (e *StatusError) Error() string {
	class := "Client"
	if e.StatusCode >= 500 {
		class = "Server"
	}
	reason := strings.TrimSpace(strings.TrimPrefix(e.Status, fmt.Sprintf("%d", e.StatusCode)))
	if reason == "" {
		reason = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%d %s Error: %s for url: %s", e.StatusCode, class, reason, e.URL)
}

// CheckStatus returns a *StatusError when resp carries a 4xx or 5xx status,
// and nil otherwise. The body is left untouched.
func CheckStatus(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}
	u := ""
	if resp.Request != nil && resp.Request.URL != nil {
		u = resp.Request.URL.String()
	}
	return &StatusError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		URL:        u,
	}
}

// NewClient returns an *http.Client with its own transport so that
// keep-alive connections are reused across sequential requests to one host.
func NewClient(timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
