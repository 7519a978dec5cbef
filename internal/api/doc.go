package api

// Package api implements the REST transport for the backend's /tasks
// collection resource. Every failure, whether a network error, a non-2xx
// status or a malformed body, surfaces as a *RequestFailure. Requests are
// counted in Prometheus metrics when a Metrics value is supplied.
