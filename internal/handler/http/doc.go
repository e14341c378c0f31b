// Package http implements the HTTP transport layer of the ai-one API.
//
// It exposes route wiring, the record handlers for contacts, notes,
// credentials and tasks, and the middleware chain: panic recovery, request
// tracing, access logging, CORS, per-client rate limiting, request timeouts
// and response compression. Errors returned by the service layer are mapped
// to status codes by errorStatusMap.
package http
