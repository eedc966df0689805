// Package http implements the REST transport of the todo service.
//
// It wires the chi router, the five todo endpoints and the middleware chain
// (panic recovery, request tracing, access logging, CORS and body limits).
// Every endpoint returns an error which is turned into a JSON error response
// in one place.
package http
