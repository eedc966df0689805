// Package server runs the HTTP transport of the todo service.
//
// It owns the http.Server lifecycle: startup, signal handling and graceful
// shutdown on SIGINT, SIGTERM or SIGQUIT.
package server
