// Package server runs garden-server: the HTTP API and the background workers
// share one signal-bound context and stop together on SIGINT, SIGTERM or
// SIGQUIT.
package server
