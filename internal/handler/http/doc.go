// Package http implements the HTTP transport layer of go-garden-keeper.
//
// It exposes route wiring, request handlers, and middleware for the session,
// account, profile and theme API. Cross-cutting concerns such as
// authentication, request tracing, access logging, metrics and response
// compression are handled in this package before requests are delegated to
// the service layer.
package http
