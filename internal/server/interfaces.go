package server

import "context"

// Server defines the lifecycle of garden-server.
//
// RunServer blocks until ctx is cancelled or a termination signal arrives,
// then shuts the HTTP listener down and waits for the workers to return.
type Server interface {
	RunServer(ctx context.Context) error
}
