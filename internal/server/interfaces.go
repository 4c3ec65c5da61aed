package server

// Server is the lifecycle contract the entrypoint manages. The auth service
// currently runs a single HTTP server, but the entrypoint only depends on
// this interface.
//
// RunServer blocks until shutdown is requested; Shutdown releases resources
// after in-flight requests drain.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
