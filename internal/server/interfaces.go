package server

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops,
	// either on a termination signal or a listener failure.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
