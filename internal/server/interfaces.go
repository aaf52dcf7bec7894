package server

// Server is the lifecycle contract of the storefront server.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT, then
	// shuts down gracefully. It blocks until shutdown has completed.
	RunServer()

	// Shutdown stops the background workers and the HTTP server.
	Shutdown()
}
