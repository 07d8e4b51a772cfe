package server

// Server defines the lifecycle contract of the transport server managed by
// this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until a termination
	// signal stops the server. It returns the error that made serving fail,
	// or nil after a graceful shutdown.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()

	// Addr returns the address the listener is bound to.
	Addr() string
}
