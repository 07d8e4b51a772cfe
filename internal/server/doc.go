// Package server runs the HTTP transport.
//
// It binds the listener up front so an unavailable address fails at startup,
// serves until a termination signal arrives and then shuts down gracefully.
package server
