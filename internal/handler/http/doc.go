// Package http implements the HTTP transport layer of the application.
//
// It wires the example routes under /example, the home routes at the root
// and, in production, the static client bundle. Request tracing, access
// logging and gzip compression are applied as middleware before requests
// reach the service layer.
package http
