// Package config provides configuration loading, merging, and validation
// facilities for the server.
//
// Configuration is assembled from multiple sources, the first non-zero
// value winning:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (always read; defaults to [DefaultJSONFilePath])
//
// The JSON file follows a fixed schema with an optional "logger" block and a
// required "uvicorn" (or "server") block. The main entry point is
// [GetStructuredConfig]; any error it returns is fatal.
package config
