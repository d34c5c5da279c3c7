// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// configuration structure for the listen port, the shared-secret password that guards
// the API, and request timeouts.
//
// # Usage
//
// This package is used by the core/config package to embed server settings and by
// the start command to configure Fiber and the auth middleware.
package server
