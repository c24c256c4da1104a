// Package server runs the HTTP server of the asset-management backend,
// including signal handling and graceful shutdown.
package server
