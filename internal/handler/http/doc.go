// Package http implements the REST transport of the asset-management
// backend.
//
// Routes live under /api/v1. Every request passes through trace id, access
// log, metrics and compression middleware; protected routes additionally
// run [Handler.auth], and administrative routes require the ADMIN role.
// Responses use the {"message", "result"} envelope of [models.APIResponse].
package http
