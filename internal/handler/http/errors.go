// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrNoCurrentUser means a protected handler ran without the auth
	// middleware having stored a principal.
	ErrNoCurrentUser = errors.New("request is not authenticated")
)

// Request decoding errors.
var (
	ErrInvalidJSON       = errors.New("invalid JSON was passed")
	ErrInvalidPathParam  = errors.New("invalid path parameter")
	ErrInvalidQueryParam = errors.New("invalid query parameter")
)

var (
	ErrRouteNotFound    = errors.New("resource not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)
