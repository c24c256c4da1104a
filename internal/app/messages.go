// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// asset-management HTTP handlers.
//
// All Msg* constants are human-readable strings written into the "message"
// field of API responses. Keeping them in one place keeps the wording
// consistent across endpoints.
package app

const (
	// MsgInternalServerError replaces the text of any error the API does
	// not map to a client-facing status.
	MsgInternalServerError = "internal server error"

	// MsgPasswordChanged confirms both the first-login and the regular
	// password change.
	MsgPasswordChanged = "password changed"

	// MsgUserDisabled confirms that a staff account was disabled.
	MsgUserDisabled = "user disabled"

	// MsgReturningRequestCompleted confirms that the asset was taken back
	// and is available again.
	MsgReturningRequestCompleted = "returning request completed"
)
