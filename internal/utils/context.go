// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password
// hashing, HTTP response writing, and JWT token generation and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/asset-management/models"
)

// contextKey is a private type for context keys.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the user identifier in the context.
var UserIDCtxKey = contextKey("userID")

// CurrentUserCtxKey is the key used to store the authenticated
// [models.CurrentUser] in the context.
var CurrentUserCtxKey = contextKey("currentUser")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true : value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithCurrentUser returns a copy of ctx carrying the authenticated user
// under both [CurrentUserCtxKey] and [UserIDCtxKey].
func WithCurrentUser(ctx context.Context, user models.CurrentUser) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, user.ID)
	return context.WithValue(ctx, CurrentUserCtxKey, user)
}

// GetCurrentUserFromContext retrieves the authenticated user from the context.
func GetCurrentUserFromContext(ctx context.Context) (models.CurrentUser, bool) {
	user, ok := ctx.Value(CurrentUserCtxKey).(models.CurrentUser)
	return user, ok
}
