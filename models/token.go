package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued at login.
//
// The standard "sub" claim carries the user ID; Username and Role are
// custom claims used to authorize requests without a database round trip.
type Claims struct {
	jwt.RegisteredClaims

	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Token wraps a signed JWT with convenience accessors for authentication flows.
type Token struct {
	Claims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the parsed "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject) claim,
// parses it as a base-10 int64, and returns the result.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// CurrentUser returns the principal described by the token.
func (t *Token) CurrentUser() CurrentUser {
	return CurrentUser{ID: t.UserID, Username: t.Username, Role: t.Role}
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
