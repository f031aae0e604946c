// Package token inspects access tokens without verifying them. The client
// only needs the expiry claim to decide when to refresh; signature
// verification is the server's job.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var parser = jwt.NewParser()

// ExpiresAt decodes the token's exp claim. Returns an error when the token
// cannot be parsed or carries no expiry.
func ExpiresAt(tokenString string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, fmt.Errorf("token has no exp claim")
	}

	return exp.Time, nil
}

// ExpiredAt reports whether the token is expired at the given instant.
// A token that cannot be decoded counts as expired.
func ExpiredAt(tokenString string, now time.Time) bool {
	exp, err := ExpiresAt(tokenString)
	if err != nil {
		return true
	}
	return !exp.After(now)
}

// Expired reports whether the token is expired now.
func Expired(tokenString string) bool {
	return ExpiredAt(tokenString, time.Now())
}
