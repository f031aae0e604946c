// Package validation contains client-side input checks. A failed check
// short-circuits before any request is sent to the server.
package validation

import (
	"errors"
	"fmt"
	"regexp"
)

// EmailPattern is a pragmatic email shape check; the server performs the
// authoritative validation.
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// PincodePattern matches a six-digit Indian postal code.
var PincodePattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)

const (
	// MinPasswordLen is the minimum accepted password length.
	MinPasswordLen = 8
	// MinRating and MaxRating bound a review rating.
	MinRating = 1
	MaxRating = 5
)

// Err marks a client-side validation failure. All errors returned by this
// package wrap it, so callers can classify with errors.Is.
var Err = errors.New("validation failed")

func errorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{Err}, args...)...)
}

// ValidateEmail checks that email looks like an address.
func ValidateEmail(email string) error {
	if email == "" {
		return errorf("email cannot be empty")
	}
	if !EmailPattern.MatchString(email) {
		return errorf("email %q is not a valid address", email)
	}
	return nil
}

// ValidatePassword checks the minimum password requirements.
func ValidatePassword(password string) error {
	if password == "" {
		return errorf("password cannot be empty")
	}
	if len(password) < MinPasswordLen {
		return errorf("password must be at least %d characters long", MinPasswordLen)
	}
	return nil
}

// ValidateQuantity checks that a requested cart quantity is positive.
func ValidateQuantity(quantity int) error {
	if quantity < 1 {
		return errorf("quantity must be at least 1, got %d", quantity)
	}
	return nil
}

// ValidateRating checks that a review rating is within 1..5.
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errorf("rating must be between %d and %d, got %d", MinRating, MaxRating, rating)
	}
	return nil
}

// ValidateRequired checks that a required field is present.
func ValidateRequired(field, value string) error {
	if value == "" {
		return errorf("%s is required", field)
	}
	return nil
}

// ValidatePincode checks that a delivery postcode is a six-digit PIN.
func ValidatePincode(pincode string) error {
	if pincode == "" {
		return errorf("pincode cannot be empty")
	}
	if !PincodePattern.MatchString(pincode) {
		return errorf("pincode %q is not a valid six-digit PIN", pincode)
	}
	return nil
}
