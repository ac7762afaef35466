package services

import "errors"

// Failure kinds surfaced to handlers. Handlers match them with errors.Is
// and map each to its own HTTP status, so clients can tell "not
// authenticated" apart from "bad request content" and storage failures.
var (
	// ErrUnauthenticated means the request carried no credential, or a
	// credential no user currently holds.
	ErrUnauthenticated = errors.New("not authorized")

	// ErrInvalidCredentials is the sign-in mismatch. Deliberately does
	// not say which of email or password was wrong.
	ErrInvalidCredentials = errors.New("the email or the password is incorrect")

	// ErrInvalidLineItem means a batch carried a non-positive quantity
	// or a missing product reference. Raised before anything is written.
	ErrInvalidLineItem = errors.New("invalid line item")

	// ErrInvalidReference means a line item or store id points at a
	// record that does not exist or is not addressable by the caller.
	ErrInvalidReference = errors.New("referenced record does not exist")
)
