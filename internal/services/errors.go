package services

import "errors"

// Sentinel errors returned by the service layer. Handlers map these to
// HTTP statuses with errors.Is instead of matching message strings.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so a caller cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when registration hits the unique email index.
	ErrEmailTaken = errors.New("email already registered")

	// ErrWrongPassword is returned by ChangePassword when the current
	// password does not verify.
	ErrWrongPassword = errors.New("current password is incorrect")

	// ErrUserNotFound is returned when the token's user no longer exists.
	ErrUserNotFound = errors.New("user not found")

	// ErrProductNotFound is returned for an unknown product ID.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidToken is returned for any malformed, tampered or expired
	// bearer token.
	ErrInvalidToken = errors.New("invalid token")
)
