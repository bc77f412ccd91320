package auth

import (
	"errors"
)

// ErrInvalidCredentials is returned for any login failure. Wrong email
// and wrong password are indistinguishable on purpose.
var ErrInvalidCredentials = errors.New("invalid email or password")
