// Package errors defines the error taxonomy shared across termdex.
package errors

import (
	"errors"
	"fmt"
)

var (
	ErrTokenTooLong  = errors.New("token exceeds maximum length")
	ErrNameTooLong   = errors.New("document name exceeds maximum length")
	ErrInvalidDocID  = errors.New("document id must be positive")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// TokenError reports a single token rejected during indexing.
type TokenError struct {
	Token string
	Err   error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("token %q: %s", e.Token, e.Err.Error())
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// IsRejectedToken reports whether err is a per-token rejection that an
// indexing run survives by dropping the token.
func IsRejectedToken(err error) bool {
	return errors.Is(err, ErrTokenTooLong) ||
		errors.Is(err, ErrNameTooLong) ||
		errors.Is(err, ErrInvalidDocID)
}
