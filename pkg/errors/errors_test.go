package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestTokenErrorUnwraps(t *testing.T) {
	err := &TokenError{Token: "xxxxx", Err: ErrTokenTooLong}

	if !errors.Is(err, ErrTokenTooLong) {
		t.Error("TokenError does not unwrap to its sentinel")
	}
	if got := err.Error(); got != `token "xxxxx": token exceeds maximum length` {
		t.Errorf("Error() = %q", got)
	}
}

func TestIsRejectedToken(t *testing.T) {
	for _, sentinel := range []error{ErrTokenTooLong, ErrNameTooLong, ErrInvalidDocID} {
		if !IsRejectedToken(fmt.Errorf("wrapped: %w", sentinel)) {
			t.Errorf("IsRejectedToken(%v) = false", sentinel)
		}
	}
	if IsRejectedToken(ErrInvalidConfig) {
		t.Error("IsRejectedToken(ErrInvalidConfig) = true")
	}
	if IsRejectedToken(nil) {
		t.Error("IsRejectedToken(nil) = true")
	}
}
