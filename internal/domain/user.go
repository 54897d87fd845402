// Package domain contains room entities and the tic-tac-toe rules.
// Nothing here does I/O or locking.
package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const MaxUsernameLen = 64

var (
	ErrUsernameTooLong = fmt.Errorf("%w: username too long", ErrValidationFailed)
	ErrUsernameEmpty   = fmt.Errorf("%w: username empty", ErrValidationFailed)
)

// NormalizeUsername trims the raw display name and checks its length.
func NormalizeUsername(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrUsernameEmpty
	}
	if utf8.RuneCountInString(name) > MaxUsernameLen {
		return "", ErrUsernameTooLong
	}
	return name, nil
}
