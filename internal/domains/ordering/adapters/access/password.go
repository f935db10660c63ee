// Package access holds operator-view access checks.
package access

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	orderingports "github.com/Apurer/bites-ordering-api/internal/domains/ordering/ports"
)

var _ orderingports.AccessChecker = (*PasswordChecker)(nil)

// PasswordChecker compares the supplied credential with a configured admin
// password, either as a bcrypt hash or as plain text.
type PasswordChecker struct {
	hash  []byte
	plain []byte
}

// NewPasswordChecker prefers the bcrypt hash when both are given.
func NewPasswordChecker(plain, bcryptHash string) (*PasswordChecker, error) {
	plain = strings.TrimSpace(plain)
	bcryptHash = strings.TrimSpace(bcryptHash)
	if plain == "" && bcryptHash == "" {
		return nil, errors.New("admin password or bcrypt hash is required")
	}
	if bcryptHash != "" {
		if _, err := bcrypt.Cost([]byte(bcryptHash)); err != nil {
			return nil, err
		}
		return &PasswordChecker{hash: []byte(bcryptHash)}, nil
	}
	return &PasswordChecker{plain: []byte(plain)}, nil
}

func (c *PasswordChecker) CheckAccess(_ context.Context, credential string) error {
	if c == nil || credential == "" {
		return orderingports.ErrAccessDenied
	}
	if len(c.hash) > 0 {
		if bcrypt.CompareHashAndPassword(c.hash, []byte(credential)) != nil {
			return orderingports.ErrAccessDenied
		}
		return nil
	}
	if subtle.ConstantTimeCompare(c.plain, []byte(credential)) != 1 {
		return orderingports.ErrAccessDenied
	}
	return nil
}

// DenyAll rejects every credential; used when no admin password is configured.
type DenyAll struct{}

func (DenyAll) CheckAccess(_ context.Context, _ string) error {
	return orderingports.ErrAccessDenied
}
