package ports

import (
	"context"
	"errors"
)

// ErrAccessDenied is returned when an operator credential is rejected.
var ErrAccessDenied = errors.New("access denied")

// AccessChecker gates the operator view.
type AccessChecker interface {
	CheckAccess(ctx context.Context, credential string) error
}
