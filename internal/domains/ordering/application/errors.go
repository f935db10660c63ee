package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/bites-ordering-api/internal/domains/ordering/domain"
)

var (
	// ErrInvalidInput signals the submission violated a domain invariant.
	ErrInvalidInput = errors.New("invalid order input")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrValidation) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
