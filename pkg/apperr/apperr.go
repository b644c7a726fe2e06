package apperr

import (
	"errors"
	"fmt"
)

// Sentinels for the failure classes the API distinguishes. Wrap with
// fmt.Errorf("%w: ...") to add context; match with errors.Is.
var (
	ErrValidation           = errors.New("validation failed")
	ErrNotFound             = errors.New("not found")
	ErrPersistence          = errors.New("persistence failed")
	ErrReferentialIntegrity = errors.New("record is still referenced")
	ErrDeviceUnavailable    = errors.New("device unavailable")
)

func Validationf(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, a...))
}
