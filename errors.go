package compkit

import (
	"errors"
	"fmt"
)

// Sentinel errors for component definitions and calls.
var (
	ErrConfig   = errors.New("compkit: invalid component definition")
	ErrUsage    = errors.New("compkit: invalid component call")
	ErrCatalog  = errors.New("compkit: invalid catalog")
	ErrNotFound = errors.New("compkit: component not found")

	// ErrUnknownVariant is a usage error raised when a call names a variant
	// the definition does not declare.
	ErrUnknownVariant = fmt.Errorf("%w: unknown variant", ErrUsage)
)

// IsConfigError checks if err is a definition error.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfig)
}

// IsUsageError checks if err is a call error, including unknown variants.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrUsage)
}

// IsNotFound checks if err reports a missing component.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsCatalogError checks if err came from reading or converting a catalog.
func IsCatalogError(err error) bool {
	return errors.Is(err, ErrCatalog)
}

// IsUnknownVariant checks if err reports an undeclared variant.
func IsUnknownVariant(err error) bool {
	return errors.Is(err, ErrUnknownVariant)
}

func configErrorf(component, format string, args ...any) error {
	return fmt.Errorf("%w %q: %s", ErrConfig, component, fmt.Sprintf(format, args...))
}

func usageErrorf(component, format string, args ...any) error {
	return fmt.Errorf("%w %q: %s", ErrUsage, component, fmt.Sprintf(format, args...))
}
