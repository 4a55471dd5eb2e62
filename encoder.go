package compkit

import (
	"errors"
	"fmt"

	"github.com/pthm/compkit/lib/encoding"
)

// Document is an alias for encoding.Document for convenience.
type Document = encoding.Document

// Format is an alias for encoding.Format for convenience.
type Format = encoding.Format

// ReadDocument reads a catalog file, choosing the format from its
// extension.
func ReadDocument(path string) (*Document, error) {
	doc, err := encoding.ReadFile(path)
	if err != nil {
		return nil, wrapEncodingError(err)
	}
	return doc, nil
}

// wrapEncodingError wraps encoding package errors with compkit sentinel
// errors.
func wrapEncodingError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, encoding.ErrInvalidFormat) || errors.Is(err, encoding.ErrInvalidDocument) {
		return fmt.Errorf("%w: %w", ErrCatalog, err)
	}
	return err
}
