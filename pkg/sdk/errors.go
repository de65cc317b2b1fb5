package formvault

import "github.com/formvault/formvault/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound    = domain.ErrNotFound
	ErrIDExists    = domain.ErrIDExists
	ErrIDMissing   = domain.ErrIDMissing
	ErrInvalidForm = domain.ErrInvalidForm
)
