package domain

import (
	"fmt"
	"time"
)

// EntityName identifies the managed entity in problem payloads and alert headers.
const EntityName = "insuranceForm"

// MaxNotesSize caps the free-text notes field, in bytes.
const MaxNotesSize = 16384

// Form is the insurance form record managed by the API.
//
// ID is nil until the record store assigns one at creation; it is immutable
// afterwards. Reference is a UUID assigned alongside the ID and carried on
// the wire for external correlation.
type Form struct {
	ID            *int64  `json:"id"`
	Reference     string  `json:"reference,omitempty"`
	Name          string  `json:"name"`
	Provider      string  `json:"provider,omitempty"`
	PolicyNumber  string  `json:"policy_number,omitempty"`
	Premium       float64 `json:"premium,omitempty"`
	EffectiveDate string  `json:"effective_date,omitempty"`
	ExpiryDate    string  `json:"expiry_date,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

// HasID reports whether the form carries a persisted identifier.
func (f *Form) HasID() bool { return f.ID != nil }

// Validate checks payload sanity. Identifier presence rules are checked by
// the endpoint per operation, not here.
func (f *Form) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("name is required: %w", ErrInvalidForm)
	}
	if f.Premium < 0 {
		return fmt.Errorf("premium must not be negative: %w", ErrInvalidForm)
	}
	if len(f.Notes) > MaxNotesSize {
		return fmt.Errorf("notes too large (max %d bytes): %w", MaxNotesSize, ErrInvalidForm)
	}
	if err := validateDate("effective_date", f.EffectiveDate); err != nil {
		return err
	}
	if err := validateDate("expiry_date", f.ExpiryDate); err != nil {
		return err
	}
	return nil
}

func validateDate(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%s must be an ISO date (YYYY-MM-DD): %w", field, ErrInvalidForm)
	}
	return nil
}
