package form

import (
	"fmt"
	"strconv"

	"github.com/formvault/formvault/internal/domain"
)

// hashFields flattens a form into hash fields for HSET.
// Empty optional fields are omitted so FindAll round-trips cleanly.
func hashFields(f *domain.Form) map[string]string {
	m := map[string]string{
		"id":   strconv.FormatInt(*f.ID, 10),
		"name": f.Name,
	}
	if f.Reference != "" {
		m["reference"] = f.Reference
	}
	if f.Provider != "" {
		m["provider"] = f.Provider
	}
	if f.PolicyNumber != "" {
		m["policy_number"] = f.PolicyNumber
	}
	if f.Premium != 0 {
		m["premium"] = strconv.FormatFloat(f.Premium, 'f', -1, 64)
	}
	if f.EffectiveDate != "" {
		m["effective_date"] = f.EffectiveDate
	}
	if f.ExpiryDate != "" {
		m["expiry_date"] = f.ExpiryDate
	}
	if f.Notes != "" {
		m["notes"] = f.Notes
	}
	return m
}

// formFromHash hydrates a form from hash fields.
func formFromHash(m map[string]string) (domain.Form, error) {
	idStr, ok := m["id"]
	if !ok {
		return domain.Form{}, fmt.Errorf("hash missing id field")
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return domain.Form{}, fmt.Errorf("parse id %q: %w", idStr, err)
	}

	f := domain.Form{
		ID:            &id,
		Reference:     m["reference"],
		Name:          m["name"],
		Provider:      m["provider"],
		PolicyNumber:  m["policy_number"],
		EffectiveDate: m["effective_date"],
		ExpiryDate:    m["expiry_date"],
		Notes:         m["notes"],
	}

	if p, ok := m["premium"]; ok {
		premium, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return domain.Form{}, fmt.Errorf("parse premium %q: %w", p, err)
		}
		f.Premium = premium
	}

	return f, nil
}
