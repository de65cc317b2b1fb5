package formvault

import "github.com/formvault/formvault/internal/domain"

// Form is an insurance form record.
//
// ID is assigned by the store on Create and must be set on Update.
// Reference is a server-assigned UUID. Dates use the YYYY-MM-DD format.
type Form struct {
	ID            *int64
	Reference     string
	Name          string
	Provider      string
	PolicyNumber  string
	Premium       float64
	EffectiveDate string
	ExpiryDate    string
	Notes         string
}

func toInternalForm(f Form) domain.Form {
	return domain.Form{
		ID:            f.ID,
		Reference:     f.Reference,
		Name:          f.Name,
		Provider:      f.Provider,
		PolicyNumber:  f.PolicyNumber,
		Premium:       f.Premium,
		EffectiveDate: f.EffectiveDate,
		ExpiryDate:    f.ExpiryDate,
		Notes:         f.Notes,
	}
}

func fromInternalForm(f domain.Form) Form {
	return Form{
		ID:            f.ID,
		Reference:     f.Reference,
		Name:          f.Name,
		Provider:      f.Provider,
		PolicyNumber:  f.PolicyNumber,
		Premium:       f.Premium,
		EffectiveDate: f.EffectiveDate,
		ExpiryDate:    f.ExpiryDate,
		Notes:         f.Notes,
	}
}
