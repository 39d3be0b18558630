package models

// HealthProfile is the single per-user health record. Ownership is resolved
// server-side from the bearer credential; the client never holds a foreign key.
//
// PDFURL is optional and carries omitempty: the backend rejects an explicit
// empty string for that field, so an absent document must be omitted from
// create/update payloads rather than sent as "".
type HealthProfile struct {
	ID                string `json:"id,omitempty"`
	Name              string `json:"name" validate:"required,min=2"`
	BloodGroup        string `json:"blood_group" validate:"required,bloodgroup"`
	InsuranceProvider string `json:"insurance_provider" validate:"required,min=2"`
	InsuranceNumber   string `json:"insurance_number" validate:"required,min=2"`
	PDFURL            string `json:"pdf_url,omitempty"`
}
