package domain

// Profile is the medical profile of one user. Every text field is optional;
// a save replaces the whole row, so a nil field is stored as NULL.
type Profile struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	FullName       *string `json:"fullName,omitempty"`
	Age            *int    `json:"age,omitempty"`
	MedicalHistory *string `json:"medicalHistory,omitempty"`
	Allergies      *string `json:"allergies,omitempty"`
	Medications    *string `json:"medications,omitempty"`
	BloodType      *string `json:"bloodType,omitempty"`
	Height         *int    `json:"height,omitempty"` // cm
	Weight         *int    `json:"weight,omitempty"` // kg
	Picture        []byte  `json:"-"`
}

// HasPicture reports whether a non-empty picture is stored on the row.
func (p *Profile) HasPicture() bool {
	return p != nil && len(p.Picture) > 0
}
