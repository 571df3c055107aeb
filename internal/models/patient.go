package models

// Patient is a clinic patient record. IDNumber is the national id and
// is unique across patients.
type Patient struct {
	BaseModel
	FirstName   string    `gorm:"size:100;not null" json:"firstName"`
	LastName    string    `gorm:"size:100;not null" json:"lastName"`
	IDNumber    string    `gorm:"uniqueIndex;size:20;not null" json:"idNumber"`
	DateOfBirth *DateOnly `json:"dateOfBirth,omitempty"`
	Gender      string    `gorm:"size:20" json:"gender,omitempty"`
	Phone       string    `gorm:"size:30;not null" json:"phone"`
	Email       string    `gorm:"size:255" json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
	Allergies   string    `gorm:"type:text" json:"allergies,omitempty"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`

	Visits        []Visit        `gorm:"foreignKey:PatientID" json:"-"`
	Prescriptions []Prescription `gorm:"foreignKey:PatientID" json:"-"`
	Invoices      []Invoice      `gorm:"foreignKey:PatientID" json:"-"`
	Appointments  []Appointment  `gorm:"foreignKey:PatientID" json:"-"`
}
