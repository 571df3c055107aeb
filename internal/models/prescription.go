package models

import (
	"time"
)

// Prescription belongs to a patient and is optionally linked to the
// visit it was issued on.
type Prescription struct {
	BaseModel
	PatientID      string    `gorm:"size:36;index;not null" json:"patientId"`
	VisitID        *string   `gorm:"size:36;index" json:"visitId,omitempty"`
	Medication     string    `gorm:"size:255;not null" json:"medication"`
	Dosage         string    `gorm:"size:100;not null" json:"dosage"`
	Frequency      string    `gorm:"size:100;not null" json:"frequency"`
	Duration       string    `gorm:"size:100" json:"duration,omitempty"`
	Instructions   string    `gorm:"type:text" json:"instructions,omitempty"`
	PrescribedDate time.Time `gorm:"not null" json:"prescribedDate"`

	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
	Visit   *Visit  `gorm:"foreignKey:VisitID" json:"-"`
}
