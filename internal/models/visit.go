package models

import (
	"time"
)

// Visit is a single consultation, always attached to a patient.
// VisitDate defaults to creation time and drives newest-first listing.
type Visit struct {
	BaseModel
	PatientID      string    `gorm:"size:36;index;not null" json:"patientId"`
	VisitDate      time.Time `gorm:"not null" json:"visitDate"`
	ChiefComplaint string    `gorm:"type:text" json:"chiefComplaint,omitempty"`
	Diagnosis      string    `gorm:"type:text" json:"diagnosis,omitempty"`
	Treatment      string    `gorm:"type:text" json:"treatment,omitempty"`
	Notes          string    `gorm:"type:text" json:"notes,omitempty"`
	FollowUpDate   *DateOnly `json:"followUpDate,omitempty"`

	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
}
