package models

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment is a booking request. PatientID is optional: walk-in
// bookings from the public site arrive before a patient record exists,
// so contact details are captured as entered at booking time.
type Appointment struct {
	BaseModel
	PatientID       *string           `gorm:"size:36;index" json:"patientId,omitempty"`
	PatientName     string            `gorm:"size:200;not null" json:"patientName"`
	PatientPhone    string            `gorm:"size:30;not null" json:"patientPhone"`
	PatientEmail    string            `gorm:"size:255" json:"patientEmail,omitempty"`
	AppointmentDate DateOnly          `gorm:"not null" json:"appointmentDate"`
	AppointmentTime string            `gorm:"size:20;not null" json:"appointmentTime"`
	Reason          string            `gorm:"type:text" json:"reason,omitempty"`
	Status          AppointmentStatus `gorm:"size:20;not null;default:'scheduled'" json:"status"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`

	Patient *Patient `gorm:"foreignKey:PatientID" json:"-"`
}
