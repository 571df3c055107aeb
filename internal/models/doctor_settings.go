package models

// DoctorSettingsID is the fixed primary key of the singleton settings
// row. Writing through a constant key makes the PUT an atomic upsert
// instead of a query-then-branch.
const DoctorSettingsID = "doctor-settings"

// DoctorSettings is the practice profile shown on the public site.
// At most one row exists.
type DoctorSettings struct {
	BaseModel
	DoctorName    string `gorm:"size:200;not null" json:"doctorName"`
	Specialty     string `gorm:"size:200;not null" json:"specialty"`
	LicenseNumber string `gorm:"size:50" json:"licenseNumber,omitempty"`
	Phone         string `gorm:"size:30" json:"phone,omitempty"`
	Email         string `gorm:"size:255" json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	WorkingHours  string `gorm:"type:text" json:"workingHours,omitempty"`
	Bio           string `gorm:"type:text" json:"bio,omitempty"`
}
