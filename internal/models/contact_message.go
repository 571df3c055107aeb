package models

// ContactMessage is a public inquiry from the marketing site. Rows are
// write-once: there is no update or delete path.
type ContactMessage struct {
	BaseModel
	Name          string `gorm:"size:200;not null" json:"name"`
	Phone         string `gorm:"size:30;not null" json:"phone"`
	Email         string `gorm:"size:255;not null" json:"email"`
	Message       string `gorm:"type:text;not null" json:"message"`
	PreferredDate string `gorm:"size:100" json:"preferredDate,omitempty"`
}
