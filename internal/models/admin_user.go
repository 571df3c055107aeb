package models

import (
	"golang.org/x/crypto/bcrypt"
)

// AdminUser is a back-office account. The system starts with zero admin
// users; the first one is created through the one-time setup endpoint.
type AdminUser struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;size:255;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	FirstName    string `gorm:"size:100" json:"firstName"`
	LastName     string `gorm:"size:100" json:"lastName"`

	Sessions []Session `gorm:"foreignKey:AdminUserID" json:"-"`
}

// SetPassword hashes a password and sets it on the user
func (u *AdminUser) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *AdminUser) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}
