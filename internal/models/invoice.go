package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the payment state of an invoice
type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "pending"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Invoice is a billing record for a patient, optionally tied to a
// visit. VatAmount and Total are derived from Subtotal by the billing
// package and recomputed whenever Subtotal changes.
type Invoice struct {
	BaseModel
	PatientID     string          `gorm:"size:36;index;not null" json:"patientId"`
	VisitID       *string         `gorm:"size:36;index" json:"visitId,omitempty"`
	InvoiceNumber string          `gorm:"uniqueIndex;size:50;not null" json:"invoiceNumber"`
	Description   string          `gorm:"type:text;not null" json:"description"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"subtotal"`
	VatRate       decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"vatRate"`
	VatAmount     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"vatAmount"`
	Total         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total"`
	Status        InvoiceStatus   `gorm:"size:20;not null;default:'pending'" json:"status"`
	IssueDate     time.Time       `gorm:"not null" json:"issueDate"`
	DueDate       *DateOnly       `json:"dueDate,omitempty"`
	PaidDate      *time.Time      `json:"paidDate,omitempty"`

	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
	Visit   *Visit  `gorm:"foreignKey:VisitID" json:"-"`
}
