package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"clinic-server/internal/billing"
	"clinic-server/internal/models"
	"clinic-server/internal/utils"
)

// InvoiceHandler handles invoice requests.
type InvoiceHandler struct {
	DB *gorm.DB
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(db *gorm.DB) *InvoiceHandler {
	return &InvoiceHandler{DB: db}
}

// CreateInvoiceRequest represents the request body for issuing an
// invoice. VatRate, VatAmount and Total are never accepted from the
// client; they are derived from Subtotal.
type CreateInvoiceRequest struct {
	PatientID     string               `json:"patientId" binding:"required,uuid"`
	VisitID       *string              `json:"visitId" binding:"omitempty,uuid"`
	InvoiceNumber string               `json:"invoiceNumber" binding:"required"`
	Description   string               `json:"description" binding:"required"`
	Subtotal      *decimal.Decimal     `json:"subtotal" binding:"required"`
	Status        models.InvoiceStatus `json:"status" binding:"omitempty,oneof=pending paid cancelled"`
	IssueDate     *time.Time           `json:"issueDate"`
	DueDate       *models.DateOnly     `json:"dueDate"`
}

// CreateInvoice issues an invoice, deriving VAT and total from the
// subtotal at the fixed rate.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if req.Subtotal.IsNegative() {
		utils.ValidationFailed(c, "Validation failed", map[string]string{"subtotal": "must not be negative"})
		return
	}

	if !patientExists(h.DB, c, req.PatientID) {
		return
	}

	issueDate := time.Now()
	if req.IssueDate != nil {
		issueDate = *req.IssueDate
	}

	status := req.Status
	if status == "" {
		status = models.InvoicePending
	}

	vatAmount, total := billing.ComputeVAT(*req.Subtotal)

	invoice := models.Invoice{
		PatientID:     req.PatientID,
		VisitID:       req.VisitID,
		InvoiceNumber: req.InvoiceNumber,
		Description:   req.Description,
		Subtotal:      *req.Subtotal,
		VatRate:       billing.VATRate(),
		VatAmount:     vatAmount,
		Total:         total,
		Status:        status,
		IssueDate:     issueDate,
		DueDate:       req.DueDate,
	}

	if err := h.DB.Create(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.Conflict(c, "An invoice with this number already exists")
			return
		}
		utils.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

// GetInvoices lists invoices newest first by issue date, optionally
// filtered by patient.
func (h *InvoiceHandler) GetInvoices(c *gin.Context) {
	query := h.DB.Order("issue_date desc")
	if patientID := c.Query("patientId"); patientID != "" {
		query = query.Where("patient_id = ?", patientID)
	}

	var invoices []models.Invoice
	if err := query.Find(&invoices).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// GetInvoiceByID fetches a single invoice.
func (h *InvoiceHandler) GetInvoiceByID(c *gin.Context) {
	var invoice models.Invoice
	if err := h.DB.First(&invoice, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Invoice not found")
		} else {
			utils.InternalServerError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// UpdateInvoiceRequest represents a partial invoice update. When
// Subtotal is present, VAT amount and total are recomputed; otherwise
// the stored derived values pass through unchanged.
type UpdateInvoiceRequest struct {
	VisitID       *string               `json:"visitId" binding:"omitempty,uuid"`
	InvoiceNumber *string               `json:"invoiceNumber"`
	Description   *string               `json:"description"`
	Subtotal      *decimal.Decimal      `json:"subtotal"`
	Status        *models.InvoiceStatus `json:"status" binding:"omitempty,oneof=pending paid cancelled"`
	IssueDate     *time.Time            `json:"issueDate"`
	DueDate       *models.DateOnly      `json:"dueDate"`
	PaidDate      *time.Time            `json:"paidDate"`
}

func (r *UpdateInvoiceRequest) updates() map[string]interface{} {
	updates := map[string]interface{}{}
	setIfPresent(updates, "visit_id", r.VisitID)
	setIfPresent(updates, "invoice_number", r.InvoiceNumber)
	setIfPresent(updates, "description", r.Description)
	if r.Subtotal != nil {
		vatAmount, total := billing.ComputeVAT(*r.Subtotal)
		updates["subtotal"] = *r.Subtotal
		updates["vat_rate"] = billing.VATRate()
		updates["vat_amount"] = vatAmount
		updates["total"] = total
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	if r.IssueDate != nil {
		updates["issue_date"] = *r.IssueDate
	}
	if r.DueDate != nil {
		updates["due_date"] = r.DueDate
	}
	if r.PaidDate != nil {
		updates["paid_date"] = *r.PaidDate
	}
	return updates
}

// UpdateInvoice merges partial fields into an existing invoice.
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	var req UpdateInvoiceRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if req.Subtotal != nil && req.Subtotal.IsNegative() {
		utils.ValidationFailed(c, "Validation failed", map[string]string{"subtotal": "must not be negative"})
		return
	}

	var invoice models.Invoice
	if err := h.DB.First(&invoice, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Invoice not found")
		} else {
			utils.InternalServerError(c, err)
		}
		return
	}

	if updates := req.updates(); len(updates) > 0 {
		if err := h.DB.Model(&invoice).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				utils.Conflict(c, "An invoice with this number already exists")
				return
			}
			utils.InternalServerError(c, err)
			return
		}
		if err := h.DB.First(&invoice, "id = ?", invoice.ID).Error; err != nil {
			utils.InternalServerError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice removes an invoice.
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	result := h.DB.Delete(&models.Invoice{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		utils.InternalServerError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Invoice not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
