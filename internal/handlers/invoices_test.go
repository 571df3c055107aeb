package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createInvoice(t *testing.T, router *gin.Engine, session *http.Cookie, patientID, number string, subtotal float64, extra gin.H) map[string]interface{} {
	t.Helper()

	body := gin.H{
		"patientId":     patientID,
		"invoiceNumber": number,
		"description":   "consultation",
		"subtotal":      subtotal,
	}
	for k, v := range extra {
		body[k] = v
	}

	w := doJSON(t, router, http.MethodPost, "/api/invoices", body, session)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody(t, w)
}

func TestInvoiceCreateComputesVAT(t *testing.T) {
	router, _ := newTestServer(t)
	session := loginAsAdmin(t, router)
	patientID := createPatient(t, router, session, "123456789")

	invoice := createInvoice(t, router, session, patientID, "INV-001", 100.00, nil)

	assert.Equal(t, "18", invoice["vatRate"])
	assert.Equal(t, "18", invoice["vatAmount"])
	assert.Equal(t, "118", invoice["total"])
	assert.Equal(t, "pending", invoice["status"])
}

func TestInvoiceZeroSubtotal(t *testing.T) {
	router, _ := newTestServer(t)
	session := loginAsAdmin(t, router)
	patientID := createPatient(t, router, session, "123456789")

	invoice := createInvoice(t, router, session, patientID, "INV-001", 0, nil)

	assert.Equal(t, "0", invoice["vatAmount"])
	assert.Equal(t, "0", invoice["total"])
}

func TestInvoiceNegativeSubtotalRejected(t *testing.T) {
	router, _ := newTestServer(t)
	session := loginAsAdmin(t, router)
	patientID := createPatient(t, router, session, "123456789")

	w := doJSON(t, router, http.MethodPost, "/api/invoices", gin.H{
		"patientId":     patientID,
		"invoiceNumber": "INV-001",
		"description":   "consultation",
		"subtotal":      -5,
	}, session)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvoicePatchSubtotalRecomputes(t *testing.T) {
	router, _ := newTestServer(t)
	session := loginAsAdmin(t, router)
	patientID := createPatient(t, router, session, "123456789")

	invoice := createInvoice(t, router, session, patientID, "INV-001", 100.00, nil)
	id := invoice["id"].(string)

	w := doJSON(t, router, http.MethodPatch, "/api/invoices/"+id, gin.H{
		"subtotal": 200.00,
	}, session)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decodeBody(t, w)
	assert.Equal(t, "36", updated["vatAmount"])
	assert.Equal(t, "236", updated["total"])
}

func TestInvoicePatchWithoutSubtotalKeepsTotals(t *testing.T) {
	router, _ := newTestServer(t)
	session := loginAsAdmin(t, router)
	patientID := createPatient(t, router, session, "123456789")

	invoice := createInvoice(t, router, session, patientID, "INV-001", 100.00, nil)
	id := invoice["id"].(string)

	w := doJSON(t, router, http.MethodPatch, "/api/invoices/"+id, gin.H{
		"status":      "paid",
		"description": "consultation + skin test",
	}, session)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decodeBody(t, w)
	assert.Equal(t, "paid", updated["status"])
	assert.Equal(t, "18", updated["vatAmount"])
	assert.Equal(t, "118", updated["total"])
}

func TestInvoiceInvalidStatusRejected(t *testing.T) {
	router, _ := newTestServer(t)
	session := loginAsAdmin(t, router)
	patientID := createPatient(t, router, session, "123456789")

	invoice := createInvoice(t, router, session, patientID, "INV-001", 50, nil)
	id := invoice["id"].(string)

	w := doJSON(t, router, http.MethodPatch, "/api/invoices/"+id, gin.H{
		"status": "refunded",
	}, session)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvoiceDuplicateNumberConflict(t *testing.T) {
	router, _ := newTestServer(t)
	session := loginAsAdmin(t, router)
	patientID := createPatient(t, router, session, "123456789")

	createInvoice(t, router, session, patientID, "INV-001", 100, nil)

	w := doJSON(t, router, http.MethodPost, "/api/invoices", gin.H{
		"patientId":     patientID,
		"invoiceNumber": "INV-001",
		"description":   "duplicate",
		"subtotal":      10,
	}, session)
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}

func TestInvoiceListOrderingAndFilter(t *testing.T) {
	router, _ := newTestServer(t)
	session := loginAsAdmin(t, router)
	patientA := createPatient(t, router, session, "111111111")
	patientB := createPatient(t, router, session, "222222222")

	older := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)

	createInvoice(t, router, session, patientA, "INV-001", 100, gin.H{"issueDate": older.Format(time.RFC3339)})
	createInvoice(t, router, session, patientA, "INV-002", 200, gin.H{"issueDate": newer.Format(time.RFC3339)})
	createInvoice(t, router, session, patientB, "INV-003", 300, nil)

	w := doJSON(t, router, http.MethodGet, "/api/invoices?patientId="+patientA, nil, session)
	require.Equal(t, http.StatusOK, w.Code)
	invoices := decodeList(t, w)
	require.Len(t, invoices, 2)
	assert.Equal(t, "INV-002", invoices[0]["invoiceNumber"])
	assert.Equal(t, "INV-001", invoices[1]["invoiceNumber"])
}

func TestInvoiceUnknownPatientRejected(t *testing.T) {
	router, _ := newTestServer(t)
	session := loginAsAdmin(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/invoices", gin.H{
		"patientId":     "00000000-0000-0000-0000-000000000000",
		"invoiceNumber": "INV-001",
		"description":   "consultation",
		"subtotal":      100,
	}, session)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
