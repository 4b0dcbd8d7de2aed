package services

import (
	"bytes"
	"testing"

	"showroom-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func sampleService() *models.Service {
	return &models.Service{
		ID:             uuid.New(),
		CustomerName:   "Alice Smith",
		CarName:        "Sedan X",
		RegistrationNo: "AB12CD3456",
		Phone:          "9876543210",
		StaffName:      "Ravi",
		Jobs: []models.Job{
			{ID: uuid.New(), Type: models.JobTypeCoating, SubType: "Ceramic", Portion: "Full Body", Rate: 12000, Status: models.JobStatusCompleted},
			{ID: uuid.New(), Type: models.JobTypeSunfilm, Portion: "Front", Rate: 3500, Status: models.JobStatusCompleted},
		},
	}
}

func TestInvoiceTotal_CoercesRates(t *testing.T) {
	lines := []InvoiceLine{
		{Rate: 1000.0},
		{Rate: "abc"},
		{Rate: "500"},
	}
	require.Equal(t, 1500.0, InvoiceTotal(lines))
	require.Empty(t, InvoiceTotal(nil))
}

func TestGenerateInvoice_EmptyJobs(t *testing.T) {
	service := sampleService()
	service.Jobs = nil
	_, err := GenerateInvoice(service)
	require.ErrorIs(t, err, ErrEmptyInvoice)

	_, err = GenerateInvoice(nil)
	require.ErrorIs(t, err, ErrEmptyInvoice)
}

func TestGenerateInvoice_Document(t *testing.T) {
	service := sampleService()

	doc, err := GenerateInvoice(service)
	require.NoError(t, err)

	require.Equal(t, "Auto Service Invoice", doc.Title)
	require.Equal(t, service.ID.String(), doc.InvoiceID)
	require.Equal(t, "Alice Smith", doc.CustomerName)
	require.Equal(t, "9876543210", doc.Phone)
	require.Equal(t, "Ravi", doc.StaffName)

	require.Len(t, doc.Lines, 2)
	require.Equal(t, 1, doc.Lines[0].Index)
	require.Equal(t, models.JobTypeCoating, doc.Lines[0].Type)
	require.Equal(t, "Ceramic", doc.Lines[0].SubType)
	require.Equal(t, 2, doc.Lines[1].Index)
	require.Equal(t, 15500.0, doc.Total)

	require.Equal(t, "Thank you for choosing our service!", doc.FooterLines[0])
	require.Equal(t, "Powered by Your Auto Service Center", doc.FooterLines[1])
	require.Equal(t, "Invoice_Alice_Smith_"+service.ID.String()+".pdf", doc.Filename)
}

func TestGenerateInvoice_Placeholders(t *testing.T) {
	service := sampleService()
	service.Phone = ""
	service.StaffName = ""
	service.Jobs[1].SubType = ""
	service.Jobs[1].Portion = ""

	doc, err := GenerateInvoice(service)
	require.NoError(t, err)

	// Missing header fields render as an em dash, missing line cells as a
	// plain dash.
	require.Equal(t, "—", doc.Phone)
	require.Equal(t, "—", doc.StaffName)
	require.Equal(t, "-", doc.Lines[1].SubType)
	require.Equal(t, "-", doc.Lines[1].Portion)
}

func TestInvoiceFilename(t *testing.T) {
	require.Equal(t, "Invoice_Alice_Smith_abc123.pdf", InvoiceFilename("Alice Smith", "abc123"))
	require.Equal(t, "Invoice_A_B_C_id.pdf", InvoiceFilename("A B\tC", "id"))
	require.Equal(t, "Invoice__id.pdf", InvoiceFilename("", "id"))
}

func TestFormatAmount(t *testing.T) {
	require.Equal(t, "1500", FormatAmount(1500))
	require.Equal(t, "1250.5", FormatAmount(1250.5))
	require.Equal(t, "0", FormatAmount(0))
}

func TestRenderInvoicePDF(t *testing.T) {
	doc, err := GenerateInvoice(sampleService())
	require.NoError(t, err)

	pdf, err := RenderInvoicePDF(doc)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	require.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "output is not a PDF")
}
