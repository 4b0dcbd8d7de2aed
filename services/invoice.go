// services/invoice.go
package services

import (
	"regexp"
	"strconv"
	"time"

	"showroom-backend/models"
)

const (
	invoiceTitle       = "Auto Service Invoice"
	invoiceFooterThank = "Thank you for choosing our service!"
	invoiceFooterBrand = "Powered by Your Auto Service Center"
)

// InvoiceLine is one job rendered as a table row. Rate is kept loosely typed
// so rows built from legacy store documents with junk rate values still
// render (they count as 0).
type InvoiceLine struct {
	Index   int
	Type    string
	SubType string
	Portion string
	Rate    any
	Status  string
}

// InvoiceDocument is the full, layout-ready description of an invoice. It is
// derived purely from a service; building one has no side effects.
type InvoiceDocument struct {
	Title          string
	InvoiceID      string
	Date           time.Time
	CustomerName   string
	CarName        string
	RegistrationNo string
	Phone          string
	StaffName      string
	Lines          []InvoiceLine
	Total          float64
	FooterLines    [2]string
	Filename       string
}

var whitespaceRe = regexp.MustCompile(`\s`)

// InvoiceFilename derives the deterministic download name for a service's
// invoice.
func InvoiceFilename(customerName, serviceID string) string {
	return "Invoice_" + whitespaceRe.ReplaceAllString(customerName, "_") + "_" + serviceID + ".pdf"
}

// lineAmount coerces a rate cell to a number; absent or non-numeric values
// count as zero.
func lineAmount(v any) float64 {
	f, err := parseRate(v)
	if err != nil {
		return 0
	}
	return f
}

// InvoiceTotal sums the coerced rate of every line.
func InvoiceTotal(lines []InvoiceLine) float64 {
	var total float64
	for _, l := range lines {
		total += lineAmount(l.Rate)
	}
	return total
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// GenerateInvoice derives the invoice document for a service. Jobs appear in
// their stored order; the caller is expected to offer invoicing only for
// completed services, but the only hard precondition is a non-empty job list.
func GenerateInvoice(service *models.Service) (*InvoiceDocument, error) {
	if service == nil || len(service.Jobs) == 0 {
		return nil, ErrEmptyInvoice
	}

	lines := make([]InvoiceLine, 0, len(service.Jobs))
	for i, job := range service.Jobs {
		lines = append(lines, InvoiceLine{
			Index:   i + 1,
			Type:    orDash(job.Type),
			SubType: orDash(job.SubType),
			Portion: orDash(job.Portion),
			Rate:    job.Rate,
			Status:  orDash(job.Status),
		})
	}

	phone := service.Phone
	if phone == "" {
		phone = "—"
	}
	staff := service.StaffName
	if staff == "" {
		staff = "—"
	}

	return &InvoiceDocument{
		Title:          invoiceTitle,
		InvoiceID:      service.ID.String(),
		Date:           time.Now(),
		CustomerName:   service.CustomerName,
		CarName:        service.CarName,
		RegistrationNo: service.RegistrationNo,
		Phone:          phone,
		StaffName:      staff,
		Lines:          lines,
		Total:          InvoiceTotal(lines),
		FooterLines:    [2]string{invoiceFooterThank, invoiceFooterBrand},
		Filename:       InvoiceFilename(service.CustomerName, service.ID.String()),
	}, nil
}

// FormatAmount renders a rate or total without trailing zeros, the way the
// intake form shows them.
func FormatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
