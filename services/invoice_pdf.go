// services/invoice_pdf.go
package services

import (
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	tableHeaderFill = props.Color{Red: 41, Green: 128, Blue: 185}
	tableAltFill    = props.Color{Red: 240, Green: 240, Blue: 240}
	white           = props.Color{Red: 255, Green: 255, Blue: 255}
)

// RenderInvoicePDF lays the invoice document out as PDF bytes: centered
// title, header block, job table, right-aligned total, centered footer.
func RenderInvoicePDF(doc *InvoiceDocument) ([]byte, error) {
	m := maroto.New()

	m.AddRows(
		text.NewRow(14, doc.Title, props.Text{Size: 22, Style: fontstyle.Bold, Align: align.Center}),
		row.New(8).Add(
			text.NewCol(8, "Invoice ID: "+doc.InvoiceID, props.Text{Size: 12}),
			text.NewCol(4, "Date: "+doc.Date.Format("02/01/2006"), props.Text{Size: 12, Align: align.Right}),
		),
		text.NewRow(7, "Customer Name: "+doc.CustomerName, props.Text{Size: 12}),
		text.NewRow(7, "Car: "+doc.CarName, props.Text{Size: 12}),
		text.NewRow(7, "Registration No.: "+doc.RegistrationNo, props.Text{Size: 12}),
		text.NewRow(7, "Phone: "+doc.Phone, props.Text{Size: 12}),
		text.NewRow(7, "Staff: "+doc.StaffName, props.Text{Size: 12}),
	)

	header := row.New(8).Add(
		text.NewCol(1, "#", props.Text{Size: 11, Style: fontstyle.Bold, Color: &white}),
		text.NewCol(3, "Type", props.Text{Size: 11, Style: fontstyle.Bold, Color: &white}),
		text.NewCol(2, "Sub Type", props.Text{Size: 11, Style: fontstyle.Bold, Color: &white}),
		text.NewCol(2, "Portion", props.Text{Size: 11, Style: fontstyle.Bold, Color: &white}),
		text.NewCol(2, "Rate (Rs.)", props.Text{Size: 11, Style: fontstyle.Bold, Color: &white}),
		text.NewCol(2, "Status", props.Text{Size: 11, Style: fontstyle.Bold, Color: &white}),
	).WithStyle(&props.Cell{BackgroundColor: &tableHeaderFill})
	m.AddRows(header)

	for i, line := range doc.Lines {
		r := row.New(7).Add(
			text.NewCol(1, FormatAmount(float64(line.Index)), props.Text{Size: 11}),
			text.NewCol(3, line.Type, props.Text{Size: 11}),
			text.NewCol(2, line.SubType, props.Text{Size: 11}),
			text.NewCol(2, line.Portion, props.Text{Size: 11}),
			text.NewCol(2, FormatAmount(lineAmount(line.Rate)), props.Text{Size: 11}),
			text.NewCol(2, line.Status, props.Text{Size: 11}),
		)
		if i%2 == 1 {
			r.WithStyle(&props.Cell{BackgroundColor: &tableAltFill})
		}
		m.AddRows(r)
	}

	m.AddRows(
		text.NewRow(12, "Total Amount: Rs. "+FormatAmount(doc.Total),
			props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Right}),
		text.NewRow(6, doc.FooterLines[0], props.Text{Size: 10, Align: align.Center}),
		text.NewRow(6, doc.FooterLines[1], props.Text{Size: 10, Align: align.Center}),
	)

	rendered, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return rendered.GetBytes(), nil
}
