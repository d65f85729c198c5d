// Package receiptpdf renders monthly delivery receipts. It is purely
// presentational: callers hand it the customer details, the ordered entry
// lines and the totals, and get PDF bytes back.
package receiptpdf

import (
	"fmt"
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Line is one delivery row on the receipt.
type Line struct {
	Date   time.Time
	Litres float64
	Rate   float64
	Amount float64
}

// Receipt holds everything needed to render a monthly receipt.
type Receipt struct {
	BusinessName string
	Tagline      string
	CustomerName string
	CustomerCode string
	Phone        string
	Month        time.Month
	Year         int
	Lines        []Line
	TotalLitres  float64
	TotalAmount  float64
}

var (
	brandGreen = &props.Color{Red: 46, Green: 139, Blue: 87}
	white      = &props.Color{Red: 255, Green: 255, Blue: 255}
	softGrey   = &props.Color{Red: 247, Green: 247, Blue: 247}
)

// Render produces the receipt as PDF bytes.
func Render(r *Receipt) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithRightMargin(15).
		WithTopMargin(15).
		Build()

	m := maroto.New(cfg)

	addHeader(m, r)
	addCustomerDetails(m, r)
	addEntryTable(m, r)
	addTotals(m, r)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate receipt pdf: %w", err)
	}

	return doc.GetBytes(), nil
}

func addHeader(m core.Maroto, r *Receipt) {
	m.AddRow(12, text.NewCol(12, r.BusinessName, props.Text{
		Size:  22,
		Style: fontstyle.Bold,
		Color: brandGreen,
	}))
	if r.Tagline != "" {
		m.AddRow(6, text.NewCol(12, r.Tagline, props.Text{
			Size:  10,
			Color: &props.Color{Red: 102, Green: 102, Blue: 102},
		}))
	}

	m.AddRow(12, text.NewCol(12, "Monthly Receipt", props.Text{
		Size:  16,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: brandGreen,
		Top:   3,
	}))
	m.AddRow(2, line.NewCol(12, props.Line{Color: brandGreen, Thickness: 0.8}))

	monthLabel := fmt.Sprintf("%s %d", r.Month.String(), r.Year)
	m.AddRow(8, text.NewCol(12, "Month: "+monthLabel, props.Text{
		Size:  10,
		Align: align.Center,
		Top:   2,
	}))
}

func addCustomerDetails(m core.Maroto, r *Receipt) {
	m.AddRow(8, text.NewCol(12, "Customer Details", props.Text{
		Size:  12,
		Style: fontstyle.Bold,
		Color: brandGreen,
		Top:   2,
	}))

	phone := r.Phone
	if phone == "" {
		phone = "N/A"
	}
	m.AddRow(5, text.NewCol(12, "Name: "+r.CustomerName, props.Text{Size: 10}))
	m.AddRow(5, text.NewCol(12, "Customer ID: "+r.CustomerCode, props.Text{Size: 10}))
	m.AddRow(5, text.NewCol(12, "Phone: "+phone, props.Text{Size: 10}))
}

func addEntryTable(m core.Maroto, r *Receipt) {
	header := row.New(9).Add(
		headerCell("Date", 3),
		headerCell("Litres", 3),
		headerCell("Rate per Litre (Rs.)", 3),
		headerCell("Amount (Rs.)", 3),
	).WithStyle(&props.Cell{BackgroundColor: brandGreen})
	m.AddRows(header)

	for i, l := range r.Lines {
		bg := white
		if i%2 == 0 {
			bg = softGrey
		}
		m.AddRows(row.New(7).Add(
			bodyCell(formatReceiptDate(l.Date), 3),
			bodyCell(fmt.Sprintf("%.2f", l.Litres), 3),
			bodyCell(fmt.Sprintf("Rs. %.2f", l.Rate), 3),
			bodyCell(fmt.Sprintf("Rs. %.2f", l.Amount), 3),
		).WithStyle(&props.Cell{BackgroundColor: bg}))
	}
}

func addTotals(m core.Maroto, r *Receipt) {
	m.AddRow(4, col.New(12))
	m.AddRows(row.New(8).Add(
		col.New(6),
		text.NewCol(3, "Total Litres:", props.Text{
			Size:  11,
			Style: fontstyle.Bold,
			Color: brandGreen,
			Top:   1,
		}),
		text.NewCol(3, fmt.Sprintf("%.2f L", r.TotalLitres), props.Text{
			Size:  11,
			Style: fontstyle.Bold,
			Align: align.Right,
			Top:   1,
		}),
	).WithStyle(&props.Cell{BackgroundColor: &props.Color{Red: 234, Green: 247, Blue: 236}}))
	m.AddRows(row.New(8).Add(
		col.New(6),
		text.NewCol(3, "Total Amount:", props.Text{
			Size:  11,
			Style: fontstyle.Bold,
			Color: brandGreen,
			Top:   1,
		}),
		text.NewCol(3, fmt.Sprintf("Rs. %.2f", r.TotalAmount), props.Text{
			Size:  11,
			Style: fontstyle.Bold,
			Align: align.Right,
			Top:   1,
		}),
	).WithStyle(&props.Cell{BackgroundColor: &props.Color{Red: 234, Green: 247, Blue: 236}}))
}

func headerCell(label string, size int) core.Col {
	return text.NewCol(size, label, props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: white,
		Top:   2,
	})
}

func bodyCell(value string, size int) core.Col {
	return text.NewCol(size, value, props.Text{
		Size:  9,
		Align: align.Center,
		Top:   1.5,
	})
}

// formatReceiptDate renders dates as 03-NOV-2025
func formatReceiptDate(t time.Time) string {
	return strings.ToUpper(t.Format("02-Jan-2006"))
}
