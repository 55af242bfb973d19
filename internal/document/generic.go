package document

import (
	"fmt"
	"strings"

	"regie/internal/docbuilder"
	"regie/internal/domain/amount"
	"regie/internal/domain/payroll"
)

// renderGeneric is the fallback recap used by types without a dedicated
// layout: title, period, budget references and a worker detail table.
func renderGeneric(b docbuilder.Builder, req *Request) error {
	opts := req.Options
	t := req.Type()

	title, ok := titles[t]
	if !ok {
		title = strings.ToUpper(string(t))
		if title == "" {
			title = "DOCUMENT"
		}
	}

	b.SetPage(docbuilder.PageSetup{MarginMM: 12})

	b.Paragraph(centeredLine(title, true, false, 14, 6))
	if req.Year > 0 && req.Month > 0 {
		b.Paragraph(centeredLine(fmt.Sprintf("Période: %02d/%d", req.Month, req.Year), false, false, 10, 4))
	} else if req.Year > 0 && req.Quarter > 0 {
		b.Paragraph(centeredLine(fmt.Sprintf("Période: T%d/%d", req.Quarter, req.Year), false, false, 10, 4))
	}

	refParts := []struct{ label, value string }{
		{"Chap", opts.Chapter},
		{"Art", opts.Article},
		{"Prog", opts.Program},
		{"Proj", opts.Project},
		{"Ligne", opts.Line},
	}
	var refLines []string
	for _, part := range refParts {
		if part.value != "" {
			refLines = append(refLines, fmt.Sprintf("%s: %s", part.label, part.value))
		}
	}
	if len(refLines) > 0 {
		b.Paragraph(plainLine("Références budgétaires:", docbuilder.AlignLeft, 10, 0))
		for _, line := range refLines {
			b.Paragraph(plainLine(line, docbuilder.AlignLeft, 10, 0))
		}
	}

	if len(req.Report.Rows) == 0 {
		return nil
	}
	period, ok := genericPeriod(req)
	if !ok {
		return nil
	}
	rows, totals := payroll.Aggregate(req.Report.Rows, period, opts.RCARAgeLimit, rateFor(t))
	if len(rows) == 0 {
		return nil
	}

	b.Paragraph(plainLine("Détail des ouvriers:", docbuilder.AlignLeft, 10, 0))

	usable := 210.0 - 24
	colW := []float64{
		usable * 0.30, usable * 0.14, usable * 0.07, usable * 0.08,
		usable * 0.12, usable * 0.14, usable * 0.15,
	}
	headers := []string{"Nom et Prénom", "CIN", "Type", "Jours", "Brut", "Prélèvement", "Net"}
	headerCells := make([]docbuilder.TableCell, len(headers))
	for i, h := range headers {
		headerCells[i] = docbuilder.Cell(h, docbuilder.AlignLeft)
	}
	tableRows := []docbuilder.TableRow{{Cells: headerCells}}
	for _, row := range rows {
		tableRows = append(tableRows, docbuilder.TableRow{Cells: []docbuilder.TableCell{
			docbuilder.Cell(row.FullName, docbuilder.AlignLeft),
			docbuilder.Cell(row.CIN, docbuilder.AlignLeft),
			docbuilder.Cell(row.Category, docbuilder.AlignLeft),
			docbuilder.Cell(fmtDays(row.Days), docbuilder.AlignLeft),
			docbuilder.Cell(amount.Plain(row.Gross, false), docbuilder.AlignLeft),
			docbuilder.Cell(amount.Plain(row.Deduction, false), docbuilder.AlignLeft),
			docbuilder.Cell(amount.Plain(row.Net, false), docbuilder.AlignLeft),
		}})
	}
	b.Table(docbuilder.TableSpec{ColWidthsMM: colW, Borders: true, Rows: tableRows})

	b.Paragraph(plainLine(fmt.Sprintf(
		"Totaux - Jours: %s | Brut: %s | Prélèvement: %s | Net: %s",
		fmtDays(totals.Days),
		amount.Plain(totals.Gross, false),
		amount.Plain(totals.Deduction, false),
		amount.Plain(totals.Net, false)), docbuilder.AlignLeft, 10, 0))
	return nil
}

// genericPeriod resolves the recap's reference period: the month when
// given, otherwise the quarter. An explicit report.period.quarterEndDate
// overrides the derived quarter end as the age reference. Without month
// or quarter, no detail is rendered.
func genericPeriod(req *Request) (payroll.Period, bool) {
	if p, err := payroll.MonthPeriod(req.Year, req.Month); err == nil {
		return p, true
	}
	if p, err := payroll.QuarterPeriod(req.Year, req.Quarter, req.Report.Period.Months); err == nil {
		if end, ok := payroll.ParseDate(req.Report.Period.QuarterEndDate); ok {
			p.End = end
		}
		return p, true
	}
	return payroll.Period{}, false
}
