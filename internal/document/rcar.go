package document

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"regie/internal/docbuilder"
	"regie/internal/domain/amount"
)

func renderRCARSalariale(b docbuilder.Builder, req *Request) error {
	return renderRCAR(b, req, "COTISATION SALARIALE", "cotisation_salariale")
}

func renderRCARPatronale(b docbuilder.Builder, req *Request) error {
	return renderRCAR(b, req, "COTISATION PATRONALE", "contribution_patronale")
}

var nonDigits = regexp.MustCompile(`\D`)

// fmtDays prints whole day counts without decimals and fractional ones
// with a comma, the way the forms expect.
func fmtDays(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return d.Truncate(0).String()
	}
	return strings.ReplaceAll(d.StringFixed(2), ".", ",")
}

// renderRCAR lays out the quarterly pension statement: the per-worker
// payment state on page 1 and the remittance form with its digit boxes
// on page 2. Both contribution documents share the layout; only the
// subtitle, the rate and the form row receiving the amount differ.
func renderRCAR(b docbuilder.Builder, req *Request, subtitle, formKey string) error {
	opts := req.Options
	period, rows, totals, err := quarterTotals(req, opts)
	if err != nil {
		return err
	}
	rate := rateFor(req.Type())
	ratePercent := rate.Mul(decimal.NewFromInt(100)).IntPart()

	commune := strings.ToUpper(opts.CommuneName)
	province := strings.ToUpper(opts.ProvinceName)

	b.SetPage(docbuilder.PageSetup{
		MarginTopMM: 10, MarginBottomMM: 10, MarginLeftMM: 12, MarginRightMM: 12,
	})
	usable := 210.0 - 12 - 12

	b.Paragraph(docbuilder.Paragraph{
		SpaceAfterPt: 16,
		Runs: []docbuilder.Run{
			{Text: "ROYAUME DU MAROC\nMINISTERE DE L'INTERIEUR\n", Bold: true, SizePt: 10},
			{Text: fmt.Sprintf("PROVINCE DE %s\n", province), Bold: true, SizePt: 10},
			{Text: fmt.Sprintf("COMMUNE %s", commune), Bold: true, SizePt: 10},
		},
	})
	b.Paragraph(centeredLine("ETAT DE VERSEMENT A LA (R.C.A.R)", true, true, 14, 0))
	b.Paragraph(centeredLine(subtitle, true, true, 14, 6))
	b.Paragraph(centeredLine(fmt.Sprintf(
		"Période du : %s au %s", frenchDate(period.Start), frenchDate(period.End)), false, false, 12, 8))

	colW := []float64{68, 16, 16, 22, 24, 20, 20}
	headers := []string{
		"Nom et prénom",
		"Qualité",
		"Nbre de jours",
		"Prix de journée",
		"Brut à payer",
		fmt.Sprintf("Prélèvement %d%%", ratePercent),
		"Total de versement",
	}
	headerCells := make([]docbuilder.TableCell, len(headers))
	for i, h := range headers {
		headerCells[i] = docbuilder.TableCell{
			VAlign: docbuilder.VAlignCenter,
			Paragraphs: []docbuilder.Paragraph{{
				Align: docbuilder.AlignCenter,
				Runs:  []docbuilder.Run{{Text: h, Bold: true, SizePt: 10}},
			}},
		}
	}
	tableRows := []docbuilder.TableRow{{HeightMM: 10, Exact: true, Cells: headerCells}}

	bodyAligns := []docbuilder.Align{
		docbuilder.AlignLeft, docbuilder.AlignCenter, docbuilder.AlignCenter,
		docbuilder.AlignRight, docbuilder.AlignRight, docbuilder.AlignRight, docbuilder.AlignRight,
	}
	for _, row := range rows {
		price := ""
		if row.DailyRate.IsPositive() {
			price = amount.GroupedComma(row.DailyRate)
		}
		values := []string{
			row.FullName,
			strings.ToUpper(row.Category),
			fmtDays(row.Days),
			price,
			amount.GroupedComma(row.Gross),
			amount.GroupedComma(row.Deduction),
			amount.GroupedComma(row.Deduction),
		}
		cells := make([]docbuilder.TableCell, len(values))
		for i, v := range values {
			cells[i] = docbuilder.TableCell{
				VAlign: docbuilder.VAlignCenter,
				Paragraphs: []docbuilder.Paragraph{{
					Align: bodyAligns[i],
					Runs:  []docbuilder.Run{{Text: v, SizePt: 10}},
				}},
			}
		}
		tableRows = append(tableRows, docbuilder.TableRow{HeightMM: 6.3, Exact: true, Cells: cells})
	}

	totalValues := []string{
		"TOTAUX", "", fmtDays(totals.Days), "",
		amount.GroupedComma(totals.Gross),
		amount.GroupedComma(totals.Deduction),
		amount.GroupedComma(totals.Deduction),
	}
	totalCells := make([]docbuilder.TableCell, len(totalValues))
	for i, v := range totalValues {
		align := docbuilder.AlignRight
		if i <= 2 {
			align = docbuilder.AlignCenter
		}
		totalCells[i] = docbuilder.TableCell{
			VAlign: docbuilder.VAlignCenter,
			Paragraphs: []docbuilder.Paragraph{{
				Align: align,
				Runs:  []docbuilder.Run{{Text: v, Bold: true, SizePt: 10}},
			}},
		}
	}
	tableRows = append(tableRows, docbuilder.TableRow{HeightMM: 7, Exact: true, Cells: totalCells})

	b.Table(docbuilder.TableSpec{
		ColWidthsMM:  colW,
		Borders:      true,
		CellMarginMM: 0.5,
		Rows:         tableRows,
	})

	b.Paragraph(docbuilder.Paragraph{
		SpaceBeforePt: 8,
		SpaceAfterPt:  10,
		Runs: []docbuilder.Run{{
			Text:   fmt.Sprintf("Le présent état est arrêté à la somme de : %s", amount.WordsWithCentsUpper(totals.Deduction)),
			SizePt: 11,
		}},
	})
	b.Paragraph(plainLine(fmt.Sprintf("%s le : ..............................", opts.CityName), docbuilder.AlignRight, 11, 0))

	b.PageBreak()

	// Page 2: remittance form.
	leftRuns := []docbuilder.Run{{Text: "RCAR", Bold: true, SizePt: 24}}
	if arabic := strings.TrimSpace(opts.RCARArabicLine); arabic != "" {
		leftRuns = append(leftRuns, docbuilder.Run{Text: "\n" + arabic, SizePt: 8})
	}
	leftRuns = append(leftRuns, docbuilder.Run{Text: "\nRegime Collectif d'Allocation de Retraite", SizePt: 9})
	b.Table(docbuilder.TableSpec{
		ColWidthsMM: []float64{usable * 0.62, usable * 0.38},
		Rows: []docbuilder.TableRow{{
			Cells: []docbuilder.TableCell{
				{VAlign: docbuilder.VAlignTop, Paragraphs: []docbuilder.Paragraph{{Runs: leftRuns}}},
				{},
			},
		}},
	})
	b.Paragraph(docbuilder.Paragraph{SpaceAfterPt: 4})

	b.Table(docbuilder.TableSpec{
		ColWidthsMM:  []float64{95},
		Borders:      true,
		CellMarginMM: 1.0,
		Rows: []docbuilder.TableRow{{
			Cells: []docbuilder.TableCell{{
				VAlign: docbuilder.VAlignCenter,
				Paragraphs: []docbuilder.Paragraph{{
					Align: docbuilder.AlignCenter,
					Runs:  []docbuilder.Run{{Text: "Justificatif de Versement", Bold: true, SizePt: 14}},
				}},
			}},
		}},
	})
	b.Paragraph(docbuilder.Paragraph{SpaceAfterPt: 4})

	b.Table(docbuilder.TableSpec{
		ColWidthsMM:  []float64{usable*0.34 - 2},
		Borders:      true,
		CellMarginMM: 1.0,
		Rows: []docbuilder.TableRow{{
			Cells: []docbuilder.TableCell{{
				VAlign: docbuilder.VAlignTop,
				Paragraphs: []docbuilder.Paragraph{
					{SpaceAfterPt: 8, Runs: []docbuilder.Run{{Text: "Dénomination", Bold: true, SizePt: 10}}},
					{Align: docbuilder.AlignCenter, SpaceBeforePt: 5, SpaceAfterPt: 2,
						Runs: []docbuilder.Run{{Text: fmt.Sprintf("COMMUNE %s", commune), SizePt: 10}}},
					{Align: docbuilder.AlignCenter,
						Runs: []docbuilder.Run{{Text: fmt.Sprintf("PROVINCE DE %s", province), SizePt: 10}}},
				},
			}},
		}},
	})
	b.Paragraph(docbuilder.Paragraph{SpaceAfterPt: 4})

	adhesion := nonDigits.ReplaceAllString(opts.RCARAdhesionNumber, "")
	b.Paragraph(plainLine("Numéro d'adhésion :", docbuilder.AlignLeft, 10, 1))
	b.Table(digitBoxTable(adhesion, 8))
	b.Paragraph(plainLine("Année :", docbuilder.AlignLeft, 10, 1))
	b.Table(digitBoxTable(fmt.Sprintf("%04d", req.Year), 4))
	b.Paragraph(plainLine("Trimestre :", docbuilder.AlignLeft, 10, 1))
	b.Table(digitBoxTable(strconv.Itoa(period.Quarter()), 1))
	b.Paragraph(docbuilder.Paragraph{
		SpaceBeforePt: 1,
		SpaceAfterPt:  4,
		Runs: []docbuilder.Run{
			{Text: "MOIS  ", SizePt: 9},
			{Text: monthLabels(period.Months), Bold: true, SizePt: 10},
		},
	})

	b.Table(remittanceForm(usable, formKey, totals.Deduction))

	b.Paragraph(docbuilder.Paragraph{SpaceAfterPt: 5})
	b.Table(docbuilder.TableSpec{
		ColWidthsMM:  []float64{usable * 0.5, usable * 0.5},
		Borders:      true,
		CellMarginMM: 1.0,
		Rows: []docbuilder.TableRow{{
			HeightMM: 42,
			Exact:    true,
			Cells: []docbuilder.TableCell{
				{VAlign: docbuilder.VAlignTop, Paragraphs: []docbuilder.Paragraph{{
					Align: docbuilder.AlignCenter,
					Runs:  []docbuilder.Run{{Text: "Cadre réservé au RCAR", Bold: true, SizePt: 10}},
				}}},
				{VAlign: docbuilder.VAlignTop, Paragraphs: []docbuilder.Paragraph{{
					Align: docbuilder.AlignCenter,
					Runs:  []docbuilder.Run{{Text: "Cachet et signature", Bold: true, SizePt: 10}},
				}}},
			},
		}},
	})
	return nil
}

// digitBoxTable renders one character per bordered box, right aligned
// into the box count like a pre-printed form field.
func digitBoxTable(digits string, boxes int) docbuilder.TableSpec {
	if boxes < 1 {
		boxes = 1
	}
	text := nonDigits.ReplaceAllString(digits, "")
	if len(text) > boxes {
		text = text[len(text)-boxes:]
	}
	start := boxes - len(text)

	widths := make([]float64, boxes)
	cells := make([]docbuilder.TableCell, boxes)
	for i := range cells {
		widths[i] = 4.5
		var runs []docbuilder.Run
		if i >= start {
			runs = []docbuilder.Run{{Text: string(text[i-start]), SizePt: 10}}
		}
		cells[i] = docbuilder.TableCell{
			VAlign:     docbuilder.VAlignCenter,
			Paragraphs: []docbuilder.Paragraph{{Align: docbuilder.AlignCenter, Runs: runs}},
		}
	}
	return docbuilder.TableSpec{
		ColWidthsMM: widths,
		Borders:     true,
		Rows:        []docbuilder.TableRow{{HeightMM: 7, Exact: true, Cells: cells}},
	}
}

// remittanceForm builds the Nature du Versement grid. Amount cells are
// eleven digit boxes plus a comma-cents tail; only the row matching key
// and the derived total rows are filled, all on the RG side.
func remittanceForm(usable float64, key string, total decimal.Decimal) docbuilder.TableSpec {
	labelW := usable * 0.34
	sideW := usable * 0.33
	const boxW = 4.5
	decW := sideW - 11*boxW

	widths := make([]float64, 0, 25)
	widths = append(widths, labelW)
	for side := 0; side < 2; side++ {
		for i := 0; i < 11; i++ {
			widths = append(widths, boxW)
		}
		widths = append(widths, decW)
	}

	filled := map[string]bool{key: true, "sous_total": true, "total_abc": true, "total_general": true}
	formRows := []struct {
		label string
		key   string
	}{
		{"Cotisation Salariale", "cotisation_salariale"},
		{"Contribution Patronale", "contribution_patronale"},
		{"Cotisation Validation", "cotisation_validation"},
		{"Sous-Total", "sous_total"},
		{"Contribution Validation", "contribution_validation"},
		{"Majoration de Retard", "majoration_retard"},
		{"Total (A + B + C)", "total_abc"},
		{"Total Général (RG + RC)", "total_general"},
	}

	centeredBold := func(text string, span int, sizePt float64) docbuilder.TableCell {
		return docbuilder.TableCell{
			Span:   span,
			VAlign: docbuilder.VAlignCenter,
			Paragraphs: []docbuilder.Paragraph{{
				Align: docbuilder.AlignCenter,
				Runs:  []docbuilder.Run{{Text: text, Bold: true, SizePt: sizePt}},
			}},
		}
	}
	rows := []docbuilder.TableRow{
		{HeightMM: 7.5, Exact: true, Cells: []docbuilder.TableCell{
			centeredBold("Nature du Versement", 0, 10),
			centeredBold("Montants en DH", 24, 10),
		}},
		{HeightMM: 7.5, Exact: true, Cells: []docbuilder.TableCell{
			{},
			centeredBold("Régime Général (RG)", 12, 9),
			centeredBold("Régime Complémentaire (RC)", 12, 9),
		}},
	}

	for _, fr := range formRows {
		cells := make([]docbuilder.TableCell, 0, 25)
		cells = append(cells, docbuilder.TableCell{
			VAlign: docbuilder.VAlignCenter,
			Paragraphs: []docbuilder.Paragraph{{
				Runs: []docbuilder.Run{{Text: fr.label, SizePt: 10}},
			}},
		})

		var digits, cents string
		if filled[fr.key] {
			whole, c := amount.SplitCents(total)
			digits = strconv.FormatInt(whole, 10)
			cents = fmt.Sprintf(",%02d", c)
		}
		start := 11 - len(digits)
		for i := 0; i < 11; i++ {
			var runs []docbuilder.Run
			if digits != "" && i >= start {
				runs = []docbuilder.Run{{Text: string(digits[i-start]), SizePt: 9}}
			}
			cells = append(cells, docbuilder.TableCell{
				VAlign:     docbuilder.VAlignCenter,
				Paragraphs: []docbuilder.Paragraph{{Align: docbuilder.AlignCenter, Runs: runs}},
			})
		}
		var decRuns []docbuilder.Run
		if cents != "" {
			decRuns = []docbuilder.Run{{Text: cents, SizePt: 9}}
		}
		cells = append(cells, docbuilder.TableCell{
			VAlign:     docbuilder.VAlignCenter,
			Paragraphs: []docbuilder.Paragraph{{Runs: decRuns}},
		})

		// RC side stays blank.
		for i := 0; i < 11; i++ {
			cells = append(cells, docbuilder.TableCell{})
		}
		cells = append(cells, docbuilder.TableCell{})

		rows = append(rows, docbuilder.TableRow{HeightMM: 10.2, Exact: true, Cells: cells})
	}

	return docbuilder.TableSpec{
		ColWidthsMM:  widths,
		Borders:      true,
		CellMarginMM: 0.5,
		Rows:         rows,
	}
}
