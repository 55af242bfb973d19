package document

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"regie/internal/docbuilder"
	"regie/internal/domain/amount"
)

const (
	roleHeaderHeightMM    = 17.0
	roleRowHeightMM       = 13.0
	rolePage1Rows         = 8
	roleContinuationRows  = 6
	roleBlockGapMM        = 10.0
	roleSignatureSpaceMM  = 32.0
	roleBottomPaddingMM   = 12.0
	roleTableTopSpacingMM = 10.0
)

// roleTotals is a section's summary line, either summed from the worker
// rows or taken from the explicit payload totals.
type roleTotals struct {
	Days      decimal.Decimal
	Gross     decimal.Decimal
	Deduction decimal.Decimal
	Net       decimal.Decimal
}

func sumRoleWorkers(workers []RoleWorker) roleTotals {
	var t roleTotals
	for _, w := range workers {
		t.Days = t.Days.Add(w.DaysWorked)
		t.Gross = t.Gross.Add(w.Gross)
		t.Deduction = t.Deduction.Add(w.Deduction)
		t.Net = t.Net.Add(w.Net)
	}
	t.Gross = amount.Round2(t.Gross)
	t.Deduction = amount.Round2(t.Deduction)
	t.Net = amount.Round2(t.Net)
	return t
}

func (s RoleSection) totals() roleTotals {
	t := sumRoleWorkers(s.Workers)
	if s.TotalDays != nil {
		t.Days = *s.TotalDays
	}
	if s.TotalGross != nil {
		t.Gross = amount.Round2(*s.TotalGross)
	}
	if s.TotalDeduct != nil {
		t.Deduction = amount.Round2(*s.TotalDeduct)
	}
	if s.TotalNet != nil {
		t.Net = amount.Round2(*s.TotalNet)
	}
	return t
}

// renderRole lays out the daily-wage timesheet, one page pair per
// section: a header page with the first rows, then a continuation table
// carried over with a REPORT line, the declaration and the signatures.
func renderRole(b docbuilder.Builder, req *Request) error {
	if len(req.Sections) == 0 {
		return validationf("Missing required data: sections")
	}
	opts := req.Options
	regisseur := firstNonEmpty(req.RegisseurName, opts.RegisseurName)
	decimalComma := bool(req.DecimalComma)

	page1Rows := req.SplitIndex
	if page1Rows < 1 {
		page1Rows = rolePage1Rows
	}
	continuationRows := req.ContinuationRows
	if continuationRows < 1 {
		continuationRows = roleContinuationRows
	}

	b.SetPage(docbuilder.PageSetup{
		MarginTopMM: 10, MarginBottomMM: 10, MarginLeftMM: 12, MarginRightMM: 12,
	})
	usable := 210.0 - 12 - 12
	leftBlock := (usable - roleBlockGapMM) * 0.56
	rightBlock := (usable - roleBlockGapMM) * 0.44

	// Column ratios tuned to the scanned paper form.
	colPerc := []float64{6, 27, 9, 8, 8, 10, 10, 10, 12}
	colW := make([]float64, len(colPerc))
	var percTotal float64
	for _, p := range colPerc {
		percTotal += p
	}
	var acc float64
	for i, p := range colPerc[:len(colPerc)-1] {
		colW[i] = usable * p / percTotal
		acc += colW[i]
	}
	colW[len(colW)-1] = usable - acc

	fmtAmount := func(d decimal.Decimal) string {
		return amount.Plain(d, decimalComma)
	}
	fmtWholeDays := func(d decimal.Decimal) string {
		return strconv.FormatInt(d.Round(0).IntPart(), 10)
	}

	for idx, sec := range req.Sections {
		if idx > 0 {
			b.PageBreak()
		}

		startDate := formDate(sec.StartDate)
		endDate := formDate(sec.EndDate)
		documentDate := firstNonEmpty(formDate(sec.DocumentDate), endDate)
		payDate := firstNonEmpty(formDate(sec.PayDate), documentDate)

		totals := sec.totals()
		var page1Workers, page2Workers []RoleWorker
		if len(sec.Workers) > page1Rows {
			page1Workers = sec.Workers[:page1Rows]
			page2Workers = sec.Workers[page1Rows:]
		} else {
			page1Workers = sec.Workers
		}
		page1Partial := sumRoleWorkers(page1Workers)

		renderRoleHeader(b, usable, roleHeaderData{
			Regisseur: regisseur,
			Year:      strconv.Itoa(req.Year),
			Reference: req.ReferenceValues,
			StartDate: startDate,
			EndDate:   endDate,
			TotalNet:  fmtAmount(totals.Net),
		})
		b.Paragraph(docbuilder.Paragraph{SpaceAfterPt: mmToPt(roleTableTopSpacingMM)})

		renderRoleTable(b, colW, roleTableArgs{
			Workers:    page1Workers,
			Totals:     page1Partial,
			StartRowNo: 1,
			SlotCount:  page1Rows,
			FmtAmount:  fmtAmount,
			FmtDays:    fmtWholeDays,
		})
		b.PageBreak()

		renderRoleTable(b, colW, roleTableArgs{
			Workers:    page2Workers,
			Totals:     totals,
			Report:     &page1Partial,
			StartRowNo: page1Rows + 1,
			SlotCount:  continuationRows,
			FmtAmount:  fmtAmount,
			FmtDays:    fmtWholeDays,
		})

		renderRoleDeclaration(b, leftBlock, rightBlock,
			amount.WordsWithCentsUpper(totals.Net)+".", documentDate, payDate)
	}
	return nil
}

func mmToPt(mm float64) float64 {
	return mm * 72.0 / 25.4
}

type roleHeaderData struct {
	Regisseur string
	Year      string
	Reference map[string]string
	StartDate string
	EndDate   string
	TotalNet  string
}

func refValue(ref map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(ref[k]); v != "" {
			return v
		}
	}
	return ""
}

func renderRoleHeader(b docbuilder.Builder, usable float64, data roleHeaderData) {
	third := usable / 3.0
	b.Table(docbuilder.TableSpec{
		ColWidthsMM: []float64{third, third, third},
		Rows: []docbuilder.TableRow{{
			Cells: []docbuilder.TableCell{
				{VAlign: docbuilder.VAlignTop, Paragraphs: []docbuilder.Paragraph{{
					Runs: []docbuilder.Run{{
						Text: "ROYAUME DU MAROC\nMINISTERE DE L'INTERIEUR\nREGIE DE DEPENSES AUPRES DE\n" +
							"LA COMMUNE OULED NACEUR\n…………………………..",
						Bold: true, SizePt: 9,
					}},
				}}},
				{VAlign: docbuilder.VAlignTop, Paragraphs: []docbuilder.Paragraph{{
					Align: docbuilder.AlignCenter,
					Runs: []docbuilder.Run{{
						Text: "DEPENSES EN REGIE\nSALAIRE DU PERSONNEL OCCASIONNEL",
						Bold: true, Underline: true, SizePt: 11,
					}},
				}}},
				{VAlign: docbuilder.VAlignTop, Paragraphs: []docbuilder.Paragraph{{
					Align: docbuilder.AlignRight,
					Runs:  []docbuilder.Run{{Text: "ANNEXE : 9……….", Bold: true, SizePt: 9}},
				}}},
			},
		}},
	})

	b.Paragraph(centeredLine("ROLE DES JOURNEES D'OUVRIERS EMPLOYES", true, true, 11, 4))

	dateCell := func(text string) docbuilder.TableCell {
		// The date cells carry their own frame on an otherwise borderless
		// row, so they are rendered as single-cell bordered paragraphs.
		return docbuilder.TableCell{
			VAlign: docbuilder.VAlignCenter,
			Paragraphs: []docbuilder.Paragraph{{
				Align: docbuilder.AlignCenter,
				Runs:  []docbuilder.Run{{Text: text, SizePt: 9}},
			}},
		}
	}
	b.Table(docbuilder.TableSpec{
		ColWidthsMM: []float64{usable - (8 + 26 + 8 + 26), 8, 26, 8, 26},
		Rows: []docbuilder.TableRow{{
			Cells: []docbuilder.TableCell{
				{VAlign: docbuilder.VAlignCenter, Paragraphs: []docbuilder.Paragraph{{
					Runs: []docbuilder.Run{{Text: fmt.Sprintf("NOM DU REGISSEUR : %s", data.Regisseur), Bold: true, SizePt: 9}},
				}}},
				{VAlign: docbuilder.VAlignCenter, Paragraphs: []docbuilder.Paragraph{{
					Align: docbuilder.AlignCenter,
					Runs:  []docbuilder.Run{{Text: "DU :", Bold: true, SizePt: 9}},
				}}},
				dateCell(data.StartDate),
				{VAlign: docbuilder.VAlignCenter, Paragraphs: []docbuilder.Paragraph{{
					Align: docbuilder.AlignCenter,
					Runs:  []docbuilder.Run{{Text: "AU :", Bold: true, SizePt: 9}},
				}}},
				dateCell(data.EndDate),
			},
		}},
	})

	b.Paragraph(docbuilder.Paragraph{
		SpaceBeforePt: 1,
		SpaceAfterPt:  1,
		Runs:          []docbuilder.Run{{Text: "(2)TRAVAUX DIVERS A LA COMMUNE OULED NACEUR", Bold: true, SizePt: 9}},
	})

	refParts := []struct{ label, value string }{
		{"ANNEE :", data.Year},
		{"CHAP :", refValue(data.Reference, "chapitre", "chap")},
		{"Art :", refValue(data.Reference, "article", "art")},
		{"Prog :", refValue(data.Reference, "programme", "prog")},
		{"Proj :", refValue(data.Reference, "projet", "proj")},
		{"Ligne :", refValue(data.Reference, "ligne")},
	}
	refRuns := make([]docbuilder.Run, 0, len(refParts)*2)
	for _, part := range refParts {
		refRuns = append(refRuns,
			docbuilder.Run{Text: part.label + " ", Bold: true, SizePt: 9},
			docbuilder.Run{Text: part.value + "    ", SizePt: 9},
		)
	}
	b.Paragraph(docbuilder.Paragraph{Runs: refRuns})

	b.Paragraph(docbuilder.Paragraph{
		SpaceAfterPt: 2,
		Runs: []docbuilder.Run{
			{Text: "SOMME A PAYER : ", Bold: true, SizePt: 9},
			{Text: data.TotalNet, SizePt: 9},
		},
	})
}

type roleTableArgs struct {
	Workers []RoleWorker
	Totals  roleTotals
	// Report, when set, prepends a carried-over summary row.
	Report     *roleTotals
	StartRowNo int
	SlotCount  int
	FmtAmount  func(decimal.Decimal) string
	FmtDays    func(decimal.Decimal) string
}

func renderRoleTable(b docbuilder.Builder, colW []float64, args roleTableArgs) {
	headerLabels := []string{
		"N° DESP.\nD'ATTACH.",
		"PRENOMS ET NOMS",
		"EMPLOIS",
		"NOMBRE DE JOURNEES",
		"PRIX DE LA JOURNEE",
		"BRUT A PAYER",
		"PRELEVEMENT I.G.R %6",
		"NET A PAYER",
		"N° DE LA C.I.N\nET SIGNATURE",
	}
	smallHeader := map[int]bool{0: true, 3: true, 4: true, 6: true, 8: true}
	rotated := map[int]bool{0: true, 2: true, 3: true, 4: true, 5: true, 6: true}

	headerCells := make([]docbuilder.TableCell, len(headerLabels))
	for i, label := range headerLabels {
		size := 9.0
		if smallHeader[i] {
			size = 8.0
		}
		headerCells[i] = docbuilder.TableCell{
			VAlign:   docbuilder.VAlignCenter,
			Vertical: rotated[i],
			Paragraphs: []docbuilder.Paragraph{{
				Align: docbuilder.AlignCenter,
				Runs:  []docbuilder.Run{{Text: label, Bold: true, SizePt: size}},
			}},
		}
	}
	rows := []docbuilder.TableRow{{HeightMM: roleHeaderHeightMM, Exact: true, Cells: headerCells}}

	summaryRow := func(label string, t roleTotals) docbuilder.TableRow {
		boldCenter := func(text string) docbuilder.TableCell {
			return docbuilder.TableCell{
				VAlign: docbuilder.VAlignCenter,
				Paragraphs: []docbuilder.Paragraph{{
					Align: docbuilder.AlignCenter,
					Runs:  []docbuilder.Run{{Text: text, Bold: true, SizePt: 9}},
				}},
			}
		}
		labelCell := boldCenter(label)
		labelCell.Span = 3
		return docbuilder.TableRow{
			HeightMM: roleRowHeightMM,
			Exact:    true,
			Cells: []docbuilder.TableCell{
				labelCell,
				boldCenter(args.FmtDays(t.Days)),
				boldCenter(""),
				boldCenter(args.FmtAmount(t.Gross)),
				boldCenter(args.FmtAmount(t.Deduction)),
				boldCenter(args.FmtAmount(t.Net)),
				boldCenter(""),
			},
		}
	}

	if args.Report != nil {
		rows = append(rows, summaryRow("REPORT :", *args.Report))
	}

	slots := args.SlotCount
	if len(args.Workers) > slots {
		slots = len(args.Workers)
	}
	for i := 0; i < slots; i++ {
		rowNo := strconv.Itoa(args.StartRowNo + i)
		if i < len(args.Workers) {
			rows = append(rows, roleWorkerRow(args.Workers[i], rowNo, args.FmtAmount, args.FmtDays))
		} else {
			rows = append(rows, roleBlankRow(rowNo))
		}
	}

	rows = append(rows, summaryRow("TOTAL :", args.Totals))

	b.Table(docbuilder.TableSpec{
		ColWidthsMM:  colW,
		Borders:      true,
		CellMarginMM: 2.8,
		Rows:         rows,
	})
}

func roleWorkerRow(w RoleWorker, rowNo string, fmtAmount, fmtDays func(decimal.Decimal) string) docbuilder.TableRow {
	category := strings.TrimSpace(w.Category)
	switch {
	case category == "OS":
		category = "O.S"
	case category != "":
		category = "O.N.S"
	}

	cell := func(text string, align docbuilder.Align) docbuilder.TableCell {
		return docbuilder.TableCell{
			VAlign: docbuilder.VAlignCenter,
			Paragraphs: []docbuilder.Paragraph{{
				Align: align,
				Runs:  []docbuilder.Run{{Text: text, SizePt: 9}},
			}},
		}
	}

	cinLine := ""
	if cin := strings.TrimSpace(w.CIN); cin != "" {
		cinLine = fmt.Sprintf("CIN N°: %s", cin)
	}
	validLine := "AU :"
	if valid := formDate(w.CINValidUntil); valid != "" {
		validLine = fmt.Sprintf("AU : %s", valid)
	}
	cinCell := docbuilder.TableCell{
		VAlign: docbuilder.VAlignCenter,
		Paragraphs: []docbuilder.Paragraph{
			{Runs: []docbuilder.Run{{Text: cinLine, SizePt: 8}}},
			{Runs: []docbuilder.Run{{Text: validLine, SizePt: 8}}},
		},
	}

	return docbuilder.TableRow{
		HeightMM: roleRowHeightMM,
		Exact:    true,
		Cells: []docbuilder.TableCell{
			cell(rowNo, docbuilder.AlignCenter),
			cell(w.FullName, docbuilder.AlignLeft),
			cell(category, docbuilder.AlignCenter),
			cell(fmtDays(w.DaysWorked), docbuilder.AlignCenter),
			cell(fmtAmount(w.DailyRate), docbuilder.AlignCenter),
			cell(fmtAmount(w.Gross), docbuilder.AlignCenter),
			cell(fmtAmount(w.Deduction), docbuilder.AlignCenter),
			cell(fmtAmount(w.Net), docbuilder.AlignCenter),
			cinCell,
		},
	}
}

func roleBlankRow(rowNo string) docbuilder.TableRow {
	cells := make([]docbuilder.TableCell, 9)
	cells[0] = docbuilder.TableCell{
		VAlign: docbuilder.VAlignCenter,
		Paragraphs: []docbuilder.Paragraph{{
			Align: docbuilder.AlignCenter,
			Runs:  []docbuilder.Run{{Text: rowNo, SizePt: 9}},
		}},
	}
	for i := 1; i < len(cells); i++ {
		cells[i] = docbuilder.TableCell{VAlign: docbuilder.VAlignCenter}
	}
	return docbuilder.TableRow{HeightMM: roleRowHeightMM, Exact: true, Cells: cells}
}

func renderRoleDeclaration(b docbuilder.Builder, leftBlock, rightBlock float64, totalsInWords, documentDate, payDate string) {
	b.Paragraph(docbuilder.Paragraph{SpaceAfterPt: mmToPt(6)})

	b.Table(docbuilder.TableSpec{
		ColWidthsMM: []float64{leftBlock, rightBlock},
		Rows: []docbuilder.TableRow{{
			Cells: []docbuilder.TableCell{
				{VAlign: docbuilder.VAlignTop, Paragraphs: []docbuilder.Paragraph{
					{Runs: []docbuilder.Run{{Text: "NOUS SOUSSIGNONS :", Bold: true, SizePt: 9}}},
					{IndentMM: 6, Runs: []docbuilder.Run{{Text: "Mr", Bold: true, SizePt: 9}}},
					{IndentMM: 6, Runs: []docbuilder.Run{{Text: " ", SizePt: 9}}},
					{IndentMM: 6, SpaceBeforePt: 8, Runs: []docbuilder.Run{{Text: "Mr", Bold: true, SizePt: 9}}},
					{SpaceBeforePt: 3, Runs: []docbuilder.Run{{Text: "CERTIFIONS QUE LES SIEURS :", Bold: true, SizePt: 9}}},
					{SpaceBeforePt: 1, Runs: []docbuilder.Run{{
						Text:   "Portés au présent Role ont été payés en notre opposition de leurs signatures",
						SizePt: 9,
					}}},
				}},
				{VAlign: docbuilder.VAlignTop, Paragraphs: []docbuilder.Paragraph{
					{Runs: []docbuilder.Run{{Text: "LE PRESENT ROLE S'ELEVANT A LA SOMME DE :", SizePt: 9}}},
					{SpaceBeforePt: 1, Runs: []docbuilder.Run{{Text: totalsInWords, Bold: true, SizePt: 9}}},
				}},
			},
		}},
	})

	b.Paragraph(docbuilder.Paragraph{
		Align:         docbuilder.AlignCenter,
		SpaceBeforePt: 2,
		Runs:          []docbuilder.Run{{Text: "DRESSE ET CERTIFIE CONFORME AUX ATTACHEMENTS", Bold: true, SizePt: 9}},
	})
	b.Paragraph(docbuilder.Paragraph{
		Align: docbuilder.AlignCenter,
		Runs:  []docbuilder.Run{{Text: fmt.Sprintf("A OULED NACEUR LE : %s", documentDate), SizePt: 9}},
	})

	b.Paragraph(docbuilder.Paragraph{SpaceAfterPt: mmToPt(roleBottomPaddingMM)})

	b.Table(docbuilder.TableSpec{
		ColWidthsMM: []float64{leftBlock, rightBlock},
		Rows: []docbuilder.TableRow{{
			Cells: []docbuilder.TableCell{
				{VAlign: docbuilder.VAlignTop, Paragraphs: []docbuilder.Paragraph{
					{Runs: []docbuilder.Run{{Text: fmt.Sprintf("PAYER PAR Moi Le : %s", payDate), Bold: true, SizePt: 9}}},
					{SpaceBeforePt: 4, Runs: []docbuilder.Run{{Text: "LE REGISSEUR DE DEPENSES", Bold: true, Underline: true, SizePt: 10}}},
				}},
				{VAlign: docbuilder.VAlignTop, Paragraphs: []docbuilder.Paragraph{{
					Align: docbuilder.AlignCenter,
					Runs:  []docbuilder.Run{{Text: "LE PRESIDENT DU CONSEIL", Bold: true, Underline: true, SizePt: 10}},
				}}},
			},
		}},
	})

	b.Paragraph(docbuilder.Paragraph{SpaceAfterPt: mmToPt(roleSignatureSpaceMM)})
}
