package document

import (
	"fmt"

	"github.com/shopspring/decimal"

	"regie/internal/docbuilder"
	"regie/internal/domain/amount"
	"regie/internal/domain/payroll"
)

// renderBordereau lays out the two-page remittance slip: the pieces table
// with its A REPORTER split, then the continuation page with the running
// totals and the rejected-pieces frame.
func renderBordereau(b docbuilder.Builder, req *Request) error {
	opts := req.Options
	period, err := payroll.MonthPeriod(req.Year, req.Month)
	if err != nil {
		return validationf("Missing required fields for %s: year, month", req.DocumentType)
	}
	totals, err := dayRangeTotals(req, opts, 1, period.End.Day())
	if err != nil {
		return err
	}
	rangeNet := totals.Net
	if !rangeNet.IsPositive() {
		return ErrNoPayrollData
	}

	bordAmount := amount.GroupedComma(rangeNet)
	bordWords := amount.WordsWithCents(rangeNet)

	admitted := rangeNet
	if opts.AdmittedAmount != nil {
		admitted = *opts.AdmittedAmount
	}
	admitted = amount.Round2(admitted)
	if admitted.IsNegative() {
		admitted = decimal.Zero
	}
	totalGeneral := opts.ReportPreviousBordereau.Add(rangeNet)

	b.SetPage(docbuilder.PageSetup{
		MarginTopMM: 15, MarginBottomMM: 15, MarginLeftMM: 15, MarginRightMM: 10,
	})
	usable := 210.0 - 15 - 10

	// Header: administration block left, form references right.
	b.Table(docbuilder.TableSpec{
		ColWidthsMM: []float64{usable * 0.70, usable * 0.30},
		Rows: []docbuilder.TableRow{{
			Cells: []docbuilder.TableCell{
				{VAlign: docbuilder.VAlignTop, Paragraphs: []docbuilder.Paragraph{{
					LineSpacing: 1.0,
					Runs: []docbuilder.Run{
						{Text: "ROYAUME DU MAROC\nMINISTERE DE L'INTERIEUR\n", Bold: true, SizePt: 9},
						{Text: fmt.Sprintf("PROVINCE DE %s\n", opts.ProvinceName), Bold: true, SizePt: 9},
						{Text: fmt.Sprintf("COMMUNE %s", opts.CommuneName), Bold: true, Underline: true, SizePt: 9},
					},
				}}},
				{VAlign: docbuilder.VAlignTop, Paragraphs: []docbuilder.Paragraph{{
					Align: docbuilder.AlignRight,
					Runs: []docbuilder.Run{
						{Text: "D.216\nANNEXE 19\n", Bold: true, SizePt: 9},
						{Text: "Titre............................", SizePt: 9},
					},
				}}},
			},
		}},
	})

	b.Paragraph(centeredLine("DÉPENSE EN RÉGIE", true, false, 11, 2))
	b.Paragraph(centeredLine("Salaire du Personnel Occasionnel", false, true, 11, 1))
	b.Paragraph(centeredLine(fmt.Sprintf(
		"Titre Chap: %s Art %s Prog: %s, Pro: %s, ligne: %s.",
		opts.Chapter, opts.Article, opts.Program, opts.Project, opts.Line), false, false, 9, 6))

	b.Paragraph(docbuilder.Paragraph{
		SpaceAfterPt: 8,
		LineSpacing:  1.25,
		Runs: []docbuilder.Run{{
			Text: fmt.Sprintf("Mme: %s\nRégisseur de dépenses\nRégie de dépenses auprès\nCOMMUNE %s",
				opts.RegisseurName, opts.CommuneName),
			SizePt: 9,
		}},
	})

	b.Paragraph(centeredLine(fmt.Sprintf("BORDEREAU N: %d/%d", req.Month, req.Year), true, false, 9, 1))
	b.Paragraph(centeredLine(fmt.Sprintf("du %s AU %s", frenchDate(period.Start), frenchDate(period.End)), true, false, 9, 4))

	b.Paragraph(docbuilder.Paragraph{
		Align:        docbuilder.AlignBoth,
		SpaceAfterPt: 2,
		LineSpacing:  1.15,
		Runs: []docbuilder.Run{{
			Text: "des quittances et des pièces adressées à M(1): Le percepteur, par le soussigné,\n" +
				"pour justifier l’emploi des fonds qui lui ont été remis par le percepteur",
			SizePt: 10,
		}},
	})
	b.Paragraph(docbuilder.Paragraph{
		Align:        docbuilder.AlignBoth,
		SpaceAfterPt: 4,
		LineSpacing:  1.15,
		Runs:         []docbuilder.Run{{Text: fmt.Sprintf("d’un montant de: %s (%s).", bordAmount, bordWords), SizePt: 10}},
	})

	colW := []float64{
		usable * 0.08, usable * 0.25, usable * 0.18,
		usable * 0.15, usable * 0.17, usable * 0.17,
	}
	headers := []string{
		"Numéro des\nPièces",
		"Désignation des\nPièces",
		"Nature des\nDépenses",
		"Montant des\nparties prenantes",
		"Nom des\nparties prenantes",
		"Observations",
	}
	headerRow := func(heightMM, sizePt float64) docbuilder.TableRow {
		cells := make([]docbuilder.TableCell, len(headers))
		for i, h := range headers {
			cells[i] = docbuilder.TableCell{
				VAlign: docbuilder.VAlignCenter,
				Paragraphs: []docbuilder.Paragraph{{
					Align: docbuilder.AlignCenter,
					Runs:  []docbuilder.Run{{Text: h, Bold: true, SizePt: sizePt}},
				}},
			}
		}
		return docbuilder.TableRow{HeightMM: heightMM, Exact: true, Cells: cells}
	}

	topCell := func(text string, align docbuilder.Align, bold bool) docbuilder.TableCell {
		return docbuilder.TableCell{
			VAlign: docbuilder.VAlignTop,
			Paragraphs: []docbuilder.Paragraph{{
				Align:       align,
				LineSpacing: 1.0,
				Runs:        []docbuilder.Run{{Text: text, Bold: bold, SizePt: 8.5}},
			}},
		}
	}
	b.Table(docbuilder.TableSpec{
		ColWidthsMM:  colW,
		Borders:      true,
		CellMarginMM: 1.0,
		Rows: []docbuilder.TableRow{
			headerRow(12, 8),
			{HeightMM: 104, Exact: true, Cells: []docbuilder.TableCell{
				{VAlign: docbuilder.VAlignTop},
				topCell("Rôle de journée\nOrdre de paiement\nCertificat de paiement\nFeuille d’attachement", docbuilder.AlignLeft, false),
				topCell("Salaire du Personnel\nOccasionnel", docbuilder.AlignLeft, false),
				topCell(bordAmount, docbuilder.AlignRight, true),
				topCell("parties prenantes", docbuilder.AlignLeft, false),
				{VAlign: docbuilder.VAlignTop},
			}},
			{HeightMM: 7, Exact: true, Cells: []docbuilder.TableCell{
				{Span: 3, VAlign: docbuilder.VAlignCenter, Paragraphs: []docbuilder.Paragraph{{
					Align: docbuilder.AlignLeft,
					Runs:  []docbuilder.Run{{Text: "A REPORTER :", Bold: true, SizePt: 8.5}},
				}}},
				{VAlign: docbuilder.VAlignCenter, Paragraphs: []docbuilder.Paragraph{{
					Align: docbuilder.AlignRight,
					Runs:  []docbuilder.Run{{Text: bordAmount, Bold: true, SizePt: 8.5}},
				}}},
				{},
				{},
			}},
		},
	})

	b.PageBreak()

	// Continuation page: same header row, then the running totals.
	summaryRow := func(label, value string) docbuilder.TableRow {
		return docbuilder.TableRow{HeightMM: 9, Exact: true, Cells: []docbuilder.TableCell{
			{},
			{},
			{VAlign: docbuilder.VAlignCenter, Paragraphs: []docbuilder.Paragraph{{
				Align: docbuilder.AlignLeft,
				Runs:  []docbuilder.Run{{Text: label, Bold: true, SizePt: 10}},
			}}},
			{VAlign: docbuilder.VAlignCenter, Paragraphs: []docbuilder.Paragraph{{
				Align: docbuilder.AlignRight,
				Runs:  []docbuilder.Run{{Text: value, Bold: true, SizePt: 10}},
			}}},
			{},
			{},
		}}
	}
	b.Table(docbuilder.TableSpec{
		ColWidthsMM:  colW,
		Borders:      true,
		CellMarginMM: 1.5,
		Rows: []docbuilder.TableRow{
			headerRow(16, 9),
			summaryRow("Report :", amount.GroupedComma(opts.ReportPreviousBordereau)),
			summaryRow("Total :", bordAmount),
			summaryRow("Total Général :", amount.GroupedComma(totalGeneral)),
		},
	})

	b.Paragraph(docbuilder.Paragraph{SpaceAfterPt: 12})
	b.Paragraph(docbuilder.Paragraph{
		Align:        docbuilder.AlignBoth,
		SpaceAfterPt: 6,
		LineSpacing:  1.15,
		Runs: []docbuilder.Run{{
			Text: "Arrêté le présent bordereau, comprenant quittances et pièces à la somme total\n" +
				fmt.Sprintf("de : %s.", bordWords),
			SizePt: 10,
		}},
	})
	b.Paragraph(plainLine(fmt.Sprintf("A : %s, Le : %s", opts.CityName, opts.documentDate()), docbuilder.AlignCenter, 10, 8))

	b.Table(signatureTable(usable,
		plainLine("Le Président", docbuilder.AlignLeft, 10, 0),
		plainLine("Le Régisseur", docbuilder.AlignRight, 10, 0),
	))
	b.Paragraph(docbuilder.Paragraph{SpaceAfterPt: 48})

	// Bottom frame: rejected pieces on the left, expense situation on the
	// right, sharing one bordered table so the frames stay aligned.
	bottomW := []float64{
		usable * 0.56 * 0.12,
		usable * 0.56 * 0.18,
		usable * 0.56 * 0.70,
		usable * 0.44,
	}
	situation := []string{
		fmt.Sprintf("Montant du présent bordereau: %s", bordAmount),
		fmt.Sprintf("Montant admis du présent bordereau: %s", amount.GroupedComma(admitted)),
		fmt.Sprintf("Report du bordereau précédent: %s", amount.GroupedComma(opts.ReportPreviousBordereau)),
		fmt.Sprintf("Montant rejeté du présent bordereau: %s", amount.GroupedComma(opts.RejectedAmount)),
		fmt.Sprintf("Total Général: %s", amount.GroupedComma(totalGeneral)),
	}
	situationParas := make([]docbuilder.Paragraph, len(situation))
	for i, line := range situation {
		situationParas[i] = docbuilder.Paragraph{
			SpaceAfterPt: 2,
			Runs:         []docbuilder.Run{{Text: line, SizePt: 9}},
		}
	}
	leftHead := func(text string) docbuilder.TableCell {
		return docbuilder.TableCell{
			VAlign: docbuilder.VAlignTop,
			Paragraphs: []docbuilder.Paragraph{{
				Align: docbuilder.AlignLeft,
				Runs:  []docbuilder.Run{{Text: text, Bold: true, SizePt: 9}},
			}},
		}
	}
	b.Table(docbuilder.TableSpec{
		ColWidthsMM:  bottomW,
		Borders:      true,
		CellMarginMM: 1.0,
		Rows: []docbuilder.TableRow{
			{HeightMM: 9, Exact: true, Cells: []docbuilder.TableCell{
				{Span: 3, VAlign: docbuilder.VAlignCenter, Paragraphs: []docbuilder.Paragraph{{
					Align: docbuilder.AlignCenter,
					Runs:  []docbuilder.Run{{Text: "Quittances et pièces rejetées", Bold: true, SizePt: 10}},
				}}},
				{VAlign: docbuilder.VAlignCenter, Paragraphs: []docbuilder.Paragraph{{
					Align: docbuilder.AlignCenter,
					Runs:  []docbuilder.Run{{Text: "Situation des dépenses", Bold: true, SizePt: 10}},
				}}},
			}},
			{HeightMM: 9, Exact: true, Cells: []docbuilder.TableCell{
				leftHead("N° d'ordre"),
				leftHead("Montant"),
				leftHead("Indications des pièces produites"),
				{MergeDown: true, VAlign: docbuilder.VAlignTop, Paragraphs: situationParas},
			}},
			{HeightMM: 44, Exact: true, Cells: []docbuilder.TableCell{
				{VAlign: docbuilder.VAlignTop},
				{VAlign: docbuilder.VAlignTop},
				{VAlign: docbuilder.VAlignTop},
				{MergeWith: true},
			}},
		},
	})

	b.Paragraph(docbuilder.Paragraph{
		Align:        docbuilder.AlignBoth,
		SpaceAfterPt: 2,
		Runs: []docbuilder.Run{{
			Text: "Renvoi est fait régisseur désigné ci-dessus du présent bordereau été définitivement à la somme\n" +
				fmt.Sprintf("de : %s", amount.WordsWithCents(totalGeneral)),
			SizePt: 10,
		}},
	})
	b.Paragraph(docbuilder.Paragraph{
		Align:        docbuilder.AlignBoth,
		SpaceAfterPt: 4,
		Runs: []docbuilder.Run{{
			Text:   "et des quittances et pièces non admises dont le montant est indiqué au tableau ci-dessus",
			SizePt: 10,
		}},
	})
	b.Paragraph(plainLine(fmt.Sprintf("Souk sebt, Le : …../…../%d", req.Year), docbuilder.AlignRight, 10, 1))
	b.Paragraph(plainLine("le ....................(comptable-assignataire)", docbuilder.AlignRight, 10, 0))
	return nil
}
