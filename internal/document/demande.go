package document

import (
	"fmt"

	"regie/internal/docbuilder"
	"regie/internal/domain/amount"
)

func renderDemandeAutorisation(b docbuilder.Builder, req *Request) error {
	opts := req.Options
	_, totals, err := monthTotals(req, opts)
	if err != nil {
		return err
	}
	digits := amount.Grouped(totals.Net)
	words := amount.WordsWithCents(totals.Net)

	b.SetPage(docbuilder.PageSetup{MarginMM: 20})
	usable := 210.0 - 40

	b.Paragraph(kingdomHeader(opts, 10, 18))
	b.Paragraph(centeredLine(
		fmt.Sprintf("DEMANDE D'AUTORISATION DE PAIEMENT N° %d/%d", req.Month, req.Year),
		true, true, 11, 14))

	b.Paragraph(docbuilder.Paragraph{
		SpaceAfterPt: 10,
		Runs:         []docbuilder.Run{{Text: "Vu L’arrêté conjointe de création de régie de dépenses auprès de la commune Ouled Naceur."}},
	})
	b.Paragraph(docbuilder.Paragraph{
		SpaceAfterPt: 10,
		Runs: []docbuilder.Run{
			{Text: "Mme : "},
			{Text: opts.RegisseurName, Bold: true},
			{Text: " demande l’autorisation de payer par voie de régie de dépenses imputées sur les rubriques budgétaires citée ci après désignée :"},
		},
	})

	for _, ref := range []struct{ label, value string }{
		{"Chapitre", opts.Chapter},
		{"Article", opts.Article},
		{"Programme", opts.Program},
		{"Projet", opts.Project},
		{"Ligne", opts.Line},
	} {
		b.Paragraph(docbuilder.Paragraph{
			IndentMM: 6,
			Runs:     []docbuilder.Run{{Text: fmt.Sprintf("%-10s :  %s", ref.label, ref.value)}},
		})
	}
	b.Paragraph(docbuilder.Paragraph{SpaceAfterPt: 10})

	headers := []string{"CHAP", "ART", "PROG", "PROJ", "LIGNE", "INTITULE", "MONTANT"}
	values := []string{opts.Chapter, opts.Article, opts.Program, opts.Project, opts.Line,
		"Salaire du personnel\noccasionnel", digits}
	headerCells := make([]docbuilder.TableCell, len(headers))
	for i, h := range headers {
		headerCells[i] = docbuilder.TableCell{
			VAlign: docbuilder.VAlignCenter,
			Paragraphs: []docbuilder.Paragraph{{
				Align: docbuilder.AlignLeft,
				Runs:  []docbuilder.Run{{Text: h, Bold: true, SizePt: 9}},
			}},
		}
	}
	valueCells := make([]docbuilder.TableCell, len(values))
	for i, v := range values {
		valueCells[i] = docbuilder.TableCell{
			VAlign: docbuilder.VAlignTop,
			Paragraphs: []docbuilder.Paragraph{{
				Align: docbuilder.AlignLeft,
				Runs:  []docbuilder.Run{{Text: v, SizePt: 10}},
			}},
		}
	}
	b.Table(docbuilder.TableSpec{
		ColWidthsMM: []float64{
			usable * 0.08, usable * 0.10, usable * 0.10, usable * 0.09,
			usable * 0.10, usable * 0.33, usable * 0.20,
		},
		Borders: true,
		Rows: []docbuilder.TableRow{
			{Cells: headerCells},
			{HeightMM: 35, Cells: valueCells},
		},
	})
	b.Paragraph(docbuilder.Paragraph{SpaceAfterPt: 10})

	b.Paragraph(docbuilder.Paragraph{
		SpaceAfterPt: 12,
		Runs: []docbuilder.Run{{Text: fmt.Sprintf(
			"Arrêté la présente demande à la somme de :  %s (%s).", digits, words)}},
	})
	b.Paragraph(docbuilder.Paragraph{
		Align:        docbuilder.AlignCenter,
		SpaceAfterPt: 24,
		Runs:         []docbuilder.Run{{Text: fmt.Sprintf("A %s Le : %s", opts.CityName, dots(35))}},
	})

	b.Table(signatureTable(usable,
		docbuilder.Text("Le Président", docbuilder.AlignCenter),
		docbuilder.Text("Le régisseur", docbuilder.AlignCenter),
	))
	return nil
}
