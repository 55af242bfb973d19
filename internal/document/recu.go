package document

import (
	"fmt"

	"regie/internal/docbuilder"
	"regie/internal/domain/amount"
)

// renderRecu lays out the monthly receipt with the fund request form on
// the same page.
func renderRecu(b docbuilder.Builder, req *Request) error {
	opts := req.Options
	_, totals, err := monthTotals(req, opts)
	if err != nil {
		return err
	}
	digits := amount.Grouped(totals.Net)
	words := amount.WordsWithCents(totals.Net)

	b.SetPage(docbuilder.PageSetup{
		MarginTopMM: 15, MarginBottomMM: 15, MarginLeftMM: 20, MarginRightMM: 20,
	})
	usable := 210.0 - 20 - 20

	b.Paragraph(kingdomHeader(opts, 10, 60))

	b.Paragraph(docbuilder.Paragraph{
		Align:        docbuilder.AlignCenter,
		SpaceAfterPt: 18,
		Runs: []docbuilder.Run{
			{Text: "Recu", Bold: true, Underline: true, SizePt: 12},
			{Text: "   N°   ", Bold: true, SizePt: 12},
			{Text: fmt.Sprintf("%d/%d", req.Month, req.Year), Bold: true, SizePt: 12},
		},
	})

	b.Paragraph(docbuilder.Paragraph{
		SpaceAfterPt: 12,
		Runs: []docbuilder.Run{
			{Text: "Je soussignée Mme : "},
			{Text: opts.RegisseurName, Bold: true},
			{Text: "    CIN  :  "},
			{Text: opts.RegisseurCIN, Bold: true},
			{Text: fmt.Sprintf("  valable au  %s Régisseur de dépenses titulaire", opts.RegisseurCINValidUntil)},
		},
	})
	b.Paragraph(docbuilder.Paragraph{
		SpaceAfterPt: 12,
		Runs: []docbuilder.Run{
			{Text: "Reconnaît avoir reçu la somme de :  "},
			{Text: digits, Bold: true},
			{Text: fmt.Sprintf(" (%s).", words)},
		},
	})
	b.Paragraph(docbuilder.Paragraph{
		Align:         docbuilder.AlignCenter,
		SpaceBeforePt: 6,
		SpaceAfterPt:  18,
		Runs:          []docbuilder.Run{{Text: fmt.Sprintf("%s Le : %s", opts.CityName, dots(45))}},
	})

	b.Table(signatureTable(usable,
		docbuilder.Text("Percepteur de souk sebt", docbuilder.AlignLeft),
		docbuilder.Text("Le Régisseur", docbuilder.AlignCenter),
	))

	b.Paragraph(docbuilder.Paragraph{SpaceAfterPt: 75})

	b.Paragraph(centeredLine("DEMANDE DE FONDS", true, true, 14, 18))
	b.Paragraph(docbuilder.Paragraph{
		SpaceAfterPt: 10,
		Runs: []docbuilder.Run{{Text: fmt.Sprintf(
			"Pour la date du : %s Le Régisseur  demande d'être approvisionné de la somme de :", dots(45))}},
	})
	b.Paragraph(docbuilder.Paragraph{
		SpaceAfterPt: 10,
		Runs: []docbuilder.Run{{Text: fmt.Sprintf(
			"%s (%s). Qui sera retiré à la caisse du comptable de rattachement.", digits, words)}},
	})
	b.Paragraph(docbuilder.Paragraph{
		SpaceAfterPt: 24,
		Runs: []docbuilder.Run{{Text: fmt.Sprintf(
			"Qui sera versé au compte courant postal n° %s dont l'intitulé est : salaire du personnel occasionnel.", dots(38))}},
	})
	b.Paragraph(docbuilder.Paragraph{SpaceAfterPt: 30})
	b.Paragraph(docbuilder.Paragraph{
		Align:        docbuilder.AlignCenter,
		SpaceAfterPt: 18,
		Runs:         []docbuilder.Run{{Text: fmt.Sprintf("A %s le : %s", opts.CityName, dots(25))}},
	})

	b.Table(signatureTable(usable,
		docbuilder.Text("Visa du Président", docbuilder.AlignLeft),
		docbuilder.Text("Le Régisseur de dépenses", docbuilder.AlignCenter),
	))
	return nil
}
