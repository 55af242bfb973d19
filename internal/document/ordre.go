package document

import (
	"fmt"

	"regie/internal/docbuilder"
	"regie/internal/domain/amount"
	"regie/internal/domain/payroll"
)

func renderOrdrePaiement(b docbuilder.Builder, req *Request) error {
	opts := req.Options
	_, totals, err := monthTotals(req, opts)
	if err != nil {
		return err
	}
	digits := amount.Grouped(totals.Net)
	words := amount.WordsWithCents(totals.Net)

	period, _ := payroll.MonthPeriod(req.Year, req.Month)

	b.SetPage(docbuilder.PageSetup{MarginMM: 20})

	b.Paragraph(kingdomHeader(opts, 10, 55))
	b.Paragraph(centeredLine("ORDRE DE PAIEMENT", true, true, 14, 26))

	b.Paragraph(docbuilder.Paragraph{
		Align:        docbuilder.AlignBoth,
		SpaceAfterPt: 26,
		LineSpacing:  1.15,
		Runs: []docbuilder.Run{
			{Text: fmt.Sprintf(
				"Sur les crédits disponibles de la rubrique budgétaire : Chap : %s Art : %s Prog : %s "+
					"Proj : %s Ligne : %s . relative au salaire du personnel occasionnel "+
					"L’ordre est donc donné à Mme ",
				opts.Chapter, opts.Article, opts.Program, opts.Project, opts.Line)},
			{Text: opts.RegisseurName, Bold: true},
			{Text: fmt.Sprintf(
				" régisseur de dépenses à la commune %s de payer la somme de %s (%s). "+
					"Comme salaire du personnel occasionnel à la commune %s .",
				opts.CityName, digits, words, opts.CityName)},
		},
	})

	b.Paragraph(docbuilder.Paragraph{
		Align:        docbuilder.AlignCenter,
		SpaceAfterPt: 26,
		Runs: []docbuilder.Run{{Text: fmt.Sprintf(
			"Période du :  %s au  %s.", frenchDate(period.Start), frenchDate(period.End))}},
	})
	b.Paragraph(docbuilder.Paragraph{
		Align:        docbuilder.AlignCenter,
		SpaceAfterPt: 32,
		Runs:         []docbuilder.Run{{Text: fmt.Sprintf("%s Le : %s", opts.CityName, opts.documentDate())}},
	})
	b.Paragraph(docbuilder.Text("Le Président", docbuilder.AlignCenter))
	return nil
}
