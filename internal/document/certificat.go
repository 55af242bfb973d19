package document

import (
	"fmt"
	"strconv"
	"strings"

	"regie/internal/docbuilder"
	"regie/internal/domain/amount"
)

// renderCertificatPaiement covers both the standalone certificate and its
// combined variant; the layouts are identical.
func renderCertificatPaiement(b docbuilder.Builder, req *Request) error {
	opts := req.Options
	decisionNumber := strings.TrimSpace(opts.DecisionNumber)
	decisionDate := strings.TrimSpace(opts.DecisionDate)
	if decisionNumber == "" || decisionDate == "" {
		return validationf("Missing CERTIFICAT DE PAIEMENT decision reference in configuration (decision number/date).")
	}

	_, totals, err := monthTotals(req, opts)
	if err != nil {
		return err
	}
	digits := amount.Grouped(totals.Net)
	words := amount.WordsWithCents(totals.Net)

	exerciseYear := strings.TrimSpace(opts.ExerciseYear)
	if exerciseYear == "" {
		exerciseYear = strconv.Itoa(req.Year)
	}

	b.SetPage(docbuilder.PageSetup{MarginMM: 20})

	b.Paragraph(kingdomHeader(opts, 10, 28))
	b.Paragraph(centeredLine("CERTIFICAT DE PAIEMENT", true, true, 14, 26))

	b.Paragraph(docbuilder.Paragraph{
		Align:        docbuilder.AlignBoth,
		SpaceAfterPt: 30,
		LineSpacing:  1.15,
		Runs: []docbuilder.Run{
			{Text: "Le Président de la commune Ouled Naceur : Vu la décision N° "},
			{Text: decisionNumber},
			{Text: fmt.Sprintf(" en date du %s. Relative à la nomination de Mme : ", decisionDate)},
			{Text: opts.RegisseurName, Bold: true},
			{Text: fmt.Sprintf(
				" régisseur de dépenses; considérant une avance de : %s (%s). "+
					"Non justifiées est nécessaire au régisseur de dépenses pour paiement des ouvriers : "+
					"Travaux divers à la commune Ouled Naceur. "+
					"Certifie qu’il est à Mme : Le régisseur à Ouled Naceur de payer sur le budget de l’exercice %s "+
					"Chap : %s  Art : %s  Prog : %s  Proj : %s  Ligne : %s . "+
					"relative au salaire du personnel occasionnel à la somme de %s (%s).",
				digits, words, exerciseYear,
				opts.Chapter, opts.Article, opts.Program, opts.Project, opts.Line,
				digits, words)},
		},
	})

	b.Paragraph(docbuilder.Paragraph{
		Align:        docbuilder.AlignCenter,
		SpaceAfterPt: 28,
		Runs:         []docbuilder.Run{{Text: fmt.Sprintf("A %s Le : %s", opts.CityName, opts.documentDate())}},
	})
	b.Paragraph(docbuilder.Text("Le Président", docbuilder.AlignCenter))
	return nil
}
