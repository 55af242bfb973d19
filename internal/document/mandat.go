package document

import (
	"fmt"
	"strconv"
	"strings"

	"regie/internal/docbuilder"
	"regie/internal/domain/amount"
)

// renderMandatPaiement lays out the payment mandate: a two-column header,
// the payee table and the treasurer signature blocks.
func renderMandatPaiement(b docbuilder.Builder, req *Request) error {
	opts := req.Options
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
	mandatNumber := strings.TrimSpace(opts.MandatNumber)
	if mandatNumber == "" {
		mandatNumber = fmt.Sprintf("%d/%d", req.Month, req.Year)
	}

	b.SetPage(docbuilder.PageSetup{
		MarginTopMM: 20, MarginBottomMM: 20, MarginLeftMM: 20, MarginRightMM: 15,
	})
	usable := 210.0 - 20 - 15

	b.Table(docbuilder.TableSpec{
		ColWidthsMM: []float64{usable * 0.60, usable * 0.40},
		Rows: []docbuilder.TableRow{{
			Cells: []docbuilder.TableCell{
				{VAlign: docbuilder.VAlignTop, Paragraphs: []docbuilder.Paragraph{{
					LineSpacing: 1.0,
					Runs: []docbuilder.Run{
						{Text: "ROYAUME DU MAROC\nMINISTERE DE L'INTERIEUR\n", Bold: true, SizePt: 10},
						{Text: fmt.Sprintf("PROVINCE DE %s\n", opts.ProvinceName), Bold: true, SizePt: 10},
						{Text: fmt.Sprintf("COMMUNE %s", opts.CommuneName), Bold: true, Underline: true, SizePt: 10},
					},
				}}},
				{VAlign: docbuilder.VAlignTop, Paragraphs: []docbuilder.Paragraph{{
					Align: docbuilder.AlignRight,
					Runs: []docbuilder.Run{{
						Text:   fmt.Sprintf("EXERCICE : %s   MANDAT N° : %s", exerciseYear, mandatNumber),
						SizePt: 10,
					}},
				}}},
			},
		}},
	})
	b.Paragraph(docbuilder.Paragraph{SpaceAfterPt: 18})

	b.Paragraph(docbuilder.Paragraph{
		Align:        docbuilder.AlignCenter,
		SpaceAfterPt: 8,
		Runs: []docbuilder.Run{{Text: fmt.Sprintf(
			"Chap: %s, Art : %s, Prog : %s, Proj : %s, ligne :%s",
			opts.Chapter, opts.Article, opts.Program, opts.Project, opts.Line), SizePt: 9}},
	})
	b.Paragraph(centeredLine("SALAIRE DU PERSONNEL OCCASIONNEL", true, false, 10, 10))
	b.Paragraph(centeredLine("MANDAT DE PAIEMENT DELIVRE PAR NOUS ORDONNATEUR", true, true, 11, 12))

	headers := []string{
		"Prénom et Nom\nQualité et Résidence de la partie prenante",
		"Objet de la Depense",
		"Montant",
		"Pièces produites\nà l'appui du Mandat",
	}
	headerCells := make([]docbuilder.TableCell, len(headers))
	for i, h := range headers {
		headerCells[i] = docbuilder.TableCell{
			VAlign: docbuilder.VAlignCenter,
			Paragraphs: []docbuilder.Paragraph{{
				Align: docbuilder.AlignCenter,
				Runs:  []docbuilder.Run{{Text: h, Bold: true, SizePt: 7}},
			}},
		}
	}
	pieces := strings.Join([]string{
		"CERTIFICAT DE PAIEMENT",
		"FEUILLE D'ATTACHEMENT",
		"ORDRE DE PAIEMENT",
		"ROLE DE JOURNEE",
		fmt.Sprintf("BORDEREAU N° %d/%d", req.Month, req.Year),
	}, "\n")
	b.Table(docbuilder.TableSpec{
		ColWidthsMM: []float64{usable * 0.36, usable * 0.26, usable * 0.12, usable * 0.26},
		Borders:     true,
		Rows: []docbuilder.TableRow{
			{HeightMM: 8, Cells: headerCells},
			{HeightMM: 50, Cells: []docbuilder.TableCell{
				{VAlign: docbuilder.VAlignTop, Paragraphs: []docbuilder.Paragraph{{
					Align:       docbuilder.AlignCenter,
					LineSpacing: 1.0,
					Runs: []docbuilder.Run{
						{Text: opts.RegisseurName + "\n", Bold: true, SizePt: 10},
						{Text: "REGISSEUR\n", Underline: true, SizePt: 9},
						{Text: fmt.Sprintf("A LA COMMUNE %s", opts.CommuneName), SizePt: 8},
					},
				}}},
				{VAlign: docbuilder.VAlignTop, Paragraphs: []docbuilder.Paragraph{{
					Align:       docbuilder.AlignCenter,
					LineSpacing: 1.0,
					Runs: []docbuilder.Run{
						{Text: "SALAIRE\nDU PERSONNEL OCCASIONNEL", Bold: true, SizePt: 9},
					},
				}}},
				{VAlign: docbuilder.VAlignTop, Paragraphs: []docbuilder.Paragraph{{
					Align: docbuilder.AlignCenter,
					Runs:  []docbuilder.Run{{Text: digits, SizePt: 10}},
				}}},
				{VAlign: docbuilder.VAlignTop, Paragraphs: []docbuilder.Paragraph{{
					Align:       docbuilder.AlignLeft,
					LineSpacing: 1.0,
					Runs:        []docbuilder.Run{{Text: pieces, SizePt: 8}},
				}}},
			}},
		},
	})

	b.Paragraph(docbuilder.Paragraph{SpaceAfterPt: 6})
	b.Paragraph(docbuilder.Paragraph{
		SpaceAfterPt: 6,
		Runs:         []docbuilder.Run{{Text: fmt.Sprintf("LA SOMME DE : %s (%s).", digits, words), SizePt: 9}},
	})
	b.Paragraph(docbuilder.Paragraph{
		Runs: []docbuilder.Run{{
			Text:   "A LAQUELLE S'ELEVE LE PRESENT MANDAT EST PAYABLE PAR LE PERCEPTEUR DE SOUK SEBT TRESORIER DE LA COMMUNE",
			SizePt: 8,
		}},
	})
	b.Paragraph(docbuilder.Paragraph{
		Align: docbuilder.AlignRight,
		Runs:  []docbuilder.Run{{Text: fmt.Sprintf("Le : %s", opts.documentDate()), SizePt: 8}},
	})
	b.Paragraph(docbuilder.Paragraph{SpaceAfterPt: 36})

	b.Table(docbuilder.TableSpec{
		ColWidthsMM: []float64{usable * 0.50, usable * 0.50},
		Rows: []docbuilder.TableRow{
			{Cells: []docbuilder.TableCell{
				{Paragraphs: []docbuilder.Paragraph{{
					Align: docbuilder.AlignLeft,
					Runs: []docbuilder.Run{{
						Text:   "VU BON A PAYER PAR LE\nPERCEPTEUR DE SOUK SEBT\nTRESORIER DE LA COMMUNE",
						SizePt: 8,
					}},
				}}},
				{Paragraphs: []docbuilder.Paragraph{{
					Align: docbuilder.AlignRight,
					Runs:  []docbuilder.Run{{Text: "L'ORDONNATEUR DE LA COMMUNE", SizePt: 8}},
				}}},
			}},
			{Cells: []docbuilder.TableCell{
				{},
				{Paragraphs: []docbuilder.Paragraph{{
					Align: docbuilder.AlignRight,
					Runs: []docbuilder.Run{{
						Text:   "POUR ACQUIT DE LA SOMME CI-DESSUS\nLA PARTIE PRENANTE",
						SizePt: 8,
					}},
				}}},
			}},
		},
	})
	return nil
}
