package document

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"regie/internal/docbuilder"
)

func frenchDate(t time.Time) string {
	return t.Format("02/01/2006")
}

var frenchMonths = [...]string{
	"JANVIER", "FEVRIER", "MARS", "AVRIL", "MAI", "JUIN",
	"JUILLET", "AOUT", "SEPTEMBRE", "OCTOBRE", "NOVEMBRE", "DECEMBRE",
}

func monthLabels(months []int) string {
	labels := make([]string, 0, len(months))
	for _, m := range months {
		if m >= 1 && m <= 12 {
			labels = append(labels, frenchMonths[m-1])
		}
	}
	return strings.Join(labels, " ")
}

func dots(n int) string {
	return strings.Repeat(".", n)
}

var isoDate = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// formDate normalizes an input date to the dd/mm/yyyy the forms print,
// leaving anything unrecognized untouched.
func formDate(value string) string {
	text := strings.TrimSpace(value)
	if m := isoDate.FindStringSubmatch(text); m != nil {
		return fmt.Sprintf("%s/%s/%s", m[3], m[2], m[1])
	}
	return text
}

// kingdomHeader is the administrative header block printed top-left on
// every single-column form.
func kingdomHeader(opts Options, sizePt, spaceAfterPt float64) docbuilder.Paragraph {
	return docbuilder.Paragraph{
		Align:        docbuilder.AlignLeft,
		SpaceAfterPt: spaceAfterPt,
		Runs: []docbuilder.Run{
			{Text: "ROYAUME DU MAROC\nMINISTERE DE L'INTERIEUR\n", Bold: true, SizePt: sizePt},
			{Text: fmt.Sprintf("PROVINCE DE %s\n", opts.ProvinceName), Bold: true, SizePt: sizePt},
			{Text: fmt.Sprintf("COMMUNE %s", opts.CommuneName), Bold: true, Underline: true, SizePt: sizePt},
		},
	}
}

func centeredLine(text string, bold, underline bool, sizePt, afterPt float64) docbuilder.Paragraph {
	return docbuilder.Paragraph{
		Align:        docbuilder.AlignCenter,
		SpaceAfterPt: afterPt,
		Runs:         []docbuilder.Run{{Text: text, Bold: bold, Underline: underline, SizePt: sizePt}},
	}
}

func plainLine(text string, align docbuilder.Align, sizePt, afterPt float64) docbuilder.Paragraph {
	return docbuilder.Paragraph{
		Align:        align,
		SpaceAfterPt: afterPt,
		Runs:         []docbuilder.Run{{Text: text, SizePt: sizePt}},
	}
}

// signatureTable lays out a borderless two-cell signature row.
func signatureTable(usableWidthMM float64, left, right docbuilder.Paragraph) docbuilder.TableSpec {
	return docbuilder.TableSpec{
		ColWidthsMM: []float64{usableWidthMM * 0.5, usableWidthMM * 0.5},
		Rows: []docbuilder.TableRow{{
			Cells: []docbuilder.TableCell{
				{VAlign: docbuilder.VAlignCenter, Paragraphs: []docbuilder.Paragraph{left}},
				{VAlign: docbuilder.VAlignCenter, Paragraphs: []docbuilder.Paragraph{right}},
			},
		}},
	}
}
