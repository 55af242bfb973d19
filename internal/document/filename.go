package document

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"regie/internal/domain/payroll"
)

var unsafeFilenameChars = regexp.MustCompile(`[^0-9A-Za-z._-]+`)

// SafeFilenamePart reduces a value to characters that are legal in a
// filename on every filesystem we target, collapsing anything else to an
// underscore. Path separators become dashes first so "03/2024" stays
// readable instead of traversing.
func SafeFilenamePart(value string) string {
	text := strings.TrimSpace(value)
	text = strings.ReplaceAll(text, "\\", "-")
	text = strings.ReplaceAll(text, "/", "-")
	text = unsafeFilenameChars.ReplaceAllString(text, "_")
	text = strings.Trim(text, "._-")
	if text == "" {
		return "unknown"
	}
	return text
}

// Filename derives the output name for a request. Derivation is
// deterministic from type, period and a small set of options.
func Filename(t Type, req *Request) string {
	base, ok := fileBases[t]
	if !ok {
		base = SafeFilenamePart(string(t))
	}

	switch t {
	case TypeBordereau:
		number := strings.TrimSpace(req.Options.BordereauNumber)
		if number == "" && req.Month > 0 {
			number = strconv.Itoa(req.Month)
		}
		number = SafeFilenamePart(number)
		if req.Year > 0 && req.Month > 0 {
			return fmt.Sprintf("%s_%s_%d.docx", base, number, req.Year)
		}
		return fmt.Sprintf("%s_%s.docx", base, number)

	case TypeRCARSalariale, TypeRCARPatronale:
		if req.Year > 0 && req.Quarter > 0 {
			// the month list stamps the covered interval into the name;
			// without it the name still carries year and quarter
			from := fmt.Sprintf("01-01-%d", req.Year)
			to := from
			if p, err := payroll.QuarterPeriod(req.Year, 0, req.Report.Period.Months); err == nil {
				from = p.Start.Format("02-01-2006")
				to = p.End.Format("02-01-2006")
			}
			return fmt.Sprintf("%s_%d_T%d_%s_%s.docx", base, req.Year, req.Quarter, from, to)
		}

	case TypeRoleJournees:
		start := SafeFilenamePart(firstNonEmpty(req.SafeStart, req.PeriodStart))
		end := SafeFilenamePart(firstNonEmpty(req.SafeEnd, req.PeriodEnd))
		return fmt.Sprintf("role_journees_%s_%s.docx", start, end)
	}

	if req.Year > 0 && req.Month > 0 {
		return fmt.Sprintf("%s_%02d_%d.docx", base, req.Month, req.Year)
	}
	if req.Year > 0 && req.Quarter > 0 {
		return fmt.Sprintf("%s_T%d_%d.docx", base, req.Quarter, req.Year)
	}
	return base + ".docx"
}
