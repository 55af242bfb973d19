// Package amount renders monetary values the way the paper forms expect
// them: digits grouped by thousands and French cardinal words followed by
// the dirham/centime suffix.
package amount

// French cardinal words, capitalized per the administrative form convention.
// A single implementation is shared by every document renderer; the "Et"
// connector is used for 21, 31, 41, 51, 61 and 71 (vingt et un, soixante
// et onze), 80 stays "Quatre Vingt" with no plural marker.
var smallWords = [...]string{
	"Zero", "Un", "Deux", "Trois", "Quatre", "Cinq", "Six", "Sept", "Huit", "Neuf",
	"Dix", "Onze", "Douze", "Treize", "Quatorze", "Quinze", "Seize",
	"Dix Sept", "Dix Huit", "Dix Neuf",
}

var tensWords = [...]string{"", "", "Vingt", "Trente", "Quarante", "Cinquante", "Soixante"}

func twoDigits(n int) string {
	switch {
	case n < 20:
		return smallWords[n]
	case n < 70:
		tens, unit := n/10, n%10
		if unit == 0 {
			return tensWords[tens]
		}
		if unit == 1 {
			return tensWords[tens] + " Et Un"
		}
		return tensWords[tens] + " " + smallWords[unit]
	case n == 71:
		return "Soixante Et Onze"
	case n < 80:
		return "Soixante " + smallWords[n-60]
	case n == 80:
		return "Quatre Vingt"
	default:
		return "Quatre Vingt " + smallWords[n-80]
	}
}

func threeDigits(n int) string {
	hundreds, rest := n/100, n%100
	var head string
	switch hundreds {
	case 0:
	case 1:
		head = "Cent"
	default:
		head = smallWords[hundreds] + " Cent"
	}
	if rest == 0 {
		return head
	}
	if head == "" {
		return twoDigits(rest)
	}
	return head + " " + twoDigits(rest)
}

// Words converts a non-negative whole amount into French cardinal words.
// Values above 999,999,999 are outside the domain of these forms and are
// clamped segment-wise ("Mille" is never pluralized, "Million" is).
func Words(n int64) string {
	if n <= 0 {
		return "Zero"
	}

	millions := n / 1_000_000
	thousands := (n % 1_000_000) / 1_000
	rest := n % 1_000

	out := ""
	if millions > 0 {
		out = threeDigits(int(millions)) + " Million"
		if millions > 1 {
			out += "s"
		}
	}
	if thousands > 0 {
		word := "Mille"
		if thousands > 1 {
			word = threeDigits(int(thousands)) + " Mille"
		}
		if out != "" {
			out += " "
		}
		out += word
	}
	if rest > 0 {
		if out != "" {
			out += " "
		}
		out += threeDigits(int(rest))
	}
	return out
}
