package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeFilenamePart(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-03-01", "2024-03-01"},
		{"03/2024", "03-2024"},
		{`a\b/c`, "a-b-c"},
		{"du 01 au 15", "du_01_au_15"},
		{"  .-_  ", "unknown"},
		{"", "unknown"},
		{"été 2024", "t_2024"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SafeFilenamePart(tc.in), "SafeFilenamePart(%q)", tc.in)
	}
}

func TestFilenameMonthly(t *testing.T) {
	req := &Request{Year: 2024, Month: 3}

	assert.Equal(t, "Certificat_Paiement_03_2024.docx", Filename(TypeCertificatPaiement, req))
	assert.Equal(t, "Mandat_Paiement_03_2024.docx", Filename(TypeMandatPaiement, req))
	assert.Equal(t, "Recu_03_2024.docx", Filename(TypeRecuCombined, req))
}

func TestFilenameBordereau(t *testing.T) {
	req := &Request{Year: 2024, Month: 3}
	assert.Equal(t, "Bordereau_3_2024.docx", Filename(TypeBordereau, req))

	req.Options.BordereauNumber = "7"
	assert.Equal(t, "Bordereau_7_2024.docx", Filename(TypeBordereau, req))
}

func TestFilenameRCAR(t *testing.T) {
	req := &Request{Year: 2024, Quarter: 2}
	req.Report.Period.Months = []int{4, 5, 6}
	assert.Equal(t, "RCAR_2024_T2_01-04-2024_30-06-2024.docx", Filename(TypeRCARSalariale, req))

	// Without an explicit month list the interval degrades to January 1st.
	bare := &Request{Year: 2024, Quarter: 2}
	assert.Equal(t, "RCAR_PATRONALE_2024_T2_01-01-2024_01-01-2024.docx", Filename(TypeRCARPatronale, bare))
}

func TestFilenameRole(t *testing.T) {
	req := &Request{PeriodStart: "2024-03-01", PeriodEnd: "2024-03-15"}
	assert.Equal(t, "role_journees_2024-03-01_2024-03-15.docx", Filename(TypeRoleJournees, req))

	req.SafeStart = "01-03"
	req.SafeEnd = "15-03"
	assert.Equal(t, "role_journees_01-03_15-03.docx", Filename(TypeRoleJournees, req))

	empty := &Request{}
	assert.Equal(t, "role_journees_unknown_unknown.docx", Filename(TypeRoleJournees, empty))
}

func TestFilenameQuarterlyAndFallback(t *testing.T) {
	quarterly := &Request{Year: 2024, Quarter: 3}
	assert.Equal(t, "Depense_Regie_Recapitulatif_T3_2024.docx", Filename(TypeDepenseRecapitulatif, quarterly))

	bare := &Request{}
	assert.Equal(t, "Valeurs_Reference.docx", Filename(TypeReferenceValues, bare))

	unknown := &Request{}
	assert.Equal(t, "mystery_doc.docx", Filename(Type("mystery doc"), unknown))
}
