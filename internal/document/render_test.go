package document

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regie/internal/docbuilder"
	"regie/internal/domain/payroll"
	"regie/internal/platform/config"
)

func testConfig() config.Config {
	return config.Config{
		RegisseurName:          "MAJDA TAKNOUTI",
		RegisseurCIN:           "I 528862",
		RegisseurCINValidUntil: "30/09/2030",
		ProvinceName:           "FQUIH BEN SALAH",
		CommuneName:            "OULED NACEUR",
		CityName:               "Ouled Naceur",
		Chapter:                "10",
		Article:                "20",
		Program:                "20",
		Project:                "10",
		Line:                   "14",
		RCARAgeLimit:           60,
		RCARAdhesionNumber:     "35160001",
		LogLevel:               "info",
	}
}

// marchWorker worked 20 days at 200/day in March 2024, born 1970: gross
// 4000, deduction 240, net 3760.
func marchWorker() payroll.WorkerRecord {
	return payroll.WorkerRecord{
		FullName:   "AHMED ALAMI",
		CIN:        "I 123456",
		Category:   "OS",
		BirthDate:  "01/01/1970",
		DaysWorked: decimal.NewFromInt(20),
		Amount:     decimal.NewFromInt(4000),
	}
}

func marchRequest(docType Type) *Request {
	req := &Request{
		DocumentType: string(docType),
		Year:         2024,
		Month:        3,
	}
	req.Report.Rows = []payroll.WorkerRecord{marchWorker()}
	req.Options = req.Options.resolve(testConfig())
	return req
}

func TestRenderMandat(t *testing.T) {
	req := marchRequest(TypeMandatPaiement)
	rec := &docbuilder.Recorder{}

	require.NoError(t, renderMandatPaiement(rec, req))

	assert.True(t, rec.Contains("MANDAT DE PAIEMENT DELIVRE PAR NOUS ORDONNATEUR"))
	assert.True(t, rec.Contains("EXERCICE : 2024   MANDAT N° : 3/2024"))
	assert.True(t, rec.Contains("BORDEREAU N° 3/2024"))
	assert.True(t, rec.Contains("LA SOMME DE : 3 760.00 (Trois Mille Sept Cent Soixante dhs 00 Cts)."))
	assert.Equal(t, 15.0, rec.Page.MarginRightMM)
}

func TestRenderMandatExplicitNumber(t *testing.T) {
	req := marchRequest(TypeMandatPaiement)
	req.Options.MandatNumber = "45"
	req.Options.ExerciseYear = "2023"
	rec := &docbuilder.Recorder{}

	require.NoError(t, renderMandatPaiement(rec, req))
	assert.True(t, rec.Contains("EXERCICE : 2023   MANDAT N° : 45"))
}

func TestRenderBordereau(t *testing.T) {
	req := marchRequest(TypeBordereau)
	// The bordereau only counts presence-day records; explicit totals
	// cannot be attributed to a day range.
	req.Report.Rows[0] = payroll.WorkerRecord{
		FullName:     "AHMED ALAMI",
		BirthDate:    "01/01/1970",
		DailyRate:    decimal.NewFromInt(200),
		PresenceDays: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20},
	}
	rec := &docbuilder.Recorder{}

	require.NoError(t, renderBordereau(rec, req))

	assert.True(t, rec.Contains("BORDEREAU N: 3/2024"))
	assert.True(t, rec.Contains("du 01/03/2024 AU 31/03/2024"))
	assert.True(t, rec.Contains("3 760,00"))
	assert.True(t, rec.Contains("A REPORTER :"))
	assert.True(t, rec.Contains("Total Général :"))
	assert.True(t, rec.Contains("Quittances et pièces rejetées"))
	assert.Equal(t, 1, rec.Breaks)
}

func TestRenderBordereauNoPayrollData(t *testing.T) {
	req := marchRequest(TypeBordereau)

	// Explicit totals only. The day-range pass sees no presence days and
	// must refuse the empty period.
	err := renderBordereau(&docbuilder.Recorder{}, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrData)
	assert.Equal(t, "Aucune donnée de paie pour cette période", err.Error())
}

func TestRenderBordereauReportAndAdmitted(t *testing.T) {
	req := marchRequest(TypeBordereau)
	req.Report.Rows[0] = payroll.WorkerRecord{
		FullName:     "AHMED ALAMI",
		BirthDate:    "01/01/1970",
		DailyRate:    decimal.NewFromInt(200),
		PresenceDays: []int{1, 2, 3, 4, 5},
	}
	req.Options.ReportPreviousBordereau = decimal.NewFromInt(1000)
	admitted := decimal.NewFromInt(900)
	req.Options.AdmittedAmount = &admitted
	rec := &docbuilder.Recorder{}

	require.NoError(t, renderBordereau(rec, req))

	// 5 days x 200 = 1000 gross, 60 deducted, 940 net.
	assert.True(t, rec.Contains("Montant du présent bordereau: 940,00"))
	assert.True(t, rec.Contains("Montant admis du présent bordereau: 900,00"))
	assert.True(t, rec.Contains("Report du bordereau précédent: 1 000,00"))
	assert.True(t, rec.Contains("Total Général: 1 940,00"))
}

func TestRenderCertificatRequiresDecision(t *testing.T) {
	req := marchRequest(TypeCertificatPaiement)

	err := renderCertificatPaiement(&docbuilder.Recorder{}, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "decision number/date")
}

func TestRenderCertificat(t *testing.T) {
	req := marchRequest(TypeCertificatPaiement)
	req.Options.DecisionNumber = "12"
	req.Options.DecisionDate = "15/01/2024"
	rec := &docbuilder.Recorder{}

	require.NoError(t, renderCertificatPaiement(rec, req))
	assert.True(t, rec.Contains("CERTIFICAT DE PAIEMENT"))
	assert.True(t, rec.Contains("3 760.00"))
	assert.True(t, rec.Contains("MAJDA TAKNOUTI"))
}

func TestRenderRCARSalariale(t *testing.T) {
	req := &Request{
		DocumentType: string(TypeRCARSalariale),
		Year:         2024,
		Quarter:      2,
	}
	req.Report.Period.Months = []int{4, 5, 6}
	req.Report.Rows = []payroll.WorkerRecord{
		{
			FullName:  "AHMED ALAMI",
			Category:  "os",
			BirthDate: "01/01/1970",
			MonthlyStats: []payroll.MonthlyStat{
				{Month: 4, DaysWorked: decimal.NewFromInt(10), Amount: decimal.NewFromInt(2000)},
				{Month: 5, DaysWorked: decimal.NewFromInt(10), Amount: decimal.NewFromInt(2000)},
			},
		},
		{
			// Past the age limit at the quarter end: listed with a zero
			// contribution.
			FullName:    "HASSAN BERRADA",
			Category:    "os",
			BirthDate:   "01/01/1950",
			TotalDays:   decimal.NewFromInt(20),
			TotalAmount: decimal.NewFromInt(4000),
		},
	}
	req.Options = req.Options.resolve(testConfig())
	rec := &docbuilder.Recorder{}

	require.NoError(t, renderRCARSalariale(rec, req))

	assert.True(t, rec.Contains("ETAT DE VERSEMENT A LA (R.C.A.R)"))
	assert.True(t, rec.Contains("COTISATION SALARIALE"))
	assert.True(t, rec.Contains("Période du : 01/04/2024 au 30/06/2024"))
	assert.True(t, rec.Contains("Prélèvement 6%"))
	assert.True(t, rec.Contains("TOTAUX"))
	// 4000 x 6% from the first worker only.
	assert.True(t, rec.Contains("Le présent état est arrêté à la somme de : DEUX CENT QUARANTE DHS 00 CTS"))
	assert.True(t, rec.Contains("Justificatif de Versement"))
	assert.True(t, rec.Contains("Régime Général (RG)"))
	assert.True(t, rec.Contains("AVRIL MAI JUIN"))
	assert.Equal(t, 1, rec.Breaks)
}

func TestRenderRCARPatronaleRate(t *testing.T) {
	req := &Request{
		DocumentType: string(TypeRCARPatronale),
		Year:         2024,
		Quarter:      1,
	}
	req.Report.Rows = []payroll.WorkerRecord{marchWorker()}
	req.Options = req.Options.resolve(testConfig())
	rec := &docbuilder.Recorder{}

	require.NoError(t, renderRCARPatronale(rec, req))
	assert.True(t, rec.Contains("COTISATION PATRONALE"))
	assert.True(t, rec.Contains("Prélèvement 12%"))
	// 4000 x 12%.
	assert.True(t, rec.Contains("QUATRE CENT QUATRE VINGT DHS 00 CTS"))
}

func TestRenderRCARMissingQuarter(t *testing.T) {
	req := &Request{DocumentType: string(TypeRCARSalariale), Year: 2024}
	req.Options = req.Options.resolve(testConfig())

	err := renderRCARSalariale(&docbuilder.Recorder{}, req)
	require.Error(t, err)
	assert.Equal(t, "Missing required fields for rcar-salariale: year, quarter", err.Error())
}

func TestRenderRoleRequiresSections(t *testing.T) {
	req := &Request{DocumentType: string(TypeRoleJournees)}
	req.Options = req.Options.resolve(testConfig())

	err := renderRole(&docbuilder.Recorder{}, req)
	require.Error(t, err)
	assert.Equal(t, "Missing required data: sections", err.Error())
}

func TestRenderRole(t *testing.T) {
	workers := make([]RoleWorker, 0, 10)
	for i := 0; i < 10; i++ {
		workers = append(workers, RoleWorker{
			FullName:      "OUVRIER",
			CIN:           "I 111111",
			CINValidUntil: "2030-09-30",
			Category:      "OS",
			DaysWorked:    decimal.NewFromInt(10),
			DailyRate:     decimal.NewFromInt(100),
			Gross:         decimal.NewFromInt(1000),
			Deduction:     decimal.NewFromInt(60),
			Net:           decimal.NewFromInt(940),
		})
	}
	req := &Request{
		DocumentType: string(TypeRoleJournees),
		Year:         2024,
		ReferenceValues: map[string]string{
			"chapitre": "10", "article": "20", "programme": "20", "projet": "10", "ligne": "14",
		},
		Sections: []RoleSection{{
			StartDate: "2024-03-01",
			EndDate:   "2024-03-15",
			Workers:   workers,
		}},
	}
	req.Options = req.Options.resolve(testConfig())
	rec := &docbuilder.Recorder{}

	require.NoError(t, renderRole(rec, req))

	assert.True(t, rec.Contains("ROLE DES JOURNEES D'OUVRIERS EMPLOYES"))
	assert.True(t, rec.Contains("NOM DU REGISSEUR : MAJDA TAKNOUTI"))
	assert.True(t, rec.Contains("DU :"))
	assert.True(t, rec.Contains("01/03/2024"))
	assert.True(t, rec.Contains("REPORT :"))
	assert.True(t, rec.Contains("TOTAL :"))
	assert.True(t, rec.Contains("CIN N°: I 111111"))
	assert.True(t, rec.Contains("AU : 30/09/2030"))
	// 10 workers x 940 net.
	assert.True(t, rec.Contains("SOMME A PAYER : 9400.00"))
	assert.True(t, rec.Contains("NEUF MILLE QUATRE CENT DHS 00 CTS."))
	assert.True(t, rec.Contains("LE REGISSEUR DE DEPENSES"))
	// One break between the first page table and the continuation.
	assert.Equal(t, 1, rec.Breaks)

	// Two role tables: 8 rows on page one, the spill plus blank padding on
	// the continuation.
	require.Len(t, rec.Tables, 6)
	page1 := rec.Tables[2]
	assert.Len(t, page1.Rows, 1+8+1)
	continuation := rec.Tables[3]
	// header + REPORT + max(2 remaining, 6 slots) + TOTAL
	assert.Len(t, continuation.Rows, 1+1+6+1)
}

func TestRenderRoleDecimalComma(t *testing.T) {
	req := &Request{
		DocumentType: string(TypeRoleJournees),
		Year:         2024,
		DecimalComma: true,
		Sections: []RoleSection{{
			StartDate: "2024-03-01",
			EndDate:   "2024-03-15",
			Workers: []RoleWorker{{
				FullName:   "OUVRIER",
				DaysWorked: decimal.NewFromInt(10),
				DailyRate:  decimal.NewFromInt(100),
				Gross:      decimal.NewFromInt(1000),
				Deduction:  decimal.NewFromInt(60),
				Net:        decimal.NewFromInt(940),
			}},
		}},
	}
	req.Options = req.Options.resolve(testConfig())
	rec := &docbuilder.Recorder{}

	require.NoError(t, renderRole(rec, req))
	assert.True(t, rec.Contains("SOMME A PAYER : 940,00"))
}

func TestRenderRoleExplicitTotalsWin(t *testing.T) {
	totalNet := decimal.NewFromFloat(950.50)
	req := &Request{
		DocumentType: string(TypeRoleJournees),
		Year:         2024,
		Sections: []RoleSection{{
			StartDate: "2024-03-01",
			EndDate:   "2024-03-15",
			TotalNet:  &totalNet,
			Workers: []RoleWorker{{
				FullName:   "OUVRIER",
				DaysWorked: decimal.NewFromInt(10),
				Gross:      decimal.NewFromInt(1000),
				Deduction:  decimal.NewFromInt(60),
				Net:        decimal.NewFromInt(940),
			}},
		}},
	}
	req.Options = req.Options.resolve(testConfig())
	rec := &docbuilder.Recorder{}

	require.NoError(t, renderRole(rec, req))
	assert.True(t, rec.Contains("SOMME A PAYER : 950.50"))
}

func TestRenderGenericFallback(t *testing.T) {
	req := marchRequest(TypeDepenseRecapitulatif)
	rec := &docbuilder.Recorder{}

	require.NoError(t, renderGeneric(rec, req))

	assert.True(t, rec.Contains("DEPENSE EN REGIE (RECAPITULATIF)"))
	assert.True(t, rec.Contains("Période: 03/2024"))
	assert.True(t, rec.Contains("Références budgétaires:"))
	assert.True(t, rec.Contains("Détail des ouvriers:"))
	assert.True(t, rec.Contains("Totaux - Jours: 20 | Brut: 4000.00 | Prélèvement: 240.00 | Net: 3760.00"))
}

func TestRenderGenericQuarterEndDateReference(t *testing.T) {
	req := &Request{
		DocumentType: string(TypeDepenseRecapitulatif),
		Year:         2024,
		Quarter:      2,
	}
	req.Report.Rows = []payroll.WorkerRecord{{
		FullName:    "AHMED ALAMI",
		BirthDate:   "01/08/1963",
		TotalDays:   decimal.NewFromInt(20),
		TotalAmount: decimal.NewFromInt(4000),
	}}
	req.Options = req.Options.resolve(testConfig())

	// Aged 60 at the derived quarter end, so the levy applies.
	rec := &docbuilder.Recorder{}
	require.NoError(t, renderGeneric(rec, req))
	assert.True(t, rec.Contains("Net: 3760.00"))

	// An explicit quarterEndDate past the birthday moves the worker over
	// the limit.
	req.Report.Period.QuarterEndDate = "2024-08-02"
	rec = &docbuilder.Recorder{}
	require.NoError(t, renderGeneric(rec, req))
	assert.True(t, rec.Contains("Net: 4000.00"))
}

func TestRenderOrdreZeroTotalsStillRenders(t *testing.T) {
	// An all-excluded worker list only blocks the bordereau; other types
	// render zero totals.
	req := marchRequest(TypeOrdrePaiement)
	req.Report.Rows = []payroll.WorkerRecord{{FullName: "AHMED ALAMI"}}
	rec := &docbuilder.Recorder{}

	require.NoError(t, renderOrdrePaiement(rec, req))
	assert.True(t, rec.Contains("0.00"))

	req.DocumentType = string(TypeBordereau)
	err := renderBordereau(&docbuilder.Recorder{}, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrData)
}

func TestRenderRecu(t *testing.T) {
	req := marchRequest(TypeRecuCombined)
	rec := &docbuilder.Recorder{}

	require.NoError(t, renderRecu(rec, req))
	assert.True(t, rec.Contains("3 760.00"))
	assert.True(t, rec.Contains("Trois Mille Sept Cent Soixante"))
}

func TestRenderOrdre(t *testing.T) {
	req := marchRequest(TypeOrdrePaiement)
	rec := &docbuilder.Recorder{}

	require.NoError(t, renderOrdrePaiement(rec, req))
	assert.True(t, rec.Contains("ORDRE DE PAIEMENT"))
	assert.True(t, rec.Contains("01/03/2024"))
	assert.True(t, rec.Contains("31/03/2024"))
}

func TestRenderDemande(t *testing.T) {
	req := marchRequest(TypeDemandeAutorisation)
	rec := &docbuilder.Recorder{}

	require.NoError(t, renderDemandeAutorisation(rec, req))
	assert.True(t, rec.Contains("DEMANDE D'AUTORISATION DE PAIEMENT N° 3/2024"))
	assert.True(t, rec.Contains("MAJDA TAKNOUTI"))
}
