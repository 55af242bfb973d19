package document

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"regie/internal/domain/payroll"
	"regie/internal/platform/config"
)

// Request is the decoded generation payload. Field names follow the legacy
// wire format, which mixes snake_case worker fields with camelCase
// document metadata.
type Request struct {
	DocumentType string  `json:"documentType"`
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	Quarter      int     `json:"quarter"`
	OutputDir    string  `json:"outputDir"`
	Report       Report  `json:"report"`
	Options      Options `json:"options"`

	// Timesheet ("rôle de journées") requests carry their own top-level
	// fields instead of report/options.
	RegisseurName    string            `json:"regisseurName"`
	ReferenceValues  map[string]string `json:"referenceValues"`
	Sections         []RoleSection     `json:"sections"`
	DecimalComma     FlexBool          `json:"decimalComma"`
	SplitIndex       int               `json:"splitIndex"`
	ContinuationRows int               `json:"continuationRows"`
	PeriodStart      string            `json:"periodStart"`
	PeriodEnd        string            `json:"periodEnd"`
	SafeStart        string            `json:"safeStart"`
	SafeEnd          string            `json:"safeEnd"`
}

// Report wraps the payroll rows and the optional explicit period months
// used by quarterly documents.
type Report struct {
	Rows   []payroll.WorkerRecord `json:"rows"`
	Period ReportPeriod           `json:"period"`
}

type ReportPeriod struct {
	Months         []int  `json:"months"`
	QuarterEndDate string `json:"quarterEndDate"`
}

// Options is the per-document configuration block. Empty fields fall back
// to the office configuration.
type Options struct {
	RCARAgeLimit int `json:"rcarAgeLimit"`

	RegisseurName          string `json:"regisseurName"`
	RegisseurCIN           string `json:"regisseurCin"`
	RegisseurCINValidUntil string `json:"regisseurCinValidUntil"`
	ProvinceName           string `json:"provinceName"`
	CommuneName            string `json:"communeName"`
	CityName               string `json:"cityName"`

	Chapter string `json:"chap"`
	Article string `json:"art"`
	Program string `json:"prog"`
	Project string `json:"proj"`
	Line    string `json:"ligne"`

	DecisionNumber string `json:"decisionNumber"`
	DecisionDate   string `json:"decisionDate"`
	DocumentDate   string `json:"documentDate"`
	ExerciseYear   string `json:"exerciseYear"`
	MandatNumber   string `json:"mandatNumber"`

	BordereauNumber         string           `json:"bordereauNumber"`
	ReportPreviousBordereau decimal.Decimal  `json:"reportPreviousBordereau"`
	AdmittedAmount          *decimal.Decimal `json:"admittedAmount"`
	RejectedAmount          decimal.Decimal  `json:"rejectedAmount"`

	RCARAdhesionNumber string `json:"rcarAdhesionNumber"`
	RCARArabicLine     string `json:"rcarArabicLine"`
}

// RoleSection is one period block of the timesheet, rendered as its own
// page pair. Totals may be given explicitly; otherwise they are summed
// from the workers.
type RoleSection struct {
	StartDate    string           `json:"startDate"`
	EndDate      string           `json:"endDate"`
	DocumentDate string           `json:"documentDate"`
	PayDate      string           `json:"payDate"`
	Workers      []RoleWorker     `json:"workers"`
	TotalDays    *decimal.Decimal `json:"totalDays"`
	TotalGross   *decimal.Decimal `json:"totalGross"`
	TotalDeduct  *decimal.Decimal `json:"totalDeduction"`
	TotalNet     *decimal.Decimal `json:"totalNet"`
}

// RoleWorker is one pre-computed timesheet line. Unlike WorkerRecord these
// arrive with deduction and net already resolved upstream.
type RoleWorker struct {
	FullName      string          `json:"nom_prenom"`
	CIN           string          `json:"cin"`
	CINValidUntil string          `json:"cin_validite"`
	Category      string          `json:"type"`
	DaysWorked    decimal.Decimal `json:"daysWorked"`
	DailyRate     decimal.Decimal `json:"salaire_journalier"`
	Gross         decimal.Decimal `json:"grossSalary"`
	Deduction     decimal.Decimal `json:"deduction"`
	Net           decimal.Decimal `json:"netSalary"`
}

// FlexBool accepts JSON booleans as well as the string and numeric spellings
// the legacy frontend sends ("1", "true", "yes", "on").
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = FlexBool(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "1", "true", "yes", "on":
			*f = true
		default:
			*f = false
		}
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = n != 0
		return nil
	}
	*f = false
	return nil
}

// Type returns the trimmed document type tag.
func (r *Request) Type() Type {
	return Type(strings.TrimSpace(r.DocumentType))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// resolve fills empty option fields from the office configuration so
// renderers never see blanks for identity or budget references.
func (o Options) resolve(cfg config.Config) Options {
	o.RegisseurName = firstNonEmpty(o.RegisseurName, cfg.RegisseurName)
	o.RegisseurCIN = firstNonEmpty(o.RegisseurCIN, cfg.RegisseurCIN)
	o.RegisseurCINValidUntil = firstNonEmpty(o.RegisseurCINValidUntil, cfg.RegisseurCINValidUntil)
	o.ProvinceName = firstNonEmpty(o.ProvinceName, cfg.ProvinceName)
	o.CommuneName = firstNonEmpty(o.CommuneName, cfg.CommuneName)
	o.CityName = firstNonEmpty(o.CityName, cfg.CityName)
	o.Chapter = firstNonEmpty(o.Chapter, cfg.Chapter)
	o.Article = firstNonEmpty(o.Article, cfg.Article)
	o.Program = firstNonEmpty(o.Program, cfg.Program)
	o.Project = firstNonEmpty(o.Project, cfg.Project)
	o.Line = firstNonEmpty(o.Line, cfg.Line)
	o.RCARAdhesionNumber = firstNonEmpty(o.RCARAdhesionNumber, cfg.RCARAdhesionNumber)
	if o.RCARAgeLimit <= 0 {
		o.RCARAgeLimit = cfg.RCARAgeLimit
	}
	if o.RCARAgeLimit <= 0 {
		o.RCARAgeLimit = payroll.DefaultAgeLimit
	}
	return o
}

// documentDate returns the options date or the dotted blank the forms use
// for hand-written dates.
func (o Options) documentDate() string {
	if d := strings.TrimSpace(o.DocumentDate); d != "" {
		return d
	}
	return strings.Repeat(".", 24)
}
