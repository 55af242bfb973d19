package payroll

import "github.com/shopspring/decimal"

// DefaultAgeLimit is the inclusive age threshold for the RCAR levy: workers
// aged at most this at period end are deducted, older workers are presumed
// retired and exempt.
const DefaultAgeLimit = 60

// Contribution rates. The worker-side rate applies by default; the
// employer-side rate is selected per document type, never per worker.
var (
	RateWorker   = decimal.New(6, -2)  // 6%
	RateEmployer = decimal.New(12, -2) // 12%
)
