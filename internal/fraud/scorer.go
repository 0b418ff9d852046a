package fraud

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Rule contributions. All are non-negative, so the summed score never drops
// below zero before clamping.
const (
	veryHighAmountRisk = 30
	highAmountRisk     = 15
	oddHoursRisk       = 20
	riskyCategoryRisk  = 25
	unknownDeviceRisk  = 15
	internationalRisk  = 20
)

// Amount bands in rupees. Strictly-greater comparisons; the bands are
// mutually exclusive.
var (
	veryHighAmountThreshold = decimal.NewFromInt(50000)
	highAmountThreshold     = decimal.NewFromInt(20000)
)

// Result is the outcome of scoring a draft.
type Result struct {
	Score   int      `json:"score"`
	Signals []string `json:"signals"`
}

// Scorer evaluates transaction risk using rule-based heuristics.
// It is stateless; the evaluation instant is an explicit input so results
// are reproducible.
type Scorer struct{}

// NewScorer creates a new Scorer instance.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score sums the contributions of every triggered rule and clamps the total
// at MaxScore. Only the amount rules are exclusive of each other; all other
// rules apply independently.
func (s *Scorer) Score(d Draft, now time.Time) Result {
	score := 0
	signals := make([]string, 0, 4)

	// Rule: high-value transaction.
	if d.Amount.GreaterThan(veryHighAmountThreshold) {
		score += veryHighAmountRisk
		signals = append(signals, "very_high_amount")
	} else if d.Amount.GreaterThan(highAmountThreshold) {
		score += highAmountRisk
		signals = append(signals, "high_amount")
	}

	// Rule: odd hours (local wall clock of the evaluation instant).
	if hour := now.Hour(); hour < 6 || hour > 22 {
		score += oddHoursRisk
		signals = append(signals, "odd_hours")
	}

	// Rule: high-risk spend categories.
	if d.Category == CategoryGambling || d.Category == CategoryCryptocurrency {
		score += riskyCategoryRisk
		signals = append(signals, "high_risk_category")
	}

	// Rule: unidentified device.
	if d.DeviceType == DeviceUnknown {
		score += unknownDeviceRisk
		signals = append(signals, "unknown_device")
	}

	// Rule: international location (case-insensitive substring match).
	if strings.Contains(strings.ToLower(d.Location), "international") {
		score += internationalRisk
		signals = append(signals, "international_location")
	}

	if score > MaxScore {
		score = MaxScore
	}

	return Result{Score: score, Signals: signals}
}
