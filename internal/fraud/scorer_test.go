package fraud

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// clockAt returns an evaluation instant at the given hour on a fixed day.
func clockAt(hour int) time.Time {
	return time.Date(2026, 3, 15, hour, 30, 0, 0, time.UTC)
}

// noon is a baseline instant that triggers no time-based rule.
var noon = clockAt(12)

func baselineDraft() Draft {
	return Draft{
		Amount:     decimal.NewFromInt(1500),
		Merchant:   "Swiggy",
		Category:   CategoryFood,
		DeviceType: DeviceMobile,
		Location:   "Mumbai",
	}
}

func hasSignal(signals []string, want string) bool {
	for _, s := range signals {
		if s == want {
			return true
		}
	}
	return false
}

// ===========================================================================
// Scorer tests
// ===========================================================================

func TestScorer_BaselineIsZero(t *testing.T) {
	scorer := NewScorer()
	result := scorer.Score(baselineDraft(), noon)
	if result.Score != 0 {
		t.Errorf("Baseline draft should score 0, got %d (signals %v)", result.Score, result.Signals)
	}
	if len(result.Signals) != 0 {
		t.Errorf("Baseline draft should trigger no signals, got %v", result.Signals)
	}
}

func TestScorer_VeryHighAmount(t *testing.T) {
	scorer := NewScorer()
	d := baselineDraft()
	d.Amount = decimal.NewFromInt(60000)

	result := scorer.Score(d, noon)
	if result.Score != 30 {
		t.Errorf("Amount 60000 should score 30, got %d", result.Score)
	}
	if !hasSignal(result.Signals, "very_high_amount") {
		t.Errorf("Expected very_high_amount signal, got %v", result.Signals)
	}
	// The 20k band must not also fire
	if hasSignal(result.Signals, "high_amount") {
		t.Errorf("Amount bands should be mutually exclusive, got %v", result.Signals)
	}
}

func TestScorer_HighAmount(t *testing.T) {
	scorer := NewScorer()
	d := baselineDraft()
	d.Amount = decimal.NewFromInt(25000)

	result := scorer.Score(d, noon)
	if result.Score != 15 {
		t.Errorf("Amount 25000 should score 15, got %d", result.Score)
	}
	if !hasSignal(result.Signals, "high_amount") {
		t.Errorf("Expected high_amount signal, got %v", result.Signals)
	}
}

func TestScorer_AmountBoundaries(t *testing.T) {
	scorer := NewScorer()

	// Exactly 20000 is strictly-greater, so no rule fires
	d := baselineDraft()
	d.Amount = decimal.NewFromInt(20000)
	if result := scorer.Score(d, noon); result.Score != 0 {
		t.Errorf("Amount exactly 20000 should score 0, got %d", result.Score)
	}

	// Exactly 50000 falls in the lower band only
	d.Amount = decimal.NewFromInt(50000)
	result := scorer.Score(d, noon)
	if result.Score != 15 {
		t.Errorf("Amount exactly 50000 should score 15, got %d", result.Score)
	}
	if !hasSignal(result.Signals, "high_amount") || hasSignal(result.Signals, "very_high_amount") {
		t.Errorf("Amount exactly 50000 should trigger high_amount only, got %v", result.Signals)
	}

	// Fractional amount just over the upper threshold
	d.Amount = decimal.RequireFromString("50000.01")
	if result := scorer.Score(d, noon); result.Score != 30 {
		t.Errorf("Amount 50000.01 should score 30, got %d", result.Score)
	}
}

func TestScorer_OddHours(t *testing.T) {
	scorer := NewScorer()
	d := baselineDraft()

	cases := []struct {
		hour int
		want int
	}{
		{0, 20},  // midnight
		{5, 20},  // just before the window opens
		{6, 0},   // window opens
		{14, 0},  // afternoon
		{22, 0},  // last normal hour
		{23, 20}, // late night
	}
	for _, tc := range cases {
		result := scorer.Score(d, clockAt(tc.hour))
		if result.Score != tc.want {
			t.Errorf("Hour %d: expected score %d, got %d", tc.hour, tc.want, result.Score)
		}
	}
}

func TestScorer_RiskyCategories(t *testing.T) {
	scorer := NewScorer()

	for _, cat := range []Category{CategoryGambling, CategoryCryptocurrency} {
		d := baselineDraft()
		d.Category = cat
		result := scorer.Score(d, noon)
		if result.Score != 25 {
			t.Errorf("Category %s should score 25, got %d", cat, result.Score)
		}
		if !hasSignal(result.Signals, "high_risk_category") {
			t.Errorf("Category %s should trigger high_risk_category, got %v", cat, result.Signals)
		}
	}

	// Ordinary categories contribute nothing
	d := baselineDraft()
	d.Category = CategoryShopping
	if result := scorer.Score(d, noon); result.Score != 0 {
		t.Errorf("Category shopping should score 0, got %d", result.Score)
	}
}

func TestScorer_UnknownDevice(t *testing.T) {
	scorer := NewScorer()
	d := baselineDraft()
	d.DeviceType = DeviceUnknown

	result := scorer.Score(d, noon)
	if result.Score != 15 {
		t.Errorf("Unknown device should score 15, got %d", result.Score)
	}
	if !hasSignal(result.Signals, "unknown_device") {
		t.Errorf("Expected unknown_device signal, got %v", result.Signals)
	}
}

func TestScorer_InternationalLocation(t *testing.T) {
	scorer := NewScorer()

	matches := []string{
		"International",
		"INTERNATIONAL hub",
		"Mumbai International Airport",
		"travelling internationally",
	}
	for _, loc := range matches {
		d := baselineDraft()
		d.Location = loc
		result := scorer.Score(d, noon)
		if result.Score != 20 {
			t.Errorf("Location %q should score 20, got %d", loc, result.Score)
		}
		if !hasSignal(result.Signals, "international_location") {
			t.Errorf("Location %q should trigger international_location, got %v", loc, result.Signals)
		}
	}

	d := baselineDraft()
	d.Location = "Inter Nation"
	if result := scorer.Score(d, noon); result.Score != 0 {
		t.Errorf("Location %q should score 0, got %d", d.Location, result.Score)
	}
}

func TestScorer_ClampsAtMaxScore(t *testing.T) {
	scorer := NewScorer()
	d := Draft{
		Amount:     decimal.NewFromInt(75000),
		Merchant:   "Offshore Casino",
		Category:   CategoryGambling,
		DeviceType: DeviceUnknown,
		Location:   "International",
	}

	// Raw sum is 30+20+25+15+20 = 110
	result := scorer.Score(d, clockAt(23))
	if result.Score != MaxScore {
		t.Errorf("Expected clamp at %d, got %d", MaxScore, result.Score)
	}
	if len(result.Signals) != 5 {
		t.Errorf("Expected all 5 signals, got %v", result.Signals)
	}
}

func TestScorer_RulesCombineAdditively(t *testing.T) {
	scorer := NewScorer()
	d := baselineDraft()
	d.Amount = decimal.NewFromInt(25000)
	d.DeviceType = DeviceUnknown

	// 15 (amount) + 20 (odd hours) + 15 (device) = 50
	result := scorer.Score(d, clockAt(2))
	if result.Score != 50 {
		t.Errorf("Expected score 50, got %d", result.Score)
	}
}

func TestStatusForScore_ThresholdBoundary(t *testing.T) {
	if got := StatusForScore(FraudThreshold); got != StatusSafe {
		t.Errorf("Score exactly %d should be safe, got %s", FraudThreshold, got)
	}
	if got := StatusForScore(FraudThreshold + 1); got != StatusFraud {
		t.Errorf("Score %d should be fraud, got %s", FraudThreshold+1, got)
	}
	if got := StatusForScore(0); got != StatusSafe {
		t.Errorf("Score 0 should be safe, got %s", got)
	}
	if got := StatusForScore(MaxScore); got != StatusFraud {
		t.Errorf("Score %d should be fraud, got %s", MaxScore, got)
	}
}
