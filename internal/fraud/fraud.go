// Package fraud implements the transaction risk scoring core.
//
// Flow:
//  1. Caller submits a draft transaction (amount, merchant, category, device, location)
//  2. The scorer applies an additive rule table and clamps the result to [0, 95]
//  3. A finalized Transaction (id, timestamp, score, verdict) is appended to
//     the session ledger, newest first
//  4. Readers pull the history and the recomputed aggregate statistics
package fraud

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the spend category of a transaction.
type Category string

const (
	CategoryShopping       Category = "shopping"
	CategoryFood           Category = "food"
	CategoryEntertainment  Category = "entertainment"
	CategoryUtilities      Category = "utilities"
	CategoryTravel         Category = "travel"
	CategoryGambling       Category = "gambling"
	CategoryCryptocurrency Category = "cryptocurrency"
	CategoryOther          Category = "other"
)

// Categories lists all valid spend categories.
func Categories() []string {
	return []string{
		string(CategoryShopping),
		string(CategoryFood),
		string(CategoryEntertainment),
		string(CategoryUtilities),
		string(CategoryTravel),
		string(CategoryGambling),
		string(CategoryCryptocurrency),
		string(CategoryOther),
	}
}

// DeviceType is the device a transaction originated from.
type DeviceType string

const (
	DeviceMobile  DeviceType = "mobile"
	DeviceTablet  DeviceType = "tablet"
	DeviceDesktop DeviceType = "desktop"
	DeviceUnknown DeviceType = "unknown"
)

// DeviceTypes lists all valid device types.
func DeviceTypes() []string {
	return []string{
		string(DeviceMobile),
		string(DeviceTablet),
		string(DeviceDesktop),
		string(DeviceUnknown),
	}
}

// Status is the verdict on a scored transaction.
type Status string

const (
	StatusSafe  Status = "safe"
	StatusFraud Status = "fraud"
)

const (
	// FraudThreshold is the score above which a transaction is flagged.
	// A score of exactly FraudThreshold is still safe.
	FraudThreshold = 50

	// MaxScore caps the summed rule contributions.
	MaxScore = 95
)

// StatusForScore derives the verdict from a risk score.
func StatusForScore(score int) Status {
	if score > FraudThreshold {
		return StatusFraud
	}
	return StatusSafe
}

// Draft is a user-submitted transaction that has not been scored yet.
type Draft struct {
	Amount     decimal.Decimal `json:"amount"`
	Merchant   string          `json:"merchant"`
	Category   Category        `json:"category"`
	DeviceType DeviceType      `json:"deviceType"`
	Location   string          `json:"location"`
}

// Transaction is a finalized, immutable record. Draft fields are retained
// verbatim; id, timestamp, score and status are assigned exactly once at
// creation.
type Transaction struct {
	ID         string          `json:"id"`
	Sequence   int64           `json:"sequence"` // monotonic creation order within the session
	Amount     decimal.Decimal `json:"amount"`
	Merchant   string          `json:"merchant"`
	Category   Category        `json:"category"`
	DeviceType DeviceType      `json:"deviceType"`
	Location   string          `json:"location"`
	Timestamp  time.Time       `json:"timestamp"`
	RiskScore  int             `json:"riskScore"`
	Signals    []string        `json:"signals,omitempty"`
	Status     Status          `json:"status"`
}
