package fraud

import (
	"context"
	"errors"
	"strconv"
)

var (
	// ErrNilTransaction is returned when appending a nil transaction.
	ErrNilTransaction = errors.New("fraud: nil transaction")
)

// Stats are the aggregate statistics of the session ledger, recomputed from
// its contents on every read.
type Stats struct {
	Total            int    `json:"total"`
	SafeCount        int    `json:"safeCount"`
	FraudCount       int    `json:"fraudCount"`
	FraudRatePercent string `json:"fraudRatePercent"`
}

// Store persists scored transactions for the session.
type Store interface {
	// Append records a transaction and assigns its session sequence number.
	Append(ctx context.Context, tx *Transaction) error
	// List returns a newest-first snapshot of all transactions.
	List(ctx context.Context) ([]*Transaction, error)
}

// Ledger is the session-scoped, append-only record of scored transactions.
// Entries are never mutated or removed once appended.
type Ledger struct {
	store Store
}

// NewLedger creates a ledger over the given store.
func NewLedger(store Store) *Ledger {
	return &Ledger{store: store}
}

// Append records a finalized transaction.
func (l *Ledger) Append(ctx context.Context, tx *Transaction) error {
	if tx == nil {
		return ErrNilTransaction
	}
	return l.store.Append(ctx, tx)
}

// History returns all transactions, newest first.
func (l *Ledger) History(ctx context.Context) ([]*Transaction, error) {
	return l.store.List(ctx)
}

// Stats recomputes the aggregate statistics from the current ledger
// contents. The fraud rate is a one-decimal percentage string; an empty
// ledger reports exactly "0" (not "0.0"), matching the documented
// zero-state contract.
func (l *Ledger) Stats(ctx context.Context) (*Stats, error) {
	entries, err := l.store.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Total: len(entries), FraudRatePercent: "0"}
	for _, tx := range entries {
		if tx.Status == StatusFraud {
			stats.FraudCount++
		} else {
			stats.SafeCount++
		}
	}
	if stats.Total > 0 {
		rate := float64(stats.FraudCount) / float64(stats.Total) * 100
		stats.FraudRatePercent = strconv.FormatFloat(rate, 'f', 1, 64)
	}
	return stats, nil
}
