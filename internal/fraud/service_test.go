package fraud

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/upiguard/upiguard/internal/validation"
)

// ---------------------------------------------------------------------------
// Mock event emitter
// ---------------------------------------------------------------------------

type mockEmitter struct {
	mu       sync.Mutex
	scored   []*Transaction
	detected []*Transaction
}

func (m *mockEmitter) TransactionScored(tx *Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scored = append(m.scored, tx)
}

func (m *mockEmitter) FraudDetected(tx *Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.detected = append(m.detected, tx)
}

var _ EventEmitter = (*mockEmitter)(nil)

func newTestService(opts ...Option) (*Service, *Ledger) {
	ledger := NewLedger(NewMemoryStore())
	base := []Option{WithClock(func() time.Time { return noon })}
	svc := NewService(ledger, append(base, opts...)...)
	return svc, ledger
}

// ===========================================================================
// Service tests
// ===========================================================================

func TestService_SubmitAndRead(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	tx, err := svc.SubmitTransaction(ctx, baselineDraft())
	if err != nil {
		t.Fatalf("SubmitTransaction failed: %v", err)
	}
	if !strings.HasPrefix(tx.ID, "txn_") {
		t.Errorf("Expected txn_ id prefix, got %q", tx.ID)
	}
	if !tx.Timestamp.Equal(noon) {
		t.Errorf("Timestamp should come from the injected clock, got %v", tx.Timestamp)
	}
	if tx.Status != StatusSafe || tx.RiskScore != 0 {
		t.Errorf("Baseline draft should be safe with score 0, got %s/%d", tx.Status, tx.RiskScore)
	}

	history, err := svc.History(ctx)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 1 || history[0].ID != tx.ID {
		t.Errorf("Submitted transaction should be in history, got %d entries", len(history))
	}
}

func TestService_ValidationFailureLeavesLedgerUntouched(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.SubmitTransaction(ctx, Draft{})
	if err == nil {
		t.Fatal("Expected validation error for empty draft")
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("Expected validation.Errors, got %T", err)
	}

	fields := make(map[string]bool)
	for _, fe := range verrs {
		fields[fe.Field] = true
	}
	for _, want := range []string{"amount", "merchant", "category", "deviceType", "location"} {
		if !fields[want] {
			t.Errorf("Expected a validation error for %q, got %v", want, verrs)
		}
	}

	stats, _ := svc.Statistics(ctx)
	if stats.Total != 0 {
		t.Errorf("Failed submission must not touch the ledger, total=%d", stats.Total)
	}
}

func TestService_RejectsUnknownCategory(t *testing.T) {
	svc, _ := newTestService()

	d := baselineDraft()
	d.Category = "weapons"
	_, err := svc.SubmitTransaction(context.Background(), d)

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("Expected validation.Errors, got %v", err)
	}
	if len(verrs) != 1 || verrs[0].Field != "category" {
		t.Errorf("Expected a single category error, got %v", verrs)
	}
}

func TestService_RejectsNegativeAmount(t *testing.T) {
	svc, _ := newTestService()

	d := baselineDraft()
	d.Amount = decimal.NewFromInt(-50)
	_, err := svc.SubmitTransaction(context.Background(), d)
	if err == nil {
		t.Fatal("Expected validation error for negative amount")
	}
}

func TestService_AnalysisDelayCancellation(t *testing.T) {
	svc, _ := newTestService(WithAnalysisDelay(200 * time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.SubmitTransaction(ctx, baselineDraft())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Expected context.DeadlineExceeded, got %v", err)
	}

	stats, _ := svc.Statistics(context.Background())
	if stats.Total != 0 {
		t.Errorf("Cancelled submission must not touch the ledger, total=%d", stats.Total)
	}
}

func TestService_AnalysisDelayCompletes(t *testing.T) {
	svc, _ := newTestService(WithAnalysisDelay(5 * time.Millisecond))

	started := time.Now()
	tx, err := svc.SubmitTransaction(context.Background(), baselineDraft())
	if err != nil {
		t.Fatalf("SubmitTransaction failed: %v", err)
	}
	if elapsed := time.Since(started); elapsed < 5*time.Millisecond {
		t.Errorf("Expected at least the configured delay, took %v", elapsed)
	}
	if tx.Status != StatusSafe {
		t.Errorf("Expected safe verdict, got %s", tx.Status)
	}
}

func TestService_EmitsEvents(t *testing.T) {
	emitter := &mockEmitter{}
	svc, _ := newTestService(WithEvents(emitter))
	ctx := context.Background()

	// Safe transaction: scored only
	if _, err := svc.SubmitTransaction(ctx, baselineDraft()); err != nil {
		t.Fatalf("SubmitTransaction failed: %v", err)
	}
	if len(emitter.scored) != 1 || len(emitter.detected) != 0 {
		t.Errorf("Safe transaction: expected 1 scored / 0 detected, got %d/%d",
			len(emitter.scored), len(emitter.detected))
	}

	// Fraudulent transaction: scored and detected
	d := Draft{
		Amount:     decimal.NewFromInt(75000),
		Merchant:   "Offshore Casino",
		Category:   CategoryGambling,
		DeviceType: DeviceUnknown,
		Location:   "International",
	}
	tx, err := svc.SubmitTransaction(ctx, d)
	if err != nil {
		t.Fatalf("SubmitTransaction failed: %v", err)
	}
	if tx.Status != StatusFraud {
		t.Fatalf("Expected fraud verdict, got %s (score %d)", tx.Status, tx.RiskScore)
	}
	if len(emitter.scored) != 2 || len(emitter.detected) != 1 {
		t.Errorf("Fraud transaction: expected 2 scored / 1 detected, got %d/%d",
			len(emitter.scored), len(emitter.detected))
	}
}

func TestService_SanitizesStringFields(t *testing.T) {
	svc, _ := newTestService()

	d := baselineDraft()
	d.Merchant = "  Swiggy\x00  "
	tx, err := svc.SubmitTransaction(context.Background(), d)
	if err != nil {
		t.Fatalf("SubmitTransaction failed: %v", err)
	}
	if tx.Merchant != "Swiggy" {
		t.Errorf("Merchant should be trimmed and stripped, got %q", tx.Merchant)
	}
}

func TestService_FraudScenario(t *testing.T) {
	// Late-night high-value gambling from an unknown device abroad
	svc, _ := newTestService(WithClock(func() time.Time { return clockAt(23) }))

	d := Draft{
		Amount:     decimal.NewFromInt(60000),
		Merchant:   "Lucky Star Casino",
		Category:   CategoryGambling,
		DeviceType: DeviceUnknown,
		Location:   "International zone",
	}
	tx, err := svc.SubmitTransaction(context.Background(), d)
	if err != nil {
		t.Fatalf("SubmitTransaction failed: %v", err)
	}
	if tx.RiskScore != MaxScore {
		t.Errorf("Expected clamped score %d, got %d", MaxScore, tx.RiskScore)
	}
	if tx.Status != StatusFraud {
		t.Errorf("Expected fraud verdict, got %s", tx.Status)
	}
}
