package fraud

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/upiguard/upiguard/internal/metrics"
	"github.com/upiguard/upiguard/internal/traces"
	"github.com/upiguard/upiguard/internal/validation"
)

// EventEmitter receives scoring events for real-time distribution.
type EventEmitter interface {
	TransactionScored(tx *Transaction)
	FraudDetected(tx *Transaction)
}

// Service ties the scorer and the ledger together behind the two operations
// the presentation layer needs: submit and read.
type Service struct {
	scorer        *Scorer
	ledger        *Ledger
	clock         func() time.Time
	analysisDelay time.Duration
	events        EventEmitter
	logger        *slog.Logger
}

// Option configures the service.
type Option func(*Service)

// WithClock injects the evaluation clock (for reproducible tests).
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// WithAnalysisDelay sets the artificial analysis latency applied before a
// verdict is produced. Zero disables it.
func WithAnalysisDelay(d time.Duration) Option {
	return func(s *Service) {
		s.analysisDelay = d
	}
}

// WithEvents sets an emitter for real-time scoring events.
func WithEvents(e EventEmitter) Option {
	return func(s *Service) {
		s.events = e
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a scoring service over the given ledger.
func NewService(ledger *Ledger, opts ...Option) *Service {
	s := &Service{
		scorer: NewScorer(),
		ledger: ledger,
		clock:  time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateDraft checks a draft against the required-field and numeric-amount
// rules. All failing fields are reported together.
func ValidateDraft(d Draft) validation.Errors {
	return validation.Collect(
		validation.Check("amount", "must be greater than 0", d.Amount.IsPositive()),
		validation.Required("merchant", d.Merchant),
		validation.Required("category", string(d.Category)),
		validation.OneOf("category", string(d.Category), Categories()),
		validation.Required("deviceType", string(d.DeviceType)),
		validation.OneOf("deviceType", string(d.DeviceType), DeviceTypes()),
		validation.Required("location", d.Location),
	)
}

// SubmitTransaction validates and scores a draft, appends the finalized
// transaction to the ledger, and returns it. On validation failure nothing
// is created and the ledger is untouched. The configured analysis delay is
// abandoned if the context is canceled.
func (s *Service) SubmitTransaction(ctx context.Context, draft Draft) (*Transaction, error) {
	draft.Merchant = validation.SanitizeString(draft.Merchant, validation.MaxStringLength)
	draft.Location = validation.SanitizeString(draft.Location, validation.MaxStringLength)

	if errs := ValidateDraft(draft); len(errs) > 0 {
		return nil, errs
	}

	ctx, span := traces.StartSpan(ctx, "fraud.submit",
		traces.Merchant(draft.Merchant),
		traces.Category(string(draft.Category)),
	)
	defer span.End()

	started := time.Now()

	if s.analysisDelay > 0 {
		select {
		case <-time.After(s.analysisDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	now := s.clock()
	result := s.scorer.Score(draft, now)

	tx := &Transaction{
		ID:         "txn_" + uuid.NewString(),
		Amount:     draft.Amount,
		Merchant:   draft.Merchant,
		Category:   draft.Category,
		DeviceType: draft.DeviceType,
		Location:   draft.Location,
		Timestamp:  now,
		RiskScore:  result.Score,
		Signals:    result.Signals,
		Status:     StatusForScore(result.Score),
	}

	if err := s.ledger.Append(ctx, tx); err != nil {
		return nil, err
	}

	span.SetAttributes(traces.RiskScore(tx.RiskScore), traces.Verdict(string(tx.Status)))
	metrics.TransactionsScoredTotal.WithLabelValues(string(tx.Status)).Inc()
	metrics.RiskScore.Observe(float64(tx.RiskScore))
	metrics.AnalysisDuration.Observe(time.Since(started).Seconds())
	metrics.LedgerSize.Inc()

	s.logger.Info("transaction scored",
		"id", tx.ID,
		"merchant", tx.Merchant,
		"risk_score", tx.RiskScore,
		"status", tx.Status,
		"signals", tx.Signals,
	)

	if s.events != nil {
		s.events.TransactionScored(tx)
		if tx.Status == StatusFraud {
			s.events.FraudDetected(tx)
		}
	}

	return tx, nil
}

// History returns the scored transactions, newest first.
func (s *Service) History(ctx context.Context) ([]*Transaction, error) {
	return s.ledger.History(ctx)
}

// Statistics returns the current aggregate statistics.
func (s *Service) Statistics(ctx context.Context) (*Stats, error) {
	return s.ledger.Stats(ctx)
}
