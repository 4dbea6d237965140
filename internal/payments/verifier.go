package payments

import (
	"context"
	"strings"
	"sync"
	"time"

	"poolpay/internal/clients/backend"
	"poolpay/internal/errors"
	"poolpay/internal/logging"
)

const (
	defaultMaxAttempts = 10
	defaultInterval    = 5 * time.Second

	timeoutReason = "verification timed out"
)

// StatusSource supplies the settlement state of a contribution
type StatusSource interface {
	VerifyContribution(ctx context.Context, contributionID string) (*backend.PaymentVerification, error)
}

// Verifier polls the backend for a contribution's settlement state until a
// terminal status is observed or the attempt budget runs out. Attempts are
// strictly sequential with a fixed inter-attempt delay; each run publishes
// its snapshots in attempt order on its own channel and closes the channel
// when the run ends.
type Verifier struct {
	source      StatusSource
	logger      *logging.Logger
	maxAttempts int
	interval    time.Duration

	// wait is replaced in tests to observe delays without sleeping
	wait func(ctx context.Context, d time.Duration) error

	mu             sync.Mutex
	contributionID string
	cancel         context.CancelFunc
}

// NewVerifier creates a verifier with the default attempt budget and interval
func NewVerifier(source StatusSource) *Verifier {
	return &Verifier{
		source:      source,
		logger:      logging.NewDefaultLogger("verify"),
		maxAttempts: defaultMaxAttempts,
		interval:    defaultInterval,
		wait:        sleepContext,
	}
}

// Start begins verification polling for the given contribution. The returned
// channel carries one snapshot per observable state change and is closed when
// the run reaches a terminal outcome or ctx is cancelled. A second Start (or
// Retry) cancels the previous run first, so runs never overlap.
func (v *Verifier) Start(ctx context.Context, contributionID string) (<-chan Snapshot, error) {
	if contributionID == "" {
		return nil, errors.Validation("contribution id is required")
	}

	v.mu.Lock()
	v.contributionID = contributionID
	v.mu.Unlock()

	return v.startRun(ctx)
}

// Retry restarts the full attempt cycle from attempt 1 for the contribution
// passed to the last Start. Any in-flight run is cancelled before the new one
// begins.
func (v *Verifier) Retry(ctx context.Context) (<-chan Snapshot, error) {
	v.mu.Lock()
	id := v.contributionID
	v.mu.Unlock()
	if id == "" {
		return nil, errors.Validation("no verification has been started")
	}
	return v.startRun(ctx)
}

// Stop cancels any in-flight run
func (v *Verifier) Stop() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

func (v *Verifier) startRun(ctx context.Context) (<-chan Snapshot, error) {
	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	id := v.contributionID
	v.mu.Unlock()

	// Buffered so a slow consumer never blocks the poll loop: at most one
	// in-progress snapshot per attempt plus one terminal snapshot.
	updates := make(chan Snapshot, v.maxAttempts+1)
	go v.run(runCtx, id, updates)
	return updates, nil
}

func (v *Verifier) run(ctx context.Context, contributionID string, updates chan<- Snapshot) {
	defer close(updates)

	warnedStatuses := make(map[string]bool)

	for attempt := 1; attempt <= v.maxAttempts; attempt++ {
		updates <- Snapshot{Attempt: attempt, Phase: PhaseInProgress}

		pv, err := v.source.VerifyContribution(ctx, contributionID)
		if ctx.Err() != nil {
			return
		}

		if err != nil {
			// Transport and server errors are indistinguishable from
			// "not yet settled" until the budget runs out.
			v.logger.Warn("verification attempt %d/%d for %s failed: %v",
				attempt, v.maxAttempts, contributionID, err)
		} else {
			status := strings.ToUpper(pv.Status)
			switch status {
			case StatusCompleted:
				updates <- Snapshot{
					Attempt: attempt,
					Phase:   PhaseSucceeded,
					Amount:  pv.Amount,
					PaidAt:  pv.PaidAt,
				}
				return
			case StatusFailed, StatusRefunded:
				reason := pv.Message
				if reason == "" {
					reason = status
				}
				updates <- Snapshot{Attempt: attempt, Phase: PhaseFailed, Reason: reason}
				return
			case StatusPending:
				// keep polling
			default:
				if !warnedStatuses[status] {
					warnedStatuses[status] = true
					v.logger.Warn("unrecognized payment status %q for %s, treating as pending",
						pv.Status, contributionID)
				}
			}
		}

		if attempt < v.maxAttempts {
			if err := v.wait(ctx, v.interval); err != nil {
				return
			}
		}
	}

	updates <- Snapshot{Attempt: v.maxAttempts, Phase: PhaseFailed, Reason: timeoutReason}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
