package payments

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"poolpay/internal/clients/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedResponse struct {
	pv  *backend.PaymentVerification
	err error
}

// scriptedSource replays a fixed sequence of verification responses. When the
// script runs out, the last response repeats.
type scriptedSource struct {
	mu     sync.Mutex
	script []scriptedResponse
	calls  int
}

func (s *scriptedSource) VerifyContribution(ctx context.Context, contributionID string) (*backend.PaymentVerification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.calls
	if idx >= len(s.script) {
		idx = len(s.script) - 1
	}
	s.calls++
	r := s.script[idx]
	return r.pv, r.err
}

func (s *scriptedSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func pending() scriptedResponse {
	return scriptedResponse{pv: &backend.PaymentVerification{Status: "PENDING"}}
}

func withStatus(status, message string) scriptedResponse {
	return scriptedResponse{pv: &backend.PaymentVerification{Status: status, Message: message}}
}

// newTestVerifier wires a verifier whose inter-attempt waits are recorded
// instead of slept.
func newTestVerifier(source StatusSource) (*Verifier, *[]time.Duration) {
	v := NewVerifier(source)
	delays := &[]time.Duration{}
	var mu sync.Mutex
	v.wait = func(ctx context.Context, d time.Duration) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		mu.Lock()
		*delays = append(*delays, d)
		mu.Unlock()
		return nil
	}
	return v, delays
}

func collect(t *testing.T, updates <-chan Snapshot) []Snapshot {
	t.Helper()
	var snapshots []Snapshot
	timeout := time.After(5 * time.Second)
	for {
		select {
		case snap, ok := <-updates:
			if !ok {
				return snapshots
			}
			snapshots = append(snapshots, snap)
		case <-timeout:
			t.Fatal("timed out waiting for verification snapshots")
		}
	}
}

func TestStartRequiresContributionID(t *testing.T) {
	v, _ := newTestVerifier(&scriptedSource{script: []scriptedResponse{pending()}})
	_, err := v.Start(context.Background(), "")
	require.Error(t, err)
}

func TestPendingExhaustsBudget(t *testing.T) {
	source := &scriptedSource{script: []scriptedResponse{pending()}}
	v, delays := newTestVerifier(source)

	updates, err := v.Start(context.Background(), "c3")
	require.NoError(t, err)
	snapshots := collect(t, updates)

	assert.Equal(t, 10, source.callCount())
	assert.Len(t, *delays, 9)
	for _, d := range *delays {
		assert.Equal(t, 5*time.Second, d)
	}

	// one in-progress snapshot per attempt, counting 1..10, then the
	// terminal failure
	require.Len(t, snapshots, 11)
	for i := 0; i < 10; i++ {
		assert.Equal(t, i+1, snapshots[i].Attempt)
		assert.Equal(t, PhaseInProgress, snapshots[i].Phase)
	}
	final := snapshots[len(snapshots)-1]
	assert.Equal(t, PhaseFailed, final.Phase)
	assert.Equal(t, "verification timed out", final.Reason)
}

func TestCompletedStopsEarly(t *testing.T) {
	source := &scriptedSource{script: []scriptedResponse{
		pending(),
		pending(),
		{pv: &backend.PaymentVerification{
			Status: "COMPLETED",
			Amount: 5000.0,
			PaidAt: "2024-01-01T10:00:00",
		}},
	}}
	v, delays := newTestVerifier(source)

	updates, err := v.Start(context.Background(), "c1")
	require.NoError(t, err)
	snapshots := collect(t, updates)

	assert.Equal(t, 3, source.callCount())
	assert.Len(t, *delays, 2)

	final := snapshots[len(snapshots)-1]
	assert.Equal(t, PhaseSucceeded, final.Phase)
	assert.Equal(t, 3, final.Attempt)
	assert.Equal(t, 5000.0, final.Amount)
	assert.Equal(t, "2024-01-01T10:00:00", final.PaidAt)
}

func TestFailedStopsImmediately(t *testing.T) {
	source := &scriptedSource{script: []scriptedResponse{
		withStatus("FAILED", "Card declined"),
	}}
	v, delays := newTestVerifier(source)

	updates, err := v.Start(context.Background(), "c2")
	require.NoError(t, err)
	snapshots := collect(t, updates)

	assert.Equal(t, 1, source.callCount())
	assert.Empty(t, *delays)

	final := snapshots[len(snapshots)-1]
	assert.Equal(t, PhaseFailed, final.Phase)
	assert.Equal(t, 1, final.Attempt)
	assert.Equal(t, "Card declined", final.Reason)
}

func TestRefundedFallsBackToStatusReason(t *testing.T) {
	source := &scriptedSource{script: []scriptedResponse{
		withStatus("REFUNDED", ""),
	}}
	v, _ := newTestVerifier(source)

	updates, err := v.Start(context.Background(), "c4")
	require.NoError(t, err)
	snapshots := collect(t, updates)

	final := snapshots[len(snapshots)-1]
	assert.Equal(t, PhaseFailed, final.Phase)
	assert.Equal(t, "REFUNDED", final.Reason)
	assert.Equal(t, 1, source.callCount())
}

func TestStatusMatchIsCaseInsensitive(t *testing.T) {
	source := &scriptedSource{script: []scriptedResponse{
		{pv: &backend.PaymentVerification{Status: "completed", Amount: 100}},
	}}
	v, _ := newTestVerifier(source)

	updates, err := v.Start(context.Background(), "c5")
	require.NoError(t, err)
	snapshots := collect(t, updates)

	final := snapshots[len(snapshots)-1]
	assert.Equal(t, PhaseSucceeded, final.Phase)
	assert.Equal(t, 100.0, final.Amount)
}

func TestUnrecognizedStatusTreatedAsPending(t *testing.T) {
	source := &scriptedSource{script: []scriptedResponse{
		withStatus("SETTLING", ""),
	}}
	v, delays := newTestVerifier(source)

	updates, err := v.Start(context.Background(), "c6")
	require.NoError(t, err)
	snapshots := collect(t, updates)

	assert.Equal(t, 10, source.callCount())
	assert.Len(t, *delays, 9)
	final := snapshots[len(snapshots)-1]
	assert.Equal(t, PhaseFailed, final.Phase)
	assert.Equal(t, "verification timed out", final.Reason)
}

func TestTransportErrorsCountAgainstBudget(t *testing.T) {
	source := &scriptedSource{script: []scriptedResponse{
		{err: errors.New("connection refused")},
	}}
	v, delays := newTestVerifier(source)

	updates, err := v.Start(context.Background(), "c7")
	require.NoError(t, err)
	snapshots := collect(t, updates)

	assert.Equal(t, 10, source.callCount())
	assert.Len(t, *delays, 9)
	final := snapshots[len(snapshots)-1]
	assert.Equal(t, PhaseFailed, final.Phase)
	assert.Equal(t, "verification timed out", final.Reason)
}

func TestErrorThenSettlementRecovers(t *testing.T) {
	source := &scriptedSource{script: []scriptedResponse{
		{err: errors.New("gateway timeout")},
		pending(),
		{pv: &backend.PaymentVerification{Status: "COMPLETED", Amount: 750}},
	}}
	v, _ := newTestVerifier(source)

	updates, err := v.Start(context.Background(), "c8")
	require.NoError(t, err)
	snapshots := collect(t, updates)

	assert.Equal(t, 3, source.callCount())
	final := snapshots[len(snapshots)-1]
	assert.Equal(t, PhaseSucceeded, final.Phase)
	assert.Equal(t, 3, final.Attempt)
}

func TestRetryRestartsFromAttemptOne(t *testing.T) {
	source := &scriptedSource{script: []scriptedResponse{
		withStatus("FAILED", "Card declined"),
	}}
	v, _ := newTestVerifier(source)

	updates, err := v.Start(context.Background(), "c2")
	require.NoError(t, err)
	first := collect(t, updates)
	assert.Equal(t, PhaseFailed, first[len(first)-1].Phase)

	// retry after a terminal state always starts a clean cycle from
	// attempt 1, regardless of the prior outcome
	for i := 0; i < 3; i++ {
		retried, err := v.Retry(context.Background())
		require.NoError(t, err)
		snapshots := collect(t, retried)
		require.NotEmpty(t, snapshots)
		assert.Equal(t, 1, snapshots[0].Attempt)
		assert.Equal(t, PhaseInProgress, snapshots[0].Phase)
		assert.Equal(t, PhaseFailed, snapshots[len(snapshots)-1].Phase)
	}
}

func TestRetryBeforeStartFails(t *testing.T) {
	v, _ := newTestVerifier(&scriptedSource{script: []scriptedResponse{pending()}})
	_, err := v.Retry(context.Background())
	require.Error(t, err)
}

func TestRetryCancelsInFlightRun(t *testing.T) {
	source := &scriptedSource{script: []scriptedResponse{pending()}}
	v := NewVerifier(source)
	// block in the inter-attempt wait until the run is cancelled
	v.wait = func(ctx context.Context, d time.Duration) error {
		<-ctx.Done()
		return ctx.Err()
	}

	first, err := v.Start(context.Background(), "c9")
	require.NoError(t, err)

	// the first run publishes attempt 1 and parks in its delay
	select {
	case snap := <-first:
		assert.Equal(t, 1, snap.Attempt)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for first snapshot")
	}

	second, err := v.Retry(context.Background())
	require.NoError(t, err)

	// the superseded run must close without a terminal snapshot
	for snap := range first {
		assert.False(t, snap.Phase.Terminal(), "superseded run published terminal snapshot")
	}

	v.Stop()
	for range second {
	}
}

func TestCancellationStopsPolling(t *testing.T) {
	source := &scriptedSource{script: []scriptedResponse{pending()}}
	v := NewVerifier(source)
	v.wait = func(ctx context.Context, d time.Duration) error {
		<-ctx.Done()
		return ctx.Err()
	}

	ctx, cancel := context.WithCancel(context.Background())
	updates, err := v.Start(ctx, "c10")
	require.NoError(t, err)

	select {
	case <-updates:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for first snapshot")
	}
	cancel()

	snapshots := collect(t, updates)
	calls := source.callCount()
	assert.Equal(t, 1, calls, "no further queries after cancellation")
	for _, snap := range snapshots {
		assert.False(t, snap.Phase.Terminal())
	}
}
