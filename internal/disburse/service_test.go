package disburse

import (
	"context"
	"testing"

	"poolpay/internal/clients/backend"
	"poolpay/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReleaser struct {
	dto   *backend.Disbursement
	err   error
	calls int
}

func (f *fakeReleaser) ReleaseFunds(ctx context.Context, groupID string) (*backend.Disbursement, error) {
	f.calls++
	return f.dto, f.err
}

func TestReleaseRequiresGroupID(t *testing.T) {
	fake := &fakeReleaser{}
	svc := NewService(fake)

	_, err := svc.Release(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
	assert.Zero(t, fake.calls, "validation failures must not hit the network")
}

func TestReleaseMapsDisbursement(t *testing.T) {
	fake := &fakeReleaser{dto: &backend.Disbursement{
		DisbursementID:   "d1",
		GroupID:          "g1",
		GroupName:        "Team Lunch",
		Amount:           10000,
		RecipientName:    "Ada",
		RecipientAccount: "0001112223",
		DisbursedAt:      "2024-02-01T09:30:00",
		Status:           "COMPLETED",
	}}
	svc := NewService(fake)

	d, err := svc.Release(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, "d1", d.ID)
	assert.Equal(t, 10000.0, d.Amount)
	assert.Equal(t, "Ada", d.RecipientName)
	assert.False(t, d.DisbursedAt.IsZero())
	assert.Equal(t, 1, fake.calls)
}

func TestReleaseDoesNotRetry(t *testing.T) {
	fake := &fakeReleaser{err: errors.Server("insufficient pool balance")}
	svc := NewService(fake)

	_, err := svc.Release(context.Background(), "g1")
	require.Error(t, err)
	assert.Equal(t, 1, fake.calls, "release is one-shot, never auto-retried")
}
