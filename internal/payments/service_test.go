package payments

import (
	"context"
	"testing"

	"poolpay/internal/clients/backend"
	"poolpay/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInitiator struct {
	pi    *backend.PaymentInitiation
	err   error
	calls int
}

func (f *fakeInitiator) InitiatePayment(ctx context.Context, groupID string, amount float64) (*backend.PaymentInitiation, error) {
	f.calls++
	return f.pi, f.err
}

func TestInitiateValidation(t *testing.T) {
	tests := []struct {
		name    string
		groupID string
		amount  float64
	}{
		{name: "missing group id", groupID: "", amount: 100},
		{name: "zero amount", groupID: "g1", amount: 0},
		{name: "negative amount", groupID: "g1", amount: -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeInitiator{}
			svc := NewService(fake)

			_, err := svc.Initiate(context.Background(), tt.groupID, tt.amount)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
			assert.Zero(t, fake.calls, "validation failures must not hit the network")
		})
	}
}

func TestInitiateMapsResponse(t *testing.T) {
	fake := &fakeInitiator{pi: &backend.PaymentInitiation{
		ContributionID:   "c1",
		AuthorizationURL: "https://checkout.paystack.com/abc",
		AccessCode:       "abc",
		Reference:        "ref-1",
		Amount:           2500,
		GroupID:          "g1",
		GroupName:        "Team Lunch",
	}}
	svc := NewService(fake)

	initiation, err := svc.Initiate(context.Background(), "g1", 2500)
	require.NoError(t, err)
	assert.Equal(t, "c1", initiation.ContributionID)
	assert.Equal(t, "https://checkout.paystack.com/abc", initiation.AuthorizationURL)
	assert.Equal(t, "Team Lunch", initiation.GroupName)
	assert.Equal(t, 1, fake.calls)
}
