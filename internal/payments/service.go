package payments

import (
	"context"

	"poolpay/internal/clients/backend"
	"poolpay/internal/errors"
	"poolpay/internal/logging"
)

// Initiator creates pending contributions against the backend
type Initiator interface {
	InitiatePayment(ctx context.Context, groupID string, amount float64) (*backend.PaymentInitiation, error)
}

// Service provides payment initiation on top of the backend client
type Service struct {
	client Initiator
	logger *logging.Logger
}

// NewService creates a new payment service
func NewService(client Initiator) *Service {
	return &Service{
		client: client,
		logger: logging.NewDefaultLogger("payments"),
	}
}

// Initiate creates a pending contribution and returns the gateway
// authorization parameters. Amount is validated locally before any network
// call is made.
func (s *Service) Initiate(ctx context.Context, groupID string, amount float64) (*Initiation, error) {
	if groupID == "" {
		return nil, errors.Validation("group id is required")
	}
	if amount <= 0 {
		return nil, errors.Validation("amount must be greater than zero")
	}

	pi, err := s.client.InitiatePayment(ctx, groupID, amount)
	if err != nil {
		return nil, err
	}

	s.logger.Info("initiated contribution %s for group %s", pi.ContributionID, pi.GroupID)
	return &Initiation{
		ContributionID:   pi.ContributionID,
		AuthorizationURL: pi.AuthorizationURL,
		AccessCode:       pi.AccessCode,
		Reference:        pi.Reference,
		Amount:           pi.Amount,
		GroupID:          pi.GroupID,
		GroupName:        pi.GroupName,
	}, nil
}
