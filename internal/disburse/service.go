package disburse

import (
	"context"
	"time"

	"poolpay/internal/clients/backend"
	"poolpay/internal/errors"
	"poolpay/internal/logging"
)

// Releaser is the slice of the backend client the disbursement flow needs
type Releaser interface {
	ReleaseFunds(ctx context.Context, groupID string) (*backend.Disbursement, error)
}

// Disbursement is the domain view of a completed fund release
type Disbursement struct {
	ID               string
	GroupID          string
	GroupName        string
	Amount           float64
	RecipientName    string
	RecipientAccount string
	DisbursedAt      time.Time
	Status           string
	Message          string
}

// Service releases pooled funds to a group's recipient. The flow is a single
// request/response; failures are surfaced to the user, who retries by
// re-running the command.
type Service struct {
	client Releaser
	logger *logging.Logger
}

// NewService creates a new disbursement service
func NewService(client Releaser) *Service {
	return &Service{
		client: client,
		logger: logging.NewDefaultLogger("disburse"),
	}
}

// Release releases the group's pooled funds to its recipient
func (s *Service) Release(ctx context.Context, groupID string) (*Disbursement, error) {
	if groupID == "" {
		return nil, errors.Validation("group id is required")
	}

	dto, err := s.client.ReleaseFunds(ctx, groupID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("disbursement %s for group %s: %s", dto.DisbursementID, dto.GroupID, dto.Status)
	return &Disbursement{
		ID:               dto.DisbursementID,
		GroupID:          dto.GroupID,
		GroupName:        dto.GroupName,
		Amount:           dto.Amount,
		RecipientName:    dto.RecipientName,
		RecipientAccount: dto.RecipientAccount,
		DisbursedAt:      parseTime(dto.DisbursedAt),
		Status:           dto.Status,
		Message:          dto.Message,
	}, nil
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
