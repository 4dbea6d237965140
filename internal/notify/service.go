package notify

import (
	"context"
	"time"

	"poolpay/internal/clients/backend"
	"poolpay/internal/logging"
)

// Feed is the slice of the backend client the notification feed needs
type Feed interface {
	ListNotifications(ctx context.Context) ([]backend.Notification, error)
}

// Notification is one displayable feed entry. Fields missing from the
// payload fall back to defaults; unknown kinds render as plain text.
type Notification struct {
	ID        string
	Title     string
	Body      string
	Kind      string
	CreatedAt time.Time
	Read      bool
}

// Known notification kinds; anything else displays as KindGeneric
const (
	KindContribution = "CONTRIBUTION"
	KindInvite       = "INVITE"
	KindDisbursement = "DISBURSEMENT"
	KindGeneric      = "GENERIC"
)

// Service fetches and normalizes the user's notification feed
type Service struct {
	client Feed
	logger *logging.Logger
}

// NewService creates a new notification service
func NewService(client Feed) *Service {
	return &Service{
		client: client,
		logger: logging.NewDefaultLogger("notify"),
	}
}

// List fetches the feed, newest first as served by the backend
func (s *Service) List(ctx context.Context) ([]Notification, error) {
	dtos, err := s.client.ListNotifications(ctx)
	if err != nil {
		return nil, err
	}
	notifications := make([]Notification, 0, len(dtos))
	for _, dto := range dtos {
		notifications = append(notifications, fromDTO(dto))
	}
	return notifications, nil
}

func fromDTO(dto backend.Notification) Notification {
	n := Notification{
		ID:        dto.ID,
		Title:     dto.Title,
		Body:      dto.Body,
		Kind:      normalizeKind(dto.Kind),
		CreatedAt: parseTime(dto.CreatedAt),
		Read:      dto.Read,
	}
	if n.Title == "" {
		n.Title = "Notification"
	}
	return n
}

func normalizeKind(kind string) string {
	switch kind {
	case KindContribution, KindInvite, KindDisbursement:
		return kind
	default:
		return KindGeneric
	}
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
