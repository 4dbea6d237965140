package groups

import (
	"context"
	"strings"
	"time"

	"poolpay/internal/clients/backend"
	"poolpay/internal/errors"
	"poolpay/internal/logging"
)

// API is the slice of the backend client the group service needs
type API interface {
	ListGroups(ctx context.Context) ([]backend.Group, error)
	GetGroup(ctx context.Context, groupID string) (*backend.Group, error)
	CreateGroup(ctx context.Context, name, description string, target float64, deadline string) (*backend.Group, error)
	InviteMember(ctx context.Context, groupID, email string) (*backend.Member, error)
}

// Service provides funding-group operations
type Service struct {
	client API
	logger *logging.Logger
}

// NewService creates a new group service
func NewService(client API) *Service {
	return &Service{
		client: client,
		logger: logging.NewDefaultLogger("groups"),
	}
}

// List returns the groups the authenticated user belongs to
func (s *Service) List(ctx context.Context) ([]Group, error) {
	dtos, err := s.client.ListGroups(ctx)
	if err != nil {
		return nil, err
	}
	groups := make([]Group, 0, len(dtos))
	for _, dto := range dtos {
		groups = append(groups, FromDTO(dto))
	}
	return groups, nil
}

// Get returns one group with its members
func (s *Service) Get(ctx context.Context, groupID string) (*Group, error) {
	if groupID == "" {
		return nil, errors.Validation("group id is required")
	}
	dto, err := s.client.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	g := FromDTO(*dto)
	return &g, nil
}

// Create validates the input locally and creates a new funding group.
// Deadline accepts YYYY-MM-DD or RFC 3339 and is forwarded as RFC 3339.
func (s *Service) Create(ctx context.Context, name, description string, target float64, deadline string) (*Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Validation("group name is required")
	}
	if target <= 0 {
		return nil, errors.Validation("target amount must be greater than zero")
	}
	normalized, err := normalizeDeadline(deadline)
	if err != nil {
		return nil, err
	}

	dto, err := s.client.CreateGroup(ctx, name, description, target, normalized)
	if err != nil {
		return nil, err
	}
	s.logger.Info("created group %s (%s)", dto.Name, dto.ID)
	g := FromDTO(*dto)
	return &g, nil
}

// Invite invites a member to a group by email
func (s *Service) Invite(ctx context.Context, groupID, email string) (*Member, error) {
	if groupID == "" {
		return nil, errors.Validation("group id is required")
	}
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.Validation("a valid email address is required")
	}

	dto, err := s.client.InviteMember(ctx, groupID, email)
	if err != nil {
		return nil, err
	}
	m := memberFromDTO(*dto)
	return &m, nil
}

func normalizeDeadline(deadline string) (string, error) {
	deadline = strings.TrimSpace(deadline)
	if deadline == "" {
		return "", errors.Validation("deadline is required")
	}
	if t, err := time.Parse(time.RFC3339, deadline); err == nil {
		return t.Format(time.RFC3339), nil
	}
	if t, err := time.Parse("2006-01-02", deadline); err == nil {
		return t.Format(time.RFC3339), nil
	}
	return "", errors.Validation("deadline must be YYYY-MM-DD or RFC 3339")
}
