package groups

import (
	"time"

	"poolpay/internal/clients/backend"
)

// Group is the domain view of a funding group
type Group struct {
	ID          string
	Name        string
	Description string
	Target      float64
	Contributed float64
	Deadline    time.Time
	CreatedBy   string
	Status      string
	Members     []Member
}

// Member is the domain view of a group member
type Member struct {
	UserID            string
	Name              string
	Email             string
	Role              string
	HasContributed    bool
	AmountContributed float64
	JoinedAt          time.Time
}

// Progress returns the funded percentage of the target, capped at 100. A
// group with no target reports 0.
func (g Group) Progress() float64 {
	if g.Target <= 0 {
		return 0
	}
	pct := g.Contributed / g.Target * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// FromDTO maps a backend group onto the domain model. Timestamps the backend
// serves in an unexpected shape map to the zero time rather than failing the
// whole fetch.
func FromDTO(dto backend.Group) Group {
	g := Group{
		ID:          dto.ID,
		Name:        dto.Name,
		Description: dto.Description,
		Target:      dto.TargetAmount,
		Contributed: dto.TotalContributed,
		Deadline:    parseTime(dto.Deadline),
		CreatedBy:   dto.CreatedBy,
		Status:      dto.Status,
	}
	for _, m := range dto.Members {
		g.Members = append(g.Members, memberFromDTO(m))
	}
	return g
}

func memberFromDTO(dto backend.Member) Member {
	return Member{
		UserID:            dto.UserID,
		Name:              dto.Name,
		Email:             dto.Email,
		Role:              dto.Role,
		HasContributed:    dto.HasContributed,
		AmountContributed: dto.AmountContributed,
		JoinedAt:          parseTime(dto.JoinedAt),
	}
}

// parseTime accepts the timestamp shapes the backend is known to emit
func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
