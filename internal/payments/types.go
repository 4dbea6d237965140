package payments

// Backend settlement statuses. Matching is case-insensitive; any value
// outside this set is treated as not yet settled.
const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
	StatusRefunded  = "REFUNDED"
)

// Phase is the verifier's tri-state outcome
type Phase int

const (
	PhaseInProgress Phase = iota
	PhaseSucceeded
	PhaseFailed
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseInProgress:
		return "in_progress"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase is a terminal outcome
func (p Phase) Terminal() bool {
	return p == PhaseSucceeded || p == PhaseFailed
}

// Snapshot is one published state of a verification run. Amount and PaidAt
// are set only when Phase is PhaseSucceeded; Reason only when PhaseFailed.
type Snapshot struct {
	Attempt int
	Phase   Phase
	Amount  float64
	PaidAt  string
	Reason  string
}

// Initiation is the domain view of a freshly created pending contribution
type Initiation struct {
	ContributionID   string
	AuthorizationURL string
	AccessCode       string
	Reference        string
	Amount           float64
	GroupID          string
	GroupName        string
}
