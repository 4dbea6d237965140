package backend

// PaymentVerification is the backend's view of a contribution's settlement
// state. Status is a raw backend string; callers must treat values outside
// the known set as non-terminal.
type PaymentVerification struct {
	ID               string  `json:"id"`
	GroupID          string  `json:"groupId"`
	Status           string  `json:"paymentStatus"`
	Amount           float64 `json:"amount"`
	GroupName        string  `json:"groupName"`
	PaidAt           string  `json:"paidAt"`
	GatewayReference string  `json:"gatewayReference"`
	Message          string  `json:"message"`
	CreatedAt        string  `json:"createdAt"`
}

// PaymentInitiation carries the gateway authorization parameters for a newly
// created pending contribution.
type PaymentInitiation struct {
	ContributionID   string  `json:"contributionId"`
	AuthorizationURL string  `json:"authorizationUrl"`
	AccessCode       string  `json:"accessCode"`
	Reference        string  `json:"reference"`
	Amount           float64 `json:"amount"`
	GroupID          string  `json:"groupId"`
	GroupName        string  `json:"groupName"`
}

// Disbursement is the result of releasing pooled funds to a recipient
type Disbursement struct {
	DisbursementID   string  `json:"disbursementId"`
	GroupID          string  `json:"groupId"`
	GroupName        string  `json:"groupName"`
	Amount           float64 `json:"amount"`
	RecipientName    string  `json:"recipientName"`
	RecipientAccount string  `json:"recipientAccount"`
	DisbursedAt      string  `json:"disbursedAt"`
	Status           string  `json:"status"`
	Message          string  `json:"message"`
}

// Group is a funding group as served by the backend
type Group struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	TargetAmount     float64  `json:"targetAmount"`
	TotalContributed float64  `json:"totalContributed"`
	Deadline         string   `json:"deadline"`
	CreatedBy        string   `json:"createdBy"`
	Status           string   `json:"status"`
	Members          []Member `json:"members"`
}

// Member is a funding group member
type Member struct {
	UserID            string  `json:"userId"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Role              string  `json:"role"`
	HasContributed    bool    `json:"hasContributed"`
	AmountContributed float64 `json:"amountContributed"`
	JoinedAt          string  `json:"joinedAt"`
}

// Notification is one entry of the user's notification feed
type Notification struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Kind      string `json:"kind"`
	CreatedAt string `json:"createdAt"`
	Read      bool   `json:"read"`
}

type initiatePaymentRequest struct {
	GroupID string  `json:"groupId"`
	Amount  float64 `json:"amount"`
}

type createGroupRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	TargetAmount float64 `json:"targetAmount"`
	Deadline     string  `json:"deadline"`
}

type inviteMemberRequest struct {
	Email string `json:"email"`
}
