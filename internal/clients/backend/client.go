package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"poolpay/internal/config"
	"poolpay/internal/errors"
	"poolpay/internal/logging"

	"github.com/google/uuid"
)

// Client talks to the pool-funding backend. Every response is wrapped in the
// envelope {success, message, data}; success == false or data == null is a
// server-reported failure with message as the display string.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
	logger  *logging.Logger
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// NewClient creates a backend client from the process environment
func NewClient(timeout time.Duration) *Client {
	base := config.Get("POOLPAY_BASE_URL", "https://api.poolpay.app")
	token := config.Get("POOLPAY_TOKEN", "")
	return NewClientWithConfig(base, token, timeout)
}

// NewClientWithConfig creates a backend client with explicit settings
func NewClientWithConfig(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTP:    &http.Client{Timeout: timeout},
		logger:  logging.NewDefaultLogger("backend"),
	}
}

// do issues one request and decodes the envelope's data field into out.
// out may be nil when the caller only cares about success.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	reqURL, err := url.JoinPath(c.BaseURL, path)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeInternal, "invalid request URL")
	}

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, errors.ErrorTypeInternal, "failed to encode request body")
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeInternal, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.logger.Warn("http error on %s %s: %v", method, path, err)
		return errors.Network(err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Debug("failed to close response body: %v", err)
		}
	}()

	if resp.StatusCode >= 300 {
		c.logger.Warn("%s %s returned status %s", method, path, resp.Status)
		message := config.StatusMessage(resp.StatusCode)
		errType := errors.ErrorTypeServer
		if resp.StatusCode == http.StatusUnauthorized {
			errType = errors.ErrorTypeUnauthorized
		}
		return errors.New(errType, message).WithContext("status", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.logger.Warn("failed to decode response for %s %s: %v", method, path, err)
		return errors.Wrap(err, errors.ErrorTypeServer, "unexpected response from server")
	}

	if !env.Success || len(env.Data) == 0 || string(env.Data) == "null" {
		message := env.Message
		if message == "" {
			message = "The request failed."
		}
		return errors.Server(message)
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrap(err, errors.ErrorTypeServer, "unexpected response from server")
		}
	}
	return nil
}

// VerifyContribution fetches the settlement state of one contribution
func (c *Client) VerifyContribution(ctx context.Context, contributionID string) (*PaymentVerification, error) {
	var pv PaymentVerification
	if err := c.do(ctx, http.MethodGet, "/contributions/"+url.PathEscape(contributionID)+"/verify", nil, &pv); err != nil {
		return nil, err
	}
	return &pv, nil
}

// InitiatePayment creates a pending contribution and returns gateway
// authorization parameters
func (c *Client) InitiatePayment(ctx context.Context, groupID string, amount float64) (*PaymentInitiation, error) {
	var pi PaymentInitiation
	body := initiatePaymentRequest{GroupID: groupID, Amount: amount}
	if err := c.do(ctx, http.MethodPost, "/payments/initiate", body, &pi); err != nil {
		return nil, err
	}
	return &pi, nil
}

// ReleaseFunds releases a group's pooled funds to its recipient
func (c *Client) ReleaseFunds(ctx context.Context, groupID string) (*Disbursement, error) {
	var d Disbursement
	if err := c.do(ctx, http.MethodPost, "/groups/"+url.PathEscape(groupID)+"/release", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListGroups fetches the groups the authenticated user belongs to
func (c *Client) ListGroups(ctx context.Context) ([]Group, error) {
	var groups []Group
	if err := c.do(ctx, http.MethodGet, "/groups", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// GetGroup fetches one group with its members
func (c *Client) GetGroup(ctx context.Context, groupID string) (*Group, error) {
	var g Group
	if err := c.do(ctx, http.MethodGet, "/groups/"+url.PathEscape(groupID), nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// CreateGroup creates a new funding group
func (c *Client) CreateGroup(ctx context.Context, name, description string, target float64, deadline string) (*Group, error) {
	var g Group
	body := createGroupRequest{Name: name, Description: description, TargetAmount: target, Deadline: deadline}
	if err := c.do(ctx, http.MethodPost, "/groups", body, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// InviteMember invites a user to a group by email
func (c *Client) InviteMember(ctx context.Context, groupID, email string) (*Member, error) {
	var m Member
	body := inviteMemberRequest{Email: email}
	if err := c.do(ctx, http.MethodPost, "/groups/"+url.PathEscape(groupID)+"/invite", body, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ListNotifications fetches the user's notification feed
func (c *Client) ListNotifications(ctx context.Context) ([]Notification, error) {
	var ns []Notification
	if err := c.do(ctx, http.MethodGet, "/notifications", nil, &ns); err != nil {
		return nil, err
	}
	return ns, nil
}
