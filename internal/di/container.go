package di

import (
	"fmt"
	"sync"
	"time"

	"poolpay/internal/clients/backend"
	"poolpay/internal/config"
	"poolpay/internal/disburse"
	"poolpay/internal/groups"
	"poolpay/internal/notify"
	"poolpay/internal/payments"
	"poolpay/internal/telemetry"
)

// Container holds all application dependencies
type Container struct {
	backendClient *backend.Client
	groupService  *groups.Service
	payService    *payments.Service
	verifier      *payments.Verifier
	disburseSvc   *disburse.Service
	notifySvc     *notify.Service
	reporter      *telemetry.Reporter
	mu            sync.RWMutex
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{}
}

// Initialize builds all services for the given environment
func (c *Container) Initialize(env string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Embedded display-string tables first
	if err := config.InitializeConfigLoader(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	timeout := config.GetDuration("POOLPAY_TIMEOUT_SECONDS", 30*time.Second)
	client := backend.NewClient(timeout)
	c.backendClient = client

	c.groupService = groups.NewService(client)
	c.payService = payments.NewService(client)
	c.verifier = payments.NewVerifier(client)
	c.disburseSvc = disburse.NewService(client)
	c.notifySvc = notify.NewService(client)
	c.reporter = telemetry.NewReporter("poolpay")

	return nil
}

// ClientSet contains all dependencies handed to commands
type ClientSet struct {
	Backend  *backend.Client
	Groups   *groups.Service
	Payments *payments.Service
	Verifier *payments.Verifier
	Disburse *disburse.Service
	Notify   *notify.Service
	Reporter *telemetry.Reporter
}

// GetClientSet returns all clients as a convenient struct
func (c *Container) GetClientSet() *ClientSet {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return &ClientSet{
		Backend:  c.backendClient,
		Groups:   c.groupService,
		Payments: c.payService,
		Verifier: c.verifier,
		Disburse: c.disburseSvc,
		Notify:   c.notifySvc,
		Reporter: c.reporter,
	}
}
