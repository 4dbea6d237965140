package app

import (
	"fmt"

	"poolpay/internal/config"
)

// Context carries the per-invocation application settings
type Context struct {
	Environment string
	BinaryName  string
}

// NewContext loads configuration for the given environment and returns the
// application context
func NewContext(binaryName, env string) (*Context, error) {
	if env == "" {
		env = config.Get("POOLPAY_ENV", "prod")
	}

	if err := config.LoadConfig(env); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &Context{
		Environment: env,
		BinaryName:  binaryName,
	}, nil
}

// IsProd reports whether the context targets the production backend
func (c *Context) IsProd() bool {
	return c.Environment == "prod"
}
