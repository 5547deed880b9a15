package config

import (
	"fmt"
	"strings"
	"time"

	mc "github.com/status-im/minerstat-proxy/minerstat_common"
)

const (
	// DefaultMinerstatDomain is the coins endpoint, without a scheme
	DefaultMinerstatDomain = mc.MINERSTAT_COINS_DOMAIN

	DefaultConnectTimeout = 10 * time.Second
	DefaultReadTimeout    = 10 * time.Second
)

// MinerstatConfig points the client at the coins endpoint
type MinerstatConfig struct {
	Domain         string        `yaml:"domain"`          // Host and path without scheme
	Secure         bool          `yaml:"secure"`          // https when true
	ConnectTimeout time.Duration `yaml:"connect_timeout"` // Timeout for establishing connection
	ReadTimeout    time.Duration `yaml:"read_timeout"`    // Timeout for waiting on the response
}

// Validate rejects domains that would break URL composition
func (c *MinerstatConfig) Validate() error {
	if c.Domain == "" {
		return fmt.Errorf("minerstat.domain cannot be empty")
	}
	if strings.Contains(c.Domain, "://") {
		return fmt.Errorf("minerstat.domain must not include a scheme, use minerstat.secure instead: %s", c.Domain)
	}
	if strings.Contains(c.Domain, "?") {
		return fmt.Errorf("minerstat.domain must not include a query string: %s", c.Domain)
	}
	if c.ConnectTimeout < 0 {
		return fmt.Errorf("minerstat.connect_timeout must not be negative, got %s", c.ConnectTimeout)
	}
	if c.ReadTimeout < 0 {
		return fmt.Errorf("minerstat.read_timeout must not be negative, got %s", c.ReadTimeout)
	}

	return nil
}

func (c *MinerstatConfig) applyDefaults() {
	if c.Domain == "" {
		c.Domain = DefaultMinerstatDomain
	}
	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = DefaultConnectTimeout
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
}
