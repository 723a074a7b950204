package config

import "time"

const (
	minSessionTTL      = 5 * time.Minute
	minMonitorInterval = 5 * time.Second
)

// AuthConfig groups session and revalidation configuration.
type AuthConfig struct {
	// SessionTTL is how long a dashboard session lives before the user
	// must sign in again, regardless of backend validity.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"12h"`

	// MonitorEnabled toggles the background revalidation loop.
	MonitorEnabled bool `env:"SESSION_MONITOR_ENABLED" envDefault:"true"`

	// MonitorInterval is the delay between revalidation sweeps.
	MonitorInterval time.Duration `env:"SESSION_MONITOR_INTERVAL" envDefault:"30s"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL < minSessionTTL {
		a.SessionTTL = minSessionTTL
	}
	if a.MonitorInterval < minMonitorInterval {
		a.MonitorInterval = minMonitorInterval
	}
}
