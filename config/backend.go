package config

import "time"

const (
	minBackendTimeout = time.Second
	maxBackendTimeout = 2 * time.Minute
)

// BackendConfig contains catalog backend API configuration.
type BackendConfig struct {
	// BaseURL is the backend API root, e.g. "https://backend.example.com/api/v1".
	// Required: the dashboard proxies every catalog operation to it.
	BaseURL string `env:"BACKEND_BASE_URL"`

	// Timeout bounds each backend call.
	Timeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"15s"`

	// Identity extraction expressions (JMESPath) applied to the backend's
	// who-am-I response. Defaults handle the user_id/staff_id variance;
	// override when fronting a backend with a different shape.
	UserIDExpr   string `env:"BACKEND_USER_ID_EXPR"   envDefault:""`
	RoleExpr     string `env:"BACKEND_ROLE_EXPR"      envDefault:""`
	UsernameExpr string `env:"BACKEND_USERNAME_EXPR"  envDefault:""`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	if b.Timeout < minBackendTimeout {
		b.Timeout = minBackendTimeout
	}
	if b.Timeout > maxBackendTimeout {
		b.Timeout = maxBackendTimeout
	}
}
