package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/manytooh/catalog-admin/config"
	"github.com/manytooh/catalog-admin/internal/adapters/monitor"
)

// BuildSessionMonitor constructs the background revalidation runner. Returns
// nil when the monitor is disabled in configuration.
func BuildSessionMonitor(cfg config.AuthConfig, services ServiceContainer, logger *slog.Logger) (*monitor.Runner, error) {
	if !cfg.MonitorEnabled {
		if logger != nil {
			logger.Info("session monitor disabled")
		}
		return nil, nil
	}

	if services.Auth == nil {
		return nil, fmt.Errorf("build session monitor: auth service is required")
	}

	runner, err := monitor.NewRunner(monitor.RunnerOptions{
		Revalidator: services.Auth,
		Interval:    cfg.MonitorInterval,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build session monitor: %w", err)
	}
	return runner, nil
}
