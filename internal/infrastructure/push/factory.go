package push

import (
	"fmt"

	"github.com/huddle-inc/huddle/internal/domain/notification"
	"github.com/huddle-inc/huddle/internal/shared/config"
	"github.com/huddle-inc/huddle/internal/shared/logger"
)

// NewProvider builds the push provider named by the configuration.
func NewProvider(cfg *config.PushConfig, log logger.Interface) (notification.PushProvider, error) {
	switch cfg.Provider {
	case "", "noop":
		return NewNoopProvider(log), nil
	case "gateway":
		if cfg.GatewayURL == "" {
			return nil, fmt.Errorf("push provider %q requires gateway_url", cfg.Provider)
		}
		return NewGatewayProvider(cfg, log), nil
	default:
		return nil, fmt.Errorf("unknown push provider: %s", cfg.Provider)
	}
}
