package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`

	// InternalToken authenticates service-to-service calls on the
	// /internal routes. Empty disables those routes entirely.
	InternalToken string `mapstructure:"internal_token"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// PushConfig selects the push delivery backend. Provider is one of
// "noop" or "gateway"; the gateway provider posts JSON payloads to
// GatewayURL authenticated with GatewayToken.
type PushConfig struct {
	Provider       string `mapstructure:"provider"`
	GatewayURL     string `mapstructure:"gateway_url"`
	GatewayToken   string `mapstructure:"gateway_token"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

func (p *PushConfig) Timeout() time.Duration {
	if p.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(p.TimeoutSeconds) * time.Second
}

// NotificationConfig holds tunables for the delivery pipeline that are
// collaborator concerns rather than decision-engine constants.
type NotificationConfig struct {
	BatchWindowMinutes       int `mapstructure:"batch_window_minutes"`
	DeliveryLogRetentionDays int `mapstructure:"delivery_log_retention_days"`
}

func (n *NotificationConfig) BatchWindow() time.Duration {
	if n.BatchWindowMinutes <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(n.BatchWindowMinutes) * time.Minute
}

func (n *NotificationConfig) DeliveryLogRetention() time.Duration {
	days := n.DeliveryLogRetentionDays
	if days <= 0 {
		days = 90
	}
	return time.Duration(days) * 24 * time.Hour
}

type EntitlementConfig struct {
	GracePeriodDays int `mapstructure:"grace_period_days"`
}

func (e *EntitlementConfig) GracePeriod() time.Duration {
	days := e.GracePeriodDays
	if days <= 0 {
		days = 7
	}
	return time.Duration(days) * 24 * time.Hour
}
