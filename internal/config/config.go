package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort           string   `env:"PORT" envDefault:"8000"`
	DatabaseURL        string   `env:"DATABASE_URL"`
	RedisAddr          string   `env:"REDIS_ADDR"`
	RedisPassword      string   `env:"REDIS_PASSWORD"`
	RedisDB            int      `env:"REDIS_DB" envDefault:"0"`
	RateLimitPerMinute int      `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	TrustedProxies     []string `env:"TRUSTED_PROXIES" envSeparator:","`
	RateLimitKeyPrefix string   `env:"RATE_LIMIT_KEY_PREFIX" envDefault:"gen:rl:"`
	ServiceVersion     string   `env:"SERVICE_VERSION" envDefault:"0.1.0"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// HistoryEnabled indica si hay base de datos para el historial de mensajes.
func (c *Config) HistoryEnabled() bool {
	return c != nil && c.DatabaseURL != ""
}
