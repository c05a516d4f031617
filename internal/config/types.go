package config

// FallbackStrategy selects how the generic reply is chosen.
type FallbackStrategy string

const (
	FallbackRoundRobin FallbackStrategy = "round_robin"
	FallbackRandom     FallbackStrategy = "random"
)

// LogFormat selects the log encoder.
type LogFormat string

const (
	LogConsole LogFormat = "console"
	LogJSON    LogFormat = "json"
)

// Config is the top-level supportbot configuration, corresponding to .supportbot.yml.
type Config struct {
	Host      string          `yaml:"host" koanf:"host"`
	Port      int             `yaml:"port" koanf:"port"`
	Data      DataConfig      `yaml:"data" koanf:"data"`
	Fallback  FallbackConfig  `yaml:"fallback" koanf:"fallback"`
	Log       LogConfig       `yaml:"log" koanf:"log"`
	CORS      CORSConfig      `yaml:"cors" koanf:"cors"`
	ChatLog   ChatLogConfig   `yaml:"chatlog" koanf:"chatlog"`
	RateLimit RateLimitConfig `yaml:"rate_limit" koanf:"rate_limit"`
	Bots      BotsConfig      `yaml:"bots" koanf:"bots"`
}

// DataConfig points at the static datasets loaded at startup.
type DataConfig struct {
	// FAQFiles are doublestar patterns; every match is merged into one catalog.
	FAQFiles []string `yaml:"faq_files" koanf:"faq_files"`
	// OrdersFile replaces the built-in sample orders when set.
	OrdersFile string `yaml:"orders_file" koanf:"orders_file"`
}

// FallbackConfig controls the generic reply used when nothing matches.
type FallbackConfig struct {
	Strategy FallbackStrategy `yaml:"strategy" koanf:"strategy"`
	Seed     uint64           `yaml:"seed" koanf:"seed"`
	Replies  []string         `yaml:"replies,omitempty" koanf:"replies"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}

// CORSConfig holds cross-origin settings for the HTTP API.
type CORSConfig struct {
	AllowAll       bool     `yaml:"allow_all" koanf:"allow_all"`
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
}

// ChatLogConfig controls the SQLite classification log.
type ChatLogConfig struct {
	Enabled bool   `yaml:"enabled" koanf:"enabled"`
	Path    string `yaml:"path" koanf:"path"`
}

// RateLimitConfig limits requests per client IP. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" koanf:"requests_per_second"`
	Burst             int     `yaml:"burst" koanf:"burst"`
}

// BotsConfig holds chat platform webhook settings.
type BotsConfig struct {
	SlackSigningSecret string `yaml:"slack_signing_secret" koanf:"slack_signing_secret"`
}
