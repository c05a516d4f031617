package config

// DefaultPath is the config file used when --config is not given.
const DefaultPath = ".supportbot.yml"

// DefaultOrigins are the CORS origins allowed outside of allow_all mode.
var DefaultOrigins = []string{
	"http://localhost:*",
	"http://127.0.0.1:*",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Host: "0.0.0.0",
		Port: 5000,
		Data: DataConfig{
			FAQFiles: []string{"data/faqs.json"},
		},
		Fallback: FallbackConfig{
			Strategy: FallbackRoundRobin,
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogConsole,
		},
		CORS: CORSConfig{
			AllowAll:       true,
			AllowedOrigins: DefaultOrigins,
		},
		ChatLog: ChatLogConfig{
			Enabled: false,
			Path:    "data/chatlog.db",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 0,
			Burst:             20,
		},
	}
}
