package session

// Config holds session store configuration.
type Config struct {
	// TokenKey is the storage key the bearer token is persisted under.
	TokenKey string `env:"SESSION_TOKEN_KEY" envDefault:"token"`
}

// DefaultConfig returns a Config matching the storefront's persisted layout.
func DefaultConfig() Config {
	return Config{TokenKey: "token"}
}

// Option is a functional option for configuring the session store.
type Option func(*Config)

// WithTokenKey overrides the storage key for the bearer token.
// Empty values are ignored.
func WithTokenKey(key string) Option {
	return func(c *Config) {
		if key != "" {
			c.TokenKey = key
		}
	}
}
