package cart

// Config holds cart store configuration. The defaults match the key layout
// the storefront has always persisted, including the pre-namespacing legacy
// key that migration consumes.
type Config struct {
	// KeyPrefix prefixes the resolved identity to form the namespaced
	// storage key.
	KeyPrefix string `env:"CART_KEY_PREFIX" envDefault:"tohe_cart_"`
	// GuestKey is the fixed namespace for anonymous profiles.
	GuestKey string `env:"CART_GUEST_KEY" envDefault:"tohe_cart_guest"`
	// LegacyKey is the pre-namespacing cart slot, read once and migrated.
	LegacyKey string `env:"CART_LEGACY_KEY" envDefault:"tohe_cart"`
}

// DefaultConfig returns the storefront's persisted key layout.
func DefaultConfig() Config {
	return Config{
		KeyPrefix: "tohe_cart_",
		GuestKey:  "tohe_cart_guest",
		LegacyKey: "tohe_cart",
	}
}

// Option is a functional option for configuring the cart store.
type Option func(*Config)

// WithKeyPrefix overrides the namespaced key prefix. Empty values are ignored.
func WithKeyPrefix(prefix string) Option {
	return func(c *Config) {
		if prefix != "" {
			c.KeyPrefix = prefix
		}
	}
}

// WithGuestKey overrides the guest namespace key. Empty values are ignored.
func WithGuestKey(key string) Option {
	return func(c *Config) {
		if key != "" {
			c.GuestKey = key
		}
	}
}

// WithLegacyKey overrides the legacy cart key. Empty values are ignored.
func WithLegacyKey(key string) Option {
	return func(c *Config) {
		if key != "" {
			c.LegacyKey = key
		}
	}
}
