// Package config loads environment variables into typed configuration
// structs. Parsing goes through the caarlos0/env struct tags; a .env file,
// when present, is read once before the first parse. Each configuration
// type is loaded once per process and cached for subsequent calls.
//
// Basic usage:
//
//	import "github.com/toheco/tohekit/core/config"
//
//	type APIConfig struct {
//		BaseURL string        `env:"API_BASE_URL,required"`
//		Timeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
//	}
//
//	func main() {
//		var cfg APIConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// Each configuration type is loaded only once per process lifetime; later
// Load calls for the same type return the cached value.
package config
