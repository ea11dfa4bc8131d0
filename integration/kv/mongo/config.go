package mongo

import "time"

// Config holds MongoDB connection configuration.
type Config struct {
	ConnectionURL  string        `env:"MONGO_URL,required"`
	Database       string        `env:"MONGO_DB" envDefault:"tohekit"`
	Collection     string        `env:"MONGO_KV_COLLECTION" envDefault:"kv_entries"`
	ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"30s"`
}
