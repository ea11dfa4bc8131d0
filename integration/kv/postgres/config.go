package postgres

import "time"

// Config holds PostgreSQL connection configuration.
type Config struct {
	ConnectionString string        `env:"PG_CONN_URL,required"`
	MaxOpenConns     int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
	RetryAttempts    int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval    time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout   time.Duration `env:"PG_CONNECT_TIMEOUT" envDefault:"30s"`
}
