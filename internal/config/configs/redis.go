package configs

// Redis holds configuration for the Redis connection backing the
// campaign registry. Addr is a host:port pair; DB selects the logical
// database.
type Redis struct {
	Addr     string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB" envDefault:"0"`
}
