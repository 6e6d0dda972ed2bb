package configs

import "time"

// Redis holds configuration for the cache in front of the platform read
// endpoints. The server must be reachable at startup; once running, a
// failing read or write falls through to the platform.
type Redis struct {
	// Address is a redis:// URL or a bare host:port.
	Address string `env:"ADDRESS" envDefault:"localhost:6379"`
	// TTL is how long a cached platform read stays fresh. Defaults to a
	// minute; checkout invalidates wallet and campaigns earlier.
	TTL time.Duration `env:"TTL" envDefault:"1m"`
}
