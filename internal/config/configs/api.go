package configs

import "time"

// API holds configuration for the client of the lead generation platform
// REST API. BaseURL is the root every endpoint path is appended to and
// Timeout bounds a single request including reading the body.
type API struct {
	// BaseURL must not end with a slash. Defaults to a local platform.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:9000/api"`
	// Timeout applies per request. Retries are left to the caller.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
	// Token seeds the token store. It is usually set later through the
	// session endpoint once the user has logged in.
	Token string `env:"TOKEN"`
}
