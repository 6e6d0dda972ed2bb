package configs

import "time"

// HTTP holds configuration for the dashboard backend server. The server
// binds every interface on Port; ShutdownTimeout is how long in-flight
// requests get to finish after a termination signal.
type HTTP struct {
	// Port is the TCP port the server listens on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ShutdownTimeout is passed to http.Server.Shutdown. Defaults to 5s.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
