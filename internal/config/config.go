package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"leadfunnel/internal/config/configs"
)

// Config aggregates all configuration sections of the dashboard backend.
// Each nested struct is parsed from the environment under its envPrefix,
// so HTTP_PORT sets HTTP.Port and PSQL_ADDRESS sets Psql.Addr. Defaults
// live on the section types in the configs package.
type Config struct {
	// Env names the deployment environment (prod, dev). Only logged.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP    configs.HTTP     `envPrefix:"HTTP_"`
	Log     configs.Logger   `envPrefix:"LOG_"`
	Psql    configs.Postgres `envPrefix:"PSQL_"`
	API     configs.API      `envPrefix:"API_"`
	Gateway configs.Gateway  `envPrefix:"GATEWAY_"`
	Redis   configs.Redis    `envPrefix:"REDIS_"`
}

// Load reads the given dotenv files, or .env from the working directory
// when none are given, and then parses the environment into a Config.
// Missing files are skipped. Variables already set in the environment win
// over the files because godotenv never overrides them. A malformed file
// or an unparsable value is returned as an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
