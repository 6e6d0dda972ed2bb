package configs

import "time"

// Gateway holds configuration for the card payment gateway. Leaving
// PublishableKey empty disables card payments: checkouts the wallet fully
// covers still work, the others fail with an initialization error.
type Gateway struct {
	// BaseURL is the gateway API root used for card confirmation.
	BaseURL string `env:"BASE_URL" envDefault:"https://api.stripe.com"`
	// PublishableKey identifies the merchant account. It is not a secret.
	PublishableKey string `env:"PUBLISHABLE_KEY"`
	// Timeout bounds one confirmation call. Defaults to 30 seconds.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
