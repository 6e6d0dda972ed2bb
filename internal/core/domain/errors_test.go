package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{
			name: "declined card",
			err:  &GatewayRejectionError{Err: &GatewayError{Code: "card_declined", Message: "Your card was declined."}},
			want: "Your card was declined.",
		},
		{
			name: "confirmation transport failure",
			err:  &GatewayRejectionError{Err: fmt.Errorf("confirm payment: %w", errors.New("dial tcp 10.0.0.7:443: i/o timeout"))},
			want: "payment could not be completed, please retry",
		},
		{
			name: "funding request failure",
			err:  &IntentCreationError{Err: errors.New("connection reset by peer")},
			want: "please verify your information and retry",
		},
		{
			name: "invalid field",
			err:  &ValidationError{Fields: []FieldError{{Field: "name", Message: "is required"}}},
			want: "name: is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
