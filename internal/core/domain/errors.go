package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownObjectiveCode = errors.New("unknown objective code")
	ErrUnknownCreativeCode  = errors.New("unknown creative code")
	ErrObjectiveNotFound    = errors.New("objective not found")
	ErrDraftNotFound        = errors.New("draft not found")
	ErrDraftLocked          = errors.New("draft is being submitted")
	ErrCheckoutInFlight     = errors.New("checkout already in progress")
	ErrCheckoutCompleted    = errors.New("checkout already completed")
	ErrRechargeInFlight     = errors.New("recharge already in progress")
	ErrInvalidAmount        = errors.New("amount must be greater than zero")

	// ErrIntentInconsistent is returned when the platform answers a funding
	// request with neither a client secret nor a campaign id.
	ErrIntentInconsistent = errors.New("please verify your information and retry")

	// ErrPaymentIncomplete is shown when the card confirmation failed without
	// a gateway-provided message, for example on a network error.
	ErrPaymentIncomplete = errors.New("payment could not be completed, please retry")
)

// FieldError describes one invalid draft field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every invalid field of a draft or payment form. It
// never originates from the network. Message, when set, is shown instead of
// the field list (payment form errors keep the gateway's wording).
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Field == "" {
			parts = append(parts, f.Message)
			continue
		}
		parts = append(parts, f.Field+": "+f.Message)
	}
	return strings.Join(parts, "; ")
}

// GatewayInitializationError means the payment gateway is not usable for
// this attempt, typically because it was never configured.
type GatewayInitializationError struct {
	Reason string
}

func (e *GatewayInitializationError) Error() string {
	return "payment gateway not ready: " + e.Reason
}

// GatewayError is an error reported by the card payment gateway. Message is
// meant to be shown to the user as is.
type GatewayError struct {
	Code    string
	Message string
}

func (e *GatewayError) Error() string {
	return e.Message
}

// IntentCreationError wraps any failure of the funding request, including
// transport failures and inconsistent responses.
type IntentCreationError struct {
	Err error
}

func (e *IntentCreationError) Error() string {
	return fmt.Sprintf("create payment intent: %v", e.Err)
}

func (e *IntentCreationError) Unwrap() error { return e.Err }

// GatewayRejectionError is a declined or failed card confirmation.
type GatewayRejectionError struct {
	Err error
}

func (e *GatewayRejectionError) Error() string {
	return e.Err.Error()
}

func (e *GatewayRejectionError) Unwrap() error { return e.Err }

// APIError is a non-2xx answer from the platform REST API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("platform api: status %d: %s", e.Status, e.Message)
}

// UserMessage returns the text to show for err on the payment step.
func UserMessage(err error) string {
	var (
		gwErr  *GatewayError
		valErr *ValidationError
		icErr  *IntentCreationError
		rejErr *GatewayRejectionError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &gwErr):
		return gwErr.Message
	case errors.As(err, &valErr):
		return valErr.Error()
	case errors.As(err, &icErr):
		return ErrIntentInconsistent.Error()
	case errors.As(err, &rejErr):
		return ErrPaymentIncomplete.Error()
	default:
		return err.Error()
	}
}
