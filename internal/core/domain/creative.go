package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// CreativeCode identifies a creative support format offered by the platform.
type CreativeCode string

const (
	CreativeBanner      CreativeCode = "banner"
	CreativeVideo       CreativeCode = "video"
	CreativeNative      CreativeCode = "native"
	CreativeEmail       CreativeCode = "email"
	CreativeLandingPage CreativeCode = "landing_page"
	CreativeSocialPost  CreativeCode = "social_post"
)

// ParseCreativeCode returns the code for s or ErrUnknownCreativeCode.
func ParseCreativeCode(s string) (CreativeCode, error) {
	switch c := CreativeCode(s); c {
	case CreativeBanner, CreativeVideo, CreativeNative, CreativeEmail, CreativeLandingPage, CreativeSocialPost:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCreativeCode, s)
	}
}

// UnmarshalJSON rejects codes outside the known set.
func (c *CreativeCode) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseCreativeCode(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// CreativeSupport is a creative format and its unit price. A zero price
// marks a format that is always part of the campaign.
type CreativeSupport struct {
	Code        CreativeCode    `json:"code"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// AlwaysIncluded reports whether the creative is bundled with every campaign.
func (c CreativeSupport) AlwaysIncluded() bool {
	return c.Price.IsZero()
}
