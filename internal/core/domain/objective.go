package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// ObjectiveCode identifies the kind of result an advertiser pays for. The
// set is closed: codes received from the catalog are checked against it when
// decoded, so the rest of the application can switch on them exhaustively.
type ObjectiveCode string

const (
	ObjectiveLeadGeneration ObjectiveCode = "lead_generation"
	ObjectiveQualification  ObjectiveCode = "qualification"
	ObjectiveAppointment    ObjectiveCode = "appointment"
	ObjectiveSale           ObjectiveCode = "sale"
)

// ParseObjectiveCode returns the code for s or ErrUnknownObjectiveCode.
func ParseObjectiveCode(s string) (ObjectiveCode, error) {
	switch c := ObjectiveCode(s); c {
	case ObjectiveLeadGeneration, ObjectiveQualification, ObjectiveAppointment, ObjectiveSale:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownObjectiveCode, s)
	}
}

// UnmarshalJSON rejects codes outside the known set.
func (c *ObjectiveCode) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseObjectiveCode(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ValidationCondition is a rule a lead must satisfy to be billable, e.g. a
// verified phone number. Advertisers pick a subset per campaign.
type ValidationCondition struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Objective is immutable reference data from the objective catalog.
type Objective struct {
	ID                   string                `json:"id"`
	Code                 ObjectiveCode         `json:"code"`
	Name                 string                `json:"name"`
	PricePerLead         decimal.Decimal       `json:"price_per_lead"`
	ValidationConditions []ValidationCondition `json:"validation_conditions"`
}

// HasCondition reports whether name is one of the objective's conditions.
func (o Objective) HasCondition(name string) bool {
	for _, vc := range o.ValidationConditions {
		if vc.Name == name {
			return true
		}
	}
	return false
}
