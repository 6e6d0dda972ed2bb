package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"leadfunnel/internal/core/domain"
)

var maxPercentage = decimal.NewFromInt(100)

// DraftValidator checks a draft across every wizard step, not only the
// step the user is on.
type DraftValidator struct {
	v *validator.Validate
}

// NewDraftValidator returns a validator reporting fields by their JSON name.
func NewDraftValidator() *DraftValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &DraftValidator{v: v}
}

// Validate returns a *domain.ValidationError listing every problem, or nil.
// obj is the catalog entry for d.ObjectiveID, nil when it does not exist.
func (dv *DraftValidator) Validate(d domain.CampaignDraft, obj *domain.Objective) error {
	var fields []domain.FieldError
	if err := dv.v.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			fields = append(fields, domain.FieldError{Field: fieldPath(fe), Message: describe(fe)})
		}
	}

	if !d.Budget.IsPositive() {
		fields = append(fields, domain.FieldError{Field: "budget", Message: "must be greater than zero"})
	}
	switch d.CommissionModel {
	case domain.CommissionFixed:
		if !d.CommissionValue.IsPositive() {
			fields = append(fields, domain.FieldError{Field: "commission_value", Message: "must be greater than zero"})
		}
	case domain.CommissionPercentage:
		if !d.CommissionValue.IsPositive() || d.CommissionValue.GreaterThan(maxPercentage) {
			fields = append(fields, domain.FieldError{Field: "commission_value", Message: "must be between 0 and 100"})
		}
	}

	if d.ObjectiveID != "" && obj == nil {
		fields = append(fields, domain.FieldError{Field: "objective_id", Message: "unknown objective"})
	}
	if obj != nil {
		for _, name := range d.ValidationConditions {
			if !obj.HasCondition(name) {
				fields = append(fields, domain.FieldError{
					Field:   "validation_condition_selected",
					Message: fmt.Sprintf("unknown condition %q", name),
				})
			}
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gtfield":
		return "must be after the start date"
	case "gte":
		return "must be at least " + fe.Param()
	default:
		return "is invalid"
	}
}
