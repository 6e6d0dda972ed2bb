package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// CommissionModel is how the publisher commission is expressed.
type CommissionModel string

const (
	CommissionFixed      CommissionModel = "fixed"
	CommissionPercentage CommissionModel = "percentage"
)

// Campaign is a persisted campaign as listed by the platform.
type Campaign struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Status         string          `json:"status"` // draft, active, paused, ended
	ObjectiveID    string          `json:"objective_id"`
	Budget         decimal.Decimal `json:"budget"`
	EstimatedLeads int             `json:"estimated_leads"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Attachment is an asset uploaded with the campaign (logo, brief, visuals).
type Attachment struct {
	Filename    string `json:"filename" validate:"required,max=255"`
	ContentType string `json:"content_type" validate:"required"`
	Data        []byte `json:"data" validate:"required"`
}

// CampaignDraft is the campaign being configured across the wizard steps.
// Money amounts use decimal to avoid binary rounding in totals.
type CampaignDraft struct {
	Name                 string          `json:"name" validate:"required,max=255"`
	Description          string          `json:"description" validate:"required,max=5000"`
	Category             string          `json:"category" validate:"required,max=255"`
	StartDate            time.Time       `json:"start_date" validate:"required"`
	EndDate              time.Time       `json:"end_date" validate:"required,gtfield=StartDate"`
	ObjectiveID          string          `json:"objective_id" validate:"required"`
	CommissionModel      CommissionModel `json:"commission_model" validate:"required,oneof=fixed percentage"`
	CommissionValue      decimal.Decimal `json:"commission_value"`
	Budget               decimal.Decimal `json:"budget"`
	EstimatedLeads       int             `json:"estimated_leads" validate:"gte=0"`
	SelectedCreatives    []CreativeCode  `json:"selected_creative_codes"`
	ValidationConditions []string        `json:"validation_condition_selected"`
	Attachments          []Attachment    `json:"attachments" validate:"dive"`
}

// SelectObjective switches the draft to o. Fields whose meaning depends on
// the objective are cleared so no lead price assumption survives the switch.
func (d *CampaignDraft) SelectObjective(o Objective) {
	d.ObjectiveID = o.ID
	d.CommissionModel = ""
	d.CommissionValue = decimal.Zero
	d.Budget = decimal.Zero
	d.EstimatedLeads = 0
	d.ValidationConditions = nil
}

// HasCreative reports whether code is selected.
func (d *CampaignDraft) HasCreative(code CreativeCode) bool {
	return slices.Contains(d.SelectedCreatives, code)
}

// SetCreatives replaces the selection, dropping duplicates.
func (d *CampaignDraft) SetCreatives(codes []CreativeCode) {
	out := make([]CreativeCode, 0, len(codes))
	for _, c := range codes {
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	slices.Sort(out)
	d.SelectedCreatives = out
}

// Clone returns a deep copy so a submitted snapshot cannot be mutated by
// later wizard edits.
func (d CampaignDraft) Clone() CampaignDraft {
	d.SelectedCreatives = slices.Clone(d.SelectedCreatives)
	d.ValidationConditions = slices.Clone(d.ValidationConditions)
	if d.Attachments != nil {
		atts := make([]Attachment, len(d.Attachments))
		for i, a := range d.Attachments {
			a.Data = slices.Clone(a.Data)
			atts[i] = a
		}
		d.Attachments = atts
	}
	return d
}
