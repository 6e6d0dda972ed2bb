package usecase

import (
	"bytes"
	"io"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"leadfunnel/internal/core/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func leadObjective() domain.Objective {
	return domain.Objective{
		ID:           "obj-lead",
		Code:         domain.ObjectiveLeadGeneration,
		Name:         "Lead generation",
		PricePerLead: dec("50"),
		ValidationConditions: []domain.ValidationCondition{
			{Name: "phone_verified", Label: "Phone verified"},
			{Name: "email_verified", Label: "Email verified"},
		},
	}
}

func qualificationObjective() domain.Objective {
	return domain.Objective{
		ID:           "obj-qual",
		Code:         domain.ObjectiveQualification,
		Name:         "Qualification",
		PricePerLead: decimal.Zero,
	}
}

func creativeCatalog() []domain.CreativeSupport {
	return []domain.CreativeSupport{
		{Code: domain.CreativeBanner, Description: "Banner", Price: dec("30")},
		{Code: domain.CreativeVideo, Description: "Video", Price: dec("120")},
		{Code: domain.CreativeLandingPage, Description: "Landing page", Price: decimal.Zero},
	}
}

func validDraft() domain.CampaignDraft {
	start := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	return domain.CampaignDraft{
		Name:                 "Winter leads",
		Description:          "Home insurance quotes",
		Category:             "insurance",
		StartDate:            start,
		EndDate:              start.AddDate(0, 1, 0),
		ObjectiveID:          "obj-lead",
		CommissionModel:      domain.CommissionFixed,
		CommissionValue:      dec("5"),
		Budget:               dec("500"),
		EstimatedLeads:       10,
		SelectedCreatives:    []domain.CreativeCode{domain.CreativeBanner},
		ValidationConditions: []string{"phone_verified"},
	}
}

func testCard() domain.Card {
	return domain.Card{Number: "4242424242424242", ExpMonth: 12, ExpYear: 2030, CVC: "123"}
}
