package models

import (
	"github.com/angelmondragon/opusclip-demo/pkg/enums"
	"github.com/shopspring/decimal"
)

type PlanPrice struct {
	Monthly decimal.Decimal `json:"monthly"`
	Annual  decimal.Decimal `json:"annual"`
}

type Plan struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         PlanPrice `json:"price"`
	Features      []string  `json:"features"`
	IsRecommended bool      `json:"isRecommended"`
	IsTrial       bool      `json:"isTrial"`
	TrialDays     int       `json:"trialDays,omitempty"`
}

// AnnualSavings is what a year costs on monthly billing minus the annual price.
func (p Plan) AnnualSavings() decimal.Decimal {
	return p.Price.Monthly.Mul(decimal.NewFromInt(12)).Sub(p.Price.Annual)
}

type Logo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Src    string `json:"src"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

type FeatureCard struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type WorkflowItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Completed   bool   `json:"completed"`
}

type SocialAccount struct {
	ID         string               `json:"id"`
	Platform   enums.SocialPlatform `json:"platform"`
	Username   string               `json:"username"`
	Connected  bool                 `json:"connected"`
	ProfileURL string               `json:"profileUrl,omitempty"`
}
