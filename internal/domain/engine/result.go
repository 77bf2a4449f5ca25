package engine

import "github.com/shopspring/decimal"

type ExecutionStep struct {
	Phase   PipelinePhase `json:"phase"`
	RuleID  string        `json:"ruleId,omitempty"`
	Message string        `json:"message"`
}

type LineQuote struct {
	Index int             `json:"index"`
	Kind  string          `json:"kind"`
	Item  string          `json:"item"`
	Price decimal.Decimal `json:"price"`
}

type OrderQuote struct {
	Lines        []LineQuote     `json:"lines"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	TaxRate      decimal.Decimal `json:"taxRate"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
	RulesVersion string          `json:"rulesVersion"`
	ExecutionLog []ExecutionStep `json:"executionLog"`
}
