package engine

type PipelinePhase string

const (
	Guards   PipelinePhase = "guards"
	Baseline PipelinePhase = "baseline"
	Taxes    PipelinePhase = "taxes"
	Totals   PipelinePhase = "totals"
)
