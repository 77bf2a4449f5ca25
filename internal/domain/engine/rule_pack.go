package engine

// RulePack is a versioned set of rules, as stored in the rule files.
type RulePack struct {
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Rules       []Rule `json:"rules" yaml:"rules"`
}

type Rule struct {
	ID           string         `json:"id" yaml:"id"`
	Phase        PipelinePhase  `json:"phase" yaml:"phase"`
	Logic        map[string]any `json:"logic" yaml:"logic"`
	ErrorMessage string         `json:"error_message,omitempty" yaml:"error_message,omitempty"`
}

// RulesFor keeps the pack order of the rules in phase.
func (p RulePack) RulesFor(phase PipelinePhase) []Rule {
	var f []Rule
	for _, r := range p.Rules {
		if r.Phase == phase {
			f = append(f, r)
		}
	}
	return f
}
