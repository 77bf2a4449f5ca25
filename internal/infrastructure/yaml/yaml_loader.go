package yaml

import (
	"os"

	"github.com/Victor-armando18/cafe-pricing/internal/domain/engine"

	"gopkg.in/yaml.v3"
)

func LoadRulePack(path string) (engine.RulePack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return engine.RulePack{}, err
	}
	return DecodeRulePack(data)
}

func DecodeRulePack(data []byte) (engine.RulePack, error) {
	var pack engine.RulePack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return engine.RulePack{}, err
	}
	return pack, nil
}
