package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Victor-armando18/cafe-pricing/internal/domain"
	"github.com/Victor-armando18/cafe-pricing/internal/domain/engine"
	"github.com/Victor-armando18/cafe-pricing/internal/infrastructure/rules"
	"github.com/Victor-armando18/cafe-pricing/internal/infrastructure/yaml"
	"github.com/Victor-armando18/cafe-pricing/internal/interfaces"
)

// FSRuleLoader reads "<version>_guards.yaml" or "<version>_guards.json"
// from a file system, YAML first.
type FSRuleLoader struct {
	fsys fs.FS
}

// NewEmbeddedRuleLoader serves the rule packs compiled into the binary.
func NewEmbeddedRuleLoader() interfaces.RulePackLoader {
	return &FSRuleLoader{fsys: rules.FS}
}

// NewFileRuleLoader serves rule packs from dir on disk.
func NewFileRuleLoader(dir string) interfaces.RulePackLoader {
	return &FSRuleLoader{fsys: os.DirFS(dir)}
}

func (l *FSRuleLoader) Load(ctx context.Context, version string) (*engine.RulePack, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base := version + "_guards"
	for _, name := range []string{base + ".yaml", base + ".yml", base + ".json"} {
		data, err := fs.ReadFile(l.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read rule file %s: %w", name, err)
		}

		var pack engine.RulePack
		if filepath.Ext(name) == ".json" {
			err = json.Unmarshal(data, &pack)
		} else {
			pack, err = yaml.DecodeRulePack(data)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal rule pack %s: %w", name, err)
		}
		if pack.Version == "" {
			pack.Version = version
		}
		return &pack, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrRulePackNotFound, version)
}

// SingleFileRuleLoader serves one YAML pack file whatever its name. The
// requested version must match the version the file declares, if any.
type SingleFileRuleLoader struct {
	path string
}

func NewSingleFileRuleLoader(path string) interfaces.RulePackLoader {
	return &SingleFileRuleLoader{path: path}
}

func (l *SingleFileRuleLoader) Load(ctx context.Context, version string) (*engine.RulePack, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pack, err := yaml.LoadRulePack(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrRulePackNotFound, l.path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load rule pack %s: %w", l.path, err)
	}

	if pack.Version == "" {
		pack.Version = version
	}
	if pack.Version != version {
		return nil, fmt.Errorf("%w: %s holds %s, not %s", domain.ErrRulePackNotFound, l.path, pack.Version, version)
	}
	return &pack, nil
}
