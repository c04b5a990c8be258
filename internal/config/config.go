package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"

	"github.com/cloudflare/critters/internal/dataset"
)

const DefaultMostValuable = 10

type Config struct {
	Clock    *Clock    `hcl:"clock,block" json:"clock,omitempty"`
	Defaults *Defaults `hcl:"defaults,block" json:"defaults,omitempty"`
	Datasets []Dataset `hcl:"dataset,block" json:"dataset,omitempty"`
	dir      string
}

func (cfg Config) String() string {
	content, _ := json.MarshalIndent(cfg, "", "  ")
	return string(content)
}

// Sources returns where each configured kind should be loaded from, relative
// paths are resolved against the directory of the configuration file.
// Kinds without a dataset block are not included and use the embedded table.
func (cfg Config) Sources() map[dataset.Kind]dataset.Source {
	sources := map[dataset.Kind]dataset.Source{}
	for _, ds := range cfg.Datasets {
		kind, _ := dataset.ParseKind(ds.Kind)
		src := dataset.Source{Path: ds.Path, Sheet: ds.Sheet}
		if src.Path != "" && !filepath.IsAbs(src.Path) && cfg.dir != "" {
			src.Path = filepath.Join(cfg.dir, src.Path)
		}
		sources[kind] = src
	}
	return sources
}

func (cfg Config) Location() *time.Location {
	if cfg.Clock == nil {
		return time.Local
	}
	loc, _ := cfg.Clock.location()
	return loc
}

func (cfg Config) MostValuable() int {
	if cfg.Defaults == nil || cfg.Defaults.MostValuable == 0 {
		return DefaultMostValuable
	}
	return cfg.Defaults.MostValuable
}

func getContext() *hcl.EvalContext {
	vars := map[string]cty.Value{}
	for _, e := range os.Environ() {
		if i := strings.Index(e, "="); i >= 0 {
			vars[fmt.Sprintf("ENV_%s", e[:i])] = cty.StringVal(e[i+1:])
		}
	}
	return &hcl.EvalContext{Variables: vars}
}

func Load(path string, failOnMissing bool) (cfg Config, err error) {
	if _, err = os.Stat(path); err == nil || failOnMissing {
		slog.Info("Loading configuration file", slog.String("path", path))
		ectx := getContext()
		err = hclsimple.DecodeFile(path, ectx, &cfg)
		if err != nil {
			return cfg, err
		}
		cfg.dir = filepath.Dir(path)
	}

	if cfg.Clock == nil {
		cfg.Clock = &Clock{}
	}
	if err = cfg.Clock.validate(); err != nil {
		return cfg, err
	}

	if cfg.Defaults == nil {
		cfg.Defaults = &Defaults{}
	}
	if cfg.Defaults.MostValuable == 0 {
		cfg.Defaults.MostValuable = DefaultMostValuable
	}

	seen := map[dataset.Kind]string{}
	for _, ds := range cfg.Datasets {
		if err = ds.validate(); err != nil {
			return cfg, err
		}
		kind, _ := dataset.ParseKind(ds.Kind)
		if prev, ok := seen[kind]; ok {
			return cfg, fmt.Errorf("dataset %q is defined more than once, first block was %q", ds.Kind, prev)
		}
		seen[kind] = ds.Kind
	}

	return cfg, nil
}
