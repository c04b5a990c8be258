package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cloudflare/critters/internal/dataset"
)

type Dataset struct {
	Kind  string `hcl:",label" json:"kind"`
	Path  string `hcl:"path,optional" json:"path,omitempty"`
	Sheet string `hcl:"sheet,optional" json:"sheet,omitempty"`
}

func (ds Dataset) validate() error {
	if _, err := dataset.ParseKind(ds.Kind); err != nil {
		return fmt.Errorf("invalid dataset block: %w", err)
	}

	if ds.Path == "" {
		if ds.Sheet != "" {
			return fmt.Errorf("dataset %q: sheet is set but path is empty", ds.Kind)
		}
		return nil
	}

	ext := strings.ToLower(filepath.Ext(ds.Path))
	if !slices.Contains(dataset.SupportedExtensions, ext) {
		return fmt.Errorf("dataset %q: unsupported file extension %q, expected one of %s",
			ds.Kind, ext, strings.Join(dataset.SupportedExtensions, ", "))
	}
	if ds.Sheet != "" && ext != ".xlsx" {
		return fmt.Errorf("dataset %q: sheet can only be set for .xlsx files", ds.Kind)
	}
	return nil
}
