package dataset

import (
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed data/*.yaml
var embedded embed.FS

var embeddedFiles = map[Kind]string{
	Fish: "data/fish.yaml",
	Bugs: "data/bugs.yaml",
}

// Source tells where to read a table from, an empty Path selects the table
// bundled with the binary.
type Source struct {
	Path  string `json:"path,omitempty"`
	Sheet string `json:"sheet,omitempty"`
}

func (s Source) String() string {
	if s.Path == "" {
		return "embedded"
	}
	return s.Path
}

var SupportedExtensions = []string{".yaml", ".yml", ".csv", ".xlsx"}

func Load(kind Kind, src Source) (*Table, error) {
	start := time.Now()
	slog.Info("Loading dataset for the first time", slog.String("kind", kind.String()), slog.String("path", src.String()))

	rows, err := readRows(kind, src)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s dataset: %w", kind, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("failed to load %s dataset: %s has no rows", kind, src)
	}

	t := &Table{Kind: kind, Path: src.String(), Rows: rows}
	slog.Debug(
		"Dataset loaded",
		slog.String("kind", kind.String()),
		slog.Int("rows", len(rows)),
		slog.Int("critters", len(t.Names())),
		slog.String("xxhash", fmt.Sprintf("%016x", t.Fingerprint())),
		slog.Duration("took", time.Since(start)),
	)
	return t, nil
}

func readRows(kind Kind, src Source) ([]Row, error) {
	if src.Path == "" {
		name, ok := embeddedFiles[kind]
		if !ok {
			return nil, fmt.Errorf("no embedded table for %s", kind)
		}
		content, err := embedded.ReadFile(name)
		if err != nil {
			return nil, err
		}
		return decodeCompact(name, content)
	}

	switch strings.ToLower(filepath.Ext(src.Path)) {
	case ".yaml", ".yml":
		content, err := os.ReadFile(src.Path)
		if err != nil {
			return nil, err
		}
		return decodeCompact(src.Path, content)
	case ".csv":
		f, err := os.Open(src.Path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return decodeCSV(src.Path, f)
	case ".xlsx":
		return decodeXLSX(src.Path, src.Sheet)
	default:
		return nil, fmt.Errorf("unsupported file type %q, expected one of %s", filepath.Ext(src.Path), strings.Join(SupportedExtensions, ", "))
	}
}
