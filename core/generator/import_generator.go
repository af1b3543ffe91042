package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/tristendillon/stitch/core/config"
	"github.com/tristendillon/stitch/core/logger"
	"github.com/tristendillon/stitch/core/manifest"
	"github.com/tristendillon/stitch/core/resolver"
)

// ImportGenerator renders every manifest entry through the resolver and
// writes the statement block to the configured destination.
type ImportGenerator struct {
	wd string
}

func NewImportGenerator(wd string) *ImportGenerator {
	return &ImportGenerator{wd: wd}
}

func (ig *ImportGenerator) Generate() error {
	cfg, err := config.LoadFrom(ig.wd)
	if err != nil {
		return fmt.Errorf("failed to get config: %w", err)
	}

	policy, err := cfg.Policy()
	if err != nil {
		return fmt.Errorf("failed to build layout policy: %w", err)
	}

	manifestPath := cfg.Generate.Manifest
	if !filepath.IsAbs(manifestPath) {
		manifestPath = filepath.Join(ig.wd, manifestPath)
	}

	m, bad, err := manifest.Load(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}
	for _, entryErr := range bad {
		logger.Warn("Skipping invalid manifest entry: %v", entryErr)
	}

	statements := lo.FilterMap(m.Imports, func(e manifest.Entry, _ int) (string, bool) {
		stmt := resolver.GenerateImportStatement(e.Request(), policy)
		return stmt, stmt != ""
	})
	skipped := len(m.Imports) - len(statements)

	if err := ig.write(cfg, statements); err != nil {
		return err
	}

	logger.Info("Generated %d import statements (%d skipped)", len(statements), skipped)
	return nil
}

func (ig *ImportGenerator) write(cfg *config.Config, statements []string) error {
	block := strings.Join(statements, "\n")
	if block != "" {
		block += "\n"
	}

	if cfg.Generate.Output == "" {
		fmt.Print(block)
		return nil
	}

	outPath := cfg.Generate.Output
	if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(ig.wd, outPath)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outPath, []byte(block), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outPath, err)
	}
	logger.Debug("Wrote statements to %s", outPath)
	return nil
}
