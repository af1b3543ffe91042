package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tristendillon/stitch/core/logger"
	"github.com/tristendillon/stitch/core/models"
	"github.com/tristendillon/stitch/core/naming"
	"github.com/tristendillon/stitch/core/pathtemplate"
	"gopkg.in/yaml.v3"
)

const FileName = "stitch.yaml"

type Config struct {
	AppName  string   `yaml:"app_name"`
	Layout   Layout   `yaml:"layout"`
	Generate Generate `yaml:"generate"`
}

type Layout struct {
	Structure       string            `yaml:"structure"`
	TypeDirectories map[string]string `yaml:"type_directories"`
	FileExtension   string            `yaml:"file_extension"`
	OutputDir       string            `yaml:"output_dir"`
	SourceDir       string            `yaml:"source_dir"`
	Naming          string            `yaml:"naming_convention"`
	// CustomPathTemplate is only consulted when Structure is "custom".
	CustomPathTemplate string `yaml:"custom_path_template"`
}

type Generate struct {
	Manifest string `yaml:"manifest"`
	// Output is the file the rendered statements are written to.
	// Empty means stdout.
	Output string `yaml:"output"`
}

func Default() *Config {
	return &Config{
		AppName: "stitch",
		Layout: Layout{
			Structure:     string(models.StructureNested),
			FileExtension: ".ts",
			OutputDir:     "./src/generated",
			SourceDir:     "./src",
		},
		Generate: Generate{
			Manifest: "imports.yaml",
		},
	}
}

func Load() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working dir: %w", err)
	}
	return LoadFrom(wd)
}

func LoadFrom(dir string) (*Config, error) {
	filePath := filepath.Join(dir, FileName)
	if _, err := os.Stat(filePath); err != nil {
		logger.Debug("No config file found, using default config")
		return Default(), nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	logger.Debug("Config file found: %s", filePath)
	logger.Debug("Config: %+v", cfg)

	return cfg, nil
}

// Policy converts the layout section into the value the resolver consumes,
// compiling the custom path template into a builder when one is configured.
func (c *Config) Policy() (models.LayoutPolicy, error) {
	policy := models.LayoutPolicy{
		OutputStructure:  models.OutputStructure(c.Layout.Structure),
		TypeDirectories:  c.Layout.TypeDirectories,
		FileExtension:    c.Layout.FileExtension,
		BaseOutputDir:    c.Layout.OutputDir,
		NamingConvention: naming.Convention(c.Layout.Naming),
		BaseSourceDir:    c.Layout.SourceDir,
	}

	if c.Layout.CustomPathTemplate != "" {
		builder, err := pathtemplate.Compile(c.Layout.CustomPathTemplate)
		if err != nil {
			return models.LayoutPolicy{}, err
		}
		policy.CustomPathBuilder = builder
	}

	return policy, nil
}
