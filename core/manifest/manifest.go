// Package manifest reads the imports.yaml request list the generate command
// renders.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/tristendillon/stitch/core/models"
	"gopkg.in/yaml.v3"
)

// Entry is one statement request as written in the manifest file.
type Entry struct {
	Source  string   `yaml:"source"`
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type"`
	Kind    string   `yaml:"kind"`
	Named   []string `yaml:"named"`
	Default string   `yaml:"default"`
}

type Manifest struct {
	Imports []Entry `yaml:"imports"`
}

// Load parses the manifest at path. Entries missing required fields are
// dropped with their positions reported, so one bad entry does not abort
// the batch.
func Load(path string) (*Manifest, []error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, nil, fmt.Errorf("failed to parse manifest yaml: %w", err)
	}

	var bad []error
	m.Imports = lo.Filter(m.Imports, func(e Entry, i int) bool {
		if err := e.validate(); err != nil {
			bad = append(bad, fmt.Errorf("imports[%d]: %w", i, err))
			return false
		}
		return true
	})

	return &m, bad, nil
}

func (e Entry) validate() error {
	if strings.TrimSpace(e.Source) == "" {
		return errors.New("missing source")
	}
	if strings.TrimSpace(e.Name) == "" {
		return errors.New("missing name")
	}
	if strings.TrimSpace(e.Kind) == "" {
		return errors.New("missing kind")
	}
	return nil
}

// Request converts the manifest entry into the resolver's request value.
func (e Entry) Request() models.StatementRequest {
	return models.StatementRequest{
		TargetDescriptor: models.TargetDescriptor{
			SourceFilePath: e.Source,
			TargetName:     e.Name,
			TargetType:     e.Type,
		},
		Kind:              models.StatementKind(e.Kind),
		NamedExports:      e.Named,
		DefaultExportName: e.Default,
	}
}
