package pathtemplate

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/tristendillon/stitch/core/logger"
	"github.com/tristendillon/stitch/core/models"
)

// vars is the data a custom path template renders against.
type vars struct {
	// Type is the raw target type, Name the already-formatted target name.
	Type string
	Name string
}

// Compile parses a custom path template like "{{.Type}}/{{.Name}}.schema.ts"
// into a PathBuilder. The template is probed once at compile time so a bad
// field reference fails here instead of mid-generation.
func Compile(text string) (models.PathBuilder, error) {
	tmpl, err := template.New("custom_path").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse custom path template: %w", err)
	}

	var probe strings.Builder
	if err := tmpl.Execute(&probe, vars{Type: "type", Name: "name"}); err != nil {
		return nil, fmt.Errorf("failed to execute custom path template: %w", err)
	}

	return func(targetType, formattedName string) string {
		var b strings.Builder
		if err := tmpl.Execute(&b, vars{Type: targetType, Name: formattedName}); err != nil {
			// Can only happen for templates that pass the probe but
			// fail on real data, e.g. via a template func.
			logger.Error("Custom path template failed for %s/%s: %v", targetType, formattedName, err)
		}
		return b.String()
	}, nil
}
