package statement

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tristendillon/stitch/core/models"
)

// ErrUnknownStatementKind means the request named a kind outside the
// recognized set.
var ErrUnknownStatementKind = errors.New("unknown statement kind")

// Synthesize renders the final statement text for an already-relativized
// import path. For the import kinds, named exports win over the default
// export, and an empty request renders a namespace-style wildcard.
func Synthesize(relativePath string, kind models.StatementKind, namedExports []string, defaultExportName string) (string, error) {
	switch kind {
	case models.TypedImport:
		return fmt.Sprintf("import type %s from '%s';", importClause(namedExports, defaultExportName), relativePath), nil
	case models.ValueImport:
		return fmt.Sprintf("import %s from '%s';", importClause(namedExports, defaultExportName), relativePath), nil
	case models.CommonJSRequire:
		return requireStatement(relativePath, namedExports, defaultExportName), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatementKind, kind)
	}
}

func importClause(namedExports []string, defaultExportName string) string {
	switch {
	case len(namedExports) > 0:
		return "{ " + strings.Join(namedExports, ", ") + " }"
	case defaultExportName != "":
		return defaultExportName
	default:
		return "*"
	}
}

func requireStatement(relativePath string, namedExports []string, defaultExportName string) string {
	switch {
	case defaultExportName != "":
		return fmt.Sprintf("const %s = require('%s');", defaultExportName, relativePath)
	case len(namedExports) > 0:
		return fmt.Sprintf("const { %s } = require('%s');", strings.Join(namedExports, ", "), relativePath)
	default:
		return fmt.Sprintf("const module = require('%s');", relativePath)
	}
}
