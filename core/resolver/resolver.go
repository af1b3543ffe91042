// Package resolver is the public surface of the import computation: the
// layout, relativize, and synthesize stages composed into two operations.
// Every call is independent; nothing is cached or shared between calls.
package resolver

import (
	"github.com/tristendillon/stitch/core/layout"
	"github.com/tristendillon/stitch/core/logger"
	"github.com/tristendillon/stitch/core/models"
	"github.com/tristendillon/stitch/core/relpath"
	"github.com/tristendillon/stitch/core/statement"
)

// Resolve computes the relative import path from the descriptor's source
// file to the target the policy places. Failures carry one of the typed
// errors from the layout and relpath packages.
func Resolve(descriptor models.TargetDescriptor, policy models.LayoutPolicy) (string, error) {
	target, err := layout.ResolveTargetPath(descriptor, policy)
	if err != nil {
		return "", err
	}
	return relpath.Relativize(descriptor.SourceFilePath, target, policy.BaseSourceDir)
}

// Generate resolves the import path and renders the requested statement.
// Synthesis is never attempted against a failed resolution.
func Generate(request models.StatementRequest, policy models.LayoutPolicy) (string, error) {
	rel, err := Resolve(request.TargetDescriptor, policy)
	if err != nil {
		return "", err
	}
	return statement.Synthesize(rel, request.Kind, request.NamedExports, request.DefaultExportName)
}

// ResolveImportPath is the soft-failure form of Resolve: any failure is
// logged and collapses to an empty string, so generation pipelines can skip
// the entry and keep going.
func ResolveImportPath(descriptor models.TargetDescriptor, policy models.LayoutPolicy) string {
	rel, err := Resolve(descriptor, policy)
	if err != nil {
		logger.Warn("Could not resolve import path for %q: %v", descriptor.TargetName, err)
		return ""
	}
	return rel
}

// GenerateImportStatement is the soft-failure form of Generate.
func GenerateImportStatement(request models.StatementRequest, policy models.LayoutPolicy) string {
	stmt, err := Generate(request, policy)
	if err != nil {
		logger.Warn("Could not generate import statement for %q: %v", request.TargetName, err)
		return ""
	}
	return stmt
}
