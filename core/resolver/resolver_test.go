package resolver_test

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tristendillon/stitch/core/logger"
	"github.com/tristendillon/stitch/core/models"
	"github.com/tristendillon/stitch/core/naming"
	"github.com/tristendillon/stitch/core/resolver"
)

func TestMain(m *testing.M) {
	// Failure diagnostics are expected output in these tests.
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func flatPolicy() models.LayoutPolicy {
	return models.LayoutPolicy{
		OutputStructure:  models.StructureFlat,
		FileExtension:    ".ts",
		BaseOutputDir:    "./src/generated",
		BaseSourceDir:    "./src",
		NamingConvention: naming.PascalCase,
	}
}

func userDescriptor() models.TargetDescriptor {
	return models.TargetDescriptor{
		SourceFilePath: "./app/components/UserComponent.ts",
		TargetName:     "User",
		TargetType:     "model",
	}
}

func TestResolveFlat(t *testing.T) {
	got, err := resolver.Resolve(userDescriptor(), flatPolicy())
	require.NoError(t, err)
	assert.Equal(t, "../../generated/User.ts", got)
}

func TestResolveNested(t *testing.T) {
	policy := flatPolicy()
	policy.OutputStructure = models.StructureNested
	policy.TypeDirectories = map[string]string{"model": "models"}

	got, err := resolver.Resolve(userDescriptor(), policy)
	require.NoError(t, err)
	assert.Equal(t, "../../generated/models/User.ts", got)
}

func TestResolveKebabFilename(t *testing.T) {
	policy := flatPolicy()
	policy.NamingConvention = naming.KebabCase

	got, err := resolver.Resolve(models.TargetDescriptor{
		SourceFilePath: "./index.ts",
		TargetName:     "orderItem",
		TargetType:     "model",
	}, policy)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(got, "/order-item.ts"), "got %q", got)
}

func TestResolveIsDeterministic(t *testing.T) {
	first, err := resolver.Resolve(userDescriptor(), flatPolicy())
	require.NoError(t, err)
	second, err := resolver.Resolve(userDescriptor(), flatPolicy())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolveImportPathPrefixInvariant(t *testing.T) {
	policies := []models.LayoutPolicy{
		flatPolicy(),
		{
			OutputStructure: models.StructureByType,
			FileExtension:   ".zod.ts",
			BaseOutputDir:   "out",
		},
		{
			OutputStructure:   models.StructureCustom,
			BaseOutputDir:     "gen",
			CustomPathBuilder: func(tt, name string) string { return tt + "/" + name + ".ts" },
		},
	}

	for _, policy := range policies {
		got := resolver.ResolveImportPath(userDescriptor(), policy)
		require.NotEmpty(t, got)
		ok := strings.HasPrefix(got, "./") || strings.HasPrefix(got, "../")
		assert.True(t, ok, "expected dot-relative path, got %q", got)
	}
}

func TestGenerateCommonJSRequire(t *testing.T) {
	policy := models.LayoutPolicy{
		OutputStructure: models.StructureFlat,
		FileExtension:   ".cjs",
		BaseOutputDir:   "./generated",
	}
	request := models.StatementRequest{
		TargetDescriptor: models.TargetDescriptor{
			SourceFilePath: "./index.ts",
			TargetName:     "LegacyModule",
		},
		Kind:              models.CommonJSRequire,
		DefaultExportName: "legacy",
	}

	got, err := resolver.Generate(request, policy)
	require.NoError(t, err)
	assert.Equal(t, "const legacy = require('./generated/LegacyModule.cjs');", got)
}

func TestCustomWithoutBuilderYieldsEmpty(t *testing.T) {
	policy := models.LayoutPolicy{
		OutputStructure: models.StructureCustom,
		BaseOutputDir:   "gen",
	}

	assert.Empty(t, resolver.ResolveImportPath(userDescriptor(), policy))

	request := models.StatementRequest{
		TargetDescriptor: userDescriptor(),
		Kind:             models.TypedImport,
		NamedExports:     []string{"User"},
	}
	assert.Empty(t, resolver.GenerateImportStatement(request, policy))
}

func TestGenerateShortCircuitsOnFailedResolution(t *testing.T) {
	policy := flatPolicy()
	policy.OutputStructure = models.OutputStructure("spiral")

	// Every kind, including invalid ones, collapses to empty once
	// resolution has failed.
	for _, kind := range []models.StatementKind{models.TypedImport, models.ValueImport, models.CommonJSRequire, "bogus"} {
		request := models.StatementRequest{
			TargetDescriptor: userDescriptor(),
			Kind:             kind,
		}
		assert.Empty(t, resolver.GenerateImportStatement(request, policy))
	}
}
