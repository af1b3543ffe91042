package layout_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tristendillon/stitch/core/layout"
	"github.com/tristendillon/stitch/core/models"
	"github.com/tristendillon/stitch/core/naming"
)

func resolve(t *testing.T, d models.TargetDescriptor, p models.LayoutPolicy) string {
	t.Helper()
	got, err := layout.ResolveTargetPath(d, p)
	require.NoError(t, err)
	return filepath.ToSlash(got)
}

func TestResolveTargetPathFlat(t *testing.T) {
	t.Parallel()

	policy := models.LayoutPolicy{
		OutputStructure: models.StructureFlat,
		FileExtension:   ".ts",
		BaseOutputDir:   "./src/generated",
	}
	descriptor := models.TargetDescriptor{TargetName: "User", TargetType: "model"}

	got := resolve(t, descriptor, policy)
	assert.Equal(t, "src/generated/User.ts", got)
	assert.Equal(t, "User.ts", filepath.Base(got))
}

func TestResolveTargetPathFlatKeepsFinalSegment(t *testing.T) {
	t.Parallel()

	// Output root depth never leaks into the filename under flat layout.
	for _, root := range []string{".", "out", "deep/ly/nested/out"} {
		policy := models.LayoutPolicy{
			OutputStructure:  models.StructureFlat,
			FileExtension:    ".zod.ts",
			BaseOutputDir:    root,
			NamingConvention: naming.KebabCase,
		}
		got := resolve(t, models.TargetDescriptor{TargetName: "orderItem"}, policy)
		assert.Equal(t, "order-item.zod.ts", filepath.Base(got))
	}
}

func TestResolveTargetPathNested(t *testing.T) {
	t.Parallel()

	policy := models.LayoutPolicy{
		OutputStructure: models.StructureNested,
		TypeDirectories: map[string]string{"model": "models"},
		FileExtension:   ".ts",
		BaseOutputDir:   "./src/generated",
	}

	got := resolve(t, models.TargetDescriptor{TargetName: "User", TargetType: "model"}, policy)
	assert.Equal(t, "src/generated/models/User.ts", got)
}

func TestResolveTargetPathByTypeIsNestedAlias(t *testing.T) {
	t.Parallel()

	descriptor := models.TargetDescriptor{TargetName: "Role", TargetType: "enum"}
	base := models.LayoutPolicy{
		TypeDirectories: map[string]string{"enum": "enums"},
		FileExtension:   ".ts",
		BaseOutputDir:   "gen",
	}

	nested := base
	nested.OutputStructure = models.StructureNested
	byType := base
	byType.OutputStructure = models.StructureByType

	a, err := layout.ResolveTargetPath(descriptor, nested)
	require.NoError(t, err)
	b, err := layout.ResolveTargetPath(descriptor, byType)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestResolveTargetPathPluralizesUnmappedTypes(t *testing.T) {
	t.Parallel()

	policy := models.LayoutPolicy{
		OutputStructure: models.StructureNested,
		FileExtension:   ".ts",
		BaseOutputDir:   "gen",
	}

	got := resolve(t, models.TargetDescriptor{TargetName: "Status", TargetType: "enum"}, policy)
	assert.Equal(t, "gen/enums/Status.ts", got)

	// Mechanical "s", irregular nouns included.
	got = resolve(t, models.TargetDescriptor{TargetName: "Tag", TargetType: "category"}, policy)
	assert.Equal(t, "gen/categorys/Tag.ts", got)
}

func TestResolveTargetPathCustom(t *testing.T) {
	t.Parallel()

	policy := models.LayoutPolicy{
		OutputStructure: models.StructureCustom,
		BaseOutputDir:   "gen",
		CustomPathBuilder: func(targetType, formattedName string) string {
			return targetType + "/" + formattedName + ".schema.ts"
		},
		NamingConvention: naming.PascalCase,
	}

	got := resolve(t, models.TargetDescriptor{TargetName: "user", TargetType: "model"}, policy)
	assert.Equal(t, "gen/model/User.schema.ts", got)
}

func TestResolveTargetPathCustomRequiresBuilder(t *testing.T) {
	t.Parallel()

	policy := models.LayoutPolicy{
		OutputStructure: models.StructureCustom,
		BaseOutputDir:   "gen",
	}

	_, err := layout.ResolveTargetPath(models.TargetDescriptor{TargetName: "User"}, policy)
	assert.ErrorIs(t, err, layout.ErrMissingCustomPattern)
}

func TestResolveTargetPathUnknownStructure(t *testing.T) {
	t.Parallel()

	policy := models.LayoutPolicy{
		OutputStructure: models.OutputStructure("spiral"),
		BaseOutputDir:   "gen",
	}

	_, err := layout.ResolveTargetPath(models.TargetDescriptor{TargetName: "User"}, policy)
	assert.ErrorIs(t, err, layout.ErrUnknownOutputStructure)
}
