package models

import "github.com/tristendillon/stitch/core/naming"

// OutputStructure selects how resolved target files are laid out under the
// output root.
type OutputStructure string

const (
	StructureFlat   OutputStructure = "flat"
	StructureNested OutputStructure = "nested"
	StructureByType OutputStructure = "by-type"
	StructureCustom OutputStructure = "custom"
)

// StatementKind selects which import/require syntax family to render.
type StatementKind string

const (
	TypedImport     StatementKind = "typed-import"
	ValueImport     StatementKind = "value-import"
	CommonJSRequire StatementKind = "commonjs-require"
)

// PathBuilder maps a target type and an already-formatted name to a path
// fragment relative to the output root. It is treated as an opaque pure
// function; its output is used as a string without further validation.
type PathBuilder func(targetType, formattedName string) string

// LayoutPolicy describes where generated files live and how they are named.
// Values are constructed per call and never mutated.
type LayoutPolicy struct {
	OutputStructure OutputStructure
	// TypeDirectories maps a logical target type to its subdirectory.
	// Missing types fall back to the type name with a literal "s" appended.
	TypeDirectories map[string]string
	// FileExtension is a literal suffix and may contain dots (".zod.ts").
	FileExtension    string
	BaseOutputDir    string
	NamingConvention naming.Convention
	// BaseSourceDir anchors relative source paths. Empty means the
	// process working directory.
	BaseSourceDir string
	// CustomPathBuilder is required when OutputStructure is "custom".
	CustomPathBuilder PathBuilder
}

// TargetDescriptor identifies one import target to resolve.
type TargetDescriptor struct {
	// SourceFilePath is the file that will contain the import.
	SourceFilePath string
	// TargetName is the logical symbol name before any naming transform.
	TargetName string
	// TargetType is the logical category used for directory mapping.
	TargetType string
}

// StatementRequest is a TargetDescriptor plus everything needed to render
// the final statement text.
type StatementRequest struct {
	TargetDescriptor
	Kind StatementKind
	// NamedExports are rendered in caller-supplied order.
	NamedExports      []string
	DefaultExportName string
}
