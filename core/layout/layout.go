package layout

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/tristendillon/stitch/core/models"
	"github.com/tristendillon/stitch/core/naming"
)

var (
	// ErrMissingCustomPattern means OutputStructure is "custom" but no
	// CustomPathBuilder was supplied. There is no fallback structure.
	ErrMissingCustomPattern = errors.New("custom output structure requires a path builder")
	// ErrUnknownOutputStructure means the policy named a structure outside
	// the recognized set.
	ErrUnknownOutputStructure = errors.New("unknown output structure")
)

// ResolveTargetPath computes where the target file lives, rooted at the
// policy's BaseOutputDir. The result shares a coordinate origin with source
// path resolution; it is never made absolute against the filesystem.
func ResolveTargetPath(descriptor models.TargetDescriptor, policy models.LayoutPolicy) (string, error) {
	formatted := naming.Apply(policy.NamingConvention, descriptor.TargetName)

	var rel string
	switch policy.OutputStructure {
	case models.StructureCustom:
		if policy.CustomPathBuilder == nil {
			return "", ErrMissingCustomPattern
		}
		rel = policy.CustomPathBuilder(descriptor.TargetType, formatted)
	case models.StructureNested, models.StructureByType:
		dir, ok := policy.TypeDirectories[descriptor.TargetType]
		if !ok {
			// Mechanical pluralization only. "category" maps to
			// "categorys" and that is the documented behavior.
			dir = descriptor.TargetType + "s"
		}
		rel = filepath.Join(dir, formatted+policy.FileExtension)
	case models.StructureFlat:
		rel = formatted + policy.FileExtension
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOutputStructure, policy.OutputStructure)
	}

	return filepath.Join(policy.BaseOutputDir, rel), nil
}
