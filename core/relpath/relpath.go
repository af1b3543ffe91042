package relpath

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrPathResolution wraps any failure during relative-path computation.
// These are deterministic input-validation failures, never transient.
var ErrPathResolution = errors.New("path resolution failed")

// Relativize computes the import specifier from the directory containing
// sourceFilePath to targetPath. Both paths are interpreted in the same
// coordinate space: sourceFilePath is anchored at baseSourceDir (the process
// working directory when baseSourceDir is empty) and targetPath at that same
// origin. The computation is purely lexical; nothing is checked against the
// filesystem.
//
// The result always uses forward slashes and always starts with "./" or
// "../" so it cannot be mistaken for a package-style specifier.
func Relativize(sourceFilePath, targetPath, baseSourceDir string) (string, error) {
	if strings.TrimSpace(sourceFilePath) == "" {
		return "", fmt.Errorf("%w: source file path is empty", ErrPathResolution)
	}
	if strings.TrimSpace(targetPath) == "" {
		return "", fmt.Errorf("%w: target path is empty", ErrPathResolution)
	}

	source := sourceFilePath
	if !filepath.IsAbs(source) && baseSourceDir != "" {
		source = filepath.Join(baseSourceDir, source)
	}

	// filepath.Rel needs both paths on the same footing. Abs is lexical
	// apart from reading the working directory, which is exactly the
	// default origin the contract asks for.
	source, err := filepath.Abs(source)
	if err != nil {
		return "", fmt.Errorf("%w: resolving source %q: %v", ErrPathResolution, sourceFilePath, err)
	}
	target, err := filepath.Abs(targetPath)
	if err != nil {
		return "", fmt.Errorf("%w: resolving target %q: %v", ErrPathResolution, targetPath, err)
	}

	rel, err := filepath.Rel(filepath.Dir(source), target)
	if err != nil {
		return "", fmt.Errorf("%w: from %q to %q: %v", ErrPathResolution, source, target, err)
	}

	rel = filepath.ToSlash(rel)
	if !strings.HasPrefix(rel, "./") && !strings.HasPrefix(rel, "../") && rel != "." && rel != ".." {
		rel = "./" + rel
	}
	return rel, nil
}
