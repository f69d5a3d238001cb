// Package safepath resolves client-supplied filenames against a fixed root
// directory and rejects anything that would escape it.
package safepath

import (
	"errors"
	"path/filepath"
	"strings"
)

var ErrTraversal = errors.New("path escapes the allowed root")

// Resolve canonicalizes name against root and returns the absolute path of
// the file. The name must be a bare filename: if it differs from its own
// basename, or the joined path leaves the root after cleaning, the request
// is a traversal attempt and ErrTraversal is returned.
func Resolve(root, name string) (string, error) {
	if name == "" || name == "." || name == ".." || name != filepath.Base(name) {
		return "", ErrTraversal
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}

	resolved := filepath.Join(absRoot, name)
	if !strings.HasPrefix(resolved, absRoot+string(filepath.Separator)) {
		return "", ErrTraversal
	}
	return resolved, nil
}
