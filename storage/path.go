package storage

import (
	"fmt"
	"path/filepath"
	"strings"
)

// TrimIdentifier strips leading and trailing whitespace and newlines.
// The trimmed form is the filename an identifier is stored under.
func TrimIdentifier(id string) string {
	return strings.TrimSpace(id)
}

// validateIdentifier rejects identifiers that would not name a single file
// directly under the store root.
func validateIdentifier(id string) error {
	switch id {
	case "":
		return fmt.Errorf("%w: empty", ErrInvalidIdentifier)
	case ".", "..":
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}
	if strings.ContainsAny(id, "/\\\x00") {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidIdentifier, id)
	}
	return nil
}

// IdentifierToPath maps an identifier to its file path under root.
func IdentifierToPath(root, id string) (string, error) {
	id = TrimIdentifier(id)
	if err := validateIdentifier(id); err != nil {
		return "", err
	}
	return filepath.Join(root, id), nil
}

// path returns the file path for an identifier in this store.
func (s *Store) path(id string) (string, error) {
	return IdentifierToPath(s.root, id)
}
