package storage

import (
	"errors"
	"os"
	"path/filepath"
)

// recordMode is the permission of stored records.
const recordMode = 0600

// readRecord reads the file at path; a missing file returns (nil, nil).
func readRecord(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// tempPattern names temp files independently of the record name so any
// identifier up to the filesystem's name limit can be written.
const tempPattern = ".tmp-*"

// writeRecord writes b to a temp file next to path, then renames it over
// path so readers never see a partial record.
func writeRecord(path string, b []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), tempPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()

	// No-op after a successful rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(recordMode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

// removeRecord deletes the file at path; a missing file is not an error.
func removeRecord(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
