// Package config resolves where the note store lives on disk.
//
// The location is fixed: a hidden directory in the current user's home
// directory holding a single JSON file. Nothing here is read from the
// environment or from a config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// StoreDirName is the hidden directory created under the home directory.
	StoreDirName = ".notes"
	// StoreFileName is the JSON file holding every note.
	StoreFileName = "notes.json"

	// DirPerm is the mode used when creating the store directory.
	DirPerm fs.FileMode = 0o755
	// FilePerm is the mode of the store file.
	FilePerm fs.FileMode = 0o644
)

// ---------------------------------------------------------------------------
// Path computation
// ---------------------------------------------------------------------------

// StoreDirIn returns the store directory for an explicit home directory.
func StoreDirIn(home string) string {
	return filepath.Join(home, StoreDirName)
}

// StoreFileIn returns the store file path for an explicit home directory.
func StoreFileIn(home string) string {
	return filepath.Join(StoreDirIn(home), StoreFileName)
}

// ---------------------------------------------------------------------------
// Resolution
// ---------------------------------------------------------------------------

// ResolveStoreDir returns the store directory under the current user's home,
// creating it when it does not exist yet. Only the last path element is
// created; the home directory itself is expected to exist.
func ResolveStoreDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("ResolveStoreDir: home directory: %w", err)
	}
	dir := StoreDirIn(home)
	if err := EnsureDir(dir); err != nil {
		return "", fmt.Errorf("ResolveStoreDir: %w", err)
	}
	return dir, nil
}

// ResolveStoreFilePath returns the full path of the store file, ensuring its
// directory exists.
func ResolveStoreFilePath() (string, error) {
	dir, err := ResolveStoreDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, StoreFileName), nil
}

// EnsureDir creates dir (a single level) unless it already exists.
// Calling it repeatedly is safe.
func EnsureDir(dir string) error {
	err := os.Mkdir(dir, DirPerm)
	if err == nil || errors.Is(err, fs.ErrExist) {
		if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
			return fmt.Errorf("create store dir %s: not a directory", dir)
		}
		return nil
	}
	return fmt.Errorf("create store dir %s: %w", dir, err)
}
