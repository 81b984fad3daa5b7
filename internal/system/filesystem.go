package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem handles file system operations on the local host
type FileSystem struct {
	homeDir func() (string, error)
}

var _ FileSystemManager = (*FileSystem)(nil)

// NewFileSystem creates a new FileSystem instance
func NewFileSystem() *FileSystem {
	return &FileSystem{homeDir: os.UserHomeDir}
}

// ExpandPath expands a leading ~ or ~/ to the user's home directory.
// Other forms (including ~user) are returned unchanged.
func (fs *FileSystem) ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := fs.homeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// Exists checks if anything exists at path.
// Symlinks are not followed, so a dangling symlink counts as present.
func (fs *FileSystem) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if %s exists: %w", path, err)
}

// DirectoryExists checks if a directory exists
func (fs *FileSystem) DirectoryExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if directory exists %s: %w", path, err)
}

// EnsureParentDirectory creates the directory containing path.
// If the directory already exists, it does nothing
func (fs *FileSystem) EnsureParentDirectory(path string, perms os.FileMode) error {
	dir := filepath.Dir(path)

	exists, err := fs.DirectoryExists(dir)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := os.MkdirAll(dir, perms); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// CreateExclusive creates a new file and writes content to it.
// The open uses O_EXCL, so an entry created by someone else after an
// existence check is never overwritten; the returned error then matches fs.ErrExist.
func (fs *FileSystem) CreateExclusive(path string, content []byte, perms os.FileMode) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, perms)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}

	if _, err := file.Write(content); err != nil {
		file.Close()
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	// Explicitly check close error to prevent silent data loss
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file %s: %w", path, err)
	}

	return nil
}
