package system

import "os"

//go:generate go tool mockgen -source=filesystem_manager.go -destination=mocks/filesystem_manager.gen.go -package=mocks

// FileSystemManager defines the file system operations needed to materialize a file.
// This allows for mocking the file system in tests.
type FileSystemManager interface {
	// ExpandPath resolves a leading ~ to the user's home directory.
	ExpandPath(path string) (string, error)

	// Exists reports whether any entry (file, directory, symlink) is present at path.
	Exists(path string) (bool, error)

	// EnsureParentDirectory creates the parent directory of path and all missing ancestors.
	EnsureParentDirectory(path string, perms os.FileMode) error

	// CreateExclusive creates path with content, failing with fs.ErrExist if it is already present.
	CreateExclusive(path string, content []byte, perms os.FileMode) error
}
