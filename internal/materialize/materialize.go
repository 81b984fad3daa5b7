// Package materialize ensures a file exists at a requested path.
//
// A Materializer performs at most one directory-tree creation and one file
// creation per call. Existing entries at the target path are never modified,
// whatever their type or content, which makes repeated calls idempotent.
package materialize

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/kutorol/my-own-collection/internal/system"
)

const (
	// DefaultDirMode is used for parent directories created on the way to the target.
	DefaultDirMode os.FileMode = 0755
	// DefaultFileMode is used for newly created files.
	DefaultFileMode os.FileMode = 0644
)

// Request describes the desired file.
type Request struct {
	// Path may be relative or start with ~.
	Path string
	// Content is written verbatim when the file is created.
	Content string
}

// Outcome reports what a materialization did.
type Outcome struct {
	Changed bool   `json:"changed"`
	Message string `json:"message"`
}

// Created returns the outcome for a newly written file.
func Created(path string) Outcome {
	return Outcome{Changed: true, Message: fmt.Sprintf("File %s was created", path)}
}

// AlreadyExists returns the outcome for a target that was left untouched.
func AlreadyExists(path string) Outcome {
	return Outcome{Changed: false, Message: fmt.Sprintf("File %s already exists", path)}
}

// Materializer reconciles a Request against the file system
type Materializer struct {
	fs       system.FileSystemManager
	dirMode  os.FileMode
	fileMode os.FileMode
}

// Option configures a Materializer.
type Option func(*Materializer)

// WithDirMode sets the mode for created parent directories.
func WithDirMode(mode os.FileMode) Option {
	return func(m *Materializer) { m.dirMode = mode }
}

// WithFileMode sets the mode for the created file.
func WithFileMode(mode os.FileMode) Option {
	return func(m *Materializer) { m.fileMode = mode }
}

// New creates a Materializer backed by fsys.
func New(fsys system.FileSystemManager, opts ...Option) *Materializer {
	m := &Materializer{
		fs:       fsys,
		dirMode:  DefaultDirMode,
		fileMode: DefaultFileMode,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Materialize runs a request against the local file system with default modes.
func Materialize(path, content string) (Outcome, error) {
	return New(system.NewFileSystem()).Materialize(Request{Path: path, Content: content})
}

// Materialize ensures a file exists at req.Path.
//
// Any entry already present at the path (file, directory, symlink) is reported
// as unchanged and left alone. Otherwise missing parent directories are created
// and the file is written with req.Content. File system errors are returned
// wrapped and are never retried.
func (m *Materializer) Materialize(req Request) (Outcome, error) {
	if req.Path == "" {
		return Outcome{}, ErrEmptyPath
	}

	target, err := m.fs.ExpandPath(req.Path)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to resolve path %s: %w", req.Path, err)
	}

	exists, err := m.fs.Exists(target)
	if err != nil {
		return Outcome{}, err
	}
	if exists {
		return AlreadyExists(req.Path), nil
	}

	if err := m.fs.EnsureParentDirectory(target, m.dirMode); err != nil {
		return Outcome{}, err
	}

	if err := m.fs.CreateExclusive(target, []byte(req.Content), m.fileMode); err != nil {
		// Lost a race with another writer after the existence check
		if errors.Is(err, fs.ErrExist) {
			return AlreadyExists(req.Path), nil
		}
		return Outcome{}, err
	}

	return Created(req.Path), nil
}
