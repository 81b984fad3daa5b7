// Package cli wires configuration, logging and the UI around the materializer
// for both entry points of the binary: the module protocol run by the host
// runtime and the human-facing apply command.
package cli

import (
	"fmt"
	"io"

	"github.com/kutorol/my-own-collection/internal/config"
	"github.com/kutorol/my-own-collection/internal/logging"
	"github.com/kutorol/my-own-collection/internal/materialize"
	"github.com/kutorol/my-own-collection/internal/module"
	"github.com/kutorol/my-own-collection/internal/system"
	"github.com/kutorol/my-own-collection/internal/ui"
)

// Context holds all dependencies needed by the commands
type Context struct {
	Config *config.Config
	UI     *ui.UI
	FS     system.FileSystemManager
}

// NewContext creates a Context using the default settings file
func NewContext() (*Context, error) {
	return NewContextWithOptions(false, "")
}

// NewContextWithOptions creates a Context with custom options.
// An empty configPath selects config.DefaultPath().
func NewContextWithOptions(nonInteractive bool, configPath string) (*Context, error) {
	cfg := config.New(configPath)
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logging.ConfigureRuntime(cfg.LogLevel())

	uiInstance := ui.New()
	uiInstance.SetNonInteractive(nonInteractive)

	return &Context{
		Config: cfg,
		UI:     uiInstance,
		FS:     system.NewFileSystem(),
	}, nil
}

// Materializer builds a materializer using the configured creation modes
func (c *Context) Materializer() (*materialize.Materializer, error) {
	dirMode, err := c.Config.DirMode()
	if err != nil {
		return nil, err
	}
	fileMode, err := c.Config.FileMode()
	if err != nil {
		return nil, err
	}

	return materialize.New(c.FS,
		materialize.WithDirMode(dirMode),
		materialize.WithFileMode(fileMode),
	), nil
}

// RunModule runs one module invocation from argsPath, writing the result JSON
// to stdout, and returns the process exit status.
func (c *Context) RunModule(argsPath string, stdout io.Writer) int {
	m, err := c.Materializer()
	if err != nil {
		if werr := module.FailJSON(stdout, err.Error(), nil); werr != nil {
			logger := logging.Component("module")
			logger.Error().Err(werr).Msg("failed to report failure")
		}
		return module.ExitFailed
	}

	return module.NewRunner(m, stdout, logging.Component("module")).RunFile(argsPath)
}

// Apply materializes req and reports the outcome, or the failure, on the UI.
// In check mode nothing is touched and the outcome is always unchanged.
func (c *Context) Apply(req materialize.Request, check bool) (materialize.Outcome, error) {
	if check {
		c.UI.Skipped(fmt.Sprintf("check mode, %s not touched", req.Path))
		return materialize.Outcome{}, nil
	}

	m, err := c.Materializer()
	if err != nil {
		c.UI.Error(err.Error())
		return materialize.Outcome{}, err
	}

	outcome, err := m.Materialize(req)
	if err != nil {
		c.UI.Error(err.Error())
		return materialize.Outcome{}, err
	}

	if outcome.Changed {
		c.UI.Changed(outcome.Message)
	} else {
		c.UI.OK(outcome.Message)
	}
	return outcome, nil
}

// PromptRequest fills in a missing path and content interactively, then asks
// for confirmation. It returns confirmed=false if the user declines.
func (c *Context) PromptRequest(req materialize.Request) (materialize.Request, bool, error) {
	if c.UI.IsNonInteractive() {
		return req, false, ui.ErrNonInteractive
	}

	c.UI.Header("Create file")

	if req.Path == "" {
		path, err := c.UI.PromptInputRequired("Path of the file to create:", "A leading ~ expands to your home directory")
		if err != nil {
			return req, false, err
		}
		req.Path = path
	}

	if req.Content == "" {
		content, err := c.UI.PromptMultiline("Content (leave empty for an empty file):", "")
		if err != nil {
			return req, false, err
		}
		req.Content = content
	}

	c.UI.Infof("Path: %s", req.Path)
	c.UI.Infof("Content: %d bytes", len(req.Content))

	confirmed, err := c.UI.PromptYesNo("Create this file?", true)
	if err != nil {
		return req, false, err
	}
	return req, confirmed, nil
}
