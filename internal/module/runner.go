// Package module adapts the materializer to the Ansible binary-module protocol:
// it reads the args file, validates arguments against the argument spec,
// honors check mode and writes the result JSON.
package module

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/kutorol/my-own-collection/internal/materialize"
)

//go:generate go tool mockgen -source=runner.go -destination=mocks/materializer.gen.go -package=mocks

// Name is the module name reported to the host runtime.
const Name = "my_own_module"

// Exit statuses of a module run.
const (
	ExitOK     = 0
	ExitFailed = 1
)

// Materializer is the core operation the runner drives.
type Materializer interface {
	Materialize(req materialize.Request) (materialize.Outcome, error)
}

// Runner executes one module invocation.
type Runner struct {
	spec         ArgumentSpec
	materializer Materializer
	out          io.Writer
	logger       zerolog.Logger
}

// NewRunner creates a Runner writing results to out.
func NewRunner(m Materializer, out io.Writer, logger zerolog.Logger) *Runner {
	return &Runner{
		spec:         MaterializeArgumentSpec(),
		materializer: m,
		out:          out,
		logger:       logger,
	}
}

// RunFile reads module arguments from argsPath and runs them.
func (r *Runner) RunFile(argsPath string) int {
	data, err := os.ReadFile(argsPath)
	if err != nil {
		return r.fail(fmt.Sprintf("failed to read module arguments from %s: %v", argsPath, err), nil)
	}
	return r.Run(data)
}

// Run executes the module against raw args file contents and returns the
// process exit status.
func (r *Runner) Run(data []byte) int {
	raw, opts, err := DecodeArgs(data)
	if err != nil {
		return r.fail(err.Error(), nil)
	}

	params, warnings, err := r.spec.Bind(raw, opts.ModuleName)
	if err != nil {
		return r.fail(err.Error(), nil)
	}

	result := Result{"changed": false, "message": ""}
	if !opts.NoLog {
		result["invocation"] = map[string]any{"module_args": params}
	}
	if len(warnings) > 0 {
		result["warnings"] = warnings
	}

	req := materialize.Request{Path: params.String("path"), Content: params.String("content")}
	r.logger.Debug().
		Str("path", req.Path).
		Bool("check_mode", opts.CheckMode).
		Int("verbosity", opts.Verbosity).
		Msg("module invocation")

	if opts.CheckMode {
		return r.exit(result)
	}

	outcome, err := r.materializer.Materialize(req)
	if err != nil {
		delete(result, "message")
		return r.fail(err.Error(), result)
	}

	result["changed"] = outcome.Changed
	result["message"] = outcome.Message
	if opts.Diff && outcome.Changed && !opts.NoLog {
		result["diff"] = map[string]any{
			"before":        "",
			"after":         req.Content,
			"before_header": req.Path,
			"after_header":  req.Path,
		}
	}

	r.logger.Debug().Bool("changed", outcome.Changed).Msg(outcome.Message)
	return r.exit(result)
}

func (r *Runner) exit(result Result) int {
	if err := ExitJSON(r.out, result); err != nil {
		r.logger.Error().Err(err).Msg("failed to report result")
		return ExitFailed
	}
	return ExitOK
}

func (r *Runner) fail(msg string, result Result) int {
	r.logger.Error().Str("module", Name).Msg(msg)
	if err := FailJSON(r.out, msg, result); err != nil {
		r.logger.Error().Err(err).Msg("failed to report failure")
	}
	return ExitFailed
}
