package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kutorol/my-own-collection/internal/cli"
	"github.com/kutorol/my-own-collection/internal/materialize"
	"github.com/kutorol/my-own-collection/internal/module"
)

var (
	applyPath        string
	applyContent     string
	applyCheck       bool
	applyInteractive bool
	applyJSON        bool
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Create a file by hand",
	Long: `Create the file at --path with --content, the same way the module does.

Nothing is written if anything already exists at the path. With --check the
file system is not touched at all. With --interactive missing values are
prompted for and the result must be confirmed.`,
	Args: cobra.NoArgs,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVarP(&applyPath, "path", "p", "", "Path of the file to create")
	applyCmd.Flags().StringVarP(&applyContent, "content", "c", "", "Content of the file")
	applyCmd.Flags().BoolVar(&applyCheck, "check", false, "Report without touching the file system")
	applyCmd.Flags().BoolVarP(&applyInteractive, "interactive", "i", false, "Prompt for missing values")
	applyCmd.Flags().BoolVar(&applyJSON, "json", false, "Print the outcome as JSON on stdout")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewContextWithOptions(!applyInteractive, configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize context: %w", err)
	}

	req := materialize.Request{Path: applyPath, Content: applyContent}

	if applyInteractive {
		var confirmed bool
		req, confirmed, err = ctx.PromptRequest(req)
		if err != nil {
			return err
		}
		if !confirmed {
			ctx.UI.Warning("Cancelled, nothing was created")
			return nil
		}
	} else if req.Path == "" {
		return materialize.ErrEmptyPath
	}

	outcome, err := ctx.Apply(req, applyCheck)
	if err != nil {
		// Apply already reported the failure on the UI
		exitCode = module.ExitFailed
		return nil
	}

	if applyJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetEscapeHTML(false)
		return enc.Encode(outcome)
	}
	return nil
}
