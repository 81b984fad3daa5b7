package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kutorol/my-own-collection/internal/cli"
	"github.com/kutorol/my-own-collection/internal/module"
	"github.com/kutorol/my-own-collection/pkg/version"
)

var (
	configPath string
	// exitCode is the status of a module run; cobra errors always exit 1
	exitCode int
)

var rootCmd = &cobra.Command{
	Use:   "my_own_module [args-file]",
	Short: "Create a file with the given content if nothing exists at its path",
	Long: `my_own_module creates a file at a path with the given content, creating
missing parent directories. If anything already exists at the path it is left
untouched.

Run with a single args file to act as an Ansible binary module: arguments are
read from the file and the result is printed to stdout as JSON.

Use "apply" to run it by hand, "doc" to print the module documentation and
"config" to manage settings.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runModule,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default: $MY_OWN_MODULE_CONFIG or ~/.my_own_module.conf)")
	rootCmd.AddCommand(versionCmd)
}

func runModule(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	ctx, err := cli.NewContextWithOptions(true, configPath)
	if err != nil {
		// The host runtime only reads stdout, so report the failure there too
		exitCode = module.ExitFailed
		return module.FailJSON(cmd.OutOrStdout(), fmt.Sprintf("failed to initialize context: %v", err), nil)
	}

	exitCode = ctx.RunModule(args[0], cmd.OutOrStdout())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}
