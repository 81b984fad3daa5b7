package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kutorol/my-own-collection/internal/module"
)

var docSection string

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Print the module documentation",
	Long: `Print the DOCUMENTATION, EXAMPLES and RETURN blocks of the module.

Use --section to print only one of them.`,
	Args: cobra.NoArgs,
	RunE: runDoc,
}

func init() {
	docCmd.Flags().StringVarP(&docSection, "section", "s", "", "Only print one section: documentation, examples or return")
	rootCmd.AddCommand(docCmd)
}

func runDoc(cmd *cobra.Command, args []string) error {
	// Parsing catches broken embedded YAML before anything is printed
	if _, err := module.LoadDocs(); err != nil {
		return err
	}

	sections := []struct {
		name string
		body string
	}{
		{"documentation", module.DocumentationYAML()},
		{"examples", module.ExamplesYAML()},
		{"return", module.ReturnYAML()},
	}

	want := strings.ToLower(strings.TrimSpace(docSection))
	out := cmd.OutOrStdout()
	printed := false
	for _, s := range sections {
		if want != "" && want != s.name {
			continue
		}
		if printed {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "# %s\n", strings.ToUpper(s.name))
		fmt.Fprint(out, s.body)
		printed = true
	}

	if !printed {
		return fmt.Errorf("unknown section %q (valid: documentation, examples, return)", docSection)
	}
	return nil
}
