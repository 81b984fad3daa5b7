package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kutorol/my-own-collection/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage settings",
	Long: fmt.Sprintf(`Read and change the settings used when creating files.

Known keys: %s, %s, %s.`, config.KeyDirMode, config.KeyFileMode, config.KeyLogLevel),
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print a setting, or its default when unset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		key := args[0]
		if !cfg.Exists(key) {
			if _, known := config.Defaults[key]; !known {
				return fmt.Errorf("key %s not found", key)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), cfg.GetOrDefault(key, ""))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Store a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return cfg.Set(args[0], args[1])
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset KEY",
	Short: "Remove a setting so its default applies again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return cfg.Delete(args[0])
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every setting, including defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		values := make(map[string]string, len(config.Defaults))
		for k, v := range config.Defaults {
			values[k] = v
		}
		for k, v := range cfg.GetAll() {
			values[k] = v
		}

		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", k, values[k])
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.New(configPath).FilePath())
	},
}

func init() {
	configCmd.AddCommand(configGetCmd, configSetCmd, configUnsetCmd, configListCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func loadConfig() (*config.Config, error) {
	cfg := config.New(configPath)
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
