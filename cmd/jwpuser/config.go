package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Youngyoon-1/jwp-dashboard-jdbc/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, field values and environment variable substitution.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

var initFromCurrent bool

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a configuration file",
	Long: `Writes the commented example configuration. With --from-current the
configuration now in effect (--config, discovered, or built-in defaults) is
written instead, with environment references resolved.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&initFromCurrent, "from-current", false, "Write the configuration now in effect")

	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configTestCmd, configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}

	write := config.WriteExample
	if initFromCurrent {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		write = cfg.Write
	}
	if err := write(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	path := "config.toml"
	if len(args) > 0 {
		path = args[0]
	}
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			fmt.Fprintln(w, configErr.Error())
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Fprintf(w, "Log:       level=%s format=%s\n", cfg.Log.Level, cfg.Log.Format)
	fmt.Fprintf(w, "Database:  %s (busy timeout %s)\n", cfg.Database.Path, cfg.Database.BusyTimeout)
	fmt.Fprintf(w, "Password:  min length %d, max account similarity %.2f, bcrypt cost %d\n",
		cfg.Password.MinLength, cfg.Password.MaxAccountSimilarity, cfg.Password.BcryptCost)
	fmt.Fprintln(w, "\nConfiguration valid!")
	return nil
}
