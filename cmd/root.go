// Package cmd implements the CLI commands for ContentCrafty using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/adarshpam3/contentcrafty-sub000/core/config"
	"github.com/adarshpam3/contentcrafty-sub000/core/logging"
)

var (
	flagConfig  string
	flagVerbose bool

	// Resolved in PersistentPreRunE for every command.
	cfg    config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "contentcrafty",
	Short: "ContentCrafty — plain views of generated articles",
	Long: `ContentCrafty stores AI-generated blog articles and category descriptions
and renders the compact plain view the editor shows in its preview pane.

Usage:
  contentcrafty convert <file|url|-> [flags]
  contentcrafty project create <name>
  contentcrafty article add <project-id> --file draft.html`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := viper.New()
		for key, flag := range boundFlags {
			if f := cmd.Flags().Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return fmt.Errorf("binding --%s: %w", flag, err)
				}
			}
		}
		if err := config.Init(v, flagConfig); err != nil {
			return err
		}
		loaded, err := config.Load(v)
		if err != nil {
			return err
		}
		cfg = loaded

		l, err := logging.New(cfg.LogLevel, flagVerbose)
		if err != nil {
			return err
		}
		logger = l
		if used := v.ConfigFileUsed(); used != "" {
			logger.Debug("using config file", zap.String("path", used))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// boundFlags maps config keys to the flags that override them.
var boundFlags = map[string]string{
	config.KeyDBPath:    "db",
	config.KeyPolicy:    "policy",
	config.KeyOutputDir: "output_dir",
	config.KeySanitize:  "sanitize",
	config.KeyLogLevel:  "log_level",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ./contentcrafty.yaml or ~/.config/contentcrafty/contentcrafty.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("db", "", "SQLite database path")
	rootCmd.PersistentFlags().String("policy", "", "container conversion policy: recursive or flattened")
	rootCmd.PersistentFlags().String("log_level", "", "log level: debug, info, warn, error")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
