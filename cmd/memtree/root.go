package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/memtree/pkg/memtree"
)

var (
	logLevel  string
	verbosity int

	// logger is configured from the persistent flags before any command runs.
	logger = zerolog.Nop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "memtree",
	Short: "Build and inspect in-memory directory trees",
	Long: `memtree builds in-memory trees of directories and files from YAML manifests.
Directories keep their items sorted case-insensitively, refuse duplicate names
and refuse to contain themselves, and every item can be made read-only.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := memtree.ConfigureLogging(cmd.ErrOrStderr(), logLevel, verbosity)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (repeatable)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newManifestCommand())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Print the version number of memtree`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "memtree version %s (commit: %s, built: %s)\n", version, commit, date)
	},
}
