package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// appName is the application name used for directories and display.
const appName = "laurent"

// Execute runs the laurent CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands (check,
// explore, graph, cache), configures logging based on the --verbose flag,
// and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext. The given context bounds the whole run; cancelling it
// (e.g. on SIGINT) aborts the executing command.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "laurent explores Laurent phenomenon algebra seeds",
		Long:         `laurent is a CLI tool for working with Laurent phenomenon algebra seeds: validating exchange polynomials, mutating seeds, enumerating mutation classes, and rendering exchange graphs.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newExploreCmd())
	root.AddCommand(newGraphCmd())
	root.AddCommand(newCacheCmd())

	return root.ExecuteContext(ctx)
}

// cacheDir returns the directory used for cached results.
func cacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appName), nil
}
