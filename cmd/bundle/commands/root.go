// Package commands implements the CLI commands for the bundle tool.
package commands

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.trai.ch/bundle/internal/adapters/logger"
	"go.trai.ch/bundle/internal/app"
	"go.trai.ch/bundle/internal/build"
	"go.trai.ch/bundle/internal/core/ports"
)

// EnvPrefix prefixes the environment variables that mirror command line flags.
const EnvPrefix = "BUNDLE"

// CLI represents the command line interface for bundle.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	config  *viper.Viper
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app. Flags are read through a
// viper instance, so every flag can also be set with a BUNDLE_ variable,
// e.g. BUNDLE_WWWROOT_OUT.
func New(a *app.App, log ports.Logger) *CLI {
	config := viper.New()
	config.SetEnvPrefix(EnvPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()

	c := &CLI{
		app:    a,
		logger: log,
		config: config,
	}

	rootCmd := c.newBundleCmd()
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.Version = build.Version

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only show errors and missing dependencies")
	rootCmd.PersistentFlags().Bool("json", false, "Write log records as JSON")
	c.bind(rootCmd.PersistentFlags().Lookup("verbose"), rootCmd.PersistentFlags().Lookup("quiet"),
		rootCmd.PersistentFlags().Lookup("json"))

	// Persistent flags come first so -v stays with --verbose.
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		c.configureLogger()
	}

	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	c.rootCmd = rootCmd
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut sets the writer for command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}

// configureLogger applies --verbose, --quiet and --json when the logger supports them.
// --quiet wins over --verbose.
func (c *CLI) configureLogger() {
	if l, ok := c.logger.(interface{ SetVerbosity(logger.Verbosity) }); ok {
		switch {
		case c.config.GetBool("quiet"):
			l.SetVerbosity(logger.VerbosityQuiet)
		case c.config.GetBool("verbose"):
			l.SetVerbosity(logger.VerbosityVerbose)
		default:
			l.SetVerbosity(logger.VerbosityNormal)
		}
	}
	if l, ok := c.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(c.config.GetBool("json"))
	}
}
