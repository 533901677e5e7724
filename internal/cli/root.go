package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Execute function runs the root command until it finishes or the process is interrupted.
// It exits with status 1 when the command fails.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	debug      bool
}

// NewRootCmd function builds the contacts command tree with the load and snapshot subcommands.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "contacts",
		Short:        "Load and inspect the employee contact list",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a yaml config file")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging on stderr")

	cmd.AddCommand(newLoadCmd(opts), newSnapshotCmd(opts))

	return cmd
}

// sourceFlags are the flags selecting which employee list to read and from where.
type sourceFlags struct {
	url    string
	city   string
	source string
}

// register adds the --url and --city flags locating the employee list.
func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.url, "url", "", "employee list url (overrides --city)")
	cmd.Flags().StringVar(&f.city, "city", "", "preset employee list: tallinn or tartu")
}

// registerSource adds the --source flag for commands that can read from either backend.
func (f *sourceFlags) registerSource(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.source, "source", "", "where to read from: http or redis")
}

// config loads the config file and applies every flag the user set explicitly.
func (o *rootOptions) config(cmd *cobra.Command, f *sourceFlags) (Config, error) {
	cfg, err := LoadConfig(o.configPath)
	if err != nil {
		return Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.URL = f.url
	}
	if flags.Changed("city") {
		cfg.City = f.city
		if !flags.Changed("url") {
			cfg.URL = ""
		}
	}
	if flags.Changed("source") {
		cfg.Source = f.source
	}

	return cfg, nil
}
