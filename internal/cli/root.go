// Package cli contains all commands for the bagabo booking client.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bagabo/client-go/internal/config"
	"github.com/bagabo/client-go/internal/output"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
	logger  *slog.Logger
	version = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bagabo",
	Short: "Bagabo hotel booking client",
	Long: `bagabo is a command line client for the Bagabo hotel booking service.

It keeps a signed-in session on disk and gates admin-only commands on the
role carried by the session credential.

Example usage:
  bagabo login --email jane@example.com   # Sign in and store the credential
  bagabo whoami                           # Show the current session
  bagabo hotels list                      # Browse hotels
  bagabo bookings create --room 4 \
      --check-in 2026-09-01 --check-out 2026-09-04
  bagabo admin stats                      # Admin dashboard counters`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .bagabo.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("server", "", "booking service base URL")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("server.base_url", rootCmd.PersistentFlags().Lookup("server"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig(cmd *cobra.Command) error {
	var err error

	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if server, _ := cmd.Flags().GetString("server"); server != "" {
		cfg.Server.BaseURL = server
	}

	if cfg.Logging.Level == "debug" || verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	logger.Debug("configuration loaded",
		"server", cfg.Server.BaseURL,
		"credentials_file", cfg.Credentials.File,
	)

	return nil
}

func newPrinter() *output.Printer {
	return output.NewPrinter(output.ResolveColors(output.ColorAuto, cfg.Output.Colors))
}
