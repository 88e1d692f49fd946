// Package cli provides the lawdata command-line interface.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/lawdata/internal/core/ports/driving"
	"github.com/custodia-labs/lawdata/internal/logger"
)

var version = "dev"

// Global flags.
var (
	verbose      bool
	configDir    string
	outputFormat string
)

// Services used by the commands. They are built on first use by
// ensureSettings and ensureServices; tests inject their own.
var (
	settingsService  driving.SettingsService
	statuteService   driving.StatuteService
	precedentService driving.PrecedentService
	citationService  driving.CitationService
)

var rootCmd = &cobra.Command{
	Use:   "lawdata",
	Short: "Korean statutes and precedents from the law.go.kr open API",
	Long: `lawdata looks up statutes and court precedents published through the
law.go.kr open API (DRF), the printable decision pages and the tax-law
system, and prints them as JSON or YAML.

An open API user key (OC) is required. Set it with
  lawdata config set api.oc <key>
or the LAWDATA_OC environment variable.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger.SetOutput(cmd.ErrOrStderr())
		logger.SetVerbose(verbose)
		logger.SetRequestID(uuid.NewString())
		logger.Debug("%s", cmd.CommandPath())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log requests and fallbacks to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.lawdata)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: json or yaml (default from config)")
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command. Interrupts cancel in-flight requests.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
