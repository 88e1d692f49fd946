package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/core/services"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and change settings",
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Change one setting",
	Long: `Change one setting and save it to the config file.

Keys:
  api.oc, api.base_url, api.language (KO|ORI)
  http.connect_timeout, http.read_timeout, http.retry_delay, http.keep_alive (durations, e.g. 30s)
  http.max_retries, http.max_connections, http.rate_burst (integers)
  http.rate_limit (requests per second, 0 disables)
  http.user_agent, output.format (json|yaml)

Without a value api.oc is read from the terminal without echo.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if err := ensureSettings(); err != nil {
		return err
	}
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	oc := "(not set)"
	if settings.API.IsConfigured() {
		oc = maskAPIKey(settings.API.OC)
		if os.Getenv(services.EnvOC) != "" {
			oc += " (from " + services.EnvOC + ")"
		}
	}

	cmd.Println("API")
	cmd.Printf("  api.oc                %s\n", oc)
	cmd.Printf("  api.base_url          %s\n", settings.API.BaseURL)
	cmd.Printf("  api.language          %s (%s)\n", settings.API.Language, settings.API.Language.Description())
	cmd.Println()
	cmd.Println("HTTP")
	cmd.Printf("  http.connect_timeout  %s\n", settings.HTTP.ConnectTimeout)
	cmd.Printf("  http.read_timeout     %s\n", settings.HTTP.ReadTimeout)
	cmd.Printf("  http.max_retries      %d\n", settings.HTTP.MaxRetries)
	cmd.Printf("  http.retry_delay      %s\n", settings.HTTP.RetryDelay)
	cmd.Printf("  http.max_connections  %d\n", settings.HTTP.MaxConnections)
	cmd.Printf("  http.keep_alive       %s\n", settings.HTTP.KeepAlive)
	cmd.Printf("  http.user_agent       %s\n", settings.HTTP.UserAgent)
	cmd.Printf("  http.rate_limit       %s\n", rateLimitLabel(settings.HTTP.RateLimit))
	cmd.Printf("  http.rate_burst       %d\n", settings.HTTP.RateBurst)
	cmd.Println()
	cmd.Println("Output")
	cmd.Printf("  output.format         %s\n", settings.Output.Format)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := ensureSettings(); err != nil {
		return err
	}

	key := args[0]
	var value string
	switch {
	case len(args) == 2:
		value = args[1]
	case key == "api.oc":
		cmd.Print("Open API key (OC): ")
		value = readPassword()
		cmd.Println()
	default:
		return fmt.Errorf("%w: value required for %s", domain.ErrInvalidInput, key)
	}

	if err := settingsService.Set(key, value); err != nil {
		return err
	}
	cmd.Printf("%s updated\n", key)
	return nil
}

func rateLimitLabel(perSecond float64) string {
	if perSecond <= 0 {
		return "off"
	}
	return fmt.Sprintf("%g/s", perSecond)
}

func readPassword() string {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
