package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/lawdata/internal/core/services"
)

var citationsCmd = &cobra.Command{
	Use:   "citations",
	Short: "Parse reference lists",
	Long: `Split a reference list, as printed under 참조조문 or 참조판례,
into structured citations. No network access is needed.`,
}

var citationsArticleCmd = &cobra.Command{
	Use:     "article <text>",
	Short:   "Parse article references",
	Example: `  lawdata citations article "민법 제750조, 동법 제751조"`,
	Args:    cobra.ExactArgs(1),
	RunE:    runCitationsArticle,
}

var citationsPrecedentCmd = &cobra.Command{
	Use:     "precedent <text>",
	Short:   "Parse precedent references",
	Example: `  lawdata citations precedent "대법원 1982. 6. 22. 선고 82다340 판결"`,
	Args:    cobra.ExactArgs(1),
	RunE:    runCitationsPrecedent,
}

var citationsDate int

func init() {
	citationsArticleCmd.Flags().IntVar(&citationsDate, "date", 0, "reference date YYYYMMDD")
	citationsCmd.AddCommand(citationsArticleCmd)
	citationsCmd.AddCommand(citationsPrecedentCmd)
	rootCmd.AddCommand(citationsCmd)
}

func ensureCitations() {
	if citationService == nil {
		citationService = services.NewCitationService()
	}
}

func runCitationsArticle(cmd *cobra.Command, args []string) error {
	ensureCitations()
	var date *int
	if citationsDate > 0 {
		date = &citationsDate
	}
	return render(cmd.OutOrStdout(), citationService.ParseArticles(args[0], date))
}

func runCitationsPrecedent(cmd *cobra.Command, args []string) error {
	ensureCitations()
	return render(cmd.OutOrStdout(), citationService.ParsePrecedents(args[0]))
}
