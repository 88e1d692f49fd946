package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lawdata/internal/core/domain"
)

var precedentCmd = &cobra.Command{
	Use:   "precedent",
	Short: "Search and fetch court precedents",
}

var precedentSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search precedents",
	Long: `Search precedents by case name or text.

With --from and --to the decision-date range is split into chunks of
--chunk-days days, queried one after another and merged.`,
	Args: cobra.ExactArgs(1),
	RunE: runPrecedentSearch,
}

var precedentGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch a precedent",
	Long: `Fetch a precedent by its serial number.

The open API is tried first. Decisions it does not serve are read from
the printable page, which may redirect to the tax-law system. Records
collected from the workers' compensation service are completed from its
case page unless --no-supplement is given.

The output names the source that produced the record.`,
	Args: cobra.ExactArgs(1),
	RunE: runPrecedentGet,
}

var (
	precedentPage       int
	precedentDisplay    int
	precedentFullText   bool
	precedentSort       string
	precedentCourt      string
	precedentCaseNumber string
	precedentLawName    string
	precedentFrom       string
	precedentTo         string
	precedentChunkDays  int

	precedentName         string
	precedentDataSource   string
	precedentNoSupplement bool
)

func init() {
	precedentSearchCmd.Flags().IntVar(&precedentPage, "page", domain.DefaultPage, "result page")
	precedentSearchCmd.Flags().IntVarP(&precedentDisplay, "display", "n", domain.DefaultDisplay, "results per page (max 100)")
	precedentSearchCmd.Flags().BoolVar(&precedentFullText, "full-text", false, "match the full text instead of case names")
	precedentSearchCmd.Flags().StringVar(&precedentSort, "sort", "", "sort order (lasc, ldes, dasc, ddes, nasc, ndes)")
	precedentSearchCmd.Flags().StringVar(&precedentCourt, "court", "", "court name")
	precedentSearchCmd.Flags().StringVar(&precedentCaseNumber, "case-number", "", "case number")
	precedentSearchCmd.Flags().StringVar(&precedentLawName, "law", "", "only decisions citing this statute")
	precedentSearchCmd.Flags().StringVar(&precedentDataSource, "data-source", "", "data source name, e.g. 국세법령정보시스템")
	precedentSearchCmd.Flags().StringVar(&precedentFrom, "from", "", "first decision date YYYYMMDD")
	precedentSearchCmd.Flags().StringVar(&precedentTo, "to", "", "last decision date YYYYMMDD")
	precedentSearchCmd.Flags().IntVar(&precedentChunkDays, "chunk-days", 365, "days per query with --from/--to")
	precedentSearchCmd.MarkFlagsRequiredTogether("from", "to")

	precedentGetCmd.Flags().StringVar(&precedentName, "name", "", "case name")
	precedentGetCmd.Flags().StringVar(&precedentDataSource, "data-source", "", "data source from a search hit, e.g. 근로복지공단")
	precedentGetCmd.Flags().BoolVar(&precedentNoSupplement, "no-supplement", false, "skip the workers' compensation case page")

	precedentCmd.AddCommand(precedentSearchCmd)
	precedentCmd.AddCommand(precedentGetCmd)
	rootCmd.AddCommand(precedentCmd)
}

func runPrecedentSearch(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	q := domain.PrecedentQuery{
		Paging:     domain.Paging{Page: precedentPage, Display: precedentDisplay},
		Query:      args[0],
		Sort:       precedentSort,
		Court:      precedentCourt,
		CaseNumber: precedentCaseNumber,
		LawName:    precedentLawName,
		DataSource: precedentDataSource,
	}
	if precedentFullText {
		q.Scope = domain.SearchBody
	}

	var (
		result *domain.ListResult[domain.Precedent]
		err    error
	)
	if precedentFrom != "" {
		result, err = precedentService.SearchByDateRange(cmd.Context(), q, precedentFrom, precedentTo, precedentChunkDays)
	} else {
		result, err = precedentService.Search(cmd.Context(), q)
	}
	if err != nil {
		return fmt.Errorf("precedent search failed: %w", err)
	}
	return render(cmd.OutOrStdout(), result)
}

func runPrecedentGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := ensureServices(); err != nil {
		return err
	}

	resolved := precedentService.Resolve(cmd.Context(), id, domain.ResolveOptions{
		Name:           precedentName,
		DataSource:     precedentDataSource,
		SkipSupplement: precedentNoSupplement,
	})
	if err := render(cmd.OutOrStdout(), resolved); err != nil {
		return err
	}
	if !resolved.HasRecord() {
		return fmt.Errorf("%w: precedent %d could not be resolved (trace %s)", domain.ErrSourceFailed, id, resolved.TraceID)
	}
	return nil
}
