package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lawdata/internal/core/domain"
)

var statuteCmd = &cobra.Command{
	Use:   "statute",
	Short: "Search and fetch statutes",
}

var statuteSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search statutes by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatuteSearch,
}

var statuteGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Fetch statute content",
	Long: `Fetch the articles, addenda and appendices of a statute.

Identify the statute by its ID (argument), its sequence number (--mst)
or its name (--name). --jo limits the result to one article and
--ef-yd returns the text in force on a date.

Examples:
  lawdata statute get 001706
  lawdata statute get --mst 253527 --jo 750
  lawdata statute get --mst 253527 --ef-yd 20240101`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStatuteGet,
}

var statuteHistoryCmd = &cobra.Command{
	Use:   "history <id>",
	Short: "List article revisions of a statute",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatuteHistory,
}

var (
	statutePage     int
	statuteDisplay  int
	statuteFullText bool
	statuteSort     string
	statuteKind     string
	statuteDept     string

	statuteMST      int64
	statuteName     string
	statuteArticle  string
	statuteEffDate  int
	statuteLanguage string

	statuteRegDate int
)

func init() {
	statuteSearchCmd.Flags().IntVar(&statutePage, "page", domain.DefaultPage, "result page")
	statuteSearchCmd.Flags().IntVarP(&statuteDisplay, "display", "n", domain.DefaultDisplay, "results per page (max 100)")
	statuteSearchCmd.Flags().BoolVar(&statuteFullText, "full-text", false, "match the full text instead of names")
	statuteSearchCmd.Flags().StringVar(&statuteSort, "sort", "", "sort order (lasc, ldes, dasc, ddes, nasc, ndes, efasc, efdes)")
	statuteSearchCmd.Flags().StringVar(&statuteKind, "kind", "", "statute kind code")
	statuteSearchCmd.Flags().StringVar(&statuteDept, "department", "", "responsible ministry code")

	statuteGetCmd.Flags().Int64Var(&statuteMST, "mst", 0, "statute sequence number")
	statuteGetCmd.Flags().StringVar(&statuteName, "name", "", "statute name")
	statuteGetCmd.Flags().StringVar(&statuteArticle, "jo", "", "article, e.g. 750 or 3의2")
	statuteGetCmd.Flags().IntVar(&statuteEffDate, "ef-yd", 0, "effective date YYYYMMDD")
	statuteGetCmd.Flags().StringVar(&statuteLanguage, "lang", "", "KO or ORI (default from config)")

	statuteHistoryCmd.Flags().StringVar(&statuteArticle, "jo", "", "article, e.g. 750 or 3의2")
	statuteHistoryCmd.Flags().IntVar(&statuteRegDate, "reg-date", 0, "registration date YYYYMMDD")
	statuteHistoryCmd.Flags().IntVar(&statutePage, "page", domain.DefaultPage, "result page")
	statuteHistoryCmd.Flags().IntVarP(&statuteDisplay, "display", "n", domain.DefaultDisplay, "results per page (max 100)")

	statuteCmd.AddCommand(statuteSearchCmd)
	statuteCmd.AddCommand(statuteGetCmd)
	statuteCmd.AddCommand(statuteHistoryCmd)
	rootCmd.AddCommand(statuteCmd)
}

func runStatuteSearch(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	q := domain.StatuteQuery{
		Paging:     domain.Paging{Page: statutePage, Display: statuteDisplay},
		Query:      args[0],
		Sort:       statuteSort,
		Kind:       statuteKind,
		Department: statuteDept,
	}
	if statuteFullText {
		q.Scope = domain.SearchBody
	}

	result, err := statuteService.Search(cmd.Context(), q)
	if err != nil {
		return fmt.Errorf("statute search failed: %w", err)
	}
	return render(cmd.OutOrStdout(), result)
}

func runStatuteGet(cmd *cobra.Command, args []string) error {
	req := domain.StatuteRequest{MST: statuteMST, Name: statuteName}
	if len(args) == 1 {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		req.ID = id
	}
	article, err := parseArticle(statuteArticle)
	if err != nil {
		return err
	}
	req.Article = article
	if statuteLanguage != "" {
		req.Language = domain.Language(strings.ToUpper(statuteLanguage))
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := ensureServices(); err != nil {
		return err
	}
	result, err := statuteService.Get(cmd.Context(), req, statuteEffDate)
	if err != nil {
		return fmt.Errorf("statute get failed: %w", err)
	}
	if result.IsEmpty() {
		return fmt.Errorf("%w: no statute content returned", domain.ErrNotFound)
	}
	return render(cmd.OutOrStdout(), result.Content)
}

func runStatuteHistory(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	article, err := parseArticle(statuteArticle)
	if err != nil {
		return err
	}

	if err := ensureServices(); err != nil {
		return err
	}
	result, err := statuteService.History(cmd.Context(), domain.ArticleHistoryRequest{
		Paging:         domain.Paging{Page: statutePage, Display: statuteDisplay},
		ID:             id,
		Article:        article,
		RegisteredDate: statuteRegDate,
	})
	if err != nil {
		return fmt.Errorf("statute history failed: %w", err)
	}
	return render(cmd.OutOrStdout(), result)
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id %q is not a positive number", domain.ErrInvalidInput, s)
	}
	return id, nil
}

var articleFlagPattern = regexp.MustCompile(`^제?\s*(\d+)\s*조?\s*(?:(?:의|-)\s*(\d+))?$`)

// parseArticle turns "750", "제3조의2" or "3-2" into an article key
// (number×100+branch). An empty string is 0.
func parseArticle(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	m := articleFlagPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: article %q", domain.ErrInvalidInput, s)
	}
	number, _ := strconv.Atoi(m[1])
	branch := 0
	if m[2] != "" {
		branch, _ = strconv.Atoi(m[2])
	}
	if branch > 99 {
		return 0, fmt.Errorf("%w: article branch %d", domain.ErrInvalidInput, branch)
	}
	return number*100 + branch, nil
}
