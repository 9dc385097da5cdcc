package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/garden-advisor/internal/advisor"
	"github.com/osse101/garden-advisor/internal/domain"
	"github.com/osse101/garden-advisor/internal/style"
)

var (
	generateItems string
	generateGold  float64
	generateDate  string
	generateToday string
	generateMode  string
	generateStyle string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a strategy report from the rule engine",
	Example: `  advisorctl generate --items "1:5,2:3" --gold 750 --date "Summer, Day 14"
  advisorctl generate --items "carrot:5" --gold 50 --date "Spring, Day 1" --mode beginner --style minimal`,
	RunE: func(cmd *cobra.Command, args []string) error {
		selected, err := parseItems(generateItems)
		if err != nil {
			return err
		}

		today := generateToday
		if today == "" {
			today = time.Now().Format("2006-01-02")
		}

		renderStyle, ok := style.Parse(generateStyle)
		if !ok {
			return fmt.Errorf("unknown style %q, valid options: %s", generateStyle, strings.Join(style.Names(), ", "))
		}

		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		svc := advisor.NewService(cat)
		report, err := svc.GenerateAdvice(cmd.Context(), domain.AnalysisRequest{
			SelectedItems:   selected,
			Gold:            generateGold,
			InGameDate:      generateDate,
			CurrentDate:     today,
			InteractionMode: generateMode,
		})
		if err != nil {
			return err
		}

		var out any = report
		if cmd.Flags().Changed("style") {
			out = style.Render(renderStyle, report)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateItems, "items", "", `selected items as "id:qty,id:qty" (ids or names)`)
	generateCmd.Flags().Float64Var(&generateGold, "gold", 0, "current gold")
	generateCmd.Flags().StringVar(&generateDate, "date", "", `in-game date, e.g. "Spring, Day 1"`)
	generateCmd.Flags().StringVar(&generateToday, "current-date", "", "publication date (defaults to today)")
	generateCmd.Flags().StringVar(&generateMode, "mode", "advanced", "interaction mode: beginner, advanced, expert")
	generateCmd.Flags().StringVar(&generateStyle, "style", "", "render the report for a style: magazine, minimal, dashboard")
	_ = generateCmd.MarkFlagRequired("items")
	_ = generateCmd.MarkFlagRequired("date")
}

// parseItems parses "key:qty,key:qty" into a selection map
func parseItems(raw string) (map[string]float64, error) {
	selected := make(map[string]float64)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, qtyStr, found := strings.Cut(pair, ":")
		if !found {
			return nil, fmt.Errorf("invalid item %q, expected key:quantity", pair)
		}
		qty, err := strconv.ParseFloat(strings.TrimSpace(qtyStr), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in %q: %w", pair, err)
		}
		selected[strings.TrimSpace(key)] = qty
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("no items given")
	}
	return selected, nil
}
