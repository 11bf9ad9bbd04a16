package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stadtratwatch/ratsinfo/internal/config"
	"github.com/stadtratwatch/ratsinfo/internal/engine"
)

var (
	queryTypes    string
	queryFrom     string
	queryTo       string
	queryNoExpand bool
	queryStat     string
	queryGroupBy  string
)

var queryCmd = &cobra.Command{
	Use:   "query [terms...]",
	Short: "Run a one-shot search against the dataset",
	Long: `Runs a keyword/theme search against the configured dataset and prints
the result as JSON. With --stat, prints an aggregation over the matched
documents instead of the documents themselves.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		eng, _, err := buildEngine(cfg)
		if err != nil {
			return err
		}
		defer eng.Release()

		q := engine.Query{
			Terms:        args,
			From:         queryFrom,
			To:           queryTo,
			ExpandThemes: !queryNoExpand,
		}
		if queryTypes != "" {
			for _, t := range strings.Split(queryTypes, ",") {
				if t = strings.TrimSpace(t); t != "" {
					q.Types = append(q.Types, t)
				}
			}
		}

		var out any
		switch queryStat {
		case "":
			out, err = eng.Find(cfg.DataFile, q)
		case "trend":
			out, err = eng.MonthlyTrend(cfg.DataFile, q)
		case "fraktionen":
			out, err = eng.BySubmitter(cfg.DataFile, q, queryGroupBy)
		case "share":
			out, err = eng.SubmitterShare(cfg.DataFile, q, queryGroupBy)
		case "metrics":
			out, err = eng.ProcessingMetrics(cfg.DataFile, q)
		default:
			return fmt.Errorf("unknown --stat %q: must be one of trend, fraktionen, share, metrics", queryStat)
		}
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	queryCmd.Flags().StringVar(&queryTypes, "typ", "", "comma-separated Typ filter")
	queryCmd.Flags().StringVar(&queryFrom, "date-from", "", "start of the submission date range (YYYY-MM-DD)")
	queryCmd.Flags().StringVar(&queryTo, "date-to", "", "end of the submission date range (YYYY-MM-DD)")
	queryCmd.Flags().BoolVar(&queryNoExpand, "no-expand", false, "disable theme expansion of the search terms")
	queryCmd.Flags().StringVar(&queryStat, "stat", "", "print an aggregation instead of rows: trend, fraktionen, share, metrics")
	queryCmd.Flags().StringVar(&queryGroupBy, "group-by", "", "grouping column for fraktionen/share (default: Gestellt von)")
	rootCmd.AddCommand(queryCmd)
}
