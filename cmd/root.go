package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "ratsinfo",
	Short: "Keyword and theme analytics over municipal council proposals",
	Long: `Ratsinfo serves keyword and theme queries over a crawled corpus of
municipal council proposals. It matches documents against search terms,
expands terms through a topic lexicon, and derives monthly trends,
per-faction counts and shares, and processing-time metrics.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".ratsinfo.yml", "config file path")
}
