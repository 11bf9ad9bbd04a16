package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stadtratwatch/ratsinfo/internal/config"
	"github.com/stadtratwatch/ratsinfo/internal/keywords"
	"github.com/stadtratwatch/ratsinfo/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the ratsinfo query API server",
	Long:  `Starts the HTTP server exposing document search, trend, faction and processing-time endpoints over the configured proposal dataset.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if servePort != 0 {
			cfg.Port = servePort
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		eng, cache, err := buildEngine(cfg)
		if err != nil {
			return err
		}
		defer eng.Release()

		ex := keywords.NewExtractor(cache, cfg.DataFile)

		srv := server.New(server.Config{
			Port:      cfg.Port,
			DataFile:  cfg.DataFile,
			BatchSize: cfg.BatchSize,
			AllowAll:  cfg.AllowAllOrigins,
		}, eng)
		keywords.RegisterRoutes(srv.Router(), ex)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if cfg.WatchData {
			if err := cache.Watch(ctx, cfg.DataFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: dataset watcher disabled: %v\n", err)
			}
		}

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "ratsinfo server v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Dataset: %s\n", cfg.DataFile)
		fmt.Fprintf(os.Stderr, "  Themes: %d\n", len(eng.Lexicon().Themes()))

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "override the configured port")
	rootCmd.AddCommand(serveCmd)
}
