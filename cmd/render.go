package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/sitefill/internal/progress"
	"github.com/ziadkadry99/sitefill/internal/render"
	"github.com/ziadkadry99/sitefill/internal/site"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render every page of the site into the output directory",
	Long: `Walks the site directory, fills the news, gallery and credits containers
of every page matched by the include patterns, and writes the result to the
output directory. Every other file is copied verbatim.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("site", "", "override site directory")
	renderCmd.Flags().String("output", "", "override output directory")
	renderCmd.Flags().String("data-url", "", "override base URL of the JSON resources")
	renderCmd.Flags().String("locale", "", "override locale used for dates")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.DataURL == "" {
		return fmt.Errorf("data_url is required for render\nSet it in %s or pass --data-url", cfgFile)
	}
	base, err := cfg.DataBaseURL()
	if err != nil {
		return err
	}
	dates, err := newFormatter(cfg)
	if err != nil {
		return err
	}

	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	builder := &site.Builder{
		SiteDir:   cfg.SiteDir,
		OutputDir: cfg.OutputDir,
		Include:   cfg.Include,
		Exclude:   cfg.Exclude,
		Env: render.Env{
			Fetcher: newFetcher(cfg, base, log),
			Dates:   dates,
		},
		Reporter: progress.NewReporter(),
		Log:      log,
	}

	pageCount, err := builder.Build(ctx)
	if err != nil {
		return fmt.Errorf("rendering site: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Site rendered: %s (%d pages)\n", cfg.OutputDir, pageCount)
	return nil
}
