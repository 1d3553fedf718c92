package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/sitefill/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sitefill",
	Short: "Fill static HTML pages with news, gallery and credits content",
	Long: `sitefill fetches news.json, gallery.json and credits.json and fills the
matching containers of your static HTML pages with escaped, formatted
markup. Render a whole site ahead of time, or serve it and render each
page on request.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
