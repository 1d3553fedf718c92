package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
)

// siteDirCandidates are directories commonly holding a static site's pages.
var siteDirCandidates = []string{"site", "public_html", "www", "static", "docs", "."}

// detectSiteDir returns the first candidate containing an index.html.
func detectSiteDir() string {
	for _, dir := range siteDirCandidates {
		if _, err := os.Stat(dir + "/index.html"); err == nil {
			return dir
		}
	}
	return "site"
}

// localeChoices are offered by the wizard; any BCP 47 tag works in the file.
var localeChoices = []string{"en-US", "en-GB", "de", "fr", "es", "it", "nl", "ja", "pt-BR"}

// RunWizard runs an interactive configuration wizard, saves the result to
// path, and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to sitefill! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site directory.
	sitePrompt := promptui.Prompt{
		Label:   "Directory containing the site's HTML pages",
		Default: detectSiteDir(),
	}
	siteDir, err := sitePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site dir: %w", err)
	}
	cfg.SiteDir = strings.TrimSpace(siteDir)

	// 2. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for rendered pages",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = strings.TrimSpace(outputDir)

	// 3. Data URL.
	dataPrompt := promptui.Prompt{
		Label:    "Base URL serving news.json, gallery.json and credits.json",
		Validate: validateDataURL,
	}
	dataURL, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data url: %w", err)
	}
	cfg.DataURL = strings.TrimSpace(dataURL)

	// 4. Locale.
	localePrompt := promptui.Select{
		Label: "Locale for rendered dates",
		Items: localeChoices,
	}
	_, locale, err := localePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("locale selection: %w", err)
	}
	cfg.Locale = locale

	// 5. Time zone.
	tzPrompt := promptui.Prompt{
		Label:    "Time zone for rendered dates (IANA name, blank for local)",
		Default:  "",
		Validate: validateTimezone,
	}
	tz, err := tzPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("timezone: %w", err)
	}
	cfg.Timezone = strings.TrimSpace(tz)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(path); err != nil {
		return nil, err
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	fmt.Println("Run `sitefill render` to fill your pages, or `sitefill serve` to preview them.")

	return cfg, nil
}

func validateDataURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must be an http or https URL")
	}
	return nil
}

func validateTimezone(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	_, err := time.LoadLocation(s)
	return err
}
