package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	hostFlag           string
	postsDirFlag       string
	pagesDirFlag       string
	settingsPath       string
	digestTemplatePath string
	postTemplatePath   string
	startDate          string
	offsetDays         int
	verboseMode        bool

	debugEnabled bool
)

// SetDebugMode enables or disables verbose logging
func SetDebugMode(enabled bool) {
	debugEnabled = enabled
}

func debugLog(format string, args ...interface{}) {
	if debugEnabled {
		log.Printf(format, args...)
	}
}

var rootCmd = &cobra.Command{
	Use:   "feeds",
	Short: "Generate Nikola content from the daily items CSV feed",
	Long: `Fetches the daily items CSV from the feed endpoint and converts it
into content files for the Nikola static-site generator.

Dates are given as YYYY-MM-DD arguments; with no arguments the current
day's feed is processed.`,
}

var digestCmd = &cobra.Command{
	Use:   "digest [date...]",
	Short: "Write one daily digest page per date",
	Long: `Writes one digest page per requested date, with items grouped by
category and source. Existing pages for the same date are overwritten.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd, args, func(settings *Settings, overrides *ConfigOverrides) PageWriter {
			dir := settings.PagesDirectory
			if pagesDirFlag != "" {
				dir = pagesDirFlag
			}
			return NewDigestWriter(dir, overrides)
		})
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate [date...]",
	Short: "Generate blog posts from CSV data",
	Long: `Writes one blog post per feed item under posts/<date>/<slug>.md.
Existing post files are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd, args, func(settings *Settings, overrides *ConfigOverrides) PageWriter {
			dir := settings.PostsDirectory
			if postsDirFlag != "" {
				dir = postsDirFlag
			}
			return NewBlogPostWriter(dir, settings.DefaultTags, overrides)
		})
	},
}

func runImport(cmd *cobra.Command, args []string, makeWriter func(*Settings, *ConfigOverrides) PageWriter) error {
	SetDebugMode(verboseMode)

	dates, err := resolveDates(args, startDate, offsetDays, cmd.Flags().Changed("offset-days"))
	if err != nil {
		return err
	}

	if err := ensureConfigExists(); err != nil {
		return fmt.Errorf("ensuring config files exist: %w", err)
	}

	overrides := buildOverrides()
	settings, err := LoadSettings(overrides)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	if hostFlag != "" {
		settings.Host = hostFlag
	}

	if len(dates) == 0 {
		fmt.Printf("Processing today's items from %s\n", settings.Host)
	} else {
		fmt.Printf("Processing %d dates from %s\n", len(dates), settings.Host)
	}

	fetcher := NewFeedFetcher(settings.Host)
	importer := NewImporter(fetcher, makeWriter(settings, overrides))

	results := importer.ImportDates(dates)
	printSummary(results)

	// Individual date failures are reported in the summary but do not fail
	// the batch.
	return nil
}

// resolveDates validates positional date arguments or expands the
// --start-date/--offset-days range. An empty result means "today".
func resolveDates(args []string, start string, offset int, offsetSet bool) ([]string, error) {
	if start != "" || offsetSet {
		if len(args) > 0 {
			return nil, fmt.Errorf("cannot combine date arguments with --start-date")
		}
		if start == "" || !offsetSet {
			return nil, fmt.Errorf("date ranges require both --start-date and --offset-days")
		}

		from, err := parseDate(start)
		if err != nil {
			return nil, err
		}

		to := from.AddDate(0, 0, offset)
		if to.Before(from) {
			from, to = to, from
		}

		var dates []string
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			dates = append(dates, d.Format("2006-01-02"))
		}
		debugLog("Processing date range %s to %s (%d days)", dates[0], dates[len(dates)-1], len(dates))
		return dates, nil
	}

	for _, arg := range args {
		if _, err := parseDate(arg); err != nil {
			return nil, err
		}
	}
	return args, nil
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s. Use YYYY-MM-DD format", value)
	}
	return parsed, nil
}

func buildOverrides() *ConfigOverrides {
	overrides := &ConfigOverrides{}
	if settingsPath != "" {
		overrides.SettingsPath = &settingsPath
	}
	if digestTemplatePath != "" {
		overrides.DigestTemplatePath = &digestTemplatePath
	}
	if postTemplatePath != "" {
		overrides.PostTemplatePath = &postTemplatePath
	}
	return overrides
}

func init() {
	rootCmd.PersistentFlags().StringVar(&hostFlag, "host", "", "Feed endpoint host (default from settings)")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "Path to settings file")
	rootCmd.PersistentFlags().StringVar(&startDate, "start-date", "", "First date of a date range (requires --offset-days)")
	rootCmd.PersistentFlags().IntVar(&offsetDays, "offset-days", 0, "Number of days to extend the range; may be negative")
	rootCmd.PersistentFlags().BoolVar(&verboseMode, "verbose", false, "Enable verbose logging")

	digestCmd.Flags().StringVar(&pagesDirFlag, "pages-dir", "", "Output directory for digest pages")
	digestCmd.Flags().StringVar(&digestTemplatePath, "digest-template", "", "Path to custom digest page template")

	generateCmd.Flags().StringVar(&postsDirFlag, "posts-dir", "", "Output directory for blog posts")
	generateCmd.Flags().StringVar(&postTemplatePath, "post-template", "", "Path to custom blog post template")

	rootCmd.AddCommand(digestCmd)
	rootCmd.AddCommand(generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
