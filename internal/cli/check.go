package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/ppiankov/msgsweep/internal/model"
	"github.com/ppiankov/msgsweep/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	catalogPath string
	searchRoots []string
	extensions  []string
	minFragment int
	marker      string
	workers     int
	outJSON     string
	outMD       string
	noCache     bool
	noFooter    bool
)

// checkCmd represents the check command; it is also what a bare invocation
// of the tool runs.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Sweep the source tree for unused catalog messages",
	Long: `Check parses the translation catalog, loads the source corpus, and
classifies every declared message identifier:
- Search for the identifier as a quoted literal ("id", 'id', or backticks)
- On a miss, search for runtime construction: a fixed prefix followed by
  the interpolation marker, plus the fixed suffix elsewhere in the file
- Report anything left over as unused

Example:
  msgsweep check
  msgsweep check --catalog l10n/en-US/messages.ftl --root web --root src
  msgsweep check --json report.json --md report.md`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addCheckFlags(checkCmd)

	// The bare root invocation shares the same flags
	addCheckFlags(rootCmd)
}

func addCheckFlags(cmd *cobra.Command) {
	// Input flags
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "catalog file path (default from config)")
	cmd.Flags().StringSliceVar(&searchRoots, "root", nil, "source directory to scan (repeatable)")
	cmd.Flags().StringSliceVar(&extensions, "ext", nil, "file extension to scan, with leading dot (repeatable)")

	// Matching flags
	cmd.Flags().IntVar(&minFragment, "min-fragment", 0, "minimum prefix/suffix length for dynamic evidence")
	cmd.Flags().StringVar(&marker, "marker", "", "interpolation-open marker in scanned sources")

	// Execution flags
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of concurrent classification workers")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable source content caching")

	// Output flags
	cmd.Flags().StringVar(&outJSON, "json", "", "output JSON report path (optional)")
	cmd.Flags().StringVar(&outMD, "md", "", "output Markdown report path (optional)")
	cmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

// buildConfig assembles the engine configuration from defaults, the viper
// config file, and flags, in ascending priority.
func buildConfig(cmd *cobra.Command) *model.Config {
	cfg := model.DefaultConfig()

	// Config file values
	if viper.IsSet("catalog.path") {
		cfg.Catalog.Path = viper.GetString("catalog.path")
	}
	if viper.IsSet("corpus.roots") {
		cfg.Corpus.Roots = viper.GetStringSlice("corpus.roots")
	}
	if viper.IsSet("corpus.extensions") {
		cfg.Corpus.Extensions = viper.GetStringSlice("corpus.extensions")
	}
	if viper.IsSet("match.min_fragment_length") {
		cfg.Match.MinFragmentLength = viper.GetInt("match.min_fragment_length")
	}
	if viper.IsSet("match.interpolation_marker") {
		cfg.Match.InterpolationMarker = viper.GetString("match.interpolation_marker")
	}
	if viper.IsSet("concurrency.workers") {
		cfg.Concurrency.Workers = viper.GetInt("concurrency.workers")
	}

	// Flag overrides
	if catalogPath != "" {
		cfg.Catalog.Path = catalogPath
	}
	if len(searchRoots) > 0 {
		cfg.Corpus.Roots = searchRoots
	}
	if len(extensions) > 0 {
		cfg.Corpus.Extensions = extensions
	}
	if minFragment > 0 {
		cfg.Match.MinFragmentLength = minFragment
	}
	if marker != "" {
		cfg.Match.InterpolationMarker = marker
	}
	if cmd.Flags().Changed("workers") {
		cfg.Concurrency.Workers = workers
	}

	cfg.Corpus.CacheEnabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	return cfg
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(cmd)

	if verbose {
		fmt.Fprintf(os.Stderr, "Catalog: %s\n", cfg.Catalog.Path)
		fmt.Fprintf(os.Stderr, "Roots:   %v\n", cfg.Corpus.Roots)
		fmt.Fprintf(os.Stderr, "Workers: %d\n", cfg.Concurrency.Workers)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg, nil)

	report, err := p.Run()
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	renderer := pipeline.NewRenderer(nil, os.Stdout, cfg.Output.IncludeFooter)

	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}

	if outMD != "" {
		if err := renderer.RenderMarkdown(report, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}

	renderer.RenderSummary(report)

	if report.HasUnused() {
		return pipeline.ErrUnusedMessages
	}

	return nil
}
