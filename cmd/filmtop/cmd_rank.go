package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spboyer/filmtop/internal/catalog"
	"github.com/spboyer/filmtop/internal/metrics"
	"github.com/spboyer/filmtop/internal/projectconfig"
	"github.com/spboyer/filmtop/internal/reporting"
	"github.com/spboyer/filmtop/internal/scoring"
	"github.com/spf13/cobra"
)

var (
	rankMinYear     int
	rankGenre       string
	rankLimit       int
	rankOutput      string
	rankPrecision   int
	rankLenient     bool
	rankGenreMatch  string
	rankScorePolicy string
	rankShow        bool
)

func newRankCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank [catalog]",
		Short: "Rank films and write the top list",
		Long: `Rank the films of a catalog and write the result as "<title>, <score>" lines.

A film's score is the mean of its own rating and the average score of its
cast, where an actor's score is the best rating among the catalog films they
appear in. Films are ordered by descending score, then by title.

The catalog defaults to input.path from .filmtop.yaml (films.csv).
Files ending in .gz or .zst are decompressed on the fly.`,
		Args: cobra.MaximumNArgs(1),
		RunE: rankCommandE,
	}

	cmd.Flags().IntVar(&rankMinYear, "min-year", 0, "Only include films released in or after this year")
	cmd.Flags().StringVar(&rankGenre, "genre", "", "Only include films of this genre (empty: all genres)")
	cmd.Flags().IntVarP(&rankLimit, "limit", "n", 0, "Number of films to keep (0: all)")
	cmd.Flags().StringVarP(&rankOutput, "output", "o", projectconfig.DefaultOutput, "Output file for the ranking")
	cmd.Flags().IntVar(&rankPrecision, "precision", projectconfig.DefaultPrecision, "Fractional digits of scores (-1: shortest exact form)")
	cmd.Flags().BoolVar(&rankLenient, "lenient", false, "Skip malformed rows instead of failing")
	cmd.Flags().StringVar(&rankGenreMatch, "genre-match", projectconfig.DefaultGenreMatch, "Genre filter mode: exact, any")
	cmd.Flags().StringVar(&rankScorePolicy, "score-policy", projectconfig.DefaultScorePolicy, "Score formula: blend, cast")
	cmd.Flags().BoolVar(&rankShow, "show", false, "Also print the ranking as a table")

	return cmd
}

func rankCommandE(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := projectconfig.Load(".")
	if err != nil {
		return err
	}
	applyRankFlags(cmd, cfg, args)

	match, err := scoring.ParseGenreMatch(cfg.Rank.GenreMatch)
	if err != nil {
		return err
	}
	policy, err := scoring.ParseScorePolicy(cfg.Rank.ScorePolicy)
	if err != nil {
		return err
	}
	if *cfg.Output.Precision < -1 {
		return fmt.Errorf("precision must be -1 or greater, got %d", *cfg.Output.Precision)
	}

	res, err := catalog.LoadWithOptions(cfg.Input.Path, catalog.Options{
		MinYear: cfg.Rank.MinYear,
		Lenient: *cfg.Input.Lenient,
	})
	if err != nil {
		return err
	}
	reportSkipped(cmd, res)

	entries := scoring.Rank(res.Films, scoring.BuildActorScores(res.Films), scoring.Options{
		Genre:  cfg.Rank.Genre,
		Limit:  cfg.Rank.Limit,
		Match:  match,
		Policy: policy,
	})

	format := reporting.Format{Precision: *cfg.Output.Precision}
	if err := reporting.WriteTop(entries, cfg.Output.Path, format); err != nil {
		return err
	}

	summary := metrics.Summarize(entries)
	slog.Debug("ranking complete",
		"input", cfg.Input.Path,
		"output", cfg.Output.Path,
		"entries", summary.Count,
		"min", summary.Min,
		"max", summary.Max,
		"mean", summary.Mean,
		"stddev", summary.StdDev)

	out := cmd.OutOrStdout()
	if rankShow {
		printTable(out, "Title", entries, format)
	}
	fmt.Fprintf(out, "execution_time = %.4f\n", time.Since(start).Seconds()) //nolint:errcheck
	return nil
}

// applyRankFlags overlays explicitly set flags and the positional catalog
// path onto cfg.
func applyRankFlags(cmd *cobra.Command, cfg *projectconfig.ProjectConfig, args []string) {
	if len(args) > 0 {
		cfg.Input.Path = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("min-year") {
		cfg.Rank.MinYear = rankMinYear
	}
	if flags.Changed("genre") {
		cfg.Rank.Genre = rankGenre
	}
	if flags.Changed("limit") {
		cfg.Rank.Limit = rankLimit
	}
	if flags.Changed("output") {
		cfg.Output.Path = rankOutput
	}
	if flags.Changed("precision") {
		cfg.Output.Precision = &rankPrecision
	}
	if flags.Changed("lenient") {
		cfg.Input.Lenient = &rankLenient
	}
	if flags.Changed("genre-match") {
		cfg.Rank.GenreMatch = rankGenreMatch
	}
	if flags.Changed("score-policy") {
		cfg.Rank.ScorePolicy = rankScorePolicy
	}
}

func reportSkipped(cmd *cobra.Command, res *catalog.Result) {
	if len(res.Skipped) == 0 {
		return
	}
	w := cmd.ErrOrStderr()
	fmt.Fprintf(w, "warning: skipped %d malformed row(s)\n", len(res.Skipped)) //nolint:errcheck
	for _, pe := range res.Skipped {
		fmt.Fprintf(w, "  %v\n", pe) //nolint:errcheck
	}
}
