package main

import (
	"github.com/spboyer/filmtop/internal/catalog"
	"github.com/spboyer/filmtop/internal/projectconfig"
	"github.com/spboyer/filmtop/internal/reporting"
	"github.com/spboyer/filmtop/internal/scoring"
	"github.com/spf13/cobra"
)

var (
	actorsMinYear int
	actorsLimit   int
	actorsLenient bool
)

func newActorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actors [catalog]",
		Short: "Show the actor score table",
		Long: `Show every actor of the catalog with their score: the best rating among
the films they appear in. Actors are listed by descending score, then by name.`,
		Args: cobra.MaximumNArgs(1),
		RunE: actorsCommandE,
	}

	cmd.Flags().IntVar(&actorsMinYear, "min-year", 0, "Only consider films released in or after this year")
	cmd.Flags().IntVarP(&actorsLimit, "limit", "n", 0, "Number of actors to show (0: all)")
	cmd.Flags().BoolVar(&actorsLenient, "lenient", false, "Skip malformed rows instead of failing")

	return cmd
}

func actorsCommandE(cmd *cobra.Command, args []string) error {
	cfg, err := projectconfig.Load(".")
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Input.Path = args[0]
	}
	if cmd.Flags().Changed("min-year") {
		cfg.Rank.MinYear = actorsMinYear
	}
	if cmd.Flags().Changed("lenient") {
		cfg.Input.Lenient = &actorsLenient
	}

	res, err := catalog.LoadWithOptions(cfg.Input.Path, catalog.Options{
		MinYear: cfg.Rank.MinYear,
		Lenient: *cfg.Input.Lenient,
	})
	if err != nil {
		return err
	}
	reportSkipped(cmd, res)

	ranked := scoring.BuildActorScores(res.Films).Ranked()
	if actorsLimit > 0 && len(ranked) > actorsLimit {
		ranked = ranked[:actorsLimit]
	}

	printTable(cmd.OutOrStdout(), "Actor", ranked, reporting.Format{Precision: *cfg.Output.Precision})
	return nil
}
