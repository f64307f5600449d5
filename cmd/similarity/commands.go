package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/TFMV/SimilarityRate/internal/matcher"
	"github.com/TFMV/SimilarityRate/internal/standardizer"
	"github.com/TFMV/SimilarityRate/pkg/db"
	"github.com/TFMV/SimilarityRate/pkg/similarity"
	"github.com/TFMV/SimilarityRate/pkg/utils"
)

func compareCommand() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "Print every rate for two strings",
		ArgsUsage: "A B",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("compare takes exactly two arguments", 2)
			}
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			a, b := c.Args().Get(0), c.Args().Get(1)
			if cfg.Matcher.Normalize {
				a, b = standardizer.Standardize(a), standardizer.Standardize(b)
			}

			report := matcher.Compare(a, b, cfg.Weights.Blend, cfg.Weights.Smart)
			writeReport(c.App.Writer, report)
			return nil
		},
	}
}

func writeReport(out io.Writer, r matcher.Report) {
	scores := r.Formatted()
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, m := range similarity.Methods {
		fmt.Fprintf(tw, "%s\t%s\n", m, scores[m])
	}
	for _, m := range r.Matches {
		fmt.Fprintf(tw, "match\t%q\toffset %d\n", m.Text, m.Offset)
	}
	tw.Flush()
}

func rankCommand() *cli.Command {
	return &cli.Command{
		Name:  "rank",
		Usage: "Rank candidates from a file against a query",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "query", Aliases: []string{"q"}, Required: true, Usage: "String to rank candidates against"},
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Required: true, Usage: "Candidates: .csv with a header, or one per line"},
			&cli.StringFlag{Name: "column", Usage: "CSV column holding the candidates (default: first)"},
			&cli.IntFlag{Name: "top", Aliases: []string{"n"}, Usage: "Keep the best N (0 keeps all)", Value: -1},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			candidates, err := utils.LoadStrings(c.String("file"), c.String("column"))
			if err != nil {
				return err
			}

			method, err := similarity.ParseMethod(cfg.Matcher.Method)
			if err != nil {
				return err
			}
			opts := matcher.Options{
				Method:        method,
				BlendWeights:  cfg.Weights.Blend,
				SmartWeights:  cfg.Weights.Smart,
				TopN:          cfg.Matcher.TopN,
				Workers:       cfg.Matcher.Workers,
				Normalize:     cfg.Matcher.Normalize,
				PrefilterSize: cfg.Matcher.PrefilterSize,
				MinScore:      cfg.Matcher.MinScore,
			}
			if top := c.Int("top"); top >= 0 {
				opts.TopN = top
			}

			m, err := matcher.New(opts)
			if err != nil {
				return err
			}
			ranked, err := m.Rank(c.Context, c.String("query"), candidates)
			if err != nil {
				return err
			}
			writeRanking(c.App.Writer, ranked, matcher.Summarize(ranked))
			return nil
		},
	}
}

func writeRanking(out io.Writer, ranked []matcher.Candidate, s matcher.Summary) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, cand := range ranked {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", cand.Rank, cand.Formatted, cand.Value)
	}
	tw.Flush()
	mean, maxScore := "n/a", "n/a"
	if s.Stats != nil {
		mean, maxScore = similarity.Format(s.Stats.Mean), similarity.Format(s.Stats.Max)
	}
	fmt.Fprintf(out, "scored %d (undefined %d), mean %s, max %s\n", s.Count, s.Undefined, mean, maxScore)
}

func loadCommand() *cli.Command {
	return &cli.Command{
		Name:  "load",
		Usage: "Copy reference strings from a file into the database",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "csv", Required: true, Usage: "File to load: .csv with a header, or one per line"},
			&cli.StringFlag{Name: "column", Usage: "CSV column holding the values (default: first)"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			if !cfg.DBCreds.Configured() {
				return errors.New("no database configured: set db_creds or DATABASE_URL")
			}

			ctx := c.Context
			pool, err := db.NewConnection(ctx, cfg.DBCreds)
			if err != nil {
				return err
			}
			defer pool.Close()

			store := db.NewStore(pool, cfg.DBCreds.ReferenceTable)
			if err := store.EnsureSchema(ctx); err != nil {
				return err
			}
			n, err := store.LoadCSV(ctx, c.String("csv"), c.String("column"))
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "copied %d rows to %s\n", n, cfg.DBCreds.ReferenceTable)
			return nil
		},
	}
}
