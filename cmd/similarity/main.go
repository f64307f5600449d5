package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/TFMV/SimilarityRate/pkg/config"
	"github.com/TFMV/SimilarityRate/pkg/utils"
)

// loadConfig loads the file named by --config and applies flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	utils.SetEnvironment(cfg.Environment)

	if c.IsSet("method") {
		cfg.Matcher.Method = c.String("method")
	}
	if c.IsSet("normalize") {
		cfg.Matcher.Normalize = c.Bool("normalize")
	}
	return cfg, cfg.Validate()
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "similarity",
		Usage: "Score how similar strings are",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				EnvVars: []string{"CONFIG_PATH"},
			},
			&cli.StringFlag{
				Name:    "method",
				Aliases: []string{"m"},
				Usage:   "Scoring method: lcs, tcc, blend or smart",
			},
			&cli.BoolFlag{
				Name:  "normalize",
				Usage: "Standardize strings before scoring",
			},
		},
		Commands: []*cli.Command{
			compareCommand(),
			rankCommand(),
			loadCommand(),
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		utils.NewLogger("cli").FatalErr(err, "command failed")
	}
}
