package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/wsdindex/config"
	"github.com/revelaction/wsdindex/dataset"
)

// Set with -ldflags at build time
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

const envPrefix = "WSDINDEX_"

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := config.LoadEnv(); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "wsdindex: %v\n", err)
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:                 "wsdindex",
		Usage:                "index WSD corpora by sense key and synset",
		Version:              BuildTag,
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML config file",
				EnvVars: []string{envPrefix + "CONFIG"},
			},
			&cli.StringFlag{
				Name:        "resources",
				Usage:       "Directory with WSD_Training_Corpora and WSD_Unified_Evaluation_Datasets",
				DefaultText: config.DefaultResources,
				EnvVars:     []string{envPrefix + "RESOURCES"},
			},
			&cli.StringFlag{
				Name:    "wordnet",
				Usage:   "WordNet dict directory or index.sense file",
				EnvVars: []string{envPrefix + "WORDNET"},
			},
			&cli.StringFlag{
				Name:        "wn-version",
				Usage:       "WordNet version used in synset identifiers",
				DefaultText: "30",
				EnvVars:     []string{envPrefix + "WN_VERSION"},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log debug messages",
			},
			&cli.BoolFlag{
				Name:  "no-progress",
				Usage: "Do not show the progress bar",
			},
		},
		Commands: []*cli.Command{
			convertCommand(ui, "convert", "corpora", "i", "Index a training corpus", dataset.TrainingCorpora()),
			convertCommand(ui, "eval", "competition", "c", "Index an evaluation competition", dataset.Competitions()),
			queryCommand(ui),
			showCommand(ui),
			{
				Name:  "version",
				Usage: "Print the version",
				Action: func(c *cli.Context) error {
					return versionCommand(ui)
				},
			},
		},
	}
}

// loadConfig reads the config file and applies the global flags over it.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return config.Config{}, err
	}

	if c.IsSet("resources") {
		cfg.Resources = c.String("resources")
	}
	if c.IsSet("wordnet") {
		cfg.WordNet = c.String("wordnet")
	}
	if c.IsSet("wn-version") {
		cfg.WordNetVersion = c.String("wn-version")
	}

	return cfg, nil
}

// checkEnum returns an error if value is not one of allowed.
func checkEnum(name, value string, allowed []string) error {
	for _, a := range allowed {
		if a == value {
			return nil
		}
	}
	return fmt.Errorf("invalid value %q for flag -%s: allowed values are %s", value, name, strings.Join(allowed, ", "))
}
