package main

import (
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/wsdindex/query"
	"github.com/revelaction/wsdindex/render"
	"github.com/revelaction/wsdindex/storage"
)

func indexFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "index",
		Aliases:  []string{"d"},
		Usage:    "Output directory of convert, or its index.db",
		EnvVars:  []string{envPrefix + "INDEX"},
		Required: true,
	}
}

func queryCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "Look up sense keys, synsets and sentences interactively",
		Flags: []cli.Flag{
			indexFlag(),
			&cli.BoolFlag{Name: "no-color", Usage: "Do not highlight instances"},
		},
		Action: func(c *cli.Context) error {
			snap, err := readSnapshot(c.String("index"))
			if err != nil {
				return err
			}

			r := render.NewRenderer(ui.Out)
			r.HasColor = !c.Bool("no-color")

			return query.NewHandler(snap, r, ui.Out).Run()
		},
	}
}

func showCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show the sentences of a sense key, synset or sentence id",
		ArgsUsage: "<sensekey|synset|sentenceId>",
		Flags: []cli.Flag{
			indexFlag(),
			&cli.BoolFlag{Name: "json", Usage: "Write the sentences as JSON"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("show command needs exactly one argument: <sensekey|synset|sentenceId>")
			}

			snap, err := readSnapshot(c.String("index"))
			if err != nil {
				return err
			}

			return showSentences(snap, c.Args().First(), c.Bool("json"), ui)
		},
	}
}

func showSentences(snap storage.Snapshot, term string, asJSON bool, ui UI) error {
	sentences := query.Lookup(snap, term)

	if asJSON {
		return render.NewJSONRenderer(ui.Out).Render(sentences)
	}

	r := render.NewRenderer(ui.Out)
	for _, s := range sentences {
		r.Sentence(s, "✍  "+s.Id+" ")
		r.Tokens(s)
	}
	return nil
}
