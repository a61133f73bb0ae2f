package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/revelaction/wsdindex/config"
	"github.com/revelaction/wsdindex/corpus"
	"github.com/revelaction/wsdindex/dataset"
	"github.com/revelaction/wsdindex/gold"
	"github.com/revelaction/wsdindex/stat"
	"github.com/revelaction/wsdindex/storage"
	"github.com/revelaction/wsdindex/storage/filesystem"
	"github.com/revelaction/wsdindex/storage/sqlite/zombiezen"
	"github.com/revelaction/wsdindex/wordnet"
)

const (
	formatBin    = "bin"
	formatSqlite = "sqlite"
)

func formats() []string {
	return []string{formatBin, formatSqlite}
}

type ConvertOptions struct {
	Dataset    string
	Output     string
	Format     string
	Verbose    bool
	NoProgress bool
	Config     config.Config
}

func convertCommand(ui UI, name, flagName, alias, usage string, allowed []string) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagName,
				Aliases:  []string{alias},
				Usage:    fmt.Sprintf("One of %v", allowed),
				Required: true,
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "Output directory, removed if it exists",
				Required: true,
			},
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       fmt.Sprintf("Output format %v", formats()),
				DefaultText: formatBin,
			},
		},
		Action: func(c *cli.Context) error {
			if err := checkEnum(flagName, c.String(flagName), allowed); err != nil {
				return err
			}

			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			opts := ConvertOptions{
				Dataset:    c.String(flagName),
				Output:     c.String("output"),
				Format:     cfg.Format,
				Verbose:    c.Bool("verbose"),
				NoProgress: c.Bool("no-progress"),
				Config:     cfg,
			}
			if c.IsSet("format") {
				opts.Format = c.String("format")
			}

			return runConvert(opts, ui)
		},
	}
}

func runConvert(opts ConvertOptions, ui UI) error {
	if err := checkEnum("format", opts.Format, formats()); err != nil {
		return err
	}

	if opts.Config.WordNet == "" {
		return errors.New("WordNet path must be specified via --wordnet or " + envPrefix + "WORDNET")
	}

	paths, err := dataset.Resolve(opts.Config.Resources, opts.Dataset)
	if err != nil {
		return err
	}

	logger := newLogger(ui.Err, opts.Verbose)
	defer func() { _ = logger.Sync() }()

	dict, err := wordnet.LoadSenseIndex(opts.Config.WordNet, opts.Config.WordNetVersion)
	if err != nil {
		return err
	}
	logger.Debug("loaded sense index", zap.Int("sensekeys", dict.Len()))

	annotations, err := gold.Load(paths.Key)
	if err != nil {
		return err
	}
	logger.Debug("loaded gold keys",
		zap.String("key", paths.Key),
		zap.Int("instances", annotations.IdSenseKeys.Len()))

	indexerOpts := []corpus.Option{corpus.WithLogger(logger)}

	bar := &progressBar{out: ui.Err}
	if !opts.NoProgress {
		indexerOpts = append(indexerOpts, corpus.WithProgress(bar.Update))
	}

	res, err := corpus.NewIndexer(dict, indexerOpts...).Index(paths.XML, paths.Sources, annotations.IdSenseKeys)
	bar.Stop()
	if err != nil {
		return err
	}

	if res.Misses > 0 {
		logger.Info("sense keys without synset", zap.Int("misses", res.Misses))
	}

	snap := storage.Snapshot{
		Instances: res.Instances,
		SenseKeys: res.SenseKeys,
		Synsets:   res.Synsets,
	}
	if err := export(opts, snap); err != nil {
		return err
	}

	hdl := stat.NewHandler()
	hdl.Aggregate(res.Instances, res.SenseKeys, res.Synsets)
	return hdl.Get().Fprint(ui.Out)
}

// progressBar renders the indexed sentences. The bar starts on the first
// update, when the number of sentences is known.
type progressBar struct {
	out io.Writer
	p   *uiprogress.Progress
	bar *uiprogress.Bar
}

func (pb *progressBar) Update(current, total int, _ string) {
	if pb.bar == nil {
		pb.p = uiprogress.New()
		pb.p.Out = pb.out
		pb.p.Start()
		pb.bar = pb.p.AddBar(total)
		pb.bar.AppendCompleted()
		pb.bar.PrependElapsed()
	}
	_ = pb.bar.Set(current)
}

func (pb *progressBar) Stop() {
	if pb.p != nil {
		pb.p.Stop()
	}
}

func export(opts ConvertOptions, snap storage.Snapshot) error {
	switch opts.Format {
	case formatSqlite:
		if err := filesystem.ResetDir(opts.Output); err != nil {
			return err
		}

		pool, err := zombiezen.Open(filepath.Join(opts.Output, zombiezen.DBFile), zombiezen.Create)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := zombiezen.NewIndexStore(pool).Write(snap); err != nil {
			return fmt.Errorf("failed to write index db: %w", err)
		}
		return nil
	default:
		return filesystem.NewIndexStore(opts.Output).Write(snap)
	}
}
