// Package dataset resolves the XML and gold key files of the supported WSD
// training corpora and evaluation competitions.
package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrInvalidDataset indicates the name is not a supported corpus or competition.
	ErrInvalidDataset = errors.New("dataset: invalid dataset")

	// ErrMissingResource indicates an expected XML or key file does not exist.
	ErrMissingResource = errors.New("dataset: missing resource")
)

const (
	TrainingDir   = "WSD_Training_Corpora"
	EvaluationDir = "WSD_Unified_Evaluation_Datasets"

	SemCor       = "SemCor"
	OMSTI        = "OMSTI"
	SemCorOMSTI  = "SemCor+OMSTI"
	SourceSemCor = "semcor"
	SourceOMSTI  = "mun"
)

var competitions = []string{"senseval2", "senseval3", "semeval2007", "semeval2013", "semeval2015"}

var trainingSources = map[string][]string{
	SemCor:      {SourceSemCor},
	OMSTI:       {SourceOMSTI},
	SemCorOMSTI: {SourceSemCor, SourceOMSTI},
}

// Paths contains the resolved files of a dataset. XML points to the
// repaired copy of the corpus.
type Paths struct {
	XML     string
	Key     string
	Sources map[string]bool
}

// TrainingCorpora returns the supported training corpus names.
func TrainingCorpora() []string {
	return []string{SemCor, OMSTI, SemCorOMSTI}
}

// Competitions returns the supported competition names.
func Competitions() []string {
	return append([]string(nil), competitions...)
}

func IsTraining(name string) bool {
	_, ok := trainingSources[name]
	return ok
}

func IsCompetition(name string) bool {
	for _, c := range competitions {
		if c == name {
			return true
		}
	}
	return false
}

// Resolve returns the paths of the named dataset under root. The corpus XML
// is repaired (see Repair) and Paths.XML points to the repaired file.
func Resolve(root, name string) (Paths, error) {
	var dir, base string
	var sources []string

	switch {
	case IsTraining(name):
		sources = trainingSources[name]
		corpora := name
		if corpora == OMSTI {
			corpora = SemCorOMSTI
		}
		dir = filepath.Join(root, TrainingDir, corpora)
		base = strings.ToLower(corpora)
	case IsCompetition(name):
		sources = []string{name}
		dir = filepath.Join(root, EvaluationDir, name)
		base = name
	default:
		return Paths{}, fmt.Errorf("%w: %q not in %s", ErrInvalidDataset, name, strings.Join(append(TrainingCorpora(), competitions...), ", "))
	}

	xml := filepath.Join(dir, base+".data.xml")
	key := filepath.Join(dir, base+".gold.key.txt")

	for _, p := range []string{xml, key} {
		if err := exists(p); err != nil {
			return Paths{}, err
		}
	}

	repaired, err := Repair(xml)
	if err != nil {
		return Paths{}, err
	}

	p := Paths{XML: repaired, Key: key, Sources: map[string]bool{}}
	for _, s := range sources {
		p.Sources[s] = true
	}
	return p, nil
}

func exists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrMissingResource, path)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrMissingResource, path)
	}
	return nil
}
