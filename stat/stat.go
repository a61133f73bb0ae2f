package stat

import (
	"fmt"
	"io"
	"math"

	"github.com/revelaction/wsdindex/index"
	sent "github.com/revelaction/wsdindex/sentence"
)

type Handler struct {
	stats Stats
}

// KeyStats describes an inverted index.
type KeyStats struct {
	NumKeys int

	// Mean number of sentences per key, rounded to two decimals
	SentencesPerKeyMean float64
}

type Stats struct {
	NumInstances int
	NumTokens    int
	SenseKey     KeyStats
	Synset       KeyStats
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Aggregate(instances sent.Instances, senseKeys, synsets *index.Index) {
	h.stats.NumInstances = len(instances)
	for _, s := range instances {
		h.stats.NumTokens += len(s.Tokens)
	}

	h.stats.SenseKey = keyStats(senseKeys)
	h.stats.Synset = keyStats(synsets)
}

func keyStats(x *index.Index) KeyStats {
	return KeyStats{NumKeys: x.Len(), SentencesPerKeyMean: Mean(x.Sizes())}
}

// Mean returns the average of counts rounded to two decimals. An empty slice
// has mean 0.
func Mean(counts []int) float64 {
	if len(counts) == 0 {
		return 0
	}

	sum := 0
	for _, c := range counts {
		sum += c
	}

	avg := float64(sum) / float64(len(counts))
	return math.Round(avg*100) / 100
}

// Fprint writes the summary lines to w.
func (s Stats) Fprint(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Total number of instances: %d\n", s.NumInstances); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "stats for sensekeys: #%d avg of %.2f\n", s.SenseKey.NumKeys, s.SenseKey.SentencesPerKeyMean); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "stats for synsets: #%d avg of %.2f\n", s.Synset.NumKeys, s.Synset.SentencesPerKeyMean)
	return err
}
