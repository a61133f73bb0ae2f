package storage

import (
	"github.com/revelaction/wsdindex/index"
	sent "github.com/revelaction/wsdindex/sentence"
)

// Snapshot holds the three exported structures. It is not modified after
// indexing.
type Snapshot struct {
	Instances sent.Instances
	SenseKeys *index.Index
	Synsets   *index.Index
}

// Sentences returns the sentences of the given ids that exist in the snapshot.
func (s Snapshot) Sentences(ids []string) []sent.Sentence {
	var out []sent.Sentence
	for _, id := range ids {
		if sentence, ok := s.Instances[id]; ok {
			out = append(out, sentence)
		}
	}
	return out
}

// IndexWriter defines write operations for index storage
type IndexWriter interface {
	// Write persists the snapshot
	Write(s Snapshot) error
}

// IndexReader defines read operations for index storage
type IndexReader interface {
	// Read loads a snapshot
	Read() (Snapshot, error)
}
