// Package corpus parses WSD corpus XML and builds the sentence, sense key and
// synset indices.
//
// The XML has the form
//
//	root > corpus[source] > text > sentence[id] > (wf | instance[id])
//
// where root is the synthetic element added by dataset.Repair.
package corpus

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/revelaction/wsdindex/index"
	sent "github.com/revelaction/wsdindex/sentence"
)

// ErrMalformedSource indicates the corpus XML could not be parsed.
var ErrMalformedSource = errors.New("corpus: malformed source")

const (
	tagRoot     = "root"
	tagInstance = "instance"
	tagWf       = "wf"
)

// SenseResolver maps a sense key to a synset identifier.
type SenseResolver interface {
	Resolve(senseKey string) (string, bool)
}

// Result holds the indices built from a corpus.
type Result struct {
	// sense key -> sentence ids
	SenseKeys *index.Index

	// synset identifier -> sentence ids
	Synsets *index.Index

	// sentence id -> sentence
	Instances sent.Instances

	// number of sense key occurrences without synset
	Misses int
}

type xmlRoot struct {
	XMLName xml.Name
	Corpora []xmlCorpus `xml:"corpus"`
}

type xmlCorpus struct {
	Source string    `xml:"source,attr"`
	Texts  []xmlText `xml:"text"`
}

type xmlText struct {
	Sentences []xmlSentence `xml:"sentence"`
}

type xmlSentence struct {
	Id       string     `xml:"id,attr"`
	Elements []xmlToken `xml:",any"`
}

type xmlToken struct {
	XMLName xml.Name
	Id      string `xml:"id,attr"`
	Lemma   string `xml:"lemma,attr"`
	Pos     string `xml:"pos,attr"`
	Text    string `xml:",chardata"`
}

// Option configures an Indexer.
type Option func(*Indexer)

// WithLogger sets the logger used for resolution misses and progress.
func WithLogger(l *zap.Logger) Option {
	return func(ix *Indexer) {
		ix.log = l
	}
}

// WithProgress sets a callback called after each indexed sentence.
func WithProgress(cb func(current, total int, sentId string)) Option {
	return func(ix *Indexer) {
		ix.progress = cb
	}
}

// Indexer builds a Result from corpus XML.
type Indexer struct {
	dict     SenseResolver
	log      *zap.Logger
	progress func(current, total int, sentId string)
}

func NewIndexer(dict SenseResolver, opts ...Option) *Indexer {
	ix := &Indexer{dict: dict, log: zap.NewNop()}
	for _, opt := range opts {
		opt(ix)
	}
	return ix
}

// Index parses the XML file at path. Only corpus elements whose source is in
// sources are indexed. idSenseKeys maps instance ids to their gold sense keys.
func (ix *Indexer) Index(path string, sources map[string]bool, idSenseKeys *index.Index) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()

	ix.log.Info("started loading", zap.String("xml", path))
	start := time.Now()

	res, err := ix.IndexReader(f, sources, idSenseKeys)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}

	ix.log.Info("finished loading",
		zap.String("xml", path),
		zap.Int("sentences", len(res.Instances)),
		zap.Duration("elapsed", time.Since(start)))

	return res, nil
}

// IndexReader is like Index but reads the XML from r.
func (ix *Indexer) IndexReader(r io.Reader, sources map[string]bool, idSenseKeys *index.Index) (Result, error) {
	doc, err := decode(r)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		SenseKeys: index.New(),
		Synsets:   index.New(),
		Instances: sent.Instances{},
	}

	total := 0
	for _, c := range doc.Corpora {
		if !sources[c.Source] {
			ix.log.Debug("skipping corpus", zap.String("source", c.Source))
			continue
		}
		for _, text := range c.Texts {
			total += len(text.Sentences)
		}
	}

	current := 0
	for _, c := range doc.Corpora {
		if !sources[c.Source] {
			continue
		}

		for _, text := range c.Texts {
			for _, s := range text.Sentences {
				res.Instances[s.Id] = ix.sentence(s, idSenseKeys, &res)
				current++
				if ix.progress != nil {
					ix.progress(current, total, s.Id)
				}
			}
		}
	}

	return res, nil
}

// decode reads a single <root> document. Only whitespace, comments and
// processing instructions may follow the root element.
func decode(r io.Reader) (xmlRoot, error) {
	dec := xml.NewDecoder(r)

	var doc xmlRoot
	if err := dec.Decode(&doc); err != nil {
		return xmlRoot{}, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}

	if doc.XMLName.Local != tagRoot {
		return xmlRoot{}, fmt.Errorf("%w: root element is <%s>, want <%s>", ErrMalformedSource, doc.XMLName.Local, tagRoot)
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return doc, nil
		}
		if err != nil {
			return xmlRoot{}, fmt.Errorf("%w: %v", ErrMalformedSource, err)
		}

		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return xmlRoot{}, fmt.Errorf("%w: text after root element at offset %d", ErrMalformedSource, dec.InputOffset())
			}
		default:
			return xmlRoot{}, fmt.Errorf("%w: content after root element at offset %d", ErrMalformedSource, dec.InputOffset())
		}
	}
}

func (ix *Indexer) sentence(s xmlSentence, idSenseKeys *index.Index, res *Result) sent.Sentence {
	tokens := make([]sent.Token, 0, len(s.Elements))

	for _, el := range s.Elements {
		var id string
		var senseKeys, synsets []string

		switch el.XMLName.Local {
		case tagInstance:
			id = el.Id
			senseKeys = idSenseKeys.Values(id)

			for _, key := range senseKeys {
				res.SenseKeys.Add(key, s.Id)

				synset, ok := ix.dict.Resolve(key)
				if !ok {
					res.Misses++
					ix.log.Warn("no synset found",
						zap.String("sensekey", key),
						zap.String("instance", id))
					continue
				}

				synsets = append(synsets, synset)
				res.Synsets.Add(synset, s.Id)
			}
		case tagWf:
		default:
			ix.log.Debug("unknown token element",
				zap.String("tag", el.XMLName.Local),
				zap.String("sentence", s.Id))
		}

		tokens = append(tokens, sent.NewToken(id, el.Text, el.Lemma, el.Pos, senseKeys, synsets))
	}

	return sent.Sentence{Id: s.Id, Tokens: tokens}
}
