package query

import (
	"fmt"
	"io"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/wsdindex/render"
	sent "github.com/revelaction/wsdindex/sentence"
	"github.com/revelaction/wsdindex/storage"
)

const (
	completionThreshold = 2

	// synsetPrefix starts every synset identifier
	synsetPrefix = "eng-"

	maxSuggestions = 12
)

// Kind is the kind of term looked up.
type Kind string

const (
	KindSenseKey Kind = "sensekey"
	KindSynset   Kind = "synset"
	KindSentence Kind = "sentence"
)

// TermKind classifies a lookup term: sense keys contain '%', synset
// identifiers start with "eng-", anything else is a sentence id.
func TermKind(term string) Kind {
	switch {
	case strings.Contains(term, "%"):
		return KindSenseKey
	case strings.HasPrefix(term, synsetPrefix):
		return KindSynset
	default:
		return KindSentence
	}
}

// Lookup returns the sentences of a sense key, a synset identifier or a
// sentence id, sorted by sentence id.
func Lookup(s storage.Snapshot, term string) []sent.Sentence {
	switch TermKind(term) {
	case KindSenseKey:
		return s.Sentences(s.SenseKeys.Values(term))
	case KindSynset:
		return s.Sentences(s.Synsets.Values(term))
	default:
		return s.Sentences([]string{term})
	}
}

type Handler struct {
	Snapshot storage.Snapshot
	Renderer *render.Renderer
	Out      io.Writer

	keys []string
}

func NewHandler(s storage.Snapshot, r *render.Renderer, w io.Writer) *Handler {
	keys := append(s.SenseKeys.Keys(), s.Synsets.Keys()...)
	return &Handler{
		Snapshot: s,
		Renderer: r,
		Out:      w,
		keys:     keys,
	}
}

func (h *Handler) Run() error {

	fmt.Fprintln(h.Out, "🔑 sense key, synset or sentence id, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input("      🔖 ", h.completer,
			prompt.OptionTitle("wsdindex query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(maxSuggestions),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
		)

		in = strings.TrimSpace(in)
		if in == "quit" {
			return nil
		}

		if in == "" {
			continue
		}

		history = append(history, in)
		h.Print(in)
	}
}

// Print writes the sentences of term.
func (h *Handler) Print(term string) {
	sentences := Lookup(h.Snapshot, term)
	if len(sentences) == 0 {
		fmt.Fprintf(h.Out, "no sentences for %s %q\n", TermKind(term), term)
		return
	}

	for _, s := range sentences {
		h.Renderer.Sentence(s, fmt.Sprintf("✍  %s ", s.Id))
	}
	fmt.Fprintf(h.Out, "%d sentences for %s %q\n", len(sentences), TermKind(term), term)
}

func (h *Handler) completer(d prompt.Document) []prompt.Suggest {
	word := d.GetWordBeforeCursor()
	return Suggest(h.keys, word)
}

// Suggest returns up to maxSuggestions keys starting with word.
func Suggest(keys []string, word string) []prompt.Suggest {
	if len(word) < completionThreshold {
		return []prompt.Suggest{}
	}

	var s []prompt.Suggest
	for _, k := range keys {
		if strings.HasPrefix(k, word) {
			s = append(s, prompt.Suggest{Text: k})
			if len(s) == maxSuggestions {
				break
			}
		}
	}
	return s
}
