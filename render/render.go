package render

import (
	"fmt"
	"io"
	"strings"

	sent "github.com/revelaction/wsdindex/sentence"
)

var (
	Red       = "\033[1;31m"
	Green     = "\033[1;32m"
	Yellow    = "\033[0;33m"
	Teal      = "\033[1;36m"
	Gray      = "\033[0;37m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
)

// Renderer writes sentences as text.
type Renderer struct {
	HasColor bool

	// Show the sense keys of instance tokens after the word
	HasSenseKeys bool

	Out io.Writer
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{Out: w, HasSenseKeys: true}
}

// Sentence writes the sentence in one line. Instance tokens are highlighted.
func (r *Renderer) Sentence(s sent.Sentence, prefix string) {
	fmt.Fprintf(r.Out, "%s%s\n", prefix, r.SentenceString(s))
}

func (r *Renderer) SentenceString(s sent.Sentence) string {
	words := make([]string, 0, len(s.Tokens))
	for _, t := range s.Tokens {
		words = append(words, r.token(t))
	}
	return strings.ReplaceAll(strings.Join(words, " "), "\n", " ")
}

func (r *Renderer) token(t sent.Token) string {
	if !t.IsInstance() {
		return t.Text
	}

	word := t.Text
	if r.HasSenseKeys && len(t.SenseKeys) > 0 {
		word += "[" + strings.Join(t.SenseKeys, ",") + "]"
	}

	if r.HasColor {
		color := Yellow256
		if len(t.Synsets) > 0 {
			color = Green
		}
		return color + word + Off
	}
	return word
}

// Tokens writes one line per token of the sentence.
func (r *Renderer) Tokens(s sent.Sentence) {
	for _, t := range s.Tokens {
		fmt.Fprintf(r.Out, "%20q %15q %6s %18s %s %s\n", t.Text, t.Lemma, t.Pos, t.Id, strings.Join(t.SenseKeys, ","), strings.Join(t.Synsets, ","))
	}
}
