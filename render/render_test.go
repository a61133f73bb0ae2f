package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	sent "github.com/revelaction/wsdindex/sentence"
)

func sentence() sent.Sentence {
	return sent.Sentence{
		Id: "d000.s000",
		Tokens: []sent.Token{
			sent.NewToken("", "The", "the", "DET", nil, nil),
			sent.NewToken("d000.s000.t000", "wolf", "wolf", "NOUN", []string{"wolf%1:05:00::"}, []string{"eng-30-02114100-n"}),
			sent.NewToken("", "howls", "howl", "VERB", nil, nil),
		},
	}
}

func TestSentenceString(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{})

	if got := r.SentenceString(sentence()); got != "The wolf[wolf%1:05:00::] howls" {
		t.Errorf("SentenceString() = %q", got)
	}

	r.HasSenseKeys = false
	r.HasColor = true
	if got := r.SentenceString(sentence()); got != "The "+Green+"wolf"+Off+" howls" {
		t.Errorf("SentenceString() = %q", got)
	}
}

func TestSentencePrefix(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).Sentence(sentence(), "✍  ")

	if !strings.HasPrefix(buf.String(), "✍  The wolf") || !strings.HasSuffix(buf.String(), "\n") {
		t.Errorf("Sentence() wrote %q", buf.String())
	}
}

func TestTokens(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).Tokens(sentence())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	if !strings.Contains(lines[1], "eng-30-02114100-n") {
		t.Errorf("instance line %q", lines[1])
	}
}

func TestJSONRendererRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONRenderer(&buf).Render(nil); err != nil {
		t.Fatal(err)
	}

	var results []sent.Sentence
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if results == nil || len(results) != 0 {
		t.Fatalf("expected empty array, got %v", results)
	}
}

func TestJSONRendererRenderOne(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONRenderer(&buf).Render([]sent.Sentence{sentence()}); err != nil {
		t.Fatal(err)
	}

	var results []sent.Sentence
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(results) != 1 || len(results[0].Tokens) != 3 {
		t.Fatalf("unexpected results %+v", results)
	}

	if results[0].Tokens[1].SenseKeys[0] != "wolf%1:05:00::" {
		t.Errorf("sense key lost: %+v", results[0].Tokens[1])
	}
}
