package sentence

import "sort"

// Token represents a word of the sentence, with POS and sense annotations.
type Token struct {
	// The instance id, empty if the token is not sense annotated.
	Id string `json:"id,omitempty" msgpack:"id"`

	// The unmodified word
	Text string `json:"text" msgpack:"text"`

	// The lemma of the word
	Lemma string `json:"lemma" msgpack:"lemma"`

	// Coarse (universal) part of speech
	Pos string `json:"pos" msgpack:"pos"`

	// Gold sense keys, sorted
	SenseKeys []string `json:"sensekeys,omitempty" msgpack:"sensekeys"`

	// Synset identifiers resolved from SenseKeys, sorted
	Synsets []string `json:"synsets,omitempty" msgpack:"synsets"`
}

// NewToken builds a Token. senseKeys and synsets are copied, sorted and
// de-duplicated.
func NewToken(id, text, lemma, pos string, senseKeys, synsets []string) Token {
	return Token{
		Id:        id,
		Text:      text,
		Lemma:     lemma,
		Pos:       pos,
		SenseKeys: sortedSet(senseKeys),
		Synsets:   sortedSet(synsets),
	}
}

// IsInstance reports whether the token is a sense annotated instance.
func (t Token) IsInstance() bool {
	return t.Id != ""
}

func (t Token) HasSenseKey(key string) bool {
	i := sort.SearchStrings(t.SenseKeys, key)
	return i < len(t.SenseKeys) && t.SenseKeys[i] == key
}

func (t Token) HasSynset(id string) bool {
	i := sort.SearchStrings(t.Synsets, id)
	return i < len(t.Synsets) && t.Synsets[i] == id
}

// Sentence is an ordered sequence of tokens sharing a sentence id.
type Sentence struct {
	Id     string  `json:"id" msgpack:"id"`
	Tokens []Token `json:"tokens" msgpack:"tokens"`
}

// Instances returns the sense annotated tokens of the sentence.
func (s Sentence) Instances() []Token {
	var instances []Token
	for _, t := range s.Tokens {
		if t.IsInstance() {
			instances = append(instances, t)
		}
	}
	return instances
}

// Instances maps a sentence id to its Sentence.
type Instances map[string]Sentence

// Ids returns the sentence ids, sorted.
func (in Instances) Ids() []string {
	ids := make([]string, 0, len(in))
	for id := range in {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sortedSet(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
