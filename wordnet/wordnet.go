// Package wordnet maps WordNet sense keys to synset identifiers of the form
// eng-<version>-<offset>-<pos>.
package wordnet

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrMalformedIndex indicates a line of index.sense could not be parsed.
var ErrMalformedIndex = errors.New("wordnet: malformed sense index")

const (
	DefaultVersion = "30"
	IndexSenseFile = "index.sense"
)

// Dictionary resolves sense keys to synset identifiers.
type Dictionary interface {
	// Resolve returns the synset identifier of senseKey.
	Resolve(senseKey string) (string, bool)

	// Format builds a synset identifier.
	Format(offset int, pos string, version string) string
}

// ssType maps the synset type digit of a sense key to its pos tag.
var ssType = map[byte]string{
	'1': "n",
	'2': "v",
	'3': "a",
	'4': "r",
	'5': "s",
}

// FormatIdentifier returns eng-VERSION-OFFSET-POS with the offset zero padded
// to 8 digits. Satellite adjectives (s, j) are formatted as adjectives (a).
func FormatIdentifier(offset int, pos string, version string) string {
	if pos == "s" || pos == "j" {
		pos = "a"
	}
	return fmt.Sprintf("eng-%s-%08d-%s", version, offset, pos)
}

// SenseIndex is a Dictionary backed by a WordNet index.sense file.
type SenseIndex struct {
	version string
	ids     map[string]string
}

var _ Dictionary = (*SenseIndex)(nil)

// NewSenseIndex returns an empty index for the given WordNet version.
func NewSenseIndex(version string) *SenseIndex {
	return &SenseIndex{version: version, ids: map[string]string{}}
}

// Add maps senseKey to the synset at offset with the given pos.
func (si *SenseIndex) Add(senseKey string, offset int, pos string) {
	si.ids[senseKey] = si.Format(offset, pos, si.version)
}

func (si *SenseIndex) Resolve(senseKey string) (string, bool) {
	id, ok := si.ids[senseKey]
	return id, ok
}

func (si *SenseIndex) Format(offset int, pos string, version string) string {
	return FormatIdentifier(offset, pos, version)
}

func (si *SenseIndex) Len() int {
	return len(si.ids)
}

func (si *SenseIndex) Version() string {
	return si.version
}

// LoadSenseIndex reads the index.sense file at path. If path is a directory,
// the index.sense inside it is used.
func LoadSenseIndex(path, version string) (*SenseIndex, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, IndexSenseFile)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	si, err := ReadSenseIndex(f, version)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return si, nil
}

// ReadSenseIndex parses lines of the form
//
//	sense_key synset_offset sense_number tag_cnt
func ReadSenseIndex(r io.Reader, version string) (*SenseIndex, error) {
	si := NewSenseIndex(version)

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedIndex, lineNum, scanner.Text())
		}

		pos, err := Pos(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedIndex, lineNum, err)
		}

		offset, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: offset %q", ErrMalformedIndex, lineNum, fields[1])
		}

		si.Add(fields[0], offset, pos)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return si, nil
}

// Pos returns the pos tag encoded in the ss_type field of a sense key
// (lemma%ss_type:lex_filenum:lex_id:head_word:head_id).
func Pos(senseKey string) (string, error) {
	i := strings.IndexByte(senseKey, '%')
	if i < 0 || i+1 >= len(senseKey) {
		return "", fmt.Errorf("sense key without ss_type: %q", senseKey)
	}

	pos, ok := ssType[senseKey[i+1]]
	if !ok {
		return "", fmt.Errorf("unknown ss_type in sense key %q", senseKey)
	}
	return pos, nil
}
