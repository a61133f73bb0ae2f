package wordnet

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatIdentifier(t *testing.T) {
	tests := []struct {
		offset  int
		pos     string
		version string
		want    string
	}{
		{3, "s", "30", "eng-30-00000003-a"},
		{3, "a", "30", "eng-30-00000003-a"},
		{3, "j", "30", "eng-30-00000003-a"},
		{2114100, "n", "30", "eng-30-02114100-n"},
		{614057, "v", "21", "eng-21-00614057-v"},
		{12345678, "r", "171", "eng-171-12345678-r"},
	}

	for _, tt := range tests {
		if got := FormatIdentifier(tt.offset, tt.pos, tt.version); got != tt.want {
			t.Errorf("FormatIdentifier(%d, %q, %q) = %q, want %q", tt.offset, tt.pos, tt.version, got, tt.want)
		}
	}
}

const indexSense = `abandon%2:31:00:: 00614057 1 3
wolf%1:05:00:: 02114100 1 5
able%5:00:00:competent:00 00510348 2 0
quickly%4:02:00:: 00085811 1 12

`

func TestReadSenseIndex(t *testing.T) {
	si, err := ReadSenseIndex(strings.NewReader(indexSense), DefaultVersion)
	if err != nil {
		t.Fatalf("ReadSenseIndex() error = %v", err)
	}

	if si.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", si.Len())
	}

	want := map[string]string{
		"abandon%2:31:00::":         "eng-30-00614057-v",
		"wolf%1:05:00::":            "eng-30-02114100-n",
		"able%5:00:00:competent:00": "eng-30-00510348-a",
		"quickly%4:02:00::":         "eng-30-00085811-r",
	}
	for key, id := range want {
		got, ok := si.Resolve(key)
		if !ok || got != id {
			t.Errorf("Resolve(%q) = %q, %v, want %q", key, got, ok, id)
		}
	}

	if _, ok := si.Resolve("dog%1:05:00::"); ok {
		t.Errorf("expected miss")
	}
}

func TestReadSenseIndexMalformed(t *testing.T) {
	for _, in := range []string{"wolf%1:05:00::\n", "wolf%1:05:00:: abc 1 1\n", "wolf 02114100 1 1\n", "wolf%9:05:00:: 1 1 1\n"} {
		_, err := ReadSenseIndex(strings.NewReader(in), DefaultVersion)
		if !errors.Is(err, ErrMalformedIndex) {
			t.Errorf("ReadSenseIndex(%q) error = %v, want ErrMalformedIndex", in, err)
		}
	}
}

func TestLoadSenseIndexDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, IndexSenseFile), []byte(indexSense), 0644); err != nil {
		t.Fatal(err)
	}

	si, err := LoadSenseIndex(dir, "30")
	if err != nil {
		t.Fatalf("LoadSenseIndex() error = %v", err)
	}

	if si.Version() != "30" || si.Len() != 4 {
		t.Errorf("unexpected index: version %s len %d", si.Version(), si.Len())
	}
}
