package dataset

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const corpusXML = `<?xml version="1.0" encoding="UTF-8"?>
<corpus lang="en" source="semcor">
<text id="d000">
<sentence id="d000.s000">
<instance id="d000.s000.t000" lemma="wolf" pos="NOUN">wolf</instance>
</sentence>
</text>
</corpus>
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func setupTraining(t *testing.T, root, corpora string) {
	t.Helper()
	dir := filepath.Join(root, TrainingDir, corpora)
	base := map[string]string{SemCor: "semcor", SemCorOMSTI: "semcor+omsti"}[corpora]
	writeFile(t, filepath.Join(dir, base+".data.xml"), corpusXML)
	writeFile(t, filepath.Join(dir, base+".gold.key.txt"), "d000.s000.t000 wolf%1:05:00::\n")
}

func TestResolveTraining(t *testing.T) {
	root := t.TempDir()
	setupTraining(t, root, SemCor)
	setupTraining(t, root, SemCorOMSTI)

	tests := []struct {
		name    string
		dir     string
		sources []string
	}{
		{SemCor, "SemCor", []string{"semcor"}},
		{OMSTI, "SemCor+OMSTI", []string{"mun"}},
		{SemCorOMSTI, "SemCor+OMSTI", []string{"semcor", "mun"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Resolve(root, tt.name)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}

			if filepath.Base(filepath.Dir(p.XML)) != tt.dir {
				t.Errorf("XML dir = %s, want %s", filepath.Dir(p.XML), tt.dir)
			}

			if filepath.Ext(p.XML) != RepairSuffix {
				t.Errorf("XML %s is not the repaired file", p.XML)
			}

			if len(p.Sources) != len(tt.sources) {
				t.Fatalf("Sources = %v, want %v", p.Sources, tt.sources)
			}
			for _, s := range tt.sources {
				if !p.Sources[s] {
					t.Errorf("source %s not accepted", s)
				}
			}

			for _, f := range []string{p.XML, p.Key} {
				if _, err := os.Stat(f); err != nil {
					t.Errorf("resolved path not readable: %v", err)
				}
			}
		})
	}
}

func TestResolveCompetition(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, EvaluationDir, "senseval2")
	writeFile(t, filepath.Join(dir, "senseval2.data.xml"), corpusXML)
	writeFile(t, filepath.Join(dir, "senseval2.gold.key.txt"), "d000.s000.t000 wolf%1:05:00::\n")

	p, err := Resolve(root, "senseval2")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if len(p.Sources) != 1 || !p.Sources["senseval2"] {
		t.Errorf("Sources = %v", p.Sources)
	}
}

func TestResolveInvalid(t *testing.T) {
	// root does not exist: any file access would fail differently
	for _, name := range []string{"", "semcor", "senseval4", "WordNet"} {
		_, err := Resolve("/nonexistent", name)
		if !errors.Is(err, ErrInvalidDataset) {
			t.Errorf("Resolve(%q) error = %v, want ErrInvalidDataset", name, err)
		}
	}
}

func TestResolveMissing(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, TrainingDir, SemCor)
	writeFile(t, filepath.Join(dir, "semcor.data.xml"), corpusXML)

	_, err := Resolve(root, SemCor)
	if !errors.Is(err, ErrMissingResource) {
		t.Fatalf("error = %v, want ErrMissingResource", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "semcor.data.xml"+RepairSuffix)); err == nil {
		t.Errorf("repair ran before resources were validated")
	}

	_, err = Resolve(t.TempDir(), SemCor)
	if !errors.Is(err, ErrMissingResource) {
		t.Errorf("error = %v, want ErrMissingResource", err)
	}
}

func TestRepair(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.data.xml")
	writeFile(t, path, "<?xml version=\"1.0\"?>\n<corpus source=\"a\"/>\n<corpus source=\"b\"/>\n")

	dst, err := Repair(path)
	if err != nil {
		t.Fatalf("Repair() error = %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}

	want := "<?xml version=\"1.0\"?>\n<root>\n<corpus source=\"a\"/>\n<corpus source=\"b\"/>\n</root>\n"
	if string(got) != want {
		t.Errorf("repaired = %q, want %q", got, want)
	}
}

func TestRepairIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.data.xml")
	writeFile(t, path, corpusXML)

	first, err := Repair(path)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := os.ReadFile(first)

	// the cache is keyed by existence: a changed corpus is not repaired again
	writeFile(t, path, "<corpus/>\n")

	second, err := Repair(path)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(second)

	if first != second || !bytes.Equal(a, b) {
		t.Errorf("second repair changed the output")
	}

	if bytes.Count(b, []byte("<root>")) != 1 {
		t.Errorf("repaired twice: %s", b)
	}
}

func TestRepairSingleLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.data.xml")
	writeFile(t, path, "<?xml version=\"1.0\"?>\n")

	dst, err := Repair(path)
	if err != nil {
		t.Fatal(err)
	}

	got, _ := os.ReadFile(dst)
	if !bytes.Contains(got, []byte("<root>\n</root>\n")) {
		t.Errorf("repaired = %q", got)
	}
}

func TestRepairOneLineCorpus(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no declaration",
			input: "<corpus source=\"semcor\"><text/></corpus>\n",
			want:  "<root>\n<corpus source=\"semcor\"><text/></corpus>\n</root>\n",
		},
		{
			name:  "no declaration no newline",
			input: "<corpus source=\"semcor\"/>",
			want:  "<root>\n<corpus source=\"semcor\"/></root>\n",
		},
		{
			name:  "declaration and corpus on one line",
			input: "<?xml version=\"1.0\"?><corpus source=\"semcor\"/>\n",
			want:  "<?xml version=\"1.0\"?>\n<root>\n<corpus source=\"semcor\"/>\n</root>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "x.data.xml")
			writeFile(t, path, tt.input)

			dst, err := Repair(path)
			if err != nil {
				t.Fatalf("Repair() error = %v", err)
			}

			got, _ := os.ReadFile(dst)
			if string(got) != tt.want {
				t.Errorf("repaired = %q, want %q", got, tt.want)
			}
		})
	}
}
