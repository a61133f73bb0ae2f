package filesystem

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/revelaction/wsdindex/index"
	sent "github.com/revelaction/wsdindex/sentence"
	"github.com/revelaction/wsdindex/storage"
)

const (
	InstancesFile = "instances.bin"
	SenseKeyFile  = "sensekey_index.bin"
	SynsetFile    = "synset_index.bin"
)

// IndexStore keeps a snapshot as three MessagePack files in a directory.
type IndexStore struct {
	dir string
}

var _ storage.IndexWriter = (*IndexStore)(nil)
var _ storage.IndexReader = (*IndexStore)(nil)

func NewIndexStore(dir string) *IndexStore {
	return &IndexStore{dir: dir}
}

func (h *IndexStore) Dir() string {
	return h.dir
}

// Write removes the directory if it exists, recreates it and writes the
// three files.
func (h *IndexStore) Write(s storage.Snapshot) error {
	if err := ResetDir(h.dir); err != nil {
		return err
	}

	files := []struct {
		name string
		v    interface{}
	}{
		{InstancesFile, s.Instances},
		{SenseKeyFile, s.SenseKeys.Map()},
		{SynsetFile, s.Synsets.Map()},
	}

	for _, f := range files {
		if err := writeFile(filepath.Join(h.dir, f.name), f.v); err != nil {
			return err
		}
	}

	return nil
}

func (h *IndexStore) Read() (storage.Snapshot, error) {
	var instances sent.Instances
	if err := readFile(filepath.Join(h.dir, InstancesFile), &instances); err != nil {
		return storage.Snapshot{}, err
	}

	var senseKeys, synsets map[string][]string
	if err := readFile(filepath.Join(h.dir, SenseKeyFile), &senseKeys); err != nil {
		return storage.Snapshot{}, err
	}
	if err := readFile(filepath.Join(h.dir, SynsetFile), &synsets); err != nil {
		return storage.Snapshot{}, err
	}

	if instances == nil {
		instances = sent.Instances{}
	}

	return storage.Snapshot{
		Instances: instances,
		SenseKeys: index.FromMap(senseKeys),
		Synsets:   index.FromMap(synsets),
	}, nil
}

// ResetDir destroys dir if it exists and creates it empty.
func ResetDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove %s: %w", dir, err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return nil
}

func writeFile(path string, v interface{}) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	enc := msgpack.NewEncoder(w)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("msgpack encoding error %s: %w", path, err)
	}

	return w.Flush()
}

func readFile(path string, v interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	if err := msgpack.NewDecoder(bufio.NewReader(f)).Decode(v); err != nil {
		return fmt.Errorf("msgpack decoding error %s: %w", path, err)
	}
	return nil
}
