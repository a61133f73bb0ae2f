// Package gold loads WSD gold key files.
//
// Each line holds an instance id followed by one or more sense keys:
//
//	d000.s000.t000 wolf%1:05:00:: [more sense keys]
package gold

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/revelaction/wsdindex/index"
)

// Annotations holds both directions of the gold mapping.
type Annotations struct {
	// sense key -> instance ids
	SenseKeyIds *index.Index

	// instance id -> sense keys
	IdSenseKeys *index.Index
}

// SenseKeys returns the gold sense keys of the instance id, sorted. Unknown
// ids have no sense keys.
func (a Annotations) SenseKeys(id string) []string {
	return a.IdSenseKeys.Values(id)
}

// Load reads the gold key file at path.
func Load(path string) (Annotations, error) {
	f, err := os.Open(path)
	if err != nil {
		return Annotations{}, err
	}
	defer f.Close()

	a, err := Read(f)
	if err != nil {
		return Annotations{}, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// Read parses a gold key stream in one pass.
func Read(r io.Reader) (Annotations, error) {
	a := Annotations{
		SenseKeyIds: index.New(),
		IdSenseKeys: index.New(),
	}

	scanner := bufio.NewScanner(r)
	// OMSTI lines can be long for instances with many keys
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		id, keys := fields[0], fields[1:]
		for _, key := range keys {
			a.SenseKeyIds.Add(key, id)
			a.IdSenseKeys.Add(id, key)
		}
	}

	if err := scanner.Err(); err != nil {
		return Annotations{}, err
	}

	return a, nil
}
