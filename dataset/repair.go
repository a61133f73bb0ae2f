package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	RepairSuffix = ".fake_root"

	openRoot  = "<root>\n"
	closeRoot = "</root>\n"
)

// Repair wraps the corpus at path in a synthetic <root> element and returns
// the path of the wrapped copy (path + RepairSuffix). The opening tag goes
// after the first line when it is an XML declaration, so the declaration
// stays in place, and before it otherwise.
//
// The copy is only written if it does not exist yet. A copy left over from an
// older version of the corpus is reused as is.
func Repair(path string) (string, error) {
	dst := path + RepairSuffix

	if _, err := os.Stat(dst); err == nil {
		return dst, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMissingResource, err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(dst)+".*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if err := wrap(tmp, src); err != nil {
		tmp.Close()
		return "", fmt.Errorf("repair %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		return "", err
	}

	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", err
	}

	return dst, nil
}

func wrap(w io.Writer, r io.Reader) error {
	bw := bufio.NewWriter(w)
	br := bufio.NewReader(r)

	opened := false
	for counter := 0; ; counter++ {
		line, err := br.ReadString('\n')
		if !opened && line != "" {
			switch {
			case counter == 0 && !isDeclaration(line):
				// no declaration: the root goes first
				line = openRoot + line
				opened = true
			case counter == 0:
				// content on the declaration line
				if decl, rest := splitDeclaration(line); strings.TrimSpace(rest) != "" {
					line = decl + "\n" + openRoot + rest
					opened = true
				}
			case counter == 1:
				line = openRoot + line
				opened = true
			}
		}
		if _, werr := bw.WriteString(line); werr != nil {
			return werr
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}

	// one-line documents
	if !opened {
		if _, err := bw.WriteString("\n" + openRoot); err != nil {
			return err
		}
	}

	if _, err := bw.WriteString(closeRoot); err != nil {
		return err
	}
	return bw.Flush()
}

func isDeclaration(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, "\ufeff \t"), "<?xml")
}

// splitDeclaration splits a line after the end of its XML declaration.
func splitDeclaration(line string) (string, string) {
	i := strings.Index(line, "?>")
	if i < 0 {
		return line, ""
	}
	return line[:i+2], line[i+2:]
}
