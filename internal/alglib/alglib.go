// Package alglib loads named algorithm libraries from directories of text
// files, the format described by the core solver's notation layer: one
// entry per line, "<name>:<algorithm-notation>".
package alglib

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ehrlich-b/cube/internal/cube"
)

// Library maps a dotted name (directory hierarchy joined with ".", plus
// the entry name) to its parsed algorithm.
type Library map[string]cube.Algorithm

// Load walks root and parses every ".txt" file it finds. A file at
// root/oll/sune.txt containing "sune:R U R' U R U2 R'" contributes the
// entry "oll.sune.sune" (directories, then the file name without its
// extension, then the entry name). Malformed lines (no colon, or a notation that fails
// to parse) are skipped with a logged warning rather than aborting the
// whole load.
func Load(root string) (Library, error) {
	lib := Library{}

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".txt" {
			return nil
		}

		prefix, prefixErr := dottedPrefix(root, path)
		if prefixErr != nil {
			return prefixErr
		}

		return loadFile(path, prefix, lib)
	})
	if err != nil {
		return nil, fmt.Errorf("walking algorithm library %s: %w", root, err)
	}

	return lib, nil
}

func dottedPrefix(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	parts := strings.Split(filepath.ToSlash(rel), "/")
	return strings.Join(parts, "."), nil
}

func loadFile(path, prefix string, lib Library) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		name, notation, ok := strings.Cut(line, ":")
		if !ok {
			log.Printf("alglib: %s:%d: missing ':' separator, skipping line", path, lineNo)
			continue
		}

		alg, err := cube.ParseAlgorithm(strings.TrimSpace(notation))
		if err != nil {
			log.Printf("alglib: %s:%d: %v, skipping line", path, lineNo, err)
			continue
		}

		key := strings.TrimSpace(name)
		if prefix != "" {
			key = prefix + "." + key
		}
		lib[key] = alg
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}
