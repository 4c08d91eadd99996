package collector

import (
	"encoding/base64"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// Mode selects how file contents are encoded for upload
type Mode string

const (
	// ModeBinary reads raw bytes and encodes them as base64 text
	ModeBinary Mode = "binary"
	// ModeText reads file content as UTF-8 text
	ModeText Mode = "text"
)

// MaxFiles is the hard cap on entries in a single upload batch
const MaxFiles = 100

// ignoredDirs are path segments skipped during collection: version-control
// metadata, dependency and cache directories, build output, editor and agent
// metadata. Matched per segment, not as substrings.
var ignoredDirs = map[string]struct{}{
	".git":         {},
	".svn":         {},
	".hg":          {},
	"node_modules": {},
	"vendor":       {},
	"venv":         {},
	"__pycache__":  {},
	"dist":         {},
	"build":        {},
	"target":       {},
	".idea":        {},
	".vscode":      {},
	".claude":      {},
}

// ignoredFiles are OS metadata files skipped by base name
var ignoredFiles = map[string]struct{}{
	".DS_Store":   {},
	"Thumbs.db":   {},
	"desktop.ini": {},
}

// Entry is one file prepared for upload. Path is relative to the collection
// root and always uses forward slashes.
type Entry struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// ErrTooManyFiles is returned when a batch exceeds MaxFiles after filtering
type ErrTooManyFiles struct {
	Count int
}

func (e ErrTooManyFiles) Error() string {
	return fmt.Sprintf("too many files to upload: %d (limit %d)", e.Count, MaxFiles)
}

// ErrEncoding is returned when a file cannot be read as UTF-8 in text mode
type ErrEncoding struct {
	Path string
}

func (e ErrEncoding) Error() string {
	return fmt.Sprintf("file %s is not valid UTF-8 text; use binary upload", e.Path)
}

// Collect walks root and produces the ordered upload batch. A single regular
// file yields one entry named by its base name; a directory is enumerated
// recursively with ignored segments filtered out. The count cap is enforced
// before any content is read or encoded. An empty batch is valid and signals
// a no-op upload to the caller.
func Collect(root string, mode Mode) ([]Entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}

	var paths []candidate
	if info.Mode().IsRegular() {
		paths = []candidate{{abs: root, rel: filepath.Base(root)}}
	} else if info.IsDir() {
		paths, err = scan(root)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", root, err)
		}
	} else {
		return nil, fmt.Errorf("unsupported file type: %s", root)
	}

	// Cap is checked before encoding so an oversized tree fails fast
	if len(paths) > MaxFiles {
		return nil, ErrTooManyFiles{Count: len(paths)}
	}

	entries := make([]Entry, 0, len(paths))
	for _, p := range paths {
		content, err := encode(p.abs, mode)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Path: p.rel, Content: content})
	}

	log.Debug().
		Str("root", root).
		Str("mode", string(mode)).
		Int("files", len(entries)).
		Msg("Collected upload batch")

	return entries, nil
}

type candidate struct {
	abs string
	rel string
}

// scan enumerates regular files under root, filtering ignored directory
// segments and ignored base names. Paths come back root-relative with POSIX
// separators, in lexical walk order.
func scan(root string) ([]candidate, error) {
	var paths []candidate

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name := d.Name()
		if d.IsDir() {
			if _, skip := ignoredDirs[name]; skip && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if _, skip := ignoredFiles[name]; skip {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, candidate{abs: path, rel: filepath.ToSlash(rel)})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}

func encode(path string, mode Mode) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	switch mode {
	case ModeBinary:
		return base64.StdEncoding.EncodeToString(raw), nil
	case ModeText:
		if !utf8.Valid(raw) {
			return "", ErrEncoding{Path: path}
		}
		return string(raw), nil
	default:
		return "", fmt.Errorf("unknown collection mode: %s", mode)
	}
}
