package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/ppiankov/msgsweep/internal/cache"
)

const contentTTL = 15 * time.Minute

// Loader walks the configured search roots and produces a Corpus. It is the
// only component that touches the filesystem for source files; the matchers
// consume the loaded value and perform no I/O.
type Loader struct {
	fs         afero.Fs
	extensions map[string]bool
	cache      cache.Cache // nil disables content caching
}

// NewLoader creates a loader over the given filesystem, keeping only files
// with one of the given extensions (leading dot, e.g. ".mjs"). A non-nil
// cache lets repeated loads skip re-reading unchanged files.
func NewLoader(fs afero.Fs, extensions []string, c cache.Cache) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	exts := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		exts[strings.ToLower(ext)] = true
	}

	return &Loader{
		fs:         fs,
		extensions: exts,
		cache:      c,
	}
}

// Load walks each root in order and returns the corpus. Walk order within a
// root is afero's lexical order, so repeated loads over an unchanged tree
// yield an identically ordered corpus. An unreadable root or file is fatal.
func (l *Loader) Load(roots []string) (*Corpus, error) {
	var files []File

	for _, root := range roots {
		if _, err := l.fs.Stat(root); err != nil {
			return nil, fmt.Errorf("search root %s: %w", root, err)
		}

		err := afero.Walk(l.fs, root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}
			if !l.extensions[strings.ToLower(filepath.Ext(path))] {
				return nil
			}

			content, err := l.readFile(path, info)
			if err != nil {
				return err
			}

			files = append(files, File{Path: path, Content: content})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	return New(files), nil
}

// readFile returns the file content, served from cache when the stat info
// still matches a previous read.
func (l *Loader) readFile(path string, info os.FileInfo) (string, error) {
	var key string
	if l.cache != nil {
		key = cache.FileKey(path, info)
		if data, found := l.cache.Get(key); found {
			return string(data), nil
		}
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	if l.cache != nil {
		_ = l.cache.Set(key, data, contentTTL)
	}

	return string(data), nil
}
