// apps/go-cli/internal/words/words.go
//
// Provides the word sources that feed secret words to the game engine.
//
// Responsibilities:
//   - Load a newline-delimited dictionary from a file, or fall back to the
//     embedded default in the assets package.
//   - Normalize to lowercase and keep only game.WordLength alphabetic words.
//   - Report I/O failures (WordLoadingError) separately from dictionaries with
//     no usable words (ErrEmptyWordList).
//   - Cache the first load so every caller sees the same immutable list.
//
// File format:
//   - One word per line; surrounding whitespace is trimmed.
//   - Blank lines and lines starting with "#" are skipped.
//   - Anything else that is not exactly five letters a–z (any case) is dropped.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/robalobadob/wordle/apps/go-cli/assets"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// Source supplies candidate secret words.
// Every returned word is lowercase and game.WordLength letters long.
type Source interface {
	LoadWords() ([]string, error)
}

var (
	// ErrWordLoading matches every *WordLoadingError via errors.Is.
	ErrWordLoading = errors.New("error reading word list")
	// ErrEmptyWordList is returned when a dictionary holds no eligible words.
	ErrEmptyWordList = errors.New("word list is empty, contains only invalid words, or could not be loaded")
)

// WordLoadingError reports a dictionary that is missing or unreadable.
type WordLoadingError struct {
	Source string // path or embedded name
	Err    error
}

func (e *WordLoadingError) Error() string {
	return fmt.Sprintf("error reading word list file %s: %v", e.Source, e.Err)
}

func (e *WordLoadingError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrWordLoading) hold for any *WordLoadingError.
func (e *WordLoadingError) Is(target error) bool { return target == ErrWordLoading }

// Parse reads one word per line from r and keeps the eligible ones, lowercased,
// in file order. Read errors are returned as-is; callers wrap them.
func Parse(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		w = strings.ToLower(w)
		if len(w) == game.WordLength && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// FileSource loads a dictionary file on every call.
// An empty Path selects the embedded default dictionary.
type FileSource struct {
	Path string
}

// NewFileSource constructs a FileSource for path.
func NewFileSource(path string) *FileSource { return &FileSource{Path: path} }

// LoadWords reads and filters the dictionary.
func (s *FileSource) LoadWords() ([]string, error) {
	name := s.Path
	var (
		rc  io.ReadCloser
		err error
	)
	if name == "" {
		name = "embedded:" + assets.DictionaryName
		rc, err = assets.Dictionary()
	} else {
		rc, err = os.Open(name)
	}
	if err != nil {
		return nil, &WordLoadingError{Source: name, Err: err}
	}
	defer rc.Close()

	list, err := Parse(rc)
	if err != nil {
		return nil, &WordLoadingError{Source: name, Err: err}
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyWordList)
	}
	return list, nil
}

// StaticSource serves a fixed in-memory list, filtered like a dictionary file.
type StaticSource []string

// LoadWords returns the eligible words of the list.
func (s StaticSource) LoadWords() ([]string, error) {
	var out []string
	for _, w := range s {
		w = strings.ToLower(strings.TrimSpace(w))
		if len(w) == game.WordLength && isAlpha(w) {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return nil, ErrEmptyWordList
	}
	return out, nil
}

// Cached loads from an underlying Source exactly once and then serves the
// same result (list or error) to every caller.
type Cached struct {
	src  Source
	once sync.Once
	list []string
	err  error
}

// NewCached wraps src.
func NewCached(src Source) *Cached { return &Cached{src: src} }

// LoadWords returns a copy of the cached list.
func (c *Cached) LoadWords() ([]string, error) {
	c.once.Do(func() {
		list, err := c.src.LoadWords()
		if err == nil && len(list) == 0 {
			err = ErrEmptyWordList
		}
		c.list, c.err = list, err
	})
	if c.err != nil {
		return nil, c.err
	}
	out := make([]string, len(c.list))
	copy(out, c.list)
	return out, nil
}

// Stats returns how many words the cache holds; zero if loading failed or
// has not happened yet.
func (c *Cached) Stats() int {
	return len(c.list)
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
