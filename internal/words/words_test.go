package words

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	in := "Apple\n  crane \n\n# comment\nap-le\ntoolong\nabc\nOTTER\nsp ed\n"
	got, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "crane", "otter"}, got)
}

func TestFileSource(t *testing.T) {
	t.Run("mixed file keeps eligible words", func(t *testing.T) {
		got, err := NewFileSource(filepath.Join("testdata", "mixed.txt")).LoadWords()
		require.NoError(t, err)
		assert.Equal(t, []string{"apple", "crane", "words", "otter"}, got)
	})

	t.Run("all invalid is empty", func(t *testing.T) {
		_, err := NewFileSource(filepath.Join("testdata", "invalid.txt")).LoadWords()
		assert.ErrorIs(t, err, ErrEmptyWordList)
		assert.NotErrorIs(t, err, ErrWordLoading)
	})

	t.Run("missing file is a loading error", func(t *testing.T) {
		_, err := NewFileSource(filepath.Join("testdata", "nope.txt")).LoadWords()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrWordLoading)

		var wle *WordLoadingError
		require.True(t, errors.As(err, &wle))
		assert.Contains(t, wle.Source, "nope.txt")
		assert.Contains(t, err.Error(), "nope.txt")
	})

	t.Run("empty path uses embedded dictionary", func(t *testing.T) {
		got, err := NewFileSource("").LoadWords()
		require.NoError(t, err)
		require.NotEmpty(t, got)
		for _, w := range got {
			assert.Len(t, w, 5)
			assert.Equal(t, strings.ToLower(w), w)
		}
	})
}

func TestStaticSource(t *testing.T) {
	got, err := StaticSource{"Apple", "no", "12345", " crane "}.LoadWords()
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "crane"}, got)

	_, err = StaticSource{"no", "1234!"}.LoadWords()
	assert.ErrorIs(t, err, ErrEmptyWordList)

	_, err = StaticSource(nil).LoadWords()
	assert.ErrorIs(t, err, ErrEmptyWordList)
}

type countingSource struct {
	calls int
	list  []string
	err   error
}

func (c *countingSource) LoadWords() ([]string, error) {
	c.calls++
	return c.list, c.err
}

func TestCached(t *testing.T) {
	t.Run("loads once", func(t *testing.T) {
		src := &countingSource{list: []string{"apple", "crane"}}
		c := NewCached(src)
		assert.Equal(t, 0, c.Stats())

		first, err := c.LoadWords()
		require.NoError(t, err)
		first[0] = "xxxxx"

		second, err := c.LoadWords()
		require.NoError(t, err)
		assert.Equal(t, []string{"apple", "crane"}, second)
		assert.Equal(t, 1, src.calls)
		assert.Equal(t, 2, c.Stats())
	})

	t.Run("remembers errors", func(t *testing.T) {
		boom := &WordLoadingError{Source: "x", Err: errors.New("boom")}
		src := &countingSource{err: boom}
		c := NewCached(src)

		_, err := c.LoadWords()
		assert.ErrorIs(t, err, ErrWordLoading)
		_, err = c.LoadWords()
		assert.ErrorIs(t, err, ErrWordLoading)
		assert.Equal(t, 1, src.calls)
	})

	t.Run("empty result becomes ErrEmptyWordList", func(t *testing.T) {
		c := NewCached(&countingSource{})
		_, err := c.LoadWords()
		assert.ErrorIs(t, err, ErrEmptyWordList)
	})
}
