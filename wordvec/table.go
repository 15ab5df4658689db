// Package wordvec loads pretrained word-embedding tables and pools them
// into dense per-document feature matrices.
//
// The package provides two API layers:
//
//   - Structured: Load parses a table from any io.Reader and Table.Vector
//     looks up individual words, so callers control the source and the
//     pooling strategy.
//
//   - Convenience: LoadFile opens a path, and Table.MeanMatrix turns a
//     batch of annotated documents straight into the dense matrix the
//     classifier consumes.
//
// Tables are read in the word2vec text format (one word per line followed
// by its space-separated components) through the wego embedding parser.
// Files written by cmd/vectrain, by word2vec with its "<count> <dim>"
// header line, and headerless GloVe dumps all load.
//
// A Table is immutable once built and safe for concurrent use by multiple
// goroutines.
//
// Known limitations (v1.0):
//
//   - Only the text format is supported, not the word2vec binary format.
//   - Lookup folds to lowercase but applies no further normalization, so
//     the table and the queries must agree on Unicode form (NFC).
package wordvec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ynqa/wego/pkg/embedding"

	"github.com/textmill/textcat/internal/fold"
)

// Table maps words to pretrained vectors of a single shared dimensionality.
type Table struct {
	dim  int
	vecs map[string][]float64
}

// Load reads a word-vector table in the word2vec text format. A leading
// "<count> <dim>" header line is skipped when present. Duplicate words keep
// their first vector; a vector whose dimensionality disagrees with the rest
// of the file is an error, as is an input with no vectors at all.
func Load(r io.Reader) (*Table, error) {
	body, err := skipHeader(bufio.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("wordvec: %w", err)
	}
	embs, err := embedding.Load(body)
	if err != nil {
		return nil, fmt.Errorf("wordvec: %w", err)
	}

	t := &Table{vecs: make(map[string][]float64, len(embs))}
	for _, e := range embs {
		if e.Word == "" || len(e.Vector) == 0 {
			continue
		}
		if t.dim == 0 {
			t.dim = len(e.Vector)
		}
		if len(e.Vector) != t.dim {
			return nil, fmt.Errorf("wordvec: vector for %q has %d components, want %d", e.Word, len(e.Vector), t.dim)
		}
		if _, dup := t.vecs[e.Word]; dup {
			continue
		}
		t.vecs[e.Word] = e.Vector
	}
	if len(t.vecs) == 0 {
		return nil, errors.New("wordvec: no vectors in input")
	}
	return t, nil
}

// LoadFile reads a word-vector table from the file at path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordvec: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// skipHeader consumes the first line when it is a "<count> <dim>" pair and
// returns a reader over the remaining vector lines. The wego parser is
// headerless, so the header must go before the body reaches it.
func skipHeader(br *bufio.Reader) (io.Reader, error) {
	first, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	if fields := strings.Fields(first); len(fields) == 2 {
		_, e0 := strconv.ParseUint(fields[0], 10, 64)
		_, e1 := strconv.ParseUint(fields[1], 10, 64)
		if e0 == nil && e1 == nil {
			return br, nil
		}
	}
	return io.MultiReader(strings.NewReader(first), br), nil
}

// Dim returns the dimensionality shared by every vector in the table.
func (t *Table) Dim() int { return t.dim }

// Len returns the number of words in the table.
func (t *Table) Len() int { return len(t.vecs) }

// Vector returns the pretrained vector for word, trying the exact form
// first and its lowercase form second. The returned slice is shared with
// the table; callers must not modify it.
func (t *Table) Vector(word string) ([]float64, bool) {
	if v, ok := t.vecs[word]; ok {
		return v, true
	}
	if low := fold.Lower(word); low != word {
		if v, ok := t.vecs[low]; ok {
			return v, true
		}
	}
	return nil, false
}
