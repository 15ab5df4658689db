// Package corpus loads labeled document collections and splits them into
// train and test sets.
//
// The layout follows the 20-newsgroups convention: the corpus root
// contains one subdirectory per category, and every regular file inside a
// category directory is one document. Category names double as class
// labels; targets are indices into the sorted category list. Load reads
// from disk; LoadFS reads from any fs.FS, including the embedded sample
// corpus in the data package.
package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"math/rand"
	"os"
	"path"
	"strings"
)

// DefaultTestFraction is used by Split when the requested fraction is not
// inside (0, 1).
const DefaultTestFraction = 0.25

// Post is one labeled document.
type Post struct {
	// ID is the category-relative file path, slash-separated on every
	// platform.
	ID   string
	Text string
	// Target indexes Collection.Categories.
	Target int
}

// Collection holds documents plus the target-index to category-name
// mapping they were labeled with.
type Collection struct {
	Posts      []Post
	Categories []string
}

// Load reads a corpus directory from disk. It is shorthand for
// LoadFS(os.DirFS(dir)).
func Load(dir string) (*Collection, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads a corpus rooted at the top level of fsys. Subdirectory
// names become the category list in lexicographic order (the fs.ReadDir
// order); hidden entries and top-level regular files are skipped. Any
// unreadable document aborts the load.
func LoadFS(fsys fs.FS) (*Collection, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}
	var cats []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			cats = append(cats, e.Name())
		}
	}
	if len(cats) == 0 {
		return nil, errors.New("corpus: no category directories")
	}

	c := &Collection{Categories: cats}
	for target, cat := range cats {
		files, err := fs.ReadDir(fsys, cat)
		if err != nil {
			return nil, fmt.Errorf("corpus: %w", err)
		}
		for _, f := range files {
			if f.IsDir() || strings.HasPrefix(f.Name(), ".") {
				continue
			}
			raw, err := fs.ReadFile(fsys, path.Join(cat, f.Name()))
			if err != nil {
				return nil, fmt.Errorf("corpus: %w", err)
			}
			c.Posts = append(c.Posts, Post{
				ID:     cat + "/" + f.Name(),
				Text:   string(raw),
				Target: target,
			})
		}
	}
	if len(c.Posts) == 0 {
		return nil, errors.New("corpus: no documents")
	}
	return c, nil
}

// Split partitions the posts into train and test sets by a seeded shuffle.
// The same seed always yields the same split, every post lands on exactly
// one side, and both sides are non-empty whenever the collection has at
// least two posts. A testFraction outside (0, 1) falls back to
// DefaultTestFraction. The category list is shared, not copied.
func (c *Collection) Split(testFraction float64, seed int64) (train, test *Collection) {
	if testFraction <= 0 || testFraction >= 1 {
		testFraction = DefaultTestFraction
	}
	idx := make([]int, len(c.Posts))
	for i := range idx {
		idx[i] = i
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

	nTest := int(math.Round(float64(len(idx)) * testFraction))
	if nTest == 0 && len(idx) > 1 {
		nTest = 1
	}
	if nTest == len(idx) && len(idx) > 1 {
		nTest = len(idx) - 1
	}

	test = &Collection{Categories: c.Categories, Posts: make([]Post, 0, nTest)}
	train = &Collection{Categories: c.Categories, Posts: make([]Post, 0, len(idx)-nTest)}
	for _, i := range idx[:nTest] {
		test.Posts = append(test.Posts, c.Posts[i])
	}
	for _, i := range idx[nTest:] {
		train.Posts = append(train.Posts, c.Posts[i])
	}
	return train, test
}

// Texts returns the post bodies in collection order.
func (c *Collection) Texts() []string {
	out := make([]string, len(c.Posts))
	for i, p := range c.Posts {
		out[i] = p.Text
	}
	return out
}

// Targets returns the post class indices in collection order.
func (c *Collection) Targets() []int {
	out := make([]int, len(c.Posts))
	for i, p := range c.Posts {
		out[i] = p.Target
	}
	return out
}
