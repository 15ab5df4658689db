//go:build ignore

// buildlexicon regenerates lemma/lexicon.txt — the attested-lemma list that
// confirms suffix detachment candidates. Run from the project root:
//
//	go run scripts/buildlexicon.go
//
// Output format: one entry per line, "<class><lemma>\n", sorted by lemma.
// Every entry of the current lexicon is kept. New lemmas are added when an
// open-class token lemmatizes to them in at least minDocs distinct corpus
// documents. The corpus is read from data/corpus when present, otherwise
// from the embedded sample.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/textmill/textcat/annotate"
	"github.com/textmill/textcat/clean"
	"github.com/textmill/textcat/corpus"
	"github.com/textmill/textcat/data"
	"github.com/textmill/textcat/lemma"
)

const (
	lexiconPath = "lemma/lexicon.txt"
	corpusDir   = "data/corpus"
	minDocs     = 3
)

// entry is one lexicon line: a word-class byte and a lemma.
type entry struct {
	class byte
	lemma string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[buildlexicon] ")

	current, err := loadLexicon(lexiconPath)
	if err != nil {
		log.Fatalf("cannot load lexicon: %v", err)
	}
	log.Printf("loaded lexicon with %d entries", len(current))

	col, source, err := loadCollection()
	if err != nil {
		log.Fatalf("cannot load corpus: %v", err)
	}
	log.Printf("loaded %d documents from %s", len(col.Posts), source)

	// Per-entry document frequencies over the corpus.
	docFreq := make(map[entry]int, 4096)
	annotated := 0
	for _, post := range col.Posts {
		doc, err := annotate.Text(clean.Post(post.Text))
		if err != nil {
			log.Printf("warning: skipping %s: %v", post.ID, err)
			continue
		}
		seen := make(map[entry]struct{}, 64)
		for _, tok := range doc.Tokens() {
			if !tok.Alpha || tok.Stop || tok.IsPerson() {
				continue
			}
			class := classForTag(tok.Tag)
			if class == 0 {
				continue
			}
			e := entry{class: class, lemma: lemma.LemmaPOS(tok.Text, tok.Tag)}
			if e.lemma == "" {
				continue
			}
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			docFreq[e]++
		}
		annotated++
		if annotated%1_000 == 0 {
			log.Printf("annotated %d documents", annotated)
		}
	}
	log.Printf("annotated %d documents, %d distinct (class, lemma) pairs", annotated, len(docFreq))

	// Keep every current entry; add attested newcomers.
	merged := make(map[entry]struct{}, len(current)+len(docFreq))
	for _, e := range current {
		merged[e] = struct{}{}
	}
	added := 0
	for e, n := range docFreq {
		if n < minDocs {
			continue
		}
		if _, exists := merged[e]; exists {
			continue
		}
		merged[e] = struct{}{}
		added++
	}
	log.Printf("added %d new entries", added)

	entries := make([]entry, 0, len(merged))
	for e := range merged {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].lemma != entries[j].lemma {
			return entries[i].lemma < entries[j].lemma
		}
		return entries[i].class < entries[j].class
	})

	if err := writeLexicon(lexiconPath, entries); err != nil {
		log.Fatalf("cannot write lexicon: %v", err)
	}
	log.Printf("wrote %d entries to %s", len(entries), lexiconPath)
}

// classForTag maps a Penn Treebank tag to a lexicon class byte, or 0 for
// tags outside the open classes. Proper-noun tags are excluded: names are
// not dictionary lemmas.
func classForTag(tag string) byte {
	switch tag {
	case "NN", "NNS":
		return 'n'
	case "VB", "VBD", "VBG", "VBN", "VBP", "VBZ", "MD":
		return 'v'
	case "JJ", "JJR", "JJS":
		return 'a'
	case "RB", "RBR", "RBS":
		return 'r'
	}
	return 0
}

// loadLexicon parses "<class><lemma>" lines. Blank lines are ignored.
func loadLexicon(path string) ([]entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if len(line) < 2 {
			continue
		}
		entries = append(entries, entry{class: line[0], lemma: line[1:]})
	}
	return entries, sc.Err()
}

// loadCollection reads the external corpus directory, falling back to the
// embedded sample when the directory is missing.
func loadCollection() (*corpus.Collection, string, error) {
	col, err := corpus.Load(corpusDir)
	if err == nil {
		return col, corpusDir, nil
	}
	log.Printf("warning: %v; falling back to the embedded sample", err)
	col, err = corpus.LoadFS(data.Sample())
	return col, "embedded sample", err
}

// writeLexicon writes sorted entries to path.
func writeLexicon(path string, entries []entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriterSize(f, 1024*1024)
	for _, e := range entries {
		fmt.Fprintf(bw, "%c%s\n", e.class, e.lemma)
	}
	return bw.Flush()
}
