//go:build ignore

// buildstopwords evaluates the current stopword list against a corpus and
// finds candidate words for list expansion by document frequency.
// Run from the project root:
//
//	go run scripts/buildstopwords.go
//
// Outputs:
//   - data/stopword_candidates.tsv — high-document-frequency words missing
//     from annotate/stopwords.txt, sorted by document frequency
//   - data/stopword_evaluation.txt — human-readable coverage report
//
// The corpus is read from data/corpus when present, otherwise from the
// embedded sample.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/textmill/textcat/clean"
	"github.com/textmill/textcat/corpus"
	"github.com/textmill/textcat/data"
	"github.com/textmill/textcat/internal/fold"
	"github.com/textmill/textcat/tokenize"
)

const (
	stopwordsPath  = "annotate/stopwords.txt"
	corpusDir      = "data/corpus"
	candidatesPath = "data/stopword_candidates.tsv"
	evaluationPath = "data/stopword_evaluation.txt"
	minDocRatio    = 0.5
	maxCandidates  = 200
	topListed      = 20
)

// wordStats tracks how widely and how often a word occurs.
type wordStats struct {
	docs   int // documents containing the word
	tokens int // total occurrences
}

// candidate is a stopword expansion candidate.
type candidate struct {
	word     string
	docs     int
	tokens   int
	docRatio float64
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[buildstopwords] ")

	stops, err := loadStopwords(stopwordsPath)
	if err != nil {
		log.Fatalf("cannot load stopword list: %v", err)
	}
	log.Printf("loaded %d stopwords", len(stops))

	col, source, err := loadCollection()
	if err != nil {
		log.Fatalf("cannot load corpus: %v", err)
	}
	log.Printf("loaded %d documents from %s", len(col.Posts), source)

	stats := make(map[string]*wordStats, 4096)
	totalTokens := 0
	stopTokens := 0
	for _, post := range col.Posts {
		words := tokenize.Words(clean.Post(post.Text))
		seen := make(map[string]struct{}, len(words))
		for _, w := range words {
			lower := fold.Lower(w)
			totalTokens++
			if stops[lower] {
				stopTokens++
			}
			s, ok := stats[lower]
			if !ok {
				s = &wordStats{}
				stats[lower] = s
			}
			s.tokens++
			if _, dup := seen[lower]; !dup {
				seen[lower] = struct{}{}
				s.docs++
			}
		}
	}
	log.Printf("counted %d tokens, %d distinct words", totalTokens, len(stats))

	// Candidates: widespread words the list does not cover yet.
	var candidates []candidate
	for word, s := range stats {
		if stops[word] {
			continue
		}
		ratio := float64(s.docs) / float64(len(col.Posts))
		if ratio < minDocRatio {
			continue
		}
		candidates = append(candidates, candidate{word: word, docs: s.docs, tokens: s.tokens, docRatio: ratio})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].docs != candidates[j].docs {
			return candidates[i].docs > candidates[j].docs
		}
		return candidates[i].word < candidates[j].word
	})
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}
	log.Printf("found %d candidates", len(candidates))

	if err := writeCandidates(candidatesPath, candidates); err != nil {
		log.Fatalf("cannot write candidates: %v", err)
	}
	log.Printf("wrote candidates to %s", candidatesPath)

	if err := writeEvaluation(evaluationPath, col, stats, stops, candidates, totalTokens, stopTokens, source); err != nil {
		log.Fatalf("cannot write evaluation: %v", err)
	}
	log.Printf("wrote evaluation to %s", evaluationPath)
}

// loadStopwords reads one lowercase word per line. Blank lines are ignored.
func loadStopwords(path string) (map[string]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stops := make(map[string]bool, 512)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		word := strings.TrimSpace(sc.Text())
		if word == "" {
			continue
		}
		stops[word] = true
	}
	return stops, sc.Err()
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

// writeCandidates writes the candidates to a TSV file.
func writeCandidates(path string, candidates []candidate) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriterSize(f, 1024*1024)
	fmt.Fprintln(bw, "# Stopword expansion candidates — generated by buildstopwords.go")
	fmt.Fprintln(bw, "# word\tdocs\ttokens\tdoc_ratio")
	for _, c := range candidates {
		fmt.Fprintf(bw, "%s\t%d\t%d\t%.3f\n", c.word, c.docs, c.tokens, c.docRatio)
	}
	return bw.Flush()
}

// writeEvaluation writes the human-readable coverage report.
func writeEvaluation(path string, col *corpus.Collection, stats map[string]*wordStats,
	stops map[string]bool, candidates []candidate, totalTokens, stopTokens int, source string) error {

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriterSize(f, 512*1024)

	fmt.Fprintln(bw, "Stopword Coverage Report")
	fmt.Fprintln(bw, "========================")
	fmt.Fprintf(bw, "Corpus: %d documents in %d categories (%s)\n",
		len(col.Posts), len(col.Categories), source)
	fmt.Fprintf(bw, "List: %d stopwords\n", len(stops))
	fmt.Fprintln(bw)

	coverage := 0.0
	if totalTokens > 0 {
		coverage = float64(stopTokens) / float64(totalTokens) * 100
	}
	fmt.Fprintf(bw, "Tokens: %d total, %d stopwords (%.2f%%)\n", totalTokens, stopTokens, coverage)
	fmt.Fprintln(bw)

	// Most frequent in-list words, as a sanity check that the list earns
	// its keep on this corpus.
	type listed struct {
		word   string
		tokens int
	}
	var inList []listed
	for word, s := range stats {
		if stops[word] {
			inList = append(inList, listed{word: word, tokens: s.tokens})
		}
	}
	sort.Slice(inList, func(i, j int) bool {
		if inList[i].tokens != inList[j].tokens {
			return inList[i].tokens > inList[j].tokens
		}
		return inList[i].word < inList[j].word
	})
	fmt.Fprintf(bw, "Top %d stopwords by occurrences:\n", topListed)
	fmt.Fprintf(bw, "%-20s %8s\n", "word", "tokens")
	for _, l := range inList[:min(topListed, len(inList))] {
		fmt.Fprintf(bw, "%-20s %8d\n", l.word, l.tokens)
	}
	fmt.Fprintln(bw)

	fmt.Fprintf(bw, "Top %d candidates:\n", topListed)
	fmt.Fprintf(bw, "%-20s %8s %8s %10s\n", "word", "docs", "tokens", "doc_ratio")
	for _, c := range candidates[:min(topListed, len(candidates))] {
		fmt.Fprintf(bw, "%-20s %8d %8d %10.3f\n", c.word, c.docs, c.tokens, c.docRatio)
	}

	return bw.Flush()
}
