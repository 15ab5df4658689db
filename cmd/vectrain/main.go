// Command vectrain trains word vectors on a post corpus and writes them
// in the word2vec text format that wordvec.Load reads.
//
// Text preparation mirrors the classifier pipeline: every post is
// stripped of headers, quoted replies and signatures, split into
// sentences, scanned into words, and lowercased. Each sentence becomes
// one training line.
//
//	go run ./cmd/vectrain -corpus ~/data/20news -out vectors.txt
//	go run ./cmd/vectrain -mincount 1 -probe goalie
//
// Without -corpus the embedded sample corpus is used; it is far too small
// to train useful vectors but exercises the full path (pass -mincount 1
// so the tiny vocabulary survives).
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/neurosnap/sentences/english"
	"github.com/ynqa/wego/pkg/embedding"
	"github.com/ynqa/wego/pkg/model/modelutil/vector"
	"github.com/ynqa/wego/pkg/model/word2vec"
	"github.com/ynqa/wego/pkg/search"

	"github.com/textmill/textcat/clean"
	"github.com/textmill/textcat/corpus"
	"github.com/textmill/textcat/data"
	"github.com/textmill/textcat/internal/fold"
	"github.com/textmill/textcat/tokenize"
)

const (
	// Single-word lines carry no context window and only slow training.
	minSentenceWords = 2
	outFileMode      = 0o644
)

func main() {
	corpusDir := flag.String("corpus", "", "corpus root (category subdirectories); embedded sample when empty")
	outPath := flag.String("out", "vectors.txt", "output path for the trained vectors")
	dim := flag.Int("dim", 100, "vector dimensionality")
	window := flag.Int("window", 5, "context window size")
	iter := flag.Int("iter", 15, "training iterations")
	minCount := flag.Int("mincount", 5, "drop words seen fewer times")
	goroutines := flag.Int("goroutines", runtime.NumCPU(), "training goroutines")
	probe := flag.String("probe", "", "after training, print this word's nearest neighbors")
	topK := flag.Int("topk", 10, "neighbors to print with -probe")
	verbose := flag.Bool("v", false, "let the trainer log batch progress")
	flag.Parse()

	start := time.Now()

	col, err := loadCorpus(*corpusDir)
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Fprintf(os.Stderr, "Corpus: %d posts in %d categories\n", len(col.Posts), len(col.Categories))

	text, lines, err := trainingText(col)
	if err != nil {
		fatalf("%v", err)
	}
	if lines == 0 {
		fatalf("no training sentences left after stripping")
	}
	fmt.Fprintf(os.Stderr, "Prepared %d sentences (%d bytes)\n", lines, len(text))

	opts := word2vec.Options{
		BatchSize:          1024,
		Dim:                *dim,
		DocInMemory:        true,
		Goroutines:         *goroutines,
		Initlr:             0.025,
		Iter:               *iter,
		LogBatch:           100000,
		MaxCount:           -1,
		MaxDepth:           150,
		MinCount:           *minCount,
		MinLR:              0.0000025,
		ModelType:          "skipgram",
		NegativeSampleSize: 5,
		OptimizerType:      "hs",
		SubsampleThreshold: 0.001,
		ToLower:            false, // the lines are already folded
		UpdateLRBatch:      100000,
		Verbose:            *verbose,
		Window:             *window,
	}
	model, err := word2vec.NewForOptions(opts)
	if err != nil {
		fatalf("init word2vec: %v", err)
	}
	if err := model.Train(bytes.NewReader([]byte(text))); err != nil {
		fatalf("train: %v", err)
	}

	var buf bytes.Buffer
	if err := model.Save(&buf, vector.Agg); err != nil {
		fatalf("save: %v", err)
	}
	if err := os.WriteFile(*outPath, buf.Bytes(), outFileMode); err != nil {
		fatalf("write %s: %v", *outPath, err)
	}
	fmt.Fprintf(os.Stderr, "Output file: %s (%d bytes)\n", *outPath, buf.Len())

	if *probe != "" {
		if err := printNeighbors(buf.Bytes(), *probe, *topK); err != nil {
			fatalf("probe %q: %v", *probe, err)
		}
	}

	fmt.Fprintf(os.Stderr, "Completed in %s\n", time.Since(start).Round(time.Millisecond))
}

func loadCorpus(dir string) (*corpus.Collection, error) {
	if dir == "" {
		fmt.Fprintln(os.Stderr, "No -corpus given; using the embedded sample corpus")
		return corpus.LoadFS(data.Sample())
	}
	return corpus.Load(dir)
}

// trainingText renders the corpus into word2vec training lines, one
// lowercased sentence per line.
func trainingText(col *corpus.Collection) (string, int, error) {
	seg, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return "", 0, fmt.Errorf("sentence tokenizer: %w", err)
	}

	var sb strings.Builder
	lines := 0
	for _, p := range col.Posts {
		for _, sent := range seg.Tokenize(clean.Post(p.Text)) {
			words := tokenize.Words(sent.Text)
			if len(words) < minSentenceWords {
				continue
			}
			for i, w := range words {
				if i > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(fold.Lower(w))
			}
			sb.WriteByte('\n')
			lines++
		}
	}
	return sb.String(), lines, nil
}

// printNeighbors loads the saved vectors back and prints the nearest
// neighbors of word by cosine similarity.
func printNeighbors(saved []byte, word string, k int) error {
	embs, err := embedding.Load(bytes.NewReader(saved))
	if err != nil {
		return err
	}
	searcher, err := search.New(embs...)
	if err != nil {
		return err
	}
	neighbors, err := searcher.SearchInternal(fold.Lower(word), k)
	if err != nil {
		return err
	}

	fmt.Printf("Nearest neighbors of %q:\n", word)
	for _, n := range neighbors {
		fmt.Printf("  %-20s %.4f\n", n.Word, n.Similarity)
	}
	return nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "vectrain: "+format+"\n", args...)
	os.Exit(1)
}
