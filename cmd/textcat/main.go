// Command textcat trains and evaluates the post classifier end to end.
//
// It loads a newsgroup-style corpus (one subdirectory per category, one
// file per post), strips headers, quoted replies and signatures, annotates
// the text, extracts unigram and bigram features, trains multinomial
// logistic regression on the sparse counts, and prints train and test
// accuracy. With -vectors it trains a second model on mean-pooled word
// embeddings from the same annotated documents.
//
//	go run ./cmd/textcat -corpus ~/data/20news -tfidf -v
//	go run ./cmd/textcat -vectors vectors.txt
//
// Without -corpus the embedded sample corpus is used. The sample exists to
// demonstrate the pipeline end to end, not to benchmark it.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/textmill/textcat/annotate"
	"github.com/textmill/textcat/bow"
	"github.com/textmill/textcat/clean"
	"github.com/textmill/textcat/corpus"
	"github.com/textmill/textcat/data"
	"github.com/textmill/textcat/linear"
	"github.com/textmill/textcat/metrics"
	"github.com/textmill/textcat/ngram"
	"github.com/textmill/textcat/wordvec"
)

const (
	defaultSeed  = 42
	defaultNgram = 2
	topFeatures  = 8
)

func main() {
	corpusDir := flag.String("corpus", "", "corpus root (category subdirectories); embedded sample when empty")
	vectorsPath := flag.String("vectors", "", "word vectors in word2vec text format for the embedding model")
	testFraction := flag.Float64("test", corpus.DefaultTestFraction, "fraction of posts held out for testing")
	seed := flag.Int64("seed", defaultSeed, "split shuffle seed")
	maxN := flag.Int("ngram", defaultNgram, "largest n-gram size (1 or 2)")
	minDF := flag.Int("mindf", 1, "drop features seen in fewer training documents")
	maxFeat := flag.Int("maxfeat", 0, "vocabulary size cap, 0 for no cap")
	useTFIDF := flag.Bool("tfidf", false, "reweight counts with tf-idf")
	c := flag.Float64("c", linear.DefaultC, "inverse regularization strength")
	iters := flag.Int("iter", linear.DefaultMaxIter, "optimizer iteration cap")
	verbose := flag.Bool("v", false, "print per-class reports and top features")
	flag.Parse()

	start := time.Now()

	col, err := loadCorpus(*corpusDir)
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Fprintf(os.Stderr, "Corpus: %d posts in %d categories\n", len(col.Posts), len(col.Categories))

	train, test := col.Split(*testFraction, *seed)
	fmt.Fprintf(os.Stderr, "Split:  %d train / %d test (seed %d)\n", len(train.Posts), len(test.Posts), *seed)

	fmt.Fprintf(os.Stderr, "Annotating %d posts\n", len(col.Posts))
	trainDocs, err := annotateDocs(train.Texts())
	if err != nil {
		fatalf("annotate train: %v", err)
	}
	testDocs, err := annotateDocs(test.Texts())
	if err != nil {
		fatalf("annotate test: %v", err)
	}

	trainStreams := ngram.FeaturizeAll(trainDocs, *maxN)
	testStreams := ngram.FeaturizeAll(testDocs, *maxN)

	vocab := bow.BuildVocabulary(trainStreams, bow.Options{
		MinDocCount: *minDF,
		MaxFeatures: *maxFeat,
	})

	xTrain, err := bow.CountMatrix(trainStreams, vocab)
	if err != nil {
		fatalf("%v", err)
	}
	xTest, err := bow.CountMatrix(testStreams, vocab)
	if err != nil {
		fatalf("%v", err)
	}

	var mTrain, mTest mat.Matrix = xTrain, xTest
	if *useTFIDF {
		weighter := bow.NewTFIDF()
		if mTrain, err = weighter.FitTransform(xTrain); err != nil {
			fatalf("%v", err)
		}
		if mTest, err = weighter.Transform(xTest); err != nil {
			fatalf("%v", err)
		}
	}

	fmt.Printf("Bag-of-ngrams (%d features):\n", vocab.Size())
	bagModel, err := fitAndReport(mTrain, train.Targets(), mTest, test.Targets(), col.Categories, *c, *iters, *verbose)
	if err != nil {
		fatalf("%v", err)
	}
	if *verbose {
		printTopFeatures(bagModel, vocab, col.Categories)
	}

	if *vectorsPath != "" {
		table, err := wordvec.LoadFile(*vectorsPath)
		if err != nil {
			fatalf("%v", err)
		}
		fmt.Fprintf(os.Stderr, "Vectors: %d words x %d dimensions\n", table.Len(), table.Dim())

		eTrain, err := table.MeanMatrix(trainDocs)
		if err != nil {
			fatalf("%v", err)
		}
		eTest, err := table.MeanMatrix(testDocs)
		if err != nil {
			fatalf("%v", err)
		}

		fmt.Printf("\nMean embedding (%d dimensions):\n", table.Dim())
		if _, err := fitAndReport(eTrain, train.Targets(), eTest, test.Targets(), col.Categories, *c, *iters, *verbose); err != nil {
			fatalf("%v", err)
		}
	}

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n", time.Since(start).Round(time.Millisecond))
}

func loadCorpus(dir string) (*corpus.Collection, error) {
	if dir == "" {
		fmt.Fprintln(os.Stderr, "No -corpus given; using the embedded sample corpus")
		return corpus.LoadFS(data.Sample())
	}
	return corpus.Load(dir)
}

// annotateDocs strips newsgroup furniture from every post and annotates
// the remainder.
func annotateDocs(texts []string) ([]*annotate.Doc, error) {
	stripped := make([]string, len(texts))
	for i, t := range texts {
		stripped[i] = clean.Post(t)
	}
	return annotate.Texts(stripped)
}

// fitAndReport trains one model and prints its accuracy block to stdout.
func fitAndReport(xTrain mat.Matrix, yTrain []int, xTest mat.Matrix, yTest []int,
	names []string, c float64, iters int, verbose bool) (*linear.LogisticRegression, error) {

	model := linear.NewLogisticRegression()
	model.C = c
	model.MaxIter = iters

	if err := model.Fit(xTrain, yTrain); err != nil {
		return nil, err
	}
	trainAcc, err := model.Score(xTrain, yTrain)
	if err != nil {
		return nil, err
	}
	pred, err := model.Predict(xTest)
	if err != nil {
		return nil, err
	}

	fmt.Printf("  Train accuracy:  %.4f\n", trainAcc)
	fmt.Printf("  Test accuracy:   %.4f\n", metrics.Accuracy(pred, yTest))
	if verbose {
		fmt.Println()
		fmt.Println(metrics.Report(pred, yTest, names))
	}
	return model, nil
}

// printTopFeatures lists the highest-weighted vocabulary features per
// class, the quickest sanity check that the model learned topic words
// rather than artifacts.
func printTopFeatures(model *linear.LogisticRegression, vocab *bow.Vocabulary, names []string) {
	coef := model.Coefficients()
	if coef == nil {
		return
	}
	features := vocab.Features()

	fmt.Println("\nTop features per class:")
	for ci, name := range names {
		row := coef.RawRowView(ci)
		idx := make([]int, len(row))
		for i := range idx {
			idx[i] = i
		}
		sort.Slice(idx, func(i, j int) bool { return row[idx[i]] > row[idx[j]] })

		n := min(topFeatures, len(idx))
		fmt.Printf("  %-18s", name)
		for _, j := range idx[:n] {
			fmt.Printf(" %s", features[j])
		}
		fmt.Println()
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "textcat: "+format+"\n", args...)
	os.Exit(1)
}
