//go:build ignore

// e2e_pipeline exercises all 10 packages in a single run and writes
// structured results to data/e2e_pipeline.log.
// Run from the project root:
//
//	go run e2e/e2e_pipeline.go
package main

import (
	"bufio"
	"fmt"
	"log"
	"math"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/textmill/textcat/annotate"
	"github.com/textmill/textcat/bow"
	"github.com/textmill/textcat/clean"
	"github.com/textmill/textcat/corpus"
	"github.com/textmill/textcat/data"
	"github.com/textmill/textcat/lemma"
	"github.com/textmill/textcat/linear"
	"github.com/textmill/textcat/metrics"
	"github.com/textmill/textcat/ngram"
	"github.com/textmill/textcat/tokenize"
	"github.com/textmill/textcat/wordvec"
)

// ---------- constants ----------

const (
	logPath      = "data/e2e_pipeline.log"
	vectorsPath  = "wordvec/testdata/mini.vec"
	moduleCount  = 10
	maxDetailLen = 200
	concWorkers  = 8
	concIter     = 100
	separator    = "=========================================================="
	suiteCount   = 12
)

// ---------- test corpus ----------

const rawPost = `From: fan@example.com (A. Fan)
Subject: Re: Playoff picture
Organization: Example U.

coach@example.org (The Coach) writes:
> The defense cannot hold a lead.

The goalie stole both games and the power play is clicking.

--
Season ticket holder since 1987`

const cleanedBody = "The goalie stole both games and the power play is clicking."

const plainText = "The goalie's save, 3-1 win: see https://x.example/news or mail pr@example.com."

// ---------- types ----------

type testResult struct {
	name     string
	module   string
	passed   bool
	duration time.Duration
	detail   string
}

type moduleReport struct {
	name     string
	tests    int
	passed   int
	failed   int
	duration time.Duration
}

// ---------- helpers ----------

func pass(module, name string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: true, duration: time.Since(start)}
}

func fail(module, name, detail string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: false, duration: time.Since(start), detail: truncate(detail, maxDetailLen)}
}

func truncate(s string, maxRunes int) string {
	n := 0
	for i := range s {
		n++
		if n > maxRunes {
			return s[:i] + "..."
		}
	}
	return s
}

func safeRun(module, name string, fn func() testResult) (r testResult) {
	defer func() {
		if p := recover(); p != nil {
			r = fail(module, name, fmt.Sprintf("PANIC: %v", p), time.Now())
		}
	}()
	return fn()
}

// buildDoc returns a hand-annotated two-sentence document with a person
// entity, a stopword and punctuation, so feature extraction can be checked
// without running the annotation models.
func buildDoc() *annotate.Doc {
	return &annotate.Doc{
		Text: "Wayne Park scored twice. The crowd roared.",
		Sentences: []annotate.Sentence{
			{
				Text: "Wayne Park scored twice.",
				Tokens: []annotate.Token{
					{Text: "Wayne", Lemma: "wayne", Tag: "NNP", IOB: "B-PERSON", Alpha: true},
					{Text: "Park", Lemma: "park", Tag: "NNP", IOB: "I-PERSON", Alpha: true},
					{Text: "scored", Lemma: "score", Tag: "VBD", IOB: "O", Alpha: true},
					{Text: "twice", Lemma: "twice", Tag: "RB", IOB: "O", Alpha: true},
					{Text: ".", Lemma: ".", Tag: ".", IOB: "O"},
				},
			},
			{
				Text: "The crowd roared.",
				Tokens: []annotate.Token{
					{Text: "The", Lemma: "the", Tag: "DT", IOB: "O", Alpha: true, Stop: true},
					{Text: "crowd", Lemma: "crowd", Tag: "NN", IOB: "O", Alpha: true},
					{Text: "roared", Lemma: "roar", Tag: "VBD", IOB: "O", Alpha: true},
					{Text: ".", Lemma: ".", Tag: ".", IOB: "O"},
				},
			},
		},
	}
}

// blobs returns three well-separated 2-D point clusters and their labels.
func blobs() (*mat.Dense, []int) {
	x := mat.NewDense(12, 2, []float64{
		0.0, 0.0,
		0.2, 0.1,
		-0.1, 0.2,
		0.1, -0.2,
		5.0, 0.0,
		5.2, 0.1,
		4.9, 0.3,
		5.1, -0.2,
		0.0, 5.0,
		0.1, 5.2,
		-0.2, 4.9,
		0.3, 5.1,
	})
	y := []int{0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2}
	return x, y
}

func featuresEqual(got, want []ngram.Feature) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// ---------- test suites ----------

func testClean() []testResult {
	const mod = "clean"
	var results []testResult

	results = append(results, safeRun(mod, "headers_cut_at_first_blank_line", func() testResult {
		start := time.Now()
		got := clean.Headers("From: fan@example.com\nSubject: playoffs\n\nBody line.\n")
		if got != "Body line.\n" {
			return fail(mod, "headers_cut_at_first_blank_line", fmt.Sprintf("got %q", got), start)
		}
		return pass(mod, "headers_cut_at_first_blank_line", start)
	}))

	results = append(results, safeRun(mod, "headers_all_header_without_blank", func() testResult {
		start := time.Now()
		if got := clean.Headers("Subject: no body here"); got != "" {
			return fail(mod, "headers_all_header_without_blank", fmt.Sprintf("got %q, want empty", got), start)
		}
		return pass(mod, "headers_all_header_without_blank", start)
	}))

	results = append(results, safeRun(mod, "quoting_drops_markers_and_attribution", func() testResult {
		start := time.Now()
		got := clean.Quoting("keep one\nrival@example.net (A Rival) writes:\n> quoted claim\nkeep two")
		if got != "keep one\nkeep two" {
			return fail(mod, "quoting_drops_markers_and_attribution", fmt.Sprintf("got %q", got), start)
		}
		return pass(mod, "quoting_drops_markers_and_attribution", start)
	}))

	results = append(results, safeRun(mod, "footer_cut_at_dashes_line", func() testResult {
		start := time.Now()
		got := clean.Footer("body paragraph\n\n--\nSig Name")
		if strings.TrimSpace(got) != "body paragraph" {
			return fail(mod, "footer_cut_at_dashes_line", fmt.Sprintf("got %q", got), start)
		}
		return pass(mod, "footer_cut_at_dashes_line", start)
	}))

	results = append(results, safeRun(mod, "post_composite_keeps_body_only", func() testResult {
		start := time.Now()
		got := clean.Post(rawPost)
		if strings.TrimSpace(got) != cleanedBody {
			return fail(mod, "post_composite_keeps_body_only", fmt.Sprintf("got %q", got), start)
		}
		if strings.Contains(got, "writes:") || strings.Contains(got, "Subject:") || strings.Contains(got, "Season ticket") {
			return fail(mod, "post_composite_keeps_body_only", "scaffolding survived cleaning", start)
		}
		return pass(mod, "post_composite_keeps_body_only", start)
	}))

	results = append(results, safeRun(mod, "oversize_input_unchanged", func() testResult {
		start := time.Now()
		big := strings.Repeat("x", 1<<20+1)
		if clean.Post(big) != big {
			return fail(mod, "oversize_input_unchanged", "oversize input was modified", start)
		}
		return pass(mod, "oversize_input_unchanged", start)
	}))

	return results
}

func testTokenize() []testResult {
	const mod = "tokenize"
	var results []testResult

	results = append(results, safeRun(mod, "offsets_reconstruct_input", func() testResult {
		start := time.Now()
		toks := tokenize.WordTokens(plainText)
		if len(toks) == 0 {
			return fail(mod, "offsets_reconstruct_input", "WordTokens returned 0 tokens", start)
		}
		var sb strings.Builder
		for _, t := range toks {
			if plainText[t.Start:t.End] != t.Text {
				return fail(mod, "offsets_reconstruct_input",
					fmt.Sprintf("offset invariant broken at [%d:%d]", t.Start, t.End), start)
			}
			sb.WriteString(t.Text)
		}
		if sb.String() != plainText {
			return fail(mod, "offsets_reconstruct_input", "token reconstruction failed", start)
		}
		return pass(mod, "offsets_reconstruct_input", start)
	}))

	results = append(results, safeRun(mod, "number_grouping_single_token", func() testResult {
		start := time.Now()
		toks := tokenize.WordTokens("1,234.56")
		if len(toks) != 1 || toks[0].Type != tokenize.Number || toks[0].Text != "1,234.56" {
			return fail(mod, "number_grouping_single_token", fmt.Sprintf("got %v", toks), start)
		}
		return pass(mod, "number_grouping_single_token", start)
	}))

	results = append(results, safeRun(mod, "words_keeps_word_tokens_only", func() testResult {
		start := time.Now()
		ws := tokenize.Words("Go 1,500! now")
		if len(ws) != 2 || ws[0] != "Go" || ws[1] != "now" {
			return fail(mod, "words_keeps_word_tokens_only", fmt.Sprintf("got %v", ws), start)
		}
		return pass(mod, "words_keeps_word_tokens_only", start)
	}))

	results = append(results, safeRun(mod, "url_token_swallows_path", func() testResult {
		start := time.Now()
		for _, t := range tokenize.WordTokens("see https://example.com/page now") {
			if t.Type == tokenize.URL {
				if t.Text != "https://example.com/page" {
					return fail(mod, "url_token_swallows_path", fmt.Sprintf("got %q", t.Text), start)
				}
				return pass(mod, "url_token_swallows_path", start)
			}
		}
		return fail(mod, "url_token_swallows_path", "no URL token found", start)
	}))

	results = append(results, safeRun(mod, "email_detected_midline", func() testResult {
		start := time.Now()
		for _, t := range tokenize.WordTokens("mail bob@example.com now") {
			if t.Type == tokenize.Email {
				if t.Text != "bob@example.com" {
					return fail(mod, "email_detected_midline", fmt.Sprintf("got %q", t.Text), start)
				}
				return pass(mod, "email_detected_midline", start)
			}
		}
		return fail(mod, "email_detected_midline", "no email token found", start)
	}))

	results = append(results, safeRun(mod, "empty_input_no_tokens", func() testResult {
		start := time.Now()
		if toks := tokenize.WordTokens(""); len(toks) != 0 {
			return fail(mod, "empty_input_no_tokens", fmt.Sprintf("got %d tokens", len(toks)), start)
		}
		return pass(mod, "empty_input_no_tokens", start)
	}))

	return results
}

func testLemma() []testResult {
	const mod = "lemma"
	var results []testResult

	check := func(name, got, want string) testResult {
		start := time.Now()
		if got != want {
			return fail(mod, name, fmt.Sprintf("got %q, want %q", got, want), start)
		}
		return pass(mod, name, start)
	}

	results = append(results, safeRun(mod, "irregular_verb_from_table", func() testResult {
		return check("irregular_verb_from_table", lemma.LemmaPOS("went", "VBD"), "go")
	}))

	results = append(results, safeRun(mod, "plural_detaches_to_attested_lemma", func() testResult {
		return check("plural_detaches_to_attested_lemma", lemma.LemmaPOS("studies", "NNS"), "study")
	}))

	results = append(results, safeRun(mod, "attested_form_not_stripped", func() testResult {
		return check("attested_form_not_stripped", lemma.LemmaPOS("news", "NNS"), "news")
	}))

	results = append(results, safeRun(mod, "closed_class_tag_lowercases", func() testResult {
		return check("closed_class_tag_lowercases", lemma.LemmaPOS("The", "DT"), "the")
	}))

	results = append(results, safeRun(mod, "noun_first_probe_without_tag", func() testResult {
		return check("noun_first_probe_without_tag", lemma.Lemma("leaves"), "leaf")
	}))

	results = append(results, safeRun(mod, "batch_preserves_order", func() testResult {
		start := time.Now()
		got := lemma.Lemmas([]string{"went", "studies", "the"})
		want := []string{"go", "study", "the"}
		if len(got) != len(want) {
			return fail(mod, "batch_preserves_order", fmt.Sprintf("got %d lemmas", len(got)), start)
		}
		for i := range want {
			if got[i] != want[i] {
				return fail(mod, "batch_preserves_order",
					fmt.Sprintf("lemma %d: got %q, want %q", i, got[i], want[i]), start)
			}
		}
		return pass(mod, "batch_preserves_order", start)
	}))

	return results
}

func testAnnotate() []testResult {
	const mod = "annotate"
	var results []testResult

	results = append(results, safeRun(mod, "two_sentences_split", func() testResult {
		start := time.Now()
		doc, err := annotate.Text("The rocket reached orbit. The crew slept.")
		if err != nil {
			return fail(mod, "two_sentences_split", fmt.Sprintf("error: %v", err), start)
		}
		if len(doc.Sentences) != 2 {
			return fail(mod, "two_sentences_split", fmt.Sprintf("got %d sentences", len(doc.Sentences)), start)
		}
		return pass(mod, "two_sentences_split", start)
	}))

	results = append(results, safeRun(mod, "tokens_carry_tags", func() testResult {
		start := time.Now()
		doc, err := annotate.Text("The rocket reached orbit.")
		if err != nil {
			return fail(mod, "tokens_carry_tags", fmt.Sprintf("error: %v", err), start)
		}
		toks := doc.Tokens()
		if len(toks) == 0 {
			return fail(mod, "tokens_carry_tags", "no tokens", start)
		}
		for i, t := range toks {
			if t.Tag == "" {
				return fail(mod, "tokens_carry_tags", fmt.Sprintf("token %d %q has empty tag", i, t.Text), start)
			}
		}
		return pass(mod, "tokens_carry_tags", start)
	}))

	results = append(results, safeRun(mod, "stopword_and_alpha_flags", func() testResult {
		start := time.Now()
		doc, err := annotate.Text("The rocket reached orbit.")
		if err != nil {
			return fail(mod, "stopword_and_alpha_flags", fmt.Sprintf("error: %v", err), start)
		}
		for _, t := range doc.Tokens() {
			if t.Text == "The" {
				if !t.Alpha || !t.Stop {
					return fail(mod, "stopword_and_alpha_flags",
						fmt.Sprintf("The: alpha=%v stop=%v", t.Alpha, t.Stop), start)
				}
				return pass(mod, "stopword_and_alpha_flags", start)
			}
		}
		return fail(mod, "stopword_and_alpha_flags", "token The not found", start)
	}))

	results = append(results, safeRun(mod, "iob_labels_wellformed", func() testResult {
		start := time.Now()
		doc, err := annotate.Text("Maria Santos visited Boston last week.")
		if err != nil {
			return fail(mod, "iob_labels_wellformed", fmt.Sprintf("error: %v", err), start)
		}
		for i, t := range doc.Tokens() {
			ok := t.IOB == "O" || strings.HasPrefix(t.IOB, "B-") || strings.HasPrefix(t.IOB, "I-")
			if !ok {
				return fail(mod, "iob_labels_wellformed", fmt.Sprintf("token %d has label %q", i, t.IOB), start)
			}
		}
		return pass(mod, "iob_labels_wellformed", start)
	}))

	results = append(results, safeRun(mod, "empty_input_empty_doc", func() testResult {
		start := time.Now()
		doc, err := annotate.Text("")
		if err != nil {
			return fail(mod, "empty_input_empty_doc", fmt.Sprintf("error: %v", err), start)
		}
		if len(doc.Sentences) != 0 {
			return fail(mod, "empty_input_empty_doc", fmt.Sprintf("got %d sentences", len(doc.Sentences)), start)
		}
		return pass(mod, "empty_input_empty_doc", start)
	}))

	results = append(results, safeRun(mod, "batch_preserves_input_order", func() testResult {
		start := time.Now()
		texts := []string{"Rockets fly.", "Goalies save."}
		docs, err := annotate.Texts(texts)
		if err != nil {
			return fail(mod, "batch_preserves_input_order", fmt.Sprintf("error: %v", err), start)
		}
		if len(docs) != 2 || docs[0].Text != texts[0] || docs[1].Text != texts[1] {
			return fail(mod, "batch_preserves_input_order", "documents out of order", start)
		}
		return pass(mod, "batch_preserves_input_order", start)
	}))

	return results
}

func testNgram() []testResult {
	const mod = "ngram"
	var results []testResult

	results = append(results, safeRun(mod, "stopword_discarded", func() testResult {
		start := time.Now()
		if _, ok := ngram.ProcessToken(annotate.Token{Text: "the", Lemma: "the", Alpha: true, Stop: true}); ok {
			return fail(mod, "stopword_discarded", "stopword survived", start)
		}
		return pass(mod, "stopword_discarded", start)
	}))

	results = append(results, safeRun(mod, "person_token_collapsed", func() testResult {
		start := time.Now()
		f, ok := ngram.ProcessToken(annotate.Token{Text: "Wayne", Lemma: "wayne", IOB: "B-PERSON", Alpha: true})
		if !ok || f != ngram.PersonMark {
			return fail(mod, "person_token_collapsed", fmt.Sprintf("got %q ok=%v", f, ok), start)
		}
		return pass(mod, "person_token_collapsed", start)
	}))

	results = append(results, safeRun(mod, "nonalpha_discarded", func() testResult {
		start := time.Now()
		if _, ok := ngram.ProcessToken(annotate.Token{Text: "3-1"}); ok {
			return fail(mod, "nonalpha_discarded", "non-alphabetic token survived", start)
		}
		return pass(mod, "nonalpha_discarded", start)
	}))

	results = append(results, safeRun(mod, "unigrams_then_bigrams_per_sentence", func() testResult {
		start := time.Now()
		got := ngram.Featurize(buildDoc(), 2)
		want := []ngram.Feature{
			"-person-", "-person-", "score", "twice",
			"-person- -person-", "-person- score", "score twice",
			"crowd", "roar",
			"crowd roar",
		}
		if !featuresEqual(got, want) {
			return fail(mod, "unigrams_then_bigrams_per_sentence", fmt.Sprintf("got %v", got), start)
		}
		return pass(mod, "unigrams_then_bigrams_per_sentence", start)
	}))

	results = append(results, safeRun(mod, "no_bigram_across_sentences", func() testResult {
		start := time.Now()
		for _, f := range ngram.Featurize(buildDoc(), 2) {
			if f == "twice crowd" {
				return fail(mod, "no_bigram_across_sentences", "bigram spans sentence boundary", start)
			}
		}
		return pass(mod, "no_bigram_across_sentences", start)
	}))

	results = append(results, safeRun(mod, "unigram_mode_drops_bigrams", func() testResult {
		start := time.Now()
		got := ngram.Featurize(buildDoc(), 1)
		if len(got) != 6 {
			return fail(mod, "unigram_mode_drops_bigrams", fmt.Sprintf("got %d features", len(got)), start)
		}
		for _, f := range got {
			if f.IsBigram() {
				return fail(mod, "unigram_mode_drops_bigrams", fmt.Sprintf("bigram %q in unigram mode", f), start)
			}
		}
		return pass(mod, "unigram_mode_drops_bigrams", start)
	}))

	results = append(results, safeRun(mod, "counts_tally_stream", func() testResult {
		start := time.Now()
		c := ngram.Count(ngram.Featurize(buildDoc(), 2))
		if c["-person-"] != 2 || c["score twice"] != 1 || c["crowd"] != 1 {
			return fail(mod, "counts_tally_stream", fmt.Sprintf("got %v", c), start)
		}
		return pass(mod, "counts_tally_stream", start)
	}))

	return results
}

func testBow() []testResult {
	const mod = "bow"
	var results []testResult

	streams := [][]ngram.Feature{{"b", "a", "a"}, {"a", "c"}, {"a", "b"}}

	results = append(results, safeRun(mod, "vocabulary_sorted_and_filtered", func() testResult {
		start := time.Now()
		v := bow.BuildVocabulary(streams, bow.Options{MinDocCount: 2})
		feats := v.Features()
		if v.Size() != 2 || feats[0] != "a" || feats[1] != "b" {
			return fail(mod, "vocabulary_sorted_and_filtered", fmt.Sprintf("got %v", feats), start)
		}
		if v.DocFreq("a") != 3 {
			return fail(mod, "vocabulary_sorted_and_filtered", fmt.Sprintf("DocFreq(a)=%d", v.DocFreq("a")), start)
		}
		return pass(mod, "vocabulary_sorted_and_filtered", start)
	}))

	results = append(results, safeRun(mod, "max_features_keeps_highest_df", func() testResult {
		start := time.Now()
		v := bow.BuildVocabulary(streams, bow.Options{MaxFeatures: 1})
		if v.Size() != 1 {
			return fail(mod, "max_features_keeps_highest_df", fmt.Sprintf("size=%d", v.Size()), start)
		}
		if _, ok := v.Index("a"); !ok {
			return fail(mod, "max_features_keeps_highest_df", "most frequent feature dropped", start)
		}
		return pass(mod, "max_features_keeps_highest_df", start)
	}))

	results = append(results, safeRun(mod, "count_matrix_rows_follow_streams", func() testResult {
		start := time.Now()
		v := bow.BuildVocabulary(streams, bow.Options{MinDocCount: 2})
		m, err := bow.CountMatrix(streams, v)
		if err != nil {
			return fail(mod, "count_matrix_rows_follow_streams", fmt.Sprintf("error: %v", err), start)
		}
		r, c := m.Dims()
		if r != 3 || c != 2 {
			return fail(mod, "count_matrix_rows_follow_streams", fmt.Sprintf("dims %dx%d", r, c), start)
		}
		want := [3][2]float64{{2, 1}, {1, 0}, {1, 1}}
		for i := 0; i < 3; i++ {
			for j := 0; j < 2; j++ {
				if m.At(i, j) != want[i][j] {
					return fail(mod, "count_matrix_rows_follow_streams",
						fmt.Sprintf("at (%d,%d): got %v, want %v", i, j, m.At(i, j), want[i][j]), start)
				}
			}
		}
		return pass(mod, "count_matrix_rows_follow_streams", start)
	}))

	results = append(results, safeRun(mod, "unseen_features_dropped", func() testResult {
		start := time.Now()
		v := bow.BuildVocabulary(streams, bow.Options{MinDocCount: 2})
		m, err := bow.CountMatrix([][]ngram.Feature{{"a", "zzz"}}, v)
		if err != nil {
			return fail(mod, "unseen_features_dropped", fmt.Sprintf("error: %v", err), start)
		}
		if m.At(0, 0) != 1 || m.At(0, 1) != 0 {
			return fail(mod, "unseen_features_dropped",
				fmt.Sprintf("row = [%v %v]", m.At(0, 0), m.At(0, 1)), start)
		}
		return pass(mod, "unseen_features_dropped", start)
	}))

	results = append(results, safeRun(mod, "tfidf_preserves_shape", func() testResult {
		start := time.Now()
		v := bow.BuildVocabulary(streams, bow.Options{})
		m, err := bow.CountMatrix(streams, v)
		if err != nil {
			return fail(mod, "tfidf_preserves_shape", fmt.Sprintf("count: %v", err), start)
		}
		w, err := bow.NewTFIDF().FitTransform(m)
		if err != nil {
			return fail(mod, "tfidf_preserves_shape", fmt.Sprintf("tfidf: %v", err), start)
		}
		wr, wc := w.Dims()
		mr, mc := m.Dims()
		if wr != mr || wc != mc {
			return fail(mod, "tfidf_preserves_shape", fmt.Sprintf("dims %dx%d, want %dx%d", wr, wc, mr, mc), start)
		}
		for i := 0; i < wr; i++ {
			for j := 0; j < wc; j++ {
				if x := w.At(i, j); math.IsNaN(x) || x < 0 {
					return fail(mod, "tfidf_preserves_shape", fmt.Sprintf("weight (%d,%d) = %v", i, j, x), start)
				}
			}
		}
		return pass(mod, "tfidf_preserves_shape", start)
	}))

	return results
}

func testWordvec() []testResult {
	const mod = "wordvec"
	var results []testResult

	table, err := wordvec.LoadFile(vectorsPath)
	if err != nil {
		results = append(results, fail(mod, "table_loads_and_folds_lookup", fmt.Sprintf("load: %v", err), time.Now()))
		return results
	}

	results = append(results, safeRun(mod, "table_loads_and_folds_lookup", func() testResult {
		start := time.Now()
		if table.Len() != 6 || table.Dim() != 4 {
			return fail(mod, "table_loads_and_folds_lookup",
				fmt.Sprintf("len=%d dim=%d", table.Len(), table.Dim()), start)
		}
		v, ok := table.Vector("GOALIE")
		if !ok || len(v) != 4 {
			return fail(mod, "table_loads_and_folds_lookup", "folded lookup failed", start)
		}
		return pass(mod, "table_loads_and_folds_lookup", start)
	}))

	docOf := func(words ...string) *annotate.Doc {
		toks := make([]annotate.Token, len(words))
		for i, w := range words {
			toks[i] = annotate.Token{Text: w, Alpha: true}
		}
		return &annotate.Doc{Sentences: []annotate.Sentence{{Tokens: toks}}}
	}

	results = append(results, safeRun(mod, "mean_pools_token_vectors", func() testResult {
		start := time.Now()
		m, err := table.MeanMatrix([]*annotate.Doc{docOf("goalie", "puck")})
		if err != nil {
			return fail(mod, "mean_pools_token_vectors", fmt.Sprintf("error: %v", err), start)
		}
		g, _ := table.Vector("goalie")
		p, _ := table.Vector("puck")
		for j := 0; j < 4; j++ {
			want := (g[j] + p[j]) / 2
			if math.Abs(m.At(0, j)-want) > 1e-12 {
				return fail(mod, "mean_pools_token_vectors",
					fmt.Sprintf("col %d: got %v, want %v", j, m.At(0, j), want), start)
			}
		}
		return pass(mod, "mean_pools_token_vectors", start)
	}))

	results = append(results, safeRun(mod, "oov_tokens_contribute_nothing", func() testResult {
		start := time.Now()
		m, err := table.MeanMatrix([]*annotate.Doc{docOf("goalie", "zzzz")})
		if err != nil {
			return fail(mod, "oov_tokens_contribute_nothing", fmt.Sprintf("error: %v", err), start)
		}
		g, _ := table.Vector("goalie")
		for j := 0; j < 4; j++ {
			if math.Abs(m.At(0, j)-g[j]) > 1e-12 {
				return fail(mod, "oov_tokens_contribute_nothing",
					fmt.Sprintf("col %d: got %v, want %v", j, m.At(0, j), g[j]), start)
			}
		}
		return pass(mod, "oov_tokens_contribute_nothing", start)
	}))

	results = append(results, safeRun(mod, "empty_doc_keeps_zero_row", func() testResult {
		start := time.Now()
		m, err := table.MeanMatrix([]*annotate.Doc{docOf("qqqq")})
		if err != nil {
			return fail(mod, "empty_doc_keeps_zero_row", fmt.Sprintf("error: %v", err), start)
		}
		for j := 0; j < 4; j++ {
			if m.At(0, j) != 0 {
				return fail(mod, "empty_doc_keeps_zero_row", fmt.Sprintf("col %d = %v", j, m.At(0, j)), start)
			}
		}
		return pass(mod, "empty_doc_keeps_zero_row", start)
	}))

	return results
}

func testLinear() []testResult {
	const mod = "linear"
	var results []testResult

	x, y := blobs()

	results = append(results, safeRun(mod, "separable_blobs_fit_perfectly", func() testResult {
		start := time.Now()
		model := linear.NewLogisticRegression()
		if err := model.Fit(x, y); err != nil {
			return fail(mod, "separable_blobs_fit_perfectly", fmt.Sprintf("fit: %v", err), start)
		}
		score, err := model.Score(x, y)
		if err != nil {
			return fail(mod, "separable_blobs_fit_perfectly", fmt.Sprintf("score: %v", err), start)
		}
		if score < 0.99 {
			return fail(mod, "separable_blobs_fit_perfectly", fmt.Sprintf("train accuracy %v", score), start)
		}
		return pass(mod, "separable_blobs_fit_perfectly", start)
	}))

	results = append(results, safeRun(mod, "probabilities_sum_to_one", func() testResult {
		start := time.Now()
		model := linear.NewLogisticRegression()
		if err := model.Fit(x, y); err != nil {
			return fail(mod, "probabilities_sum_to_one", fmt.Sprintf("fit: %v", err), start)
		}
		p, err := model.PredictProba(x)
		if err != nil {
			return fail(mod, "probabilities_sum_to_one", fmt.Sprintf("proba: %v", err), start)
		}
		r, c := p.Dims()
		for i := 0; i < r; i++ {
			sum := 0.0
			for j := 0; j < c; j++ {
				sum += p.At(i, j)
			}
			if math.Abs(sum-1) > 1e-9 {
				return fail(mod, "probabilities_sum_to_one", fmt.Sprintf("row %d sums to %v", i, sum), start)
			}
		}
		return pass(mod, "probabilities_sum_to_one", start)
	}))

	results = append(results, safeRun(mod, "decision_shape_matches_classes", func() testResult {
		start := time.Now()
		model := linear.NewLogisticRegression()
		if err := model.Fit(x, y); err != nil {
			return fail(mod, "decision_shape_matches_classes", fmt.Sprintf("fit: %v", err), start)
		}
		d, err := model.Decision(x)
		if err != nil {
			return fail(mod, "decision_shape_matches_classes", fmt.Sprintf("decision: %v", err), start)
		}
		r, c := d.Dims()
		if r != 12 || c != model.NumClasses() {
			return fail(mod, "decision_shape_matches_classes", fmt.Sprintf("dims %dx%d", r, c), start)
		}
		return pass(mod, "decision_shape_matches_classes", start)
	}))

	results = append(results, safeRun(mod, "refit_is_deterministic", func() testResult {
		start := time.Now()
		m1 := linear.NewLogisticRegression()
		m2 := linear.NewLogisticRegression()
		if err := m1.Fit(x, y); err != nil {
			return fail(mod, "refit_is_deterministic", fmt.Sprintf("fit 1: %v", err), start)
		}
		if err := m2.Fit(x, y); err != nil {
			return fail(mod, "refit_is_deterministic", fmt.Sprintf("fit 2: %v", err), start)
		}
		if !mat.EqualApprox(m1.Coefficients(), m2.Coefficients(), 1e-9) {
			return fail(mod, "refit_is_deterministic", "coefficients differ between runs", start)
		}
		return pass(mod, "refit_is_deterministic", start)
	}))

	results = append(results, safeRun(mod, "predict_new_points", func() testResult {
		start := time.Now()
		model := linear.NewLogisticRegression()
		if err := model.Fit(x, y); err != nil {
			return fail(mod, "predict_new_points", fmt.Sprintf("fit: %v", err), start)
		}
		xNew := mat.NewDense(3, 2, []float64{0.05, 0.05, 5.05, 0.05, 0.05, 5.05})
		got, err := model.Predict(xNew)
		if err != nil {
			return fail(mod, "predict_new_points", fmt.Sprintf("predict: %v", err), start)
		}
		if len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 2 {
			return fail(mod, "predict_new_points", fmt.Sprintf("got %v", got), start)
		}
		return pass(mod, "predict_new_points", start)
	}))

	return results
}

func testMetrics() []testResult {
	const mod = "metrics"
	var results []testResult

	got := []int{0, 1, 2, 1}
	want := []int{0, 1, 1, 1}

	results = append(results, safeRun(mod, "accuracy_counts_matches", func() testResult {
		start := time.Now()
		if acc := metrics.Accuracy(got, want); acc != 0.75 {
			return fail(mod, "accuracy_counts_matches", fmt.Sprintf("got %v", acc), start)
		}
		return pass(mod, "accuracy_counts_matches", start)
	}))

	results = append(results, safeRun(mod, "confusion_tallies_counts", func() testResult {
		start := time.Now()
		c := metrics.NewConfusion(got, want, 3)
		if c.At(0, 0) != 1 || c.At(1, 1) != 2 || c.At(1, 2) != 1 {
			return fail(mod, "confusion_tallies_counts", c.String(), start)
		}
		return pass(mod, "confusion_tallies_counts", start)
	}))

	results = append(results, safeRun(mod, "per_class_support", func() testResult {
		start := time.Now()
		stats := metrics.NewConfusion(got, want, 3).PerClass()
		if stats[1].Support != 3 || stats[0].Support != 1 || stats[2].Support != 0 {
			return fail(mod, "per_class_support", fmt.Sprintf("got %+v", stats), start)
		}
		return pass(mod, "per_class_support", start)
	}))

	results = append(results, safeRun(mod, "report_names_classes", func() testResult {
		start := time.Now()
		rep := metrics.Report(got, want, []string{"hockey", "med", "space"})
		if !strings.Contains(rep, "hockey") || !strings.Contains(rep, "accuracy") {
			return fail(mod, "report_names_classes", truncate(rep, maxDetailLen), start)
		}
		return pass(mod, "report_names_classes", start)
	}))

	return results
}

func testCorpus() []testResult {
	const mod = "corpus"
	var results []testResult

	col, err := corpus.LoadFS(data.Sample())
	if err != nil {
		results = append(results, fail(mod, "embedded_sample_loads", fmt.Sprintf("load: %v", err), time.Now()))
		return results
	}

	results = append(results, safeRun(mod, "embedded_sample_loads", func() testResult {
		start := time.Now()
		if len(col.Categories) != 3 || len(col.Posts) == 0 {
			return fail(mod, "embedded_sample_loads",
				fmt.Sprintf("%d categories, %d posts", len(col.Categories), len(col.Posts)), start)
		}
		log.Printf("  corpus: %d posts in %d categories", len(col.Posts), len(col.Categories))
		return pass(mod, "embedded_sample_loads", start)
	}))

	results = append(results, safeRun(mod, "split_covers_posts_exactly_once", func() testResult {
		start := time.Now()
		train, test := col.Split(corpus.DefaultTestFraction, 42)
		if len(train.Posts)+len(test.Posts) != len(col.Posts) {
			return fail(mod, "split_covers_posts_exactly_once",
				fmt.Sprintf("%d train + %d test != %d", len(train.Posts), len(test.Posts), len(col.Posts)), start)
		}
		seen := make(map[string]bool, len(col.Posts))
		for _, p := range train.Posts {
			seen[p.ID] = true
		}
		for _, p := range test.Posts {
			if seen[p.ID] {
				return fail(mod, "split_covers_posts_exactly_once", fmt.Sprintf("post %s on both sides", p.ID), start)
			}
			seen[p.ID] = true
		}
		if len(seen) != len(col.Posts) {
			return fail(mod, "split_covers_posts_exactly_once", fmt.Sprintf("%d distinct ids", len(seen)), start)
		}
		return pass(mod, "split_covers_posts_exactly_once", start)
	}))

	results = append(results, safeRun(mod, "same_seed_same_split", func() testResult {
		start := time.Now()
		_, t1 := col.Split(corpus.DefaultTestFraction, 42)
		_, t2 := col.Split(corpus.DefaultTestFraction, 42)
		if len(t1.Posts) != len(t2.Posts) {
			return fail(mod, "same_seed_same_split", "test sizes differ", start)
		}
		for i := range t1.Posts {
			if t1.Posts[i].ID != t2.Posts[i].ID {
				return fail(mod, "same_seed_same_split",
					fmt.Sprintf("post %d: %s vs %s", i, t1.Posts[i].ID, t2.Posts[i].ID), start)
			}
		}
		return pass(mod, "same_seed_same_split", start)
	}))

	results = append(results, safeRun(mod, "targets_align_with_categories", func() testResult {
		start := time.Now()
		for _, p := range col.Posts {
			if p.Target < 0 || p.Target >= len(col.Categories) {
				return fail(mod, "targets_align_with_categories",
					fmt.Sprintf("post %s target %d", p.ID, p.Target), start)
			}
			if !strings.HasPrefix(p.ID, col.Categories[p.Target]+"/") {
				return fail(mod, "targets_align_with_categories",
					fmt.Sprintf("post %s labeled %s", p.ID, col.Categories[p.Target]), start)
			}
		}
		return pass(mod, "targets_align_with_categories", start)
	}))

	return results
}

func testPipeline() []testResult {
	const mod = "pipeline"
	var results []testResult

	col, err := corpus.LoadFS(data.Sample())
	if err != nil {
		results = append(results, fail(mod, "sample_corpus_setup", fmt.Sprintf("load: %v", err), time.Now()))
		return results
	}
	train, test := col.Split(corpus.DefaultTestFraction, 42)

	annotateAll := func(texts []string) ([]*annotate.Doc, error) {
		cleaned := make([]string, len(texts))
		for i, t := range texts {
			cleaned[i] = clean.Post(t)
		}
		return annotate.Texts(cleaned)
	}

	setupStart := time.Now()
	trainDocs, err := annotateAll(train.Texts())
	if err != nil {
		results = append(results, fail(mod, "sample_corpus_setup", fmt.Sprintf("annotate train: %v", err), setupStart))
		return results
	}
	testDocs, err := annotateAll(test.Texts())
	if err != nil {
		results = append(results, fail(mod, "sample_corpus_setup", fmt.Sprintf("annotate test: %v", err), setupStart))
		return results
	}
	log.Printf("  pipeline: %d train / %d test docs annotated in %s",
		len(trainDocs), len(testDocs), time.Since(setupStart).Round(time.Millisecond))

	trainStreams := ngram.FeaturizeAll(trainDocs, 2)
	testStreams := ngram.FeaturizeAll(testDocs, 2)
	vocab := bow.BuildVocabulary(trainStreams, bow.Options{})

	results = append(results, safeRun(mod, "bow_classifier_end_to_end", func() testResult {
		start := time.Now()
		if vocab.Size() < 100 {
			return fail(mod, "bow_classifier_end_to_end", fmt.Sprintf("vocabulary has %d features", vocab.Size()), start)
		}
		xTrain, err := bow.CountMatrix(trainStreams, vocab)
		if err != nil {
			return fail(mod, "bow_classifier_end_to_end", fmt.Sprintf("train counts: %v", err), start)
		}
		xTest, err := bow.CountMatrix(testStreams, vocab)
		if err != nil {
			return fail(mod, "bow_classifier_end_to_end", fmt.Sprintf("test counts: %v", err), start)
		}
		model := linear.NewLogisticRegression()
		if err := model.Fit(xTrain, train.Targets()); err != nil {
			return fail(mod, "bow_classifier_end_to_end", fmt.Sprintf("fit: %v", err), start)
		}
		score, err := model.Score(xTrain, train.Targets())
		if err != nil {
			return fail(mod, "bow_classifier_end_to_end", fmt.Sprintf("score: %v", err), start)
		}
		if score < 0.8 {
			return fail(mod, "bow_classifier_end_to_end", fmt.Sprintf("train accuracy %v", score), start)
		}
		preds, err := model.Predict(xTest)
		if err != nil {
			return fail(mod, "bow_classifier_end_to_end", fmt.Sprintf("predict: %v", err), start)
		}
		acc := metrics.Accuracy(preds, test.Targets())
		log.Printf("  pipeline: bag-of-ngrams train %.3f / test %.3f", score, acc)
		if acc < 0.5 {
			return fail(mod, "bow_classifier_end_to_end", fmt.Sprintf("test accuracy %v", acc), start)
		}
		return pass(mod, "bow_classifier_end_to_end", start)
	}))

	results = append(results, safeRun(mod, "tfidf_variant_end_to_end", func() testResult {
		start := time.Now()
		xTrain, err := bow.CountMatrix(trainStreams, vocab)
		if err != nil {
			return fail(mod, "tfidf_variant_end_to_end", fmt.Sprintf("train counts: %v", err), start)
		}
		xTest, err := bow.CountMatrix(testStreams, vocab)
		if err != nil {
			return fail(mod, "tfidf_variant_end_to_end", fmt.Sprintf("test counts: %v", err), start)
		}
		tfidf := bow.NewTFIDF()
		wTrain, err := tfidf.FitTransform(xTrain)
		if err != nil {
			return fail(mod, "tfidf_variant_end_to_end", fmt.Sprintf("fit transform: %v", err), start)
		}
		wTest, err := tfidf.Transform(xTest)
		if err != nil {
			return fail(mod, "tfidf_variant_end_to_end", fmt.Sprintf("transform: %v", err), start)
		}
		model := linear.NewLogisticRegression()
		if err := model.Fit(wTrain, train.Targets()); err != nil {
			return fail(mod, "tfidf_variant_end_to_end", fmt.Sprintf("fit: %v", err), start)
		}
		score, err := model.Score(wTrain, train.Targets())
		if err != nil {
			return fail(mod, "tfidf_variant_end_to_end", fmt.Sprintf("score: %v", err), start)
		}
		if score < 0.8 {
			return fail(mod, "tfidf_variant_end_to_end", fmt.Sprintf("train accuracy %v", score), start)
		}
		if _, err := model.Predict(wTest); err != nil {
			return fail(mod, "tfidf_variant_end_to_end", fmt.Sprintf("predict: %v", err), start)
		}
		return pass(mod, "tfidf_variant_end_to_end", start)
	}))

	results = append(results, safeRun(mod, "embedding_classifier_end_to_end", func() testResult {
		start := time.Now()
		table, err := wordvec.LoadFile(vectorsPath)
		if err != nil {
			return fail(mod, "embedding_classifier_end_to_end", fmt.Sprintf("vectors: %v", err), start)
		}
		xTrain, err := table.MeanMatrix(trainDocs)
		if err != nil {
			return fail(mod, "embedding_classifier_end_to_end", fmt.Sprintf("train pooling: %v", err), start)
		}
		r, c := xTrain.Dims()
		if r != len(trainDocs) || c != table.Dim() {
			return fail(mod, "embedding_classifier_end_to_end", fmt.Sprintf("dims %dx%d", r, c), start)
		}
		xTest, err := table.MeanMatrix(testDocs)
		if err != nil {
			return fail(mod, "embedding_classifier_end_to_end", fmt.Sprintf("test pooling: %v", err), start)
		}
		model := linear.NewLogisticRegression()
		if err := model.Fit(xTrain, train.Targets()); err != nil {
			return fail(mod, "embedding_classifier_end_to_end", fmt.Sprintf("fit: %v", err), start)
		}
		preds, err := model.Predict(xTest)
		if err != nil {
			return fail(mod, "embedding_classifier_end_to_end", fmt.Sprintf("predict: %v", err), start)
		}
		if len(preds) != len(testDocs) {
			return fail(mod, "embedding_classifier_end_to_end", fmt.Sprintf("%d predictions", len(preds)), start)
		}
		return pass(mod, "embedding_classifier_end_to_end", start)
	}))

	return results
}

func testConcurrent() []testResult {
	const mod = "concurrent"
	var results []testResult

	results = append(results, safeRun(mod, "all_packages_8_goroutines_x100", func() testResult {
		start := time.Now()

		doc := buildDoc()
		streams := [][]ngram.Feature{{"goalie", "save"}, {"goalie", "puck"}}
		vocab := bow.BuildVocabulary(streams, bow.Options{})
		table, err := wordvec.LoadFile(vectorsPath)
		if err != nil {
			return fail(mod, "all_packages_8_goroutines_x100", fmt.Sprintf("vectors: %v", err), start)
		}
		x, y := blobs()
		model := linear.NewLogisticRegression()
		if err := model.Fit(x, y); err != nil {
			return fail(mod, "all_packages_8_goroutines_x100", fmt.Sprintf("fit: %v", err), start)
		}

		var panics atomic.Int64
		var wg sync.WaitGroup
		for w := 0; w < concWorkers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for it := 0; it < concIter; it++ {
					func() {
						defer func() {
							if p := recover(); p != nil {
								panics.Add(1)
							}
						}()
						clean.Post(rawPost)
						tokenize.WordTokens(plainText)
						tokenize.Words(plainText)
						lemma.LemmaPOS("studies", "NNS")
						lemma.Lemma("leaves")
						ngram.Featurize(doc, 2)
						ngram.Count(ngram.Featurize(doc, 1))
						_, _ = bow.CountMatrix(streams, vocab)
						table.Vector("GOALIE")
						_, _ = model.Predict(x)
						metrics.Accuracy([]int{0, 1}, []int{0, 1})
					}()
				}
			}()
		}
		wg.Wait()

		if n := panics.Load(); n > 0 {
			return fail(mod, "all_packages_8_goroutines_x100",
				fmt.Sprintf("%d panics detected across goroutines", n), start)
		}
		return pass(mod, "all_packages_8_goroutines_x100", start)
	}))

	results = append(results, safeRun(mod, "annotate_batch_workers", func() testResult {
		start := time.Now()
		texts := []string{
			"The puck crossed the line.",
			"The shuttle reached orbit.",
			"The trial tested a new vaccine.",
			"The crowd cheered the save.",
			"The probe left the atmosphere.",
			"The doctor reviewed the chart.",
			"The defense blocked the shot.",
			"The rocket cleared the tower.",
		}
		docs, err := annotate.Texts(texts)
		if err != nil {
			return fail(mod, "annotate_batch_workers", fmt.Sprintf("error: %v", err), start)
		}
		if len(docs) != len(texts) {
			return fail(mod, "annotate_batch_workers", fmt.Sprintf("%d docs", len(docs)), start)
		}
		for i, d := range docs {
			if d == nil || len(d.Sentences) == 0 {
				return fail(mod, "annotate_batch_workers", fmt.Sprintf("document %d empty", i), start)
			}
		}
		return pass(mod, "annotate_batch_workers", start)
	}))

	return results
}

// ---------- orchestration ----------

func runAllSuites() []testResult {
	suites := []func() []testResult{
		testClean,
		testTokenize,
		testLemma,
		testAnnotate,
		testNgram,
		testBow,
		testWordvec,
		testLinear,
		testMetrics,
		testCorpus,
		testPipeline,
		testConcurrent,
	}

	var all []testResult
	for _, suite := range suites {
		all = append(all, suite()...)
	}
	return all
}

func buildReports(results []testResult) []moduleReport {
	order := make(map[string]int)
	var reports []moduleReport

	for _, r := range results {
		idx, exists := order[r.module]
		if !exists {
			idx = len(reports)
			order[r.module] = idx
			reports = append(reports, moduleReport{name: r.module})
		}
		reports[idx].tests++
		reports[idx].duration += r.duration
		if r.passed {
			reports[idx].passed++
		} else {
			reports[idx].failed++
		}
	}
	return reports
}

func writeLog(path string, results []testResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)

	now := time.Now().UTC().Format(time.RFC3339)
	goVer := runtime.Version()
	platform := runtime.GOOS + "/" + runtime.GOARCH

	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw, "  textcat E2E Pipeline Test")
	fmt.Fprintf(bw, "  Timestamp: %s\n", now)
	fmt.Fprintf(bw, "  Go: %s  OS: %s\n", goVer, platform)
	fmt.Fprintf(bw, "  Modules: %d\n", moduleCount)
	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw)

	reports := buildReports(results)
	var totalDuration time.Duration
	for _, rep := range reports {
		totalDuration += rep.duration
	}

	// Per-module sections.
	for _, rep := range reports {
		fmt.Fprintf(bw, "[%s] %d tests | %d passed | %d failed | %s\n",
			rep.name, rep.tests, rep.passed, rep.failed, rep.duration.Round(time.Microsecond))
		for _, r := range results {
			if r.module != rep.name {
				continue
			}
			status := "PASS"
			if !r.passed {
				status = "FAIL"
			}
			fmt.Fprintf(bw, "  %-6s %-45s %s\n", status, r.name, r.duration.Round(time.Microsecond))
		}
		fmt.Fprintln(bw)
	}

	// Failures section.
	var failures []testResult
	for _, r := range results {
		if !r.passed {
			failures = append(failures, r)
		}
	}
	if len(failures) > 0 {
		fmt.Fprintln(bw, "--- FAILURES ---")
		for _, r := range failures {
			fmt.Fprintf(bw, "  FAIL  [%s] %-40s %s\n", r.module, r.name, r.duration.Round(time.Microsecond))
			if r.detail != "" {
				for _, line := range strings.Split(r.detail, "\n") {
					fmt.Fprintf(bw, "        %s\n", line)
				}
			}
		}
		fmt.Fprintln(bw)
	}

	// Summary.
	totalTests := len(results)
	totalPassed := 0
	totalFailed := 0
	for _, r := range results {
		if r.passed {
			totalPassed++
		} else {
			totalFailed++
		}
	}

	fmt.Fprintln(bw, separator)
	fmt.Fprintf(bw, "  SUMMARY: %d tests | %d passed | %d failed | %s\n",
		totalTests, totalPassed, totalFailed, totalDuration.Round(time.Microsecond))
	fmt.Fprintln(bw, separator)

	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printSummary(results []testResult) {
	reports := buildReports(results)
	totalPassed := 0
	totalFailed := 0
	var totalDuration time.Duration

	for _, rep := range reports {
		totalPassed += rep.passed
		totalFailed += rep.failed
		totalDuration += rep.duration

		status := "OK"
		if rep.failed > 0 {
			status = "FAIL"
		}
		log.Printf("  %-12s %d/%d %s", rep.name, rep.passed, rep.tests, status)
	}

	log.Printf("")
	log.Printf("  %d tests | %d passed | %d failed | %s",
		len(results), totalPassed, totalFailed, totalDuration.Round(time.Microsecond))

	for _, r := range results {
		if !r.passed {
			log.Printf("  FAIL [%s] %s: %s", r.module, r.name, r.detail)
		}
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[e2e] ")

	log.Printf("starting E2E pipeline test (%d modules, %d suites)", moduleCount, suiteCount)
	totalStart := time.Now()

	results := runAllSuites()

	log.Printf("completed in %s", time.Since(totalStart).Round(time.Microsecond))
	log.Printf("")

	printSummary(results)

	if err := writeLog(logPath, results); err != nil {
		log.Fatalf("cannot write log: %v", err)
	}
	log.Printf("log written to %s", logPath)

	for _, r := range results {
		if !r.passed {
			os.Exit(1)
		}
	}
}
