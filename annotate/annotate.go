// Package annotate turns raw English text into sentence-grouped tokens
// carrying the linguistic attributes the feature extractors consume:
// lemma, part-of-speech tag, IOB entity label, and the alphabetic and
// stopword flags.
//
// The package provides two API layers:
//
//   - Structured: Text returns a *Doc whose Sentences hold fully
//     attributed Tokens. Downstream packages (ngram, wordvec) consume
//     Docs directly.
//
//   - Convenience: Texts annotates a batch concurrently, preserving
//     input order, and Doc.Tokens flattens sentence grouping when
//     boundaries are not needed.
//
// Tokenization, tagging, sentence segmentation and entity extraction come
// from jdkato/prose; lemmas come from the lemma package; stopwords from
// the embedded list in stopwords.txt.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations (v1.0):
//
//   - The tagging and extraction models are loaded per Text call, which
//     dominates the cost of annotating short documents. Texts amortizes
//     nothing but spreads the cost over multiple cores.
//   - Entity labels cover PERSON and GPE only, reflecting the underlying
//     model.
//   - English only. Input is expected in NFC Unicode normalization form.
package annotate

import (
	"fmt"
	"strings"
	"sync"

	prose "github.com/jdkato/prose/v2"

	"github.com/textmill/textcat/internal/fold"
	"github.com/textmill/textcat/lemma"
)

// maxInputBytes caps input size to bound annotation latency and memory.
const maxInputBytes = 1 << 20 // 1 MB

// maxBatchWorkers bounds the goroutines used by Texts.
const maxBatchWorkers = 4

// Token is a single token with its linguistic attributes.
type Token struct {
	Text  string `json:"text"`  // surface form as it appears in the text
	Lemma string `json:"lemma"` // lowercase dictionary form
	Tag   string `json:"tag"`   // Penn Treebank part-of-speech tag
	IOB   string `json:"iob"`   // IOB entity label: "O", "B-PERSON", "I-PERSON", "B-GPE", "I-GPE"
	Alpha bool   `json:"alpha"` // Text consists entirely of letters
	Stop  bool   `json:"stop"`  // lowercase Text is in the stopword list
}

// IsPerson reports whether the token lies inside a person entity.
func (t Token) IsPerson() bool {
	return strings.HasSuffix(t.IOB, "-PERSON")
}

// Sentence is one sentence with its tokens.
type Sentence struct {
	Text   string  `json:"text"`
	Tokens []Token `json:"tokens"`
}

// Doc is an annotated document.
type Doc struct {
	Text      string     `json:"text"`
	Sentences []Sentence `json:"sentences"`
}

// Tokens returns all tokens of the document in order, ignoring sentence
// boundaries.
func (d *Doc) Tokens() []Token {
	n := 0
	for _, s := range d.Sentences {
		n += len(s.Tokens)
	}
	out := make([]Token, 0, n)
	for _, s := range d.Sentences {
		out = append(out, s.Tokens...)
	}
	return out
}

// Text annotates a single document.
// Returns an empty Doc for empty input and an error if the input exceeds
// maxInputBytes or the underlying pipeline fails.
func Text(s string) (*Doc, error) {
	if len(s) > maxInputBytes {
		return nil, fmt.Errorf("annotate: input exceeds %d bytes", maxInputBytes)
	}
	if s == "" {
		return &Doc{}, nil
	}

	pdoc, err := prose.NewDocument(s)
	if err != nil {
		return nil, fmt.Errorf("annotate: %w", err)
	}

	doc := &Doc{
		Text:      s,
		Sentences: group(pdoc.Text, pdoc.Sentences(), pdoc.Tokens()),
	}
	return doc, nil
}

// Texts annotates a batch of documents concurrently, preserving order.
// The first annotation failure aborts with the document index wrapped in
// the error.
func Texts(texts []string) ([]*Doc, error) {
	if texts == nil {
		return nil, nil
	}

	docs := make([]*Doc, len(texts))
	errs := make([]error, len(texts))

	semaphore := make(chan struct{}, maxBatchWorkers)
	var wg sync.WaitGroup
	for i, s := range texts {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(i int, s string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			docs[i], errs[i] = Text(s)
		}(i, s)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
	}
	return docs, nil
}

// newToken builds an attributed Token from a prose token.
func newToken(pt prose.Token) Token {
	low := fold.Lower(pt.Text)
	iob := pt.Label
	if iob == "" {
		iob = "O"
	}
	return Token{
		Text:  pt.Text,
		Lemma: lemma.LemmaPOS(pt.Text, pt.Tag),
		Tag:   pt.Tag,
		IOB:   iob,
		Alpha: fold.IsAlpha(pt.Text),
		Stop:  IsStopword(low),
	}
}

// group assigns the flat token stream to sentences by walking both the
// sentence texts and the token texts through the document left to right.
// Tokens and sentences are emitted in document order, so each lookup only
// ever scans forward.
func group(text string, sents []prose.Sentence, toks []prose.Token) []Sentence {
	if len(sents) == 0 {
		if len(toks) == 0 {
			return nil
		}
		// Degenerate segmentation: keep every token in one sentence.
		all := Sentence{Text: text, Tokens: make([]Token, 0, len(toks))}
		for _, pt := range toks {
			all.Tokens = append(all.Tokens, newToken(pt))
		}
		return []Sentence{all}
	}

	out := make([]Sentence, len(sents))
	starts := make([]int, len(sents))
	cur := 0
	for i, sn := range sents {
		out[i] = Sentence{Text: sn.Text}
		if idx := strings.Index(text[cur:], sn.Text); idx >= 0 {
			starts[i] = cur + idx
			cur = starts[i] + len(sn.Text)
		} else {
			// Sentence text not found verbatim; fall back to the current
			// position so later sentences still align.
			starts[i] = cur
		}
	}

	si, tcur := 0, 0
	for _, pt := range toks {
		pos := tcur
		if idx := strings.Index(text[tcur:], pt.Text); idx >= 0 {
			pos = tcur + idx
			tcur = pos + len(pt.Text)
		}
		for si+1 < len(starts) && pos >= starts[si+1] {
			si++
		}
		out[si].Tokens = append(out[si].Tokens, newToken(pt))
	}
	return out
}
