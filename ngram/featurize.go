// Package ngram turns annotated documents into unigram and bigram feature
// streams for the bag-of-ngrams model.
//
// A token survives filtering when its text is alphabetic and not a
// stopword. Surviving tokens are represented by their lowercase lemma,
// except tokens inside person-named entities, which are all represented
// by PersonMark. Bigrams pair tokens at adjacent positions of the same
// sentence when both survive: a discarded position breaks adjacency, and
// no bigram spans a sentence boundary.
//
// All functions are safe for concurrent use by multiple goroutines.
package ngram

import (
	"github.com/textmill/textcat/annotate"
	"github.com/textmill/textcat/internal/fold"
)

// ProcessToken classifies a token as kept or discarded and returns its
// feature representation. Discarded tokens (non-alphabetic text or
// stopwords) return ok=false. Person-entity tokens that survive the
// filters are collapsed to PersonMark; all other survivors are
// represented by their lowercase lemma, falling back to the lowercase
// surface form when no lemma is set.
func ProcessToken(tok annotate.Token) (f Feature, ok bool) {
	if !tok.Alpha || tok.Stop {
		return "", false
	}
	if tok.IsPerson() {
		return PersonMark, true
	}
	if tok.Lemma == "" {
		return Feature(fold.Lower(tok.Text)), true
	}
	return Feature(fold.Lower(tok.Lemma)), true
}

// Featurize extracts the ordered feature stream of one document: for each
// sentence, its surviving unigrams followed by its bigrams. maxN selects
// the largest n-gram size and is clamped to 1 or 2.
// Returns nil for a nil doc or when nothing survives filtering.
func Featurize(doc *annotate.Doc, maxN int) []Feature {
	if doc == nil {
		return nil
	}

	var out []Feature
	for _, sent := range doc.Sentences {
		processed := make([]Feature, len(sent.Tokens))
		kept := make([]bool, len(sent.Tokens))
		for i, tok := range sent.Tokens {
			processed[i], kept[i] = ProcessToken(tok)
			if kept[i] {
				out = append(out, processed[i])
			}
		}
		if maxN < 2 {
			continue
		}
		for i := 0; i+1 < len(sent.Tokens); i++ {
			if kept[i] && kept[i+1] {
				out = append(out, processed[i]+" "+processed[i+1])
			}
		}
	}
	return out
}

// FeaturizeAll extracts feature streams for a batch of documents,
// preserving order. Returns nil if the input is nil.
func FeaturizeAll(docs []*annotate.Doc, maxN int) [][]Feature {
	if docs == nil {
		return nil
	}
	out := make([][]Feature, len(docs))
	for i, doc := range docs {
		out[i] = Featurize(doc, maxN)
	}
	return out
}
