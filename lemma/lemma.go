// Package lemma reduces inflected English words to their dictionary base
// form (lemma).
//
// The package provides two API layers:
//
//   - Structured: LemmaPOS takes a Penn Treebank part-of-speech tag and
//     applies only the detachment rules valid for that word class.
//
//   - Convenience: Lemma guesses the class by probing noun, verb and
//     adjective rules in order, and Lemmas is a batch wrapper.
//
// Lemmatization is dictionary-aware: an irregular-form table is consulted
// first, then suffix detachment rules generate candidates that are checked
// against an embedded lexicon of attested lemmas. Output is always
// lowercase.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations (v1.0):
//
//   - Without a tag, homographs resolve noun-first ("leaves" -> "leaf").
//   - Candidates missing from the lexicon fall back to heuristic suffix
//     stripping, so rare e-final verbs may lose their e ("eloped" -> "elop").
//   - Proper-noun tags (NNP, NNPS) pass through lowercased, unlemmatized.
//   - Clitics from contraction splitting ("n't", "'re", "ca") are handled
//     via the irregular table; uncommon clitics pass through.
//   - English only. Input is expected in NFC Unicode normalization form.
package lemma

import "github.com/textmill/textcat/internal/fold"

const maxWordBytes = 256

// classForTag maps a Penn Treebank tag to a word class and reports whether
// the tag marks an inflected form that detachment rules should touch.
func classForTag(tag string) (class byte, inflected bool) {
	switch tag {
	case "NN":
		return classNoun, false
	case "NNS":
		return classNoun, true
	case "VB", "MD":
		return classVerb, false
	case "VBD", "VBG", "VBN", "VBP", "VBZ":
		return classVerb, true
	case "JJ":
		return classAdj, false
	case "JJR", "JJS":
		return classAdj, true
	case "RB":
		return classAdv, false
	case "RBR", "RBS":
		return classAdv, true
	default:
		return 0, false
	}
}

// LemmaPOS returns the lemma of word given its Penn Treebank tag.
// Tags outside the open classes (and the proper-noun tags NNP, NNPS)
// return the word lowercased. Returns word unchanged if it is empty or
// exceeds maxWordBytes.
func LemmaPOS(word, tag string) string {
	if word == "" || len(word) > maxWordBytes {
		return word
	}
	w := fold.Lower(word)

	class, inflected := classForTag(tag)
	if class == 0 {
		return w
	}
	if irr := irregularLemma(w, class); irr != "" {
		return irr
	}
	if !inflected {
		return w
	}
	// A form that is itself an attested lemma is not stripped further,
	// so "news" (NNS) stays "news".
	if inLexicon(w, class) {
		return w
	}
	if d := detach(w, class); d != "" {
		return d
	}
	return w
}

// Lemma returns the lemma of word without part-of-speech information.
// Irregular forms win first, then the word itself if attested, then
// lexicon-confirmed detachment probing noun, verb and adjective rules in
// order, then heuristic detachment in the same order.
// Returns word unchanged if it is empty or exceeds maxWordBytes.
func Lemma(word string) string {
	if word == "" || len(word) > maxWordBytes {
		return word
	}
	w := fold.Lower(word)

	if irr := irregularLemma(w, 0); irr != "" {
		return irr
	}
	if inLexicon(w, 0) {
		return w
	}

	classes := []byte{classNoun, classVerb, classAdj}
	// Pass 1: accept only lexicon-attested candidates.
	for _, c := range classes {
		if d := detach(w, c); d != "" && inLexicon(d, c) {
			return d
		}
	}
	// Pass 2: accept heuristic candidates.
	for _, c := range classes {
		if d := detach(w, c); d != "" {
			return d
		}
	}
	return w
}

// Lemmas returns the lemma of every word in words.
// Returns nil if the input is nil.
func Lemmas(words []string) []string {
	if words == nil {
		return nil
	}
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = Lemma(w)
	}
	return out
}
