package lemma

import (
	"bytes"
	_ "embed"
	"sort"
)

//go:embed lexicon.txt
var lexiconRaw []byte

//go:embed irregular.tsv
var irregularRaw []byte

// minLineLen is the minimum valid line length in lexicon.txt:
// one byte for the word-class tag plus at least one character for the lemma.
const minLineLen = 2

// Word classes used in lexicon.txt and irregular.tsv.
const (
	classNoun = 'n'
	classVerb = 'v'
	classAdj  = 'a'
	classAdv  = 'r'
)

// Parsed lexicon data, populated by init().
var (
	lexLemmas []string // sorted lemmas for binary search
	lexClass  []byte   // parallel slice: lexClass[i] is the class byte for lexLemmas[i]

	// irregular maps class byte -> inflected form -> lemma.
	irregular map[byte]map[string]string
)

func init() {
	// Parse lexiconRaw: each line is <class_byte><lemma>\n.
	// The generator sorts by lemma, so lexLemmas is already sorted.
	// Lookups confirm rule candidates; an unknown stem does not block
	// lemmatization, it only demotes the candidate to heuristic fallback.
	lines := bytes.Split(lexiconRaw, []byte("\n"))
	lexLemmas = make([]string, 0, len(lines))
	lexClass = make([]byte, 0, len(lines))
	for _, line := range lines {
		if len(line) < minLineLen {
			continue
		}
		lexClass = append(lexClass, line[0])
		lexLemmas = append(lexLemmas, string(line[1:]))
	}

	// Parse irregularRaw: each line is <form>\t<lemma>\t<class_byte>\n.
	irregular = map[byte]map[string]string{
		classNoun: make(map[string]string),
		classVerb: make(map[string]string),
		classAdj:  make(map[string]string),
		classAdv:  make(map[string]string),
	}
	for _, line := range bytes.Split(irregularRaw, []byte("\n")) {
		fields := bytes.Split(line, []byte("\t"))
		if len(fields) != 3 || len(fields[0]) == 0 || len(fields[1]) == 0 || len(fields[2]) != 1 {
			continue
		}
		m, ok := irregular[fields[2][0]]
		if !ok {
			continue
		}
		m[string(fields[0])] = string(fields[1])
	}
}

// inLexicon reports whether s is a known lemma of the given class.
// A class of 0 matches any class. Expects lowercase input.
func inLexicon(s string, class byte) bool {
	if s == "" {
		return false
	}
	i := sort.SearchStrings(lexLemmas, s)
	for ; i < len(lexLemmas) && lexLemmas[i] == s; i++ {
		if class == 0 || lexClass[i] == class {
			return true
		}
	}
	return false
}

// irregularLemma returns the lemma for an irregular inflected form, or ""
// if the form is regular. A class of 0 searches all classes in noun, verb,
// adjective, adverb order. Expects lowercase input.
func irregularLemma(form string, class byte) string {
	if class != 0 {
		return irregular[class][form]
	}
	for _, c := range []byte{classNoun, classVerb, classAdj, classAdv} {
		if lem, ok := irregular[c][form]; ok {
			return lem
		}
	}
	return ""
}
