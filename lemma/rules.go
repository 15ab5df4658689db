package lemma

import "strings"

// detachRule describes one inflectional suffix detachment: strip suffix,
// append repl, and the resulting candidate is checked against the lexicon.
// A rule marked safe may also be applied without lexicon confirmation as a
// heuristic fallback when no candidate is attested.
type detachRule struct {
	suffix string
	repl   string
	safe   bool
}

// nounRules detaches plural suffixes. Order matters: longer, more specific
// suffixes come before the bare -s rule so "classes" resolves via -ses
// before -s produces "classe".
var nounRules = []detachRule{
	{suffix: "ches", repl: "ch", safe: true},
	{suffix: "shes", repl: "sh", safe: true},
	{suffix: "sses", repl: "ss", safe: true},
	{suffix: "xes", repl: "x", safe: true},
	{suffix: "zes", repl: "z", safe: true},
	{suffix: "ses", repl: "s", safe: false},
	{suffix: "ves", repl: "f", safe: false},
	{suffix: "ves", repl: "fe", safe: false},
	{suffix: "ies", repl: "y", safe: true},
	{suffix: "men", repl: "man", safe: false},
	{suffix: "s", repl: "", safe: true},
}

// verbRules detaches agreement, past and progressive suffixes. The
// e-restoring variant of each pair is tried first so "hoping" prefers
// "hope" over "hop" whenever both are attested. Unattested -es forms also
// fall back e-restoring, because sibilant-stem verbs ("watches") already
// resolve through the longer rules above the plain -es pair.
var verbRules = []detachRule{
	{suffix: "ies", repl: "y", safe: true},
	{suffix: "ches", repl: "ch", safe: true},
	{suffix: "shes", repl: "sh", safe: true},
	{suffix: "sses", repl: "ss", safe: true},
	{suffix: "xes", repl: "x", safe: true},
	{suffix: "zes", repl: "z", safe: true},
	{suffix: "es", repl: "e", safe: true},
	{suffix: "es", repl: "", safe: false},
	{suffix: "ied", repl: "y", safe: true},
	{suffix: "ed", repl: "e", safe: false},
	{suffix: "ed", repl: "", safe: true},
	{suffix: "ing", repl: "e", safe: false},
	{suffix: "ing", repl: "", safe: true},
	{suffix: "s", repl: "", safe: true},
}

// adjRules detaches comparative and superlative suffixes.
var adjRules = []detachRule{
	{suffix: "iest", repl: "y", safe: true},
	{suffix: "ier", repl: "y", safe: true},
	{suffix: "est", repl: "e", safe: false},
	{suffix: "est", repl: "", safe: true},
	{suffix: "er", repl: "e", safe: false},
	{suffix: "er", repl: "", safe: true},
}

var rulesByClass = map[byte][]detachRule{
	classNoun: nounRules,
	classVerb: verbRules,
	classAdj:  adjRules,
	classAdv:  adjRules, // -er/-est also cover adverbs (faster, hardest)
}

const (
	// minLexStem is the minimum candidate length for a lexicon probe.
	minLexStem = 2
	// minHeuristicStem is the minimum candidate length for an unattested
	// fallback. Stricter than minLexStem so bare -s stripping cannot
	// reduce short words like "gas" to near-empty stems.
	minHeuristicStem = 3
)

// detach applies the detachment rules for class to the lowercase word w.
// It returns the first candidate attested in the lexicon; failing that,
// the first safe heuristic candidate; failing that, "".
func detach(w string, class byte) string {
	rules := rulesByClass[class]
	fallback := ""
	for _, r := range rules {
		if !strings.HasSuffix(w, r.suffix) {
			continue
		}
		stem := w[:len(w)-len(r.suffix)]
		cand := stem + r.repl
		if len(cand) >= minLexStem && inLexicon(cand, class) {
			return cand
		}
		// Undouble a final consonant before probing again:
		// stopped -> stopp -> stop, running -> runn -> run.
		if r.repl == "" && len(stem) >= 2 && stem[len(stem)-1] == stem[len(stem)-2] && !isVowel(stem[len(stem)-1]) {
			short := stem[:len(stem)-1]
			if len(short) >= minLexStem && inLexicon(short, class) {
				return short
			}
		}
		if fallback == "" && r.safe && len(cand) >= minHeuristicStem && !unsafeBareS(w, r) {
			fallback = cand
		}
	}
	return fallback
}

// unsafeBareS reports whether applying the bare -s rule to w would strip a
// non-inflectional ending such as "basis", "virus" or "glass".
func unsafeBareS(w string, r detachRule) bool {
	if r.suffix != "s" || r.repl != "" {
		return false
	}
	return strings.HasSuffix(w, "ss") ||
		strings.HasSuffix(w, "us") ||
		strings.HasSuffix(w, "is") ||
		strings.HasSuffix(w, "'s")
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
