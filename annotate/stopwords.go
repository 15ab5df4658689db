package annotate

import (
	"bytes"
	_ "embed"
)

//go:embed stopwords.txt
var stopwordsRaw []byte

// stopwords holds English function words and other high-frequency forms
// that carry no discriminative value as features (populated in init,
// read-only after).
var stopwords map[string]struct{}

func init() {
	lines := bytes.Split(stopwordsRaw, []byte("\n"))
	stopwords = make(map[string]struct{}, len(lines))
	for _, line := range lines {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		stopwords[string(line)] = struct{}{}
	}
}

// IsStopword reports whether the lowercase form w is in the built-in
// English stopword list.
func IsStopword(w string) bool {
	_, ok := stopwords[w]
	return ok
}
