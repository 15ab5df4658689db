// Package tokenize splits raw English text into typed tokens with byte
// offsets. It is the lightweight scanner used to prepare word2vec
// training text (see cmd/vectrain); documents heading into the classifier
// pipeline are annotated by the annotate package instead, which carries
// tags and entity labels this scanner does not.
//
// The package provides two API layers:
//
//   - Structured: WordTokens returns []Token with byte offsets and type
//     metadata. The invariant s[t.Start:t.End] == t.Text holds for every
//     token, and concatenating all token texts reconstructs the original
//     string.
//
//   - Convenience: Words returns only the Word-type texts.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations (v1.0):
//
//   - Bare URLs without a protocol prefix (www.example.com) are not
//     detected; only http:// and https:// prefixed URLs are.
//   - Number grouping assumes English conventions: comma thousand
//     separators and a decimal point. "1.234" reads as a decimal, not a
//     European thousand grouping.
package tokenize

import "fmt"

// wordsPerTokenEstimate is the estimated ratio of total tokens to word
// tokens, used to pre-allocate the words slice in Words.
const wordsPerTokenEstimate = 2

// TokenType classifies a token.
type TokenType int

const (
	Word        TokenType = iota // Alphabetic word, including inner hyphens and apostrophes
	Number                       // Digits with optional comma grouping and decimal point
	Punctuation                  // Punctuation marks: . , ! ? : ; ( ) etc.
	Space                        // Contiguous whitespace (spaces, tabs, newlines)
	Symbol                       // Everything else: emoji, CJK, mathematical symbols, etc.
	URL                          // http:// or https:// prefixed sequences
	Email                        // user@domain.tld sequences
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Word:
		return "Word"
	case Number:
		return "Number"
	case Punctuation:
		return "Punctuation"
	case Space:
		return "Space"
	case Symbol:
		return "Symbol"
	case URL:
		return "URL"
	case Email:
		return "Email"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token represents a unit of text with its position and classification.
type Token struct {
	Text  string    // The token text
	Start int       // Byte offset in the original string (inclusive)
	End   int       // Byte offset in the original string (exclusive)
	Type  TokenType // Classification of the token
}

// String returns a debug representation, e.g. Word("goalie")[0:6].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// WordTokens splits text into all tokens with metadata. The byte offset
// invariant s[t.Start:t.End] == t.Text holds for every token, and
// concatenating all token texts reconstructs the original string.
func WordTokens(s string) []Token {
	if s == "" {
		return nil
	}
	return wordTokens(s)
}

// Words returns only Word-type token texts from the text. Numbers,
// punctuation, URLs and emails are dropped. For full control, use
// WordTokens and filter by Type.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	tokens := wordTokens(s)
	words := make([]string, 0, len(tokens)/wordsPerTokenEstimate)
	for _, t := range tokens {
		if t.Type == Word {
			words = append(words, t.Text)
		}
	}
	return words
}
