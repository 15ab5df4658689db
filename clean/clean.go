// Package clean strips the non-content scaffolding from newsgroup-style
// posts: the leading header block, quoted lines with their attributions,
// and the trailing signature footer.
//
// Three strippers are provided (Headers, Quoting, Footer) plus the Post
// composite that applies all three in the 20-newsgroups order. Each
// stripper is independent, so callers can keep quotes while dropping
// headers, and so on.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations (v1.0):
//
//   - Headers treats everything before the first blank line as the header
//     block; a post without a blank line cleans to the empty string.
//   - Quoting matches attribution markers anywhere in a line, so a body
//     line containing "wrote:" verbatim is dropped with the quotes.
//   - Footer cuts at the last blank or dashes-only line; a multi-paragraph
//     post without a signature loses its final paragraph.
package clean

import (
	"regexp"
	"strings"
)

// maxInputBytes is the maximum input size for the strippers.
// Inputs exceeding this are returned unchanged.
const maxInputBytes = 1 << 20 // 1 MiB

// quotePattern marks quoted lines and the attribution lines that
// introduce them.
var quotePattern = regexp.MustCompile(`writes in|writes:|wrote:|says:|said:|^In article|^Quoted from|^\||^>`)

// Headers drops everything up to and including the first blank line.
// A post without a blank line is all header block and cleans to "".
func Headers(text string) string {
	if len(text) > maxInputBytes {
		return text
	}
	_, after, _ := strings.Cut(text, "\n\n")
	return after
}

// Quoting drops every line that carries a quote marker or an attribution.
func Quoting(text string) string {
	if text == "" || len(text) > maxInputBytes {
		return text
	}
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if !quotePattern.MatchString(line) {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// Footer cuts the trailing signature: everything from the last line that
// is blank or consists only of hyphens. Text without such a line above
// position zero is returned unchanged.
func Footer(text string) string {
	if text == "" || len(text) > maxInputBytes {
		return text
	}
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i := len(lines) - 1; i > 0; i-- {
		if strings.Trim(strings.TrimSpace(lines[i]), "-") == "" {
			return strings.Join(lines[:i], "\n")
		}
	}
	return text
}

// Post applies the full cleaning pipeline in the 20-newsgroups order:
// Headers, then Footer, then Quoting.
func Post(text string) string {
	return Quoting(Footer(Headers(text)))
}
