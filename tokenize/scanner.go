package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// wordTokens splits s into tokens using a rune-by-rune state machine.
// The caller guarantees s is non-empty.
//
// Rule priority (highest first):
//   - URL detection (http:// or https://)
//   - Email detection (backtrack from @)
//   - Number grouping (comma as thousand separator, dot as decimal point)
//   - Hyphen joining (single U+002D between letters/digits)
//   - Apostrophe joining (U+0027, U+2019, U+02BC between letters)
//   - Default unicode classification
func wordTokens(s string) []Token {
	tokens := make([]Token, 0, len(s)/4+1)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		// Rule 1: URL detection.
		if (r == 'h' || r == 'H') && i+7 <= len(s) {
			if end, ok := scanURL(s, i); ok {
				tokens = append(tokens, Token{Text: s[i:end], Start: i, End: end, Type: URL})
				i = end
				continue
			}
		}

		// Rule 2: Email detection — when we see @, backtrack for the
		// local part already scanned.
		if r == '@' {
			if start, end, ok := scanEmail(s, i); ok {
				tokens = trimTokensForEmail(tokens, start)
				tokens = append(tokens, Token{Text: s[start:end], Start: start, End: end, Type: Email})
				i = end
				continue
			}
		}

		// Whitespace: merge contiguous runs into one Space token.
		if unicode.IsSpace(r) {
			start := i
			i += size
			for i < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[i:])
				if !unicode.IsSpace(nr) {
					break
				}
				i += ns
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Space})
			continue
		}

		if unicode.IsDigit(r) {
			tok := scanNumber(s, i)
			tokens = append(tokens, tok)
			i = tok.End
			continue
		}

		if unicode.IsLetter(r) {
			tok := scanWord(s, i)
			tokens = append(tokens, tok)
			i = tok.End
			continue
		}

		// Punctuation: consecutive hyphens ("--") merge into one token so
		// signature separators stay intact.
		if unicode.IsPunct(r) {
			start := i
			i += size
			if r == '-' {
				for i < len(s) && s[i] == '-' {
					i++
				}
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Punctuation})
			continue
		}

		tokens = append(tokens, Token{Text: s[i : i+size], Start: i, End: i + size, Type: Symbol})
		i += size
	}

	return tokens
}

// scanURL checks whether s[pos:] starts with http:// or https:// and
// consumes until whitespace or end of string, dropping one trailing
// sentence punctuation mark.
func scanURL(s string, pos int) (end int, ok bool) {
	rest := s[pos:]
	prefix := ""
	if len(rest) >= 8 && (rest[0] == 'h' || rest[0] == 'H') &&
		(rest[1] == 't' || rest[1] == 'T') &&
		(rest[2] == 't' || rest[2] == 'T') &&
		(rest[3] == 'p' || rest[3] == 'P') {
		if (rest[4] == 's' || rest[4] == 'S') && rest[5] == ':' && rest[6] == '/' && rest[7] == '/' {
			prefix = "https://"
		} else if rest[4] == ':' && rest[5] == '/' && rest[6] == '/' {
			prefix = "http://"
		}
	}
	if prefix == "" || len(rest) <= len(prefix) {
		return 0, false
	}

	end = pos + len(rest)
	for j := pos + len(prefix); j < len(s); {
		r, size := utf8.DecodeRuneInString(s[j:])
		if unicode.IsSpace(r) {
			end = j
			break
		}
		j += size
	}

	if end > pos+len(prefix) {
		last, lastSize := utf8.DecodeLastRuneInString(s[pos:end])
		if last == '.' || last == ',' || last == '!' || last == '?' {
			end -= lastSize
		}
	}
	if end <= pos+len(prefix) {
		return 0, false
	}
	return end, true
}

// scanEmail detects an email around the @ at atPos. It backtracks for the
// local part and scans forward for a domain with a dot and an alphabetic
// TLD of two or more characters.
func scanEmail(s string, atPos int) (start, end int, ok bool) {
	start = atPos
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:start])
		if !isEmailLocalChar(r) {
			break
		}
		start -= size
	}
	if start == atPos {
		return 0, 0, false
	}

	// A local part cannot open with a dot.
	for start < atPos && s[start] == '.' {
		start++
	}
	if start == atPos {
		return 0, 0, false
	}

	end = atPos + 1
	for end < len(s) {
		r, size := utf8.DecodeRuneInString(s[end:])
		if !isEmailDomainChar(r) {
			break
		}
		end += size
	}
	for end > atPos+1 && s[end-1] == '.' {
		end--
	}

	domain := s[atPos+1 : end]
	lastDot := strings.LastIndex(domain, ".")
	if lastDot < 1 {
		return 0, 0, false
	}
	tld := domain[lastDot+1:]
	if len(tld) < 2 || !isAllAlpha(tld) {
		return 0, 0, false
	}
	return start, end, true
}

// scanNumber reads a number token starting at pos. English conventions:
// comma thousand separators in groups of exactly three, then an optional
// decimal point followed by digits.
func scanNumber(s string, pos int) Token {
	i := pos
	for i < len(s) && isDigitByte(s[i]) {
		i++
	}

	// Thousand-separator commas: \d{1,3}(,\d{3})+
	for i < len(s) && s[i] == ',' {
		if i+4 <= len(s) && isDigitByte(s[i+1]) && isDigitByte(s[i+2]) && isDigitByte(s[i+3]) {
			if i+4 >= len(s) || !isDigitByte(s[i+4]) {
				i += 4
				continue
			}
		}
		break
	}

	// Decimal point: must be followed by at least one digit.
	if i < len(s) && s[i] == '.' && i+1 < len(s) && isDigitByte(s[i+1]) {
		i++
		for i < len(s) && isDigitByte(s[i]) {
			i++
		}
	}

	return Token{Text: s[pos:i], Start: pos, End: i, Type: Number}
}

// scanWord reads a word token starting at pos. A word begins with a letter
// and may contain digits ("mp3"), single hyphens between letters/digits
// ("well-known"), and apostrophes between letters ("don't").
func scanWord(s string, pos int) Token {
	i := consumeAlnumRun(s, pos)

	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		if r == '-' {
			next := i + size
			if next < len(s) {
				nr, _ := utf8.DecodeRuneInString(s[next:])
				// "--" is punctuation, never part of a word.
				if nr == '-' {
					break
				}
				if unicode.IsLetter(nr) || unicode.IsDigit(nr) {
					i = consumeAlnumRun(s, next)
					continue
				}
			}
			break
		}

		if r == '\'' || r == '’' || r == 'ʼ' {
			next := i + size
			if next < len(s) {
				nr, _ := utf8.DecodeRuneInString(s[next:])
				pr, _ := utf8.DecodeLastRuneInString(s[pos:i])
				if unicode.IsLetter(nr) && unicode.IsLetter(pr) {
					i = next
					for i < len(s) {
						lr, ls := utf8.DecodeRuneInString(s[i:])
						if !unicode.IsLetter(lr) {
							break
						}
						i += ls
					}
					continue
				}
			}
			break
		}

		break
	}

	return Token{Text: s[pos:i], Start: pos, End: i, Type: Word}
}

// trimTokensForEmail removes tokens that overlap the email local part
// starting at emailStart; the scanner emitted them before reaching the @.
func trimTokensForEmail(tokens []Token, emailStart int) []Token {
	for len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		switch {
		case last.Start >= emailStart:
			tokens = tokens[:len(tokens)-1]
		case last.End > emailStart:
			tokens[len(tokens)-1] = Token{
				Text:  last.Text[:emailStart-last.Start],
				Start: last.Start,
				End:   emailStart,
				Type:  last.Type,
			}
			return tokens
		default:
			return tokens
		}
	}
	return tokens
}

// consumeAlnumRun consumes a contiguous run of letters and digits.
func consumeAlnumRun(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		pos += size
	}
	return pos
}

func isEmailLocalChar(r rune) bool {
	if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
		return true
	}
	return r == '.' || r == '_' || r == '%' || r == '+' || r == '-'
}

func isEmailDomainChar(r rune) bool {
	if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
		return true
	}
	return r == '.' || r == '-'
}

// isAllAlpha reports whether every byte of s is an ASCII letter.
func isAllAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
