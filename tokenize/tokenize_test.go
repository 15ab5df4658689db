package tokenize

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

// verifyInvariants checks two invariants that must hold for every
// tokenization:
//   - Byte offset invariant: input[t.Start:t.End] == t.Text for every token.
//   - Reconstruction invariant: concatenating all token texts reproduces
//     the input.
func verifyInvariants(t *testing.T, input string, tokens []Token) {
	t.Helper()
	for i, tok := range tokens {
		if got := input[tok.Start:tok.End]; got != tok.Text {
			t.Errorf("token %d offset invariant broken: input[%d:%d]=%q, Text=%q",
				i, tok.Start, tok.End, got, tok.Text)
		}
	}
	var buf strings.Builder
	for _, tok := range tokens {
		buf.WriteString(tok.Text)
	}
	if buf.String() != input {
		t.Errorf("reconstruction invariant broken:\ngot:  %q\nwant: %q", buf.String(), input)
	}
}

func TestWordTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		// -- Basic word tokens --

		{"simple word", "hello", []Token{
			{Text: "hello", Start: 0, End: 5, Type: Word},
		}},
		{"two words", "foo bar", []Token{
			{Text: "foo", Start: 0, End: 3, Type: Word},
			{Text: " ", Start: 3, End: 4, Type: Space},
			{Text: "bar", Start: 4, End: 7, Type: Word},
		}},
		{"letters then digits", "mp3", []Token{
			{Text: "mp3", Start: 0, End: 3, Type: Word},
		}},

		// -- Apostrophes and hyphens --

		{"ascii apostrophe", "don't", []Token{
			{Text: "don't", Start: 0, End: 5, Type: Word},
		}},
		{"typographic apostrophe", "it’s", []Token{
			{Text: "it’s", Start: 0, End: 6, Type: Word},
		}},
		{"possessive", "Tuesday's", []Token{
			{Text: "Tuesday's", Start: 0, End: 9, Type: Word},
		}},
		{"hyphenated word", "well-known", []Token{
			{Text: "well-known", Start: 0, End: 10, Type: Word},
		}},
		{"double hyphen splits", "x--y", []Token{
			{Text: "x", Start: 0, End: 1, Type: Word},
			{Text: "--", Start: 1, End: 3, Type: Punctuation},
			{Text: "y", Start: 3, End: 4, Type: Word},
		}},
		{"trailing apostrophe stays out", "cats'", []Token{
			{Text: "cats", Start: 0, End: 4, Type: Word},
			{Text: "'", Start: 4, End: 5, Type: Punctuation},
		}},

		// -- Number tokens --

		{"plain digits", "42", []Token{
			{Text: "42", Start: 0, End: 2, Type: Number},
		}},
		{"decimal point", "3.14", []Token{
			{Text: "3.14", Start: 0, End: 4, Type: Number},
		}},
		{"thousand separators", "1,234,567", []Token{
			{Text: "1,234,567", Start: 0, End: 9, Type: Number},
		}},
		{"grouped with decimal", "1,234.56", []Token{
			{Text: "1,234.56", Start: 0, End: 8, Type: Number},
		}},
		{"invalid grouping splits", "12,34", []Token{
			{Text: "12", Start: 0, End: 2, Type: Number},
			{Text: ",", Start: 2, End: 3, Type: Punctuation},
			{Text: "34", Start: 3, End: 5, Type: Number},
		}},
		{"trailing dot not decimal", "3.", []Token{
			{Text: "3", Start: 0, End: 1, Type: Number},
			{Text: ".", Start: 1, End: 2, Type: Punctuation},
		}},
		{"sign is separate token", "-5", []Token{
			{Text: "-", Start: 0, End: 1, Type: Punctuation},
			{Text: "5", Start: 1, End: 2, Type: Number},
		}},
		{"digits then letters split", "3rd", []Token{
			{Text: "3", Start: 0, End: 1, Type: Number},
			{Text: "rd", Start: 1, End: 3, Type: Word},
		}},

		// -- URLs --

		{"https url", "see https://example.com/page.", []Token{
			{Text: "see", Start: 0, End: 3, Type: Word},
			{Text: " ", Start: 3, End: 4, Type: Space},
			{Text: "https://example.com/page", Start: 4, End: 28, Type: URL},
			{Text: ".", Start: 28, End: 29, Type: Punctuation},
		}},
		{"http url", "http://x", []Token{
			{Text: "http://x", Start: 0, End: 8, Type: URL},
		}},

		// -- Emails --

		{"plain email", "mail bob@example.com now", []Token{
			{Text: "mail", Start: 0, End: 4, Type: Word},
			{Text: " ", Start: 4, End: 5, Type: Space},
			{Text: "bob@example.com", Start: 5, End: 20, Type: Email},
			{Text: " ", Start: 20, End: 21, Type: Space},
			{Text: "now", Start: 21, End: 24, Type: Word},
		}},
		{"leading dot excluded from local part", ".user@domain.com", []Token{
			{Text: ".", Start: 0, End: 1, Type: Punctuation},
			{Text: "user@domain.com", Start: 1, End: 16, Type: Email},
		}},
		{"at sign without domain dot", "a@b", []Token{
			{Text: "a", Start: 0, End: 1, Type: Word},
			{Text: "@", Start: 1, End: 2, Type: Punctuation},
			{Text: "b", Start: 2, End: 3, Type: Word},
		}},

		// -- Whitespace and symbols --

		{"whitespace merged", "a \t\n b", []Token{
			{Text: "a", Start: 0, End: 1, Type: Word},
			{Text: " \t\n ", Start: 1, End: 5, Type: Space},
			{Text: "b", Start: 5, End: 6, Type: Word},
		}},
		{"emoji is symbol", "\U0001f389", []Token{
			{Text: "\U0001f389", Start: 0, End: 4, Type: Symbol},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WordTokens(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("WordTokens(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
			verifyInvariants(t, tt.input, got)
		})
	}
}

func TestWordTokens_Empty(t *testing.T) {
	if got := WordTokens(""); got != nil {
		t.Errorf("WordTokens(\"\") = %v, want nil", got)
	}
}

func TestWords(t *testing.T) {
	input := "The goalie's save, 3-1 win: see https://x.example/news or mail pr@example.com."
	want := []string{"The", "goalie's", "save", "win", "see", "or", "mail"}
	got := Words(input)
	if len(got) != len(want) {
		t.Fatalf("Words(%q) = %v, want %v", input, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Words()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if Words("") != nil {
		t.Error(`Words("") != nil`)
	}
}

func TestTokenTypeString(t *testing.T) {
	tests := []struct {
		typ  TokenType
		want string
	}{
		{Word, "Word"},
		{Number, "Number"},
		{Punctuation, "Punctuation"},
		{Space, "Space"},
		{Symbol, "Symbol"},
		{URL, "URL"},
		{Email, "Email"},
		{TokenType(99), "TokenType(99)"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("TokenType(%d).String() = %q, want %q", int(tt.typ), got, tt.want)
		}
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Text: "goalie", Start: 0, End: 6, Type: Word}
	if got, want := tok.String(), `Word("goalie")[0:6]`; got != want {
		t.Errorf("Token.String() = %q, want %q", got, want)
	}
}

func TestConcurrentSafety(t *testing.T) {
	const input = "The rocket reached orbit; mail ops@example.com or see https://example.com/log."
	want := WordTokens(input)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := WordTokens(input)
			if len(got) != len(want) {
				t.Errorf("concurrent WordTokens returned %d tokens, want %d", len(got), len(want))
				return
			}
			for i := range got {
				if got[i] != want[i] {
					t.Errorf("concurrent token %d = %v, want %v", i, got[i], want[i])
				}
			}
		}()
	}
	wg.Wait()
}

func FuzzWordTokens(f *testing.F) {
	seeds := []string{
		"Hello, world!",
		"user@mail.example",
		"https://example.com/a?b=c",
		"1,234.56",
		"",
		"\xff\xfe",
		"h h h h h h h h",
		".user@domain.com",
		"don't--stop",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		tokens := WordTokens(s)
		verifyInvariants(t, s, tokens)
	})
}

func ExampleWordTokens() {
	for _, tok := range WordTokens("Go 1,500!") {
		fmt.Println(tok)
	}
	// Output:
	// Word("Go")[0:2]
	// Space(" ")[2:3]
	// Number("1,500")[3:8]
	// Punctuation("!")[8:9]
}

func ExampleWords() {
	fmt.Println(Words("The team won 3-1, see https://example.com/recap."))
	// Output: [The team won see]
}

func BenchmarkWordTokens(b *testing.B) {
	input := strings.Repeat("The goalie made 30 saves; mail pr@example.com or visit https://example.com. ", 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		WordTokens(input)
	}
}

func BenchmarkWords(b *testing.B) {
	input := strings.Repeat("The goalie made 30 saves in a well-known 3-1 win. ", 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Words(input)
	}
}
