package annotate

import (
	"strings"
	"testing"
)

func TestIsStopword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want bool
	}{
		{"the", true},
		{"and", true},
		{"not", true},
		{"n't", false}, // clitics are not in the list; filtering is on surface forms
		{"i", true},
		{"team", false},
		{"hockey", false},
		{"", false},
		{"The", false}, // callers fold case first
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()
			if got := IsStopword(tt.word); got != tt.want {
				t.Errorf("IsStopword(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestIsPerson(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tok  Token
		want bool
	}{
		{"begin person", Token{IOB: "B-PERSON"}, true},
		{"inside person", Token{IOB: "I-PERSON"}, true},
		{"begin gpe", Token{IOB: "B-GPE"}, false},
		{"outside", Token{IOB: "O"}, false},
		{"empty", Token{}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.tok.IsPerson(); got != tt.want {
				t.Errorf("IsPerson() with IOB=%q = %v, want %v", tt.tok.IOB, got, tt.want)
			}
		})
	}
}

func TestText_Empty(t *testing.T) {
	doc, err := Text("")
	if err != nil {
		t.Fatalf("Text(\"\") returned error: %v", err)
	}
	if len(doc.Sentences) != 0 {
		t.Errorf("Text(\"\") produced %d sentences, want 0", len(doc.Sentences))
	}
	if got := doc.Tokens(); len(got) != 0 {
		t.Errorf("Text(\"\").Tokens() = %v, want none", got)
	}
}

func TestText_TooLarge(t *testing.T) {
	_, err := Text(strings.Repeat("a", maxInputBytes+1))
	if err == nil {
		t.Fatal("Text did not reject oversized input")
	}
}

func TestText_Attributes(t *testing.T) {
	doc, err := Text("The team plays games on Tuesday nights. Tickets cost 12 dollars.")
	if err != nil {
		t.Fatalf("Text returned error: %v", err)
	}

	toks := doc.Tokens()
	if len(toks) == 0 {
		t.Fatal("Text produced no tokens")
	}

	byText := make(map[string]Token)
	for _, tok := range toks {
		byText[tok.Text] = tok
	}

	the, ok := byText["The"]
	if !ok {
		t.Fatal("token \"The\" not found")
	}
	if !the.Stop {
		t.Error("token \"The\" not marked as stopword")
	}
	if !the.Alpha {
		t.Error("token \"The\" not marked alphabetic")
	}

	team, ok := byText["team"]
	if !ok {
		t.Fatal("token \"team\" not found")
	}
	if team.Stop {
		t.Error("token \"team\" wrongly marked as stopword")
	}

	games, ok := byText["games"]
	if !ok {
		t.Fatal("token \"games\" not found")
	}
	if games.Lemma != "game" {
		t.Errorf("lemma of \"games\" = %q, want %q", games.Lemma, "game")
	}

	num, ok := byText["12"]
	if !ok {
		t.Fatal("token \"12\" not found")
	}
	if num.Alpha {
		t.Error("token \"12\" wrongly marked alphabetic")
	}

	for _, tok := range toks {
		if tok.Text == "" {
			t.Error("empty token text")
		}
		if tok.IOB == "" {
			t.Errorf("token %q has empty IOB label", tok.Text)
		}
		if tok.Lemma == "" {
			t.Errorf("token %q has empty lemma", tok.Text)
		}
	}
}

func TestText_SentenceGrouping(t *testing.T) {
	doc, err := Text("The rocket reached orbit. The crew slept. Mission control cheered loudly.")
	if err != nil {
		t.Fatalf("Text returned error: %v", err)
	}
	if len(doc.Sentences) == 0 {
		t.Fatal("Text produced no sentences")
	}

	grouped := 0
	for _, sn := range doc.Sentences {
		grouped += len(sn.Tokens)
	}
	if flat := len(doc.Tokens()); grouped != flat {
		t.Errorf("sentence grouping holds %d tokens, flattened view has %d", grouped, flat)
	}

	// Sentence texts must appear in the document in order.
	cur := 0
	for i, sn := range doc.Sentences {
		idx := strings.Index(doc.Text[cur:], sn.Text)
		if idx < 0 {
			t.Errorf("sentence %d text %q not found after offset %d", i, sn.Text, cur)
			continue
		}
		cur += idx + len(sn.Text)
	}
}

func TestTexts(t *testing.T) {
	texts := []string{
		"The goalie made a save.",
		"",
		"Doctors prescribe drugs.",
	}
	docs, err := Texts(texts)
	if err != nil {
		t.Fatalf("Texts returned error: %v", err)
	}
	if len(docs) != len(texts) {
		t.Fatalf("Texts returned %d docs, want %d", len(docs), len(texts))
	}
	for i, doc := range docs {
		if doc == nil {
			t.Fatalf("doc %d is nil", i)
		}
		if doc.Text != texts[i] {
			t.Errorf("doc %d text = %q, want %q (order not preserved?)", i, doc.Text, texts[i])
		}
	}
	if n := len(docs[1].Tokens()); n != 0 {
		t.Errorf("empty input produced %d tokens", n)
	}
}

func TestTexts_Nil(t *testing.T) {
	docs, err := Texts(nil)
	if err != nil {
		t.Fatalf("Texts(nil) returned error: %v", err)
	}
	if docs != nil {
		t.Errorf("Texts(nil) = %v, want nil", docs)
	}
}

func TestTexts_Oversized(t *testing.T) {
	_, err := Texts([]string{"fine", strings.Repeat("b", maxInputBytes+1)})
	if err == nil {
		t.Fatal("Texts did not propagate oversized input error")
	}
	if !strings.Contains(err.Error(), "document 1") {
		t.Errorf("error %q does not identify the failing document", err)
	}
}
