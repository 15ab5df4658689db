package clean

import (
	"strings"
	"testing"
)

func FuzzStrippers(f *testing.F) {
	seeds := []string{
		"",
		"From: a@b\nSubject: x\n\nbody",
		"body\n> quote\nBob wrote:\nmore",
		"body\n--\nsig",
		"\n\n\n",
		"no separators at all",
		"-- \n-- \n-- ",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, text string) {
		if len(text) > maxInputBytes {
			t.Skip()
		}

		h := Headers(text)
		q := Quoting(text)
		ft := Footer(text)

		// Deterministic.
		if Headers(text) != h || Quoting(text) != q || Footer(text) != ft {
			t.Fatal("stripper output changed between calls")
		}

		// Headers returns a literal suffix of its input.
		if !strings.HasSuffix(text, h) {
			t.Errorf("Headers(%q) = %q is not a suffix", text, h)
		}

		// Quoting is idempotent and leaves no quoted lines behind.
		if Quoting(q) != q {
			t.Errorf("Quoting is not idempotent on %q", text)
		}
		for _, line := range strings.Split(q, "\n") {
			if strings.HasPrefix(line, ">") || strings.HasPrefix(line, "|") {
				t.Errorf("Quoting(%q) kept quoted line %q", text, line)
			}
		}

		// Footer never grows the text.
		if len(ft) > len(text) {
			t.Errorf("Footer(%q) grew to %q", text, ft)
		}

		// The composite never panics and is no longer than the input.
		if p := Post(text); len(p) > len(text) {
			t.Errorf("Post(%q) grew to %q", text, p)
		}
	})
}
