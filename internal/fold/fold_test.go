package fold

import "testing"

func TestLower(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"already lower", "hockey", "hockey"},
		{"all upper", "NASA", "nasa"},
		{"mixed", "GoalTender", "goaltender"},
		{"digits untouched", "B2B", "b2b"},
		{"punctuation untouched", "don't", "don't"},
		{"non-ascii lower", "café", "café"},
		{"non-ascii upper", "CAFÉ", "café"},
		{"cyrillic", "Москва", "москва"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Lower(tt.input); got != tt.want {
				t.Errorf("Lower(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsAlpha(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", false},
		{"ascii word", "puck", true},
		{"upper ascii word", "NHL", true},
		{"digits", "1993", false},
		{"alphanumeric", "mp3", false},
		{"apostrophe", "don't", false},
		{"hyphen", "ice-cold", false},
		{"accented", "café", true},
		{"greek", "λόγος", true},
		{"space", "two words", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsAlpha(tt.input); got != tt.want {
				t.Errorf("IsAlpha(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func BenchmarkLower_ASCII(b *testing.B) {
	s := "The Penguins Beat The Islanders In Overtime"
	for i := 0; i < b.N; i++ {
		Lower(s)
	}
}

func BenchmarkLower_AlreadyLower(b *testing.B) {
	s := "the penguins beat the islanders in overtime"
	for i := 0; i < b.N; i++ {
		Lower(s)
	}
}
