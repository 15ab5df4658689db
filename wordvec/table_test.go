package wordvec

import (
	"fmt"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLen int
		wantDim int
		wantErr bool
	}{
		// -- plain text format --
		{"headerless", "cat 1 2 3\ndog 4 5 6\n", 2, 3, false},
		{"no trailing newline", "cat 1 2 3\ndog 4 5 6", 2, 3, false},
		{"single word", "cat 0.5 -0.5\n", 1, 2, false},

		// -- header handling --
		{"count dim header", "2 3\ncat 1 2 3\ndog 4 5 6\n", 2, 3, false},
		{"header only", "5 300\n", 0, 0, true},

		// -- malformed input --
		{"empty input", "", 0, 0, true},
		{"dimension mismatch", "cat 1 2 3\ndog 4 5\n", 0, 0, true},
		{"non-numeric component", "cat 1 two 3\n", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab, err := Load(strings.NewReader(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Load(%q) error = nil, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load(%q) unexpected error: %v", tt.input, err)
			}
			if got := tab.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}
			if got := tab.Dim(); got != tt.wantDim {
				t.Errorf("Dim() = %d, want %d", got, tt.wantDim)
			}
		})
	}
}

func TestLoad_DuplicateKeepsFirst(t *testing.T) {
	tab, err := Load(strings.NewReader("dup 1 2\ndup 9 9\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tab.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tab.Len())
	}
	v, ok := tab.Vector("dup")
	if !ok {
		t.Fatal(`Vector("dup") not found`)
	}
	if v[0] != 1 || v[1] != 2 {
		t.Errorf(`Vector("dup") = %v, want [1 2]`, v)
	}
}

func TestLoad_HeaderNotConfusedWithVector(t *testing.T) {
	// A first line whose second field is not an integer is a vector,
	// not a header.
	tab, err := Load(strings.NewReader("cat 1.5\ndog 2.5\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tab.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tab.Len())
	}
	if _, ok := tab.Vector("cat"); !ok {
		t.Error(`first line "cat 1.5" was dropped as a header`)
	}
}

func TestVector(t *testing.T) {
	tab, err := Load(strings.NewReader("Apple 1 1\napple 2 2\nbanana 3 3\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		name   string
		word   string
		want0  float64
		wantOK bool
	}{
		{"exact lowercase", "banana", 3, true},
		{"exact beats case fold", "Apple", 1, true},
		{"lowercase fallback", "BANANA", 3, true},
		{"fallback hits lowercase entry", "APPLE", 2, true},
		{"miss", "cherry", 0, false},
		{"empty word", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := tab.Vector(tt.word)
			if ok != tt.wantOK {
				t.Fatalf("Vector(%q) ok = %v, want %v", tt.word, ok, tt.wantOK)
			}
			if ok && v[0] != tt.want0 {
				t.Errorf("Vector(%q)[0] = %v, want %v", tt.word, v[0], tt.want0)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	tab, err := LoadFile("testdata/mini.vec")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got, want := tab.Len(), 6; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	if got, want := tab.Dim(), 4; got != want {
		t.Errorf("Dim() = %d, want %d", got, want)
	}
	v, ok := tab.Vector("puck")
	if !ok {
		t.Fatal(`Vector("puck") not found`)
	}
	want := []float64{0.18, -0.39, 0.02, 0.6}
	for i := range want {
		if v[i] != want[i] {
			t.Errorf(`Vector("puck")[%d] = %v, want %v`, i, v[i], want[i])
		}
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile("testdata/no-such-file.vec"); err == nil {
		t.Fatal("LoadFile on a missing path: error = nil, want error")
	}
}

func ExampleLoad() {
	tab, err := Load(strings.NewReader("sun 1.0 0.0\nmoon 0.0 1.0\n"))
	if err != nil {
		panic(err)
	}
	v, _ := tab.Vector("Sun")
	fmt.Println(tab.Len(), tab.Dim(), v)
	// Output: 2 2 [1 0]
}

func BenchmarkLoad(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 1000; i++ {
		fmt.Fprintf(&sb, "word%d 0.1 0.2 0.3 0.4 0.5 0.6 0.7 0.8\n", i)
	}
	input := sb.String()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Load(strings.NewReader(input)); err != nil {
			b.Fatal(err)
		}
	}
}
