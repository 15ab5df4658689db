package data_test

import (
	"testing"

	"github.com/textmill/textcat/corpus"
	"github.com/textmill/textcat/data"
)

func TestSample(t *testing.T) {
	c, err := corpus.LoadFS(data.Sample())
	if err != nil {
		t.Fatalf("LoadFS(Sample()): %v", err)
	}
	wantCats := []string{"rec.sport.hockey", "sci.med", "sci.space"}
	if len(c.Categories) != len(wantCats) {
		t.Fatalf("Categories = %v, want %v", c.Categories, wantCats)
	}
	for i, cat := range wantCats {
		if c.Categories[i] != cat {
			t.Errorf("Categories[%d] = %q, want %q", i, c.Categories[i], cat)
		}
	}
	if len(c.Posts) != 24 {
		t.Errorf("len(Posts) = %d, want 24", len(c.Posts))
	}
	perCat := make([]int, len(c.Categories))
	for _, p := range c.Posts {
		perCat[p.Target]++
		if p.Text == "" {
			t.Errorf("post %s is empty", p.ID)
		}
	}
	for i, n := range perCat {
		if n != 8 {
			t.Errorf("category %s has %d posts, want 8", c.Categories[i], n)
		}
	}
}
