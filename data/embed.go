// Package data embeds the bundled sample corpus.
//
// The sample is a small newsgroup-style post collection (three categories,
// eight posts each) used by cmd/textcat when no corpus directory is given
// and by the end-to-end pipeline harness. Golden test fixtures live under
// golden/ and are read from disk by package tests, not embedded.
package data

import (
	"embed"
	"io/fs"
)

//go:embed sample
var embedded embed.FS

// Sample returns the embedded sample corpus rooted at the category
// directories, ready for corpus.LoadFS.
func Sample() fs.FS {
	sub, err := fs.Sub(embedded, "sample")
	if err != nil {
		// The directive above guarantees the directory exists.
		panic(err)
	}
	return sub
}
