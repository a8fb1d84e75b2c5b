// Package fs provides file system adapters for listing, sizing and removing
// DerivedData directories.
package fs

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// Walker enumerates directory trees without recursion.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// RegularFiles yields the path and info of every regular file below root.
//
// Directories are visited through an explicit worklist so arbitrarily deep
// trees do not grow the goroutine stack. Symlinks are neither followed nor
// yielded. Entries that vanish or cannot be read are skipped.
func (w *Walker) RegularFiles(root string) iter.Seq2[string, fs.FileInfo] {
	return func(yield func(string, fs.FileInfo) bool) {
		pending := []string{root}

		for len(pending) > 0 {
			dir := pending[len(pending)-1]
			pending = pending[:len(pending)-1]

			entries, err := os.ReadDir(dir)
			if err != nil {
				continue
			}

			for _, entry := range entries {
				path := filepath.Join(dir, entry.Name())

				switch mode := entry.Type(); {
				case mode.IsDir():
					pending = append(pending, path)
				case mode.IsRegular():
					info, err := entry.Info()
					if err != nil {
						continue
					}
					if !yield(path, info) {
						return
					}
				}
			}
		}
	}
}
