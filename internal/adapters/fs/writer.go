// Package fs writes export output through a billy filesystem, so the
// CLI targets the real disk and tests target memory.
package fs

import (
	"archive/zip"
	"fmt"
	"io"
	"path"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/mainul35/dynamic-site-builder-sub000/internal/core"
)

type Writer struct {
	fs billy.Filesystem
}

func NewWriter(fs billy.Filesystem) *Writer {
	return &Writer{fs: fs}
}

// NewOSWriter writes under root on the local disk.
func NewOSWriter(root string) *Writer {
	return NewWriter(osfs.New(root))
}

// WriteFiles materializes an ordered file set, creating parent
// directories as needed.
func (w *Writer) WriteFiles(files []core.ProjectFile) error {
	for _, file := range files {
		if dir := path.Dir(file.Path); dir != "." {
			if err := w.fs.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("create dir %s: %w", dir, err)
			}
		}
		if err := util.WriteFile(w.fs, file.Path, file.Data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", file.Path, err)
		}
	}
	return nil
}

// WriteArchive writes the file set as a zip archive, preserving slice
// order as entry order.
func WriteArchive(out io.Writer, files []core.ProjectFile) error {
	archive := zip.NewWriter(out)
	for _, file := range files {
		entry, err := archive.Create(file.Path)
		if err != nil {
			return fmt.Errorf("create archive entry %s: %w", file.Path, err)
		}
		if _, err := entry.Write(file.Data); err != nil {
			return fmt.Errorf("write archive entry %s: %w", file.Path, err)
		}
	}
	return archive.Close()
}
