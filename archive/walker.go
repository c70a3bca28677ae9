// Package archive reads resource packs distributed as zip files.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"strings"
)

// WalkFunc is called for every regular file inside archive whose name starts
// with requested prefix. Returning an error stops the walk.
type WalkFunc func(name string, file *zip.File) error

// Walk visits all files in the archive under prefix. Archives with entries
// which could escape extraction directory (absolute paths, "..") are rejected
// as a whole.
func Walk(archive, prefix string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || !strings.HasPrefix(name, prefix) {
			continue
		}
		if err := walkFn(name, f); err != nil {
			return err
		}
	}
	return nil
}

// ReadAll loads content of every file under prefix into memory, keyed by
// slash separated name relative to prefix. Pack is expected to be small
// enough, it is read once at program start.
func ReadAll(archive, prefix string) (map[string][]byte, error) {
	out := make(map[string][]byte)
	err := Walk(archive, prefix, func(name string, f *zip.File) error {
		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("unable to open %q: %w", name, err)
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			return fmt.Errorf("unable to read %q: %w", name, err)
		}
		out[strings.TrimPrefix(name, prefix)] = data
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
