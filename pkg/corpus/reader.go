package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// NewReader decodes r as UTF-8 and returns it as a stream of characters.
func NewReader(r io.Reader) io.RuneReader {
	if rr, ok := r.(io.RuneReader); ok {
		return rr
	}
	return bufio.NewReader(r)
}

// Files reads one or more files back to back as a single character stream.
type Files struct {
	*bufio.Reader
	files []*os.File
}

// Open opens every path and returns a stream over their concatenated
// contents. If any file cannot be opened, the ones already opened are closed.
func Open(paths ...string) (*Files, error) {
	if len(paths) == 0 {
		return nil, errors.New("corpus: no files given")
	}

	files := make([]*os.File, 0, len(paths))
	readers := make([]io.Reader, 0, len(paths))
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			for _, opened := range files {
				_ = opened.Close()
			}
			return nil, fmt.Errorf("could not open corpus file: %w", err)
		}
		files = append(files, f)
		readers = append(readers, f)
	}

	return &Files{
		Reader: bufio.NewReader(io.MultiReader(readers...)),
		files:  files,
	}, nil
}

// Close closes every underlying file.
func (f *Files) Close() error {
	var errs []error
	for _, file := range f.files {
		if err := file.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
