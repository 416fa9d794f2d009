package util

import (
	"bufio"
	"os"

	"github.com/pkg/errors"
)

// FileExist reports whether filePath can be found. Errors other than
// not-exist count as existing so that the caller sees them on open.
func FileExist(filePath string) bool {
	_, err := os.Stat(filePath)
	return !os.IsNotExist(err)
}

// WithOpenFile runs fun on the opened file and closes it afterwards.
func WithOpenFile(name string, flag int, perm os.FileMode, fun func(*os.File) error) error {
	f, err := os.OpenFile(name, flag, perm)
	if err != nil {
		return errors.Wrapf(err, "open %s failed", name)
	}
	defer f.Close()

	return fun(f)
}

// WithReadFile runs fun on a buffered reader of the file.
func WithReadFile(name string, fun func(*bufio.Reader) error) error {
	return WithOpenFile(name, os.O_RDONLY, 0, func(f *os.File) error {
		return fun(bufio.NewReader(f))
	})
}
