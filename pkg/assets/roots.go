package assets

import (
	"os"
	"path/filepath"
)

// A Root is a place map sources can be looked up by relative path.
type Root interface {
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
}

// An FSRoot is just an absolute path on the FS.
type FSRoot string

func (f FSRoot) resolve(path string) string {
	return filepath.Join(string(f), path)
}

func (f FSRoot) Exists(path string) bool {
	if _, err := os.Stat(f.resolve(path)); !os.IsNotExist(err) {
		return true
	}
	return false
}

func (f FSRoot) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(f.resolve(path))
}

var _ Root = (*FSRoot)(nil)
