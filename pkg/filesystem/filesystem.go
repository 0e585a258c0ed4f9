package filesystem

import (
	"io/fs"
)

// FS is the filesystem surface the kit performs file I/O through.
// Production code uses the OS implementation; tests swap in an afero
// in-memory filesystem so the config lifecycle runs hermetically.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
}
