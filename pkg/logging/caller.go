package logging

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// Caching avoids a filesystem walk per log line.
var rootCache sync.Map // directory -> project root, "" when none found

// marshalCaller rewrites caller paths so log lines carry short, stable
// locations. Module cache paths keep everything after pkg/mod, files
// inside a Go module become relative to the go.mod directory, and
// anything else keeps its last two path segments.
func marshalCaller(_ uintptr, file string, line int) string {
	return trimCallerPath(file) + ":" + strconv.Itoa(line)
}

func trimCallerPath(file string) string {
	file = filepath.ToSlash(file)

	if idx := strings.Index(file, "/pkg/mod/"); idx >= 0 {
		return file[idx+len("/pkg/mod/"):]
	}

	if root := projectRoot(filepath.Dir(file)); root != "" {
		if rel, err := filepath.Rel(root, file); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}

	return lastTwoSegments(file)
}

// projectRoot walks up from dir looking for go.mod. Compile-time paths
// do not exist on deployed machines, so a failed walk is expected and
// falls through to the short form.
func projectRoot(dir string) string {
	if v, ok := rootCache.Load(dir); ok {
		return v.(string)
	}

	root := ""
	for d := dir; ; {
		if _, err := os.Stat(filepath.Join(d, "go.mod")); err == nil {
			root = d
			break
		}
		parent := filepath.Dir(d)
		if parent == d {
			break
		}
		d = parent
	}

	rootCache.Store(dir, root)
	return root
}

func lastTwoSegments(file string) string {
	idx := strings.LastIndex(file, "/")
	if idx < 0 {
		return file
	}
	if idx2 := strings.LastIndex(file[:idx], "/"); idx2 >= 0 {
		return file[idx2+1:]
	}
	return file
}
