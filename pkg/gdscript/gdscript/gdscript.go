// Package gdscript provides the path-based entry points for the
// GDScript parser: parse a single script, or every script under a
// directory, reporting per-file status.
//
// The only contact with the file system goes through the
// FileEnumerator collaborator, so callers can substitute their own
// directory listing (or exclusion rules) without touching the parser.
package gdscript

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gdtools/gdsc/pkg/gdscript/ast"
	perrors "github.com/gdtools/gdsc/pkg/gdscript/errors"
	"github.com/gdtools/gdsc/pkg/gdscript/parser"
)

// DefaultExtension is the script extension directory mode looks for.
const DefaultExtension = ".gd"

// FileEnumerator lists the files the directory mode will parse.
type FileEnumerator interface {
	// FindFilesInDir returns every file under root whose name ends
	// with ext. The order of the result fixes the order of the
	// per-file reports, so implementations should return a stable
	// ordering.
	FindFilesInDir(root, ext string) ([]string, error)
}

// OSFS enumerates script files on the local disk, sorted by path.
type OSFS struct{}

func (OSFS) FindFilesInDir(root, ext string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// Excluding wraps a FileEnumerator, dropping any file with one of the
// given path segments (e.g. "addons", ".import") anywhere in it.
type Excluding struct {
	FS       FileEnumerator
	Segments []string
}

func (e Excluding) FindFilesInDir(root, ext string) ([]string, error) {
	files, err := e.FS.FindFilesInDir(root, ext)
	if err != nil {
		return nil, err
	}
	kept := files[:0]
	for _, f := range files {
		if !e.excluded(f) {
			kept = append(kept, f)
		}
	}
	return kept, nil
}

func (e Excluding) excluded(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		for _, seg := range e.Segments {
			if part == seg {
				return true
			}
		}
	}
	return false
}

// Report is the outcome of parsing one file in directory mode.
type Report struct {
	Path string
	Err  error
}

// Status renders OK, or ERROR with the failure detail on one line.
func (r Report) Status() string {
	if r.Err == nil {
		return "OK"
	}
	if perr, ok := r.Err.(*perrors.ParseError); ok {
		return "ERROR: " + perr.Compact()
	}
	return "ERROR: " + r.Err.Error()
}

// ParsePath dispatches on the kind of path: directory mode for a
// directory with the given extension, single-file mode for a file. A
// path that is neither is a MissingPath error.
func ParsePath(fsys FileEnumerator, path, ext string, out io.Writer) *perrors.ScriptError {
	info, err := os.Stat(path)
	if err != nil {
		return perrors.MissingPath(path)
	}
	if info.IsDir() {
		_, derr := ParseDir(fsys, path, ext, out)
		return derr
	}
	return ParseScript(path, out)
}

// ParseDir parses every file with the given extension under root,
// writing one "path:STATUS" line per file. A failure in one file
// never aborts the batch; the reports are also returned, in
// enumeration order, for callers that want them.
func ParseDir(fsys FileEnumerator, root, ext string, out io.Writer) ([]Report, *perrors.ScriptError) {
	files, err := fsys.FindFilesInDir(root, ext)
	if err != nil {
		return nil, perrors.Internal(fmt.Sprintf("enumerating %s: %v", root, err))
	}
	reports := make([]Report, 0, len(files))
	for _, path := range files {
		r := Report{Path: path}
		if data, rerr := os.ReadFile(path); rerr != nil {
			r.Err = rerr
		} else if _, perr := parser.ParseFile(string(data)); perr != nil {
			r.Err = perr
		}
		reports = append(reports, r)
		fmt.Fprintf(out, "%s:%s\n", r.Path, r.Status())
	}
	return reports, nil
}

// ParseScript parses a single file and writes the debug rendering of
// its tree on success. On failure the error propagates to the caller.
func ParseScript(path string, out io.Writer) *perrors.ScriptError {
	data, err := os.ReadFile(path)
	if err != nil {
		return perrors.Internal(fmt.Sprintf("reading %s: %v", path, err))
	}
	block, perr := parser.ParseFile(string(data))
	if perr != nil {
		return perrors.ParseFailed(path, perr)
	}
	fmt.Fprint(out, ast.Dump(block))
	return nil
}
