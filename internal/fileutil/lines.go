// Package fileutil provides line-oriented file I/O for the mutation
// pipeline: reading a file into newline-stripped lines, writing lines
// back atomically, and copying bytes for backups.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/FocuswithJustin/linekit/core/errors"
)

// Line terminator styles. The reader detects which one a file uses so
// the writer can re-emit the same style.
const (
	LF   = "\n"
	CRLF = "\r\n"
)

// ReadLines reads the file at path into newline-stripped lines and
// reports the detected line terminator. Detection looks at the first
// newline in the file; files with no newline, empty files, and missing
// files report LF. A missing file yields an empty, non-nil line slice
// so callers can treat "not yet created" like "empty".
func ReadLines(path string) ([]string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, LF, nil
		}
		return nil, "", errors.NewIO("read", path, err)
	}

	if len(data) == 0 {
		return []string{}, LF, nil
	}

	content := string(data)
	ending := LF
	if i := strings.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		ending = CRLF
	}

	// Strip one trailing terminator so "a\nb\n" and "a\nb" both read
	// as two lines.
	content = strings.TrimSuffix(content, "\n")
	content = strings.TrimSuffix(content, "\r")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, ending, nil
}

// WriteLines writes lines to path, each followed by ending, replacing
// any previous content. The content is staged in a temporary file in
// the target directory and renamed into place so a failed write leaves
// the original untouched. An empty line slice produces an empty file.
func WriteLines(path string, lines []string, ending string) error {
	if ending == "" {
		ending = LF
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.NewIO("write", path, err)
	}
	tmpPath := tmp.Name()

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString(ending)
	}

	if _, err := tmp.WriteString(sb.String()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.NewIO("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.NewIO("write", path, err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return errors.NewIO("write", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.NewIO("write", path, err)
	}
	return nil
}
