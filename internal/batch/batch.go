// Package batch drives one mutation across a list of files. Files are
// processed strictly in the order given; each file is read, optionally
// backed up, run through the engine, and then written back or rendered
// as a preview. A failure on one file is reported and the batch moves
// on to the next; the aggregate result records which files failed.
package batch

import (
	stderrors "errors"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/linekit/core/errors"
	"github.com/FocuswithJustin/linekit/core/lineedit"
	"github.com/FocuswithJustin/linekit/internal/backup"
	"github.com/FocuswithJustin/linekit/internal/fileutil"
	"github.com/FocuswithJustin/linekit/internal/logging"
)

// Options controls how the batch handles each file.
type Options struct {
	Backup   bool // Copy the original to <path>.bak before mutating
	Compress bool // With Backup, write <path>.bak.xz instead
	Verify   bool // With Backup, re-read the backup and check its hashes
	DryRun   bool // Render the result to Stdout, never touch the file
	Diff     bool // With DryRun, render a line diff instead of full content

	// Stdout receives dry-run output. Defaults to os.Stdout.
	Stdout io.Writer
}

// FileResult is the outcome for a single file.
type FileResult struct {
	Path       string
	BackupPath string // Set when a backup was written
	Err        error  // Nil on success
}

// Result aggregates a whole invocation.
type Result struct {
	RunID string
	Files []FileResult
}

// Failed reports whether any file in the batch failed.
func (r *Result) Failed() bool {
	for _, f := range r.Files {
		if f.Err != nil {
			return true
		}
	}
	return false
}

// Run applies op to every path in order. It never stops early: each
// file succeeds or fails on its own, and the caller decides the exit
// status from Result.Failed.
func Run(paths []string, op lineedit.Operation, opts Options) *Result {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	res := &Result{RunID: uuid.New().String()}
	for _, path := range paths {
		fr := FileResult{Path: path}
		fr.BackupPath, fr.Err = processFile(path, op, opts, res.RunID)
		if fr.Err != nil {
			logging.FileFailed(res.RunID, path, fr.Err)
		} else {
			logging.FileProcessed(res.RunID, path, opts.DryRun)
		}
		res.Files = append(res.Files, fr)
	}
	return res
}

// processFile runs the full per-file sequence: validate, read, back
// up, mutate, then write or preview. The new content is computed in
// full before anything is written, so an engine failure leaves the
// file untouched.
func processFile(path string, op lineedit.Operation, opts Options, runID string) (string, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return "", errors.NewIO("open", path, stderrors.New("is a directory, not a file"))
	}

	lines, ending, err := fileutil.ReadLines(path)
	if err != nil {
		return "", err
	}

	var backupPath string
	if opts.Backup {
		info, err := backup.Create(path, opts.Compress)
		if err != nil {
			return "", err
		}
		if info != nil {
			backupPath = info.Path
			logging.BackupWritten(runID, path, info.Path, info.Compressed,
				"sha256", info.SHA256, "blake3", info.BLAKE3)
			if opts.Verify {
				if err := backup.Verify(info); err != nil {
					return backupPath, err
				}
			}
		}
	}

	out, err := lineedit.Apply(lineedit.Buffer(lines), op)
	if err != nil {
		return backupPath, annotate(err, path)
	}

	if opts.DryRun {
		if opts.Diff {
			renderDiff(opts.Stdout, lines, out)
		} else {
			renderContent(opts.Stdout, out, ending)
		}
		return backupPath, nil
	}

	if err := fileutil.WriteLines(path, out, ending); err != nil {
		return backupPath, err
	}
	return backupPath, nil
}

// annotate attaches the file path to engine validation errors so the
// report names both the file and the offending line or range.
func annotate(err error, path string) error {
	var lineErr *errors.LineNumberError
	if stderrors.As(err, &lineErr) {
		lineErr.Path = path
		return lineErr
	}
	var rangeErr *errors.RangeError
	if stderrors.As(err, &rangeErr) {
		rangeErr.Path = path
		return rangeErr
	}
	return errors.Wrapf(err, "%s", path)
}
