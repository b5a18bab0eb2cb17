package batch

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// renderContent writes the full resulting content, one line per output
// line, each newline-terminated. CRLF content is previewed with plain
// LF; the terminator style only matters when writing back to disk.
func renderContent(w io.Writer, lines []string, _ string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

// renderDiff writes a line-level diff between the original and the
// mutated content, in the familiar " "/"-"/"+" prefix form.
func renderDiff(w io.Writer, before, after []string) {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(joinLines(before), joinLines(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			prefix = " "
		}
		text := strings.TrimSuffix(d.Text, "\n")
		if text == "" && d.Text == "" {
			continue
		}
		for _, line := range strings.Split(text, "\n") {
			fmt.Fprintf(w, "%s%s\n", prefix, line)
		}
	}
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
