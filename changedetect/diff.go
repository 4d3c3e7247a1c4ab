package changedetect

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// AddedLines returns only the lines that are new in newContent relative to
// oldContent, concatenated with newlines. Removed and unchanged lines are
// excluded; when a line is modified, its new version is included. Running
// keyword analysis over this output restricts scanning to genuinely new
// content.
func AddedLines(oldContent, newContent string) string {
	if oldContent == newContent {
		return ""
	}

	oldLines := strings.Split(oldContent, "\n")
	newLines := strings.Split(newContent, "\n")

	var added []string
	for _, op := range difflib.NewMatcher(oldLines, newLines).GetOpCodes() {
		// 'i' = insert, 'r' = replace; both contribute new-side lines.
		if op.Tag != 'i' && op.Tag != 'r' {
			continue
		}
		for _, line := range newLines[op.J1:op.J2] {
			if line != "" {
				added = append(added, line)
			}
		}
	}

	return strings.Join(added, "\n")
}
