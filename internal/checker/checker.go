// Package checker implements the short/long option style-guide check for a
// single page.
package checker

import (
	"regexp"
	"strings"

	"github.com/tldr-pages/tldr-style-check/internal/corpus"
	"github.com/tldr-pages/tldr-style-check/internal/report"
)

// descriptionOffset is how many lines above an example line its description
// sits; the page format separates the two with a single blank line.
const descriptionOffset = 2

// optionRef matches a combined short/long option token in an example line,
// e.g. {{-f|--force}}, capturing the short option letter.
var optionRef = regexp.MustCompile(`\{\{-([a-z])\|--\w+(?:-\w+)*\}\}`)

// CheckShortLongOption scans a page for a description that repeats a short
// option letter where the style guide wants the long option name referenced.
// It reports at most one violation: the first example line whose
// description, two lines above, carries a bracketed label equal to the
// short option letter. The returned status is "" when the page is clean.
func CheckShortLongOption(lines []string) string {
	for i := descriptionOffset; i < len(lines); i++ {
		m := optionRef.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		if strings.Contains(lines[i-descriptionOffset], "["+m[1]+"]") {
			return report.Diagnostic("needs a manual check")
		}
	}
	return ""
}

// CheckPage checks one page, honoring an optional locale filter: a page
// whose locale differs from a non-empty language is skipped with an empty
// status, without being read.
func CheckPage(path, language string) (string, error) {
	if language != "" && corpus.Locale(path) != language {
		return "", nil
	}

	lines, err := corpus.ReadPage(path)
	if err != nil {
		return "", err
	}
	return CheckShortLongOption(lines), nil
}
