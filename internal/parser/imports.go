package parser

import (
	"iter"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/ludo-technologies/archscan/domain"
)

const importKeyword = "import"

var (
	// fromClausePattern captures the quoted module specifier of a from clause
	fromClausePattern = regexp.MustCompile(`from\s+['"]([^'"]+)['"]`)
	fromKeyword       = regexp.MustCompile(`\bfrom\b`)
)

// Imports yields the import statements of content in file order.
// The sequence is restartable: every range over it re-scans content.
func Imports(content string) iter.Seq[domain.ImportRecord] {
	return func(yield func(domain.ImportRecord) bool) {
		lines := strings.Split(content, "\n")

		var (
			pending   []string
			startLine int
		)

		for i, line := range lines {
			trimmed := strings.TrimSpace(line)

			if pending != nil {
				pending = append(pending, trimmed)
				if !fromKeyword.MatchString(trimmed) {
					continue
				}
				raw := strings.Join(pending, " ")
				pending = nil
				if source, ok := matchSource(raw); ok {
					if !yield(domain.ImportRecord{Source: source, Line: startLine, Raw: raw}) {
						return
					}
				}
				continue
			}

			if !isImportCandidate(trimmed) {
				continue
			}

			if source, ok := matchSource(trimmed); ok {
				if !yield(domain.ImportRecord{Source: source, Line: i + 1, Raw: trimmed}) {
					return
				}
				continue
			}

			// A from keyword without a quoted specifier is a malformed statement.
			if fromKeyword.MatchString(trimmed) {
				continue
			}

			pending = []string{trimmed}
			startLine = i + 1
		}
	}
}

// ExtractImports returns all import records of content. The result is never nil.
func ExtractImports(content string) []domain.ImportRecord {
	records := slices.Collect(Imports(content))
	if records == nil {
		return []domain.ImportRecord{}
	}
	return records
}

// isImportCandidate reports whether a trimmed line begins an import statement
func isImportCandidate(trimmed string) bool {
	if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*") {
		return false
	}
	if !strings.HasPrefix(trimmed, importKeyword) {
		return false
	}
	rest := trimmed[len(importKeyword):]
	if rest == "" {
		return true
	}
	// import( and import.meta are expressions, not declarations
	next := rune(rest[0])
	if next == '(' || next == '.' {
		return false
	}
	return !isIdentifierRune(next)
}

func isIdentifierRune(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func matchSource(text string) (string, bool) {
	m := fromClausePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}
