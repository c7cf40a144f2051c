package analyzer

import (
	"path"
	"strings"

	"github.com/ludo-technologies/archscan/domain"
)

// probeSuffixes are tried in order against the lookup table
var probeSuffixes = []string{"", ".ts", ".tsx", "/index.ts", "/index.tsx"}

// LookupTable maps a normalized candidate path to the file path it was collected as
type LookupTable map[string]string

// NewLookupTable indexes the collected file paths by their normalized form
func NewLookupTable(paths []string) LookupTable {
	table := make(LookupTable, len(paths))
	for _, p := range paths {
		table[NormalizePath(p)] = p
	}
	return table
}

// PathResolver maps import specifiers to collected files
type PathResolver struct {
	aliases []domain.AliasRule
}

// NewPathResolver creates a resolver with an ordered alias table.
// The first alias whose prefix matches a specifier wins.
func NewPathResolver(aliases []domain.AliasRule) *PathResolver {
	return &PathResolver{aliases: append([]domain.AliasRule(nil), aliases...)}
}

// Aliases returns a copy of the alias table
func (r *PathResolver) Aliases() []domain.AliasRule {
	return append([]domain.AliasRule(nil), r.aliases...)
}

// Resolve returns the collected file that source refers to when imported from fromPath.
// The boolean is false for external packages and for targets outside the lookup table.
func (r *PathResolver) Resolve(source, fromPath string, lookup LookupTable) (string, bool) {
	candidate, ok := r.candidate(source, fromPath)
	if !ok {
		return "", false
	}
	candidate = NormalizePath(candidate)

	for _, suffix := range probeSuffixes {
		if target, found := lookup[candidate+suffix]; found {
			return target, true
		}
	}
	return "", false
}

// IsExternal reports whether source names a package rather than a project file
func (r *PathResolver) IsExternal(source string) bool {
	_, ok := r.candidate(source, "")
	return !ok
}

// candidate maps source to an unprobed project path. Relative specifiers
// are joined to the importer's directory; anything else must match an
// alias prefix, whatever character it starts with.
func (r *PathResolver) candidate(source, fromPath string) (string, bool) {
	if strings.HasPrefix(source, ".") {
		return path.Join(path.Dir(NormalizePath(fromPath)), source), true
	}
	for _, alias := range r.aliases {
		if alias.Prefix != "" && strings.HasPrefix(source, alias.Prefix) {
			return alias.Rewrite + strings.TrimPrefix(source, alias.Prefix), true
		}
	}
	return "", false
}

// NormalizePath converts separators to '/', cleans the path and strips any trailing slash
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}
	p = strings.ReplaceAll(p, `\`, "/")
	return path.Clean(p)
}
