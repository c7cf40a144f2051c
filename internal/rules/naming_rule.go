package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ludo-technologies/archscan/domain"
)

// NamingPolicy is the data table of a naming rule
type NamingPolicy struct {
	Meta

	// HookDirs are directories whose prefixed files must match HookPattern
	HookDirs []string
	// PrefixRequiredDirs are directories in which every file needs HookPrefix
	PrefixRequiredDirs []string
	HookPrefix         string
	HookPattern        *regexp.Regexp

	// StoreMarker selects store files by a substring of the file name
	StoreMarker  string
	StorePattern *regexp.Regexp
}

// NamingRule checks file names against directory conventions
type NamingRule struct {
	policy NamingPolicy
}

// NewNamingRule creates a naming rule from policy
func NewNamingRule(policy NamingPolicy) *NamingRule {
	return &NamingRule{policy: policy}
}

func (r *NamingRule) ID() string                { return r.policy.ID() }
func (r *NamingRule) Name() string              { return r.policy.Name() }
func (r *NamingRule) Description() string       { return r.policy.Description() }
func (r *NamingRule) Severity() domain.Severity { return r.policy.Severity() }
func (r *NamingRule) Enabled() bool             { return true }

// Check reports one issue per naming violation
func (r *NamingRule) Check(files []domain.FileRecord) ([]domain.ValidationIssue, error) {
	p := r.policy
	var issues []domain.ValidationIssue

	for _, file := range files {
		name := fileName(file.Path)

		if inAnyDirectory(file.Path, p.HookDirs...) {
			switch {
			case strings.HasPrefix(name, p.HookPrefix):
				if p.HookPattern != nil && !p.HookPattern.MatchString(name) {
					issues = append(issues, p.issue(file.Path, 0,
						fmt.Sprintf("Hook files must be named %s{Name}.ts", p.HookPrefix),
						fmt.Sprintf("Rename the file in camelCase (e.g. %sUserAuth.ts)", p.HookPrefix),
					))
				}
			case inAnyDirectory(file.Path, p.PrefixRequiredDirs...):
				issues = append(issues, p.issue(file.Path, 0,
					fmt.Sprintf("Files in a %s directory must be named %s{Name}.ts", strings.Join(p.PrefixRequiredDirs, "/"), p.HookPrefix),
					fmt.Sprintf("Rename the file to start with %s (e.g. %s%s)", p.HookPrefix, p.HookPrefix, name),
				))
			}
		}

		if p.StoreMarker != "" && strings.Contains(name, p.StoreMarker) {
			if p.StorePattern != nil && !p.StorePattern.MatchString(name) {
				issues = append(issues, p.issue(file.Path, 0,
					fmt.Sprintf("%s files must be named {entity}%s.ts", p.StoreMarker, p.StoreMarker),
					fmt.Sprintf("Rename the file in camelCase (e.g. user%s.ts)", p.StoreMarker),
				))
			}
		}
	}
	return issues, nil
}
