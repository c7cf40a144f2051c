package rules

import (
	"strings"

	"github.com/ludo-technologies/archscan/domain"
)

// UseCasePlacementRule flags use case files that live in a layer other than Home
type UseCasePlacementRule struct {
	Meta
	Layers  []string
	Markers []string
	Home    string
}

// Check reports one warning per misplaced use case file; files outside every layer are exempt
func (r *UseCasePlacementRule) Check(files []domain.FileRecord) ([]domain.ValidationIssue, error) {
	var issues []domain.ValidationIssue
	for _, file := range files {
		if !containsAny(fileName(file.Path), r.Markers) {
			continue
		}
		layer := LayerOf(file.Path, r.Layers)
		if layer == r.Home || layer == UnknownLayer {
			continue
		}
		issues = append(issues, r.issue(file.Path, 0,
			"UseCase files must live in the "+r.Home+" layer",
			"Move the file into the "+r.Home+" layer",
		))
	}
	return issues, nil
}

// PortsSeparationRule flags core files that import adapters
type PortsSeparationRule struct {
	Meta
	CoreDirs    []string
	AdapterDirs []string
}

// Check reports one error per core import of an adapter module
func (r *PortsSeparationRule) Check(files []domain.FileRecord) ([]domain.ValidationIssue, error) {
	var issues []domain.ValidationIssue
	for _, file := range files {
		if !inAnyDirectory(file.Path, r.CoreDirs...) {
			continue
		}
		for _, imp := range file.Imports {
			if !inAnyDirectory(imp.Source, r.AdapterDirs...) {
				continue
			}
			issues = append(issues, r.issue(file.Path, imp.Line,
				"Core must not import adapters",
				"Define a port interface in the core for the adapter to implement and inject it",
			))
		}
	}
	return issues, nil
}

// PortInterfaceRule flags port definitions outside the ports directory
type PortInterfaceRule struct {
	Meta
	Marker    string
	Extension string
	PortsDir  string
}

// Check reports one warning per port file outside PortsDir
func (r *PortInterfaceRule) Check(files []domain.FileRecord) ([]domain.ValidationIssue, error) {
	var issues []domain.ValidationIssue
	for _, file := range files {
		name := fileName(file.Path)
		if !strings.Contains(name, r.Marker) || !strings.HasSuffix(name, r.Extension) {
			continue
		}
		if inAnyDirectory(file.Path, r.PortsDir) {
			continue
		}
		issues = append(issues, r.issue(file.Path, 0,
			"Port interfaces must be defined in the "+r.PortsDir+" directory",
			"Move the file into the "+r.PortsDir+" directory",
		))
	}
	return issues, nil
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
