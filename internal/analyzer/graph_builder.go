package analyzer

import (
	"github.com/ludo-technologies/archscan/domain"
)

// BuildStats counts how the imports of a build were classified
type BuildStats struct {
	Resolved int
	// External counts package imports, which are never resolved
	External int
	// Unresolved counts project-relative or aliased imports with no collected target
	Unresolved int
}

// GraphBuilder turns file records into a DepGraph
type GraphBuilder struct {
	resolver *PathResolver
}

// NewGraphBuilder creates a builder using resolver; nil uses the default alias table
func NewGraphBuilder(resolver *PathResolver) *GraphBuilder {
	if resolver == nil {
		resolver = NewPathResolver(domain.DefaultAliases())
	}
	return &GraphBuilder{resolver: resolver}
}

// Build creates one node per distinct file path and one edge per resolved import
func (b *GraphBuilder) Build(files []domain.FileRecord) (*DepGraph, BuildStats) {
	var stats BuildStats

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	lookup := NewLookupTable(paths)

	g := NewDepGraph()
	for _, f := range files {
		g.AddNode(f.Path)
	}

	for _, f := range files {
		for _, imp := range f.Imports {
			target, ok := b.resolver.Resolve(imp.Source, f.Path, lookup)
			switch {
			case ok:
				stats.Resolved++
				g.AddEdge(f.Path, target)
			case b.resolver.IsExternal(imp.Source):
				stats.External++
			default:
				stats.Unresolved++
			}
		}
	}
	return g, stats
}

// BuildDependencyGraph builds the dependency graph of files with resolver
func BuildDependencyGraph(files []domain.FileRecord, resolver *PathResolver) *DepGraph {
	g, _ := NewGraphBuilder(resolver).Build(files)
	return g
}
