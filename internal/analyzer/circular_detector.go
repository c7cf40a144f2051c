package analyzer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ludo-technologies/archscan/domain"
)

// cycleKeySeparator joins sorted members into a dedup key
const cycleKeySeparator = "->"

type visitState int

const (
	unvisited visitState = iota
	inProgress
	done
)

// CircularDependencyDetector finds cycles with a depth-first search that
// tracks the path from the current root
type CircularDependencyDetector struct {
	graph *DepGraph

	state  map[string]visitState
	seen   map[string]struct{}
	cycles []domain.Cycle
}

// NewCircularDependencyDetector creates a detector for graph
func NewCircularDependencyDetector(graph *DepGraph) *CircularDependencyDetector {
	return &CircularDependencyDetector{graph: graph}
}

// Detect returns the distinct cycles of the graph in discovery order.
// Two cycles with the same member set are reported once.
func (d *CircularDependencyDetector) Detect() []domain.Cycle {
	d.state = make(map[string]visitState)
	d.seen = make(map[string]struct{})
	d.cycles = []domain.Cycle{}

	if d.graph == nil {
		return d.cycles
	}
	for _, node := range d.graph.order {
		if d.state[node] == unvisited {
			d.visit(node, []string{node})
		}
	}
	return d.cycles
}

func (d *CircularDependencyDetector) visit(node string, path []string) {
	d.state[node] = inProgress

	for _, next := range d.graph.deps[node] {
		switch d.state[next] {
		case unvisited:
			d.visit(next, append(path[:len(path):len(path)], next))
		case inProgress:
			d.record(closeCycle(path, node, next))
		}
	}

	d.state[node] = done
}

// closeCycle cuts the cycle ending in the back edge node -> next out of path
func closeCycle(path []string, node, next string) domain.Cycle {
	idx := slices.Index(path, next)
	if idx < 0 {
		return domain.Cycle{node, next}
	}
	cycle := make(domain.Cycle, 0, len(path)-idx+1)
	cycle = append(cycle, path[idx:]...)
	return append(cycle, next)
}

func (d *CircularDependencyDetector) record(c domain.Cycle) {
	key := CycleKey(c)
	if _, dup := d.seen[key]; dup {
		return
	}
	d.seen[key] = struct{}{}
	d.cycles = append(d.cycles, c)
}

// CycleKey returns the node-set key of c: its sorted members joined by "->".
// c itself is not modified.
func CycleKey(c domain.Cycle) string {
	members := c.Members()
	slices.Sort(members)
	return strings.Join(members, cycleKeySeparator)
}

// DetectCycles finds all distinct cycles of g
func DetectCycles(g *DepGraph) []domain.Cycle {
	return NewCircularDependencyDetector(g).Detect()
}

// FormatCycleReport renders cycles as a numbered list
func FormatCycleReport(cycles []domain.Cycle) string {
	if len(cycles) == 0 {
		return "No circular dependencies detected."
	}

	noun := "dependencies"
	if len(cycles) == 1 {
		noun = "dependency"
	}

	lines := []string{fmt.Sprintf("Found %d circular %s:", len(cycles), noun), ""}
	for i, c := range cycles {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, strings.Join(c, " → ")))
	}
	return strings.Join(lines, "\n")
}

// CycleAnalysis grades detected cycles
type CycleAnalysis struct {
	Cycles []domain.DependencyCycle

	// SharedFiles appear in more than one cycle, sorted
	SharedFiles []string

	LargestSize   int
	CriticalCount int
}

// AnalyzeCycles grades each cycle by size and finds files shared between cycles
func AnalyzeCycles(cycles []domain.Cycle) *CycleAnalysis {
	result := &CycleAnalysis{Cycles: make([]domain.DependencyCycle, 0, len(cycles))}
	occurrences := make(map[string]int)

	for _, c := range cycles {
		members := c.Members()
		severity := AssessCycleSeverity(len(members))
		if severity == domain.CycleSeverityCritical {
			result.CriticalCount++
		}
		if len(members) > result.LargestSize {
			result.LargestSize = len(members)
		}
		for _, m := range members {
			occurrences[m]++
		}
		result.Cycles = append(result.Cycles, domain.DependencyCycle{
			Files:    slices.Clone(c),
			Severity: severity,
		})
	}

	for file, count := range occurrences {
		if count > 1 {
			result.SharedFiles = append(result.SharedFiles, file)
		}
	}
	slices.Sort(result.SharedFiles)
	return result
}

// AssessCycleSeverity grades a cycle by the number of distinct files in it
func AssessCycleSeverity(size int) domain.CycleSeverity {
	switch {
	case size >= 10:
		return domain.CycleSeverityCritical
	case size >= 6:
		return domain.CycleSeverityHigh
	case size >= 3:
		return domain.CycleSeverityMedium
	default:
		return domain.CycleSeverityLow
	}
}

// CycleBreakingSuggestions suggests refactorings that break the analysed cycles
func CycleBreakingSuggestions(a *CycleAnalysis) []string {
	if a == nil || len(a.Cycles) == 0 {
		return nil
	}

	var suggestions []string

	if a.LargestSize > 1 {
		suggestions = append(suggestions,
			fmt.Sprintf("Break the largest cycle (%d files) by extracting common functionality into a separate module",
				a.LargestSize))
	}

	if len(a.SharedFiles) > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("Refactor files that appear in multiple cycles: %s",
				strings.Join(a.SharedFiles, ", ")))
	}

	for _, c := range a.Cycles {
		if len(c.Files) == 2 && c.Files[0] == c.Files[1] {
			suggestions = append(suggestions,
				fmt.Sprintf("Remove the self import in %s", c.Files[0]))
		}
	}

	if a.CriticalCount > 0 {
		suggestions = append(suggestions,
			"Consider applying Dependency Inversion Principle to critical cycles")
	}

	return suggestions
}
