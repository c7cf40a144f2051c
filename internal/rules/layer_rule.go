package rules

import (
	"fmt"
	"slices"

	"github.com/ludo-technologies/archscan/domain"
)

// Direction says which imports between two known layers are violations
type Direction int

const (
	// ForbidEarlierLayers flags a file importing a layer listed before its own
	ForbidEarlierLayers Direction = iota
	// ForbidLaterLayers flags a file importing a layer listed after its own
	ForbidLaterLayers
)

// Violates reports whether importing toIndex from fromIndex breaks the direction
func (d Direction) Violates(fromIndex, toIndex int) bool {
	if d == ForbidLaterLayers {
		return fromIndex < toIndex
	}
	return fromIndex > toIndex
}

// LayerStyle is the data table of a layer-order rule.
// MessageFormat and SuggestionFormat receive the importing layer as %[1]s
// and the imported layer as %[2]s.
type LayerStyle struct {
	Meta
	Layers           []string
	Forbid           Direction
	MessageFormat    string
	SuggestionFormat string
}

// LayerOrderRule flags imports that cross layers against the style's direction
type LayerOrderRule struct {
	style LayerStyle
}

// NewLayerOrderRule creates a layer-order rule from style
func NewLayerOrderRule(style LayerStyle) *LayerOrderRule {
	style.Layers = slices.Clone(style.Layers)
	return &LayerOrderRule{style: style}
}

func (r *LayerOrderRule) ID() string                { return r.style.ID() }
func (r *LayerOrderRule) Name() string              { return r.style.Name() }
func (r *LayerOrderRule) Description() string       { return r.style.Description() }
func (r *LayerOrderRule) Severity() domain.Severity { return r.style.Severity() }
func (r *LayerOrderRule) Enabled() bool             { return true }

// Layers returns the ordered layer list of the rule
func (r *LayerOrderRule) Layers() []string { return slices.Clone(r.style.Layers) }

// Check reports one issue per import whose layer may not be imported from the file's layer
func (r *LayerOrderRule) Check(files []domain.FileRecord) ([]domain.ValidationIssue, error) {
	var issues []domain.ValidationIssue

	for _, file := range files {
		fromLayer := LayerOf(file.Path, r.style.Layers)
		if fromLayer == UnknownLayer {
			continue
		}
		fromIndex := slices.Index(r.style.Layers, fromLayer)

		for _, imp := range file.Imports {
			toLayer := LayerOfImport(imp.Source, r.style.Layers)
			if toLayer == UnknownLayer {
				continue
			}
			toIndex := slices.Index(r.style.Layers, toLayer)

			if r.style.Forbid.Violates(fromIndex, toIndex) {
				issues = append(issues, r.style.issue(
					file.Path,
					imp.Line,
					fmt.Sprintf(r.style.MessageFormat, fromLayer, toLayer),
					fmt.Sprintf(r.style.SuggestionFormat, fromLayer, toLayer),
				))
			}
		}
	}
	return issues, nil
}
