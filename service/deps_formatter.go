package service

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ludo-technologies/archscan/domain"
)

// DepsFormatterImpl implements domain.DepsOutputFormatter
type DepsFormatterImpl struct{}

func NewDepsFormatter() *DepsFormatterImpl { return &DepsFormatterImpl{} }

func (f *DepsFormatterImpl) Write(resp *domain.DependencyResponse, format domain.OutputFormat, w io.Writer) error {
	switch format {
	case domain.OutputFormatText, "":
		_, err := io.WriteString(w, f.formatText(resp, StylesFor(w)))
		return err
	case domain.OutputFormatJSON:
		return WriteJSON(w, resp)
	case domain.OutputFormatYAML:
		return WriteYAML(w, resp)
	case domain.OutputFormatDOT:
		_, err := io.WriteString(w, resp.DOT)
		return err
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

func (f *DepsFormatterImpl) formatText(resp *domain.DependencyResponse, s Styles) string {
	var b strings.Builder
	b.WriteString(s.FormatMainHeader("Dependency Analysis"))
	fmt.Fprintf(&b, "Files:    %d\nEdges:    %d\nCycles:   %d\nExternal: %d\n\n",
		resp.Summary.Files, resp.Summary.Edges, resp.Summary.Cycles, resp.Summary.ExternalCount)

	if len(resp.Cycles) > 0 {
		b.WriteString(s.FormatSectionHeader("Cycles"))
		for i, cyc := range resp.Cycles {
			fmt.Fprintf(&b, "  %d) %s %s\n", i+1, strings.Join(cyc.Files, " → "), s.Muted.Render("["+string(cyc.Severity)+"]"))
		}
		b.WriteString("\n")
	}

	if len(resp.Suggestions) > 0 {
		b.WriteString(s.FormatSectionHeader("Suggestions"))
		for _, sug := range resp.Suggestions {
			fmt.Fprintf(&b, "  - %s\n", sug)
		}
		b.WriteString("\n")
	}

	// Files with the most outgoing dependencies first
	type fanOut struct {
		file  string
		count int
	}
	var fans []fanOut
	for file, deps := range resp.Graph {
		if len(deps) > 0 {
			fans = append(fans, fanOut{file, len(deps)})
		}
	}
	sort.Slice(fans, func(i, j int) bool {
		if fans[i].count != fans[j].count {
			return fans[i].count > fans[j].count
		}
		return fans[i].file < fans[j].file
	})
	if len(fans) > 10 {
		fans = fans[:10]
	}
	if len(fans) > 0 {
		b.WriteString(s.FormatSectionHeader("Most dependencies"))
		for _, fo := range fans {
			fmt.Fprintf(&b, "  %3d  %s\n", fo.count, fo.file)
		}
		b.WriteString("\n")
	}
	return b.String()
}
