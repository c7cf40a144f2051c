package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludo-technologies/archscan/domain"
)

func sampleDepsResponse() *domain.DependencyResponse {
	return &domain.DependencyResponse{
		Graph: map[string][]string{
			"src/a.ts": {"src/b.ts"},
			"src/b.ts": {"src/a.ts"},
		},
		Edges:       []domain.DependencyEdge{{From: "src/a.ts", To: "src/b.ts"}, {From: "src/b.ts", To: "src/a.ts"}},
		Cycles:      []domain.DependencyCycle{{Files: []string{"src/a.ts", "src/b.ts", "src/a.ts"}, Severity: domain.CycleSeverityLow}},
		Summary:     domain.DependencySummary{Files: 2, Edges: 2, Cycles: 1},
		Suggestions: []string{"Break the largest cycle (2 files) by extracting common functionality into a separate module"},
		DOT:         "digraph G {}\n",
	}
}

func TestDepsFormatter_Text(t *testing.T) {
	f := NewDepsFormatter()
	var buf bytes.Buffer
	require.NoError(t, f.Write(sampleDepsResponse(), domain.OutputFormatText, &buf))

	out := buf.String()
	assert.Contains(t, out, "Dependency Analysis")
	assert.Contains(t, out, "Edges:    2")
	assert.Contains(t, out, "src/a.ts → src/b.ts → src/a.ts")
	assert.Contains(t, out, "[low]")
	assert.Contains(t, out, "Break the largest cycle")
	assert.Contains(t, out, "Most dependencies")
}

func TestDepsFormatter_StructuredFormats(t *testing.T) {
	f := NewDepsFormatter()

	tests := []struct {
		format domain.OutputFormat
		check  func(t *testing.T, out string)
	}{
		{domain.OutputFormatJSON, func(t *testing.T, out string) {
			assert.True(t, strings.HasPrefix(out, "{"))
			assert.Contains(t, out, `"external_imports"`)
			assert.NotContains(t, out, "digraph")
		}},
		{domain.OutputFormatYAML, func(t *testing.T, out string) {
			assert.Contains(t, out, "summary:")
		}},
		{domain.OutputFormatDOT, func(t *testing.T, out string) {
			assert.Equal(t, "digraph G {}\n", out)
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, f.Write(sampleDepsResponse(), tt.format, &buf))
			tt.check(t, buf.String())
		})
	}
}

func TestDepsFormatter_Unsupported(t *testing.T) {
	var buf bytes.Buffer
	err := NewDepsFormatter().Write(sampleDepsResponse(), "csv", &buf)
	require.Error(t, err)
	assert.Equal(t, domain.ErrCodeUnsupportedFormat, domain.ErrorCode(err))
}
