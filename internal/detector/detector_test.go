package detector

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludo-technologies/archscan/domain"
)

// layout creates entries under a temporary root; names ending in / are directories
func layout(t *testing.T, entries ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, e := range entries {
		full := filepath.Join(root, filepath.FromSlash(e))
		if strings.HasSuffix(e, "/") {
			require.NoError(t, os.MkdirAll(full, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("{}"), 0o644))
	}
	return root
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name       string
		entries    []string
		detected   string
		confidence float64
		matches    []string
	}{
		{
			name:       "complete fsd",
			entries:    []string{"src/entities/", "src/features/", "src/widgets/", "src/pages/", "src/shared/"},
			detected:   "fsd",
			confidence: 1,
			matches:    []string{"src/entities", "src/features", "src/widgets", "src/pages", "src/shared"},
		},
		{
			name:       "partial clean",
			entries:    []string{"src/domain/", "src/application/"},
			detected:   "clean",
			confidence: 0.5,
			matches:    []string{"src/domain", "src/application"},
		},
		{
			name:       "hexagonal with files",
			entries:    []string{"src/core/ports/", "src/adapters/inbound/"},
			detected:   "hexagonal",
			confidence: 1,
			matches:    []string{"src/core", "src/core/ports", "src/adapters", "src/adapters/inbound"},
		},
		{
			name:       "shared paths score by weight",
			entries:    []string{"packages/", "apps/"},
			detected:   "monorepo",
			confidence: 2.0 / 3.0,
			matches:    []string{"packages/", "apps/"},
		},
		{
			name:       "tie keeps table order",
			entries:    []string{"services/", "functions/"},
			detected:   "serverless",
			confidence: 1.0 / 3.0,
			matches:    []string{"functions/"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(layout(t, tt.entries...), nil).Detect()
			assert.Equal(t, tt.detected, r.Detected)
			assert.InDelta(t, tt.confidence, r.Confidence, 1e-9)
			assert.Equal(t, tt.matches, r.Matches)
		})
	}
}

func TestDetect_Suggestions(t *testing.T) {
	r := New(layout(t, "src/entities/", "src/features/", "src/shared/"), nil).Detect()
	require.Equal(t, "fsd", r.Detected)
	assert.Equal(t, []string{
		"Missing directory: src/widgets",
		"Missing directory: src/pages",
		"Consider adding public API exports (index files) to each slice",
	}, r.Suggestions)
}

func TestDetect_Empty(t *testing.T) {
	r := New(t.TempDir(), nil).Detect()
	assert.Empty(t, r.Detected)
	assert.Zero(t, r.Confidence)
	assert.Empty(t, r.Matches)
	require.Len(t, r.Suggestions, 1)
	assert.Contains(t, r.Suggestions[0], "No architecture detected")
}

func TestDetectFromDependencies(t *testing.T) {
	write := func(t *testing.T, body string) string {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte(body), 0o644))
		return root
	}

	t.Run("no package.json", func(t *testing.T) {
		style, err := New(t.TempDir(), nil).DetectFromDependencies()
		require.NoError(t, err)
		assert.Empty(t, style)
	})

	t.Run("dev dependency", func(t *testing.T) {
		root := write(t, `{"devDependencies": {"@feature-sliced/eslint-config": "^0.1.0"}}`)
		style, err := New(root, nil).DetectFromDependencies()
		require.NoError(t, err)
		assert.Equal(t, "fsd", style)
	})

	t.Run("table order wins", func(t *testing.T) {
		root := write(t, `{"dependencies": {"next": "14.0.0", "ports-and-adapters": "1.0.0"}}`)
		style, err := New(root, nil).DetectFromDependencies()
		require.NoError(t, err)
		assert.Equal(t, "hexagonal", style)
	})

	t.Run("malformed", func(t *testing.T) {
		root := write(t, `{"dependencies": `)
		_, err := New(root, nil).DetectFromDependencies()
		require.Error(t, err)
		assert.Equal(t, domain.ErrCodeInvalidInput, domain.ErrorCode(err))
	})
}

func TestDetectProjectType(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		want    string
	}{
		{"empty defaults to frontend", nil, ProjectFrontend},
		{"frontend", []string{"src/components/", "public/index.html"}, ProjectFrontend},
		{"backend", []string{"src/controllers/", "server.js"}, ProjectBackend},
		{"mobile", []string{"ios/", "android/"}, ProjectMobile},
		{"frontend and backend", []string{"src/components/", "src/routes/"}, ProjectFullstack},
		{"fullstack indicator", []string{"client/"}, ProjectFullstack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(layout(t, tt.entries...), nil).DetectProjectType())
		})
	}
}

func TestFullDetection_Recommendation(t *testing.T) {
	t.Run("high confidence", func(t *testing.T) {
		root := layout(t, "src/domain/", "src/application/", "src/infrastructure/", "src/presentation/")
		r := New(root, nil).FullDetection()
		assert.Equal(t, "Detected clean architecture with high confidence (100%)", r.Recommendation)
		assert.Equal(t, domain.ArchitectureClean, ResolveStyle(r))
	})

	t.Run("dependencies", func(t *testing.T) {
		root := layout(t, "src/domain/")
		require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"),
			[]byte(`{"dependencies": {"feature-sliced": "1.0.0"}}`), 0o644))
		r := New(root, nil).FullDetection()
		assert.Equal(t, "Detected fsd from package dependencies", r.Recommendation)
		assert.Equal(t, domain.ArchitectureClean, ResolveStyle(r))
	})

	t.Run("possible", func(t *testing.T) {
		r := New(layout(t, "src/core/"), nil).FullDetection()
		assert.Equal(t, "Possibly hexagonal architecture (33% confidence)", r.Recommendation)
		assert.Equal(t, domain.ArchitectureHexagonal, ResolveStyle(r))
	})

	t.Run("nothing", func(t *testing.T) {
		r := New(t.TempDir(), nil).FullDetection()
		assert.Equal(t, "No specific architecture detected. Consider choosing one based on your project needs.", r.Recommendation)
		assert.Equal(t, domain.ArchitectureAuto, ResolveStyle(r))
	})
}
