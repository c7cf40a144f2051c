// Package detector guesses the architectural style of a project from its
// directory layout and package.json dependencies.
package detector

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"slices"

	"github.com/ludo-technologies/archscan/domain"
)

// Pattern describes the layout markers of one style
type Pattern struct {
	Style  string
	Paths  []string
	Files  []string
	Weight float64
}

// Patterns is the detection table; ties are broken by table order
var Patterns = []Pattern{
	{"fsd", []string{"src/entities", "src/features", "src/widgets", "src/pages", "src/shared"}, []string{"src/app/index.tsx", "src/app/providers"}, 1.0},
	{"atomic", []string{"src/components/atoms", "src/components/molecules", "src/components/organisms"}, []string{"src/components/templates", "src/components/pages"}, 1.0},
	{"mvc", []string{"src/models", "src/views", "src/controllers"}, []string{"src/presenters"}, 0.9},
	{"micro-frontend", []string{"packages/", "apps/", "remotes/"}, []string{"module-federation.config.js", "webpack.config.js"}, 0.8},
	{"clean", []string{"src/domain", "src/application", "src/infrastructure", "src/presentation"}, []string{"src/domain/entities", "src/application/useCases"}, 1.0},
	{"hexagonal", []string{"src/core", "src/core/ports", "src/adapters"}, []string{"src/adapters/inbound", "src/adapters/outbound"}, 1.0},
	{"ddd", []string{"src/boundedContexts", "src/domain/aggregates", "src/domain/valueObjects"}, []string{"src/domain/events", "src/domain/services"}, 1.0},
	{"layered", []string{"src/presentation", "src/business", "src/data"}, []string{"src/common"}, 0.8},
	{"serverless", []string{"functions/", "lambdas/", "handlers/"}, []string{"serverless.yml", "serverless.json"}, 0.9},
	{"monorepo", []string{"packages/", "apps/", "libs/"}, []string{"nx.json", "turbo.json", "lerna.json", "rush.json"}, 1.0},
	{"jamstack", []string{"src/pages", "src/content", "public/"}, []string{"gatsby-config.js", "next.config.js", ".eleventy.js"}, 0.9},
	{"microservices", []string{"services/", "api-gateway/", "docker-compose.yml"}, []string{"kubernetes/", ".dockerignore"}, 0.9},
}

type packageStyle struct {
	style    string
	packages []string
}

var dependencyStyles = []packageStyle{
	{"fsd", []string{"feature-sliced", "@feature-sliced/eslint-config"}},
	{"atomic", []string{"atomic-design", "react-atomic-design"}},
	{"clean", []string{"clean-architecture", "@clean/core"}},
	{"hexagonal", []string{"hexagonal-architecture", "ports-and-adapters"}},
	{"ddd", []string{"domain-driven-design", "ddd-toolkit"}},
	{"monorepo", []string{"nx", "turborepo", "lerna", "rush"}},
	{"jamstack", []string{"gatsby", "next", "@11ty/eleventy"}},
	{"serverless", []string{"serverless", "serverless-offline", "@serverless/components"}},
}

// Project types
const (
	ProjectFrontend  = "frontend"
	ProjectBackend   = "backend"
	ProjectMobile    = "mobile"
	ProjectFullstack = "fullstack"
)

type projectIndicator struct {
	kind  string
	paths []string
}

var projectIndicators = []projectIndicator{
	{ProjectFrontend, []string{"src/components", "src/pages", "src/views", "public/index.html", "src/App.tsx", "src/App.jsx"}},
	{ProjectBackend, []string{"src/controllers", "src/routes", "src/models", "src/services", "server.js", "app.js"}},
	{ProjectMobile, []string{"ios/", "android/", "App.tsx", "metro.config.js", "app.json"}},
	{ProjectFullstack, []string{"frontend/", "backend/", "client/", "server/", "packages/"}},
}

// Result is the outcome of layout detection
type Result struct {
	Detected    string   `json:"detected" yaml:"detected"`
	Confidence  float64  `json:"confidence" yaml:"confidence"`
	Matches     []string `json:"matches" yaml:"matches"`
	Suggestions []string `json:"suggestions" yaml:"suggestions"`
}

// FullResult combines layout, dependency and project type detection
type FullResult struct {
	ProjectType      string `json:"projectType" yaml:"projectType"`
	Architecture     Result `json:"architecture" yaml:"architecture"`
	FromDependencies string `json:"fromDependencies,omitempty" yaml:"fromDependencies,omitempty"`
	Recommendation   string `json:"recommendation" yaml:"recommendation"`
}

// Detector inspects a project root
type Detector struct {
	root   string
	logger *slog.Logger
}

// New creates a detector for root (nil logger uses slog.Default())
func New(root string, logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{root: root, logger: logger}
}

func (d *Detector) exists(rel string) bool {
	_, err := os.Stat(filepath.Join(d.root, filepath.FromSlash(rel)))
	return err == nil
}

// Detect scores every pattern against the layout and returns the best match
func (d *Detector) Detect() Result {
	var best *Pattern
	var bestScore float64
	var bestMatches []string

	for i := range Patterns {
		p := &Patterns[i]
		var score float64
		var found []string
		for _, dir := range p.Paths {
			if d.exists(dir) {
				score += p.Weight
				found = append(found, dir)
			}
		}
		for _, f := range p.Files {
			if d.exists(f) {
				score += p.Weight * 0.5
				found = append(found, f)
			}
		}
		if score > bestScore {
			best, bestScore, bestMatches = p, score, found
		}
	}

	if best == nil {
		return Result{
			Matches:     []string{},
			Suggestions: []string{"No architecture detected. Run archscan init to configure one."},
		}
	}

	confidence := math.Min(bestScore/(float64(len(best.Paths))*best.Weight), 1)
	d.logger.Debug("architecture detected", "style", best.Style, "score", bestScore, "confidence", confidence)

	return Result{
		Detected:    best.Style,
		Confidence:  confidence,
		Matches:     bestMatches,
		Suggestions: suggestionsFor(best, bestMatches),
	}
}

func suggestionsFor(p *Pattern, found []string) []string {
	suggestions := []string{}
	for _, dir := range p.Paths {
		if !slices.Contains(found, dir) {
			suggestions = append(suggestions, "Missing directory: "+dir)
		}
	}
	switch p.Style {
	case "fsd":
		suggestions = append(suggestions, "Consider adding public API exports (index files) to each slice")
	case "clean":
		suggestions = append(suggestions, "Ensure dependency inversion principle is followed")
	case "ddd":
		suggestions = append(suggestions, "Define clear bounded contexts and aggregates")
	case "atomic":
		suggestions = append(suggestions, "Maintain strict hierarchy: atoms → molecules → organisms")
	}
	return suggestions
}

type packageManifest struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// DetectFromDependencies returns the style implied by package.json, or ""
// when there is no package.json or no known package
func (d *Detector) DetectFromDependencies() (string, error) {
	data, err := os.ReadFile(filepath.Join(d.root, "package.json"))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", domain.NewFileNotFoundError("package.json", err)
	}

	var manifest packageManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return "", domain.NewInvalidInputError("invalid package.json", err)
	}

	for _, ps := range dependencyStyles {
		for _, pkg := range ps.packages {
			if manifest.Dependencies[pkg] != "" || manifest.DevDependencies[pkg] != "" {
				return ps.style, nil
			}
		}
	}
	return "", nil
}

// DetectProjectType classifies the project by indicator files.
// Any fullstack indicator, or both frontend and backend indicators, yields
// fullstack; otherwise the highest count wins with ties in table order.
func (d *Detector) DetectProjectType() string {
	scores := make(map[string]int, len(projectIndicators))
	for _, ind := range projectIndicators {
		for _, p := range ind.paths {
			if d.exists(p) {
				scores[ind.kind]++
			}
		}
	}

	if scores[ProjectFullstack] > 0 || (scores[ProjectFrontend] > 0 && scores[ProjectBackend] > 0) {
		return ProjectFullstack
	}

	best := projectIndicators[0].kind
	for _, ind := range projectIndicators[1:] {
		if scores[ind.kind] > scores[best] {
			best = ind.kind
		}
	}
	return best
}

// FullDetection runs every detection and derives a recommendation.
// A malformed package.json is logged and treated as no dependency match.
func (d *Detector) FullDetection() FullResult {
	projectType := d.DetectProjectType()
	arch := d.Detect()
	fromDeps, err := d.DetectFromDependencies()
	if err != nil {
		d.logger.Warn("skipping package.json", "error", err)
	}

	var recommendation string
	switch {
	case arch.Detected != "" && arch.Confidence > 0.7:
		recommendation = fmt.Sprintf("Detected %s architecture with high confidence (%d%%)", arch.Detected, percent(arch.Confidence))
	case fromDeps != "":
		recommendation = fmt.Sprintf("Detected %s from package dependencies", fromDeps)
	case arch.Detected != "":
		recommendation = fmt.Sprintf("Possibly %s architecture (%d%% confidence)", arch.Detected, percent(arch.Confidence))
	default:
		recommendation = "No specific architecture detected. Consider choosing one based on your project needs."
	}

	return FullResult{
		ProjectType:      projectType,
		Architecture:     arch,
		FromDependencies: fromDeps,
		Recommendation:   recommendation,
	}
}

func percent(confidence float64) int {
	return int(math.Round(confidence * 100))
}

// styleAliases maps detected styles onto the lintable style with the same layering
var styleAliases = map[string]domain.ArchitectureType{
	"fsd":       domain.ArchitectureFSD,
	"clean":     domain.ArchitectureClean,
	"ddd":       domain.ArchitectureClean,
	"layered":   domain.ArchitectureClean,
	"hexagonal": domain.ArchitectureHexagonal,
}

// ResolveStyle maps a full detection to a lintable style, preferring the
// layout match over the dependency match. Unmapped results give ArchitectureAuto.
func ResolveStyle(r FullResult) domain.ArchitectureType {
	if style, ok := styleAliases[r.Architecture.Detected]; ok {
		return style
	}
	if style, ok := styleAliases[r.FromDependencies]; ok {
		return style
	}
	return domain.ArchitectureAuto
}
