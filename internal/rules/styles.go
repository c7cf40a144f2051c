package rules

import (
	"regexp"
	"slices"

	"github.com/ludo-technologies/archscan/domain"
)

// Rule identifiers
const (
	FSDLayerRuleID           = "fsd-layer-no-upward-import"
	FSDNamingRuleID          = "fsd-naming-convention"
	CleanDependencyRuleID    = "clean-dependency-direction"
	CleanUseCaseRuleID       = "clean-usecase-isolation"
	HexagonalPortsRuleID     = "hexagonal-ports-separation"
	HexagonalPortInterfaceID = "hexagonal-port-interface"
)

// Layer lists, most dependent first for FSD and innermost first for Clean
var (
	fsdLayers   = []string{"app", "processes", "pages", "widgets", "features", "entities", "shared"}
	cleanLayers = []string{"domain", "application", "infrastructure", "presentation"}
)

// FSDLayers returns the Feature-Sliced Design layer order
func FSDLayers() []string { return slices.Clone(fsdLayers) }

// CleanLayers returns the Clean Architecture layer order
func CleanLayers() []string { return slices.Clone(cleanLayers) }

// NewFSDLayerRule forbids a layer from importing a layer above it
func NewFSDLayerRule() *LayerOrderRule {
	return NewLayerOrderRule(LayerStyle{
		Meta: Meta{
			RuleID:          FSDLayerRuleID,
			RuleName:        "FSD no upward imports",
			RuleDescription: "A lower layer cannot import from a higher layer",
			RuleSeverity:    domain.SeverityError,
		},
		Layers:           fsdLayers,
		Forbid:           ForbidEarlierLayers,
		MessageFormat:    "%[1]s layer cannot import from %[2]s layer",
		SuggestionFormat: "Move the functionality of %[2]s into the shared layer or apply dependency inversion",
	})
}

// NewFSDNamingRule checks hook and store file names
func NewFSDNamingRule() *NamingRule {
	return NewNamingRule(NamingPolicy{
		Meta: Meta{
			RuleID:          FSDNamingRuleID,
			RuleName:        "FSD naming convention",
			RuleDescription: "Hooks are named use{Name}.ts and stores {entity}Store.ts",
			RuleSeverity:    domain.SeverityError,
		},
		HookDirs:           []string{"hooks", "model"},
		PrefixRequiredDirs: []string{"hooks"},
		HookPrefix:         "use",
		HookPattern:        regexp.MustCompile(`^use[A-Z][a-zA-Z]*\.tsx?$`),
		StoreMarker:        "Store",
		StorePattern:       regexp.MustCompile(`^[a-z][a-zA-Z]*Store\.tsx?$`),
	})
}

// NewCleanDependencyRule forbids inner layers from importing outer layers
func NewCleanDependencyRule() *LayerOrderRule {
	return NewLayerOrderRule(LayerStyle{
		Meta: Meta{
			RuleID:          CleanDependencyRuleID,
			RuleName:        "Clean Architecture dependency direction",
			RuleDescription: "Dependencies point inward; inner layers cannot import outer layers",
			RuleSeverity:    domain.SeverityError,
		},
		Layers:           cleanLayers,
		Forbid:           ForbidLaterLayers,
		MessageFormat:    "%[1]s layer cannot import from %[2]s layer",
		SuggestionFormat: "Apply the Dependency Inversion Principle: define an interface in %[1]s and implement it in %[2]s",
	})
}

// NewCleanUseCaseRule keeps use cases in the application layer
func NewCleanUseCaseRule() *UseCasePlacementRule {
	return &UseCasePlacementRule{
		Meta: Meta{
			RuleID:          CleanUseCaseRuleID,
			RuleName:        "Clean Architecture use case isolation",
			RuleDescription: "Use cases live only in the application layer",
			RuleSeverity:    domain.SeverityWarning,
		},
		Layers:  cleanLayers,
		Markers: []string{"UseCase", "use-case"},
		Home:    "application",
	}
}

// NewHexagonalPortsRule forbids the core from importing adapters
func NewHexagonalPortsRule() *PortsSeparationRule {
	return &PortsSeparationRule{
		Meta: Meta{
			RuleID:          HexagonalPortsRuleID,
			RuleName:        "Hexagonal ports separation",
			RuleDescription: "Core cannot import adapters",
			RuleSeverity:    domain.SeverityError,
		},
		CoreDirs:    []string{"core", "domain", "ports"},
		AdapterDirs: []string{"adapters", "adapter"},
	}
}

// NewHexagonalPortInterfaceRule keeps port definitions in the ports directory
func NewHexagonalPortInterfaceRule() *PortInterfaceRule {
	return &PortInterfaceRule{
		Meta: Meta{
			RuleID:          HexagonalPortInterfaceID,
			RuleName:        "Hexagonal port interface location",
			RuleDescription: "Port interfaces are defined in the ports directory",
			RuleSeverity:    domain.SeverityWarning,
		},
		Marker:    "Port",
		Extension: ".ts",
		PortsDir:  "ports",
	}
}
