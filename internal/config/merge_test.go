package config

import (
	"testing"

	"github.com/ludo-technologies/archscan/domain"
)

func TestWasExplicitlySet(t *testing.T) {
	flags := map[string]bool{"strictness": true, "detect": false}
	if !WasExplicitlySet(flags, "strictness") {
		t.Error("strictness should be reported as set")
	}
	if WasExplicitlySet(flags, "detect") || WasExplicitlySet(flags, "architecture") {
		t.Error("detect and architecture should not be reported as set")
	}
	if WasExplicitlySet(nil, "strictness") {
		t.Error("nil flag map should report nothing as set")
	}
}

func TestMergeScalars(t *testing.T) {
	set := map[string]bool{"strictness": true, "max-files": true, "detect": true}

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"string set", MergeString("moderate", "strict", "strictness", set), "strict"},
		{"string unset", MergeString("moderate", "strict", "architecture", set), "moderate"},
		{"int set to zero", MergeInt(50, 0, "max-files", set), 0},
		{"int unset", MergeInt(50, 10, "concurrency", set), 50},
		{"bool set to false", MergeBool(true, false, "detect", set), false},
		{"bool with nil flags", MergeBool(true, false, "detect", nil), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestMergeStringSlice(t *testing.T) {
	base := []string{"fsd-naming-convention"}
	override := []string{"clean-usecase-isolation", "hexagonal-port-interface"}

	tests := []struct {
		name     string
		override []string
		flags    map[string]bool
		want     []string
	}{
		{"flag set", override, map[string]bool{"disable-rule": true}, override},
		{"flag unset", override, map[string]bool{}, base},
		{"flag set with empty override keeps base", []string{}, map[string]bool{"disable-rule": true}, base},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeStringSlice(base, tt.override, "disable-rule", tt.flags)
			if len(got) != len(tt.want) {
				t.Fatalf("MergeStringSlice() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("MergeStringSlice()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMergeGeneric(t *testing.T) {
	flags := map[string]bool{"architecture": true}
	if got := Merge(domain.ArchitectureAuto, domain.ArchitectureFSD, "architecture", flags); got != domain.ArchitectureFSD {
		t.Errorf("Merge() = %v, want %v", got, domain.ArchitectureFSD)
	}
	if got := Merge(domain.StrictnessModerate, domain.StrictnessStrict, "strictness", flags); got != domain.StrictnessModerate {
		t.Errorf("Merge() = %v, want %v", got, domain.StrictnessModerate)
	}
}

func TestApplyOverrides(t *testing.T) {
	base := DefaultConfig()
	base.DisabledRules = []string{"fsd-naming-convention"}

	flags := map[string]bool{"architecture": true, "ignore": true, "max-files": true}
	merged, err := base.ApplyOverrides(Overrides{
		ArchitectureType: "clean",
		StrictnessLevel:  "strict",
		DisabledRules:    []string{"clean-usecase-isolation"},
		IgnorePatterns:   []string{"**/generated/**"},
		MaxFiles:         10,
	}, flags)
	if err != nil {
		t.Fatalf("ApplyOverrides() error = %v", err)
	}

	if merged.ArchitectureType != domain.ArchitectureClean {
		t.Errorf("ArchitectureType = %v, want clean", merged.ArchitectureType)
	}
	if merged.StrictnessLevel != domain.StrictnessModerate {
		t.Errorf("StrictnessLevel = %v, want moderate (flag not set)", merged.StrictnessLevel)
	}
	if len(merged.DisabledRules) != 1 || merged.DisabledRules[0] != "fsd-naming-convention" {
		t.Errorf("DisabledRules = %v, want base value", merged.DisabledRules)
	}
	if merged.MaxFiles != 10 {
		t.Errorf("MaxFiles = %d, want 10", merged.MaxFiles)
	}
	wantIgnore := len(base.IgnorePatterns) + 1
	if len(merged.IgnorePatterns) != wantIgnore || merged.IgnorePatterns[wantIgnore-1] != "**/generated/**" {
		t.Errorf("IgnorePatterns = %v, want defaults plus **/generated/**", merged.IgnorePatterns)
	}
	if len(base.IgnorePatterns) != wantIgnore-1 {
		t.Errorf("base config was modified")
	}
}

func TestApplyOverridesRejectsInvalid(t *testing.T) {
	_, err := DefaultConfig().ApplyOverrides(Overrides{ArchitectureType: "mvc"}, map[string]bool{"architecture": true})
	if err == nil {
		t.Fatal("expected error for unknown architecture")
	}
	if domain.ErrorCode(err) != domain.ErrCodeConfigError {
		t.Errorf("ErrorCode() = %q, want %q", domain.ErrorCode(err), domain.ErrCodeConfigError)
	}
}
