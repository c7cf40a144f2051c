package rules

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludo-technologies/archscan/domain"
)

// stubRule reports one issue per file, or fails in the configured way
type stubRule struct {
	Meta
	err     error
	panics  bool
	checked *int
}

func (r *stubRule) Check(files []domain.FileRecord) ([]domain.ValidationIssue, error) {
	if r.checked != nil {
		*r.checked++
	}
	if r.panics {
		panic("boom")
	}
	if r.err != nil {
		return nil, r.err
	}
	issues := make([]domain.ValidationIssue, 0, len(files))
	for _, f := range files {
		issues = append(issues, r.issue(f.Path, 0, "stub", ""))
	}
	return issues, nil
}

func stub(id string) *stubRule {
	return &stubRule{Meta: Meta{RuleID: id, RuleSeverity: domain.SeverityError}}
}

func quietEngine() *Engine {
	return NewEngine(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestEngine_RunConcatenatesInRuleOrder(t *testing.T) {
	files := []domain.FileRecord{{Path: "a.ts"}, {Path: "b.ts"}}

	result := quietEngine().Run(files, []Rule{stub("first"), stub("second")})

	require.Len(t, result.Issues, 4)
	assert.Equal(t, "first", result.Issues[0].Rule)
	assert.Equal(t, "first", result.Issues[1].Rule)
	assert.Equal(t, "second", result.Issues[2].Rule)
	assert.Empty(t, result.Failures)
}

func TestEngine_IsolatesFailingRules(t *testing.T) {
	files := []domain.FileRecord{{Path: "a.ts"}}
	failing := stub("failing")
	failing.err = errors.New("bad input")
	panicking := stub("panicking")
	panicking.panics = true

	result := quietEngine().Run(files, []Rule{failing, stub("ok"), panicking, stub("last")})

	require.Len(t, result.Issues, 2)
	assert.Equal(t, "ok", result.Issues[0].Rule)
	assert.Equal(t, "last", result.Issues[1].Rule)

	require.Len(t, result.Failures, 2)
	assert.Equal(t, "failing", result.Failures[0].RuleID)
	assert.Contains(t, result.Failures[0].Error, "bad input")
	assert.Equal(t, "panicking", result.Failures[1].RuleID)
	assert.Contains(t, result.Failures[1].Error, "panic: boom")
}

func TestEngine_SkipsDisabledRules(t *testing.T) {
	calls := 0
	r := stub("off")
	r.checked = &calls

	result := quietEngine().Run([]domain.FileRecord{{Path: "a.ts"}}, []Rule{WithEnabled(r, false)})

	assert.Zero(t, calls)
	assert.NotNil(t, result.Issues)
	assert.Empty(t, result.Issues)
}

func TestEngine_EmptyInput(t *testing.T) {
	assert.Empty(t, RunRules(nil, nil))
	assert.NotNil(t, RunRules(nil, DefaultRegistry().All()))
}

func TestEngine_FailureIsolationProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	files := []domain.FileRecord{{Path: "a.ts"}, {Path: "b.ts"}, {Path: "c.ts"}}

	// each element: 0 healthy, 1 returns an error, 2 panics
	properties.Property("issues of healthy rules survive failing neighbours", prop.ForAll(
		func(kinds []int) bool {
			rules := make([]Rule, 0, len(kinds))
			healthy := 0
			for i, k := range kinds {
				r := stub(string(rune('a' + i)))
				switch k {
				case 1:
					r.err = errors.New("failed")
				case 2:
					r.panics = true
				default:
					healthy++
				}
				rules = append(rules, r)
			}

			result := quietEngine().Run(files, rules)
			if len(result.Issues) != healthy*len(files) {
				return false
			}
			return len(result.Failures) == len(kinds)-healthy
		},
		gen.SliceOfN(8, gen.IntRange(0, 2)),
	))

	properties.TestingRun(t)
}
