package conformance

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"ts2go/runtime-go/pkg/runtime"
)

// CaseResult records one case's outcome.
type CaseResult struct {
	Suite  string
	Case   string
	Passed bool
	Detail string
}

// Report aggregates a run. RunID is a fresh UUID so reports from repeated
// runs can be told apart when archived.
type Report struct {
	RunID   string
	Results []CaseResult
	Passed  int
	Failed  int
}

// RunDir loads every suite under dir and executes it.
func RunDir(dir string) (*Report, error) {
	suites, err := LoadSuites(dir)
	if err != nil {
		return nil, err
	}
	return Run(suites), nil
}

// Run executes the given suites.
func Run(suites []*Suite) *Report {
	report := &Report{RunID: uuid.NewString()}
	for _, suite := range suites {
		for _, c := range suite.Cases {
			result := runCase(suite, c)
			report.Results = append(report.Results, result)
			if result.Passed {
				report.Passed++
			} else {
				report.Failed++
			}
		}
	}
	return report
}

func runCase(suite *Suite, c Case) CaseResult {
	got, err := evaluate(c)
	result := CaseResult{Suite: suite.Name, Case: c.Name}
	if err != nil {
		result.Detail = err.Error()
		return result
	}
	want := c.Want.Build()
	if !StructuralEqual(got, want) {
		result.Detail = fmt.Sprintf("got %s, want %s", runtime.Inspect(got), runtime.Inspect(want))
		return result
	}
	result.Passed = true
	return result
}

func evaluate(c Case) (runtime.Value, error) {
	switch c.Op {
	case "add":
		return runtime.Add(c.Left.Build(), c.Right.Build()), nil
	case "sub":
		return runtime.Sub(c.Left.Build(), c.Right.Build()), nil
	case "mul":
		return runtime.Mul(c.Left.Build(), c.Right.Build()), nil
	case "div":
		return runtime.Div(c.Left.Build(), c.Right.Build()), nil
	case "mod":
		return runtime.Mod(c.Left.Build(), c.Right.Build()), nil
	case "equals":
		return runtime.NewBool(runtime.Equals(c.Left.Build(), c.Right.Build())), nil
	case "to_text":
		return runtime.NewText(runtime.ToText(c.Value.Build())), nil
	case "to_number":
		return runtime.NewNumber(runtime.ToNumber(c.Value.Build())), nil
	case "to_bool":
		return runtime.NewBool(runtime.ToBool(c.Value.Build())), nil
	case "typeof":
		return runtime.NewText(runtime.TypeOf(c.Value.Build())), nil
	case "property":
		return runtime.Property(c.Value.Build(), runtime.NewText(c.Key)), nil
	case "slice":
		seq, err := runtime.AsSequence(c.Value.Build())
		if err != nil {
			return nil, err
		}
		end := seq.Length()
		if c.End != nil {
			end = *c.End
		}
		start := 0
		if c.Start != nil {
			start = *c.Start
		}
		return seq.Slice(start, end), nil
	case "join":
		seq, err := runtime.AsSequence(c.Value.Build())
		if err != nil {
			return nil, err
		}
		separator := c.Separator
		if separator == "" {
			separator = ","
		}
		return runtime.NewText(seq.Join(separator)), nil
	default:
		return nil, fmt.Errorf("conformance: unknown op %q", c.Op)
	}
}

// StructuralEqual compares by shape rather than identity, because fixture
// expectations are freshly built values. NaN matches NaN here — a fixture
// must be able to state a NaN expectation.
func StructuralEqual(a, b runtime.Value) bool {
	if runtime.IsUndefined(a) || runtime.IsUndefined(b) {
		return runtime.IsUndefined(a) && runtime.IsUndefined(b)
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch left := a.(type) {
	case runtime.NumberValue:
		right := b.(runtime.NumberValue)
		if math.IsNaN(left.Val) && math.IsNaN(right.Val) {
			return true
		}
		return left.Val == right.Val
	case *runtime.SequenceValue:
		right := b.(*runtime.SequenceValue)
		if left.Length() != right.Length() {
			return false
		}
		for i := range left.Elements {
			if !StructuralEqual(left.Elements[i], right.Elements[i]) {
				return false
			}
		}
		return true
	case *runtime.RecordValue:
		right := b.(*runtime.RecordValue)
		leftEntries, rightEntries := left.OwnEntries(), right.OwnEntries()
		if len(leftEntries) != len(rightEntries) {
			return false
		}
		for i := range leftEntries {
			if leftEntries[i].Key != rightEntries[i].Key {
				return false
			}
			if !StructuralEqual(leftEntries[i].Value, rightEntries[i].Value) {
				return false
			}
		}
		return true
	default:
		return runtime.Equals(a, b)
	}
}
