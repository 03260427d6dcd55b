// Package conformance runs YAML fixture suites against the value model and
// the async machinery. Suites are the shared contract between this runtime
// and the transpiler's other backends: every backend must produce the same
// outcomes for the same fixtures.
package conformance

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"ts2go/runtime-go/pkg/runtime"
)

// Suite is one fixture file: a named list of cases.
type Suite struct {
	Name        string `yaml:"suite"`
	Description string `yaml:"description"`
	Cases       []Case `yaml:"cases"`

	// Path is where the suite was loaded from; not part of the document.
	Path string `yaml:"-"`
}

// Case is a single check. Op selects the operation; the operand fields used
// depend on it (Left/Right for binary operators, Value for unary
// conversions, Start/End for slice, Separator for join).
type Case struct {
	Name      string     `yaml:"name"`
	Op        string     `yaml:"op"`
	Left      *ValueSpec `yaml:"left"`
	Right     *ValueSpec `yaml:"right"`
	Value     *ValueSpec `yaml:"value"`
	Start     *int       `yaml:"start"`
	End       *int       `yaml:"end"`
	Separator string     `yaml:"separator"`
	Key       string     `yaml:"key"`
	Want      *ValueSpec `yaml:"want"`
}

// ValueSpec is the YAML description of a dynamic value. Exactly one field
// should be set; an empty spec denotes undefined.
type ValueSpec struct {
	IsUndefined bool         `yaml:"undefined"`
	IsNull      bool         `yaml:"null"`
	Bool        *bool        `yaml:"bool"`
	Number      *float64     `yaml:"number"`
	Text        *string      `yaml:"text"`
	Sequence    []*ValueSpec `yaml:"sequence"`
	Record      []RecordPair `yaml:"record"`
}

// RecordPair is one ordered key/value entry of a record spec.
type RecordPair struct {
	Key   string     `yaml:"key"`
	Value *ValueSpec `yaml:"value"`
}

// Build converts the spec into a runtime value.
func (s *ValueSpec) Build() runtime.Value {
	switch {
	case s == nil, s.IsUndefined:
		return runtime.Undefined
	case s.IsNull:
		return runtime.Null
	case s.Bool != nil:
		return runtime.NewBool(*s.Bool)
	case s.Number != nil:
		return runtime.NewNumber(*s.Number)
	case s.Text != nil:
		return runtime.NewText(*s.Text)
	case s.Sequence != nil:
		seq := runtime.NewSequence(nil)
		for _, element := range s.Sequence {
			seq.Push(element.Build())
		}
		return seq
	case s.Record != nil:
		record := runtime.NewRecord()
		for _, pair := range s.Record {
			record.Set(pair.Key, pair.Value.Build())
		}
		return record
	default:
		return runtime.Undefined
	}
}

// LoadSuite parses one fixture file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("conformance: read suite %s: %w", path, err)
	}
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("conformance: parse suite %s: %w", path, err)
	}
	if strings.TrimSpace(suite.Name) == "" {
		return nil, fmt.Errorf("conformance: suite %s: missing suite name", path)
	}
	for i, c := range suite.Cases {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("conformance: suite %s: case %d: missing name", path, i)
		}
		if strings.TrimSpace(c.Op) == "" {
			return nil, fmt.Errorf("conformance: suite %s: case %q: missing op", path, c.Name)
		}
	}
	suite.Path = path
	return &suite, nil
}

// LoadSuites loads every *.yaml suite under dir, sorted by file name so
// runs are deterministic.
func LoadSuites(dir string) ([]*Suite, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("conformance: scan %s: %w", dir, err)
	}
	sort.Strings(matches)
	suites := make([]*Suite, 0, len(matches))
	for _, path := range matches {
		if filepath.Base(path) == manifestFileName {
			continue
		}
		suite, err := LoadSuite(path)
		if err != nil {
			return nil, err
		}
		suites = append(suites, suite)
	}
	if len(suites) == 0 {
		return nil, fmt.Errorf("conformance: no suites found in %s", dir)
	}
	return suites, nil
}
