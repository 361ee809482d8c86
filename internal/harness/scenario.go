package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/bfc/internal/backend"
	"github.com/roach88/bfc/internal/compiler"
	"github.com/roach88/bfc/internal/engine"
	"github.com/roach88/bfc/internal/ir"
)

// DefaultMaxSteps bounds every scenario run that does not set max_steps.
const DefaultMaxSteps = 1_000_000

// Scenario defines a conformance test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Source is the program text. Exactly one of Source and File is set.
	Source string `yaml:"source,omitempty"`

	// File is a path to the program, relative to the scenario file.
	File string `yaml:"file,omitempty"`

	// Input is fed to the program's reads.
	Input string `yaml:"input,omitempty"`

	// Expect is checked against every run.
	Expect Expect `yaml:"expect"`

	// Backends restricts the backends run. Empty means all executable ones.
	Backends []string `yaml:"backends,omitempty"`

	// MaxSteps is the step quota per run. 0 means DefaultMaxSteps.
	MaxSteps int64 `yaml:"max_steps,omitempty"`
}

// Expect specifies expected run behavior.
type Expect struct {
	// Output is the exact byte sequence written.
	Output string `yaml:"output"`

	// Error is the expected error kind (for example EMPTY_INPUT), empty
	// for a clean exit.
	Error string `yaml:"error,omitempty"`
}

var knownErrorKinds = []string{
	string(engine.ErrCodeEmptyInput),
	string(engine.ErrCodeIO),
	string(engine.ErrCodeIndexOutOfBounds),
	string(engine.ErrCodeNestingTooDeep),
	engine.KindStepsExceeded,
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
// A relative File is resolved against the scenario's directory.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	s, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}

	if s.File != "" && !filepath.IsAbs(s.File) {
		s.File = filepath.Join(filepath.Dir(path), s.File)
	}
	return s, nil
}

// ParseScenario decodes a scenario from YAML with strict field validation.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadScenarios loads every *.yaml and *.yml file in dir, sorted by path.
func LoadScenarios(dir string) ([]*Scenario, error) {
	var paths []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("scan scenarios: %w", err)
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	switch {
	case s.Source != "" && s.File != "":
		return fmt.Errorf("source and file are mutually exclusive")
	case s.Source == "" && s.File == "":
		return fmt.Errorf("one of source or file is required")
	}

	if s.Expect.Error != "" && !slices.Contains(knownErrorKinds, s.Expect.Error) {
		return fmt.Errorf("expect.error: unknown error kind %q", s.Expect.Error)
	}

	if s.MaxSteps < 0 {
		return fmt.Errorf("max_steps must be non-negative")
	}

	for i, b := range s.Backends {
		if !slices.Contains(backend.Executable(), b) {
			return fmt.Errorf("backends[%d]: unknown backend %q", i, b)
		}
	}

	return nil
}

// Program builds the scenario's program.
func (s *Scenario) Program() (ir.Program, error) {
	if s.File == "" {
		return compiler.BuildString(s.Source)
	}
	src, err := os.ReadFile(s.File)
	if err != nil {
		return nil, fmt.Errorf("read program: %w", err)
	}
	return compiler.Build(src, compiler.WithFilename(s.File))
}

func (s *Scenario) backends() []string {
	if len(s.Backends) == 0 {
		return backend.Executable()
	}
	return s.Backends
}

func (s *Scenario) maxSteps() int64 {
	if s.MaxSteps == 0 {
		return DefaultMaxSteps
	}
	return s.MaxSteps
}
