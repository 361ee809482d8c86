package harness

// RunResult is the outcome of one backend run of a scenario.
type RunResult struct {
	ID         string `json:"id"`
	Backend    string `json:"backend"`
	Optimized  bool   `json:"optimized"`
	Output     string `json:"output"`
	ErrorKind  string `json:"error_kind,omitempty"`
	Steps      int64  `json:"steps"`
	InputBytes int64  `json:"input_bytes"` // bytes the program read
}

// Result is the outcome of a test scenario execution.
type Result struct {
	// Pass indicates overall test success.
	// True if every run matched the expectation.
	Pass bool `json:"pass"`

	// Runs lists every backend run in execution order.
	Runs []RunResult `json:"runs"`

	// Errors contains mismatch descriptions.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Runs:   []RunResult{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
