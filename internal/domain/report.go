package domain

// RejectedCommand is an input line the parser refused.
type RejectedCommand struct {
	Line    int            `json:"line" yaml:"line"`
	Input   string         `json:"input" yaml:"input"`
	Kind    ParseErrorKind `json:"kind" yaml:"kind"`
	Message string         `json:"message" yaml:"message"`
}

// ApplyReport summarizes one batch of commands applied to a roster.
type ApplyReport struct {
	Applied  int                 `json:"applied" yaml:"applied"`
	Skipped  int                 `json:"skipped" yaml:"skipped"`
	Rejected []RejectedCommand   `json:"rejected" yaml:"rejected"`
	Roster   []DepartmentMembers `json:"roster" yaml:"roster"`
}

// Failed reports whether any command was rejected.
func (r ApplyReport) Failed() bool {
	return len(r.Rejected) > 0
}

// NumberSummary holds the descriptive statistics of a list of integers.
type NumberSummary struct {
	Count     int     `json:"count" yaml:"count"`
	Sum       int     `json:"sum" yaml:"sum"`
	Mean      int     `json:"mean" yaml:"mean"`
	FloatMean float64 `json:"float_mean" yaml:"float_mean"`
	Median    int     `json:"median" yaml:"median"`
	Mode      int     `json:"mode" yaml:"mode"`
	ModeCount int     `json:"mode_count" yaml:"mode_count"`
}

// Expectation is a check on the roster document ({"Dept": [members...]})
// addressed by a JSONPath expression. Every non-nil check must pass.
type Expectation struct {
	Path     string
	Exists   bool
	Eq       *string
	Contains *string
	Matches  *string
	// Count is the expected number of elements of an array or object result.
	Count *int
}

// CheckResult is the outcome of one Expectation check.
type CheckResult struct {
	Name    string `json:"name" yaml:"name"`
	Path    string `json:"path" yaml:"path"`
	Passed  bool   `json:"passed" yaml:"passed"`
	Message string `json:"message" yaml:"message"`
}

// Workbook bundles the inputs of the three exercises.
type Workbook struct {
	Name     string
	Path     string
	Commands []string
	Numbers  []int
	Text     string
	Expect   []Expectation
}

// WorkbookReport holds the outputs of running a Workbook. Sections whose
// input was absent are nil or empty.
type WorkbookReport struct {
	Name       string         `json:"name" yaml:"name"`
	Roster     *ApplyReport   `json:"roster,omitempty" yaml:"roster,omitempty"`
	Summary    *NumberSummary `json:"summary,omitempty" yaml:"summary,omitempty"`
	Translated string         `json:"translated,omitempty" yaml:"translated,omitempty"`
	Checks     []CheckResult  `json:"checks,omitempty" yaml:"checks,omitempty"`
}

// FailedChecks counts the checks that did not pass.
func (r WorkbookReport) FailedChecks() int {
	n := 0
	for _, c := range r.Checks {
		if !c.Passed {
			n++
		}
	}
	return n
}

// WorkspaceSpec describes where `collections init` writes its files.
type WorkspaceSpec struct {
	Root string
}
