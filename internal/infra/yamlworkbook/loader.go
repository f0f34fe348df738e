package yamlworkbook

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fahrenkrug/rust-learn-book-collections/internal/domain"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/ports"
	"gopkg.in/yaml.v3"
)

// BuiltinPath is the path reported for the embedded demo workbook.
const BuiltinPath = "builtin:demo.yaml"

//go:embed builtin/demo.yaml
var builtinDemo []byte

type Loader struct {
	maxLineBytes int
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{maxLineBytes: 64 * 1024}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

// WithMaxLineBytes bounds a single line of a plain-text command file.
func WithMaxLineBytes(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.maxLineBytes = n
		}
	}
}

var _ ports.WorkbookLoader = (*Loader)(nil)

func (l *Loader) LoadWorkbook(path string) (domain.Workbook, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Workbook{}, &domain.OpError{
			Op:   "yamlworkbook.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return decode(path, b)
}

// Builtin returns the embedded demo workbook.
func Builtin() (domain.Workbook, error) {
	return decode(BuiltinPath, builtinDemo)
}

// LoadCommandLines returns the file's lines verbatim, without line terminators.
func (l *Loader) LoadCommandLines(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlworkbook.lines",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	sc := bufio.NewScanner(bytes.NewReader(b))
	sc.Buffer(make([]byte, 0, min(4096, l.maxLineBytes)), l.maxLineBytes)

	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.OpError{
			Op:   "yamlworkbook.lines",
			Kind: domain.KindInvalidInput,
			Path: path,
			Err:  err,
		}
	}
	return lines, nil
}

// IsWorkbookPath reports whether path names a YAML workbook rather than a command list.
func IsWorkbookPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

type yamlWorkbook struct {
	Name     string            `yaml:"name"`
	Commands []string          `yaml:"commands"`
	Numbers  []int             `yaml:"numbers"`
	Text     string            `yaml:"text"`
	Expect   []yamlExpectation `yaml:"expect"`
}

type yamlExpectation struct {
	Path     string  `yaml:"path"`
	Exists   bool    `yaml:"exists"`
	Eq       *string `yaml:"eq"`
	Contains *string `yaml:"contains"`
	Matches  *string `yaml:"matches"`
	Count    *int    `yaml:"count"`
}

func decode(path string, b []byte) (domain.Workbook, error) {
	var yw yamlWorkbook
	if err := yaml.Unmarshal(b, &yw); err != nil {
		return domain.Workbook{}, &domain.OpError{
			Op:   "yamlworkbook.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return mapAndValidate(path, yw)
}

func mapAndValidate(path string, yw yamlWorkbook) (domain.Workbook, error) {
	if strings.TrimSpace(yw.Name) == "" {
		return domain.Workbook{}, invalidField(path, "name", "workbook name is required")
	}
	if len(yw.Commands) == 0 && len(yw.Numbers) == 0 && strings.TrimSpace(yw.Text) == "" {
		return domain.Workbook{}, invalidField(path, "commands", "at least one of commands, numbers or text is required")
	}

	for i, c := range yw.Commands {
		if strings.TrimSpace(c) == "" {
			return domain.Workbook{}, invalidField(path, fmt.Sprintf("commands[%d]", i), "command is empty")
		}
	}

	if len(yw.Expect) > 0 && len(yw.Commands) == 0 {
		return domain.Workbook{}, invalidField(path, "expect", "expectations need commands")
	}

	exps := make([]domain.Expectation, 0, len(yw.Expect))
	for i, e := range yw.Expect {
		field := fmt.Sprintf("expect[%d]", i)
		if strings.TrimSpace(e.Path) == "" {
			return domain.Workbook{}, invalidField(path, field+".path", "jsonpath is required")
		}
		if !e.Exists && e.Eq == nil && e.Contains == nil && e.Matches == nil && e.Count == nil {
			return domain.Workbook{}, invalidField(path, field, "at least one of exists, eq, contains, matches or count is required")
		}
		exps = append(exps, domain.Expectation{
			Path:     strings.TrimSpace(e.Path),
			Exists:   e.Exists,
			Eq:       e.Eq,
			Contains: e.Contains,
			Matches:  e.Matches,
			Count:    e.Count,
		})
	}

	return domain.Workbook{
		Name:     yw.Name,
		Path:     path,
		Commands: yw.Commands,
		Numbers:  yw.Numbers,
		Text:     yw.Text,
		Expect:   exps,
	}, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlworkbook.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
