// Package expect checks a roster snapshot against workbook expectations
// written as JSONPath expressions over the roster document.
package expect

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/fahrenkrug/rust-learn-book-collections/internal/domain"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/usecase/extract"
)

// Evaluate runs every check of every expectation, in order. A snapshot that
// cannot be encoded fails all checks rather than returning an error.
func Evaluate(snapshot []domain.DepartmentMembers, exps []domain.Expectation) []domain.CheckResult {
	if len(exps) == 0 {
		return nil
	}

	var out []domain.CheckResult

	doc, err := document(snapshot)
	if err != nil {
		for _, e := range exps {
			out = append(out, checks(e, nil, fmt.Errorf("roster document: %w", err))...)
		}
		return out
	}

	for _, e := range exps {
		val, getErr := jsonpath.Get(e.Path, doc)
		out = append(out, checks(e, val, getErr)...)
	}
	return out
}

func document(snapshot []domain.DepartmentMembers) (any, error) {
	b, err := extract.Document(snapshot)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func checks(e domain.Expectation, val any, getErr error) []domain.CheckResult {
	var out []domain.CheckResult
	if e.Exists {
		out = append(out, checkExists(e.Path, val, getErr))
	}
	if e.Eq != nil {
		out = append(out, checkString(e.Path, "eq", val, getErr, *e.Eq, func(s string) bool { return s == *e.Eq }))
	}
	if e.Contains != nil {
		out = append(out, checkString(e.Path, "contains", val, getErr, *e.Contains, func(s string) bool { return strings.Contains(s, *e.Contains) }))
	}
	if e.Matches != nil {
		out = append(out, checkMatches(e.Path, val, getErr, *e.Matches))
	}
	if e.Count != nil {
		out = append(out, checkCount(e.Path, val, getErr, *e.Count))
	}
	return out
}

func result(name, path string, passed bool, format string, args ...any) domain.CheckResult {
	return domain.CheckResult{
		Name:    name,
		Path:    path,
		Passed:  passed,
		Message: fmt.Sprintf(format, args...),
	}
}

func checkExists(path string, val any, getErr error) domain.CheckResult {
	if getErr != nil {
		return result("exists", path, false, "%s: %v", path, getErr)
	}
	if isEmpty(val) {
		return result("exists", path, false, "%s: expected a value, got nothing", path)
	}
	return result("exists", path, true, "%s exists", path)
}

func checkString(path, name string, val any, getErr error, want string, ok func(string) bool) domain.CheckResult {
	if getErr != nil {
		return result(name, path, false, "%s: %v", path, getErr)
	}
	s, err := toString(val)
	if err != nil {
		return result(name, path, false, "%s: %v", path, err)
	}
	if ok(s) {
		return result(name, path, true, "%s %s %q", path, name, want)
	}
	return result(name, path, false, "%s: expected %s %q, got %q", path, name, want, s)
}

func checkMatches(path string, val any, getErr error, pattern string) domain.CheckResult {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return result("matches", path, false, "%s: invalid regex %q: %v", path, pattern, err)
	}
	return checkString(path, "matches", val, getErr, pattern, re.MatchString)
}

func checkCount(path string, val any, getErr error, want int) domain.CheckResult {
	if getErr != nil {
		return result("count", path, false, "%s: %v", path, getErr)
	}

	var got int
	switch t := val.(type) {
	case []any:
		got = len(t)
	case map[string]any:
		got = len(t)
	default:
		return result("count", path, false, "%s: value of type %T has no count", path, val)
	}

	if got == want {
		return result("count", path, true, "%s has %d", path, got)
	}
	return result("count", path, false, "%s: expected %d, got %d", path, want, got)
}

// toString renders scalars as-is and collections as compact JSON.
func toString(val any) (string, error) {
	switch v := val.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", fmt.Errorf("value is null")
	case []any, map[string]any:
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return fmt.Sprint(v), nil
	}
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}
