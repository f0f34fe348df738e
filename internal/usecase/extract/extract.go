package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/fahrenkrug/rust-learn-book-collections/internal/domain"
)

// Document renders a roster snapshot as the JSON document Select queries:
// an object keyed by department, each holding the sorted member array.
//
//	{"Engineering": ["Timo", "TimosBrother"], "Sales.": ["Amir"]}
func Document(snapshot []domain.DepartmentMembers) ([]byte, error) {
	doc := make(map[string][]string, len(snapshot))
	for _, d := range snapshot {
		doc[d.Department] = d.Members
	}
	return json.Marshal(doc)
}

// Select evaluates a JSONPath expression against the snapshot document and
// renders the match as text. Single values print bare; arrays and objects
// print as compact JSON.
//
// Policy:
// - Empty expression -> invalid input.
// - Expression error (syntax, unknown key) -> invalid input.
// - Match that is null or empty -> not found.
func Select(snapshot []domain.DepartmentMembers, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", selectErr(domain.KindInvalidInput, errors.New("empty jsonpath expression"))
	}

	body, err := Document(snapshot)
	if err != nil {
		return "", selectErr(domain.KindExecution, err)
	}

	doc, err := parseJSON(body)
	if err != nil {
		return "", selectErr(domain.KindExecution, err)
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return "", selectErr(domain.KindInvalidInput, fmt.Errorf("jsonpath %s: %w", expr, err))
	}

	if isEmptyValue(val) {
		return "", selectErr(domain.KindNotFound, fmt.Errorf("jsonpath %s: no value found: %w", expr, domain.ErrNotFound))
	}

	return toString(val)
}

func selectErr(kind domain.ErrorKind, err error) error {
	return &domain.OpError{
		Op:   "extract.select",
		Kind: kind,
		Err:  err,
	}
}

func parseJSON(body []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
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

func toString(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case float64, bool, int, int64, uint64:
		return fmt.Sprint(t), nil
	case []any, map[string]any:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return fmt.Sprint(t), nil
	}
}
