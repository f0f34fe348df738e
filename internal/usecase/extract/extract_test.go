package extract

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/fahrenkrug/rust-learn-book-collections/internal/domain"
)

func sampleSnapshot() []domain.DepartmentMembers {
	return []domain.DepartmentMembers{
		{Department: "Engineering", Members: []string{"Timo", "TimosBrother"}},
		{Department: "Marketing", Members: []string{"Lisa"}},
		{Department: "Sales.", Members: []string{"Amir"}},
	}
}

func TestDocument_KeyedByDepartment(t *testing.T) {
	b, err := Document(sampleSnapshot())
	if err != nil {
		t.Fatalf("Document error: %v", err)
	}

	var got map[string][]string
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 departments, got %d", len(got))
	}
	if got["Sales."][0] != "Amir" {
		t.Fatalf("expected Sales. to hold Amir, got %v", got["Sales."])
	}
}

func TestSelect_Department(t *testing.T) {
	got, err := Select(sampleSnapshot(), "$.Engineering")
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if got != `["Timo","TimosBrother"]` {
		t.Fatalf("unexpected selection %q", got)
	}
}

func TestSelect_SingleMember(t *testing.T) {
	got, err := Select(sampleSnapshot(), "$.Engineering[1]")
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if got != "TimosBrother" {
		t.Fatalf("expected TimosBrother, got %q", got)
	}
}

func TestSelect_BracketNotationForDottedDepartment(t *testing.T) {
	got, err := Select(sampleSnapshot(), `$["Sales."][0]`)
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if got != "Amir" {
		t.Fatalf("expected Amir, got %q", got)
	}
}

func TestSelect_EmptyExpression(t *testing.T) {
	_, err := Select(sampleSnapshot(), "  ")
	if err == nil {
		t.Fatal("expected error for empty expression")
	}
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected KindInvalidInput, got %v", err)
	}
}

func TestSelect_InvalidExpression(t *testing.T) {
	_, err := Select(sampleSnapshot(), "$.Engineering[")
	if err == nil {
		t.Fatal("expected error for invalid expression")
	}
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected KindInvalidInput, got %v", err)
	}
}

func TestSelect_UnknownDepartment(t *testing.T) {
	_, err := Select(sampleSnapshot(), "$.Finance")
	if err == nil {
		t.Fatal("expected error for unknown department")
	}
}

func TestSelect_EmptyRoster(t *testing.T) {
	_, err := Select(nil, "$")
	if err == nil {
		t.Fatal("expected error for empty document")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
