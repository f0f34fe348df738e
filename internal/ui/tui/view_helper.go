package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fahrenkrug/rust-learn-book-collections/internal/domain"
)

const maxNameWidth = 40

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderCompany(t Theme, snapshot []domain.DepartmentMembers) string {
	if len(snapshot) == 0 {
		return t.Help.Render("(no employees yet)")
	}

	var b strings.Builder
	for i, d := range snapshot {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderDepartment(t, d.Department, d.Members))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderDepartment(t Theme, department string, members []string) string {
	var b strings.Builder
	b.WriteString(t.Department.Render(fmt.Sprintf("%s (%d)", clampString(department, maxNameWidth), len(members))))
	b.WriteString("\n")

	if len(members) == 0 {
		b.WriteString(t.Help.Render("  (no members)"))
		b.WriteString("\n")
		return b.String()
	}
	for _, name := range members {
		b.WriteString("  - ")
		b.WriteString(clampString(name, maxNameWidth))
		b.WriteString("\n")
	}
	return b.String()
}
