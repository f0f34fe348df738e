package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fahrenkrug/rust-learn-book-collections/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

const usage = "Add <Name> to <Department>"

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var pe *domain.ParseError
	if errors.As(err, &pe) {
		switch pe.Kind {
		case domain.ParseInvalidKeyword:
			return "Unknown command " + quote(pe.Token) + " (try " + usage + ")"
		case domain.ParseInvalidPreposition:
			return "Expected \"to\" after the name, got " + quote(pe.Token)
		case domain.ParseIncomplete:
			return "Incomplete command (usage: " + usage + ")"
		}
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "workspacefinder.findroot") {
				return "Workspace not found"
			}
			if strings.TrimSpace(oe.Path) != "" {
				return "File not found: " + filepath.Base(oe.Path)
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}

			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid workbook " + base

		case domain.KindInvalidInput:
			return "Invalid input"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func quote(s string) string {
	return "\"" + clampString(s, maxNameWidth) + "\""
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
