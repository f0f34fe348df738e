package domain

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

const (
	keywordAdd     = "add"
	prepositionTo  = "to"
	commandTokens  = 4
	keywordIndex   = 0
	nameIndex      = 1
	connectorIndex = 2
	deptIndex      = 3
)

// Parse failures. A *ParseError matches exactly one of these and ErrInvalidCommand.
var (
	ErrInvalidKeyword     = errors.New("invalid keyword")
	ErrInvalidPreposition = errors.New("invalid preposition")
	ErrIncomplete         = errors.New("incomplete command")
)

// ParseErrorKind classifies why a command was rejected.
type ParseErrorKind string

const (
	ParseInvalidKeyword     ParseErrorKind = "invalid_keyword"
	ParseInvalidPreposition ParseErrorKind = "invalid_preposition"
	ParseIncomplete         ParseErrorKind = "incomplete"
)

// ParseError reports a command that does not follow "Add <Name> to <Department>".
type ParseError struct {
	Kind  ParseErrorKind
	Input string
	// Token is the offending token; empty for ParseIncomplete.
	Token string
	// Tokens is the number of whitespace-separated tokens found.
	Tokens int
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case ParseIncomplete:
		return fmt.Sprintf("%v: want %d tokens, got %d in %q", ErrIncomplete, commandTokens, e.Tokens, e.Input)
	case ParseInvalidKeyword:
		return fmt.Sprintf("%v %q in %q (expected %q)", ErrInvalidKeyword, e.Token, e.Input, "Add")
	case ParseInvalidPreposition:
		return fmt.Sprintf("%v %q in %q (expected %q)", ErrInvalidPreposition, e.Token, e.Input, "to")
	default:
		return fmt.Sprintf("%v: %q", ErrInvalidCommand, e.Input)
	}
}

// Is lets errors.Is match the kind sentinel and ErrInvalidCommand.
func (e *ParseError) Is(target error) bool {
	if e == nil {
		return false
	}
	if target == ErrInvalidCommand {
		return true
	}
	switch e.Kind {
	case ParseIncomplete:
		return target == ErrIncomplete
	case ParseInvalidKeyword:
		return target == ErrInvalidKeyword
	case ParseInvalidPreposition:
		return target == ErrInvalidPreposition
	}
	return false
}

// AddRequest is a parsed "Add <Name> to <Department>" command.
// It is only produced by ParseCommand.
type AddRequest struct {
	name       string
	department string
}

func (r AddRequest) Name() string       { return r.name }
func (r AddRequest) Department() string { return r.department }

func (r AddRequest) String() string {
	return fmt.Sprintf("add %s to %s", r.name, r.department)
}

// ParseCommand turns free text such as "Add Sally to Engineering" into an AddRequest.
//
// The token count is checked before any token, so every input with fewer
// than four tokens is ParseIncomplete. Periods are removed from the keyword
// only; name and department are kept verbatim ("Sales." stays "Sales.").
// Tokens after the department are ignored.
func ParseCommand(input string) (AddRequest, error) {
	tokens := strings.Fields(input)
	if len(tokens) < commandTokens {
		return AddRequest{}, &ParseError{Kind: ParseIncomplete, Input: input, Tokens: len(tokens)}
	}

	keyword := strings.ReplaceAll(tokens[keywordIndex], ".", "")
	if !equalFold(keyword, keywordAdd) {
		return AddRequest{}, &ParseError{
			Kind:   ParseInvalidKeyword,
			Input:  input,
			Token:  tokens[keywordIndex],
			Tokens: len(tokens),
		}
	}

	if !equalFold(tokens[connectorIndex], prepositionTo) {
		return AddRequest{}, &ParseError{
			Kind:   ParseInvalidPreposition,
			Input:  input,
			Token:  tokens[connectorIndex],
			Tokens: len(tokens),
		}
	}

	return AddRequest{
		name:       tokens[nameIndex],
		department: tokens[deptIndex],
	}, nil
}

func equalFold(a, b string) bool {
	// Casers carry state; one per call.
	fold := cases.Fold()
	return fold.String(a) == fold.String(b)
}
