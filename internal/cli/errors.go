package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"property-info/internal/match"
)

// notFoundError reports an unknown type or property along with close names.
type notFoundError struct {
	kind        string
	name        string
	suggestions []string
	err         error
}

func (e *notFoundError) Error() string {
	msg := fmt.Sprintf("%s %q not found", e.kind, e.name)
	if len(e.suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean: %s?)", strings.Join(e.suggestions, ", "))
	}

	return msg
}

func (e *notFoundError) Unwrap() error {
	return e.err
}

// Format renders the error for a terminal.
//
//	Error: type "Articel" not found
//	   Did you mean: property-info/fixtures.Article?
func (e *notFoundError) Format() string {
	var b strings.Builder

	color.New(color.FgRed, color.Bold).Fprintf(&b, "Error: %s %q not found\n", e.kind, e.name)

	if len(e.suggestions) > 0 {
		color.New(color.FgYellow).Fprintf(&b, "   Did you mean: %s?\n", strings.Join(e.suggestions, ", "))
	}

	return b.String()
}

func suggest(name string, candidates []string) []string {
	return match.Suggest(name, candidates)
}
