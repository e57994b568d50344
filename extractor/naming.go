package extractor

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// compileMethodPattern builds "^(prefix|prefix|...)(.+)$", case-insensitive.
// Alternatives are tried in order: accessors first, then mutators.
func compileMethodPattern(accessors, mutators []string) *regexp.Regexp {
	alternatives := make([]string, 0, len(accessors)+len(mutators))
	for _, p := range append(append([]string(nil), accessors...), mutators...) {
		alternatives = append(alternatives, regexp.QuoteMeta(p))
	}

	if len(alternatives) == 0 {
		return nil
	}

	return regexp.MustCompile(`(?i)^(` + strings.Join(alternatives, "|") + `)(.+)$`)
}

// propertyFromMethod returns the property a method name addresses.
//
// For array mutators the remainder and its singular forms are compared with
// the singular forms of each known field; on a match the field's exact name
// is returned ("addAnalysis" resolves to "analyses").
func (e *ReflectionExtractor) propertyFromMethod(methodName string, knownFields []string) (string, bool) {
	if e.methodPattern == nil {
		return "", false
	}

	matches := e.methodPattern.FindStringSubmatch(methodName)
	if matches == nil {
		return "", false
	}

	prefix, remainder := matches[1], matches[2]
	if !e.isArrayMutatorPrefix(prefix) {
		return remainder, true
	}

	// Rulesets can mangle words that are already singular ("analysis").
	names := append([]string{remainder}, e.singularizer.Singularize(remainder)...)

	for _, field := range knownFields {
		for _, singular := range e.singularizer.Singularize(field) {
			for _, name := range names {
				if strings.EqualFold(singular, name) {
					return field, true
				}
			}
		}
	}

	return remainder, true
}

// startsWithAcronym reports whether name begins with the configured run of
// upper-case letters.
func (e *ReflectionExtractor) startsWithAcronym(name string) bool {
	if e.acronymLength == 0 {
		return false
	}

	n := 0
	for _, r := range name {
		if r < 'A' || r > 'Z' {
			break
		}
		n++
		if n >= e.acronymLength {
			return true
		}
	}

	return false
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}
