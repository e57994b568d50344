// Package inflector turns plural English words into their singular candidates.
package inflector

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
)

// Singularizer returns the candidate singular forms of a word.
// A word no rule applies to is returned unchanged.
type Singularizer interface {
	Singularize(word string) []string
}

// Func adapts a plain function to a Singularizer.
type Func func(word string) []string

// Singularize implements Singularizer.
func (f Func) Singularize(word string) []string {
	return f(word)
}

// irregulars completes the default English ruleset with plurals it lacks.
var irregulars = [][2]string{
	{"foot", "feet"},
	{"tooth", "teeth"},
	{"goose", "geese"},
	{"mouse", "mice"},
	{"criterion", "criteria"},
}

// Inflector is a Singularizer backed by an inflect ruleset.
// Each Inflector owns its ruleset, so irregulars added to one
// never leak into another.
type Inflector struct {
	rules *inflect.Ruleset
}

// Option configures an Inflector.
type Option func(*Inflector)

// WithIrregular registers an irregular singular/plural pair.
func WithIrregular(singular, plural string) Option {
	return func(in *Inflector) {
		in.rules.AddIrregular(strings.ToLower(singular), strings.ToLower(plural))
	}
}

// WithUncountable registers a word that has no distinct singular.
func WithUncountable(word string) Option {
	return func(in *Inflector) {
		in.rules.AddUncountable(strings.ToLower(word))
	}
}

// New returns an Inflector with the default English rules.
func New(opts ...Option) *Inflector {
	in := &Inflector{rules: inflect.NewDefaultRuleset()}
	for _, pair := range irregulars {
		in.rules.AddIrregular(pair[0], pair[1])
	}

	for _, opt := range opts {
		opt(in)
	}

	return in
}

// Singularize implements Singularizer.
// Rules match on the lower-cased word; a leading capital is restored.
func (in *Inflector) Singularize(word string) []string {
	if word == "" {
		return []string{word}
	}

	singular := in.rules.Singularize(strings.ToLower(word))
	if singular == strings.ToLower(word) {
		return []string{word}
	}

	first, _ := utf8.DecodeRuneInString(word)
	if unicode.IsUpper(first) {
		singular = upperFirst(singular)
	}

	return []string{singular}
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
