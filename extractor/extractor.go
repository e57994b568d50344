package extractor

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"property-info/inflector"
	"property-info/introspect"
	"property-info/typeinfo"
)

// DefaultMutatorPrefixes returns the default mutator prefixes.
func DefaultMutatorPrefixes() []string { return []string{"add", "remove", "set"} }

// DefaultAccessorPrefixes returns the default accessor prefixes.
func DefaultAccessorPrefixes() []string { return []string{"is", "can", "get", "has"} }

// DefaultArrayMutatorPrefixes returns the default array-mutator prefixes.
func DefaultArrayMutatorPrefixes() []string { return []string{"add", "remove"} }

// DefaultAcronymLength is the number of leading upper-case letters that keeps
// a method-derived property name from being lower-cased (e.g. "DOB").
const DefaultAcronymLength = 2

// maxParentDepth bounds parent-chain walks.
const maxParentDepth = 64

// PropertyListExtractor lists the properties of a type.
type PropertyListExtractor interface {
	Properties(class string, opts ...ContextOption) []string
}

// PropertyTypeExtractor infers the types of a property.
type PropertyTypeExtractor interface {
	Types(class, property string, opts ...ContextOption) []typeinfo.Type
}

// PropertyAccessExtractor reports whether a property can be read or written.
type PropertyAccessExtractor interface {
	IsReadable(class, property string, opts ...ContextOption) bool
	IsWritable(class, property string, opts ...ContextOption) bool
}

// PropertyInitializableExtractor reports whether a property is set through the constructor.
type PropertyInitializableExtractor interface {
	IsInitializable(class, property string, opts ...ContextOption) (initializable, ok bool)
}

var (
	_ PropertyListExtractor          = (*ReflectionExtractor)(nil)
	_ PropertyTypeExtractor          = (*ReflectionExtractor)(nil)
	_ PropertyAccessExtractor        = (*ReflectionExtractor)(nil)
	_ PropertyInitializableExtractor = (*ReflectionExtractor)(nil)
)

// ReflectionExtractor infers property metadata from the structure of a type:
// accessor and mutator naming conventions, annotations, constructor
// parameters and default values.
//
// The configuration is fixed at construction; an extractor is safe for
// concurrent use as long as its Describer is.
type ReflectionExtractor struct {
	describer    introspect.Describer
	singularizer inflector.Singularizer
	logger       *zap.Logger

	mutatorPrefixes       []string
	accessorPrefixes      []string
	arrayMutatorPrefixes  []string
	constructorExtraction bool
	acronymLength         int

	methodPattern *regexp.Regexp // nil when no prefix is configured
}

// Option configures a ReflectionExtractor.
type Option func(*ReflectionExtractor)

// WithMutatorPrefixes replaces the mutator prefixes. No argument disables mutators.
func WithMutatorPrefixes(prefixes ...string) Option {
	return func(e *ReflectionExtractor) { e.mutatorPrefixes = dedupe(prefixes) }
}

// WithAccessorPrefixes replaces the accessor prefixes. No argument disables accessors.
func WithAccessorPrefixes(prefixes ...string) Option {
	return func(e *ReflectionExtractor) { e.accessorPrefixes = dedupe(prefixes) }
}

// WithArrayMutatorPrefixes replaces the array-mutator prefixes.
// They only take effect when also listed as mutator prefixes.
func WithArrayMutatorPrefixes(prefixes ...string) Option {
	return func(e *ReflectionExtractor) { e.arrayMutatorPrefixes = dedupe(prefixes) }
}

// WithConstructorExtraction sets whether constructor parameters are used for
// type inference when a call does not say otherwise.
func WithConstructorExtraction(enabled bool) Option {
	return func(e *ReflectionExtractor) { e.constructorExtraction = enabled }
}

// WithAcronymLength sets how many leading upper-case letters protect a
// method-derived property name from lower-casing. Zero disables the check.
func WithAcronymLength(n int) Option {
	return func(e *ReflectionExtractor) { e.acronymLength = max(n, 0) }
}

// WithSingularizer replaces the singularizer used for array mutators.
func WithSingularizer(s inflector.Singularizer) Option {
	return func(e *ReflectionExtractor) { e.singularizer = s }
}

// WithLogger sets the logger. Soft failures and inference decisions are logged at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(e *ReflectionExtractor) { e.logger = logger }
}

// New creates a ReflectionExtractor reading type structure from describer.
func New(describer introspect.Describer, opts ...Option) *ReflectionExtractor {
	e := &ReflectionExtractor{
		describer:             describer,
		mutatorPrefixes:       DefaultMutatorPrefixes(),
		accessorPrefixes:      DefaultAccessorPrefixes(),
		arrayMutatorPrefixes:  DefaultArrayMutatorPrefixes(),
		constructorExtraction: true,
		acronymLength:         DefaultAcronymLength,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.singularizer == nil {
		e.singularizer = inflector.New()
	}

	if e.logger == nil {
		e.logger = zap.NewNop()
	}

	e.methodPattern = compileMethodPattern(e.accessorPrefixes, e.mutatorPrefixes)

	return e
}

// MutatorPrefixes returns a copy of the configured mutator prefixes.
func (e *ReflectionExtractor) MutatorPrefixes() []string {
	return append([]string(nil), e.mutatorPrefixes...)
}

// AccessorPrefixes returns a copy of the configured accessor prefixes.
func (e *ReflectionExtractor) AccessorPrefixes() []string {
	return append([]string(nil), e.accessorPrefixes...)
}

// ArrayMutatorPrefixes returns a copy of the configured array-mutator prefixes.
func (e *ReflectionExtractor) ArrayMutatorPrefixes() []string {
	return append([]string(nil), e.arrayMutatorPrefixes...)
}

// ContextOption adjusts a single call.
type ContextOption func(*callContext)

type callContext struct {
	constructorExtraction *bool
}

// ConstructorExtraction overrides, for one call, whether constructor
// parameters are used for type inference.
func ConstructorExtraction(enabled bool) ContextOption {
	return func(c *callContext) { c.constructorExtraction = &enabled }
}

func (e *ReflectionExtractor) newContext(opts []ContextOption) callContext {
	c := callContext{}
	for _, opt := range opts {
		opt(&c)
	}

	if c.constructorExtraction == nil {
		c.constructorExtraction = &e.constructorExtraction
	}

	return c
}

// describe resolves a type, logging and swallowing resolution failures.
func (e *ReflectionExtractor) describe(class string) (*introspect.TypeDesc, bool) {
	desc, err := e.describer.DescribeType(class)
	if err != nil {
		e.logger.Debug("type not resolved", zap.String("class", class), zap.Error(err))
		return nil, false
	}

	return desc, true
}

func (e *ReflectionExtractor) isArrayMutatorPrefix(prefix string) bool {
	return containsFold(e.arrayMutatorPrefixes, prefix)
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}

	return false
}

func dedupe(prefixes []string) []string {
	seen := make(map[string]bool, len(prefixes))
	out := make([]string, 0, len(prefixes))

	for _, p := range prefixes {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}

	return out
}
