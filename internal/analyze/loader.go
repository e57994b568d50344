package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"property-info/introspect"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// ErrAmbiguousType is returned when a bare type name matches types in several packages.
var ErrAmbiguousType = errors.New("ambiguous type name")

// Analyzer loads Go packages and describes their named types.
type Analyzer struct {
	dir    string
	logger *zap.Logger

	mu    sync.RWMutex
	graph *TypeGraph
}

var _ introspect.Describer = (*Analyzer)(nil)

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithDir sets the directory packages are resolved from.
func WithDir(dir string) Option {
	return func(a *Analyzer) { a.dir = dir }
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Analyzer) { a.logger = logger }
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		graph:  NewTypeGraph(),
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// LoadPackages loads the specified packages and adds their types to the graph.
// Patterns are standard Go package patterns (e.g., "./...", "property-info/fixtures").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.graph
}

// processPackage registers the exported named types of a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path:  pkg.PkgPath,
		Name:  pkg.Name,
		Scope: pkg.Types.Scope(),
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: name}
		a.graph.Types[id] = &TypeInfo{
			ID:      id,
			Kind:    kindOf(typeName),
			Package: pkgInfo,
			Obj:     typeName,
		}
		pkgInfo.Types = append(pkgInfo.Types, id)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo

	a.logger.Debug("package loaded",
		zap.String("package", pkg.PkgPath),
		zap.Int("types", len(pkgInfo.Types)))
}

// Lookup resolves a type name. Accepted forms are "import/path.Name",
// "pkgname.Name" and a bare "Name" that is unique across loaded packages.
func (a *Analyzer) Lookup(name string) (*TypeInfo, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var matches []*TypeInfo

	if idx := strings.LastIndex(name, "."); idx > 0 {
		qualifier, typeName := name[:idx], name[idx+1:]

		if info := a.graph.GetType(TypeID{PkgPath: qualifier, Name: typeName}); info != nil {
			return info, nil
		}

		for _, info := range a.graph.Types {
			if info.ID.Name == typeName && info.Package.Name == qualifier {
				matches = append(matches, info)
			}
		}
	} else {
		for _, info := range a.graph.Types {
			if info.ID.Name == name {
				matches = append(matches, info)
			}
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", introspect.ErrTypeNotFound, name)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %s matches %d types", ErrAmbiguousType, name, len(matches))
	}
}

// DescribeType implements introspect.Describer.
func (a *Analyzer) DescribeType(name string) (*introspect.TypeDesc, error) {
	info, err := a.Lookup(name)
	if err != nil {
		return nil, err
	}

	return describe(info), nil
}
