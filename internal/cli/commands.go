package cli

import (
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"property-info/extractor"
	"property-info/typeinfo"
)

type listResult struct {
	Type       string   `json:"type" yaml:"type"`
	Properties []string `json:"properties" yaml:"properties"`
}

func (r listResult) headers() []string { return []string{"PROPERTY"} }

func (r listResult) rows() [][]string {
	rows := make([][]string, 0, len(r.Properties))
	for _, p := range r.Properties {
		rows = append(rows, []string{p})
	}

	return rows
}

type typesResult struct {
	Type     string   `json:"type" yaml:"type"`
	Property string   `json:"property" yaml:"property"`
	Types    []string `json:"types" yaml:"types"`
	Strategy string   `json:"strategy,omitempty" yaml:"strategy,omitempty"`
}

func (r typesResult) headers() []string { return []string{"PROPERTY", "TYPE", "STRATEGY"} }

func (r typesResult) rows() [][]string {
	return [][]string{{r.Property, joinOrDash(r.Types), orDash(r.Strategy)}}
}

type accessResult struct {
	Type          string `json:"type" yaml:"type"`
	Property      string `json:"property" yaml:"property"`
	Readable      bool   `json:"readable" yaml:"readable"`
	Writable      bool   `json:"writable" yaml:"writable"`
	Initializable bool   `json:"initializable" yaml:"initializable"`
}

func (r accessResult) headers() []string {
	return []string{"PROPERTY", "READABLE", "WRITABLE", "INITIALIZABLE"}
}

func (r accessResult) rows() [][]string {
	return [][]string{{
		r.Property,
		strconv.FormatBool(r.Readable),
		strconv.FormatBool(r.Writable),
		strconv.FormatBool(r.Initializable),
	}}
}

type propertyInfo struct {
	Name          string   `json:"name" yaml:"name"`
	Types         []string `json:"types" yaml:"types"`
	Strategy      string   `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	Readable      bool     `json:"readable" yaml:"readable"`
	Writable      bool     `json:"writable" yaml:"writable"`
	Initializable bool     `json:"initializable" yaml:"initializable"`
}

type describeResult struct {
	Type       string         `json:"type" yaml:"type"`
	Properties []propertyInfo `json:"properties" yaml:"properties"`
}

func (r describeResult) headers() []string {
	return []string{"PROPERTY", "TYPE", "STRATEGY", "READABLE", "WRITABLE", "INITIALIZABLE"}
}

func (r describeResult) rows() [][]string {
	rows := make([][]string, 0, len(r.Properties))
	for _, p := range r.Properties {
		rows = append(rows, []string{
			p.Name,
			joinOrDash(p.Types),
			orDash(p.Strategy),
			strconv.FormatBool(p.Readable),
			strconv.FormatBool(p.Writable),
			strconv.FormatBool(p.Initializable),
		})
	}

	return rows
}

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list <package> <type>",
		Short: "List the properties of a type",
		Example: `  property-info list ./fixtures Article
  property-info list property-info/fixtures fixtures.Draft --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, class, err := a.load(args[0], args[1])
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), a.cfg.Format, listResult{
				Type:       class,
				Properties: nonNil(e.Properties(class)),
			})
		},
	}
}

func newTypesCommand(a *app) *cobra.Command {
	var noConstructor bool

	cmd := &cobra.Command{
		Use:   "types <package> <type> <property>",
		Short: "Infer the type of a property",
		Long: `Infer the type of a property.

Strategies are tried in order: mutator parameter, accessor return type,
constructor parameter, default value. The first one that yields a type wins.`,
		Example: `  property-info types ./fixtures Article Title
  property-info types ./fixtures Comment Body --no-constructor`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, class, err := a.load(args[0], args[1])
			if err != nil {
				return err
			}

			property := args[2]
			types, strategy := e.TypesWithStrategy(class, property, contextOptions(noConstructor)...)

			if types == nil {
				properties := e.Properties(class)
				if !slices.Contains(properties, property) {
					return &notFoundError{kind: "property", name: property, suggestions: suggest(property, properties)}
				}
			}

			return render(cmd.OutOrStdout(), a.cfg.Format, typesResult{
				Type:     class,
				Property: property,
				Types:    typeStrings(types),
				Strategy: strategyName(types, strategy),
			})
		},
	}

	cmd.Flags().BoolVar(&noConstructor, "no-constructor", false, "Skip constructor parameters")

	return cmd
}

func newAccessCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "access <package> <type> <property>",
		Short:   "Show whether a property is readable, writable and initializable",
		Example: `  property-info access ./fixtures Article analyses`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, class, err := a.load(args[0], args[1])
			if err != nil {
				return err
			}

			property := args[2]
			initializable, _ := e.IsInitializable(class, property)

			return render(cmd.OutOrStdout(), a.cfg.Format, accessResult{
				Type:          class,
				Property:      property,
				Readable:      e.IsReadable(class, property),
				Writable:      e.IsWritable(class, property),
				Initializable: initializable,
			})
		},
	}
}

func newDescribeCommand(a *app) *cobra.Command {
	var noConstructor bool

	cmd := &cobra.Command{
		Use:     "describe <package> <type>",
		Short:   "Describe every property of a type",
		Example: `  property-info describe ./fixtures Article --format yaml`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, class, err := a.load(args[0], args[1])
			if err != nil {
				return err
			}

			ctx := contextOptions(noConstructor)
			result := describeResult{Type: class, Properties: []propertyInfo{}}

			for _, property := range e.Properties(class) {
				types, strategy := e.TypesWithStrategy(class, property, ctx...)
				initializable, _ := e.IsInitializable(class, property)

				result.Properties = append(result.Properties, propertyInfo{
					Name:          property,
					Types:         typeStrings(types),
					Strategy:      strategyName(types, strategy),
					Readable:      e.IsReadable(class, property),
					Writable:      e.IsWritable(class, property),
					Initializable: initializable,
				})
			}

			return render(cmd.OutOrStdout(), a.cfg.Format, result)
		},
	}

	cmd.Flags().BoolVar(&noConstructor, "no-constructor", false, "Skip constructor parameters")

	return cmd
}

func typeStrings(types []typeinfo.Type) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, t.String())
	}

	return out
}

func strategyName(types []typeinfo.Type, strategy extractor.Strategy) string {
	if types == nil {
		return ""
	}

	return strategy.String()
}

// contextOptions disables constructor extraction for the call when asked;
// otherwise the configured default applies.
func contextOptions(noConstructor bool) []extractor.ContextOption {
	if noConstructor {
		return []extractor.ContextOption{extractor.ConstructorExtraction(false)}
	}

	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

func joinOrDash(s []string) string {
	return orDash(strings.Join(s, ", "))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
