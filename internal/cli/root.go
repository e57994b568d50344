package cli

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"property-info/extractor"
	"property-info/internal/analyze"
	"property-info/internal/config"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger *zap.Logger

	dir        string
	configPath string
	verbose    bool
	noColor    bool
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	a := &app{v: config.New(), logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "property-info",
		Short: "Infer property metadata of Go types",
		Long: `property-info lists the properties of Go types and infers their types and
access rules from accessor and mutator naming conventions, constructor
parameters and default values.

Types are addressed as <import/path>.<Name>, <package>.<Name> or a bare
<Name> when it is unique among the loaded packages.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.dir, "dir", "", "Directory packages are resolved from")
	flags.StringVar(&a.configPath, "config", "", "Config file (default ./property-info.yaml)")
	flags.String("format", config.Formats[0], "Output format: table, yaml or json")
	flags.BoolVar(&a.verbose, "verbose", false, "Enable debug logging")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	// Only fails for unknown flag names.
	_ = a.v.BindPFlag(config.KeyFormat, flags.Lookup("format"))

	rootCmd.AddCommand(newVersionCommand())
	rootCmd.AddCommand(newListCommand(a))
	rootCmd.AddCommand(newTypesCommand(a))
	rootCmd.AddCommand(newAccessCommand(a))
	rootCmd.AddCommand(newDescribeCommand(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.noColor {
		color.NoColor = true
	}

	zapCfg := zap.NewProductionConfig()
	if a.verbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	return nil
}

// load resolves typeName inside the packages matched by pattern.
func (a *app) load(pattern, typeName string, opts ...extractor.Option) (*extractor.ReflectionExtractor, string, error) {
	analyzer := analyze.NewAnalyzer(analyze.WithDir(a.dir), analyze.WithLogger(a.logger))

	graph, err := analyzer.LoadPackages(pattern)
	if err != nil {
		return nil, "", err
	}

	info, err := analyzer.Lookup(typeName)
	if err != nil {
		names := make([]string, 0, len(graph.Types))
		for _, id := range graph.IDs() {
			names = append(names, id.String())
		}

		return nil, "", &notFoundError{kind: "type", name: typeName, suggestions: suggest(typeName, names), err: err}
	}

	opts = append(append(a.cfg.ExtractorOptions(), extractor.WithLogger(a.logger)), opts...)

	return extractor.New(analyzer, opts...), info.ID.String(), nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			titleColor := color.New(color.FgCyan, color.Bold)
			out := cmd.OutOrStdout()

			titleColor.Fprint(out, "property-info version: ")
			fmt.Fprintln(out, Version)

			titleColor.Fprint(out, "Git commit: ")
			fmt.Fprintln(out, GitCommit)

			titleColor.Fprint(out, "Build date: ")
			fmt.Fprintln(out, BuildDate)

			titleColor.Fprint(out, "Go version: ")
			fmt.Fprintln(out, runtime.Version())
		},
	}
}

// Execute runs the root command with os.Args.
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		var nf *notFoundError
		if errors.As(err, &nf) {
			fmt.Fprint(rootCmd.ErrOrStderr(), nf.Format())
			return err
		}

		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)

		return err
	}

	return nil
}
