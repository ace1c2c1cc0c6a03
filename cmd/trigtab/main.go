package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/san-kum/trigtab/internal/check"
	"github.com/san-kum/trigtab/internal/config"
	"github.com/san-kum/trigtab/internal/emit"
	"github.com/san-kum/trigtab/internal/export"
	"github.com/san-kum/trigtab/internal/logger"
	"github.com/san-kum/trigtab/internal/output"
	"github.com/san-kum/trigtab/internal/table"
	"github.com/san-kum/trigtab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	resolution  int
	format      string
	precision   int
	elementType string
	sinName     string
	cosName     string
	bits        uint
	pkgName     string
	outPath     string
	configFile  string
	preset      string
	verbosity   int
	// plot size
	plotWidth  int
	plotHeight int
	svgPath    string
)

const (
	svgWidth  = 800
	svgHeight = 400
)

var errCheckFailed = errors.New("table check failed")

// main runs the generator; with no subcommand it prints the default
// float tables to stdout. Errors are logged to stderr and exit with 1.
func main() {
	logger.Initialize(logger.VerbosityUser)

	if err := newRootCmd().Execute(); err != nil {
		logger.Error(logger.Logger, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "trigtab",
		Short:         "generate half-circle sin/cos lookup tables",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Initialize(verbosity)
		},
		RunE: generate,
	}

	pf := rootCmd.PersistentFlags()
	pf.IntVarP(&resolution, "resolution", "n", config.DefaultResolution, "samples over [0, π)")
	pf.StringVarP(&format, "format", "f", config.DefaultFormat, fmt.Sprintf("output format %v", emit.Formats()))
	pf.IntVar(&precision, "precision", config.DefaultPrecision, "fraction digits per value")
	pf.StringVar(&elementType, "type", emit.DefaultElementType, "declared element type (c)")
	pf.StringVar(&sinName, "sin-name", emit.DefaultSinName, "sine array name")
	pf.StringVar(&cosName, "cos-name", emit.DefaultCosName, "cosine array name")
	pf.UintVar(&bits, "bits", config.DefaultBits, "fixed-point fraction bits (q16)")
	pf.StringVar(&pkgName, "package", emit.DefaultPackage, "package name (go)")
	pf.StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.CountVarP(&verbosity, "verbose", "v", "log more (-v, -vv)")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the tables in the terminal",
		Args:  cobra.NoArgs,
		RunE:  plotTables,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", viz.DefaultPlotWidth, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", viz.DefaultPlotHeight, "plot height")
	plotCmd.Flags().StringVar(&svgPath, "svg", "", "also write the curves as svg to this file")

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "browse table entries interactively",
		Args:  cobra.NoArgs,
		RunE:  inspectTables,
	}

	checkCmd := &cobra.Command{
		Use:   "check [file]",
		Short: "verify a generated float table literal (stdin when no file or -)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  checkTables,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write the resolved configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  writeConfig,
	}

	rootCmd.AddCommand(plotCmd, inspectCmd, checkCmd, presetsCmd, initCmd)
	return rootCmd
}

// resolveConfig layers preset, config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, errors.WithHintf(
				errors.Newf("unknown preset: %s", preset),
				"available presets: %v", config.ListPresets(),
			)
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load config")
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("resolution") {
		cfg.Resolution = resolution
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("precision") {
		cfg.Precision = precision
	}
	if flags.Changed("type") {
		cfg.ElementType = elementType
	}
	if flags.Changed("sin-name") {
		cfg.SinName = sinName
	}
	if flags.Changed("cos-name") {
		cfg.CosName = cosName
	}
	if flags.Changed("bits") {
		cfg.Bits = bits
	}
	if flags.Changed("package") {
		cfg.Package = pkgName
	}
	if flags.Changed("out") {
		cfg.Output = outPath
	}

	logger.Logger.Debugw("resolved config",
		"resolution", cfg.Resolution,
		"format", cfg.Format,
		"precision", cfg.Precision,
		"bits", cfg.Bits,
		"output", cfg.Output,
	)
	return cfg, nil
}

// loadTable resolves the configuration and computes its table.
func loadTable(cmd *cobra.Command) (*config.Config, *table.Table, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	t, err := table.Generate(cfg.Resolution)
	if err != nil {
		return nil, nil, err
	}
	return cfg, t, nil
}

func generate(cmd *cobra.Command, args []string) error {
	cfg, t, err := loadTable(cmd)
	if err != nil {
		return err
	}

	out, err := emit.Render(t, cfg.EmitOptions())
	if err != nil {
		return err
	}

	sink := output.New(cfg.Output)
	sink.Stdout = cmd.OutOrStdout()
	if err := sink.Write(out); err != nil {
		return err
	}

	logger.Logger.Infow("generated table",
		"resolution", cfg.Resolution,
		"format", cfg.Format,
		"bytes", len(out),
		"dest", sink.Path(),
	)
	return nil
}

func plotTables(cmd *cobra.Command, args []string) error {
	_, t, err := loadTable(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), viz.Plot(t, plotWidth, plotHeight))

	if svgPath != "" {
		svg := export.TableToSVG(t, svgWidth, svgHeight)
		if err := output.New(svgPath).Write([]byte(svg)); err != nil {
			return err
		}
		logger.Logger.Infow("wrote svg", "dest", svgPath)
	}
	return nil
}

func inspectTables(cmd *cobra.Command, args []string) error {
	cfg, t, err := loadTable(cmd)
	if err != nil {
		return err
	}
	fx, err := table.Quantize(t, cfg.Bits)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewBrowser(t, fx), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func checkTables(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	name := "stdin"
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrapf(err, "open %s", args[0])
		}
		defer f.Close()
		in = f
		name = args[0]
	}

	blocks, err := check.Parse(in)
	if err != nil {
		return errors.Wrapf(err, "parse %s", name)
	}

	rep, err := check.Verify(blocks, check.Options{
		SinName:   cfg.SinName,
		CosName:   cfg.CosName,
		Precision: cfg.Precision,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	var lines []string
	if rep.OK() {
		fmt.Fprintf(w, "%s %s: %d tables\n", viz.StatusOK.Render("ok"), name, len(blocks))
		for _, b := range blocks {
			lines = append(lines, fmt.Sprintf("%s %s[%d]", b.Type, b.Name, b.Declared))
		}
		fmt.Fprintln(w, viz.PanelStyle.Render(strings.Join(lines, "\n")))
		return nil
	}

	fmt.Fprintf(w, "%s %s: %d violations\n", viz.StatusFail.Render("fail"), name, len(rep.Violations))
	for _, v := range rep.Violations {
		lines = append(lines, v.String())
	}
	fmt.Fprintln(w, viz.PanelStyle.Render(strings.Join(lines, "\n")))
	return errors.Wrapf(errCheckFailed, "%s: %d violations", name, len(rep.Violations))
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRESOLUTION\tFORMAT\tPRECISION\tBITS")

	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%d\n", name, p.Resolution, p.Format, p.Precision, p.Bits)
	}

	return w.Flush()
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	path := "trigtab.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if err := config.Save(path, cfg); err != nil {
		return errors.Wrapf(err, "save config %s", path)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
