package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// cliApp carries what every subcommand needs once the root has loaded config
type cliApp struct {
	configFile string
	config     *Config
	logger     *slog.Logger
}

// inputFlags are the slider inputs exposed on the command line
type inputFlags struct {
	properties     int
	nightlyRate    int
	marketSharePct float64
	reset          bool
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.properties, "properties", DefaultPropertiesPerHost,
		fmt.Sprintf("number of properties per host (%d-%d)", MinPropertiesPerHost, MaxPropertiesPerHost))
	cmd.Flags().IntVar(&f.nightlyRate, "nightly-rate", DefaultNightlyRateUSD,
		fmt.Sprintf("nightly rate in USD (%d-%d)", MinNightlyRateUSD, MaxNightlyRateUSD))
	cmd.Flags().Float64Var(&f.marketSharePct, "market-share", DefaultMarketSharePct,
		fmt.Sprintf("market share of the SEA STR market in percent (%d-%d)", MinMarketSharePct, MaxMarketSharePct))
	cmd.Flags().BoolVar(&f.reset, "reset", false, "ignore config and flags, use the default inputs")
}

// resolve starts from base and applies only the flags the user set
func (f *inputFlags) resolve(cmd *cobra.Command, base CalculatorInputs) (CalculatorInputs, error) {
	if f.reset {
		return DefaultInputs(), nil
	}
	in := base
	if cmd.Flags().Changed("properties") {
		in.PropertiesPerHost = f.properties
	}
	if cmd.Flags().Changed("nightly-rate") {
		in.NightlyRateUSD = f.nightlyRate
	}
	if cmd.Flags().Changed("market-share") {
		if math.IsNaN(f.marketSharePct) || math.IsInf(f.marketSharePct, 0) {
			return base, &InputError{Field: "market-share", Value: cmd.Flags().Lookup("market-share").Value.String()}
		}
		in.MarketShare = f.marketSharePct / 100.0
	}
	return ClampInputs(in), nil
}

func newRootCmd() *cobra.Command {
	app := &cliApp{}

	root := &cobra.Command{
		Use:   "arrcalc",
		Short: "ARR sensitivity table calculator",
		Long: `Symplehost.ai ARR Sensitivity Table

Projects annual recurring revenue from a $25/month flat fee plus a 3% commission
on direct bookings, across occupancy rates (50-100%) and direct booking shares
(10-50%). Without a subcommand the calculator opens in a desktop window, falling
back to the web server when no GUI is available.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runGUI(app.config, app.logger); err != nil {
				LogError(app.logger, "GUI unavailable, falling back to web server", err)
				return NewWebServer(app.config, "", app.logger).Start()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&app.configFile, "config", "c", "config.yaml", "path to YAML configuration file")

	root.AddCommand(
		app.serveCmd(),
		app.uiCmd(),
		app.tableCmd(),
		app.breakdownCmd(),
		app.exportCmd(),
		app.initConfigCmd(),
	)
	return root
}

func (app *cliApp) load() error {
	config, err := LoadConfigOrDefault(app.configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	app.config = config
	app.logger = NewLoggerFromConfig(os.Stderr, config.Logging)
	slog.SetDefault(app.logger)
	return nil
}

func (app *cliApp) serveCmd() *cobra.Command {
	var (
		addr   string
		noOpen bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server (opens an external browser)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if noOpen {
				app.config.Server.OpenBrowser = false
			}
			return NewWebServer(app.config, addr, app.logger).Start()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, e.g. :8080 (default from config)")
	cmd.Flags().BoolVar(&noOpen, "no-open", false, "do not open a browser")
	return cmd
}

func (app *cliApp) uiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the calculator in an embedded browser window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmbeddedUI(app.config, app.logger)
		},
	}
}

func (app *cliApp) tableCmd() *cobra.Command {
	var flags inputFlags
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the ARR sensitivity table",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := flags.resolve(cmd, app.config.InitialInputs)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, RenderConsoleTable(in, ComputeTable(in)))
			fmt.Fprintln(out)
			PrintFormulaNotes(out)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func (app *cliApp) breakdownCmd() *cobra.Command {
	var (
		flags     inputFlags
		occupancy float64
		direct    float64
	)
	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Show every step of the ARR formula for one occupancy / direct booking pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := flags.resolve(cmd, app.config.InitialInputs)
			if err != nil {
				return err
			}
			for name, v := range map[string]float64{"occupancy": occupancy, "direct": direct} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return &InputError{Field: name, Value: cmd.Flags().Lookup(name).Value.String()}
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), FormatBreakdown(in, ComputeBreakdown(in, occupancy, direct)))
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().Float64Var(&occupancy, "occupancy", 100, "occupancy rate in percent")
	cmd.Flags().Float64Var(&direct, "direct", 50, "direct booking share in percent")
	return cmd
}

func (app *cliApp) exportCmd() *cobra.Command {
	var (
		flags  inputFlags
		format string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the ARR table to a CSV, PDF or HTML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			in, err := flags.resolve(cmd, app.config.InitialInputs)
			if err != nil {
				return err
			}

			data, err := renderExport(format, in, ComputeTable(in))
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = exportFilename(app.config.Export.Dir, format, time.Now())
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return fmt.Errorf("create export directory: %w", err)
			}
			if err := os.WriteFile(path, data, 0644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}

			LogOperation(app.logger, "table exported",
				slog.String("format", format), slog.String("path", path))
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "export format: csv, pdf or html")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default <export dir>/arr-table-<timestamp>.<format>)")
	return cmd
}

func (app *cliApp) initConfigCmd() *cobra.Command {
	var (
		path  string
		force bool
	)
	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write the default configuration to a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			config, err := LoadDefaultConfig()
			if err != nil {
				return err
			}
			config.Normalize()
			if err := SaveConfig(config, path); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "config.yaml", "where to write the configuration")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
