package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/iwvelando/interest-calculator/internal/calculator"
	"github.com/iwvelando/interest-calculator/internal/config"
	"github.com/iwvelando/interest-calculator/internal/server"
	"github.com/iwvelando/interest-calculator/pkg/constants"
	"github.com/iwvelando/interest-calculator/pkg/output"
	"github.com/iwvelando/interest-calculator/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Set via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"error\": %q}\n", err.Error())
		os.Exit(1)
	}
}

// app carries state shared by every subcommand once the root command has
// loaded configuration and built the logger.
type app struct {
	out          io.Writer
	configPath   string
	logLevel     string
	outputFormat string

	conf   *config.Configuration
	logger *zap.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "interest-calculator",
		Short:         "SIP, simple interest and compound interest projections",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.outputFormat, "output-format", "", "type of output override: pretty, csv")

	root.AddCommand(
		a.newSIPCmd(),
		a.newSimpleCmd(),
		a.newCompoundCmd(),
		a.newRunCmd(),
		a.newServeCmd(),
		newVersionCmd(out),
	)
	return root
}

// setup loads the calculation config and logger. A missing config file is
// tolerated unless required is set or the path was given explicitly.
func (a *app) setup(cmd *cobra.Command, required bool) error {
	conf, err := config.LoadConfiguration(a.configPath)
	if err != nil {
		_, statErr := os.Stat(a.configPath)
		explicit := cmd.Flags().Changed("config")
		if required || explicit || !errors.Is(statErr, fs.ErrNotExist) {
			return fmt.Errorf("failed to load configuration at %s: %w", a.configPath, err)
		}
		conf = &config.Configuration{Output: config.OutputConfig{
			Format:   constants.OutputFormatPretty,
			Currency: constants.DefaultCurrencySymbol,
		}}
	}
	a.conf = conf

	logger, err := initializeLogger(conf.Logging, a.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	if a.outputFormat != "" {
		a.conf.Output.Format = a.outputFormat
	}
	if a.conf.Output.Format == "" {
		a.conf.Output.Format = constants.OutputFormatPretty
	}
	return validation.ValidateOutputFormat(a.conf.Output.Format)
}

func (a *app) sync() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// calculate evaluates req and writes the report in the configured format.
func (a *app) calculate(req calculator.Request) error {
	report, err := calculator.New(a.logger).Calculate(req)
	if err != nil {
		a.logger.Error("calculation failed",
			zap.String("op", "main.calculate"),
			zap.String("mode", req.Mode),
			zap.Error(err),
		)
		return err
	}

	switch a.conf.Output.Format {
	case constants.OutputFormatCSV:
		output.CsvFormat(a.out, report)
	default:
		output.PrettyFormat(a.out, report, a.conf.Output.Currency)
	}
	return nil
}

type paramFlags struct {
	name      string
	principal float64
	rate      float64
	years     int
	frequency string
}

func (p *paramFlags) register(cmd *cobra.Command, principalHelp string) {
	cmd.Flags().StringVar(&p.name, "name", "", "label shown in the output")
	cmd.Flags().Float64Var(&p.principal, "principal", 0, principalHelp)
	cmd.Flags().Float64Var(&p.rate, "rate", 0, "annual rate in percent")
	cmd.Flags().IntVar(&p.years, "years", 0, "duration in whole years")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("years")
}

func (p *paramFlags) request(mode string) calculator.Request {
	return calculator.Request{
		Name:      p.name,
		Mode:      mode,
		Principal: p.principal,
		Rate:      p.rate,
		Years:     p.years,
		Frequency: calculator.Frequency(p.frequency),
	}
}

func (a *app) newModeCmd(mode, use, short, principalHelp string, withFrequency bool) *cobra.Command {
	var params paramFlags
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, false); err != nil {
				return err
			}
			defer a.sync()
			return a.calculate(params.request(mode))
		},
	}
	params.register(cmd, principalHelp)
	if withFrequency {
		cmd.Flags().StringVar(&params.frequency, "frequency", "Yearly", "compounding frequency: Yearly, Half-Yearly, Quarterly, Monthly or periods per year")
	}
	return cmd
}

func (a *app) newSIPCmd() *cobra.Command {
	return a.newModeCmd(constants.ModeSIP, "sip", "Project the value of a monthly systematic investment plan",
		"amount invested each month", false)
}

func (a *app) newSimpleCmd() *cobra.Command {
	return a.newModeCmd(constants.ModeSimple, "simple", "Compute simple interest on a principal",
		"principal amount", false)
}

func (a *app) newCompoundCmd() *cobra.Command {
	return a.newModeCmd(constants.ModeCompound, "compound", "Compute compound interest on a principal",
		"principal amount", true)
}

func (a *app) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [name]",
		Short: "Evaluate one calculation from the configuration file (default: the first)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, true); err != nil {
				return err
			}
			defer a.sync()

			for _, warning := range a.conf.ValidateConfiguration() {
				a.logger.Warn("Configuration warning: "+warning,
					zap.String("op", "main.run"),
				)
			}

			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			req, err := a.conf.Find(name)
			if err != nil {
				return err
			}
			return a.calculate(req)
		},
	}
}

func (a *app) newServeCmd() *cobra.Command {
	var (
		serverConfigPath string
		address          string
		maxUploadSize    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculation HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.LoadConfig(serverConfigPath)
			if err != nil {
				return err
			}
			if address != "" {
				cfg.Address = address
			}
			if maxUploadSize != "" {
				size, err := server.ParseSize(maxUploadSize)
				if err != nil {
					return err
				}
				cfg.SetUploadSizeBytes(size)
			}

			logger, err := initializeLogger(cfg.Logging, a.logLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() {
				_ = logger.Sync()
			}()

			handler := server.NewHandler(logger, server.Options{
				MaxUploadSize:  cfg.UploadSizeBytes(),
				MaxYears:       cfg.MaxYears,
				Version:        version,
				Currency:       cfg.Currency,
				AllowedOrigins: cfg.AllowedOrigins,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.ListenAndServe(ctx, logger, cfg.Address, handler)
		},
	}
	cmd.Flags().StringVar(&serverConfigPath, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	cmd.Flags().StringVar(&address, "address", "", "listen address override")
	cmd.Flags().StringVar(&maxUploadSize, "max-upload-size", "", "upload size limit override (e.g. 256K, 1M)")
	return cmd
}

func newVersionCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(out, "interest-calculator %s\n", version)
		},
	}
}
