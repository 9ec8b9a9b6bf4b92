package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/fnasraoui/logicaldecoding"
)

type options struct {
	configPath       string
	includes         []string
	out              string
	importPrefix     string
	orderedMaps      string
	structuredFormat string
	verify           bool
	metricsFile      string
	logLevel         string
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "ldpbgen [flags] <schema.proto>...",
		Short: "generate Go types for logical-decoding protobuf schemas",
		Long: `
Compile protobuf schemas, and everything they import, into Go sources with
binary and JSON codecs. Schemas may also be listed in the configuration file
given with --config; flags override the file.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := opts.config(cmd, args)
			if err != nil {
				return err
			}
			return run(cmd, conf, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	f.StringArrayVarP(&opts.includes, "include", "I", nil, "directory searched for schemas and imports (repeatable)")
	f.StringVarP(&opts.out, "out", "o", "", "output directory for generated sources")
	f.StringVar(&opts.importPrefix, "go-import-prefix", "", "Go import path prefix for schemas without go_package")
	f.StringVar(&opts.orderedMaps, "ordered-maps", logicaldecoding.AllPaths, "':' separated selectors of map fields generated as btreemap.Map")
	f.StringVar(&opts.structuredFormat, "structured-format", logicaldecoding.AllPaths, "':' separated selectors of types that get JSON methods")
	f.BoolVar(&opts.verify, "verify", false, "fail if the output directory is out of date instead of writing")
	f.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics of the run to this file")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level: trace, debug, info, warn or error")
	return cmd
}

// config merges the configuration file, the flags the user set and the
// positional schema paths, in that order of precedence from lowest.
func (o options) config(cmd *cobra.Command, args []string) (logicaldecoding.Config, error) {
	conf := logicaldecoding.Default()
	if o.configPath != "" {
		var err error
		if conf, err = logicaldecoding.LoadConfig(o.configPath); err != nil {
			return conf, err
		}
	}

	changed := cmd.Flags().Changed
	if len(args) > 0 {
		conf.SchemaPaths = args
	}
	if changed("include") {
		conf.IncludePaths = o.includes
	}
	if changed("out") {
		conf.OutputDir = o.out
	}
	if changed("go-import-prefix") {
		conf.GoImportPrefix = o.importPrefix
	}
	if changed("ordered-maps") {
		conf.OrderedMaps = logicaldecoding.ParseSelectors(o.orderedMaps)
	}
	if changed("structured-format") {
		conf.StructuredFormat = logicaldecoding.ParseSelectors(o.structuredFormat)
	}
	if changed("verify") {
		conf.Verify = o.verify
	}
	return conf, nil
}

func run(cmd *cobra.Command, conf logicaldecoding.Config, opts options) error {
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logicaldecoding.ParseLogLevel(opts.logLevel),
	})
	logger := logicaldecoding.NewSlogLogger(slog.New(handler))

	registry := prometheus.NewRegistry()
	deps := logicaldecoding.DriverDependencies{Logger: logger}
	if opts.metricsFile != "" {
		deps.Metrics = logicaldecoding.NewMetrics(registry)
	}

	d, err := logicaldecoding.NewDriver(conf, deps)
	if err != nil {
		return err
	}
	runErr := d.Run(cmd.Context())

	if opts.metricsFile != "" {
		if err := prometheus.WriteToTextfile(opts.metricsFile, registry); err != nil {
			return errors.Join(runErr, err)
		}
	}
	return runErr
}

// exitCode maps a failure onto the process status: 2 for usage and
// configuration problems, 3 for stale output in verify mode, 1 otherwise.
func exitCode(err error) int {
	var cfgErr logicaldecoding.ConfigValidationError
	switch {
	case errors.As(err, &cfgErr), errors.Is(err, logicaldecoding.ErrLoggerRequired):
		return 2
	case errors.Is(err, logicaldecoding.ErrOutOfDate):
		return 3
	case errors.Is(err, os.ErrNotExist):
		return 2
	default:
		return 1
	}
}
