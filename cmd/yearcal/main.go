package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/yearcal/internal/calendar"
	"github.com/username/yearcal/internal/config"
	"github.com/username/yearcal/internal/stocks"
)

var (
	configPath string
	policyFlag string
	logger     *zap.Logger
	cfg        *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "yearcal",
		Short:         "Year calendar with holiday-aware date derivations",
		Long:          "Render a year calendar, highlight holidays and weekends, and derive working days and matching dates for a selected day",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				initLogger("info")
				return err
			}

			if cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger(cfg.Log.Level) // Fallback to console
				}
			} else {
				initLogger(cfg.Log.Level)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Config file path")
	rootCmd.PersistentFlags().StringVar(&policyFlag, "policy", "", "Override calendar.boundary_policy (strict, legacy, spill)")

	rootCmd.AddCommand(queryCmd())
	rootCmd.AddCommand(holidaysCmd())
	rootCmd.AddCommand(calendarCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initializeEngine loads the shared read-only data and builds the engine
func initializeEngine(ctx context.Context, cfg *config.Config) (*calendar.Engine, *stocks.Index, error) {
	policy := cfg.Calendar.GetBoundaryPolicy()
	if policyFlag != "" {
		var err error
		policy, err = calendar.ParseBoundaryPolicy(policyFlag)
		if err != nil {
			return nil, nil, err
		}
	}

	source := newHolidaySource(cfg)
	holidays, err := source.LoadHolidays(ctx, cfg.Calendar.Year)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load holidays: %w", err)
	}

	var index *stocks.Index
	if cfg.Stocks.File != "" {
		index, err = stocks.Load(cfg.Stocks.File)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load stock events: %w", err)
		}
		logger.Info("Stock events loaded",
			zap.String("file", cfg.Stocks.File),
			zap.Int("dates", index.Len()))
	} else {
		logger.Info("No stock file configured, stock info will be N/A")
	}

	engine := calendar.NewEngine(cfg.Calendar.Year, holidays, policy, logger)

	logger.Info("Engine ready",
		zap.Int("year", cfg.Calendar.Year),
		zap.Int("holidays", holidays.Len()),
		zap.Stringer("policy", policy))

	return engine, index, nil
}

func newHolidaySource(cfg *config.Config) calendar.HolidaySource {
	h := cfg.Holidays

	switch {
	case h.URL != "" && h.File != "":
		logger.Info("Using remote holiday list with file fallback")
		return calendar.NewCompositeHolidaySource(
			calendar.NewRemoteHolidaySource(h.URL, h.GetCacheTTL(), logger),
			calendar.NewFileHolidaySource(h.File, logger),
			logger,
		)
	case h.URL != "":
		logger.Info("Using remote holiday list")
		return calendar.NewRemoteHolidaySource(h.URL, h.GetCacheTTL(), logger)
	default:
		return calendar.NewFileHolidaySource(h.File, logger)
	}
}

func initLogger(level string) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	// stdout is reserved for command output
	config.OutputPaths = []string{"stderr"}

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err == nil {
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
