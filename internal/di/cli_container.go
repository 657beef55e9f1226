package di

import (
	"flag"
	"strings"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/phishing-classifier/internal/config"
	"github.com/mikey/phishing-classifier/internal/core"
	"github.com/mikey/phishing-classifier/internal/dataset"
	"github.com/mikey/phishing-classifier/internal/factory"
	"github.com/mikey/phishing-classifier/internal/logging"
	"github.com/mikey/phishing-classifier/internal/whitelist"
)

// CLIFlags contains all command line flags for the detector CLI
type CLIFlags struct {
	// Training flags
	DatasetPath  string
	TextColumn   string
	LabelColumn  string
	TestFraction float64
	Seed         int64
	MaxFeatures  int
	Alpha        float64

	// Detection flags
	WhitelistDomains string
	MaxBodySize      int

	// Input flags
	InputFile  string
	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// ParseFlags parses command line flags and returns a CLIFlags struct
func ParseFlags() *CLIFlags {
	flags := &CLIFlags{}

	// Training flags
	flag.StringVar(&flags.DatasetPath, "dataset", "data/phishing_emails.csv", "Path to the labeled training CSV")
	flag.StringVar(&flags.TextColumn, "text-column", "text", "Name of the text column")
	flag.StringVar(&flags.LabelColumn, "label-column", "label", "Name of the label column")
	flag.Float64Var(&flags.TestFraction, "test-fraction", 0.2, "Fraction of rows held out for evaluation")
	flag.Int64Var(&flags.Seed, "seed", 42, "Seed for the train/test split")
	flag.IntVar(&flags.MaxFeatures, "max-features", 5000, "Maximum vocabulary size for the vectorizer")
	flag.Float64Var(&flags.Alpha, "alpha", 1.0, "Laplace smoothing constant for the classifier")

	// Detection flags
	flag.StringVar(&flags.WhitelistDomains, "whitelist", "", "Comma-separated list of whitelisted sender domains")
	flag.IntVar(&flags.MaxBodySize, "max-body-size", 4096, "Maximum email body size to classify")

	// Input flags
	flag.StringVar(&flags.InputFile, "file", "", "Input email file (use stdin if not specified)")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	flag.StringVar(&flags.ConfigFile, "config", "", "Path to config file (overrides command line flags)")

	flag.Parse()
	return flags
}

// BuildCLIContainer creates and configures a dependency injection container
// for the detector CLI
func BuildCLIContainer(flags *CLIFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		if flags.ConfigFile != "" {
			cfg, err := config.New()
			if err != nil {
				return nil, err
			}
			logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
			return cfg, nil
		}
		return createConfigFromFlags(flags), nil
	}); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewPipelineFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return nil, err
	}

	// Register dataset loader and training configuration
	if err := container.Provide(func(f *factory.PipelineFactory) *dataset.Loader {
		return f.CreateLoader()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.PipelineFactory) core.TrainingConfig {
		return f.TrainingConfig()
	}); err != nil {
		return nil, err
	}

	// Register cache repository
	if err := container.Provide(func(f *factory.CacheFactory) (core.CacheRepository, error) {
		return f.CreateCacheRepository()
	}); err != nil {
		return nil, err
	}

	// Register whitelist checker
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) *whitelist.Checker {
		return whitelist.NewChecker(cfg.GetDetector().WhitelistedDomains, logger)
	}); err != nil {
		return nil, err
	}

	return container, nil
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags(flags *CLIFlags) *config.Config {
	v := config.NewEmptyViper()

	v.Set("dataset.path", flags.DatasetPath)
	v.Set("dataset.text_column", flags.TextColumn)
	v.Set("dataset.label_column", flags.LabelColumn)

	v.Set("split.test_fraction", flags.TestFraction)
	v.Set("split.seed", flags.Seed)

	v.Set("vectorizer.max_features", flags.MaxFeatures)
	v.Set("classifier.alpha", flags.Alpha)

	v.Set("detector.max_body_size", flags.MaxBodySize)
	if flags.WhitelistDomains != "" {
		v.Set("detector.whitelisted_domains", splitDomains(flags.WhitelistDomains))
	} else {
		v.Set("detector.whitelisted_domains", []string{})
	}

	return config.NewFromViper(v)
}

func splitDomains(s string) []string {
	parts := strings.Split(s, ",")
	domains := make([]string, 0, len(parts))
	for _, p := range parts {
		if d := strings.TrimSpace(p); d != "" {
			domains = append(domains, d)
		}
	}
	return domains
}
