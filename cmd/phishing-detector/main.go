package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mikey/phishing-classifier/internal/config"
	"github.com/mikey/phishing-classifier/internal/core"
	"github.com/mikey/phishing-classifier/internal/dataset"
	"github.com/mikey/phishing-classifier/internal/di"
	"github.com/mikey/phishing-classifier/internal/factory"
	"github.com/mikey/phishing-classifier/internal/mailparse"
	"github.com/mikey/phishing-classifier/internal/textproc"
	"github.com/mikey/phishing-classifier/internal/whitelist"
	"go.uber.org/zap"
)

func main() {
	flags := di.ParseFlags()

	container, err := di.BuildCLIContainer(flags)
	if err != nil {
		fmt.Printf("Failed to build container: %v\n", err)
		os.Exit(1)
	}

	err = container.Invoke(func(
		cfg *config.Config,
		logger *zap.Logger,
		loader *dataset.Loader,
		pipelineFactory *factory.PipelineFactory,
		cacheFactory *factory.CacheFactory,
		cacheRepo core.CacheRepository,
		checker *whitelist.Checker,
		trainCfg core.TrainingConfig,
	) error {
		defer logger.Sync()

		// Train the model before anything can be classified
		path := pipelineFactory.DatasetPath()
		records, err := loader.Load(path)
		if err != nil {
			logger.Error("Failed to load training dataset",
				zap.String("path", path),
				zap.Error(err))
			return err
		}

		startTrain := time.Now()
		pipeline, err := core.Train(records, trainCfg, logger)
		if err != nil {
			logger.Error("Training failed", zap.Error(err))
			return err
		}
		logger.Info("Model trained",
			zap.Duration("elapsed", time.Since(startTrain)),
			zap.Int("train_size", pipeline.TrainSize))

		cacheTTL, err := cacheFactory.GetCacheTTL()
		if err != nil {
			logger.Error("Invalid cache TTL", zap.Error(err))
			return err
		}

		service := core.NewPhishingFilterService(
			pipeline.Cleaner,
			pipeline.Vectorizer,
			pipeline.Classifier,
			cacheRepo,
			checker,
			logger,
			cacheFactory.IsCacheEnabled(),
			cacheTTL,
		)

		// Read email from file or stdin
		var emailReader io.Reader
		if flags.InputFile != "" {
			file, err := os.Open(flags.InputFile)
			if err != nil {
				logger.Error("Failed to open input file",
					zap.String("file", flags.InputFile),
					zap.Error(err))
				return err
			}
			defer file.Close()
			emailReader = file
			logger.Info("Reading email from file", zap.String("file", flags.InputFile))
		} else {
			emailReader = os.Stdin
			logger.Info("Reading email from stdin")
		}

		email, err := mailparse.ReadEmail(emailReader)
		if err != nil {
			logger.Error("Failed to parse email", zap.Error(err))
			return err
		}

		sanitizer := textproc.NewSanitizer(logger)
		email.Body = sanitizer.Prepare(email.Body, cfg.GetDetector().MaxBodySize)

		fmt.Printf("\n=== Email Summary ===\n")
		fmt.Printf("From: %s\n", email.From)
		fmt.Printf("Subject: %s\n", email.Subject)
		fmt.Printf("Body length: %d bytes\n", len(email.Body))

		start := time.Now()
		result, err := service.AnalyzeEmail(context.Background(), email)
		if err != nil {
			logger.Error("Failed to analyze email", zap.Error(err))
			return err
		}

		fmt.Printf("\n=== Results ===\n")
		fmt.Printf("Is phishing: %t\n", result.IsPhishing)
		fmt.Printf("Label: %s\n", result.Label)
		fmt.Printf("Confidence: %.4f\n", result.Confidence)
		fmt.Printf("Model used: %s\n", result.ModelUsed)
		fmt.Printf("Held-out accuracy: %.4f\n", pipeline.Report.Accuracy)
		fmt.Printf("Processing time: %v\n", time.Since(start))

		return nil
	})
	if err != nil {
		os.Exit(1)
	}
}
