package main

import (
	"fmt"
	"os"

	"github.com/mikey/phishing-classifier/internal/core"
	"github.com/mikey/phishing-classifier/internal/dataset"
	"github.com/mikey/phishing-classifier/internal/di"
	"github.com/mikey/phishing-classifier/internal/factory"
	"go.uber.org/zap"
)

func main() {
	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Failed to build container: %v\n", err)
		os.Exit(1)
	}

	err = container.Invoke(func(
		logger *zap.Logger,
		loader *dataset.Loader,
		pipelineFactory *factory.PipelineFactory,
		trainCfg core.TrainingConfig,
	) error {
		defer logger.Sync()

		path := pipelineFactory.DatasetPath()
		records, err := loader.Load(path)
		if err != nil {
			logger.Error("Failed to load dataset",
				zap.String("path", path),
				zap.Error(err))
			return err
		}
		logger.Info("Loaded dataset",
			zap.String("path", path),
			zap.Int("records", len(records)))

		pipeline, err := core.Train(records, trainCfg, logger)
		if err != nil {
			logger.Error("Training failed", zap.Error(err))
			return err
		}

		fmt.Printf("Accuracy: %.4f\n\n", pipeline.Report.Accuracy)
		fmt.Println(pipeline.Report)
		return nil
	})
	if err != nil {
		os.Exit(1)
	}
}
