package di

import (
	"go.uber.org/dig"

	"github.com/mikey/phishing-classifier/internal/config"
	"github.com/mikey/phishing-classifier/internal/core"
	"github.com/mikey/phishing-classifier/internal/dataset"
	"github.com/mikey/phishing-classifier/internal/factory"
	"github.com/mikey/phishing-classifier/internal/logging"
)

// BuildContainer creates and configures the dependency injection container
// for the batch trainer
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewPipelineFactory); err != nil {
		return nil, err
	}

	// Register dataset loader
	if err := container.Provide(func(f *factory.PipelineFactory) *dataset.Loader {
		return f.CreateLoader()
	}); err != nil {
		return nil, err
	}

	// Register training configuration
	if err := container.Provide(func(f *factory.PipelineFactory) core.TrainingConfig {
		return f.TrainingConfig()
	}); err != nil {
		return nil, err
	}

	return container, nil
}
