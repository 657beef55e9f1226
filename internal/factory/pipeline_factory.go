package factory

import (
	"github.com/mikey/phishing-classifier/internal/config"
	"github.com/mikey/phishing-classifier/internal/core"
	"github.com/mikey/phishing-classifier/internal/dataset"
	"go.uber.org/zap"
)

// PipelineFactory builds training-pipeline components from configuration
type PipelineFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewPipelineFactory creates a new pipeline factory
func NewPipelineFactory(cfg *config.Config, logger *zap.Logger) *PipelineFactory {
	return &PipelineFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateLoader creates the dataset loader for the configured column names
func (f *PipelineFactory) CreateLoader() *dataset.Loader {
	ds := f.cfg.GetDataset()
	return dataset.NewLoader(ds.TextColumn, ds.LabelColumn)
}

// DatasetPath returns the configured dataset location
func (f *PipelineFactory) DatasetPath() string {
	return f.cfg.GetDataset().Path
}

// TrainingConfig assembles the training options from configuration
func (f *PipelineFactory) TrainingConfig() core.TrainingConfig {
	split := f.cfg.GetSplit()
	return core.TrainingConfig{
		TestFraction: split.TestFraction,
		Seed:         split.Seed,
		MaxFeatures:  f.cfg.GetVectorizer().MaxFeatures,
		Alpha:        f.cfg.GetClassifier().Alpha,
	}
}
