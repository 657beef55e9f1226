package core

import (
	"fmt"

	"github.com/mikey/phishing-classifier/internal/bayes"
	"github.com/mikey/phishing-classifier/internal/dataset"
	"github.com/mikey/phishing-classifier/internal/evaluation"
	"github.com/mikey/phishing-classifier/internal/textproc"
	"github.com/mikey/phishing-classifier/internal/vectorizer"
	"go.uber.org/zap"
)

// TrainingConfig carries the pipeline options for a training run
type TrainingConfig struct {
	TestFraction float64
	Seed         int64
	MaxFeatures  int
	Alpha        float64
}

// TrainedPipeline bundles the fitted artifacts of one training run. The
// vectorizer model and classifier are fitted exclusively on the training
// partition; the evaluation report is computed on the held-out partition.
type TrainedPipeline struct {
	Cleaner    *textproc.Cleaner
	Encoder    *dataset.LabelEncoder
	Vectorizer *vectorizer.Model
	Classifier *bayes.Model
	Report     *evaluation.Report
	TrainSize  int
	TestSize   int
}

// Train runs the full pipeline over loaded records: clean, encode labels,
// split, fit the vectorizer and classifier on the training half, and
// evaluate on the test half.
func Train(records []dataset.Record, cfg TrainingConfig, logger *zap.Logger) (*TrainedPipeline, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no usable records in dataset")
	}

	cleaner := textproc.NewCleaner()
	encoder := dataset.FitLabels(dataset.Labels(records))

	train, test, err := dataset.Split(records, cfg.TestFraction, cfg.Seed)
	if err != nil {
		return nil, err
	}
	logger.Info("Split dataset",
		zap.Int("train_size", len(train)),
		zap.Int("test_size", len(test)),
		zap.Int64("seed", cfg.Seed))

	cleanTrain := cleanAll(cleaner, dataset.Texts(train))
	cleanTest := cleanAll(cleaner, dataset.Texts(test))

	vecModel, err := vectorizer.New(cfg.MaxFeatures).Fit(cleanTrain)
	if err != nil {
		return nil, err
	}
	logger.Info("Fitted vectorizer",
		zap.Int("vocabulary_size", vecModel.VocabSize()),
		zap.Int("max_features", cfg.MaxFeatures))

	trainLabels, err := encoder.EncodeAll(dataset.Labels(train))
	if err != nil {
		return nil, err
	}
	testLabels, err := encoder.EncodeAll(dataset.Labels(test))
	if err != nil {
		return nil, err
	}

	model, err := bayes.Fit(
		vecModel.Transform(cleanTrain),
		trainLabels,
		encoder.Classes(),
		vecModel.VocabSize(),
		cfg.Alpha,
	)
	if err != nil {
		return nil, err
	}
	logger.Info("Fitted classifier",
		zap.Strings("classes", encoder.Classes()),
		zap.Float64("alpha", cfg.Alpha))

	predictions := model.Predict(vecModel.Transform(cleanTest))
	report := evaluation.Evaluate(testLabels, predictions, encoder.Classes())
	logger.Info("Evaluated on held-out partition",
		zap.Float64("accuracy", report.Accuracy),
		zap.Int("test_size", report.Total))

	return &TrainedPipeline{
		Cleaner:    cleaner,
		Encoder:    encoder,
		Vectorizer: vecModel,
		Classifier: model,
		Report:     report,
		TrainSize:  len(train),
		TestSize:   len(test),
	}, nil
}

func cleanAll(cleaner *textproc.Cleaner, texts []string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = cleaner.Clean(t)
	}
	return out
}
