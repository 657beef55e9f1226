package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mikey/phishing-classifier/internal/dataset"
)

func trainingRecords() []dataset.Record {
	return []dataset.Record{
		{Text: "free money now click here", Label: "Phishing Email"},
		{Text: "win a prize click now", Label: "Phishing Email"},
		{Text: "urgent verify your account password", Label: "Phishing Email"},
		{Text: "claim your free prize money", Label: "Phishing Email"},
		{Text: "click to verify your password", Label: "Phishing Email"},
		{Text: "meeting agenda attached", Label: "Safe Email"},
		{Text: "quarterly report attached for review", Label: "Safe Email"},
		{Text: "lunch meeting tomorrow at noon", Label: "Safe Email"},
		{Text: "please review the attached report", Label: "Safe Email"},
		{Text: "agenda for the quarterly review", Label: "Safe Email"},
	}
}

func defaultTrainingConfig() TrainingConfig {
	return TrainingConfig{
		TestFraction: 0.2,
		Seed:         42,
		MaxFeatures:  5000,
		Alpha:        1.0,
	}
}

func TestTrain(t *testing.T) {
	pipeline, err := Train(trainingRecords(), defaultTrainingConfig(), zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 8, pipeline.TrainSize)
	assert.Equal(t, 2, pipeline.TestSize)
	assert.Equal(t, 2, pipeline.Report.Total)
	assert.Equal(t, []string{"Phishing Email", "Safe Email"}, pipeline.Encoder.Classes())
	assert.Equal(t, []string{"Phishing Email", "Safe Email"}, pipeline.Classifier.Classes())
	assert.Greater(t, pipeline.Vectorizer.VocabSize(), 0)
}

func TestTrainDeterministic(t *testing.T) {
	cfg := defaultTrainingConfig()

	p1, err := Train(trainingRecords(), cfg, zap.NewNop())
	require.NoError(t, err)
	p2, err := Train(trainingRecords(), cfg, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, p1.Report.Accuracy, p2.Report.Accuracy)
	assert.Equal(t, p1.Vectorizer.VocabSize(), p2.Vectorizer.VocabSize())
	assert.Equal(t, p1.TrainSize, p2.TrainSize)
}

func TestTrainSeparatesClasses(t *testing.T) {
	// Vocabulary and class likelihoods are fitted on the training half, so a
	// strongly phishing-flavored query must come out phishing.
	pipeline, err := Train(trainingRecords(), defaultTrainingConfig(), zap.NewNop())
	require.NoError(t, err)

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "phishing query", text: "click now for your free prize", want: "Phishing Email"},
		{name: "safe query", text: "the meeting agenda is attached", want: "Safe Email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaned := pipeline.Cleaner.Clean(tt.text)
			vec := pipeline.Vectorizer.TransformOne(cleaned)
			code := pipeline.Classifier.PredictOne(vec)

			label, err := pipeline.Encoder.Decode(code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, label)
		})
	}
}

func TestTrainErrors(t *testing.T) {
	t.Run("no records", func(t *testing.T) {
		_, err := Train(nil, defaultTrainingConfig(), zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("bad test fraction", func(t *testing.T) {
		cfg := defaultTrainingConfig()
		cfg.TestFraction = 1.5
		_, err := Train(trainingRecords(), cfg, zap.NewNop())
		var cfgErr *dataset.ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	})

	t.Run("bad max features", func(t *testing.T) {
		cfg := defaultTrainingConfig()
		cfg.MaxFeatures = 0
		_, err := Train(trainingRecords(), cfg, zap.NewNop())
		var cfgErr *dataset.ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	})

	t.Run("bad alpha", func(t *testing.T) {
		cfg := defaultTrainingConfig()
		cfg.Alpha = 0
		_, err := Train(trainingRecords(), cfg, zap.NewNop())
		assert.Error(t, err)
	})
}
