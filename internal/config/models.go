package config

// DatasetConfig represents the configuration for the input dataset
type DatasetConfig struct {
	Path        string
	TextColumn  string
	LabelColumn string
}

// SplitConfig represents the configuration for the train/test split
type SplitConfig struct {
	TestFraction float64
	Seed         int64
}

// VectorizerConfig represents the configuration for the TF-IDF vectorizer
type VectorizerConfig struct {
	MaxFeatures int
}

// ClassifierConfig represents the configuration for the Naive Bayes classifier
type ClassifierConfig struct {
	Alpha float64
}

// DetectorConfig represents the configuration for single-message detection
type DetectorConfig struct {
	MaxBodySize        int
	WhitelistedDomains []string
}

// GetDataset returns the dataset configuration
func (c *Config) GetDataset() DatasetConfig {
	return DatasetConfig{
		Path:        c.GetString("dataset.path"),
		TextColumn:  c.GetString("dataset.text_column"),
		LabelColumn: c.GetString("dataset.label_column"),
	}
}

// GetSplit returns the train/test split configuration
func (c *Config) GetSplit() SplitConfig {
	return SplitConfig{
		TestFraction: c.GetFloat64("split.test_fraction"),
		Seed:         c.GetInt64("split.seed"),
	}
}

// GetVectorizer returns the vectorizer configuration
func (c *Config) GetVectorizer() VectorizerConfig {
	return VectorizerConfig{
		MaxFeatures: c.GetInt("vectorizer.max_features"),
	}
}

// GetClassifier returns the classifier configuration
func (c *Config) GetClassifier() ClassifierConfig {
	return ClassifierConfig{
		Alpha: c.GetFloat64("classifier.alpha"),
	}
}

// GetDetector returns the detector configuration
func (c *Config) GetDetector() DetectorConfig {
	return DetectorConfig{
		MaxBodySize:        c.GetInt("detector.max_body_size"),
		WhitelistedDomains: c.GetStringSlice("detector.whitelisted_domains"),
	}
}
