package common

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Extraction ExtractionConfig
	NER        NERConfig
	Ingest     IngestConfig
	Logging    LoggingConfig
}

// ExtractionConfig holds field-extraction configuration
type ExtractionConfig struct {
	DefaultDocType  string        // used when classification is disabled
	ClassifyUnknown bool          // run the classifier for unknown doc types
	Validate        bool          // validate records against their JSON schema
	Workers         int           // batch worker pool size
	FileTimeout     time.Duration // per-document deadline in batch mode
}

// NERConfig holds entity-recognizer configuration
type NERConfig struct {
	ModelPath    string        // ONNX token-classification model directory; empty disables NER
	OnnxFilename string        // defaults to model.onnx
	CacheTTL     time.Duration // entity-bag cache TTL; 0 disables the cache
	CacheSize    uint64
	Timeout      time.Duration // deadline around the single recognizer call
}

// IngestConfig holds directory ingestion configuration
type IngestConfig struct {
	Roots       []string
	InitialScan bool
	Debounce    time.Duration
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level      string
	File       string // empty means stderr
	MaxSizeMB  int
	MaxBackups int
}

// LoadConfig loads configuration from an optional config file plus
// DOCSIFT_* environment variables, with sane defaults.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DOCSIFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("extraction.default_doc_type", "unknown")
	v.SetDefault("extraction.classify_unknown", true)
	v.SetDefault("extraction.validate", true)
	v.SetDefault("extraction.workers", 4)
	v.SetDefault("extraction.file_timeout", 30*time.Second)

	v.SetDefault("ner.model_path", "")
	v.SetDefault("ner.onnx_filename", "model.onnx")
	v.SetDefault("ner.cache_ttl", 2*time.Minute)
	v.SetDefault("ner.cache_size", 1024)
	v.SetDefault("ner.timeout", 15*time.Second)

	v.SetDefault("ingest.initial_scan", true)
	v.SetDefault("ingest.debounce", 500*time.Millisecond)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.max_size_mb", 20)
	v.SetDefault("logging.max_backups", 3)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, WrapError(err, "reading config file")
		}
	}

	cfg := &Config{
		Extraction: ExtractionConfig{
			DefaultDocType:  v.GetString("extraction.default_doc_type"),
			ClassifyUnknown: v.GetBool("extraction.classify_unknown"),
			Validate:        v.GetBool("extraction.validate"),
			Workers:         v.GetInt("extraction.workers"),
			FileTimeout:     v.GetDuration("extraction.file_timeout"),
		},
		NER: NERConfig{
			ModelPath:    v.GetString("ner.model_path"),
			OnnxFilename: v.GetString("ner.onnx_filename"),
			CacheTTL:     v.GetDuration("ner.cache_ttl"),
			CacheSize:    v.GetUint64("ner.cache_size"),
			Timeout:      v.GetDuration("ner.timeout"),
		},
		Ingest: IngestConfig{
			Roots:       v.GetStringSlice("ingest.roots"),
			InitialScan: v.GetBool("ingest.initial_scan"),
			Debounce:    v.GetDuration("ingest.debounce"),
		},
		Logging: LoggingConfig{
			Level:      v.GetString("logging.level"),
			File:       v.GetString("logging.file"),
			MaxSizeMB:  v.GetInt("logging.max_size_mb"),
			MaxBackups: v.GetInt("logging.max_backups"),
		},
	}
	return cfg, nil
}
